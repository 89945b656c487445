package ecs_test

import (
	"testing"

	"github.com/plus3/soagroup/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroup2Scenarios(t *testing.T) {
	g := ecs.NewGroup2[Position, Velocity]()
	assert.Equal(t, 0, g.Size())
	assert.True(t, g.Begin().Equal(g.End()))

	g.Add(Position{X: 1, Y: 2}, Velocity{DX: 0, DY: 1})
	g.Add(Position{X: 3, Y: 4}, Velocity{DX: 1, DY: 1})
	assert.Equal(t, 2, g.Size())

	pos, _ := g.Get(0)
	_, vel := g.Get(1)
	assert.Equal(t, Position{X: 1, Y: 2}, *pos)
	assert.Equal(t, Velocity{DX: 1, DY: 1}, *vel)

	subset, err := g.Subset(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, subset.Size())
	subPos, _ := subset.Get(0)
	assert.Equal(t, Position{X: 1, Y: 2}, *subPos)
	assert.Equal(t, 2, g.Size())

	require.NoError(t, g.Remove(0))
	assert.Equal(t, 1, g.Size())
	pos, _ = g.Get(0)
	assert.Equal(t, Position{X: 3, Y: 4}, *pos)
	assert.NoError(t, g.Untyped().Validate())
}

func TestGroup2AddSet(t *testing.T) {
	a := ecs.NewGroup2[Position, Velocity]()
	b := ecs.NewGroup2[Position, Velocity]()
	a.Add(Position{X: 5, Y: 6}, Velocity{})
	b.Add(Position{X: 7, Y: 8}, Velocity{DX: 1, DY: 1})

	require.NoError(t, a.AddSet(b, 0, 1))
	assert.Equal(t, 2, a.Size())
	pos, vel := a.Get(1)
	assert.Equal(t, Position{X: 7, Y: 8}, *pos)
	assert.Equal(t, Velocity{DX: 1, DY: 1}, *vel)

	require.NoError(t, a.AddAll(b))
	assert.Equal(t, 3, a.Size())
	assert.Equal(t, 1, b.Size())

	var rangeErr ecs.RangeError
	assert.ErrorAs(t, a.AddSet(b, 1, 1), &rangeErr)
}

func TestGroup2Rows(t *testing.T) {
	g := ecs.NewGroup2[Position, Velocity]()
	for i := 0; i < 3; i++ {
		g.Add(Position{X: float32(i)}, Velocity{DX: 1})
	}

	for idx, row := range g.All() {
		pos, vel, err := row.Get()
		require.NoError(t, err)
		assert.Equal(t, idx, row.Index())
		pos.X += vel.DX
	}

	for i := 0; i < 3; i++ {
		pos, _ := g.Get(i)
		assert.Equal(t, float32(i+1), pos.X)
	}

	row, err := g.Row(2)
	require.NoError(t, err)
	idx, err := g.AddFrom(row)
	require.NoError(t, err)
	pos, _ := g.Get(idx)
	assert.Equal(t, float32(3), pos.X)

	require.NoError(t, g.RemoveSubset(0, 2))
	_, _, err = row.Get()
	var stale ecs.StaleViewError
	assert.ErrorAs(t, err, &stale)

	_, err = g.Row(5)
	var rangeErr ecs.RangeError
	assert.ErrorAs(t, err, &rangeErr)

	var zero ecs.View2[Position, Velocity]
	_, _, err = zero.Get()
	assert.Error(t, err)
}

func TestGroup2AddZero(t *testing.T) {
	g := ecs.NewGroup2[Position, Name]()
	idx := g.AddZero()

	pos, name := g.Get(idx)
	assert.Equal(t, Position{}, *pos)
	assert.Equal(t, Name{}, *name)
}

func TestGroup2SharesStorageWithUntyped(t *testing.T) {
	g := ecs.NewGroup2[Position, Velocity]()
	g.Add(Position{X: 1}, Velocity{})

	untyped := g.Untyped()
	_, err := untyped.AddEntityValues(Position{X: 2}, Velocity{})
	require.NoError(t, err)

	assert.Equal(t, 2, g.Size())
	pos, _ := g.Get(1)
	assert.Equal(t, float32(2), pos.X)
	assert.Equal(t, float32(1), ecs.Get[Position](untyped, 0).X)
}

func TestTypedGroupsOfOtherArities(t *testing.T) {
	g1 := ecs.NewGroup1[Score]()
	g1.Add(Score(10))
	score, err := func() (*Score, error) {
		row, err := g1.Row(0)
		if err != nil {
			return nil, err
		}
		return row.Get()
	}()
	require.NoError(t, err)
	assert.Equal(t, Score(10), *score)

	g3 := ecs.NewGroup3[Position, Velocity, Health]()
	g3.Add(Position{X: 1}, Velocity{DX: 2}, Health{Current: 3, Max: 4})
	_, _, health := g3.Get(0)
	assert.Equal(t, Health{Current: 3, Max: 4}, *health)

	g4 := ecs.NewGroup4[Position, Velocity, Health, Name]()
	g4.Add(Position{}, Velocity{}, Health{}, Name{Value: "four"})
	g4.Add(Position{}, Velocity{}, Health{}, Name{Value: "more"})
	sub, err := g4.Subset(1, 1)
	require.NoError(t, err)
	_, _, _, name := sub.Get(0)
	assert.Equal(t, "more", name.Value)
}

func TestTypedGroupDuplicateTypesPanic(t *testing.T) {
	assert.Panics(t, func() { ecs.NewGroup2[Position, Position]() })
}
