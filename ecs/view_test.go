package ecs_test

import (
	"testing"

	"github.com/plus3/soagroup/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type motion struct {
	*Position
	*Velocity
}

func TestViewGet(t *testing.T) {
	g := newMotionGroup(t)
	addMotion(t, g, Position{X: 1, Y: 2}, Velocity{DX: 3, DY: 4})

	view := ecs.NewView[motion](g)

	item, err := view.Get(0)
	require.NoError(t, err)
	assert.Equal(t, float32(1), item.Position.X)
	assert.Equal(t, float32(4), item.Velocity.DY)
}

func TestViewMutationsPersist(t *testing.T) {
	g := newMotionGroup(t)
	addMotion(t, g, Position{X: 1, Y: 2}, Velocity{})

	view := ecs.NewView[motion](g)
	item, err := view.Get(0)
	require.NoError(t, err)

	// Mutate the components through the view
	item.Position.X = 100
	item.Velocity.DX = 5

	assert.Equal(t, float32(100), ecs.Get[Position](g, 0).X)
	assert.Equal(t, float32(5), ecs.Get[Velocity](g, 0).DX)
}

func TestViewFieldSubsetAndNamedFields(t *testing.T) {
	schema, err := ecs.SchemaFor(newTestRegistry(), Position{}, Velocity{}, Score(0))
	require.NoError(t, err)
	g := ecs.NewGroup(schema)
	_, err = g.AddEntityValues(Position{X: 7}, Velocity{}, Score(1000))
	require.NoError(t, err)

	view := ecs.NewView[struct {
		Pos    *Position
		Points *Score
		Health *Health `ecs:"optional"`
	}](g)

	item, err := view.Get(0)
	require.NoError(t, err)
	assert.Equal(t, float32(7), item.Pos.X)
	assert.Equal(t, Score(1000), *item.Points)
	assert.Nil(t, item.Health)

	*item.Points = 2000
	assert.Equal(t, Score(2000), *ecs.Get[Score](g, 0))
}

func TestViewOutOfRange(t *testing.T) {
	g := newMotionGroup(t)
	view := ecs.NewView[motion](g)

	item, err := view.Get(0)
	assert.Nil(t, item)
	var rangeErr ecs.RangeError
	assert.ErrorAs(t, err, &rangeErr)
}

func TestViewGetEntity(t *testing.T) {
	g := newMotionGroup(t)
	addMotion(t, g, Position{X: 1}, Velocity{})
	addMotion(t, g, Position{X: 2}, Velocity{})
	view := ecs.NewView[motion](g)

	e, err := g.Entity(1)
	require.NoError(t, err)
	item, err := view.GetEntity(e)
	require.NoError(t, err)
	assert.Equal(t, float32(2), item.Position.X)

	other := newMotionGroup(t)
	other.AddEntity()
	foreign, err := other.Entity(0)
	require.NoError(t, err)
	_, err = view.GetEntity(foreign)
	assert.Error(t, err)

	require.NoError(t, g.RemoveEntity(0))
	_, err = view.GetEntity(e)
	var stale ecs.StaleViewError
	assert.ErrorAs(t, err, &stale)
}

func TestViewInvalidStructsPanic(t *testing.T) {
	g := newMotionGroup(t)

	assert.Panics(t, func() { ecs.NewView[Position](g) })
	assert.Panics(t, func() {
		ecs.NewView[struct{ Position }](g)
	})
	assert.Panics(t, func() {
		ecs.NewView[struct{ *Health }](g)
	})
	assert.Panics(t, func() {
		ecs.NewView[struct {
			A *Position
			B *Position
		}](g)
	})
	assert.Panics(t, func() {
		ecs.NewView[struct {
			Pos *Position `ecs:"sometimes"`
		}](g)
	})
}

func TestViewIter(t *testing.T) {
	g := newMotionGroup(t)
	for i := 0; i < 3; i++ {
		addMotion(t, g, Position{X: float32(i + 1)}, Velocity{})
	}

	view := ecs.NewView[motion](g)

	// Mutate all entities through the iterator
	var indices []int
	for idx, item := range view.Iter() {
		item.Velocity.DX = item.Position.X * 10
		indices = append(indices, idx)
	}

	assert.Equal(t, []int{0, 1, 2}, indices)
	for i := 0; i < 3; i++ {
		assert.Equal(t, float32((i+1)*10), ecs.Get[Velocity](g, i).DX)
	}
}

func TestViewValuesEarlyBreak(t *testing.T) {
	g := newMotionGroup(t)
	for i := 0; i < 4; i++ {
		addMotion(t, g, Position{X: float32(i)}, Velocity{})
	}

	view := ecs.NewView[motion](g)

	xValues := make([]float32, 0)
	for item := range view.Values() {
		xValues = append(xValues, item.Position.X)
		if len(xValues) == 2 {
			break
		}
	}

	assert.Equal(t, []float32{0, 1}, xValues)
}

func TestViewIterDetectsRemoval(t *testing.T) {
	g := newMotionGroup(t)
	for i := 0; i < 3; i++ {
		g.AddEntity()
	}
	view := ecs.NewView[motion](g)

	assert.Panics(t, func() {
		for idx := range view.Iter() {
			if idx == 1 {
				_ = g.RemoveSubset(0, 2)
			}
		}
	})
}

func TestViewSpawn(t *testing.T) {
	g := newMotionGroup(t)
	view := ecs.NewView[motion](g)

	idx, err := view.Spawn(motion{
		Position: &Position{X: 3, Y: 4},
		Velocity: &Velocity{DX: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.Equal(t, Position{X: 3, Y: 4}, *ecs.Get[Position](g, 0))
	assert.Equal(t, Velocity{DX: 1}, *ecs.Get[Velocity](g, 0))

	// Missing fields become zero values
	posOnly := ecs.NewView[struct{ *Position }](g)
	idx, err = posOnly.Spawn(struct{ *Position }{&Position{X: 9}})
	require.NoError(t, err)
	assert.Equal(t, Velocity{}, *ecs.Get[Velocity](g, idx))

	idx, err = view.Spawn(motion{})
	require.NoError(t, err)
	assert.Equal(t, Position{}, *ecs.Get[Position](g, idx))
	assert.Equal(t, 3, g.Size())
	assert.NoError(t, g.Validate())
}
