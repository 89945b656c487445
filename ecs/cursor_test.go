package ecs_test

import (
	"testing"

	"github.com/plus3/soagroup/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorTraversal(t *testing.T) {
	g := newMotionGroup(t)
	for i := 0; i < 3; i++ {
		addMotion(t, g, Position{X: float32(i)}, Velocity{DX: float32(i)})
	}

	var visited []int
	for c := g.Begin(); !c.Equal(g.End()); c = c.Next() {
		e, err := c.Entity()
		require.NoError(t, err)

		pos, err := ecs.Component[Position](e)
		require.NoError(t, err)
		assert.Equal(t, *ecs.Get[Position](g, c.Index()), *pos)

		visited = append(visited, e.Index())
	}

	assert.Equal(t, []int{0, 1, 2}, visited)
}

func TestCursorArithmetic(t *testing.T) {
	g := newMotionGroup(t)
	for i := 0; i < 5; i++ {
		g.AddEntity()
	}

	c := g.Begin()
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, 1, c.Next().Index())
	assert.Equal(t, 4, c.Advance(4).Index())
	assert.Equal(t, 2, c.Advance(4).Advance(-2).Index())
	assert.Equal(t, 3, g.End().Prev().Prev().Index())

	// Moving returns a new cursor and leaves the original in place
	assert.Equal(t, 0, c.Index())

	assert.True(t, c.Advance(5).Equal(g.End()))
	assert.True(t, g.End().Advance(-5).Equal(g.Begin()))
}

func TestCursorEqualityRequiresSameGroup(t *testing.T) {
	a := newMotionGroup(t)
	b := newMotionGroup(t)

	assert.True(t, a.Begin().Equal(a.End()))
	assert.False(t, a.Begin().Equal(b.Begin()))

	a.AddEntity()
	assert.False(t, a.Begin().Equal(a.End()))
	// A cursor taken before the append still compares equal by position
	assert.True(t, a.End().Equal(a.Begin().Next()))
}

func TestCursorDereferenceOutOfRange(t *testing.T) {
	g := newMotionGroup(t)
	g.AddEntity()

	_, err := g.End().Entity()
	var rangeErr ecs.RangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, 1, rangeErr.Index)

	_, err = g.Begin().Prev().Entity()
	assert.ErrorAs(t, err, &rangeErr)

	var zero ecs.Cursor
	_, err = zero.Entity()
	assert.Error(t, err)
}

func TestCursorDetectsRemovalDuringIteration(t *testing.T) {
	g := newMotionGroup(t)
	for i := 0; i < 3; i++ {
		addMotion(t, g, Position{X: float32(i)}, Velocity{})
	}

	c := g.Begin()
	e, err := c.Entity()
	require.NoError(t, err)
	assert.Equal(t, 0, e.Index())

	require.NoError(t, g.RemoveEntity(0))

	_, err = c.Next().Entity()
	var stale ecs.StaleViewError
	require.ErrorAs(t, err, &stale)
	assert.False(t, e.Valid())

	// Fresh cursors see the new layout
	fresh, err := g.Begin().Entity()
	require.NoError(t, err)
	pos, err := ecs.Component[Position](fresh)
	require.NoError(t, err)
	assert.Equal(t, float32(1), pos.X)
}
