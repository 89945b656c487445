package ecs_test

import (
	"testing"

	"github.com/plus3/soagroup/ecs"
	"github.com/stretchr/testify/require"
)

// Common test component types
type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Name struct {
	Value string
}

type Health struct {
	Current int
	Max     int
}

// Custom primitive types for testing non-struct components
type Score int32

type Inventory struct {
	Items []string
}

func newTestRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[Name](registry)
	ecs.RegisterComponent[Health](registry)
	ecs.RegisterComponent[Score](registry)
	ecs.RegisterComponent[Inventory](registry)
	return registry
}

// newMotionGroup returns an empty group with schema [Position, Velocity].
func newMotionGroup(t testing.TB) *ecs.Group {
	t.Helper()
	schema, err := ecs.SchemaFor(newTestRegistry(), Position{}, Velocity{})
	require.NoError(t, err)
	return ecs.NewGroup(schema)
}

// addMotion appends a Position/Velocity row and fails the test on error.
func addMotion(t testing.TB, g *ecs.Group, pos Position, vel Velocity) int {
	t.Helper()
	idx, err := g.AddEntityValues(pos, vel)
	require.NoError(t, err)
	return idx
}

// positions reads back every Position in row order.
func positions(t testing.TB, g *ecs.Group) []Position {
	t.Helper()
	out := make([]Position, 0, g.Size())
	for i := 0; i < g.Size(); i++ {
		pos, err := ecs.Lookup[Position](g, i)
		require.NoError(t, err)
		out = append(out, *pos)
	}
	return out
}
