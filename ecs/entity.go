package ecs

import "reflect"

// Entity addresses one row of a Group. It holds no component data: each
// component is resolved against the group when requested, so an Entity never
// dangles. It goes stale once its group shifts rows (RemoveEntity, RemoveSubset,
// Clear); appends keep it valid.
type Entity struct {
	group      *Group
	row        int
	generation uint64
}

// Index returns the row the entity addresses.
func (e Entity) Index() int {
	return e.row
}

// Group returns the owning group, or nil for the zero Entity.
func (e Entity) Group() *Group {
	return e.group
}

// Valid reports whether the entity may still be read.
func (e Entity) Valid() bool {
	return e.check() == nil
}

// Component returns a pointer to the component of type t in the entity's row.
func (e Entity) Component(t reflect.Type) (any, error) {
	if err := e.check(); err != nil {
		return nil, err
	}
	slot, ok := e.group.schema.Slot(t)
	if !ok {
		return nil, ComponentNotFoundError{Type: t}
	}
	return e.group.columns[slot].Pointer(e.row), nil
}

// Components returns pointers to every component of the row, in schema order.
func (e Entity) Components() ([]any, error) {
	if err := e.check(); err != nil {
		return nil, err
	}
	components := make([]any, len(e.group.columns))
	for slot, col := range e.group.columns {
		components[slot] = col.Pointer(e.row)
	}
	return components, nil
}

func (e Entity) check() error {
	if e.group == nil {
		return RangeError{Op: "Entity", Index: e.row, Count: 1}
	}
	if e.generation != e.group.generation {
		return StaleViewError{Generation: e.generation, Current: e.group.generation}
	}
	if e.row < 0 || e.row >= e.group.size {
		return RangeError{Op: "Entity", Index: e.row, Count: 1, Size: e.group.size}
	}
	return nil
}

// Component returns a live pointer to the T component of e's row.
func Component[T any](e Entity) (*T, error) {
	if err := e.check(); err != nil {
		return nil, err
	}
	slot, ok := e.group.schema.Slot(reflect.TypeFor[T]())
	if !ok {
		return nil, ComponentNotFoundError{Type: reflect.TypeFor[T]()}
	}
	return &e.group.columns[slot].(*column[T]).items[e.row], nil
}
