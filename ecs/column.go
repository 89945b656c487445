package ecs

import (
	"reflect"
	"slices"
)

// iColumn is a type-erased, contiguous sequence holding one component type.
// A Group owns one iColumn per component type in its schema.
type iColumn interface {
	Len() int
	Type() reflect.Type
	New() iColumn
	Grow(n int)
	AppendZero(n int)
	AppendValue(item any) error
	AppendRange(src iColumn, index, count int) error
	Delete(index, count int)
	Truncate(n int)
	Reset()
	Pointer(index int) any
}

// ComponentRegistry manages component type registration for groups built from
// a runtime Schema. Typed groups (Group1..Group4) do not need a registry.
type ComponentRegistry struct {
	factories map[reflect.Type]func() iColumn
}

// NewComponentRegistry creates a new component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() iColumn),
	}
}

// RegisterComponent registers a new component type with the given registry.
// This must be called for each component type before it can be part of a Schema.
func RegisterComponent[T any](r *ComponentRegistry) {
	r.factories[reflect.TypeFor[T]()] = columnFactory[T]()
}

// Registered reports whether t has been registered.
func (r *ComponentRegistry) Registered(t reflect.Type) bool {
	_, ok := r.factories[t]
	return ok
}

// getFactory returns the factory function for a given component type.
// Returns nil if the type is not registered.
func (r *ComponentRegistry) getFactory(t reflect.Type) func() iColumn {
	return r.factories[t]
}

func columnFactory[T any]() func() iColumn {
	return func() iColumn {
		return &column[T]{}
	}
}

// column is the iColumn implementation for a concrete component type T.
type column[T any] struct {
	items []T
}

func (c *column[T]) Len() int {
	return len(c.items)
}

func (c *column[T]) Type() reflect.Type {
	return reflect.TypeFor[T]()
}

func (c *column[T]) New() iColumn {
	return &column[T]{}
}

// Grow ensures room for n more items without another allocation.
func (c *column[T]) Grow(n int) {
	c.items = slices.Grow(c.items, n)
}

// AppendZero appends n zero-valued components.
func (c *column[T]) AppendZero(n int) {
	start := len(c.items)
	c.items = slices.Grow(c.items, n)[:start+n]
	clear(c.items[start:])
}

// AppendValue appends a component given either as T or *T.
func (c *column[T]) AppendValue(item any) error {
	var concreteItem T
	if ptr, ok := item.(*T); ok && ptr != nil {
		concreteItem = *ptr
	} else if val, ok := item.(T); ok {
		concreteItem = val
	} else {
		return ComponentTypeError{Want: c.Type(), Got: reflect.TypeOf(item)}
	}

	c.items = append(c.items, concreteItem)
	return nil
}

// AppendRange appends a value copy of src[index:index+count]. src may be c itself.
func (c *column[T]) AppendRange(src iColumn, index, count int) error {
	other, ok := src.(*column[T])
	if !ok {
		return ComponentTypeError{Want: c.Type(), Got: src.Type()}
	}

	c.items = append(c.items, other.items[index:index+count]...)
	return nil
}

// Delete removes count items starting at index, shifting later items down.
func (c *column[T]) Delete(index, count int) {
	c.items = slices.Delete(c.items, index, index+count)
}

// Truncate shrinks the column to n items, zeroing the dropped tail.
func (c *column[T]) Truncate(n int) {
	if n >= len(c.items) {
		return
	}
	clear(c.items[n:])
	c.items = c.items[:n]
}

func (c *column[T]) Reset() {
	c.Truncate(0)
}

// Pointer returns a *T to the item at index.
func (c *column[T]) Pointer(index int) any {
	return &c.items[index]
}
