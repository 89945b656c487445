package ecs

import (
	"reflect"
	"slices"
	"strings"
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"github.com/kamstrup/intmap"
)

// Schema is the fixed, ordered set of component types stored by a Group.
// Two groups are compatible iff their schemas hold the same types in the same order.
type Schema struct {
	types       []reflect.Type
	factories   []func() iColumn
	slots       *intmap.Map[int, int]
	fingerprint uint64
}

// NewSchema creates a schema for the given component types, in order.
// Every type must have been registered with the registry.
func NewSchema(registry *ComponentRegistry, types ...reflect.Type) (*Schema, error) {
	factories := make([]func() iColumn, len(types))
	for idx, typ := range types {
		factory := registry.getFactory(typ)
		if factory == nil {
			return nil, UnregisteredComponentError{Type: typ}
		}
		factories[idx] = factory
	}
	return buildSchema(factories)
}

// SchemaFor creates a schema from sample component values, in order.
// Pointer samples are dereferenced to their element type.
func SchemaFor(registry *ComponentRegistry, components ...any) (*Schema, error) {
	return NewSchema(registry, componentTypes(components)...)
}

func buildSchema(factories []func() iColumn) (*Schema, error) {
	s := &Schema{
		types:     make([]reflect.Type, len(factories)),
		factories: factories,
		slots:     intmap.New[int, int](len(factories)),
	}

	digest := xxhash.New()
	for idx, factory := range factories {
		typ := factory().Type()
		if _, dup := s.slots.Get(typeId(typ)); dup {
			return nil, DuplicateComponentError{Type: typ}
		}
		s.types[idx] = typ
		s.slots.Put(typeId(typ), idx)

		_, _ = digest.WriteString(typ.PkgPath())
		_, _ = digest.WriteString(".")
		_, _ = digest.WriteString(typ.String())
		_, _ = digest.WriteString(";")
	}
	s.fingerprint = digest.Sum64()

	return s, nil
}

// Types returns the component types in schema order.
func (s *Schema) Types() []reflect.Type {
	return slices.Clone(s.types)
}

// Len returns the number of component types.
func (s *Schema) Len() int {
	return len(s.types)
}

// Slot returns the position of t in the schema.
func (s *Schema) Slot(t reflect.Type) (int, bool) {
	return s.slots.Get(typeId(t))
}

// HasComponent checks if this schema has the given component type
func (s *Schema) HasComponent(t reflect.Type) bool {
	_, ok := s.Slot(t)
	return ok
}

// Fingerprint is a hash of the ordered type names, stable across processes.
func (s *Schema) Fingerprint() uint64 {
	return s.fingerprint
}

// Compatible reports whether rows can be copied between groups of s and other.
func (s *Schema) Compatible(other *Schema) bool {
	if s == other {
		return true
	}
	if other == nil || s.fingerprint != other.fingerprint {
		return false
	}
	return slices.Equal(s.types, other.types)
}

func (s *Schema) String() string {
	if s == nil {
		return "<nil>"
	}
	names := make([]string, len(s.types))
	for i, t := range s.types {
		names[i] = t.String()
	}
	return "[" + strings.Join(names, ", ") + "]"
}

// newColumns allocates one empty column per schema type.
func (s *Schema) newColumns() []iColumn {
	columns := make([]iColumn, len(s.factories))
	for idx, factory := range s.factories {
		columns[idx] = factory()
	}
	return columns
}

// accepts reports whether value can be appended to the column at slot.
func (s *Schema) accepts(slot int, value any) bool {
	t := reflect.TypeOf(value)
	if t == s.types[slot] {
		return true
	}
	if t != nil && t.Kind() == reflect.Ptr && t.Elem() == s.types[slot] {
		return !reflect.ValueOf(value).IsNil()
	}
	return false
}

// componentTypes extracts component types from a slice of components, keeping order
func componentTypes(components []any) []reflect.Type {
	types := make([]reflect.Type, 0, len(components))
	for _, comp := range components {
		compType := reflect.TypeOf(comp)

		// If it's a pointer, get the underlying type
		if compType != nil && compType.Kind() == reflect.Ptr {
			compType = compType.Elem()
		}
		types = append(types, compType)
	}
	return types
}

// iface mirrors the runtime layout of an interface value.
type iface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

// typeId uses the runtime type descriptor address as a unique integer key.
func typeId(t reflect.Type) int {
	ptr := (*iface)(unsafe.Pointer(&t)).data
	return int(uintptr(ptr))
}
