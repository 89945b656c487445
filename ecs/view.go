package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

// View binds a struct type to the rows of a Group.
// The type T should be a struct with embedded or named pointer fields, one per
// component type. Named fields whose type is not in the group schema must be
// marked with the `ecs:"optional"` struct tag; they are always left nil.
type View[T any] struct {
	group       *Group
	slots       []int
	fieldOffset []uintptr
	// fieldFor maps a schema slot to the struct field filled from it, or -1
	fieldFor []int
}

// NewView creates a new view of g for the given struct type.
// It panics if T is not a struct of component pointers matching g's schema.
func NewView[T any](g *Group) *View[T] {
	structType := reflect.TypeFor[T]()

	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	v := &View[T]{
		group:       g,
		slots:       make([]int, 0, structType.NumField()),
		fieldOffset: make([]uintptr, 0, structType.NumField()),
		fieldFor:    make([]int, g.schema.Len()),
	}
	for i := range v.fieldFor {
		v.fieldFor[i] = -1
	}

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		fieldType := field.Type

		if fieldType.Kind() != reflect.Ptr {
			panic("View struct fields must be pointer types")
		}

		// Parse struct tag to check if component is optional
		// Embedded fields (field.Anonymous) are always required
		isOptional := false
		if !field.Anonymous {
			tag := field.Tag.Get("ecs")
			if tag != "" {
				if tag == "optional" {
					isOptional = true
				} else {
					panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
				}
			}
		}

		slot, ok := g.schema.Slot(fieldType.Elem())
		if !ok {
			if !isOptional {
				panic("component type " + fieldType.Elem().String() + " is not part of the group schema")
			}
			slot = -1
		} else {
			if v.fieldFor[slot] != -1 {
				panic("component type " + fieldType.Elem().String() + " bound twice in view")
			}
			v.fieldFor[slot] = len(v.slots)
		}

		v.slots = append(v.slots, slot)
		v.fieldOffset = append(v.fieldOffset, field.Offset)
	}

	return v
}

// Fill populates the provided struct pointer with component pointers for row idx.
func (v *View[T]) Fill(idx int, ptr *T) error {
	if err := v.group.checkRange("View.Fill", idx, 1); err != nil {
		return err
	}
	v.populate(unsafe.Pointer(ptr), idx)
	return nil
}

// Get returns a populated view struct for row idx.
func (v *View[T]) Get(idx int) (*T, error) {
	var result T
	if err := v.Fill(idx, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetEntity returns a populated view struct for the row e addresses.
func (v *View[T]) GetEntity(e Entity) (*T, error) {
	if err := e.check(); err != nil {
		return nil, err
	}
	if e.group != v.group {
		return nil, SchemaMismatchError{Want: v.group.schema, Got: e.group.schema}
	}
	return v.Get(e.row)
}

func (v *View[T]) populate(structPtr unsafe.Pointer, idx int) {
	for i, slot := range v.slots {
		fieldPtr := unsafe.Pointer(uintptr(structPtr) + v.fieldOffset[i])

		if slot == -1 {
			*(*unsafe.Pointer)(fieldPtr) = nil
			continue
		}

		// Extract the data pointer from the *Component held in the interface
		component := v.group.columns[slot].Pointer(idx)
		*(*unsafe.Pointer)(fieldPtr) = (*iface)(unsafe.Pointer(&component)).data
	}
}

// Iter returns an iterator over every row of the group as populated view structs.
// Removing rows while iterating panics with a StaleViewError.
func (v *View[T]) Iter() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		var result T
		resultPtr := unsafe.Pointer(&result)

		gen := v.group.generation
		for idx := 0; idx < v.group.size; idx++ {
			v.populate(resultPtr, idx)
			if !yield(idx, result) {
				return
			}
			if v.group.generation != gen {
				panic(StaleViewError{Generation: gen, Current: v.group.generation})
			}
		}
	}
}

// Values returns an iterator over just the view structs (without row indices)
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range v.Iter() {
			if !yield(value) {
				return
			}
		}
	}
}

// Spawn appends a row with components copied from the view struct and returns
// its index. Schema components without a field, or with a nil field, are zero.
func (v *View[T]) Spawn(data T) (int, error) {
	structPtr := unsafe.Pointer(&data)

	values := make([]any, v.group.schema.Len())
	for slot, typ := range v.group.schema.types {
		field := v.fieldFor[slot]
		var componentPtr unsafe.Pointer
		if field != -1 {
			componentPtr = *(*unsafe.Pointer)(unsafe.Pointer(uintptr(structPtr) + v.fieldOffset[field]))
		}

		if componentPtr == nil {
			values[slot] = reflect.Zero(typ).Interface()
			continue
		}
		values[slot] = reflect.NewAt(typ, componentPtr).Elem().Interface()
	}

	return v.group.AddEntityValues(values...)
}
