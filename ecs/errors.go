package ecs

import (
	"fmt"
	"reflect"
)

// RangeError reports a row index or row range outside a group's valid rows.
type RangeError struct {
	Op    string
	Index int
	Count int
	Size  int
}

func (e RangeError) Error() string {
	if e.Count == 1 {
		return fmt.Sprintf("%s: index %d out of range [0, %d)", e.Op, e.Index, e.Size)
	}
	return fmt.Sprintf("%s: rows [%d, %d) out of range [0, %d)", e.Op, e.Index, e.Index+e.Count, e.Size)
}

// StaleViewError reports use of an Entity, View or Cursor obtained before the
// group shifted its rows.
type StaleViewError struct {
	Generation uint64
	Current    uint64
}

func (e StaleViewError) Error() string {
	return fmt.Sprintf("stale entity view: taken at generation %d, group is at generation %d", e.Generation, e.Current)
}

type ComponentTypeError struct {
	Want reflect.Type
	Got  reflect.Type
}

func (e ComponentTypeError) Error() string {
	return fmt.Sprintf("component type mismatch: want %v, got %v", e.Want, e.Got)
}

type ComponentNotFoundError struct {
	Type reflect.Type
}

func (e ComponentNotFoundError) Error() string {
	return fmt.Sprintf("component is not part of the group schema: %v", e.Type)
}

type UnregisteredComponentError struct {
	Type reflect.Type
}

func (e UnregisteredComponentError) Error() string {
	return fmt.Sprintf("component type %v not registered", e.Type)
}

type DuplicateComponentError struct {
	Type reflect.Type
}

func (e DuplicateComponentError) Error() string {
	return fmt.Sprintf("component type %v appears more than once in schema", e.Type)
}

// SchemaMismatchError is returned when two groups with different component
// type sets are combined.
type SchemaMismatchError struct {
	Want, Got *Schema
}

func (e SchemaMismatchError) Error() string {
	return fmt.Sprintf("incompatible groups: want %v, got %v", e.Want, e.Got)
}

type ValueCountError struct {
	Want, Got int
}

func (e ValueCountError) Error() string {
	return fmt.Sprintf("expected %d component values, got %d", e.Want, e.Got)
}

// InvariantError reports a group whose sequences are not all the same length.
type InvariantError struct {
	Type   reflect.Type
	Length int
	Size   int
}

func (e InvariantError) Error() string {
	return fmt.Sprintf("sequence for %v has %d rows, group size is %d", e.Type, e.Length, e.Size)
}
