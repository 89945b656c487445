package ecs

//go:generate go run ../cmd/groupgen -out group_generated.go

import (
	"fmt"
	"iter"
	"reflect"

	"go.uber.org/zap"
)

// Group stores entities as rows across one contiguous sequence per component
// type (structure-of-arrays). Row i of every sequence belongs to the same entity,
// and every sequence always holds exactly Size() items.
//
// Appends never move existing rows. Removals shift later rows down and bump the
// group generation, which invalidates every Entity, View result and Cursor taken
// before the removal.
//
// A Group is not safe for concurrent use.
type Group struct {
	schema     *Schema
	columns    []iColumn
	size       int
	generation uint64
	logger     *zap.Logger
}

// Option configures a Group.
type Option func(*Group)

// WithLogger sets the logger used for rollbacks and bulk operations.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Group) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithCapacity preallocates room for n rows in every sequence.
func WithCapacity(n int) Option {
	return func(g *Group) {
		g.Reserve(n)
	}
}

// NewGroup creates an empty group for the given schema.
func NewGroup(schema *Schema, opts ...Option) *Group {
	if schema == nil {
		panic("ecs: NewGroup requires a schema")
	}
	g := &Group{
		schema:  schema,
		columns: schema.newColumns(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// newSibling returns an empty group sharing g's schema and logger.
func (g *Group) newSibling() *Group {
	columns := make([]iColumn, len(g.columns))
	for slot, col := range g.columns {
		columns[slot] = col.New()
	}
	return &Group{
		schema:  g.schema,
		columns: columns,
		logger:  g.logger,
	}
}

// Schema returns the group's component type set.
func (g *Group) Schema() *Schema {
	return g.schema
}

// Size returns the current row count.
func (g *Group) Size() int {
	return g.size
}

// Generation is incremented by every operation that shifts or drops rows.
func (g *Group) Generation() uint64 {
	return g.generation
}

// Reserve grows every sequence so that n more rows can be appended without
// reallocation. Non-positive n is ignored.
func (g *Group) Reserve(n int) {
	if n <= 0 {
		return
	}
	for _, col := range g.columns {
		col.Grow(n)
	}
}

// AddEntity appends a row of zero-valued components and returns its index.
func (g *Group) AddEntity() int {
	for _, col := range g.columns {
		col.AppendZero(1)
	}
	g.size++
	return g.size - 1
}

// AddEntityValues appends one row built from values given in schema order.
// Each value may be a component or a pointer to one.
func (g *Group) AddEntityValues(values ...any) (int, error) {
	if len(values) != len(g.columns) {
		return -1, ValueCountError{Want: len(g.columns), Got: len(values)}
	}
	for slot, value := range values {
		if !g.schema.accepts(slot, value) {
			return -1, ComponentTypeError{Want: g.schema.types[slot], Got: reflect.TypeOf(value)}
		}
	}

	err := g.appendRows("AddEntityValues", 1, func(slot int, col iColumn) error {
		return col.AppendValue(values[slot])
	})
	if err != nil {
		return -1, err
	}
	return g.size - 1, nil
}

// AddEntityFrom appends a new row holding copies of the values e currently
// references. e may belong to g or to any compatible group.
func (g *Group) AddEntityFrom(e Entity) (int, error) {
	if err := e.check(); err != nil {
		return -1, err
	}
	if !g.schema.Compatible(e.group.schema) {
		return -1, SchemaMismatchError{Want: g.schema, Got: e.group.schema}
	}

	src := e.group
	err := g.appendRows("AddEntityFrom", 1, func(slot int, col iColumn) error {
		return col.AppendRange(src.columns[slot], e.row, 1)
	})
	if err != nil {
		return -1, err
	}
	return g.size - 1, nil
}

// RemoveEntity erases row idx from every sequence, shifting later rows down by one.
func (g *Group) RemoveEntity(idx int) error {
	return g.RemoveSubset(idx, 1)
}

// RemoveSubset erases count contiguous rows starting at idx from every sequence.
func (g *Group) RemoveSubset(idx, count int) error {
	op := "RemoveSubset"
	if count == 1 {
		op = "RemoveEntity"
	}
	if err := g.checkRange(op, idx, count); err != nil {
		return err
	}
	if count == 0 {
		return nil
	}

	for _, col := range g.columns {
		col.Delete(idx, count)
	}
	g.size -= count
	g.generation++

	g.logger.Debug("removed rows",
		zap.Int("index", idx),
		zap.Int("count", count),
		zap.Int("size", g.size),
	)
	return nil
}

// Clear drops every row while keeping allocated capacity.
func (g *Group) Clear() {
	for _, col := range g.columns {
		col.Reset()
	}
	g.size = 0
	g.generation++
}

// GetSubset returns a new, independently owned group holding copies of rows
// [idx, idx+count). g is not modified.
func (g *Group) GetSubset(idx, count int) (*Group, error) {
	if err := g.checkRange("GetSubset", idx, count); err != nil {
		return nil, err
	}

	subset := g.newSibling()
	subset.Reserve(count)
	if err := subset.AddSet(g, idx, count); err != nil {
		return nil, fmt.Errorf("copy subset: %w", err)
	}
	return subset, nil
}

// AddSet appends copies of other's rows [idx, idx+count) to the end of g.
// other may be g itself.
func (g *Group) AddSet(other *Group, idx, count int) error {
	if other == nil {
		return SchemaMismatchError{Want: g.schema}
	}
	if !g.schema.Compatible(other.schema) {
		return SchemaMismatchError{Want: g.schema, Got: other.schema}
	}
	if err := other.checkRange("AddSet", idx, count); err != nil {
		return err
	}
	if count == 0 {
		return nil
	}

	err := g.appendRows("AddSet", count, func(slot int, col iColumn) error {
		return col.AppendRange(other.columns[slot], idx, count)
	})
	if err != nil {
		return err
	}

	g.logger.Debug("appended rows",
		zap.Int("from", idx),
		zap.Int("count", count),
		zap.Int("size", g.size),
	)
	return nil
}

// AddAll appends copies of every row of other; it is AddSet(other, 0, other.Size()).
func (g *Group) AddAll(other *Group) error {
	if other == nil {
		return SchemaMismatchError{Want: g.schema}
	}
	return g.AddSet(other, 0, other.size)
}

// Entity returns a view of row idx.
func (g *Group) Entity(idx int) (Entity, error) {
	if err := g.checkRange("Entity", idx, 1); err != nil {
		return Entity{}, err
	}
	return Entity{group: g, row: idx, generation: g.generation}, nil
}

// Begin returns a cursor at the first row.
func (g *Group) Begin() Cursor {
	return Cursor{group: g, index: 0, generation: g.generation}
}

// End returns the off-the-end cursor at Size().
func (g *Group) End() Cursor {
	return Cursor{group: g, index: g.size, generation: g.generation}
}

// All returns an iterator over every row in index order.
// Removing rows while iterating panics with a StaleViewError.
func (g *Group) All() iter.Seq2[int, Entity] {
	return func(yield func(int, Entity) bool) {
		gen := g.generation
		for i := 0; i < g.size; i++ {
			if !yield(i, Entity{group: g, row: i, generation: gen}) {
				return
			}
			if g.generation != gen {
				panic(StaleViewError{Generation: gen, Current: g.generation})
			}
		}
	}
}

// Validate checks that every sequence holds exactly Size() items.
func (g *Group) Validate() error {
	for _, col := range g.columns {
		if col.Len() != g.size {
			return InvariantError{Type: col.Type(), Length: col.Len(), Size: g.size}
		}
	}
	return nil
}

// Get returns the T component of row idx. It performs no checks beyond Go's own
// slice bounds check and panics if T is not in the schema; use Lookup otherwise.
func Get[T any](g *Group, idx int) *T {
	slot, ok := g.schema.Slot(reflect.TypeFor[T]())
	if !ok {
		panic(ComponentNotFoundError{Type: reflect.TypeFor[T]()})
	}
	return &g.columns[slot].(*column[T]).items[idx]
}

// Lookup is the checked variant of Get.
func Lookup[T any](g *Group, idx int) (*T, error) {
	slot, ok := g.schema.Slot(reflect.TypeFor[T]())
	if !ok {
		return nil, ComponentNotFoundError{Type: reflect.TypeFor[T]()}
	}
	if err := g.checkRange("Lookup", idx, 1); err != nil {
		return nil, err
	}
	return &g.columns[slot].(*column[T]).items[idx], nil
}

// Column returns the T sequence of g. The slice aliases group storage and is
// only valid until the next structural change.
func Column[T any](g *Group) ([]T, error) {
	slot, ok := g.schema.Slot(reflect.TypeFor[T]())
	if !ok {
		return nil, ComponentNotFoundError{Type: reflect.TypeFor[T]()}
	}
	return g.columns[slot].(*column[T]).items, nil
}

func (g *Group) checkRange(op string, idx, count int) error {
	if idx < 0 || count < 0 || idx > g.size || count > g.size-idx {
		return RangeError{Op: op, Index: idx, Count: count, Size: g.size}
	}
	return nil
}

// appendRows applies fn to every column in schema order, then grows the row
// count by count. If any column fails, with an error or a panic, every column
// is truncated back to the previous size so the group is left unchanged.
func (g *Group) appendRows(op string, count int, fn func(slot int, col iColumn) error) (err error) {
	committed := false
	defer func() {
		if committed {
			return
		}
		g.rollback(op)
		if r := recover(); r != nil {
			panic(r)
		}
	}()

	for slot, col := range g.columns {
		if err := fn(slot, col); err != nil {
			return fmt.Errorf("%s: %v column: %w", op, col.Type(), err)
		}
	}
	g.size += count
	committed = true
	return nil
}

func (g *Group) rollback(op string) {
	for _, col := range g.columns {
		col.Truncate(g.size)
	}
	g.logger.Warn("rolled back partial append",
		zap.String("op", op),
		zap.Int("size", g.size),
	)
}
