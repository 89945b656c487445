package ecs

// Cursor is a position in a Group. Moving a cursor is plain index arithmetic
// with no bounds checks; only Entity validates the position. End() is an
// off-the-end sentinel and is never dereferenced.
type Cursor struct {
	group      *Group
	index      int
	generation uint64
}

// Index returns the row position.
func (c Cursor) Index() int {
	return c.index
}

// Next returns the cursor one row forward.
func (c Cursor) Next() Cursor {
	return c.Advance(1)
}

// Prev returns the cursor one row back.
func (c Cursor) Prev() Cursor {
	return c.Advance(-1)
}

// Advance returns the cursor moved by step rows; step may be negative.
func (c Cursor) Advance(step int) Cursor {
	c.index += step
	return c
}

// Equal reports whether both cursors address the same group and row.
func (c Cursor) Equal(other Cursor) bool {
	return c.group == other.group && c.index == other.index
}

// Entity dereferences the cursor into a view of its row.
func (c Cursor) Entity() (Entity, error) {
	if c.group == nil {
		return Entity{}, RangeError{Op: "Cursor.Entity", Index: c.index, Count: 1}
	}
	if c.generation != c.group.generation {
		return Entity{}, StaleViewError{Generation: c.generation, Current: c.group.generation}
	}
	if err := c.group.checkRange("Cursor.Entity", c.index, 1); err != nil {
		return Entity{}, err
	}
	return Entity{group: c.group, row: c.index, generation: c.generation}, nil
}
