package sparse

var _ iCursor[any] = &Cursor[any]{}

// Cursor walks a PagedSet's dense storage from the last entry to the first.
// Removing the current id while iterating is allowed: the entry swapped into its place
// has already been visited. Removing any other id during iteration is not supported.
type Cursor[T any] struct {
	set         *PagedSet[T]
	index       int
	initialized bool
}

func newCursor[T any](set *PagedSet[T]) *Cursor[T] {
	return &Cursor[T]{set: set}
}

func (c *Cursor[T]) Next() bool {
	if !c.initialized {
		c.index = len(c.set.dense)
		c.initialized = true
	}
	// Entries past the end were removed since the last step.
	if c.index > len(c.set.dense) {
		c.index = len(c.set.dense)
	}
	if c.index == 0 {
		return false
	}
	c.index--
	return true
}

// ID returns the id at the cursor position.
func (c *Cursor[T]) ID() ID {
	return c.set.denseToID[c.index]
}

// Value returns the value at the cursor position.
func (c *Cursor[T]) Value() *T {
	return &c.set.dense[c.index]
}

// Reset rewinds the cursor so the next call to Next starts from the end again.
func (c *Cursor[T]) Reset() {
	c.index = 0
	c.initialized = false
}
