/*
Package sparse provides a paged sparse set, the per-component storage primitive for
Entity-Component-System (ECS) frameworks.

A PagedSet maps integer ids (entity handles) to values of a single type. Values live in a
dense, gap-free slice so iterating them is as cache friendly as walking an array, while
lookups go through a paged sparse index that only allocates memory for the id ranges
actually touched.

Core Concepts:

  - ID: An unsigned integer handle used as the key.
  - Dense storage: Contiguous values plus a parallel slice of their owning ids.
  - Page: A fixed-size block of sparse slots covering [p*PageSize, (p+1)*PageSize).
  - Tombstone: The reserved slot value meaning "no entry".
  - Set: The type-erased view (Contains/Remove) used to manage sets of different value types together.

Basic Usage:

	positions := sparse.FactoryNewPagedSet[Position]()

	positions.Add(42, Position{X: 1, Y: 2})
	if positions.Contains(42) {
		pos := positions.Get(42)
		pos.X += 10
	}

	cursor := sparse.FactoryNewCursor(positions)
	for cursor.Next() {
		pos := cursor.Value()
		pos.Y++
	}

	positions.Remove(42)

Sets of different component types can be grouped in a Registry and cleared together:

	registry := sparse.Factory.NewRegistry(64)
	registry.Register("position", positions)
	registry.Register("velocity", velocities)
	registry.RemoveAll(42)

A PagedSet is not safe for concurrent use. Callers sharing one across goroutines must
synchronise access themselves.
*/
package sparse
