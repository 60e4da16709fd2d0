package sparse

import (
	"iter"

	"github.com/TheBitDrifter/mask"
)

// Set is the type-erased view of a sparse set. It only carries operations that do not
// need the value type, so sets over different component types can be handled together.
type Set interface {
	Contains(id ID) bool
	Remove(id ID) bool
	Len() int
}

// Registry groups heterogeneous sets under names and fans id removal out to all of them.
type Registry interface {
	Register(name string, set Set) (uint32, error)
	Set(name string) (Set, bool)
	Names() []string
	Len() int
	Signature(id ID) mask.Mask
	HasAll(id ID, names ...string) bool
	Remove(name string, id ID) (bool, error)
	RemoveAll(id ID) (int, error)
	EnqueueRemove(name string, id ID) error
	EnqueueRemoveAll(id ID) error
	Locked() bool
	Lock()
	Unlock()
}

type iCursor[T any] interface {
	Next() bool
	ID() ID
	Value() *T
	Reset()
}

type iterable[T any] interface {
	IDs() iter.Seq[ID]
	All() iter.Seq2[ID, *T]
	Values() []T
}
