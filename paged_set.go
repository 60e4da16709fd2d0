package sparse

import (
	"iter"
	"math"
	"reflect"
)

// ID is the key type of a sparse set, typically an entity handle.
type ID uint32

// Tombstone marks a sparse slot that holds no dense index.
const Tombstone uint32 = math.MaxUint32

// DefaultPageSize is the number of sparse slots per page when none is configured.
const DefaultPageSize uint32 = 1024

const maxPageSize uint32 = 1 << 24

var (
	_ Set           = &PagedSet[any]{}
	_ iterable[any] = &PagedSet[any]{}
)

// PagedSet maps ids to values of type T.
//
// Values are kept in a dense slice with no gaps, alongside a parallel slice of their ids.
// Ids are resolved to dense indices through fixed-size pages keyed by page number. A page
// is allocated the first time an id inside it is written and never released, so memory
// follows the pages touched rather than the largest id.
type PagedSet[T any] struct {
	pages     map[uint32][]uint32
	dense     []T
	denseToID []ID

	pageSize uint32
	maxID    ID
	bounded  bool
	logger   *Logger
}

func newPagedSet[T any](cfg config) *PagedSet[T] {
	return &PagedSet[T]{
		pages:     make(map[uint32][]uint32),
		dense:     make([]T, 0, cfg.capacity),
		denseToID: make([]ID, 0, cfg.capacity),
		pageSize:  cfg.pageSize,
		maxID:     cfg.maxID,
		bounded:   cfg.bounded,
		logger:    cfg.logger,
	}
}

func (s *PagedSet[T]) locate(id ID) (page, offset uint32) {
	return uint32(id) / s.pageSize, uint32(id) % s.pageSize
}

func (s *PagedSet[T]) slot(id ID) uint32 {
	page, offset := s.locate(id)
	slots, ok := s.pages[page]
	if !ok {
		return Tombstone
	}
	return slots[offset]
}

// setSlot writes a slot whose page is known to be allocated.
func (s *PagedSet[T]) setSlot(id ID, index uint32) {
	page, offset := s.locate(id)
	s.pages[page][offset] = index
}

func (s *PagedSet[T]) ensurePage(page uint32) []uint32 {
	if slots, ok := s.pages[page]; ok {
		return slots
	}
	fresh := make([]uint32, s.pageSize)
	for i := range fresh {
		fresh[i] = Tombstone
	}
	s.pages[page] = fresh
	return fresh
}

// index resolves id to its dense index, confirming ownership through denseToID so a
// stale slot is never reported as present.
func (s *PagedSet[T]) index(id ID) (uint32, bool) {
	index := s.slot(id)
	if index == Tombstone || int(index) >= len(s.dense) {
		return 0, false
	}
	return index, s.denseToID[index] == id
}

// Contains reports whether id has a value. It never allocates.
func (s *PagedSet[T]) Contains(id ID) bool {
	_, ok := s.index(id)
	return ok
}

// Add stores value under id, overwriting any existing value in place.
// It returns false without mutating the set when id exceeds the configured bound.
func (s *PagedSet[T]) Add(id ID, value T) bool {
	if s.bounded && id > s.maxID {
		return false
	}
	if index, ok := s.index(id); ok {
		s.dense[index] = value
		return true
	}
	if uint64(len(s.dense)) >= uint64(Tombstone) {
		return false
	}

	page, offset := s.locate(id)
	s.ensurePage(page)[offset] = uint32(len(s.dense))
	s.dense = append(s.dense, value)
	s.denseToID = append(s.denseToID, id)
	return true
}

// Remove deletes id by moving the last dense entry into its place.
// It returns false if id was not present.
func (s *PagedSet[T]) Remove(id ID) bool {
	index, ok := s.index(id)
	if !ok {
		return false
	}
	last := uint32(len(s.dense) - 1)
	lastID := s.denseToID[last]

	// Repoint before tombstoning: when index == last both writes hit the same slot and
	// the tombstone must win.
	s.setSlot(lastID, index)
	s.setSlot(id, Tombstone)

	s.dense[index], s.dense[last] = s.dense[last], s.dense[index]
	s.denseToID[index], s.denseToID[last] = s.denseToID[last], s.denseToID[index]

	var zero T
	s.dense[last] = zero
	s.dense = s.dense[:last]
	s.denseToID = s.denseToID[:last]
	return true
}

// Get returns a pointer to the value stored under id. The pointer is invalidated by the
// next Add of a new id or any Remove.
//
// Calling Get for an id that is not contained is a programming error: the fault is logged
// and Get panics with a MissingIDError. Use Lookup when absence is expected.
func (s *PagedSet[T]) Get(id ID) *T {
	index, ok := s.index(id)
	if !ok {
		err := MissingIDError{ID: id, Type: typeName[T]()}
		reportFault(s.logger, "sparse set lookup of missing id", err, "id", id, "type", err.Type)
	}
	return &s.dense[index]
}

// Lookup returns a pointer to the value stored under id and whether it was found.
func (s *PagedSet[T]) Lookup(id ID) (*T, bool) {
	index, ok := s.index(id)
	if !ok {
		return nil, false
	}
	return &s.dense[index], true
}

func (s *PagedSet[T]) Len() int {
	return len(s.dense)
}

// PageCount returns the number of allocated pages.
func (s *PagedSet[T]) PageCount() int {
	return len(s.pages)
}

func (s *PagedSet[T]) PageSize() uint32 {
	return s.pageSize
}

// Values returns the dense values. The slice aliases the set's storage.
func (s *PagedSet[T]) Values() []T {
	return s.dense
}

// IDs yields the stored ids in dense order.
func (s *PagedSet[T]) IDs() iter.Seq[ID] {
	return func(yield func(ID) bool) {
		for _, id := range s.denseToID {
			if !yield(id) {
				return
			}
		}
	}
}

// All yields every id with a pointer to its value, in dense order.
// The set must not be modified during iteration; use a Cursor for that.
func (s *PagedSet[T]) All() iter.Seq2[ID, *T] {
	return func(yield func(ID, *T) bool) {
		for i, id := range s.denseToID {
			if !yield(id, &s.dense[i]) {
				return
			}
		}
	}
}

// Clear removes every entry. Allocated pages are kept.
func (s *PagedSet[T]) Clear() {
	for _, id := range s.denseToID {
		s.setSlot(id, Tombstone)
	}
	clear(s.dense)
	s.dense = s.dense[:0]
	s.denseToID = s.denseToID[:0]
}

// Reserve grows the dense storage so that n entries fit without reallocation.
func (s *PagedSet[T]) Reserve(n int) {
	if cap(s.dense) >= n {
		return
	}
	dense := make([]T, len(s.dense), n)
	copy(dense, s.dense)
	s.dense = dense

	denseToID := make([]ID, len(s.denseToID), n)
	copy(denseToID, s.denseToID)
	s.denseToID = denseToID
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
