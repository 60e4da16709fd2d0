package sparse

import (
	"fmt"
	"maps"
	"slices"

	"github.com/TheBitDrifter/mask"
	iter_util "github.com/TheBitDrifter/util/iter"
)

// Signatures are mask.Mask bitsets, one bit per registered set.
const maxRegistrySets = 64

var _ Registry = &registry{}

type registry struct {
	locked      bool
	sets        []Set
	setIndices  map[string]int
	maxCapacity int
	opQueue     opQueue
}

func newRegistry(capacity int) *registry {
	if capacity <= 0 || capacity > maxRegistrySets {
		capacity = maxRegistrySets
	}
	return &registry{
		setIndices:  make(map[string]int),
		maxCapacity: capacity,
		opQueue:     newOpQueue(),
	}
}

// Register adds set under name and returns its signature bit.
func (r *registry) Register(name string, set Set) (uint32, error) {
	if r.locked {
		return 0, LockedRegistryError{}
	}
	if set == nil {
		return 0, NilSetError{Name: name}
	}
	if _, exists := r.setIndices[name]; exists {
		return 0, SetExistsError{Name: name}
	}
	if len(r.sets) >= r.maxCapacity {
		return 0, RegistryFullError{Capacity: r.maxCapacity}
	}

	idx := len(r.sets)
	r.setIndices[name] = idx
	r.sets = append(r.sets, set)
	return uint32(idx), nil
}

func (r *registry) Set(name string) (Set, bool) {
	idx, ok := r.setIndices[name]
	if !ok {
		return nil, false
	}
	return r.sets[idx], true
}

// Names returns the registered names in sorted order.
func (r *registry) Names() []string {
	names := iter_util.Collect(maps.Keys(r.setIndices))
	slices.Sort(names)
	return names
}

func (r *registry) Len() int {
	return len(r.sets)
}

// Signature marks the bit of every registered set that contains id.
func (r *registry) Signature(id ID) mask.Mask {
	var signature mask.Mask
	for i, set := range r.sets {
		if set.Contains(id) {
			signature.Mark(uint32(i))
		}
	}
	return signature
}

// HasAll reports whether every named set contains id. Unknown names never match.
func (r *registry) HasAll(id ID, names ...string) bool {
	var required mask.Mask
	for _, name := range names {
		idx, ok := r.setIndices[name]
		if !ok {
			return false
		}
		required.Mark(uint32(idx))
	}
	signature := r.Signature(id)
	return signature.ContainsAll(required)
}

func (r *registry) Remove(name string, id ID) (bool, error) {
	if r.locked {
		return false, LockedRegistryError{}
	}
	set, ok := r.Set(name)
	if !ok {
		return false, SetNotFoundError{Name: name}
	}
	return set.Remove(id), nil
}

// RemoveAll removes id from every registered set and returns how many held it.
func (r *registry) RemoveAll(id ID) (int, error) {
	if r.locked {
		return 0, LockedRegistryError{}
	}
	removed := 0
	for _, set := range r.sets {
		if set.Remove(id) {
			removed++
		}
	}
	return removed, nil
}

func (r *registry) EnqueueRemove(name string, id ID) error {
	if !r.locked {
		_, err := r.Remove(name, id)
		return err
	}
	if _, ok := r.setIndices[name]; !ok {
		return SetNotFoundError{Name: name}
	}
	r.opQueue.EnqueueRemove(name, id)
	return nil
}

func (r *registry) EnqueueRemoveAll(id ID) error {
	if !r.locked {
		if _, err := r.RemoveAll(id); err != nil {
			return fmt.Errorf("failed to remove id directly: %w", err)
		}
		return nil
	}
	r.opQueue.EnqueueRemoveAll(id)
	return nil
}

func (r *registry) Locked() bool {
	return r.locked
}

func (r *registry) Lock() {
	r.locked = true
}

func (r *registry) Unlock() {
	r.locked = false
	err := r.processOperationQueue()
	if err != nil {
		panic(err)
	}
}
