package sparse

import (
	"fmt"
)

type operation struct {
	typ  operationType
	name string
	id   ID
}

type operationType int

const (
	opNone operationType = iota - 1
	opRemove
	opRemoveAll
)

type opQueue struct {
	removeOps        []operation
	pendingRemoveAll map[ID]struct{}
	pendingRemoves   map[ID][]int
}

func newOpQueue() opQueue {
	return opQueue{
		pendingRemoveAll: make(map[ID]struct{}),
		pendingRemoves:   make(map[ID][]int),
	}
}

func (r *registry) processOperationQueue() error {
	if len(r.opQueue.removeOps) == 0 {
		return nil
	}

	for _, op := range r.opQueue.removeOps {
		switch op.typ {
		case opRemove:
			if _, err := r.Remove(op.name, op.id); err != nil {
				return fmt.Errorf("failed to process queued removal of id %d from %s: %w", op.id, op.name, err)
			}
		case opRemoveAll:
			if _, err := r.RemoveAll(op.id); err != nil {
				return fmt.Errorf("failed to process queued removal of id %d: %w", op.id, err)
			}
		}
	}

	r.opQueue.removeOps = r.opQueue.removeOps[:0]
	clear(r.opQueue.pendingRemoveAll)
	clear(r.opQueue.pendingRemoves)
	return nil
}

func (q *opQueue) EnqueueRemoveAll(id ID) {
	if _, exists := q.pendingRemoveAll[id]; exists {
		return
	}
	q.pendingRemoveAll[id] = struct{}{}

	// Single-set removals are subsumed by removing from every set
	for _, idx := range q.pendingRemoves[id] {
		q.removeOps[idx].typ = opNone
	}
	delete(q.pendingRemoves, id)

	q.removeOps = append(q.removeOps, operation{
		typ: opRemoveAll,
		id:  id,
	})
}

func (q *opQueue) EnqueueRemove(name string, id ID) {
	if _, removingAll := q.pendingRemoveAll[id]; removingAll {
		return
	}
	for _, idx := range q.pendingRemoves[id] {
		if q.removeOps[idx].name == name {
			return
		}
	}

	q.pendingRemoves[id] = append(q.pendingRemoves[id], len(q.removeOps))
	q.removeOps = append(q.removeOps, operation{
		typ:  opRemove,
		name: name,
		id:   id,
	})
}
