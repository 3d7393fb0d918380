// Package client is a UI-framework-independent resource store for the
// Eventide API. Mutations apply locally first, then hit the server; a
// failed call restores the pre-mutation snapshot.
package client

// Resource is anything the store can hold. Key returns the server-side
// identifier, or the provisional one for rows not yet confirmed.
type Resource interface {
	Key() string
}

type OpKind int

const (
	OpAdd OpKind = iota
	OpUpdate
	OpDelete
)

// OpState is the lifecycle of one optimistic mutation. Every operation
// starts pending and ends in exactly one of the two terminal states.
type OpState string

const (
	OpPending    OpState = "pending"
	OpApplied    OpState = "applied"
	OpRolledBack OpState = "rolled_back"
)

// OpResult describes one finished (or in-flight) mutation.
type OpResult struct {
	Kind  OpKind
	Key   string
	State OpState
	Err   error
}

// applyAdd returns a new list with the item appended. Input is never
// mutated; callers rely on snapshots staying intact.
func applyAdd[T Resource](items []T, item T) []T {
	next := make([]T, len(items), len(items)+1)
	copy(next, items)
	return append(next, item)
}

// applyUpdate replaces the item with the matching key. An unknown key
// leaves the list unchanged.
func applyUpdate[T Resource](items []T, item T) []T {
	next := make([]T, len(items))
	copy(next, items)
	for i, existing := range next {
		if existing.Key() == item.Key() {
			next[i] = item
			break
		}
	}
	return next
}

// applyDelete removes the item with the matching key.
func applyDelete[T Resource](items []T, key string) []T {
	next := make([]T, 0, len(items))
	for _, existing := range items {
		if existing.Key() != key {
			next = append(next, existing)
		}
	}
	return next
}

// resolve turns the outcome of the network call into the terminal state.
func resolve(op OpResult, err error) OpResult {
	op.Err = err
	if err != nil {
		op.State = OpRolledBack
	} else {
		op.State = OpApplied
	}
	return op
}
