package goap

import goaperrors "goapengine/internal/errors"

// PredicateHandler owns an agent's current set of world facts. Order is
// insertion order except where MoveToFront reorders it; callers that
// need a stable read should treat List's result as a snapshot.
type PredicateHandler struct {
	items []Predicate
}

// NewPredicateHandler returns an empty handler.
func NewPredicateHandler() *PredicateHandler {
	return &PredicateHandler{}
}

// Add appends p, preserving insertion order. It panics if a predicate
// with the same ID is already present: callers that want replace
// semantics must use AddOrReplace instead.
func (h *PredicateHandler) Add(p Predicate) {
	if _, found := h.FindByID(p.ID()); found {
		panic(goaperrors.Wrap(goaperrors.CodeDuplicatePredicateID, p.Name(), goaperrors.ErrDuplicatePredicateID))
	}
	h.items = append(h.items, p)
}

// AddOrReplace overwrites the predicate sharing p's ID in place,
// preserving its position, or appends p if no such predicate exists.
func (h *PredicateHandler) AddOrReplace(p Predicate) {
	for i, existing := range h.items {
		if existing.ID() == p.ID() {
			h.items[i] = p
			return
		}
	}
	h.items = append(h.items, p)
}

// Remove deletes the predicate with the given ID, if present.
func (h *PredicateHandler) Remove(id PredicateID) {
	for i, p := range h.items {
		if p.ID() == id {
			h.items = append(h.items[:i], h.items[i+1:]...)
			return
		}
	}
}

// MoveToFront relocates the predicate with the given ID to the front of
// the list, preserving the relative order of the rest. It is a no-op if
// the ID is absent or already at the front.
func (h *PredicateHandler) MoveToFront(id PredicateID) {
	for i, p := range h.items {
		if p.ID() == id {
			if i == 0 {
				return
			}
			h.items = append(h.items[:i:i], h.items[i+1:]...)
			h.items = append([]Predicate{p}, h.items...)
			return
		}
	}
}

// Reset atomically replaces the handler's contents.
func (h *PredicateHandler) Reset(predicates []Predicate) {
	h.items = append([]Predicate{}, predicates...)
}

// FindByID returns the predicate with the given ID, if present.
func (h *PredicateHandler) FindByID(id PredicateID) (Predicate, bool) {
	for _, p := range h.items {
		if p.ID() == id {
			return p, true
		}
	}
	return Predicate{}, false
}

// FindByName returns the first predicate with the given name, if
// present.
func (h *PredicateHandler) FindByName(name string) (Predicate, bool) {
	for _, p := range h.items {
		if p.Name() == name {
			return p, true
		}
	}
	return Predicate{}, false
}

// List returns a snapshot of the handler's current predicates in
// order.
func (h *PredicateHandler) List() []Predicate {
	return append([]Predicate{}, h.items...)
}

// Size returns the number of predicates currently held.
func (h *PredicateHandler) Size() int { return len(h.items) }
