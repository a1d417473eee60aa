package goap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredicateHandlerEmptyByDefault(t *testing.T) {
	h := NewPredicateHandler()
	assert.Equal(t, 0, h.Size())
	assert.Empty(t, h.List())
}

func TestPredicateHandlerAddPreservesInsertionOrder(t *testing.T) {
	h := NewPredicateHandler()
	h.Add(NewPredicate(1, "A"))
	h.Add(NewPredicate(2, "B"))
	h.Add(NewPredicate(3, "C"))

	names := make([]string, 0, 3)
	for _, p := range h.List() {
		names = append(names, p.Name())
	}
	assert.Equal(t, []string{"A", "B", "C"}, names)
}

func TestPredicateHandlerAddPanicsOnDuplicateID(t *testing.T) {
	h := NewPredicateHandler()
	h.Add(NewPredicate(1, "A"))
	assert.Panics(t, func() {
		h.Add(NewPredicate(1, "A-again"))
	})
}

func TestPredicateHandlerFindByIDAndName(t *testing.T) {
	h := NewPredicateHandler()
	h.Add(NewPredicate(1, "FOOD"))

	found, ok := h.FindByID(1)
	assert.True(t, ok)
	assert.Equal(t, "FOOD", found.Name())

	_, ok = h.FindByID(99)
	assert.False(t, ok)

	found, ok = h.FindByName("FOOD")
	assert.True(t, ok)
	assert.Equal(t, PredicateID(1), found.ID())

	_, ok = h.FindByName("MISSING")
	assert.False(t, ok)
}

func TestPredicateHandlerAddOrReplaceOverwritesInPlace(t *testing.T) {
	h := NewPredicateHandler()
	h.Add(NewPredicate(1, "A"))
	h.Add(NewPredicate(2, "B"))

	h.AddOrReplace(NewValuePredicate(1, "A", 42))
	assert.Equal(t, 2, h.Size())

	found, _ := h.FindByID(1)
	value, ok := found.Value()
	assert.True(t, ok)
	assert.Equal(t, 42.0, value)

	names := make([]string, 0, 2)
	for _, p := range h.List() {
		names = append(names, p.Name())
	}
	assert.Equal(t, []string{"A", "B"}, names)
}

func TestPredicateHandlerAddOrReplaceAppendsWhenAbsent(t *testing.T) {
	h := NewPredicateHandler()
	h.Add(NewPredicate(1, "A"))
	h.AddOrReplace(NewPredicate(2, "B"))
	assert.Equal(t, 2, h.Size())
}

func TestPredicateHandlerRemove(t *testing.T) {
	h := NewPredicateHandler()
	h.Add(NewPredicate(1, "A"))
	h.Add(NewPredicate(2, "B"))

	h.Remove(1)
	assert.Equal(t, 1, h.Size())
	_, ok := h.FindByID(1)
	assert.False(t, ok)
}

func TestPredicateHandlerMoveToFront(t *testing.T) {
	h := NewPredicateHandler()
	h.Add(NewPredicate(1, "F"))
	h.Add(NewPredicate(2, "A"))
	h.Add(NewPredicate(3, "B"))

	h.MoveToFront(3)

	names := make([]string, 0, 3)
	for _, p := range h.List() {
		names = append(names, p.Name())
	}
	assert.Equal(t, []string{"B", "F", "A"}, names)
}

func TestPredicateHandlerReset(t *testing.T) {
	h := NewPredicateHandler()
	h.Add(NewPredicate(1, "A"))

	h.Reset([]Predicate{NewPredicate(2, "B"), NewPredicate(3, "C")})

	assert.Equal(t, 2, h.Size())
	_, ok := h.FindByID(1)
	assert.False(t, ok)
	_, ok = h.FindByID(2)
	assert.True(t, ok)
}
