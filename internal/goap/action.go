package goap

// ProcessFunc drives one action to completion over possibly many
// ticks. bound holds the concrete predicate instance matched to each
// entry of the action's Preconditions, in the same order, so the
// function can read back payloads (e.g. which place a GoTo action
// should walk towards). It returns true once the action is done.
type ProcessFunc func(dt float64, bound []Predicate) bool

// Action is a single operator: a named, costed step whose
// Preconditions (predicate names, in the order they must be satisfied)
// gate it and whose Postconditions (concrete predicate instances) it
// asserts once Process reports completion.
type Action struct {
	Name           string
	Preconditions  []string
	Postconditions []Predicate
	Cost           uint32
	Process        ProcessFunc

	Accomplished bool
	Bound        []Predicate
}

// MatchPreconditions returns, for each of the action's Preconditions in
// order, the first predicate in predicates sharing its name. It returns
// ok=false if any precondition has no match at all, in which case the
// returned slice is nil; matching is all-or-nothing.
func (a *Action) MatchPreconditions(predicates []Predicate) (matched []Predicate, ok bool) {
	matched = make([]Predicate, 0, len(a.Preconditions))
	for _, name := range a.Preconditions {
		found := false
		for _, p := range predicates {
			if p.Name() == name {
				matched = append(matched, p)
				found = true
				break
			}
		}
		if !found {
			return nil, false
		}
	}
	return matched, true
}

// Applicable reports whether every precondition can be matched against
// predicates.
func (a *Action) Applicable(predicates []Predicate) bool {
	_, ok := a.MatchPreconditions(predicates)
	return ok
}
