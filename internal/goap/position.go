package goap

// Position is a point in the host's world space. The engine never
// interprets it; it only carries it between predicates, stimuli, and
// the navigation collaborator.
type Position struct {
	X, Y, Z float64
}
