package goap

import "context"

// NavigationPath is a concrete route returned by a NavigationPlanner.
// The engine never computes one itself; it only walks the one a
// collaborator hands back.
type NavigationPath interface {
	Empty() bool
	IsEndOfPath(index int) bool
	Point(index int) Position
	HasReachedPoint(index int, current Position, epsilon float64) bool
}

// PathCallback receives the result of an asynchronous PathFromTo
// request. path is nil and err is non-nil if no path could be found;
// that failure is a recoverable collaborator outcome, not an engine
// invariant violation, and the caller is expected to surface it as a
// predicate rather than propagate err further.
type PathCallback func(path NavigationPath, err error)

// NavigationPlanner is the host-supplied pathfinding collaborator. The
// engine defines the contract only: no concrete implementation ships
// here, since pathfinding is domain-specific.
type NavigationPlanner interface {
	// FillLocationFor resolves a named place to a position, if known.
	FillLocationFor(name string) (Position, bool)

	// PathFromTo requests a path asynchronously; callback is invoked
	// exactly once, synchronously or later, with the result.
	PathFromTo(ctx context.Context, origin, destination Position, callback PathCallback)

	// ApproxCost estimates the cost of travelling between two points,
	// for use as an action's reported Cost without computing a full
	// path.
	ApproxCost(origin, destination Position) uint32
}

// Well-known predicate names a NewGoToAction uses to make an in-flight
// path request, and its possible failure, visible in the agent's own
// predicate set while the action waits on the asynchronous PathFromTo
// callback.
const (
	PredicatePathRequested = "GoT-PathRequested"
	PredicateNoPath        = "NoPath"
)

// NewGoToAction builds an Action that walks toward destination using a
// NavigationPlanner. Process requests the path at most once: on its
// first call it deposits PredicatePathRequested directly into agent's
// predicate set (bookkeeping, not a newly-arrived fact, so it does not
// trigger an abort) and calls PathFromTo. The callback — which the
// navigation planner is expected to run synchronously from within its
// own update, not on a separate task — either supplies a path, in
// which case Process starts walking its points on subsequent ticks, or
// reports failure, in which case PredicatePathRequested is retracted
// and PredicateNoPath is delivered through agent.OnNewPredicate
// instead: a freshly-arrived predicate, which does trigger an abort if
// this action's plan is mid-execution, sending the owning goal down its
// cancel path the way an unreachable destination should. Until a path
// has arrived, Process reports not-accomplished every tick, so the
// agent's state machine never advances past this action on the strength
// of a path that hasn't shown up yet.
func NewGoToAction(name string, preconditions []string, postconditions []Predicate, cost uint32,
	agent *Agent, planner NavigationPlanner, pendingID, noPathID PredicateID,
	origin, destination Position, epsilon float64) *Action {

	var (
		path      NavigationPath
		requested bool
		failed    bool
		index     int
	)

	process := func(dt float64, bound []Predicate) bool {
		if path == nil {
			if failed {
				return false
			}
			if !requested {
				requested = true
				agent.predicates.AddOrReplace(NewPredicate(pendingID, PredicatePathRequested))
				planner.PathFromTo(context.Background(), origin, destination, func(p NavigationPath, err error) {
					agent.predicates.Remove(pendingID)
					if err != nil || p == nil || p.Empty() {
						failed = true
						agent.OnNewPredicate(NewPredicate(noPathID, PredicateNoPath))
						return
					}
					path = p
				})
			}
			return false
		}
		if path.IsEndOfPath(index) {
			return true
		}
		if path.HasReachedPoint(index, destination, epsilon) {
			index++
		}
		return path.IsEndOfPath(index)
	}

	return &Action{Name: name, Preconditions: preconditions, Postconditions: postconditions, Cost: cost, Process: process}
}
