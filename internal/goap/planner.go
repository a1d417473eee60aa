package goap

import (
	"time"

	"goapengine/internal/goapmetrics"
)

// Planner searches goals' action sets for valid execution orders and
// selects among them. A single implementation satisfies both the
// "direct" single-plan contract (GetPlan) and the backward-chaining,
// multi-goal contract (GetPlanToReach); the two differ only in how
// candidates are combined, not in how a goal's own chain is built.
type Planner struct{}

// NewPlanner returns a ready-to-use planner. It carries no state of its
// own between calls.
func NewPlanner() *Planner {
	return &Planner{}
}

// GetPlan returns the lowest-cost plan across every goal whose full
// action set can be chained, in some order, from predicates' current
// contents. A goal's plan cost is the sum of its actions' costs, since
// "fully consumable" plans always use every one of a goal's actions
// regardless of order. Ties are broken by goal declaration order. It
// returns (nil, false) if no goal has predicates to work with or no
// goal's actions chain validly — this is an expected, non-error
// outcome.
func (p *Planner) GetPlan(goals []Goal, ph *PredicateHandler) (*Plan, bool) {
	start := time.Now()
	plan, ok := p.getPlan(goals, ph)
	goapmetrics.PlanDuration.Observe(time.Since(start).Seconds())
	if ok {
		goapmetrics.PlansComputed.Inc()
	} else {
		goapmetrics.PlansNotFound.Inc()
	}
	return plan, ok
}

func (p *Planner) getPlan(goals []Goal, ph *PredicateHandler) (*Plan, bool) {
	if len(goals) == 0 {
		return nil, false
	}
	predicates := ph.List()
	if len(predicates) == 0 {
		return nil, false
	}

	var best *Plan
	for _, g := range goals {
		if g.Cost(ph) == CostDisabled {
			continue
		}
		if len(g.Actions()) == 0 {
			// A goal with nothing to do can't be "fully consumed" into a
			// real plan; without this guard it would win every comparison
			// as a free zero-cost, zero-step plan.
			continue
		}
		chain, cost, ok := chainForGoal(g.Actions(), predicates)
		if !ok {
			continue
		}
		if best == nil || cost < best.Cost {
			best = &Plan{Goal: g, Steps: chain, Cost: cost}
		}
	}
	return best, best != nil
}

// GetPlanToReach returns the cheapest set of sub-plans, one per
// contributing goal, whose combined postconditions cover every
// predicate in desired (matched by name). Goals may depend on one
// another: a combination is feasible as long as *some* processing order
// of its goals lets each goal's own chain be built from the current
// predicates plus the postconditions of the goals already placed ahead
// of it — one goal's output may be another's precondition. When a
// single goal can reach everything in desired by itself, and no
// combination of other goals does so more cheaply, the result is that
// one sub-plan. Sub-plans are returned in the declaration order of the
// goals they belong to, not the order they were placed in while
// checking feasibility. It returns nil if no combination of goals
// covers desired.
func (p *Planner) GetPlanToReach(goals []Goal, ph *PredicateHandler, desired []Predicate) []*Plan {
	if len(goals) == 0 || len(desired) == 0 {
		return nil
	}
	usable := make([]Goal, 0, len(goals))
	for _, g := range goals {
		if len(g.Actions()) > 0 {
			usable = append(usable, g)
		}
	}
	if len(usable) == 0 {
		return nil
	}
	predicates := ph.List()

	desiredNames := make(map[string]struct{}, len(desired))
	for _, d := range desired {
		desiredNames[d.Name()] = struct{}{}
	}

	// Exhaustive subset search: goal counts are small, so a full 2^n
	// scan for the minimum-cost covering combination is cheap and
	// exact, unlike a greedy set cover which can miss a cheaper
	// combination in favor of a locally-bigger one. Each candidate
	// subset's own feasibility (not just its cost) has to be
	// determined by chainForGoalSubset, since a goal in the subset may
	// only become chainable once another goal in the same subset has
	// run.
	n := len(usable)
	var bestMask uint64
	var bestChains map[int][]*Action
	var bestCost uint32
	found := false

	for mask := uint64(1); mask < (uint64(1) << n); mask++ {
		chains, cost, ok := chainForGoalSubset(usable, mask, predicates)
		if !ok {
			continue
		}
		produced := map[string]struct{}{}
		for _, chain := range chains {
			for _, a := range chain {
				for _, post := range a.Postconditions {
					produced[post.Name()] = struct{}{}
				}
			}
		}
		if !coversAll(produced, desiredNames) {
			continue
		}
		if !found || cost < bestCost {
			bestMask, bestChains, bestCost, found = mask, chains, cost, true
		}
	}
	if !found {
		return nil
	}

	var result []*Plan
	for i := 0; i < n; i++ {
		if bestMask&(1<<uint(i)) != 0 {
			chain := bestChains[i]
			var cost uint32
			for _, a := range chain {
				cost += a.Cost
			}
			result = append(result, &Plan{Goal: usable[i], Steps: chain, Cost: cost})
		}
	}
	return result
}

func coversAll(have, want map[string]struct{}) bool {
	for name := range want {
		if _, ok := have[name]; !ok {
			return false
		}
	}
	return true
}

// chainForGoalSubset tries to chain every goal selected by mask,
// choosing a processing order among them so that each goal's own chain
// (built via chainForGoal) becomes feasible using the current
// predicates plus the postconditions already produced by goals placed
// earlier. It mirrors chainForGoal's own greedy round-robin one level
// up: each round, scan the not-yet-placed selected goals in declaration
// order and place the first whose chain is already buildable, repeat
// until every selected goal is placed or a round makes no progress.
// Because a goal's postconditions only ever add to what's available,
// never remove from it, this is a complete search for a feasible goal
// ordering, not merely a heuristic one.
func chainForGoalSubset(goals []Goal, mask uint64, predicates []Predicate) (chains map[int][]*Action, cost uint32, ok bool) {
	n := len(goals)
	want := 0
	for i := 0; i < n; i++ {
		if mask&(1<<uint(i)) != 0 {
			want++
		}
	}

	chains = make(map[int][]*Action, want)
	available := append([]Predicate{}, predicates...)
	placed := 0

	for placed < want {
		progressed := false
		for i := 0; i < n; i++ {
			if mask&(1<<uint(i)) == 0 {
				continue
			}
			if _, done := chains[i]; done {
				continue
			}
			chain, c, chainOK := chainForGoal(goals[i].Actions(), available)
			if !chainOK {
				continue
			}
			chains[i] = chain
			cost += c
			for _, a := range chain {
				available = append(available, a.Postconditions...)
			}
			placed++
			progressed = true
			break
		}
		if !progressed {
			return nil, 0, false
		}
	}
	return chains, cost, true
}

// chainForGoal finds a valid execution order for every action in
// actions, given the predicates currently available. It greedily takes,
// each round, the first action (in declaration order) whose
// preconditions are already satisfiable; because postconditions only
// ever add to what's available, never remove from it, this is a
// complete topological-order search, not merely a heuristic one — if
// any valid order exists, this finds one. It returns ok=false if some
// actions can never become satisfiable (a cycle, or a precondition
// nothing in the set produces).
func chainForGoal(actions []*Action, predicates []Predicate) (chain []*Action, cost uint32, ok bool) {
	n := len(actions)
	if n == 0 {
		return nil, 0, true
	}

	used := make([]bool, n)
	available := append([]Predicate{}, predicates...)
	chain = make([]*Action, 0, n)

	for len(chain) < n {
		progressed := false
		for i, a := range actions {
			if used[i] {
				continue
			}
			if a.Applicable(available) {
				used[i] = true
				chain = append(chain, a)
				available = append(available, a.Postconditions...)
				cost += a.Cost
				progressed = true
				break
			}
		}
		if !progressed {
			return nil, 0, false
		}
	}
	return chain, cost, true
}
