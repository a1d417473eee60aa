package goap

import "math"

// CostDisabled is the sentinel a Goal's Cost method returns to
// disable itself for the current planning pass, e.g. a "survive
// hunger" goal once the agent is no longer hungry.
const CostDisabled = math.MaxUint32

// Goal is a template-method style operator set: Actions supplies the
// chain the planner may schedule, and the OnCreate/Reset/OnAccomplished
// /OnCancel hooks let a concrete goal react to its own lifecycle. A
// goal owns no state the engine depends on beyond what these methods
// expose, so it can be implemented directly or by embedding BaseGoal
// and overriding only what differs.
type Goal interface {
	// Actions returns the operators the planner may chain to satisfy
	// this goal. The planner requires every one of them to be usable,
	// in some order, to accept this goal's plan.
	Actions() []*Action

	// Cost scores this goal for the current predicate set. Returning
	// CostDisabled removes the goal from consideration this tick.
	Cost(ph *PredicateHandler) uint32

	// OnCreate is called once, at Agent.Startup, with the owning
	// agent. It is the hook a goal uses to register the stimulus
	// classes it cares about via agent.AddStimulusAcceptance.
	OnCreate(agent *Agent)

	// Reset rebuilds the goal's action list, e.g. after OnAccomplished
	// or OnCancel, so the next planning pass sees fresh, unbound
	// actions.
	Reset()

	// OnAccomplished is called when every action in the goal's plan
	// has completed; it may mutate ph directly, e.g. retracting the
	// predicate that motivated the goal.
	OnAccomplished(ph *PredicateHandler)

	// OnCancel is called when a plan for this goal is abandoned mid
	// execution because of a newly arrived predicate.
	OnCancel(ph *PredicateHandler)
}

// BaseGoal is an embeddable no-op implementation of Goal. Concrete
// goals embed it and override only the methods whose default behavior
// doesn't fit.
type BaseGoal struct {
	actions []*Action
}

func (g *BaseGoal) Actions() []*Action { return g.actions }

// SetActions replaces the goal's action list, typically called from an
// overridden Reset.
func (g *BaseGoal) SetActions(actions []*Action) { g.actions = actions }

func (g *BaseGoal) Cost(*PredicateHandler) uint32 { return 0 }

func (g *BaseGoal) OnCreate(*Agent) {}

func (g *BaseGoal) Reset() {}

func (g *BaseGoal) OnAccomplished(*PredicateHandler) {}

func (g *BaseGoal) OnCancel(*PredicateHandler) {}
