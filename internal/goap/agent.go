package goap

import (
	"context"

	"github.com/rs/zerolog"

	goaperrors "goapengine/internal/errors"
	"goapengine/internal/goaplog"
	"goapengine/internal/goapmetrics"
)

// State is one of the two phases of the agent's tick loop.
type State int

const (
	// StatePlanning means the agent has no active plan and will try to
	// produce one each Update.
	StatePlanning State = iota
	// StateProcessing means the agent is executing a plan one action
	// at a time.
	StateProcessing
)

func (s State) String() string {
	if s == StateProcessing {
		return "PROCESSING"
	}
	return "PLANNING"
}

// Agent is the engine's state machine: it perceives every tick, then
// either searches for a plan (PLANNING) or advances one action at a
// time through an existing plan (PROCESSING). It exclusively owns its
// predicate handler, its goals, and its current plan; goals and
// actions hold only a non-owning reference back to it.
type Agent struct {
	id         string
	planner    *Planner
	predicates *PredicateHandler
	goals      []Goal
	perception *PerceptionSystem
	thresholds map[StimulusClass]Threshold
	acceptance map[StimulusClass]StimulusTransform

	state          State
	plan           *Plan
	actionIndex    int
	abortRequested bool
	started        bool
}

// NewAgent wires a planner, goal set, initial predicates, and an
// optional perception system (nil disables perception entirely, useful
// for planner-only tests) into a new agent. id is used only to tag log
// lines; callers with no natural identity can pass an empty string.
func NewAgent(id string, planner *Planner, goals []Goal, predicates []Predicate, perception *PerceptionSystem, thresholds map[StimulusClass]Threshold) *Agent {
	ph := NewPredicateHandler()
	ph.Reset(predicates)
	return &Agent{
		id:         id,
		planner:    planner,
		predicates: ph,
		goals:      goals,
		perception: perception,
		thresholds: thresholds,
		acceptance: map[StimulusClass]StimulusTransform{},
		state:      StatePlanning,
	}
}

// Startup creates every goal (letting each register the stimulus
// classes it cares about) and must be called exactly once before the
// first Update.
func (a *Agent) Startup() {
	for _, g := range a.goals {
		g.OnCreate(a)
		g.Reset()
	}
	a.started = true
}

// CurrentState reports whether the agent is currently planning or
// processing a plan.
func (a *Agent) CurrentState() State { return a.state }

// Predicates returns the agent's current predicate set as a snapshot.
func (a *Agent) Predicates() []Predicate { return a.predicates.List() }

// WhereIAm reads the payload of the well-known PlaceIam predicate, if
// the agent currently holds one.
func (a *Agent) WhereIAm() (string, bool) {
	p, ok := a.predicates.FindByName(PredicatePlaceIam)
	if !ok {
		return "", false
	}
	return p.Place()
}

// AddStimulusAcceptance registers fn as the transform used for
// stimuli of the given class. A goal typically calls this from
// OnCreate for every class it needs to react to.
func (a *Agent) AddStimulusAcceptance(class StimulusClass, fn StimulusTransform) {
	a.acceptance[class] = fn
}

// IsStimulusAccepted reports whether any registered transform handles
// s's class.
func (a *Agent) IsStimulusAccepted(s Stimulus) bool {
	_, ok := a.acceptance[s.Class()]
	return ok
}

// TransformStimulusIntoPredicates applies the registered transform for
// s's class, if any, returning the resulting predicate as a
// single-element slice, or nil if no transform is registered or the
// transform declines to raise a predicate for this stimulus.
func (a *Agent) TransformStimulusIntoPredicates(s Stimulus) []Predicate {
	fn, ok := a.acceptance[s.Class()]
	if !ok {
		return nil
	}
	p, ok := fn(s)
	if !ok {
		return nil
	}
	return []Predicate{p}
}

// OnNewPredicate adds or refreshes p in the agent's predicate set. If p
// was not already held and the agent is currently processing a plan,
// this requests an abort of that plan on the next Update; a refresh of
// an already-held predicate (same ID) never aborts.
func (a *Agent) OnNewPredicate(p Predicate) {
	_, alreadyHeld := a.predicates.FindByID(p.ID())
	a.predicates.AddOrReplace(p)
	if !alreadyHeld && a.state == StateProcessing {
		a.abortRequested = true
	}
}

// Update runs one tick: perception first, then either a planning
// attempt or one step of plan execution, depending on the agent's
// current state. It panics if called before Startup.
func (a *Agent) Update(ctx context.Context, dt float64) {
	if !a.started {
		goaplog.LogInvariantViolation(ctx, "Update called before Startup", goaperrors.ErrAgentNotStarted)
		panic(goaperrors.ErrAgentNotStarted)
	}
	goapmetrics.AgentTicks.Inc()
	_, logger := goaplog.NewTick(ctx, a.id)

	a.runPerception(dt)

	switch a.state {
	case StatePlanning:
		a.updatePlanning(logger)
	case StateProcessing:
		a.updateProcessing(logger, dt)
	}
}

func (a *Agent) runPerception(dt float64) {
	if a.perception == nil {
		return
	}
	a.perception.Update(dt, a, a.thresholds)
}

func (a *Agent) updatePlanning(logger zerolog.Logger) {
	plan, ok := a.planner.GetPlan(a.goals, a.predicates)
	if !ok {
		logger.Debug().Msg("no plan found")
		return
	}
	logger.Info().Uint32("cost", plan.Cost).Int("steps", plan.Len()).Msg("plan found")
	a.bindPlan(plan)
	a.plan = plan
	a.actionIndex = 0
	a.abortRequested = false
	a.state = StateProcessing
}

func (a *Agent) updateProcessing(logger zerolog.Logger, dt float64) {
	if a.abortRequested {
		a.plan.Goal.OnCancel(a.predicates)
		a.plan.Goal.Reset()
		goapmetrics.AgentAborts.Inc()
		logger.Info().Msg("plan aborted")
		a.plan = nil
		a.actionIndex = 0
		a.abortRequested = false
		a.state = StatePlanning
		return
	}

	current := a.plan.Steps[a.actionIndex]
	if current.Process == nil || current.Process(dt, current.Bound) {
		current.Accomplished = true
		for _, post := range current.Postconditions {
			a.predicates.AddOrReplace(post)
		}
		a.actionIndex++
	}

	if a.actionIndex >= len(a.plan.Steps) {
		goal := a.plan.Goal
		goal.OnAccomplished(a.predicates)
		goal.Reset()
		logger.Info().Msg("plan accomplished")
		a.plan = nil
		a.actionIndex = 0
		a.state = StatePlanning
	}
}

// bindPlan binds each action's preconditions, in plan order, to
// concrete predicate instances: the current predicate set for the
// first action(s) whose preconditions it satisfies directly, and
// earlier actions' own postconditions for the rest. Any predicate
// instance bound this way that the agent already holds is moved to the
// front of its predicate set, so the most recently consumed facts lead
// the list.
func (a *Agent) bindPlan(plan *Plan) {
	available := a.predicates.List()
	for _, act := range plan.Steps {
		matched, ok := act.MatchPreconditions(available)
		if !ok {
			panic(goaperrors.Wrap(goaperrors.CodeMissingBoundPredicate, act.Name, goaperrors.ErrMissingBoundPredicate))
		}
		act.Bound = matched
		act.Accomplished = false
		for _, m := range matched {
			if _, found := a.predicates.FindByID(m.ID()); found {
				a.predicates.MoveToFront(m.ID())
			}
		}
		available = append(available, act.Postconditions...)
	}
}
