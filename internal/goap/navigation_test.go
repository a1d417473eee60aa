package goap

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPath is a minimal NavigationPath used to drive NewGoToAction
// without a real pathfinding implementation. HasReachedPoint always
// reports arrival, so the action consumes its one waypoint in a single
// tick.
type stubPath struct {
	points []Position
}

func (p *stubPath) Empty() bool            { return len(p.points) == 0 }
func (p *stubPath) IsEndOfPath(i int) bool { return i >= len(p.points) }
func (p *stubPath) Point(i int) Position   { return p.points[i] }
func (p *stubPath) HasReachedPoint(i int, current Position, epsilon float64) bool {
	return true
}

// syncPlanner resolves PathFromTo synchronously, mirroring the design
// notes: "the callback runs synchronously from within the navigation
// planner's own update."
type syncPlanner struct {
	path NavigationPath
}

func (p *syncPlanner) FillLocationFor(string) (Position, bool)       { return Position{}, false }
func (p *syncPlanner) ApproxCost(_, _ Position) uint32               { return 1 }
func (p *syncPlanner) PathFromTo(_ context.Context, _, _ Position, callback PathCallback) {
	callback(p.path, nil)
}

// failingPlanner always reports that no path could be found.
type failingPlanner struct{}

func (p *failingPlanner) FillLocationFor(string) (Position, bool) { return Position{}, false }
func (p *failingPlanner) ApproxCost(_, _ Position) uint32         { return 1 }
func (p *failingPlanner) PathFromTo(_ context.Context, _, _ Position, callback PathCallback) {
	callback(nil, errors.New("no path"))
}

// goToGoal mirrors GoToGoalTest.cpp's single-action goal: one GoTo
// action, reacting to cancellation so tests can observe it.
type goToGoal struct {
	BaseGoal
	cancelled bool
}

func newGoToGoal(act *Action) *goToGoal {
	g := &goToGoal{}
	g.SetActions([]*Action{act})
	return g
}

func (g *goToGoal) OnCancel(*PredicateHandler) { g.cancelled = true }

func TestNewGoToActionWalksPathThenArrivesAtPlace(t *testing.T) {
	planner := &syncPlanner{path: &stubPath{points: []Position{{X: 1}}}}
	seed := []Predicate{NewPredicate(1, "GoToSaloon")}
	agent := NewAgent("cowboy", NewPlanner(), nil, seed, nil, nil)

	act := NewGoToAction("GoTo", []string{"GoToSaloon"},
		[]Predicate{NewPlacePredicate(2, PredicatePlaceIam, "Saloon")}, 1,
		agent, planner, 100, 101, Position{}, Position{X: 1}, 0.1)
	goal := newGoToGoal(act)
	agent.goals = []Goal{goal}
	agent.Startup()

	agent.Update(context.Background(), 0.16) // PLANNING -> PROCESSING
	require.Equal(t, StateProcessing, agent.CurrentState())

	agent.Update(context.Background(), 0.16) // requests path; resolved synchronously
	_, pending := agent.predicates.FindByName(PredicatePathRequested)
	assert.False(t, pending, "pending predicate should already be retracted once the path arrives")

	agent.Update(context.Background(), 0.16) // walks the one waypoint, arrives
	assert.Equal(t, StatePlanning, agent.CurrentState())

	place, ok := agent.WhereIAm()
	require.True(t, ok)
	assert.Equal(t, "Saloon", place)
}

func TestNewGoToActionSurfacesNoPathAndAbortsThePlan(t *testing.T) {
	planner := &failingPlanner{}
	seed := []Predicate{NewPredicate(1, "GoToSaloon")}
	agent := NewAgent("cowboy", NewPlanner(), nil, seed, nil, nil)

	act := NewGoToAction("GoTo", []string{"GoToSaloon"}, nil, 1,
		agent, planner, 100, 101, Position{}, Position{X: 1}, 0.1)
	goal := newGoToGoal(act)
	agent.goals = []Goal{goal}
	agent.Startup()

	agent.Update(context.Background(), 0.16) // PLANNING -> PROCESSING
	require.Equal(t, StateProcessing, agent.CurrentState())

	agent.Update(context.Background(), 0.16) // requests path; planner fails synchronously
	require.Equal(t, StateProcessing, agent.CurrentState(), "abort is only observed on the following tick")

	agent.Update(context.Background(), 0.16) // abort now takes effect
	assert.Equal(t, StatePlanning, agent.CurrentState())
	assert.True(t, goal.cancelled)

	_, hasNoPath := agent.predicates.FindByName(PredicateNoPath)
	assert.True(t, hasNoPath)
	_, stillPending := agent.predicates.FindByName(PredicatePathRequested)
	assert.False(t, stillPending)
}
