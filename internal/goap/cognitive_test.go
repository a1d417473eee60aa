package goap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type acceptanceOnlyGoal struct {
	BaseGoal
	class StimulusClass
	fn    StimulusTransform
}

func (g *acceptanceOnlyGoal) OnCreate(agent *Agent) {
	agent.AddStimulusAcceptance(g.class, g.fn)
}

func TestCognitiveSystemIgnoresUnacceptedStimulusClass(t *testing.T) {
	agent := NewAgent("test", NewPlanner(), nil, nil, nil, nil)
	agent.Startup()

	mem := NewMemory()
	mem.Add(NewStimulus(1, "Noise", 5), 5)

	NewCognitiveSystem().Update(mem, agent)

	assert.Empty(t, agent.Predicates())
}

func TestCognitiveSystemDeliversTransformedPredicate(t *testing.T) {
	goal := &acceptanceOnlyGoal{class: "Food", fn: func(s Stimulus) (Predicate, bool) {
		return NewPredicate(PredicateID(s.ID()), "FOOD"), true
	}}
	agent := NewAgent("test", NewPlanner(), []Goal{goal}, nil, nil, nil)
	agent.Startup()

	mem := NewMemory()
	mem.Add(NewStimulus(7, "Food", 5), 5)

	NewCognitiveSystem().Update(mem, agent)

	p, ok := agent.predicates.FindByName("FOOD")
	require.True(t, ok)
	assert.Equal(t, PredicateID(7), p.ID())
}

func TestCognitiveSystemSkipsStimulusWhenTransformDeclines(t *testing.T) {
	goal := &acceptanceOnlyGoal{class: "Food", fn: func(Stimulus) (Predicate, bool) {
		return Predicate{}, false
	}}
	agent := NewAgent("test", NewPlanner(), []Goal{goal}, nil, nil, nil)
	agent.Startup()

	mem := NewMemory()
	mem.Add(NewStimulus(7, "Food", 5), 5)

	NewCognitiveSystem().Update(mem, agent)

	assert.Empty(t, agent.Predicates())
}
