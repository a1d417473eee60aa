package goap

// StimulusTransform converts a stimulus into a predicate for an agent
// that has accepted the stimulus's class. It returns ok=false if, on
// closer inspection of this particular stimulus, no predicate should
// be raised after all.
type StimulusTransform func(Stimulus) (Predicate, bool)

// CognitiveSystem is the last stage of the per-tick perception
// pipeline. For every stimulus currently held in memory it asks the
// agent whether the stimulus's class is accepted and, if so, asks the
// agent to transform it into zero or more predicates, each delivered
// back to the agent via OnNewPredicate.
type CognitiveSystem struct{}

// NewCognitiveSystem returns a ready-to-use cognitive system. It holds
// no state of its own between ticks.
func NewCognitiveSystem() *CognitiveSystem {
	return &CognitiveSystem{}
}

// Update walks mem's stimuli in insertion order and delivers any
// predicates the agent's registered transforms produce.
func (c *CognitiveSystem) Update(mem *Memory, agent *Agent) {
	mem.ForEach(func(s Stimulus) bool {
		if !agent.IsStimulusAccepted(s) {
			return true
		}
		for _, p := range agent.TransformStimulusIntoPredicates(s) {
			agent.OnNewPredicate(p)
		}
		return true
	})
}
