package goap

// PerceptionSystem owns one agent's sensory system and memory and runs
// them, in order, each tick: sensory intake first, then memory decay,
// then the cognitive transform into predicates. The ordering matters —
// a stimulus delivered this tick must survive the decay pass before the
// cognitive stage can see it.
type PerceptionSystem struct {
	Sensory   *SensorySystem
	Memory    *Memory
	Cognitive *CognitiveSystem
}

// NewPerceptionSystem wires together a fresh sensory system, memory,
// and cognitive system.
func NewPerceptionSystem() *PerceptionSystem {
	return &PerceptionSystem{
		Sensory:   NewSensorySystem(),
		Memory:    NewMemory(),
		Cognitive: NewCognitiveSystem(),
	}
}

// Update runs the sensory, memory, and cognitive stages in order for
// one tick.
func (p *PerceptionSystem) Update(dt float64, agent *Agent, thresholds map[StimulusClass]Threshold) {
	p.Sensory.Update(dt, p.Memory, thresholds)
	p.Memory.Update(dt)
	p.Cognitive.Update(p.Memory, agent)
}
