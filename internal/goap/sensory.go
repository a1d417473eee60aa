package goap

import "sync"

// SensorySystem is the pub/sub hub sensors notify. Producers call
// Notify concurrently with the agent's own tick; Update drains
// everything received since the last call, all at once, so a stimulus
// that arrives mid-drain is held over to the next tick rather than
// processed twice or torn.
//
// The mutex-guarded-slice shape (rather than a channel fan-out) mirrors
// the drain-everything-at-once requirement directly: a channel would
// deliver continuously, and nothing here needs continuous delivery.
type SensorySystem struct {
	mu       sync.Mutex
	received []Stimulus
}

// NewSensorySystem returns an empty sensory system.
func NewSensorySystem() *SensorySystem {
	return &SensorySystem{}
}

// Notify queues a stimulus for the next Update. Safe for concurrent
// use by multiple sensors.
func (s *SensorySystem) Notify(stimulus Stimulus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.received = append(s.received, stimulus)
}

// Update drains every stimulus queued since the last call and, for
// each, consults thresholds keyed by the stimulus's class. A stimulus
// whose class has no registered threshold, or whose threshold rejects
// it, is dropped silently. Everything else is added to mem with its
// own DurationInMemory as its TTL.
func (s *SensorySystem) Update(dt float64, mem *Memory, thresholds map[StimulusClass]Threshold) {
	s.mu.Lock()
	drained := s.received
	s.received = nil
	s.mu.Unlock()

	for _, stimulus := range drained {
		threshold, ok := thresholds[stimulus.Class()]
		if !ok || !threshold.IsPerceived(stimulus) {
			continue
		}
		mem.AddOrReplace(stimulus, stimulus.DurationInMemory())
	}
}
