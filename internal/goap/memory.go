package goap

import "goapengine/internal/goapmetrics"

type memoryEntry struct {
	item      Stimulus
	remaining float64
}

// Memory is a short-term, TTL-bounded buffer of stimuli. An entry
// remains visible for as long as its remaining lifetime stays at zero or
// above after each Update's decrement; it is evicted in the first Update
// call that drives it below zero, so a stimulus added with TTL T and
// updated in increments of dt is still present after floor(T/dt) whole
// updates and gone after one more.
type Memory struct {
	entries []memoryEntry
}

// NewMemory returns an empty memory buffer.
func NewMemory() *Memory {
	return &Memory{}
}

// IsEmpty reports whether the buffer currently holds nothing.
func (m *Memory) IsEmpty() bool { return len(m.entries) == 0 }

// Size returns the number of stimuli currently held.
func (m *Memory) Size() int { return len(m.entries) }

// Add appends item with the given TTL in seconds, regardless of
// whether an entry for the same stimulus ID already exists.
func (m *Memory) Add(item Stimulus, ttlSeconds float64) {
	m.entries = append(m.entries, memoryEntry{item: item, remaining: ttlSeconds})
}

// AddOrReplace overwrites the entry keyed by item.ID(), resetting its
// remaining lifetime to ttlSeconds and preserving its position, or
// appends a new entry if none exists.
func (m *Memory) AddOrReplace(item Stimulus, ttlSeconds float64) {
	for i, e := range m.entries {
		if e.item.ID() == item.ID() {
			m.entries[i] = memoryEntry{item: item, remaining: ttlSeconds}
			return
		}
	}
	m.Add(item, ttlSeconds)
}

// Update decrements every entry's remaining lifetime by dt and evicts
// any entry whose remaining lifetime is now below zero.
func (m *Memory) Update(dt float64) {
	kept := m.entries[:0]
	evicted := 0
	for _, e := range m.entries {
		e.remaining -= dt
		if e.remaining >= 0 {
			kept = append(kept, e)
		} else {
			evicted++
		}
	}
	m.entries = kept
	if evicted > 0 {
		goapmetrics.MemoryEvictions.Add(float64(evicted))
	}
}

// ForEach calls fn with each stimulus in insertion order, stopping
// early if fn returns false.
func (m *Memory) ForEach(fn func(Stimulus) bool) {
	for _, e := range m.entries {
		if !fn(e.item) {
			return
		}
	}
}
