package goap

// Threshold decides whether a stimulus of its registered class is
// strong enough to be perceived at all, e.g. a vision threshold that
// rejects sightings beyond a certain distance.
type Threshold interface {
	IsPerceived(s Stimulus) bool
}

// ThresholdFunc adapts a plain function to a Threshold.
type ThresholdFunc func(Stimulus) bool

func (f ThresholdFunc) IsPerceived(s Stimulus) bool { return f(s) }

// AlwaysPerceived is a threshold that accepts every stimulus of its
// registered class, useful for classes with no distance/intensity
// cutoff.
var AlwaysPerceived = ThresholdFunc(func(Stimulus) bool { return true })
