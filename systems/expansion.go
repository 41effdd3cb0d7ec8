package systems

// Expansion is the smoothed swarm expansion factor.
// Each step closes a fixed fraction of the gap to the active target, so it never snaps.
type Expansion struct {
	value     float32
	compact   float32
	dispersed float32
	rate      float32
}

// NewExpansion returns an expansion resting at compact.
func NewExpansion(compact, dispersed, rate float64) Expansion {
	return Expansion{
		value:     float32(compact),
		compact:   float32(compact),
		dispersed: float32(dispersed),
		rate:      float32(rate),
	}
}

// Target returns the factor the expansion approaches for the given intent.
func (e *Expansion) Target(intent bool) float32 {
	if intent {
		return e.dispersed
	}
	return e.compact
}

// Step advances one frame toward the intent's target and returns the new value.
func (e *Expansion) Step(intent bool) float32 {
	e.value = clampFloat(lerp32(e.value, e.Target(intent), e.rate), e.compact, e.dispersed)
	return e.value
}

// Value returns the current factor.
func (e *Expansion) Value() float32 {
	return e.value
}

// Progress returns how far the factor sits between compact and dispersed, in [0, 1].
func (e *Expansion) Progress() float32 {
	span := e.dispersed - e.compact
	if span <= 0 {
		return 0
	}
	return (e.value - e.compact) / span
}

// Reset returns the factor to compact.
func (e *Expansion) Reset() {
	e.value = e.compact
}
