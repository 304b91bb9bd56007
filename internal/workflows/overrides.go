package workflows

import (
	"time"

	"github.com/PolarWolf314/unveil/internal/reveal"
)

// Overrides replaces individual preset values. Nil fields keep the preset
// value, so only flags the user actually set need to be filled in.
type Overrides struct {
	TickInterval      *time.Duration
	MaxIterations     *int
	Sequential        *bool
	Direction         *reveal.Direction
	Alphabet          *string
	OriginalCharsOnly *bool
	RevealProbability *float64
}

// Apply writes every set override into cfg.
func (o Overrides) Apply(cfg *reveal.Config) {
	if o.TickInterval != nil {
		cfg.TickInterval = *o.TickInterval
	}
	if o.MaxIterations != nil {
		cfg.MaxIterations = *o.MaxIterations
	}
	if o.Sequential != nil {
		cfg.Sequential = *o.Sequential
	}
	if o.Direction != nil {
		cfg.Direction = *o.Direction
	}
	if o.Alphabet != nil {
		cfg.Alphabet = *o.Alphabet
	}
	if o.OriginalCharsOnly != nil {
		cfg.OriginalCharsOnly = *o.OriginalCharsOnly
	}
	if o.RevealProbability != nil {
		cfg.RevealProbability = *o.RevealProbability
	}
}

// IsZero reports whether no override is set.
func (o Overrides) IsZero() bool {
	return o == Overrides{}
}
