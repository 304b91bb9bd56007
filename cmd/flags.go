package cmd

import (
	"time"

	"github.com/PolarWolf314/unveil/internal/reveal"
	"github.com/PolarWolf314/unveil/internal/workflows"
	"github.com/spf13/pflag"
)

// directionFlag is a pflag.Value accepting start, end or center.
type directionFlag struct {
	value reveal.Direction
}

func (f *directionFlag) String() string {
	return f.value.String()
}

func (f *directionFlag) Set(s string) error {
	d, err := reveal.ParseDirection(s)
	if err != nil {
		return err
	}
	f.value = d
	return nil
}

func (f *directionFlag) Type() string {
	return "direction"
}

// revealFlags holds the flags shared by every command that builds a reveal
// configuration.
type revealFlags struct {
	interval      time.Duration
	maxIterations int
	sequential    bool
	direction     directionFlag
	alphabet      string
	originalChars bool
	probability   float64
}

func (r *revealFlags) register(fs *pflag.FlagSet) {
	fs.DurationVar(&r.interval, "interval", reveal.DefaultTickInterval, "time between frames")
	fs.IntVar(&r.maxIterations, "max-iterations", reveal.DefaultMaxIterations, "ticks before every character is revealed")
	fs.BoolVar(&r.sequential, "sequential", false, "reveal one character at a time")
	fs.Var(&r.direction, "direction", "order of sequential reveals (start, end, center)")
	fs.StringVar(&r.alphabet, "alphabet", reveal.DefaultAlphabet, "characters used for scrambling")
	fs.BoolVar(&r.originalChars, "original-chars", false, "scramble using only the characters of the text")
	fs.Float64Var(&r.probability, "probability", reveal.DefaultRevealProbability, "chance per tick that a character is revealed, in (0,1]")
}

func (r *revealFlags) reset() {
	*r = revealFlags{
		interval:      reveal.DefaultTickInterval,
		maxIterations: reveal.DefaultMaxIterations,
		alphabet:      reveal.DefaultAlphabet,
		probability:   reveal.DefaultRevealProbability,
	}
}

// overrides returns the values of the flags the user set explicitly.
// Flags left at their defaults keep the preset's value.
func (r *revealFlags) overrides(fs *pflag.FlagSet) workflows.Overrides {
	var o workflows.Overrides
	if fs.Changed("interval") {
		o.TickInterval = &r.interval
	}
	if fs.Changed("max-iterations") {
		o.MaxIterations = &r.maxIterations
	}
	if fs.Changed("sequential") {
		o.Sequential = &r.sequential
	}
	if fs.Changed("direction") {
		o.Direction = &r.direction.value
		// Choosing a direction implies sequential mode.
		if !fs.Changed("sequential") {
			sequential := true
			o.Sequential = &sequential
		}
	}
	if fs.Changed("alphabet") {
		o.Alphabet = &r.alphabet
	}
	if fs.Changed("original-chars") {
		o.OriginalCharsOnly = &r.originalChars
	}
	if fs.Changed("probability") {
		o.RevealProbability = &r.probability
	}
	return o
}
