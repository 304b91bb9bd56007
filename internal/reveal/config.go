package reveal

import (
	"fmt"
	"time"
	"unicode"

	kerrors "github.com/PolarWolf314/unveil/internal/errors"
)

const (
	// DefaultAlphabet is the scramble pool used when none is configured.
	DefaultAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz!@#$%^&*()_+"

	// DefaultTickInterval is the time between two frames.
	DefaultTickInterval = 50 * time.Millisecond

	// DefaultMaxIterations is the tick count after which every position is forced.
	DefaultMaxIterations = 10

	// DefaultRevealProbability is the per-tick chance of an eligible position revealing.
	DefaultRevealProbability = 0.1
)

// Config describes one animation run. It is not modified by the engine;
// changing any field means starting a new run.
type Config struct {
	// Text is the string the run converges to.
	Text string

	// TickInterval is the time between steps. Must be positive.
	TickInterval time.Duration

	// MaxIterations caps the ticks before every pending position is revealed.
	// Zero reveals everything on the first tick.
	MaxIterations int

	// Sequential restricts reveals to one position at a time in Direction order.
	Sequential bool

	// Direction orders sequential reveals. Ignored when Sequential is false.
	Direction Direction

	// Alphabet is the pool scrambled glyphs are drawn from.
	Alphabet string

	// OriginalCharsOnly draws scrambled glyphs from the non-whitespace
	// characters of Text instead of Alphabet.
	OriginalCharsOnly bool

	// RevealProbability is the chance per eligible position per tick. Must be in (0,1].
	RevealProbability float64
}

// DefaultConfig returns the reference configuration for text.
func DefaultConfig(text string) Config {
	return Config{
		Text:              text,
		TickInterval:      DefaultTickInterval,
		MaxIterations:     DefaultMaxIterations,
		Direction:         DirectionStart,
		Alphabet:          DefaultAlphabet,
		RevealProbability: DefaultRevealProbability,
	}
}

// Validate reports the first configuration problem, wrapping one of the
// sentinel errors from the errors package. Values are never clamped.
func (c Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: got %s", kerrors.ErrInvalidTickInterval, c.TickInterval)
	}
	if c.MaxIterations < 0 {
		return fmt.Errorf("%w: got %d", kerrors.ErrNegativeMaxIterations, c.MaxIterations)
	}
	if !(c.RevealProbability > 0 && c.RevealProbability <= 1) {
		return fmt.Errorf("%w: got %v", kerrors.ErrInvalidProbability, c.RevealProbability)
	}
	if !c.Direction.Valid() {
		return fmt.Errorf("%w: %s", kerrors.ErrUnknownDirection, c.Direction)
	}
	if len(c.pool()) == 0 && scrambledCount([]rune(c.Text)) > 0 {
		return kerrors.ErrEmptyAlphabet
	}
	return nil
}

// pool returns the glyphs scrambled positions are drawn from.
func (c Config) pool() []rune {
	if !c.OriginalCharsOnly {
		return []rune(c.Alphabet)
	}
	var glyphs []rune
	for _, r := range c.Text {
		if !unicode.IsSpace(r) {
			glyphs = append(glyphs, r)
		}
	}
	return glyphs
}

// scrambledCount counts the positions of text that start out scrambled.
func scrambledCount(text []rune) int {
	n := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}
