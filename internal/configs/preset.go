package configs

import (
	"time"

	"github.com/PolarWolf314/unveil/internal/reveal"
)

// DefaultPresetName is used when neither the command line nor the config
// file names a preset.
const DefaultPresetName = "classic"

// Preset is the stored form of a reveal configuration. Zero values mean
// "use the reveal default", except for MaxIterations where nil does.
type Preset struct {
	Description       string  `toml:"description,omitempty" json:"description,omitempty"`
	TickIntervalMs    int     `toml:"tick_interval_ms,omitempty" json:"tick_interval_ms,omitempty"`
	MaxIterations     *int    `toml:"max_iterations,omitempty" json:"max_iterations,omitempty"`
	Sequential        bool    `toml:"sequential" json:"sequential"`
	Direction         string  `toml:"direction,omitempty" json:"direction,omitempty"`
	Alphabet          string  `toml:"alphabet,omitempty" json:"alphabet,omitempty"`
	OriginalCharsOnly bool    `toml:"original_chars_only" json:"original_chars_only"`
	RevealProbability float64 `toml:"reveal_probability,omitempty" json:"reveal_probability,omitempty"`
}

func intPtr(v int) *int {
	return &v
}

// BuiltinPresets are always available and cannot be overwritten.
var BuiltinPresets = map[string]Preset{
	"classic": {
		Description: "Random reveal with the default alphabet",
	},
	"matrix": {
		Description:       "Fast binary rain",
		TickIntervalMs:    40,
		MaxIterations:     intPtr(20),
		Alphabet:          "01",
		RevealProbability: 0.15,
	},
	"typewriter": {
		Description:       "One character at a time from the start",
		TickIntervalMs:    60,
		MaxIterations:     intPtr(500),
		Sequential:        true,
		Direction:         reveal.DirectionStart.String(),
		RevealProbability: 1,
	},
	"spotlight": {
		Description:       "Reveal outward from the middle using the text's own letters",
		TickIntervalMs:    50,
		MaxIterations:     intPtr(500),
		Sequential:        true,
		Direction:         reveal.DirectionCenter.String(),
		OriginalCharsOnly: true,
		RevealProbability: 0.5,
	},
}

// IsBuiltinPreset reports whether name is one of the built-in presets.
func IsBuiltinPreset(name string) bool {
	_, ok := BuiltinPresets[name]
	return ok
}

// ToRevealConfig builds the reveal configuration for text. Values are not
// validated here; the engine rejects invalid ones when the run starts.
func (p Preset) ToRevealConfig(text string) (reveal.Config, error) {
	cfg := reveal.DefaultConfig(text)

	if p.TickIntervalMs != 0 {
		cfg.TickInterval = time.Duration(p.TickIntervalMs) * time.Millisecond
	}
	if p.MaxIterations != nil {
		cfg.MaxIterations = *p.MaxIterations
	}
	if p.Alphabet != "" {
		cfg.Alphabet = p.Alphabet
	}
	if p.RevealProbability != 0 {
		cfg.RevealProbability = p.RevealProbability
	}
	cfg.Sequential = p.Sequential
	cfg.OriginalCharsOnly = p.OriginalCharsOnly

	direction, err := reveal.ParseDirection(p.Direction)
	if err != nil {
		return reveal.Config{}, err
	}
	cfg.Direction = direction

	return cfg, nil
}

// PresetFromRevealConfig captures every parameter of cfg except its text.
// The tick interval is kept in whole milliseconds.
func PresetFromRevealConfig(cfg reveal.Config) Preset {
	return Preset{
		TickIntervalMs:    int(cfg.TickInterval / time.Millisecond),
		MaxIterations:     intPtr(cfg.MaxIterations),
		Sequential:        cfg.Sequential,
		Direction:         cfg.Direction.String(),
		Alphabet:          cfg.Alphabet,
		OriginalCharsOnly: cfg.OriginalCharsOnly,
		RevealProbability: cfg.RevealProbability,
	}
}
