package errors

import "errors"

// Reveal configuration errors indicate a run cannot be started.
var (
	// ErrInvalidTickInterval indicates the tick interval is zero or negative.
	ErrInvalidTickInterval = errors.New("tick interval must be positive")

	// ErrNegativeMaxIterations indicates the iteration cap is below zero.
	ErrNegativeMaxIterations = errors.New("max iterations must not be negative")

	// ErrInvalidProbability indicates the reveal probability is outside (0,1].
	ErrInvalidProbability = errors.New("reveal probability must be in (0,1]")

	// ErrUnknownDirection indicates the reveal direction is not start, end or center.
	ErrUnknownDirection = errors.New("unknown reveal direction")

	// ErrEmptyAlphabet indicates there are positions to scramble but no glyphs to draw.
	ErrEmptyAlphabet = errors.New("scramble alphabet is empty")
)

// Playback errors indicate a run ended without completing.
var (
	// ErrRunSuperseded indicates a newer run replaced this one before it completed.
	ErrRunSuperseded = errors.New("run was superseded by a newer run")

	// ErrPlayerStopped indicates the player was stopped while the run was active.
	ErrPlayerStopped = errors.New("player was stopped")
)

// Preset errors indicate issues with the user configuration file.
var (
	// ErrPresetNotFound indicates the named preset does not exist.
	ErrPresetNotFound = errors.New("preset not found")

	// ErrInvalidConfig indicates the configuration file is malformed.
	ErrInvalidConfig = errors.New("configuration is invalid")

	// ErrInvalidPresetName indicates a preset name with unsupported characters.
	ErrInvalidPresetName = errors.New("invalid preset name")

	// ErrBuiltinPreset indicates an attempt to overwrite or remove a built-in preset.
	ErrBuiltinPreset = errors.New("built-in presets cannot be modified")
)

// Input errors indicate there is nothing to reveal.
var (
	// ErrNoText indicates no text was given on the command line, in files, or on stdin.
	ErrNoText = errors.New("no text to reveal")

	// ErrNoFilesFound indicates no files matched the provided patterns.
	ErrNoFilesFound = errors.New("no matching files found")
)

// History errors indicate issues reading the playback history.
var (
	// ErrNoHistory indicates the history log does not exist yet.
	ErrNoHistory = errors.New("no playback history found")

	// ErrInvalidDateFormat indicates a --since or --until value is not YYYY-MM-DD.
	ErrInvalidDateFormat = errors.New("invalid date format")
)
