// Package errors provides typed error values for the unveil application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Reveal configuration errors: a run cannot start (ErrInvalidTickInterval,
//     ErrNegativeMaxIterations, ErrInvalidProbability, ErrEmptyAlphabet)
//   - Playback errors: a run was superseded or stopped (ErrRunSuperseded)
//   - Preset errors: preset files and names (ErrPresetNotFound, ErrInvalidConfig)
//   - Input errors: nothing to reveal (ErrNoText, ErrNoFilesFound)
//
// # Usage
//
// Return errors from internal packages wrapped with context:
//
//	return nil, fmt.Errorf("%w: got %s", errors.ErrInvalidTickInterval, cfg.TickInterval)
//
// Handle errors in the CLI layer:
//
//	state, err := engine.Start(cfg)
//	if errors.Is(err, kerrors.ErrInvalidTickInterval) {
//	    // Show user-friendly message
//	}
package errors
