// Package workflows provides high-level orchestration for unveil commands.
//
// Workflows coordinate multiple operations across packages (configs, reveal,
// playback, audit) to implement complete user-facing features. Each workflow
// handles a single command's business logic, independent of CLI concerns like
// flag parsing, spinners, and output formatting.
//
// # Design Philosophy
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// Workflows handle everything else:
//   - Loading the user configuration and resolving presets
//   - Applying command-line overrides
//   - Driving the reveal animation
//   - Recording history entries
//
// # Available Workflows
//
//   - Play: Plays one or more texts with a preset and overrides
//   - ListPresets, ShowPreset: Inspect built-in and user presets
//   - SavePreset, RemovePreset: Manage user presets
//   - History: Reads the playback history
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package, allowing
// the CLI layer to provide appropriate user-facing messages without string
// matching. Use errors.Is() to check for specific error conditions:
//
//	result, err := workflows.Play(ctx, opts)
//	if errors.Is(err, kerrors.ErrPresetNotFound) {
//	    // Suggest `unveil preset list`
//	}
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter.
// Play stops the running animation when the context is cancelled.
package workflows
