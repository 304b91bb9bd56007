// Package configs manages unveil's user configuration and reveal presets.
//
// Configuration is stored in TOML format at <UserConfigDir>/unveil/config.toml:
//
//	[defaults]
//	preset = "matrix"
//	font = "slant"
//
//	[presets.matrix]
//	tick_interval_ms = 40
//	max_iterations = 20
//	alphabet = "01"
//
// # Presets
//
// A preset is a named set of reveal parameters. Fields left out of the file
// keep the reveal defaults, so a preset only needs the values it changes.
// Built-in presets (classic, matrix, typewriter, spotlight) are always
// available and cannot be overwritten or removed.
//
// # Settings
//
// UserUnveilSettings holds the configuration and data directories. It is
// initialised at startup from the XDG locations and can be replaced in tests.
package configs
