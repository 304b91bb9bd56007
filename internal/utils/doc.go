// Package utils provides shared utility functions for the unveil application.
//
// This package contains general-purpose helpers used across multiple packages.
// Functions are organized into logical groups:
//
// # Input Utilities
//
// Functions for gathering the text to reveal:
//   - ReadStdin: reads all data from standard input
//   - ExpandTextFiles: expands glob patterns (including **) into file paths
//   - ReadTextFiles: reads the trimmed content of each file
//
// # Seed Utilities
//
//   - SeedFromString: turns a --seed value into a reproducible uint64 seed
//
// # String Utilities
//
// Functions for string manipulation and formatting:
//   - FormatPaths: formats file paths for human-readable output
//
// # Terminal Utilities
//
// Functions for terminal detection:
//   - IsStdoutTerminal: checks if stdout is a terminal
//   - TerminalWidth: reports the stdout terminal width for wrap-aware redraws
package utils
