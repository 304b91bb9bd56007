// Package logger provides leveled logging for unveil commands.
//
// The logger supports multiple verbosity levels controlled by command-line
// flags. Output is prefixed and coloured with fatih/color.
//
// # Verbosity Levels
//
//   - --verbose: Shows info messages
//   - --debug: Shows all messages including debug details
//
// Warnings and errors are always shown on stderr.
//
// # Log Methods
//
//	Logger.Infof()          // Shown with --verbose
//	Logger.Debugf()         // Shown only with --debug
//	Logger.Warnf()          // Always shown
//	Logger.Errorf()         // Always shown
//	Logger.ErrorfAndReturn() // Shown with --debug, returns the message as an error
//
// # Usage
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Revealing %d characters", count)
//
// Debug output goes to stderr so it never interleaves with animation frames
// written to stdout.
package logger
