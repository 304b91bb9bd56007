package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	kerrors "github.com/PolarWolf314/unveil/internal/errors"
	"github.com/PolarWolf314/unveil/internal/ui"
	"github.com/briandowns/spinner"
)

// startSpinner creates and starts a spinner with the given message when not in verbose or debug mode.
// Returns the spinner and a function that should be deferred to clean up.
//
// IMPORTANT: spinner.FinalMSG values do NOT need trailing newlines. The cleanup function
// automatically calls ui.EnsureNewline() on the final message before printing it.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	err := s.Color("cyan")
	if err != nil {
		// If we can't set spinner color, just continue without it.
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if !verbose && !debug {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if !verbose && !debug {
			log.SetOutput(os.Stderr)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		// Stop the spinner first to clear the spinner line.
		if !verbose && !debug {
			s.Stop()
		}

		// Print final message to stdout (for tests to capture).
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v interface{}) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return Logger.ErrorfAndReturn("Failed to marshal JSON: %v", err)
	}
	fmt.Println(string(output))
	return nil
}

// formatPresetError formats the preset and configuration errors shared by
// play and preset commands. The second return value is false for errors
// that are not user mistakes and should cause a non-zero exit.
func formatPresetError(err error) (string, bool) {
	switch {
	case errors.Is(err, kerrors.ErrPresetNotFound):
		return ui.Error.Sprint("✗") + " " + err.Error() + "\n" +
			ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("unveil preset list") + " to see available presets", true

	case errors.Is(err, kerrors.ErrBuiltinPreset):
		return ui.Error.Sprint("✗") + " " + err.Error() + "\n" +
			ui.Info.Sprint("→") + " Save it under a new name with " + ui.Code.Sprint("unveil preset save NAME --from PRESET"), true

	case errors.Is(err, kerrors.ErrInvalidPresetName):
		return ui.Error.Sprint("✗") + " " + err.Error() + "\n" +
			ui.Info.Sprint("→") + " Preset names may contain letters, digits, hyphens and underscores", true

	case errors.Is(err, kerrors.ErrInvalidConfig):
		return ui.Error.Sprint("✗") + " " + err.Error() + "\n" +
			ui.Info.Sprint("→") + " Fix or remove " + ui.Path.Sprint("config.toml") + " in your unveil config directory", true

	case errors.Is(err, kerrors.ErrInvalidTickInterval),
		errors.Is(err, kerrors.ErrNegativeMaxIterations),
		errors.Is(err, kerrors.ErrInvalidProbability),
		errors.Is(err, kerrors.ErrUnknownDirection),
		errors.Is(err, kerrors.ErrEmptyAlphabet):
		return ui.Error.Sprint("✗") + " Invalid reveal settings: " + err.Error(), true

	default:
		return ui.Error.Sprint("✗") + " " + err.Error(), false
	}
}
