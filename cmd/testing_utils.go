// Package cmd contains testing utilities shared between command tests.
// This file provides common functions for setting up test environments
// and capturing output.
package cmd

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/unveil/internal/configs"
	logger "github.com/PolarWolf314/unveil/internal/logging"
	"github.com/spf13/cobra"
)

// setupTestEnvironment points the config and data directories at tempUserDir
// and resets command state, restoring both when the test ends.
func setupTestEnvironment(t *testing.T, tempUserDir string) {
	originalUserSettings := configs.UserUnveilSettings

	t.Cleanup(func() {
		configs.UserUnveilSettings = originalUserSettings
		ResetGlobalState()
	})

	configs.UserUnveilSettings = &configs.UserSettings{
		UserConfigsPath: filepath.Join(tempUserDir, "config"),
		UserDataPath:    filepath.Join(tempUserDir, "data"),
	}
	ResetGlobalState()
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	// Save original stdout and stderr
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	// Create pipes to capture output
	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	// Replace stdout and stderr
	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	// Channel to collect output
	outputChan := make(chan string, 2)

	// Start goroutines to read from pipes
	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stdoutReader)
		if err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stderrReader)
		if err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	// Execute the function
	err := fn()

	// Close writers to signal EOF
	stdoutWriter.Close()
	stderrWriter.Close()

	// Restore original stdout and stderr
	os.Stdout = originalStdout
	os.Stderr = originalStderr

	// Collect output
	stdout := <-outputChan
	stderr := <-outputChan

	return stdout + stderr, err
}

// createTestCLI returns the root command configured to run args.
func createTestCLI(args []string, stdout, stderr io.Writer, verboseFlag, debugFlag bool) *cobra.Command {
	verbose = verboseFlag
	debug = debugFlag

	Logger = logger.Logger{
		Verbose: verbose,
		Debug:   debug,
	}

	if stdout != nil {
		RootCmd.SetOut(stdout)
	}
	if stderr != nil {
		RootCmd.SetErr(stderr)
	}

	fullArgs := append([]string{}, args...)
	if verboseFlag {
		fullArgs = append(fullArgs, "--verbose")
	}
	if debugFlag {
		fullArgs = append(fullArgs, "--debug")
	}
	RootCmd.SetArgs(fullArgs)

	return RootCmd
}
