package cmd

import (
	"github.com/spf13/cobra"
)

// PresetCmd is the top-level preset command.
var PresetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Manage reveal presets",
	Long: `Provides commands for listing, inspecting, saving and removing presets.

A preset is a named set of reveal settings stored in config.toml in your
unveil config directory. The built-in presets classic, matrix, typewriter
and spotlight are always available.

Examples:
  # List all presets
  unveil preset list

  # Show the settings of a preset
  unveil preset show matrix

  # Save a slower copy of matrix and make it the default
  unveil preset save slow-matrix --from matrix --interval 120ms --default

  # Remove a preset you saved
  unveil preset remove slow-matrix`,
}

func init() {
	PresetCmd.AddCommand(presetListCmd)
	PresetCmd.AddCommand(presetShowCmd)
	PresetCmd.AddCommand(presetSaveCmd)
	PresetCmd.AddCommand(presetRemoveCmd)
}

// GetPresetCmd returns the PresetCmd for testing.
func GetPresetCmd() *cobra.Command {
	return PresetCmd
}

// resetPresetCommandState resets all preset command global variables to their default values for testing.
func resetPresetCommandState() {
	resetPresetListState()
	resetPresetShowState()
	resetPresetSaveState()
}
