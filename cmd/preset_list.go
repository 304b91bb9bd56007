package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/unveil/internal/ui"
	"github.com/PolarWolf314/unveil/internal/workflows"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var presetListJSON bool

func init() {
	presetListCmd.Flags().BoolVar(&presetListJSON, "json", false, "output in JSON format")
}

// resetPresetListState resets the preset list command's global state for testing.
func resetPresetListState() {
	presetListJSON = false
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available presets",
	Long: `Lists built-in and user presets. The default preset is marked with *.

Examples:
  unveil preset list
  unveil preset list --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting preset list command")

		result, err := workflows.ListPresets(context.Background(), workflows.ListPresetsOptions{})
		if err != nil {
			message, expected := formatPresetError(err)
			fmt.Println(message)
			if expected {
				return nil
			}
			return err
		}
		Logger.Debugf("Found %d presets", len(result.Presets))

		if presetListJSON {
			return printJSON(result.Presets)
		}

		fmt.Println(color.CyanString("Presets:"))
		fmt.Println()
		for _, info := range result.Presets {
			marker := " "
			if info.Default {
				marker = ui.Success.Sprint("*")
			}
			kind := "user"
			if info.Builtin {
				kind = "built-in"
			}
			fmt.Printf("  %s %-14s %-9s %s\n", marker, info.Name, kind, workflows.DescribePreset(info.Preset))
			if info.Preset.Description != "" {
				fmt.Printf("    %-14s %s\n", "", ui.Muted.Sprint(info.Preset.Description))
			}
		}
		return nil
	},
}
