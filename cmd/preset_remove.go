package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/unveil/internal/ui"
	"github.com/PolarWolf314/unveil/internal/workflows"
	"github.com/spf13/cobra"
)

var presetRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a user preset",
	Long: `Removes a preset you saved. If it was the default preset, the default
goes back to classic.

Examples:
  unveil preset remove slow`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting preset remove command")

		if err := workflows.RemovePreset(context.Background(), workflows.RemovePresetOptions{Name: args[0]}); err != nil {
			message, expected := formatPresetError(err)
			fmt.Println(message)
			if expected {
				return nil
			}
			return err
		}

		fmt.Println(ui.Success.Sprint("✓") + " Removed preset " + ui.Highlight.Sprint(args[0]))
		return nil
	},
}
