package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/unveil/internal/ui"
	"github.com/PolarWolf314/unveil/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	presetSaveReveal      revealFlags
	presetSaveFrom        string
	presetSaveDescription string
	presetSaveDefault     bool
)

func init() {
	presetSaveReveal.reset()
	presetSaveReveal.register(presetSaveCmd.Flags())
	presetSaveCmd.Flags().StringVar(&presetSaveFrom, "from", "", "preset to start from (default preset if omitted)")
	presetSaveCmd.Flags().StringVar(&presetSaveDescription, "description", "", "short description shown in preset list")
	presetSaveCmd.Flags().BoolVar(&presetSaveDefault, "default", false, "make this the default preset")
}

// resetPresetSaveState resets the preset save command's global state for testing.
func resetPresetSaveState() {
	presetSaveReveal.reset()
	presetSaveFrom = ""
	presetSaveDescription = ""
	presetSaveDefault = false
}

var presetSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save a preset",
	Long: `Saves a user preset. The preset starts from --from (or the default preset)
and applies the reveal flags you set. Saving over an existing user preset
replaces it; built-in presets cannot be replaced.

Examples:
  unveil preset save slow --interval 150ms
  unveil preset save binary --from matrix --alphabet 01 --description "Ones and zeros"
  unveil preset save middle --direction center --probability 0.4 --default`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting preset save command")

		opts := workflows.SavePresetOptions{
			Name:        args[0],
			Base:        presetSaveFrom,
			Description: presetSaveDescription,
			Overrides:   presetSaveReveal.overrides(cmd.Flags()),
			SetDefault:  presetSaveDefault,
		}
		Logger.Debugf("Saving preset %s from %q", opts.Name, opts.Base)

		result, err := workflows.SavePreset(context.Background(), opts)
		if err != nil {
			message, expected := formatPresetError(err)
			fmt.Println(message)
			if expected {
				return nil
			}
			return err
		}

		verb := "Updated"
		if result.Created {
			verb = "Saved"
		}
		fmt.Println(ui.Success.Sprint("✓") + " " + verb + " preset " + ui.Highlight.Sprint(result.Name))
		if presetSaveDefault {
			fmt.Println(ui.Info.Sprint("→") + " " + ui.Highlight.Sprint(result.Name) + " is now the default preset")
		}
		return nil
	},
}
