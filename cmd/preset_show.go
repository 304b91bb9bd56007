package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/PolarWolf314/unveil/internal/configs"
	"github.com/PolarWolf314/unveil/internal/workflows"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	presetShowJSON bool
	presetShowTOML bool
)

func init() {
	presetShowCmd.Flags().BoolVar(&presetShowJSON, "json", false, "output in JSON format")
	presetShowCmd.Flags().BoolVar(&presetShowTOML, "toml", false, "output as a config.toml snippet")
}

// resetPresetShowState resets the preset show command's global state for testing.
func resetPresetShowState() {
	presetShowJSON = false
	presetShowTOML = false
}

var presetShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Display the settings of a preset",
	Long: `Displays every reveal setting of a preset. Without a name, shows the
default preset.

Examples:
  unveil preset show
  unveil preset show spotlight
  unveil preset show spotlight --json
  unveil preset show spotlight --toml >> config.toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting preset show command")

		name := ""
		if len(args) == 1 {
			name = args[0]
		}

		info, err := workflows.ShowPreset(context.Background(), workflows.ShowPresetOptions{Name: name})
		if err != nil {
			message, expected := formatPresetError(err)
			fmt.Println(message)
			if expected {
				return nil
			}
			return err
		}

		switch {
		case presetShowJSON:
			return printJSON(info)
		case presetShowTOML:
			return outputPresetTOML(info)
		default:
			return outputPresetText(info)
		}
	},
}

// outputPresetTOML prints the preset in the form it takes in config.toml.
func outputPresetTOML(info *workflows.PresetInfo) error {
	snippet := configs.UserConfig{
		Presets: map[string]configs.Preset{info.Name: info.Preset},
	}
	if err := toml.NewEncoder(os.Stdout).Encode(snippet); err != nil {
		return Logger.ErrorfAndReturn("Failed to encode preset: %v", err)
	}
	return nil
}

// outputPresetText prints the resolved settings of the preset.
func outputPresetText(info *workflows.PresetInfo) error {
	cfg, err := info.Preset.ToRevealConfig("")
	if err != nil {
		message, _ := formatPresetError(err)
		fmt.Println(message)
		return nil
	}

	kind := "user"
	if info.Builtin {
		kind = "built-in"
	}
	title := color.CyanString("Preset") + " " + color.GreenString("%s", info.Name) + " (" + kind
	if info.Default {
		title += ", default"
	}
	fmt.Println(title + "):")
	fmt.Println()

	if info.Preset.Description != "" {
		fmt.Printf("  %-20s %s\n", "Description:", info.Preset.Description)
	}
	fmt.Printf("  %-20s %s\n", "Interval:", color.YellowString("%s", cfg.TickInterval))
	fmt.Printf("  %-20s %s\n", "Max iterations:", color.YellowString("%d", cfg.MaxIterations))
	fmt.Printf("  %-20s %s\n", "Probability:", color.YellowString("%g", cfg.RevealProbability))
	fmt.Printf("  %-20s %t\n", "Sequential:", cfg.Sequential)
	if cfg.Sequential {
		fmt.Printf("  %-20s %s\n", "Direction:", cfg.Direction)
	}
	if cfg.OriginalCharsOnly {
		fmt.Printf("  %-20s %s\n", "Alphabet:", "characters of the text")
	} else {
		fmt.Printf("  %-20s %s\n", "Alphabet:", cfg.Alphabet)
	}
	return nil
}
