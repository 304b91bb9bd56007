package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	kerrors "github.com/PolarWolf314/unveil/internal/errors"
	"github.com/PolarWolf314/unveil/internal/playback"
	"github.com/PolarWolf314/unveil/internal/ui"
	"github.com/PolarWolf314/unveil/internal/utils"
	"github.com/PolarWolf314/unveil/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	playReveal    revealFlags
	playSeed      string
	playPreset    string
	playBanner    bool
	playFont      string
	playWarmup    time.Duration
	playNoAnimate bool
	playFrames    bool
	playNoHistory bool
	playFiles     []string
)

func init() {
	playReveal.reset()
	playReveal.register(playCmd.Flags())
	playCmd.Flags().StringVar(&playSeed, "seed", "", "seed for a reproducible animation (number or any string)")
	playCmd.Flags().StringVarP(&playPreset, "preset", "p", "", "preset to start from (default from config, then classic)")
	playCmd.Flags().BoolVar(&playBanner, "banner", false, "render the text as ASCII art before revealing it")
	playCmd.Flags().StringVar(&playFont, "font", "", "FIGlet font for --banner")
	playCmd.Flags().DurationVar(&playWarmup, "warmup", 0, "show a spinner for this long before the reveal")
	playCmd.Flags().BoolVar(&playNoAnimate, "no-animate", false, "print only the final text")
	playCmd.Flags().BoolVar(&playFrames, "frames", false, "print every frame on its own line instead of animating in place")
	playCmd.MarkFlagsMutuallyExclusive("no-animate", "frames")
	playCmd.Flags().BoolVar(&playNoHistory, "no-history", false, "do not record this run in the history")
	playCmd.Flags().StringSliceVarP(&playFiles, "file", "f", nil, "read texts from files (glob patterns, ** supported)")
}

// resetPlayCommandState resets the play command's global state for testing.
func resetPlayCommandState() {
	playReveal.reset()
	playSeed = ""
	playPreset = ""
	playBanner = false
	playFont = ""
	playWarmup = 0
	playNoAnimate = false
	playFrames = false
	playNoHistory = false
	playFiles = nil
}

var playCmd = &cobra.Command{
	Use:   "play [text...]",
	Short: "Play the reveal animation for some text",
	Long: `Renders the text scrambled and reveals it character by character.

Text is taken from the arguments (joined with spaces), from files given with
--file, or from stdin. Each file is played as its own reveal, one after the
other.

Flags override the values of the selected preset. Only flags you set are
applied, so "--preset matrix --interval 100ms" keeps everything else from
matrix. Setting --direction implies --sequential.

When stdout is not a terminal, only the final text is printed. Use --frames to
print every frame on its own line instead.

Examples:
  unveil play "Hello, World"
  unveil play --preset typewriter "Loading complete"
  unveil play --sequential --direction center --probability 0.5 "ACCESS GRANTED"
  unveil play --banner --font slant unveil
  unveil play --file "slides/**/*.txt"
  unveil play --frames --seed 42 "RECORDED" > frames.txt
  echo "from a pipe" | unveil play --original-chars`,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting play command")

	texts, err := gatherTexts(args)
	if err != nil {
		if errors.Is(err, kerrors.ErrNoText) || errors.Is(err, kerrors.ErrNoFilesFound) {
			fmt.Println(ui.Error.Sprint("✗") + " " + err.Error() + "\n" +
				ui.Info.Sprint("→") + " Pass text as an argument, use " + ui.Code.Sprint("--file") + ", or pipe it on stdin")
			return nil
		}
		return Logger.ErrorfAndReturn("Failed to read text: %v", err)
	}
	Logger.Debugf("Collected %d text(s)", len(texts))

	if playFont != "" && !ui.KnownFont(playFont) {
		Logger.Warnf("Unknown font %q, falling back to %s", playFont, ui.DefaultFont)
	}

	opts := workflows.PlayOptions{
		Texts:     texts,
		Preset:    playPreset,
		Overrides: playReveal.overrides(cmd.Flags()),
		Banner:    playBanner,
		Font:      playFont,
		Renderer:  selectRenderer(),
		NoHistory: playNoHistory,
		Logger:    Logger,
	}
	if cmd.Flags().Changed("seed") {
		seed := utils.SeedFromString(playSeed)
		opts.Seed = &seed
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if playWarmup > 0 {
		if err := warmup(ctx, playWarmup); err != nil {
			fmt.Println()
			fmt.Println(ui.Warning.Sprint("⚠") + " Interrupted")
			return nil
		}
	}

	result, err := workflows.Play(ctx, opts)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Println()
			fmt.Println(ui.Warning.Sprint("⚠") + " Interrupted")
			return nil
		}
		message, expected := formatPresetError(err)
		fmt.Println(message)
		if expected {
			return nil
		}
		return err
	}

	for _, run := range result.Runs {
		Logger.Infof("Run %s: %d ticks, %d frames in %s", run.RunID, run.Ticks, run.Frames, run.Elapsed.Round(time.Millisecond))
	}
	return nil
}

// gatherTexts collects the texts to play from arguments, files and stdin,
// in that order of preference. Arguments and files can be combined.
func gatherTexts(args []string) ([]string, error) {
	var texts []string
	if len(args) > 0 {
		texts = append(texts, strings.Join(args, " "))
	}

	if len(playFiles) > 0 {
		paths, err := utils.ExpandTextFiles(playFiles)
		if err != nil {
			return nil, err
		}
		Logger.Debugf("Reading files:%s", utils.FormatPaths(paths))
		fileTexts, err := utils.ReadTextFiles(paths)
		if err != nil {
			return nil, err
		}
		texts = append(texts, fileTexts...)
	}

	if len(texts) > 0 {
		return texts, nil
	}

	data, err := utils.ReadStdin()
	if err != nil {
		Logger.Debugf("Reading stdin failed: %v", err)
		return nil, kerrors.ErrNoText
	}
	return []string{strings.TrimRight(string(data), "\r\n")}, nil
}

// selectRenderer animates in place on a terminal and prints only the final
// frame otherwise. --frames prints every frame, terminal or not.
func selectRenderer() playback.Renderer {
	if playFrames {
		Logger.Debugf("Using line renderer")
		return ui.NewLineRenderer(os.Stdout)
	}
	if playNoAnimate || !utils.IsStdoutTerminal() {
		Logger.Debugf("Using final-frame renderer")
		return ui.NewFinalRenderer(os.Stdout)
	}
	width := utils.TerminalWidth()
	Logger.Debugf("Using frame renderer, terminal width %d", width)
	return ui.NewFrameRenderer(os.Stdout, width)
}

// warmup shows a spinner for d, returning early if ctx is cancelled.
func warmup(ctx context.Context, d time.Duration) error {
	_, cleanup := startSpinner("Decrypting...", verbose)
	defer cleanup()

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
