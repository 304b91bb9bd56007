package workflows

import (
	"context"
	"fmt"
	"strings"

	"github.com/PolarWolf314/unveil/internal/audit"
	"github.com/PolarWolf314/unveil/internal/clock"
	"github.com/PolarWolf314/unveil/internal/configs"
	kerrors "github.com/PolarWolf314/unveil/internal/errors"
	logger "github.com/PolarWolf314/unveil/internal/logging"
	"github.com/PolarWolf314/unveil/internal/playback"
	"github.com/PolarWolf314/unveil/internal/reveal"
	"github.com/PolarWolf314/unveil/internal/ui"
)

// PlayOptions configures the play workflow.
type PlayOptions struct {
	// Texts are played in order, one run each.
	Texts []string

	// Preset names the preset to start from. Empty selects the configured
	// default preset.
	Preset string

	// Overrides replace individual preset values.
	Overrides Overrides

	// Seed makes the animation reproducible when set.
	Seed *uint64

	// Banner renders each text as FIGlet art before revealing it.
	Banner bool

	// Font is the FIGlet font for Banner. Empty selects the configured
	// default font.
	Font string

	// Renderer displays the frames. Required.
	Renderer playback.Renderer

	// Clock drives the ticks. Nil selects the real clock.
	Clock clock.Clock

	// NoHistory disables history logging.
	NoHistory bool

	// Logger receives diagnostic messages.
	Logger logger.Logger
}

// PlayResult contains the outcome of a play operation.
type PlayResult struct {
	// Preset is the name of the preset that was used.
	Preset string

	// Configs are the resolved reveal configurations, one per text.
	Configs []reveal.Config

	// Runs holds the result of every run that started.
	Runs []*playback.Result
}

// Play resolves the preset, applies overrides and plays every text in turn.
//
// Returns ErrNoText if there is nothing to play.
// Returns ErrPresetNotFound if the preset does not exist.
// Returns ErrInvalidConfig if the configuration file cannot be parsed.
// Configuration errors from the reveal package are returned before anything
// is rendered.
func Play(ctx context.Context, opts PlayOptions) (*PlayResult, error) {
	if len(opts.Texts) == 0 {
		return nil, kerrors.ErrNoText
	}

	presetName, cfgs, err := ResolveConfigs(opts)
	if err != nil {
		return nil, err
	}

	// Validate everything up front so a bad override fails before the
	// first run draws anything.
	for i, cfg := range cfgs {
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
	}

	var src reveal.Source
	if opts.Seed != nil {
		opts.Logger.Debugf("Using seed %d", *opts.Seed)
		src = reveal.NewSeededSource(*opts.Seed)
	}

	player := playback.New(reveal.NewEngine(src), opts.Clock, opts.Renderer, playback.Options{
		Logger: opts.Logger,
	})
	defer player.Stop()

	opts.Logger.Infof("Playing %d item(s) with preset %s", len(cfgs), presetName)
	runs, err := player.Sequence(ctx, cfgs)

	if !opts.NoHistory {
		for _, run := range runs {
			logRun(presetName, run)
		}
	}

	return &PlayResult{
		Preset:  presetName,
		Configs: cfgs,
		Runs:    runs,
	}, err
}

// ResolveConfigs turns the options into one reveal configuration per text
// without playing anything. It returns the name of the preset used.
func ResolveConfigs(opts PlayOptions) (string, []reveal.Config, error) {
	userConfig, err := configs.LoadUserConfig()
	if err != nil {
		return "", nil, err
	}

	presetName := opts.Preset
	if presetName == "" {
		presetName = userConfig.DefaultPresetName()
	}

	preset, err := userConfig.Preset(presetName)
	if err != nil {
		return "", nil, err
	}

	font := opts.Font
	if font == "" {
		font = userConfig.Defaults.Font
	}

	cfgs := make([]reveal.Config, 0, len(opts.Texts))
	for _, text := range opts.Texts {
		if opts.Banner && strings.TrimSpace(text) != "" {
			text = ui.Banner(text, font)
		}

		cfg, err := preset.ToRevealConfig(text)
		if err != nil {
			return "", nil, fmt.Errorf("preset %s: %w", presetName, err)
		}
		opts.Overrides.Apply(&cfg)
		cfgs = append(cfgs, cfg)
	}

	return presetName, cfgs, nil
}

func logRun(presetName string, run *playback.Result) {
	entry := audit.NewEntry("play")
	entry.RunID = run.RunID
	entry.Preset = presetName
	entry.Chars = len([]rune(run.Text))
	entry.Ticks = run.Ticks
	entry.ElapsedMs = run.Elapsed.Milliseconds()
	entry.Completed = run.Completed()
	if cfg := run.Final.Config(); cfg.Sequential {
		entry.Sequential = true
		entry.Direction = cfg.Direction.String()
	}
	audit.Log(entry)
}
