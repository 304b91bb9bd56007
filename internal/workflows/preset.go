package workflows

import (
	"context"
	"fmt"
	"time"

	"github.com/PolarWolf314/unveil/internal/audit"
	"github.com/PolarWolf314/unveil/internal/configs"
	kerrors "github.com/PolarWolf314/unveil/internal/errors"
)

// presetSampleText is used to validate presets, which carry no text.
const presetSampleText = "unveil"

// PresetInfo describes one available preset.
type PresetInfo struct {
	Name    string         `json:"name"`
	Builtin bool           `json:"builtin"`
	Default bool           `json:"default"`
	Preset  configs.Preset `json:"preset"`
}

// ListPresetsOptions configures the preset list workflow.
type ListPresetsOptions struct {
	// No options currently needed - included for consistency.
}

// ListPresetsResult contains every available preset.
type ListPresetsResult struct {
	Presets []PresetInfo
}

// ListPresets returns built-in and user presets sorted by name. A user
// preset never shadows a built-in one because built-in names cannot be saved.
func ListPresets(ctx context.Context, opts ListPresetsOptions) (*ListPresetsResult, error) {
	userConfig, err := configs.LoadUserConfig()
	if err != nil {
		return nil, err
	}

	result := &ListPresetsResult{}
	for _, name := range userConfig.PresetNames() {
		info, err := presetInfo(userConfig, name)
		if err != nil {
			return nil, err
		}
		result.Presets = append(result.Presets, info)
	}
	return result, nil
}

// ShowPresetOptions configures the preset show workflow.
type ShowPresetOptions struct {
	// Name is the preset to show. Empty shows the default preset.
	Name string
}

// ShowPreset returns a single preset.
//
// Returns ErrPresetNotFound if the preset does not exist.
func ShowPreset(ctx context.Context, opts ShowPresetOptions) (*PresetInfo, error) {
	userConfig, err := configs.LoadUserConfig()
	if err != nil {
		return nil, err
	}

	name := opts.Name
	if name == "" {
		name = userConfig.DefaultPresetName()
	}

	info, err := presetInfo(userConfig, name)
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// SavePresetOptions configures the preset save workflow.
type SavePresetOptions struct {
	// Name is the preset to create or replace.
	Name string

	// Base is the preset the new one starts from. Empty selects the
	// default preset.
	Base string

	// Description is stored with the preset.
	Description string

	// Overrides replace individual values of the base preset.
	Overrides Overrides

	// SetDefault makes the saved preset the default.
	SetDefault bool
}

// SavePresetResult contains the outcome of a preset save operation.
type SavePresetResult struct {
	Name    string
	Preset  configs.Preset
	Created bool
}

// SavePreset stores a user preset derived from a base preset.
//
// Returns ErrInvalidPresetName or ErrBuiltinPreset for names that cannot be
// saved, ErrPresetNotFound for an unknown base, and the reveal configuration
// errors for values the engine would reject.
func SavePreset(ctx context.Context, opts SavePresetOptions) (*SavePresetResult, error) {
	userConfig, err := configs.LoadUserConfig()
	if err != nil {
		return nil, err
	}

	base, err := userConfig.Preset(opts.Base)
	if err != nil {
		return nil, err
	}

	cfg, err := base.ToRevealConfig(presetSampleText)
	if err != nil {
		return nil, err
	}
	opts.Overrides.Apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	// Presets store whole milliseconds.
	if cfg.TickInterval%time.Millisecond != 0 {
		return nil, fmt.Errorf("%w: %s is not a whole number of milliseconds", kerrors.ErrInvalidTickInterval, cfg.TickInterval)
	}

	preset := configs.PresetFromRevealConfig(cfg)
	preset.Description = opts.Description
	if preset.Description == "" {
		preset.Description = base.Description
	}

	_, existed := userConfig.Presets[opts.Name]
	if err := userConfig.SetPreset(opts.Name, preset); err != nil {
		return nil, err
	}
	if opts.SetDefault {
		userConfig.Defaults.Preset = opts.Name
	}

	if err := configs.SaveUserConfig(userConfig); err != nil {
		return nil, err
	}

	entry := audit.NewEntry("preset-save")
	entry.Preset = opts.Name
	audit.Log(entry)

	return &SavePresetResult{
		Name:    opts.Name,
		Preset:  preset,
		Created: !existed,
	}, nil
}

// RemovePresetOptions configures the preset remove workflow.
type RemovePresetOptions struct {
	Name string
}

// RemovePreset deletes a user preset.
//
// Returns ErrBuiltinPreset for built-in presets and ErrPresetNotFound if no
// user preset has the name.
func RemovePreset(ctx context.Context, opts RemovePresetOptions) error {
	userConfig, err := configs.LoadUserConfig()
	if err != nil {
		return err
	}

	if err := userConfig.RemovePreset(opts.Name); err != nil {
		return err
	}

	if err := configs.SaveUserConfig(userConfig); err != nil {
		return err
	}

	entry := audit.NewEntry("preset-remove")
	entry.Preset = opts.Name
	audit.Log(entry)

	return nil
}

func presetInfo(userConfig *configs.UserConfig, name string) (PresetInfo, error) {
	preset, err := userConfig.Preset(name)
	if err != nil {
		return PresetInfo{}, err
	}
	_, isUser := userConfig.Presets[name]
	return PresetInfo{
		Name:    name,
		Builtin: !isUser && configs.IsBuiltinPreset(name),
		Default: name == userConfig.DefaultPresetName(),
		Preset:  preset,
	}, nil
}

// DescribePreset summarises a preset in one line for listings.
func DescribePreset(p configs.Preset) string {
	cfg, err := p.ToRevealConfig(presetSampleText)
	if err != nil {
		return fmt.Sprintf("invalid: %v", err)
	}
	order := "random"
	if cfg.Sequential {
		order = "sequential " + cfg.Direction.String()
	}
	return fmt.Sprintf("%s, %s, max %d, p=%.2f", order, cfg.TickInterval, cfg.MaxIterations, cfg.RevealProbability)
}
