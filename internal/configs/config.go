package configs

import (
	"fmt"
	"os"
	"regexp"
	"sort"

	kerrors "github.com/PolarWolf314/unveil/internal/errors"
)

// UserConfig is the contents of config.toml: defaults and user presets.
type UserConfig struct {
	Defaults Defaults          `toml:"defaults"`
	Presets  map[string]Preset `toml:"presets"`
}

// Defaults holds the values used when the command line does not name them.
type Defaults struct {
	Preset string `toml:"preset,omitempty"`
	Font   string `toml:"font,omitempty"`
}

var presetNamePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*$`)

// IsValidPresetName reports whether name can be used as a preset key.
func IsValidPresetName(name string) bool {
	return presetNamePattern.MatchString(name)
}

// LoadUserConfig loads the user configuration from the config file.
// A missing file yields an empty configuration.
func LoadUserConfig() (*UserConfig, error) {
	configPath := ConfigPath()

	config := &UserConfig{
		Presets: make(map[string]Preset),
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(configPath, config); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", kerrors.ErrInvalidConfig, configPath, err)
	}

	if config.Presets == nil {
		config.Presets = make(map[string]Preset)
	}

	return config, nil
}

// SaveUserConfig saves the user configuration to the config file.
func SaveUserConfig(config *UserConfig) error {
	if err := SaveTOML(ConfigPath(), config); err != nil {
		return fmt.Errorf("failed to save user config: %w", err)
	}

	return nil
}

// Preset looks up a preset by name. User presets are checked before the
// built-in ones. An empty name selects the configured default, then classic.
func (c *UserConfig) Preset(name string) (Preset, error) {
	if name == "" {
		name = c.DefaultPresetName()
	}

	if preset, ok := c.Presets[name]; ok {
		return preset, nil
	}
	if preset, ok := BuiltinPresets[name]; ok {
		return preset, nil
	}

	return Preset{}, fmt.Errorf("%w: %s", kerrors.ErrPresetNotFound, name)
}

// DefaultPresetName returns the preset used when none is requested.
func (c *UserConfig) DefaultPresetName() string {
	if c.Defaults.Preset != "" {
		return c.Defaults.Preset
	}
	return DefaultPresetName
}

// SetPreset stores a user preset, rejecting invalid and built-in names.
func (c *UserConfig) SetPreset(name string, preset Preset) error {
	if !IsValidPresetName(name) {
		return fmt.Errorf("%w: %q", kerrors.ErrInvalidPresetName, name)
	}
	if IsBuiltinPreset(name) {
		return fmt.Errorf("%w: %s", kerrors.ErrBuiltinPreset, name)
	}

	if c.Presets == nil {
		c.Presets = make(map[string]Preset)
	}
	c.Presets[name] = preset
	return nil
}

// RemovePreset deletes a user preset. If it was the default, the default is
// cleared.
func (c *UserConfig) RemovePreset(name string) error {
	if IsBuiltinPreset(name) {
		return fmt.Errorf("%w: %s", kerrors.ErrBuiltinPreset, name)
	}
	if _, ok := c.Presets[name]; !ok {
		return fmt.Errorf("%w: %s", kerrors.ErrPresetNotFound, name)
	}

	delete(c.Presets, name)
	if c.Defaults.Preset == name {
		c.Defaults.Preset = ""
	}
	return nil
}

// PresetNames returns every available preset name, built-in and user, sorted.
func (c *UserConfig) PresetNames() []string {
	seen := make(map[string]bool)
	var names []string
	for name := range BuiltinPresets {
		seen[name] = true
		names = append(names, name)
	}
	for name := range c.Presets {
		if !seen[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
