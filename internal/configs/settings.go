package configs

import (
	"os"
	"path/filepath"
)

type UserSettings struct {
	UserConfigsPath string
	UserDataPath    string
}

var UserUnveilSettings *UserSettings

func init() {
	UserUnveilSettings = defaultUserSettings()
}

// defaultUserSettings resolves the XDG directories, falling back to the
// temporary directory when no home directory is available.
func defaultUserSettings() *UserSettings {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}

	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = os.TempDir()
		}
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	return &UserSettings{
		UserConfigsPath: filepath.Join(configDir, "unveil"),
		UserDataPath:    filepath.Join(dataDir, "unveil"),
	}
}

// ConfigPath returns the path of the user configuration file.
func ConfigPath() string {
	return filepath.Join(UserUnveilSettings.UserConfigsPath, "config.toml")
}

// HistoryPath returns the path of the playback history log.
func HistoryPath() string {
	return filepath.Join(UserUnveilSettings.UserDataPath, "history.jsonl")
}
