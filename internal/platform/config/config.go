package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings are the user-tunable options read from settings.yaml inside the
// data directory. A missing file yields the defaults; logic never depends
// on these values.
type Settings struct {
	Locale      string `yaml:"locale"`
	RecentLimit int    `yaml:"recent_limit"`
}

func DefaultSettings() Settings {
	return Settings{Locale: "de", RecentLimit: 5}
}

type Config struct {
	DataDir      string
	StateDir     string
	TextsDir     string
	DBPath       string
	SettingsPath string
	Settings     Settings
}

func New(dataDir string) (Config, error) {
	if dataDir == "" {
		return Config{}, fmt.Errorf("data path is required")
	}
	cfg := Config{
		DataDir:      dataDir,
		StateDir:     filepath.Join(dataDir, "state"),
		TextsDir:     filepath.Join(dataDir, "texts"),
		DBPath:       filepath.Join(dataDir, "state", "history.db"),
		SettingsPath: filepath.Join(dataDir, "settings.yaml"),
	}
	settings, err := loadSettings(cfg.SettingsPath)
	if err != nil {
		return Config{}, err
	}
	cfg.Settings = settings
	return cfg, nil
}

func loadSettings(path string) (Settings, error) {
	settings := DefaultSettings()
	payload, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(payload, &settings); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	if settings.Locale == "" {
		settings.Locale = DefaultSettings().Locale
	}
	if settings.RecentLimit <= 0 {
		settings.RecentLimit = DefaultSettings().RecentLimit
	}
	return settings, nil
}
