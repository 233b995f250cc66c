package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/settings.yaml
var defaultSettingsYAML []byte

// DefaultSettings returns the hard-coded first-run settings.
func DefaultSettings() Settings {
	return Settings{
		ResolutionIdx: 0,
		Fullscreen:    false,
		MaxFPS:        60,
		Quality:       QualityHigh,
		Language:      "en",
		VolMusic:      50,
		VolSFX:        50,
	}
}

// Defaults returns the embedded default settings.
func Defaults() Settings {
	cfg := DefaultSettings()
	if err := yaml.Unmarshal(defaultSettingsYAML, &cfg); err != nil {
		return DefaultSettings() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// GetDefaultYAML returns the embedded default settings document.
func GetDefaultYAML() []byte {
	return defaultSettingsYAML
}
