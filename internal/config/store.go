package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ca-racing/internal/core"
	"github.com/vovakirdan/ca-racing/internal/storage"
)

// Store loads and persists settings.json.
type Store struct {
	path     string
	defaults Settings
	logger   *log.Logger
}

// NewStore creates a settings store for the file at path.
func NewStore(path string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{
		path:     path,
		defaults: Defaults(),
		logger:   logger.WithPrefix("settings"),
	}
}

// Path returns the settings file location.
func (s *Store) Path() string {
	return s.path
}

// SetDefaultLanguage changes the language used when the stored record has
// none, e.g. the detected system language on first run.
func (s *Store) SetDefaultLanguage(code string) {
	if code != "" {
		s.defaults.Language = code
	}
}

// Load reads the settings file.
//
// A missing file is bootstrapped with the defaults. Keys missing from an
// existing file, null, or holding a value of the wrong type are filled in
// from the defaults and the healed record is written back before returning.
// A file that is not a JSON object is left untouched; Load then returns the
// defaults together with an error wrapping core.ErrParse.
func (s *Store) Load() (Settings, error) {
	data, err := storage.ReadFile(s.path)
	if errors.Is(err, core.ErrNotFound) {
		cfg := s.defaults
		if err := s.Save(cfg); err != nil {
			return cfg, err
		}
		s.logger.Info("created default settings", "path", s.path)
		return cfg, nil
	}
	if err != nil {
		return s.defaults, err
	}

	cfg, missing, err := s.decode(data)
	if err != nil {
		s.logger.Warn("settings unreadable, using defaults", "path", s.path, "error", err)
		return s.defaults, err
	}

	if len(missing) > 0 {
		s.logger.Info("filled settings from defaults", "keys", missing)
		if err := s.Save(cfg); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// decode merges a stored document over the defaults key by key and reports
// which known keys had to be filled in: absent, null or of the wrong type.
// Only a document that is not a JSON object is an error.
func (s *Store) decode(data []byte) (Settings, []string, error) {
	var present map[string]json.RawMessage
	if err := json.Unmarshal(data, &present); err != nil || present == nil {
		return Settings{}, nil, fmt.Errorf("config: %s: %w: %v", s.path, core.ErrParse, err)
	}

	cfg := s.defaults
	cfg.extra = nil
	var missing []string
	known := make(map[string]bool, len(knownKeys))
	for _, key := range knownKeys {
		known[key] = true
		raw, ok := present[key]
		if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			missing = append(missing, key)
			continue
		}
		if err := json.Unmarshal(raw, cfg.field(key)); err != nil {
			s.logger.Warn("invalid setting, using default", "key", key, "value", string(raw))
			cfg.resetField(key, s.defaults)
			missing = append(missing, key)
		}
	}

	for key, raw := range present {
		if known[key] {
			continue
		}
		if cfg.extra == nil {
			cfg.extra = make(map[string]json.RawMessage)
		}
		cfg.extra[key] = raw
	}

	return cfg, missing, nil
}

// field returns a pointer to the Settings field stored under key.
func (s *Settings) field(key string) any {
	switch key {
	case "resolution_idx":
		return &s.ResolutionIdx
	case "fullscreen":
		return &s.Fullscreen
	case "max_fps":
		return &s.MaxFPS
	case "quality":
		return &s.Quality
	case "language":
		return &s.Language
	case "vol_music":
		return &s.VolMusic
	case "vol_sfx":
		return &s.VolSFX
	}
	return nil
}

// resetField copies a single field back from def.
func (s *Settings) resetField(key string, def Settings) {
	switch key {
	case "resolution_idx":
		s.ResolutionIdx = def.ResolutionIdx
	case "fullscreen":
		s.Fullscreen = def.Fullscreen
	case "max_fps":
		s.MaxFPS = def.MaxFPS
	case "quality":
		s.Quality = def.Quality
	case "language":
		s.Language = def.Language
	case "vol_music":
		s.VolMusic = def.VolMusic
	case "vol_sfx":
		s.VolSFX = def.VolSFX
	}
}

// Save overwrites the settings file with cfg.
func (s *Store) Save(cfg Settings) error {
	data, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return fmt.Errorf("config: encode settings: %w: %w", core.ErrIO, err)
	}
	if err := storage.WriteFileAtomic(s.path, append(data, '\n')); err != nil {
		s.logger.Error("cannot save settings", "path", s.path, "error", err)
		return err
	}
	return nil
}
