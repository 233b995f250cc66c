package config

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ca-racing/internal/core"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "settings.json"), log.New(io.Discard))
}

func readKeys(t *testing.T, path string) map[string]json.RawMessage {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		t.Fatalf("parsing %s: %v", path, err)
	}
	return keys
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	if !reflect.DeepEqual(Defaults(), DefaultSettings()) {
		t.Errorf("Defaults() = %+v, expected %+v", Defaults(), DefaultSettings())
	}
	if len(GetDefaultYAML()) == 0 {
		t.Error("GetDefaultYAML() is empty")
	}
}

func TestLoadBootstrapsMissingFile(t *testing.T) {
	store := newTestStore(t)

	cfg, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSettings()) {
		t.Errorf("Load() = %+v, expected defaults", cfg)
	}

	keys := readKeys(t, store.Path())
	for _, key := range knownKeys {
		if _, ok := keys[key]; !ok {
			t.Errorf("bootstrapped file is missing %q", key)
		}
	}
}

func TestLoadHealsMissingKeys(t *testing.T) {
	store := newTestStore(t)
	stored := `{"resolution_idx": 2, "fullscreen": true, "max_fps": 144, "quality": "LOW", "language": "pl", "vol_music": 80}`
	if err := os.WriteFile(store.Path(), []byte(stored), 0o644); err != nil {
		t.Fatalf("writing settings: %v", err)
	}

	cfg, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	expected := Settings{
		ResolutionIdx: 2,
		Fullscreen:    true,
		MaxFPS:        144,
		Quality:       QualityLow,
		Language:      "pl",
		VolMusic:      80,
		VolSFX:        50,
	}
	if !reflect.DeepEqual(cfg, expected) {
		t.Errorf("Load() = %+v, expected %+v", cfg, expected)
	}

	// The healed record is persisted immediately.
	keys := readKeys(t, store.Path())
	if string(keys["vol_sfx"]) != "50" {
		t.Errorf("persisted vol_sfx = %s, expected 50", keys["vol_sfx"])
	}
	if string(keys["language"]) != `"pl"` {
		t.Errorf("persisted language = %s, expected \"pl\"", keys["language"])
	}
}

func TestLoadNullKeyIsHealed(t *testing.T) {
	store := newTestStore(t)
	stored := `{"resolution_idx": 1, "fullscreen": false, "max_fps": 30, "quality": "MED", "language": null, "vol_music": 10, "vol_sfx": 20}`
	if err := os.WriteFile(store.Path(), []byte(stored), 0o644); err != nil {
		t.Fatalf("writing settings: %v", err)
	}

	cfg, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Language != "en" {
		t.Errorf("Language = %q, expected default en", cfg.Language)
	}
	if string(readKeys(t, store.Path())["language"]) != `"en"` {
		t.Error("null language was not healed on disk")
	}
}

func TestLoadHealsMistypedKey(t *testing.T) {
	store := newTestStore(t)
	stored := `{"resolution_idx":2,"fullscreen":true,"max_fps":144,"quality":"MED","language":"pl","vol_music":80,"vol_sfx":20.5}`
	if err := os.WriteFile(store.Path(), []byte(stored), 0o644); err != nil {
		t.Fatalf("writing settings: %v", err)
	}

	cfg, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	expected := Settings{
		ResolutionIdx: 2,
		Fullscreen:    true,
		MaxFPS:        144,
		Quality:       QualityMed,
		Language:      "pl",
		VolMusic:      80,
		VolSFX:        50,
	}
	if !reflect.DeepEqual(cfg, expected) {
		t.Errorf("Load() = %+v, expected %+v", cfg, expected)
	}

	keys := readKeys(t, store.Path())
	wants := map[string]string{
		"resolution_idx": "2",
		"fullscreen":     "true",
		"max_fps":        "144",
		"language":       `"pl"`,
		"vol_music":      "80",
		"vol_sfx":        "50",
	}
	for key, want := range wants {
		if string(keys[key]) != want {
			t.Errorf("persisted %s = %s, expected %s", key, keys[key], want)
		}
	}

	// A second load sees a clean file and keeps the same values.
	again, err := store.Load()
	if err != nil {
		t.Fatalf("second Load() failed: %v", err)
	}
	if !reflect.DeepEqual(again, expected) {
		t.Errorf("second Load() = %+v, expected %+v", again, expected)
	}
}

func TestLoadWrongTypeFallsBack(t *testing.T) {
	store := newTestStore(t)
	stored := `{"resolution_idx": 1, "fullscreen": "yes", "max_fps": "fast", "quality": 3, "language": "de", "vol_music": 30, "vol_sfx": 40}`
	if err := os.WriteFile(store.Path(), []byte(stored), 0o644); err != nil {
		t.Fatalf("writing settings: %v", err)
	}

	cfg, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	def := DefaultSettings()
	if cfg.Fullscreen != def.Fullscreen || cfg.MaxFPS != def.MaxFPS || cfg.Quality != def.Quality {
		t.Errorf("Load() = %+v, expected defaults for the mistyped keys", cfg)
	}
	if cfg.ResolutionIdx != 1 || cfg.Language != "de" || cfg.VolMusic != 30 || cfg.VolSFX != 40 {
		t.Errorf("Load() = %+v, expected the well-typed keys to be kept", cfg)
	}
	if string(readKeys(t, store.Path())["fullscreen"]) != "false" {
		t.Error("mistyped fullscreen was not healed on disk")
	}
}

func TestLoadDefaultLanguageOverride(t *testing.T) {
	store := newTestStore(t)
	store.SetDefaultLanguage("de")

	cfg, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Language != "de" {
		t.Errorf("Language = %q, expected de", cfg.Language)
	}
}

func TestLoadPreservesUnknownKeys(t *testing.T) {
	store := newTestStore(t)
	stored := `{"resolution_idx": 0, "fullscreen": false, "max_fps": 60, "quality": "HIGH", "language": "en", "vol_music": 50, "vol_sfx": 50, "vsync": true}`
	if err := os.WriteFile(store.Path(), []byte(stored), 0o644); err != nil {
		t.Fatalf("writing settings: %v", err)
	}

	cfg, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	cfg.ToggleFullscreen()
	if err := store.Save(cfg); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	keys := readKeys(t, store.Path())
	if string(keys["vsync"]) != "true" {
		t.Errorf("unknown key vsync = %s, expected true", keys["vsync"])
	}
	if string(keys["fullscreen"]) != "true" {
		t.Errorf("fullscreen = %s, expected true", keys["fullscreen"])
	}
}

func TestLoadMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax error", `{"max_fps": `},
		{"not an object", `[1, 2, 3]`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := newTestStore(t)
			if err := os.WriteFile(store.Path(), []byte(tc.data), 0o644); err != nil {
				t.Fatalf("writing settings: %v", err)
			}

			cfg, err := store.Load()
			if !errors.Is(err, core.ErrParse) {
				t.Errorf("Load() error = %v, expected ErrParse", err)
			}
			if !reflect.DeepEqual(cfg, DefaultSettings()) {
				t.Errorf("Load() = %+v, expected defaults", cfg)
			}

			data, _ := os.ReadFile(store.Path())
			if string(data) != tc.data {
				t.Error("malformed settings file was overwritten")
			}
		})
	}
}

func TestSaveIOFailure(t *testing.T) {
	dir := t.TempDir()
	// A regular file where the parent directory should be.
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatalf("writing blocker: %v", err)
	}
	store := NewStore(filepath.Join(blocker, "settings.json"), log.New(io.Discard))

	if err := store.Save(DefaultSettings()); !errors.Is(err, core.ErrIO) {
		t.Errorf("Save() error = %v, expected ErrIO", err)
	}
}
