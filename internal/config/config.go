// Package config provides the global settings record, its fixed option
// tables and the JSON store that loads, heals and persists it.
package config

import (
	"encoding/json"

	"github.com/vovakirdan/ca-racing/internal/core"
)

// Resolution is a selectable window size.
type Resolution struct {
	Width  int
	Height int
}

// Quality is a rendering quality tier.
type Quality string

const (
	QualityLow  Quality = "LOW"
	QualityMed  Quality = "MED"
	QualityHigh Quality = "HIGH"
)

// Option tables. Stored indexes and values are range-checked against
// these before use; anything unknown falls back to the first entry.
var (
	Resolutions = []Resolution{
		{1280, 720},
		{1366, 768},
		{1600, 900},
		{1920, 1080},
	}
	FPSLimits = []int{30, 60, 120, 144}
	Qualities = []Quality{QualityLow, QualityMed, QualityHigh}
)

// Settings is the process-wide configuration, independent of save slots.
type Settings struct {
	ResolutionIdx int     `json:"resolution_idx" yaml:"resolution_idx"`
	Fullscreen    bool    `json:"fullscreen" yaml:"fullscreen"`
	MaxFPS        int     `json:"max_fps" yaml:"max_fps"`
	Quality       Quality `json:"quality" yaml:"quality"`
	Language      string  `json:"language" yaml:"language"`
	VolMusic      int     `json:"vol_music" yaml:"vol_music"` // 0-100
	VolSFX        int     `json:"vol_sfx" yaml:"vol_sfx"`     // 0-100

	// extra holds keys this version does not know about, so a settings
	// file written by a newer build survives a round trip.
	extra map[string]json.RawMessage
}

// knownKeys lists the wire names of every Settings field.
var knownKeys = []string{
	"resolution_idx",
	"fullscreen",
	"max_fps",
	"quality",
	"language",
	"vol_music",
	"vol_sfx",
}

// settingsFields has the Settings layout without its JSON methods.
type settingsFields Settings

// MarshalJSON writes the known fields followed by any preserved unknown keys.
func (s Settings) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal(settingsFields(s))
	if err != nil || len(s.extra) == 0 {
		return known, err
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(known, &merged); err != nil {
		return nil, err
	}
	for k, v := range s.extra {
		if _, ok := merged[k]; !ok {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}

// ResolutionIndex returns ResolutionIdx, or 0 if it is outside the table.
func (s Settings) ResolutionIndex() int {
	if s.ResolutionIdx < 0 || s.ResolutionIdx >= len(Resolutions) {
		return 0
	}
	return s.ResolutionIdx
}

// Resolution returns the selected window size.
func (s Settings) Resolution() Resolution {
	return Resolutions[s.ResolutionIndex()]
}

// FPSIndex returns the position of MaxFPS in FPSLimits, or 0 if the value
// is not in the table.
func (s Settings) FPSIndex() int {
	for i, fps := range FPSLimits {
		if fps == s.MaxFPS {
			return i
		}
	}
	return 0
}

// FrameCap returns the effective frame-rate limit.
func (s Settings) FrameCap() int {
	return FPSLimits[s.FPSIndex()]
}

// QualityIndex returns the position of Quality in Qualities, or 0.
func (s Settings) QualityIndex() int {
	for i, q := range Qualities {
		if q == s.Quality {
			return i
		}
	}
	return 0
}

// MusicVolume returns the music volume as a 0-1 gain.
func (s Settings) MusicVolume() float64 {
	return float64(core.Clamp(s.VolMusic, 0, 100)) / 100
}

// SFXVolume returns the effects volume as a 0-1 gain.
func (s Settings) SFXVolume() float64 {
	return float64(core.Clamp(s.VolSFX, 0, 100)) / 100
}

// CycleResolution moves the resolution selection by step, wrapping around.
func (s *Settings) CycleResolution(step int) {
	s.ResolutionIdx = core.Wrap(s.ResolutionIndex(), step, len(Resolutions))
}

// ToggleFullscreen flips the fullscreen flag.
func (s *Settings) ToggleFullscreen() {
	s.Fullscreen = !s.Fullscreen
}

// CycleFPS moves the frame cap by step through FPSLimits.
func (s *Settings) CycleFPS(step int) {
	s.MaxFPS = FPSLimits[core.Wrap(s.FPSIndex(), step, len(FPSLimits))]
}

// CycleQuality moves the quality tier by step through Qualities.
func (s *Settings) CycleQuality(step int) {
	s.Quality = Qualities[core.Wrap(s.QualityIndex(), step, len(Qualities))]
}

// SetLanguage records the selected language code.
func (s *Settings) SetLanguage(code string) {
	s.Language = code
}

// SetMusicVolume sets the music volume, clamped to 0-100.
func (s *Settings) SetMusicVolume(percent int) {
	s.VolMusic = core.Clamp(percent, 0, 100)
}

// SetSFXVolume sets the effects volume, clamped to 0-100.
func (s *Settings) SetSFXVolume(percent int) {
	s.VolSFX = core.Clamp(percent, 0, 100)
}
