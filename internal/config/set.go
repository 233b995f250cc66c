package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/vovakirdan/ca-racing/internal/core"
)

// Keys returns the wire names of the known settings in file order.
func Keys() []string {
	return slices.Clone(knownKeys)
}

// Set assigns a setting from its textual form, as given on the command
// line. Values are validated against the option tables; volumes are
// clamped.
func (s *Settings) Set(key, value string) error {
	value = strings.TrimSpace(value)

	switch key {
	case "resolution_idx":
		n, err := parseInt(key, value)
		if err != nil {
			return err
		}
		if n < 0 || n >= len(Resolutions) {
			return invalid(key, value, fmt.Sprintf("expected 0-%d", len(Resolutions)-1))
		}
		s.ResolutionIdx = n

	case "fullscreen":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return invalid(key, value, "expected true or false")
		}
		s.Fullscreen = b

	case "max_fps":
		n, err := parseInt(key, value)
		if err != nil {
			return err
		}
		if !slices.Contains(FPSLimits, n) {
			return invalid(key, value, fmt.Sprintf("expected one of %v", FPSLimits))
		}
		s.MaxFPS = n

	case "quality":
		q := Quality(strings.ToUpper(value))
		if !slices.Contains(Qualities, q) {
			return invalid(key, value, fmt.Sprintf("expected one of %v", Qualities))
		}
		s.Quality = q

	case "language":
		if value == "" {
			return invalid(key, value, "expected a language code")
		}
		s.SetLanguage(value)

	case "vol_music":
		n, err := parseInt(key, value)
		if err != nil {
			return err
		}
		s.SetMusicVolume(n)

	case "vol_sfx":
		n, err := parseInt(key, value)
		if err != nil {
			return err
		}
		s.SetSFXVolume(n)

	default:
		return fmt.Errorf("config: unknown setting %q: %w", key, core.ErrNotFound)
	}
	return nil
}

func parseInt(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, invalid(key, value, "expected an integer")
	}
	return n, nil
}

func invalid(key, value, reason string) error {
	return fmt.Errorf("config: %s=%q: %w: %s", key, value, core.ErrParse, reason)
}
