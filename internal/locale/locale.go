// Package locale loads the per-language string tables from lang/<code>.json
// and picks a language for the current system.
package locale

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/text/language"

	"github.com/vovakirdan/ca-racing/internal/core"
	"github.com/vovakirdan/ca-racing/internal/storage"
)

// Fallback is the language loaded when the requested one is unavailable.
const Fallback = "en"

// Option is a language offered on the settings screen.
type Option struct {
	Code string
	Name string // Endonym shown in the language list
}

// Options lists the shipped languages in display order.
var Options = []Option{
	{"en", "English"},
	{"pl", "Polski"},
	{"de", "Deutsch"},
	{"es", "Español"},
	{"fr", "Français"},
	{"pt", "Português"},
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, 0, len(Options))
	for _, o := range Options {
		tags = append(tags, language.MustParse(o.Code))
	}
	return language.NewMatcher(tags)
}()

// Table is a loaded string table.
type Table struct {
	code    string
	strings map[string]string
}

// Load reads dir/<code>.json. If that fails it falls back to the English
// table, and if that fails too it returns an empty table.
func Load(dir, code string, logger *log.Logger) *Table {
	if logger == nil {
		logger = log.Default()
	}
	logger = logger.WithPrefix("lang")

	t, err := loadFile(dir, code)
	if err == nil {
		logger.Info("loaded language", "code", code)
		return t
	}
	logger.Warn("cannot load language", "code", code, "error", err)

	if code != Fallback {
		t, err = loadFile(dir, Fallback)
		if err == nil {
			logger.Info("loaded fallback language", "code", Fallback)
			return t
		}
		logger.Warn("cannot load fallback language", "error", err)
	}
	return &Table{code: Fallback, strings: map[string]string{}}
}

func loadFile(dir, code string) (*Table, error) {
	if code == "" || strings.ContainsAny(code, `/\.`) {
		return nil, fmt.Errorf("locale: language %q: %w", code, core.ErrNotFound)
	}
	data, err := storage.ReadFile(filepath.Join(dir, code+".json"))
	if err != nil {
		return nil, err
	}
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("locale: %s: %w: %v", code, core.ErrParse, err)
	}
	if m == nil {
		m = map[string]string{}
	}
	return &Table{code: code, strings: m}, nil
}

// Code returns the language code the table was loaded for.
func (t *Table) Code() string {
	return t.code
}

// Get returns the localized text for key, or "MISSING:<key>".
func (t *Table) Get(key string) string {
	if s, ok := t.strings[key]; ok {
		return s
	}
	return "MISSING:" + key
}

// Len returns the number of strings in the table.
func (t *Table) Len() int {
	return len(t.strings)
}

// Match maps a POSIX locale or BCP 47 tag ("pl_PL.UTF-8", "pt-BR") to the
// closest shipped language code, or Fallback.
func Match(raw string) string {
	raw, _, _ = strings.Cut(raw, ".")
	raw, _, _ = strings.Cut(raw, "@")
	raw = strings.ReplaceAll(raw, "_", "-")
	if raw == "" || raw == "C" || raw == "POSIX" {
		return Fallback
	}

	tag, err := language.Parse(raw)
	if err != nil {
		return Fallback
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Fallback
	}
	return Options[idx].Code
}

// Detect returns the shipped language closest to the user's locale
// environment (LC_ALL, LC_MESSAGES, LANG in that order).
func Detect() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(name); v != "" {
			return Match(v)
		}
	}
	return Fallback
}

// Name returns the display name of a language code, or the code itself.
func Name(code string) string {
	for _, o := range Options {
		if o.Code == code {
			return o.Name
		}
	}
	return code
}
