package locale

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func writeLang(t *testing.T, dir, code, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, code+".json"), []byte(body), 0o644); err != nil {
		t.Fatalf("writing %s.json: %v", code, err)
	}
}

func TestLoadAndGet(t *testing.T) {
	dir := t.TempDir()
	writeLang(t, dir, "pl", `{"menu_play": "Graj"}`)

	table := Load(dir, "pl", log.New(io.Discard))
	if table.Code() != "pl" {
		t.Errorf("Code() = %q, expected pl", table.Code())
	}
	if got := table.Get("menu_play"); got != "Graj" {
		t.Errorf("Get(menu_play) = %q, expected Graj", got)
	}
	if got := table.Get("menu_exit"); got != "MISSING:menu_exit" {
		t.Errorf("Get(menu_exit) = %q, expected MISSING:menu_exit", got)
	}
}

func TestLoadFallsBackToEnglish(t *testing.T) {
	dir := t.TempDir()
	writeLang(t, dir, "en", `{"menu_play": "Play"}`)
	writeLang(t, dir, "fr", `{"menu_play": `)

	tests := []struct {
		name string
		code string
	}{
		{"missing file", "de"},
		{"malformed file", "fr"},
		{"path traversal", "../en"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			table := Load(dir, tc.code, log.New(io.Discard))
			if table.Code() != "en" {
				t.Errorf("Code() = %q, expected en", table.Code())
			}
			if got := table.Get("menu_play"); got != "Play" {
				t.Errorf("Get(menu_play) = %q, expected Play", got)
			}
		})
	}
}

func TestLoadEmptyWhenEnglishMissing(t *testing.T) {
	table := Load(t.TempDir(), "pl", log.New(io.Discard))
	if table.Len() != 0 {
		t.Errorf("Len() = %d, expected empty table", table.Len())
	}
	if got := table.Get("menu_play"); got != "MISSING:menu_play" {
		t.Errorf("Get(menu_play) = %q, expected sentinel", got)
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"pl_PL.UTF-8", "pl"},
		{"de_AT", "de"},
		{"pt-BR", "pt"},
		{"fr_CA.UTF-8@euro", "fr"},
		{"es", "es"},
		{"en_GB", "en"},
		{"ja_JP.UTF-8", "en"},
		{"C", "en"},
		{"POSIX", "en"},
		{"", "en"},
		{"not a locale!", "en"},
	}

	for _, tc := range tests {
		if got := Match(tc.raw); got != tc.expected {
			t.Errorf("Match(%q) = %q, expected %q", tc.raw, got, tc.expected)
		}
	}
}

func TestDetect(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "de_DE.UTF-8")
	if got := Detect(); got != "de" {
		t.Errorf("Detect() = %q, expected de", got)
	}

	t.Setenv("LC_ALL", "es_ES.UTF-8")
	if got := Detect(); got != "es" {
		t.Errorf("Detect() with LC_ALL = %q, expected es", got)
	}
}

func TestName(t *testing.T) {
	if Name("pl") != "Polski" {
		t.Errorf("Name(pl) = %q, expected Polski", Name("pl"))
	}
	if Name("xx") != "xx" {
		t.Errorf("Name(xx) = %q, expected xx", Name("xx"))
	}
}
