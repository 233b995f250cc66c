package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ca-racing/internal/locale"
	"github.com/vovakirdan/ca-racing/internal/session"
	"github.com/vovakirdan/ca-racing/internal/storage"
)

// tone selects the style of a menu entry.
type tone int

const (
	toneNormal tone = iota
	toneAccent
	toneDanger
)

// menuEntry is one selectable line of a menu screen.
type menuEntry struct {
	label string
	value string // Current value for settings rows, empty otherwise
	tone  tone
}

// Hub entries, in display order.
const (
	hubRace = iota
	hubGarage
	hubShop
	hubSettings
	hubMainMenu
)

// Settings rows, in display order.
const (
	gfxResolution = iota
	gfxFullscreen
	gfxFPS
	gfxQuality
	gfxBack
)

const (
	audioMusic = iota
	audioSFX
	audioBack
)

const (
	settingsGraphics = iota
	settingsAudio
	settingsLanguage
	settingsBack
)

const (
	mainPlay = iota
	mainOptions
	mainExit
)

// volumeStep is the change applied by one left/right press on a volume row.
const volumeStep = 10

// entries returns the menu lines of the active screen.
func (m Model) entries() []menuEntry {
	app := m.app
	t := app.T

	switch app.Screen() {
	case session.ScreenMenu:
		return []menuEntry{
			{label: t("menu_play")},
			{label: t("menu_options")},
			{label: t("menu_exit"), tone: toneDanger},
		}

	case session.ScreenSlots:
		occupied := app.Slots()
		items := make([]menuEntry, 0, storage.SlotCount+1)
		for _, slot := range storage.Slots() {
			state := t("slot_new")
			if occupied[slot] {
				state = t("slot_load")
			}
			items = append(items, menuEntry{label: fmt.Sprintf("%s %d", t("slot_prefix"), slot), value: state})
		}
		return append(items, menuEntry{label: t("menu_back")})

	case session.ScreenSettings:
		return m.settingsEntries()

	case session.ScreenGame:
		if s := app.Session(); s != nil && s.State() == session.StateHub {
			return []menuEntry{
				{label: t("hub_race"), tone: toneAccent},
				{label: t("hub_garage")},
				{label: t("hub_shop")},
				{label: t("hub_settings")},
				{label: t("hub_main_menu"), tone: toneDanger},
			}
		}
	}
	return nil
}

func (m Model) settingsEntries() []menuEntry {
	app := m.app
	t := app.T
	cfg := app.Settings()

	switch app.SettingsView() {
	case session.SettingsGraphics:
		res := cfg.Resolution()
		fullscreen := t("val_off")
		if cfg.Fullscreen {
			fullscreen = t("val_on")
		}
		return []menuEntry{
			{label: t("gfx_resolution"), value: fmt.Sprintf("%dx%d", res.Width, res.Height)},
			{label: t("gfx_fullscreen"), value: fullscreen},
			{label: t("gfx_fps"), value: fmt.Sprintf("%d", cfg.FrameCap())},
			{label: t("gfx_quality"), value: t("quality_" + strings.ToLower(string(cfg.Quality)))},
			{label: t("menu_back")},
		}

	case session.SettingsAudio:
		return []menuEntry{
			{label: t("audio_music"), value: fmt.Sprintf("%d%%", int(cfg.MusicVolume()*100))},
			{label: t("audio_sfx"), value: fmt.Sprintf("%d%%", int(cfg.SFXVolume()*100))},
			{label: t("menu_back")},
		}

	case session.SettingsLanguage:
		items := make([]menuEntry, 0, len(locale.Options)+1)
		for _, o := range locale.Options {
			e := menuEntry{label: o.Name}
			if o.Code == cfg.Language {
				e.value = "*"
			}
			items = append(items, e)
		}
		return append(items, menuEntry{label: t("menu_back")})
	}

	return []menuEntry{
		{label: t("settings_graphics")},
		{label: t("settings_audio")},
		{label: t("settings_language")},
		{label: t("menu_back")},
	}
}

// languageAt returns the code of the i-th language row.
func languageAt(i int) string {
	return locale.Options[i].Code
}

// title returns the heading of the active screen.
func (m Model) title() string {
	app := m.app
	switch app.Screen() {
	case session.ScreenSlots:
		return app.T("title_slots")
	case session.ScreenSettings:
		switch app.SettingsView() {
		case session.SettingsGraphics:
			return app.T("settings_graphics")
		case session.SettingsAudio:
			return app.T("settings_audio")
		case session.SettingsLanguage:
			return app.T("settings_language")
		}
		return app.T("settings_global_title")
	}
	return app.T("title_main")
}

// renderMenu draws a title and a list of entries, centred.
func (m Model) renderMenu(title string, items []menuEntry) string {
	th := m.theme()
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(th.Title.Render(title), m.config.ScreenW))
	b.WriteString("\n\n")

	for i, item := range items {
		style := th.Item
		switch item.tone {
		case toneAccent:
			style = th.Accent
		case toneDanger:
			style = th.Danger
		}

		cursor := "  "
		if i == m.cursor {
			cursor = "> "
			style = th.ItemActive
		}

		line := style.Render(cursor + item.label)
		if item.value != "" {
			line += "  " + th.Value.Render(item.value)
		}
		b.WriteString(centerText(line, m.config.ScreenW))
		b.WriteString("\n")
	}

	return b.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
