// Package session implements the screen state machine that sits between the
// persistence layer and the terminal UI. It owns the global settings and the
// single resident player record; the UI only renders its state and calls
// its operations.
package session

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ca-racing/internal/config"
	"github.com/vovakirdan/ca-racing/internal/core"
	"github.com/vovakirdan/ca-racing/internal/gamedb"
	"github.com/vovakirdan/ca-racing/internal/locale"
	"github.com/vovakirdan/ca-racing/internal/storage"
)

// Screen is the top-level application state.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenSlots
	ScreenSettings
	ScreenGame
)

func (s Screen) String() string {
	switch s {
	case ScreenMenu:
		return "MENU"
	case ScreenSlots:
		return "SLOTS"
	case ScreenSettings:
		return "SETTINGS"
	case ScreenGame:
		return "GAME"
	default:
		return "UNKNOWN"
	}
}

// SettingsView is the active page of the settings screen.
type SettingsView int

const (
	SettingsMain SettingsView = iota
	SettingsGraphics
	SettingsAudio
	SettingsLanguage
)

// App is the application controller.
type App struct {
	store         *storage.Store
	settingsStore *config.Store
	settings      config.Settings
	lang          *locale.Table
	db            *gamedb.Database
	logger        *log.Logger

	screen       Screen
	settingsView SettingsView
	session      *Session
	running      bool
}

// New loads settings, the language table and the game database. Failures
// degrade to defaults and are logged; New itself never fails.
func New(store *storage.Store, settingsStore *config.Store, logger *log.Logger) *App {
	if logger == nil {
		logger = log.Default()
	}

	settings, err := settingsStore.Load()
	if err != nil {
		logger.Warn("using default settings", "error", err)
	}

	db, err := store.LoadGameData()
	if err != nil {
		logger.Error("cannot load game database", "error", err)
		db = gamedb.Empty()
	}

	return &App{
		store:         store,
		settingsStore: settingsStore,
		settings:      settings,
		lang:          locale.Load(store.LangDir(), settings.Language, logger),
		db:            db,
		logger:        logger,
		screen:        ScreenMenu,
		running:       true,
	}
}

// Screen returns the active top-level screen.
func (a *App) Screen() Screen { return a.screen }

// SettingsView returns the active settings page.
func (a *App) SettingsView() SettingsView { return a.settingsView }

// Settings returns a copy of the current settings.
func (a *App) Settings() config.Settings { return a.settings }

// Lang returns the active string table.
func (a *App) Lang() *locale.Table { return a.lang }

// T is shorthand for Lang().Get(key).
func (a *App) T(key string) string { return a.lang.Get(key) }

// DB returns the game database.
func (a *App) DB() *gamedb.Database { return a.db }

// Session returns the open game session, or nil.
func (a *App) Session() *Session { return a.session }

// Running reports whether the player has not asked to quit.
func (a *App) Running() bool { return a.running }

// Slots reports which save slots are occupied.
func (a *App) Slots() map[int]bool { return a.store.CheckSlots() }

// OpenSlots shows the save slot picker.
func (a *App) OpenSlots() {
	a.screen = ScreenSlots
}

// OpenSettings shows the global settings screen.
func (a *App) OpenSettings() {
	a.screen = ScreenSettings
	a.settingsView = SettingsMain
}

// SetSettingsView switches the settings page.
func (a *App) SetSettingsView(v SettingsView) {
	a.settingsView = v
}

// ReturnToMenu goes back to the main menu from the slot picker or settings.
// It has no effect while a game session is open.
func (a *App) ReturnToMenu() {
	if a.session != nil {
		return
	}
	a.screen = ScreenMenu
}

// Quit stops the application. An open session is saved first; if that
// fails the application keeps running and the error is returned.
func (a *App) Quit() error {
	if a.session != nil {
		if err := a.CloseSession(); err != nil {
			return err
		}
	}
	a.running = false
	return nil
}

// Abandon stops the application without saving the open session. It is the
// way out when Quit keeps failing to write the slot.
func (a *App) Abandon() {
	if a.session != nil {
		a.logger.Warn("quitting without saving", "slot", a.session.Slot())
		a.session = nil
		a.screen = ScreenMenu
	}
	a.running = false
}

// StartSession opens a save slot, creating it from the template if it is
// empty. On failure the screen is left unchanged.
func (a *App) StartSession(slot int) error {
	if a.session != nil {
		return fmt.Errorf("session: slot %d is already open", a.session.Slot())
	}

	if !a.store.Occupied(slot) {
		if err := a.store.CreateSlot(slot); err != nil {
			a.logger.Error("cannot create save", "slot", slot, "error", err)
			return err
		}
	}

	rec, err := a.store.LoadPlayer(slot, a.db)
	if err != nil {
		a.logger.Error("cannot load save", "slot", slot, "error", err)
		return err
	}

	a.session = newSession(slot, rec)
	a.screen = ScreenGame
	a.logger.Info("game started", "slot", slot, "player", rec.Name)
	return nil
}

// SaveSession writes the open session's player record to its slot.
func (a *App) SaveSession() error {
	if a.session == nil {
		return fmt.Errorf("session: no open session: %w", core.ErrNotFound)
	}
	return a.store.SavePlayer(a.session.Slot(), a.session.Player())
}

// CloseSession saves the player record and returns to the main menu. If the
// save fails the session stays open.
func (a *App) CloseSession() error {
	if err := a.SaveSession(); err != nil {
		return err
	}
	a.session = nil
	a.screen = ScreenMenu
	return nil
}

// updateSettings applies a change and writes it through to disk. The
// in-memory change is kept even when the write fails.
func (a *App) updateSettings(change func(*config.Settings)) error {
	change(&a.settings)
	return a.settingsStore.Save(a.settings)
}

// CycleResolution steps through the resolution table.
func (a *App) CycleResolution(step int) error {
	return a.updateSettings(func(s *config.Settings) { s.CycleResolution(step) })
}

// ToggleFullscreen flips fullscreen mode.
func (a *App) ToggleFullscreen() error {
	return a.updateSettings(func(s *config.Settings) { s.ToggleFullscreen() })
}

// CycleFPS steps through the frame caps.
func (a *App) CycleFPS(step int) error {
	return a.updateSettings(func(s *config.Settings) { s.CycleFPS(step) })
}

// CycleQuality steps through the quality tiers.
func (a *App) CycleQuality(step int) error {
	return a.updateSettings(func(s *config.Settings) { s.CycleQuality(step) })
}

// AdjustMusicVolume changes the music volume by delta percent.
func (a *App) AdjustMusicVolume(delta int) error {
	return a.updateSettings(func(s *config.Settings) { s.SetMusicVolume(s.VolMusic + delta) })
}

// AdjustSFXVolume changes the effects volume by delta percent.
func (a *App) AdjustSFXVolume(delta int) error {
	return a.updateSettings(func(s *config.Settings) { s.SetSFXVolume(s.VolSFX + delta) })
}

// SetLanguage switches the UI language and persists the choice.
func (a *App) SetLanguage(code string) error {
	a.lang = locale.Load(a.store.LangDir(), code, a.logger)
	a.logger.Info("language changed", "language", code, "strings", a.lang.Len())
	return a.updateSettings(func(s *config.Settings) { s.SetLanguage(code) })
}
