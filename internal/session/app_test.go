package session

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ca-racing/internal/config"
	"github.com/vovakirdan/ca-racing/internal/core"
	"github.com/vovakirdan/ca-racing/internal/locale"
	"github.com/vovakirdan/ca-racing/internal/storage"
)

func newTestApp(t *testing.T) (*App, *storage.Store) {
	t.Helper()
	logger := log.New(io.Discard)
	store, err := storage.Open(t.TempDir(), logger)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.Seed(); err != nil {
		t.Fatalf("Seed() failed: %v", err)
	}
	return New(store, config.NewStore(store.SettingsPath(), logger), logger), store
}

func TestNewApp(t *testing.T) {
	app, store := newTestApp(t)

	if app.Screen() != ScreenMenu {
		t.Errorf("Screen() = %s, expected MENU", app.Screen())
	}
	if !app.Running() {
		t.Error("Running() = false on a new app")
	}
	if app.Lang().Code() != "en" {
		t.Errorf("Lang().Code() = %q, expected en", app.Lang().Code())
	}
	if got := app.DB().CarName("car_0"); got == "car_0" {
		t.Error("game database was not loaded")
	}
	if _, err := os.Stat(store.SettingsPath()); err != nil {
		t.Errorf("settings file was not bootstrapped: %v", err)
	}
}

func TestNewAppWithoutGameData(t *testing.T) {
	logger := log.New(io.Discard)
	store, err := storage.Open(t.TempDir(), logger)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	app := New(store, config.NewStore(store.SettingsPath(), logger), logger)
	if app.DB() == nil || len(app.DB().CarIDs()) != 0 {
		t.Error("DB() should be an empty database when game data is missing")
	}
	if got := app.T("menu_play"); got != "MISSING:menu_play" {
		t.Errorf("T(menu_play) = %q, expected MISSING:menu_play", got)
	}
}

func TestNavigation(t *testing.T) {
	app, _ := newTestApp(t)

	app.OpenSettings()
	if app.Screen() != ScreenSettings || app.SettingsView() != SettingsMain {
		t.Errorf("OpenSettings() -> %s/%d, expected SETTINGS/main", app.Screen(), app.SettingsView())
	}
	app.SetSettingsView(SettingsAudio)
	app.ReturnToMenu()
	if app.Screen() != ScreenMenu {
		t.Errorf("ReturnToMenu() -> %s, expected MENU", app.Screen())
	}

	app.OpenSlots()
	if app.Screen() != ScreenSlots {
		t.Errorf("OpenSlots() -> %s, expected SLOTS", app.Screen())
	}

	if err := app.Quit(); err != nil {
		t.Fatalf("Quit() failed: %v", err)
	}
	if app.Running() {
		t.Error("Running() = true after Quit()")
	}
}

func TestStartSessionCreatesSlot(t *testing.T) {
	app, store := newTestApp(t)
	app.OpenSlots()

	if err := app.StartSession(2); err != nil {
		t.Fatalf("StartSession(2) failed: %v", err)
	}
	if !store.Occupied(2) {
		t.Error("StartSession(2) did not create the slot")
	}
	if app.Screen() != ScreenGame {
		t.Errorf("Screen() = %s, expected GAME", app.Screen())
	}

	s := app.Session()
	if s == nil || s.Slot() != 2 || s.State() != StateHub {
		t.Fatalf("Session() = %+v, expected slot 2 in HUB", s)
	}
	if s.Player().Name != "Driver" {
		t.Errorf("Player().Name = %q, expected template name", s.Player().Name)
	}

	if err := app.StartSession(1); err == nil {
		t.Error("StartSession() while a session is open should fail")
	}
	app.ReturnToMenu()
	if app.Screen() != ScreenGame {
		t.Error("ReturnToMenu() left an open game")
	}
}

func TestStartSessionWithoutTemplate(t *testing.T) {
	app, store := newTestApp(t)
	app.OpenSlots()

	if err := os.Remove(store.TemplatePath()); err != nil {
		t.Fatalf("removing template: %v", err)
	}

	err := app.StartSession(1)
	if !errors.Is(err, core.ErrTemplateMissing) {
		t.Errorf("StartSession(1) error = %v, expected ErrTemplateMissing", err)
	}
	if app.Screen() != ScreenSlots || app.Session() != nil {
		t.Errorf("failed StartSession left screen %s, expected SLOTS without session", app.Screen())
	}
}

func TestStartSessionCorruptSlot(t *testing.T) {
	app, store := newTestApp(t)

	if err := storage.WriteFileAtomic(store.SlotPath(3), []byte(`{"player": []}`)); err != nil {
		t.Fatalf("WriteFileAtomic() failed: %v", err)
	}
	if err := app.StartSession(3); !errors.Is(err, core.ErrSchema) {
		t.Errorf("StartSession(3) error = %v, expected ErrSchema", err)
	}
	if app.Session() != nil {
		t.Error("corrupt slot opened a session")
	}
}

func TestCloseSessionPersists(t *testing.T) {
	app, store := newTestApp(t)

	if err := app.StartSession(1); err != nil {
		t.Fatalf("StartSession(1) failed: %v", err)
	}
	s := app.Session()
	s.Rename("Zoe")
	s.Player().Garage = append(s.Player().Garage, "car_7")
	if !s.SelectCar("car_7") {
		t.Fatal("SelectCar(car_7) = false for an owned car")
	}

	if err := app.CloseSession(); err != nil {
		t.Fatalf("CloseSession() failed: %v", err)
	}
	if app.Session() != nil || app.Screen() != ScreenMenu {
		t.Errorf("after CloseSession() screen = %s, session = %v", app.Screen(), app.Session())
	}

	rec, err := store.LoadPlayer(1, app.DB())
	if err != nil {
		t.Fatalf("LoadPlayer(1) failed: %v", err)
	}
	if rec.Name != "Zoe" || rec.CurrentCar != "car_7" {
		t.Errorf("persisted record = %q/%q, expected Zoe/car_7", rec.Name, rec.CurrentCar)
	}
}

func TestCloseSessionSaveFailure(t *testing.T) {
	app, store := newTestApp(t)

	if err := app.StartSession(1); err != nil {
		t.Fatalf("StartSession(1) failed: %v", err)
	}

	// Replace the saves directory with a regular file.
	saves := filepath.Dir(filepath.Dir(store.SlotPath(1)))
	if err := os.RemoveAll(saves); err != nil {
		t.Fatalf("removing saves: %v", err)
	}
	if err := os.WriteFile(saves, nil, 0o644); err != nil {
		t.Fatalf("writing blocker: %v", err)
	}

	if err := app.CloseSession(); !errors.Is(err, core.ErrIO) {
		t.Errorf("CloseSession() error = %v, expected ErrIO", err)
	}
	if app.Session() == nil || app.Screen() != ScreenGame {
		t.Error("failed CloseSession() closed the session")
	}
	if err := app.Quit(); err == nil {
		t.Error("Quit() with an unsaveable session should fail")
	}
	if !app.Running() {
		t.Error("failed Quit() stopped the app")
	}

	app.Abandon()
	if app.Running() || app.Session() != nil {
		t.Error("Abandon() did not stop the app and drop the session")
	}
}

func TestSaveSessionWithoutSession(t *testing.T) {
	app, _ := newTestApp(t)
	if err := app.SaveSession(); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("SaveSession() error = %v, expected ErrNotFound", err)
	}
}

func TestSettingsWriteThrough(t *testing.T) {
	app, store := newTestApp(t)

	if err := app.CycleFPS(1); err != nil {
		t.Fatalf("CycleFPS(1) failed: %v", err)
	}
	if err := app.ToggleFullscreen(); err != nil {
		t.Fatalf("ToggleFullscreen() failed: %v", err)
	}
	if err := app.AdjustMusicVolume(80); err != nil {
		t.Fatalf("AdjustMusicVolume(80) failed: %v", err)
	}
	if err := app.CycleQuality(-1); err != nil {
		t.Fatalf("CycleQuality(-1) failed: %v", err)
	}
	if err := app.CycleResolution(1); err != nil {
		t.Fatalf("CycleResolution(1) failed: %v", err)
	}
	if err := app.AdjustSFXVolume(-5); err != nil {
		t.Fatalf("AdjustSFXVolume(-5) failed: %v", err)
	}

	cfg, err := config.NewStore(store.SettingsPath(), log.New(io.Discard)).Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	expected := config.Settings{
		ResolutionIdx: 1,
		Fullscreen:    true,
		MaxFPS:        120,
		Quality:       config.QualityMed,
		Language:      "en",
		VolMusic:      100,
		VolSFX:        45,
	}
	if !reflect.DeepEqual(cfg, expected) {
		t.Errorf("persisted settings = %+v, expected %+v", cfg, expected)
	}
	if !reflect.DeepEqual(app.Settings(), expected) {
		t.Errorf("Settings() = %+v, expected %+v", app.Settings(), expected)
	}
}

func TestSetLanguageReloadsTable(t *testing.T) {
	app, store := newTestApp(t)

	if err := app.SetLanguage("pl"); err != nil {
		t.Fatalf("SetLanguage(pl) failed: %v", err)
	}
	if app.Lang().Code() != "pl" {
		t.Errorf("Lang().Code() = %q, expected pl", app.Lang().Code())
	}

	pl := locale.Load(store.LangDir(), "pl", log.New(io.Discard))
	if got := app.T("menu_play"); got != pl.Get("menu_play") {
		t.Errorf("T(menu_play) = %q, expected %q", got, pl.Get("menu_play"))
	}

	cfg, err := config.NewStore(store.SettingsPath(), log.New(io.Discard)).Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Language != "pl" {
		t.Errorf("persisted language = %q, expected pl", cfg.Language)
	}
}
