// Package storage provides JSON file persistence for save slots, the save
// template and the game database. Everything lives under one data
// directory:
//
//	settings.json
//	lang/<code>.json
//	saves/template/player_state.json
//	saves/template/game_data.json
//	saves/save_<n>/player_state.json
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ca-racing/internal/core"
	"github.com/vovakirdan/ca-racing/internal/gamedb"
	"github.com/vovakirdan/ca-racing/internal/player"
)

// SlotCount is the number of save slots.
const SlotCount = 3

const (
	playerStateFile = "player_state.json"
	gameDataFile    = "game_data.json"
	settingsFile    = "settings.json"
)

// Store manages the on-disk layout of one data directory.
type Store struct {
	root   string
	saves  string
	logger *log.Logger
}

// Open prepares a data directory for use. It creates the saves directory
// if needed; existing content is never modified.
func Open(dataDir string, logger *log.Logger) (*Store, error) {
	root, err := expandHome(dataDir)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}

	saves := filepath.Join(root, "saves")
	if err := os.MkdirAll(saves, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w: %w", saves, core.ErrIO, err)
	}

	return &Store{
		root:   root,
		saves:  saves,
		logger: logger.WithPrefix("data"),
	}, nil
}

// Root returns the data directory.
func (s *Store) Root() string { return s.root }

// SettingsPath returns the path of settings.json.
func (s *Store) SettingsPath() string { return filepath.Join(s.root, settingsFile) }

// LangDir returns the directory holding the language files.
func (s *Store) LangDir() string { return filepath.Join(s.root, "lang") }

// TemplatePath returns the path of the template player record.
func (s *Store) TemplatePath() string {
	return filepath.Join(s.saves, "template", playerStateFile)
}

// GameDataPath returns the path of the game database.
func (s *Store) GameDataPath() string {
	return filepath.Join(s.saves, "template", gameDataFile)
}

// SlotPath returns the player record path of a slot.
func (s *Store) SlotPath(slot int) string {
	return filepath.Join(s.slotDir(slot), playerStateFile)
}

func (s *Store) slotDir(slot int) string {
	return filepath.Join(s.saves, fmt.Sprintf("save_%d", slot))
}

// Slots returns the valid slot numbers in order.
func Slots() []int {
	slots := make([]int, SlotCount)
	for i := range slots {
		slots[i] = i + 1
	}
	return slots
}

func validSlot(slot int) error {
	if slot < 1 || slot > SlotCount {
		return fmt.Errorf("storage: slot %d: %w", slot, core.ErrInvalidSlot)
	}
	return nil
}

// CheckSlots reports which slots are occupied. A slot is occupied iff its
// player record exists and is readable; the content is not validated.
func (s *Store) CheckSlots() map[int]bool {
	status := make(map[int]bool, SlotCount)
	for _, slot := range Slots() {
		status[slot] = isReadableFile(s.SlotPath(slot))
	}
	return status
}

// Occupied reports whether a single slot holds a player record.
func (s *Store) Occupied(slot int) bool {
	if validSlot(slot) != nil {
		return false
	}
	return isReadableFile(s.SlotPath(slot))
}

// CreateSlot initializes an empty slot with a verbatim copy of the template
// record. The copy is atomic: on failure the slot stays empty.
func (s *Store) CreateSlot(slot int) error {
	if err := validSlot(slot); err != nil {
		return err
	}
	if s.Occupied(slot) {
		return fmt.Errorf("storage: slot %d: %w", slot, core.ErrAlreadyExists)
	}

	data, err := os.ReadFile(s.TemplatePath())
	if err != nil {
		return fmt.Errorf("storage: slot %d: %w: %w", slot, core.ErrTemplateMissing, err)
	}

	if err := WriteFileAtomic(s.SlotPath(slot), data); err != nil {
		s.logger.Error("cannot create save", "slot", slot, "error", err)
		return err
	}

	s.logger.Info("created new save", "slot", slot)
	return nil
}

// LoadPlayer reads and decodes a slot's player record.
func (s *Store) LoadPlayer(slot int, db *gamedb.Database) (*player.Record, error) {
	if err := validSlot(slot); err != nil {
		return nil, err
	}

	data, err := ReadFile(s.SlotPath(slot))
	if err != nil {
		return nil, err
	}

	rec, err := player.Decode(data, db)
	if err != nil {
		return nil, fmt.Errorf("storage: slot %d: %w", slot, err)
	}
	return rec, nil
}

// SavePlayer encodes a record and replaces the slot's file with it.
func (s *Store) SavePlayer(slot int, rec *player.Record) error {
	if err := validSlot(slot); err != nil {
		return err
	}

	data, err := player.Encode(rec)
	if err != nil {
		return fmt.Errorf("storage: slot %d: %w: %w", slot, core.ErrIO, err)
	}
	if err := WriteFileAtomic(s.SlotPath(slot), data); err != nil {
		s.logger.Error("cannot save player", "slot", slot, "error", err)
		return err
	}

	s.logger.Info("saved player", "slot", slot, "name", rec.Name)
	return nil
}

// DeleteSlot removes a slot's directory.
func (s *Store) DeleteSlot(slot int) error {
	if err := validSlot(slot); err != nil {
		return err
	}
	if !s.Occupied(slot) {
		return fmt.Errorf("storage: slot %d: %w", slot, core.ErrNotFound)
	}
	if err := os.RemoveAll(s.slotDir(slot)); err != nil {
		return fmt.Errorf("storage: delete slot %d: %w: %w", slot, core.ErrIO, err)
	}

	s.logger.Info("deleted save", "slot", slot)
	return nil
}

// LoadGameData reads the game database from the template directory.
func (s *Store) LoadGameData() (*gamedb.Database, error) {
	data, err := ReadFile(s.GameDataPath())
	if err != nil {
		return nil, err
	}
	return gamedb.Parse(data)
}

// Languages lists the language codes that have a file under lang/.
func (s *Store) Languages() []string {
	matches, err := filepath.Glob(filepath.Join(s.LangDir(), "*.json"))
	if err != nil {
		return nil
	}
	codes := make([]string, 0, len(matches))
	for _, m := range matches {
		base := filepath.Base(m)
		codes = append(codes, base[:len(base)-len(".json")])
	}
	sort.Strings(codes)
	return codes
}

// IsNotFound reports whether err means a missing slot or file.
func IsNotFound(err error) bool {
	return errors.Is(err, core.ErrNotFound)
}
