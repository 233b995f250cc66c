package session

import (
	"github.com/vovakirdan/ca-racing/internal/garage"
	"github.com/vovakirdan/ca-racing/internal/player"
)

// State is the active sub-screen of an open game.
type State int

const (
	StateHub State = iota
	StateGarage
	StateShop
	StateRace
	StatePlayerSettings
)

func (s State) String() string {
	switch s {
	case StateHub:
		return "HUB"
	case StateGarage:
		return "GARAGE"
	case StateShop:
		return "SHOP"
	case StateRace:
		return "RACE"
	case StatePlayerSettings:
		return "PLAYER_SETTINGS"
	default:
		return "UNKNOWN"
	}
}

// Session is an open save slot. The player record is mutated in memory
// only and written back when the session closes.
type Session struct {
	slot   int
	player *player.Record
	state  State
}

func newSession(slot int, rec *player.Record) *Session {
	return &Session{slot: slot, player: rec, state: StateHub}
}

// Slot returns the save slot number.
func (s *Session) Slot() int { return s.slot }

// Player returns the resident player record.
func (s *Session) Player() *player.Record { return s.player }

// State returns the active sub-screen.
func (s *Session) State() State { return s.state }

// SetState switches sub-screen.
func (s *Session) SetState(st State) { s.state = st }

// Back returns to the hub. It reports false if already there.
func (s *Session) Back() bool {
	if s.state == StateHub {
		return false
	}
	s.state = StateHub
	return true
}

// Rename changes the player's name. Blank names are rejected.
func (s *Session) Rename(name string) bool {
	return s.player.SetName(name)
}

// SelectCar makes an owned car the current one.
func (s *Session) SelectCar(carID string) bool {
	return s.player.SetCurrentCar(carID)
}

// GarageTiles lays out the owned cars on the given grid.
func (s *Session) GarageTiles(g garage.Grid) []garage.Tile {
	return garage.Layout(s.player.Garage, g)
}

// ClickGarage selects the car under (x, y). hit is false when the point is
// outside every tile; selected is false when the car could not be chosen.
func (s *Session) ClickGarage(tiles []garage.Tile, x, y int) (carID string, hit, selected bool) {
	carID, hit = garage.HitTest(tiles, x, y)
	if !hit {
		return "", false, false
	}
	return carID, true, s.SelectCar(carID)
}
