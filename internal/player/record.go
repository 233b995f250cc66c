// Package player models one save slot's player state and converts it to and
// from the player_state.json wire format.
package player

import (
	"encoding/json"
	"strings"

	"github.com/vovakirdan/ca-racing/internal/gamedb"
)

// Record is the in-memory state of one save slot.
//
// A record is canonical when Garage and Inventory are non-nil and every
// inventory value is compact JSON; Decode always produces canonical records.
type Record struct {
	Name  string
	Money int
	Level int
	Exp   int

	// Garage lists owned car identifiers in display order.
	Garage []string

	// Inventory maps item identifiers to opaque item data.
	Inventory map[string]json.RawMessage

	// CurrentCar is empty when no car is selected. Otherwise it is an
	// element of Garage.
	CurrentCar string

	db *gamedb.Database
}

// DB returns the game database the record was decoded against.
func (r *Record) DB() *gamedb.Database {
	return r.db
}

// Owns reports whether carID is in the garage.
func (r *Record) Owns(carID string) bool {
	if carID == "" {
		return false
	}
	for _, id := range r.Garage {
		if id == carID {
			return true
		}
	}
	return false
}

// SetName renames the player. Blank names are ignored.
func (r *Record) SetName(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	r.Name = name
	return true
}

// SetCurrentCar selects an owned car. Returns false and leaves the
// selection unchanged if the car is not in the garage.
func (r *Record) SetCurrentCar(carID string) bool {
	if !r.Owns(carID) {
		return false
	}
	r.CurrentCar = carID
	return true
}

// CurrentCarName returns the display name of the selected car, or an empty
// string when nothing is selected.
func (r *Record) CurrentCarName() string {
	if r.CurrentCar == "" {
		return ""
	}
	return r.db.CarName(r.CurrentCar)
}

// resolveCurrentCar applies the load-time defaulting rule: keep an owned
// selection, otherwise fall back to the first garage entry.
func (r *Record) resolveCurrentCar(stored string) {
	switch {
	case r.Owns(stored):
		r.CurrentCar = stored
	case len(r.Garage) > 0:
		r.CurrentCar = r.Garage[0]
	default:
		r.CurrentCar = ""
	}
}
