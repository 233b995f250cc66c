// Package gamedb holds the static car and item catalog shipped with the
// save template. It is loaded once per process and never mutated.
package gamedb

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/vovakirdan/ca-racing/internal/core"
)

// Car is a catalog entry for a purchasable car model.
type Car struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// Database is the read-only catalog of cars and items.
type Database struct {
	cars  map[string]Car
	items map[string]json.RawMessage
}

type wireDatabase struct {
	Cars  map[string]Car             `json:"cars"`
	Items map[string]json.RawMessage `json:"items"`
}

// Empty returns a database with no entries. Used when game_data.json
// cannot be loaded so the screens still have something to query.
func Empty() *Database {
	return &Database{
		cars:  map[string]Car{},
		items: map[string]json.RawMessage{},
	}
}

// Parse decodes a game_data.json document.
func Parse(data []byte) (*Database, error) {
	var w wireDatabase
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("gamedb: %w: %v", core.ErrParse, err)
	}
	db := Empty()
	for id, c := range w.Cars {
		db.cars[id] = c
	}
	for id, raw := range w.Items {
		db.items[id] = raw
	}
	return db, nil
}

// Car looks up a car model by identifier.
func (d *Database) Car(id string) (Car, bool) {
	if d == nil {
		return Car{}, false
	}
	c, ok := d.cars[id]
	return c, ok
}

// CarName returns the display name of a car, or the identifier itself
// when the catalog has no name for it.
func (d *Database) CarName(id string) string {
	if c, ok := d.Car(id); ok && c.Name != "" {
		return c.Name
	}
	return id
}

// Item returns the raw catalog entry for an item.
func (d *Database) Item(id string) (json.RawMessage, bool) {
	if d == nil {
		return nil, false
	}
	raw, ok := d.items[id]
	return raw, ok
}

// CarIDs returns all catalog car identifiers, sorted.
func (d *Database) CarIDs() []string {
	if d == nil {
		return nil
	}
	ids := make([]string, 0, len(d.cars))
	for id := range d.cars {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
