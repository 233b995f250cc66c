package player

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/vovakirdan/ca-racing/internal/core"
	"github.com/vovakirdan/ca-racing/internal/gamedb"
)

// SchemaError reports a well-formed record with a missing or invalid field.
// It matches core.ErrSchema under errors.Is.
type SchemaError struct {
	Field  string // Dotted path, e.g. "player.money" or "garage[2]"
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("player: %s: %s: %s", core.ErrSchema, e.Field, e.Reason)
}

// Is makes errors.Is(err, core.ErrSchema) true.
func (e *SchemaError) Is(target error) bool {
	return target == core.ErrSchema
}

// CarRef is a garage or current_car entry as found on disk: either a bare
// identifier string or an object exposing "model_id" or "name".
type CarRef struct {
	ID         string
	Structured bool
}

// parseCarRef decodes one entry. Objects are recognized by the fields they
// carry, model_id taking precedence over name.
func parseCarRef(raw json.RawMessage) (CarRef, bool) {
	var id string
	if err := json.Unmarshal(raw, &id); err == nil {
		return CarRef{ID: id}, id != ""
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return CarRef{}, false
	}
	for _, key := range []string{"model_id", "name"} {
		field, ok := obj[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(field, &id); err == nil && id != "" {
			return CarRef{ID: id, Structured: true}, true
		}
	}
	return CarRef{}, false
}

var requiredFields = []string{"name", "money", "level", "exp"}

// Decode converts a player_state.json document into a Record. The game
// database is attached to the record for later lookups and is never
// modified.
func Decode(data []byte, db *gamedb.Database) (*Record, error) {
	if !json.Valid(data) {
		var probe any
		err := json.Unmarshal(data, &probe)
		return nil, fmt.Errorf("player: %w: %v", core.ErrParse, err)
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil || top == nil {
		return nil, &SchemaError{Field: "player", Reason: "record is not an object"}
	}

	var fields map[string]json.RawMessage
	if raw, ok := top["player"]; ok {
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, &SchemaError{Field: "player", Reason: "not an object"}
		}
	}
	for _, name := range requiredFields {
		if _, ok := fields[name]; !ok {
			return nil, &SchemaError{Field: "player." + name, Reason: "missing"}
		}
	}

	rec := &Record{db: db}
	if err := json.Unmarshal(fields["name"], &rec.Name); err != nil {
		return nil, &SchemaError{Field: "player.name", Reason: "not a string"}
	}
	counters := []struct {
		name string
		dst  *int
	}{
		{"money", &rec.Money},
		{"level", &rec.Level},
		{"exp", &rec.Exp},
	}
	for _, c := range counters {
		if err := json.Unmarshal(fields[c.name], c.dst); err != nil {
			return nil, &SchemaError{Field: "player." + c.name, Reason: "not an integer"}
		}
		if *c.dst < 0 {
			return nil, &SchemaError{Field: "player." + c.name, Reason: "negative"}
		}
	}

	garage, err := decodeGarage(top["garage"])
	if err != nil {
		return nil, err
	}
	rec.Garage = garage

	inventory, err := decodeInventory(top["inventory"])
	if err != nil {
		return nil, err
	}
	rec.Inventory = inventory

	var stored string
	if raw, ok := fields["current_car"]; ok && !isNull(raw) {
		if ref, ok := parseCarRef(raw); ok {
			stored = ref.ID
		}
	}
	rec.resolveCurrentCar(stored)

	return rec, nil
}

func decodeGarage(raw json.RawMessage) ([]string, error) {
	garage := []string{}
	if raw == nil || isNull(raw) {
		return garage, nil
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, &SchemaError{Field: "garage", Reason: "not an array"}
	}
	for i, entry := range entries {
		ref, ok := parseCarRef(entry)
		if !ok {
			return nil, &SchemaError{
				Field:  fmt.Sprintf("garage[%d]", i),
				Reason: "neither a car id nor an object with model_id or name",
			}
		}
		garage = append(garage, ref.ID)
	}
	return garage, nil
}

func decodeInventory(raw json.RawMessage) (map[string]json.RawMessage, error) {
	inventory := map[string]json.RawMessage{}
	if raw == nil || isNull(raw) {
		return inventory, nil
	}
	var items map[string]json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, &SchemaError{Field: "inventory", Reason: "not an object"}
	}
	for id, item := range items {
		var buf bytes.Buffer
		if err := json.Compact(&buf, item); err != nil {
			return nil, fmt.Errorf("player: %w: inventory[%s]: %v", core.ErrParse, id, err)
		}
		inventory[id] = json.RawMessage(buf.Bytes())
	}
	return inventory, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

type wireRecord struct {
	Player    wirePlayer                 `json:"player"`
	Garage    []string                   `json:"garage"`
	Inventory map[string]json.RawMessage `json:"inventory"`
}

type wirePlayer struct {
	Name       string  `json:"name"`
	Money      int     `json:"money"`
	Level      int     `json:"level"`
	Exp        int     `json:"exp"`
	CurrentCar *string `json:"current_car"`
}

// Encode serializes a record as indented JSON. Garage entries are always
// written as bare identifiers.
func Encode(r *Record) ([]byte, error) {
	w := wireRecord{
		Player: wirePlayer{
			Name:  r.Name,
			Money: r.Money,
			Level: r.Level,
			Exp:   r.Exp,
		},
		Garage:    r.Garage,
		Inventory: r.Inventory,
	}
	if w.Garage == nil {
		w.Garage = []string{}
	}
	if w.Inventory == nil {
		w.Inventory = map[string]json.RawMessage{}
	}
	if r.CurrentCar != "" {
		current := r.CurrentCar
		w.Player.CurrentCar = &current
	}

	data, err := json.MarshalIndent(w, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("player: encode: %w", err)
	}
	return append(data, '\n'), nil
}
