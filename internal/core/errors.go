package core

import "errors"

// Failure kinds reported by the persistence layer. Callers match them with
// errors.Is; the wrapping error carries the path and the underlying cause.
var (
	// ErrNotFound is returned when a slot or data file does not exist.
	ErrNotFound = errors.New("not found")

	// ErrParse is returned when a stored record is not well-formed JSON.
	ErrParse = errors.New("malformed record")

	// ErrSchema is returned when a record is well-formed but a required
	// field is missing or has an invalid value.
	ErrSchema = errors.New("schema violation")

	// ErrTemplateMissing is returned when a new slot cannot be created
	// because the template record cannot be read.
	ErrTemplateMissing = errors.New("template record missing")

	// ErrIO wraps permission and disk errors on write.
	ErrIO = errors.New("i/o failure")

	// ErrAlreadyExists is returned when creating a slot that is occupied.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidSlot is returned for slot numbers outside 1..SlotCount.
	ErrInvalidSlot = errors.New("invalid slot")
)
