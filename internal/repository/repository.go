// Package repository contains the data access layer. Handlers and usecases
// depend on the interfaces declared here, never on the Mongo driver directly,
// so the storage engine stays swappable.
package repository

import "errors"

var (
	// ErrDuplicateKey is returned when an insert or update violates a unique
	// index, e.g. registering an email that already exists.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrNotFound is returned when no document matches the given key.
	ErrNotFound = errors.New("not found")
)
