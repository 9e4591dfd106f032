package db

import "errors"

var (
	// ErrNotFound is returned for unknown resources and for resources owned
	// by someone else. Callers cannot tell the two apart.
	ErrNotFound = errors.New("not found")

	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("email already registered")
)
