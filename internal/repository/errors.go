package repository

import "errors"

// ErrNotFound is returned when a row does not exist. Handlers map it to 404.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned on unique-constraint violations.
var ErrDuplicate = errors.New("duplicate record")
