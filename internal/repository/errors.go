package repository

import "errors"

// ErrNotFound is returned when an operation targets an id that does not
// exist (or, for updates, changed nothing).
var ErrNotFound = errors.New("registro no encontrado")
