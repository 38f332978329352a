package repository

import "errors"

// ErrNotFound indicates the requested row does not exist.
// Callers branch on it with errors.Is.
var ErrNotFound = errors.New("not found")
