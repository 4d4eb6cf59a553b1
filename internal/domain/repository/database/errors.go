package database

import "errors"

// ErrNoDocument is returned by point operations when no video document
// matches the given id.
var ErrNoDocument = errors.New("no document found")
