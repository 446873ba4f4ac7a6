package model

import "errors"

// ErrNotFound is returned by stores when no matching row exists.
var ErrNotFound = errors.New("not found")
