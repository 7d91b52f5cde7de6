package kvstore

import "errors"

// ErrNotFound is returned by Driver.Get for a missing key.
var ErrNotFound = errors.New("kvstore: key not found")
