package catalog

import "errors"

// ErrNotFound indicates the requested movie doesn't exist in the cache.
var ErrNotFound = errors.New("not found")
