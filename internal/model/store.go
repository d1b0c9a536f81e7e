package model

import "errors"

// ErrStoreUnavailable wraps I/O failures from the persistent store. It is the
// only failure callers may treat as transient; retries are the caller's call,
// the ledgers never retry on their own.
var ErrStoreUnavailable = errors.New("store unavailable")
