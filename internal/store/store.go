package store

import "context"

// Collection names. Each collection is a single document; Load and Save move
// the whole document at once, and that round trip is the unit of atomicity the
// ledgers rely on.
const (
	CollectionUsers         = "users"
	CollectionRelationships = "relationships"
	CollectionInteractions  = "interactions"
)

// Store persists one JSON document per collection with all-or-nothing
// visibility: a reader never observes a partially written document.
//
// Writers in separate processes can still race on load-mutate-save and the
// last save wins. The service targets a single logical writer per collection
// and adds no locking or versioning on top.
type Store interface {
	// Load decodes the named collection's document into dst. A collection
	// that has never been saved is not an error; dst is left untouched.
	Load(ctx context.Context, collection string, dst any) error

	// Save replaces the named collection's document.
	Save(ctx context.Context, collection string, doc any) error
}
