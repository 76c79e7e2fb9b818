package domain

import "context"

// DiscRepository persists discs and streams their changes.
// Observe streams emit the current state immediately and again after every
// write; they close when ctx is cancelled.
type DiscRepository interface {
	// ObserveDiscs streams every disc ordered by sort title
	ObserveDiscs(ctx context.Context) (<-chan []Disc, error)

	// ObserveDisc streams one disc; nil means it does not exist
	ObserveDisc(ctx context.Context, id int64) (<-chan *Disc, error)

	// Save inserts a disc without an ID or replaces the one with the same ID
	Save(ctx context.Context, disc Disc) (int64, error)

	// SaveAll inserts every disc or none of them
	SaveAll(ctx context.Context, discs []Disc) error

	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
}

// LinkOpener opens a URL outside the application, typically in a browser
type LinkOpener interface {
	Open(url string) error
}
