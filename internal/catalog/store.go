package catalog

import "context"

type Store interface {
	// ListSortedByID returns every artwork ordered by id.
	ListSortedByID(ctx context.Context) ([]Artwork, error)
	Get(ctx context.Context, id int) (Artwork, bool, error)
	Ping(ctx context.Context) error
}
