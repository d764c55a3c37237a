package cart

import "context"

// Storage is one durable slot per owner holding the serialized line set.
// Load of an absent slot returns an empty set and no error; a corrupt slot
// returns an error the cart swallows into an empty start. Writes are last
// write wins, with no cross-session merge.
type Storage interface {
	Load(ctx context.Context, owner string) ([]Line, error)
	Save(ctx context.Context, owner string, lines []Line) error
}
