package cart

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Carts hands out one Cart per owner, loading each owner's slot at most
// once per process. All carts share one Storage.
type Carts struct {
	mu    sync.Mutex
	store Storage
	log   *zap.Logger
	open  map[string]*Cart
}

func NewCarts(store Storage, log *zap.Logger) *Carts {
	return &Carts{store: store, log: log, open: make(map[string]*Cart)}
}

func (cs *Carts) ForOwner(ctx context.Context, owner string) *Cart {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if c, ok := cs.open[owner]; ok {
		return c
	}

	// Owners arrive here already authenticated; the predicate only guards
	// against a cart opened with no owner at all.
	c := Open(ctx, cs.store, owner, func() bool { return owner != "" }, cs.log)
	cs.open[owner] = c
	return c
}
