package cart

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Line is one cart line item. Display fields are a snapshot taken when the
// artwork was first added; the catalog is not consulted again afterwards.
// The JSON form is the durable storage layout, so field names are frozen.
type Line struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Category string `json:"category"`
	Price    int64  `json:"price"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
}

// Entry carries the display fields snapshotted into a new Line.
type Entry struct {
	ID       int
	Title    string
	Artist   string
	Category string
	Price    int64
	Image    string
}

type EventKind int

const (
	// EventNone marks a mutation that changed nothing (remove or quantity
	// set on an absent id). No notification is emitted for it.
	EventNone EventKind = iota
	EventAdded
	EventIncremented
	EventUpdated
	EventRemoved
	EventCleared
	EventRejected
)

// Event describes the outcome of one mutation. The caller translates it
// into at most one user-facing notice; the state machine itself performs
// no notification side effects.
type Event struct {
	Kind EventKind
	Line Line
}

// Cart is the authoritative in-memory cart for one owner, written through
// to its Storage slot after every successful mutation. Mutation is gated
// by the injected policy predicate; the cart knows nothing about how the
// caller authenticates.
type Cart struct {
	mu    sync.Mutex
	owner string
	store Storage
	allow func() bool
	log   *zap.Logger
	lines []Line
}

// Open loads the owner's persisted lines and returns a ready cart. A
// missing or unreadable slot seeds an empty cart; the failure is logged,
// never surfaced.
func Open(ctx context.Context, store Storage, owner string, allow func() bool, log *zap.Logger) *Cart {
	c := &Cart{owner: owner, store: store, allow: allow, log: log}

	lines, err := store.Load(ctx, owner)
	if err != nil {
		log.Warn("cart load failed, starting empty", zap.String("owner", owner), zap.Error(err))
		lines = nil
	}
	c.lines = lines
	return c
}

// Add appends a quantity-1 line for the entry, or increments the existing
// line for the same id by exactly 1. When the policy predicate denies
// mutation the cart is left untouched and a Rejected event is returned.
func (c *Cart) Add(ctx context.Context, e Entry) Event {
	if !c.allow() {
		return Event{Kind: EventRejected}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ID == e.ID {
			c.lines[i].Quantity++
			c.persist(ctx)
			return Event{Kind: EventIncremented, Line: c.lines[i]}
		}
	}

	line := Line{
		ID:       e.ID,
		Title:    e.Title,
		Artist:   e.Artist,
		Category: e.Category,
		Price:    e.Price,
		Image:    e.Image,
		Quantity: 1,
	}
	c.lines = append(c.lines, line)
	c.persist(ctx)
	return Event{Kind: EventAdded, Line: line}
}

// Remove deletes the line with the given id. Removing an absent id is a
// silent no-op, not an error.
func (c *Cart) Remove(ctx context.Context, id int) Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.removeLocked(ctx, id)
}

func (c *Cart) removeLocked(ctx context.Context, id int) Event {
	for i := range c.lines {
		if c.lines[i].ID == id {
			removed := c.lines[i]
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.persist(ctx)
			return Event{Kind: EventRemoved, Line: removed}
		}
	}
	return Event{Kind: EventNone}
}

// SetQuantity sets the line's quantity to exactly qty. A qty of zero or
// below removes the line; a quantity at or below zero is never persisted.
// Setting quantity on an absent id is a no-op.
func (c *Cart) SetQuantity(ctx context.Context, id, qty int) Event {
	c.mu.Lock()
	defer c.mu.Unlock()

	if qty <= 0 {
		return c.removeLocked(ctx, id)
	}

	for i := range c.lines {
		if c.lines[i].ID == id {
			c.lines[i].Quantity = qty
			c.persist(ctx)
			return Event{Kind: EventUpdated, Line: c.lines[i]}
		}
	}
	return Event{Kind: EventNone}
}

// Clear drops every line unconditionally.
func (c *Cart) Clear(ctx context.Context) Event {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = nil
	c.persist(ctx)
	return Event{Kind: EventCleared}
}

func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) TotalPrice() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total int64
	for _, l := range c.lines {
		total += l.Price * int64(l.Quantity)
	}
	return total
}

// persist writes the full line set through to storage. A failed save
// leaves the in-memory cart authoritative; the divergence is logged so a
// full slot does not fail silently.
func (c *Cart) persist(ctx context.Context) {
	if err := c.store.Save(ctx, c.owner, c.lines); err != nil {
		c.log.Error("cart save failed", zap.String("owner", c.owner), zap.Error(err))
	}
}
