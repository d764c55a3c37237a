package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"kalaverse/internal/notify"
)

var (
	dancing = Entry{ID: 1, Title: "Dancing Celebration", Artist: "Ramesh Vangad", Category: "Warli Art", Price: 2500, Image: "/images/dancing-celebration.jpg"}
	village = Entry{ID: 2, Title: "Warli Village Life", Artist: "Sita Mashe", Category: "Warli Art", Price: 3200, Image: "/images/village-life.jpg"}
)

func authed() func() bool { return func() bool { return true } }
func anon() func() bool   { return func() bool { return false } }

func openCart(t *testing.T, store Storage, allow func() bool) *Cart {
	t.Helper()
	return Open(context.Background(), store, "u_test", allow, zap.NewNop())
}

func TestCart_UnauthenticatedAddIsRejected(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	c := openCart(t, store, anon())

	ev := c.Add(ctx, dancing)
	if ev.Kind != EventRejected {
		t.Fatalf("kind=%v", ev.Kind)
	}
	if len(c.Lines()) != 0 || c.TotalItems() != 0 || c.TotalPrice() != 0 {
		t.Fatalf("cart mutated on rejected add: %+v", c.Lines())
	}

	n, ok := ev.Notice()
	if !ok || n.Severity != notify.SeverityDestructive {
		t.Fatalf("notice=%+v ok=%v", n, ok)
	}

	persisted, _ := store.Load(ctx, "u_test")
	if len(persisted) != 0 {
		t.Fatalf("rejected add reached storage: %+v", persisted)
	}
}

func TestCart_AddTwiceIncrementsOneLine(t *testing.T) {
	ctx := context.Background()
	c := openCart(t, NewMemStore(), authed())

	if ev := c.Add(ctx, dancing); ev.Kind != EventAdded {
		t.Fatalf("first add kind=%v", ev.Kind)
	}
	if c.TotalItems() != 1 || c.TotalPrice() != 2500 {
		t.Fatalf("items=%d price=%d", c.TotalItems(), c.TotalPrice())
	}

	ev := c.Add(ctx, dancing)
	if ev.Kind != EventIncremented {
		t.Fatalf("second add kind=%v", ev.Kind)
	}

	lines := c.Lines()
	if len(lines) != 1 || lines[0].Quantity != 2 {
		t.Fatalf("lines=%+v", lines)
	}
	if c.TotalItems() != 2 || c.TotalPrice() != 5000 {
		t.Fatalf("items=%d price=%d", c.TotalItems(), c.TotalPrice())
	}

	// Both add outcomes surface the same storefront message.
	n, ok := ev.Notice()
	if !ok || n.Title != "Added to Cart" || n.Message != "Dancing Celebration by Ramesh Vangad" {
		t.Fatalf("notice=%+v ok=%v", n, ok)
	}
}

func TestCart_TotalsMatchLineSums(t *testing.T) {
	ctx := context.Background()
	c := openCart(t, NewMemStore(), authed())

	c.Add(ctx, dancing)
	c.Add(ctx, village)
	c.Add(ctx, village)
	c.SetQuantity(ctx, 1, 4)
	c.Remove(ctx, 2)
	c.Add(ctx, village)

	wantItems, wantPrice := 0, int64(0)
	for _, l := range c.Lines() {
		wantItems += l.Quantity
		wantPrice += l.Price * int64(l.Quantity)
	}
	if c.TotalItems() != wantItems || c.TotalPrice() != wantPrice {
		t.Fatalf("TotalItems=%d want=%d TotalPrice=%d want=%d",
			c.TotalItems(), wantItems, c.TotalPrice(), wantPrice)
	}
	if c.TotalItems() != 5 || c.TotalPrice() != 4*2500+3200 {
		t.Fatalf("items=%d price=%d", c.TotalItems(), c.TotalPrice())
	}
}

func TestCart_SetQuantityZeroRemovesLine(t *testing.T) {
	ctx := context.Background()
	c := openCart(t, NewMemStore(), authed())

	c.Add(ctx, dancing)
	ev := c.SetQuantity(ctx, dancing.ID, 0)
	if ev.Kind != EventRemoved {
		t.Fatalf("kind=%v", ev.Kind)
	}
	if len(c.Lines()) != 0 {
		t.Fatalf("lines=%+v", c.Lines())
	}

	c.Add(ctx, dancing)
	if ev := c.SetQuantity(ctx, dancing.ID, -3); ev.Kind != EventRemoved {
		t.Fatalf("negative quantity kind=%v", ev.Kind)
	}
	if len(c.Lines()) != 0 {
		t.Fatalf("lines=%+v", c.Lines())
	}
}

func TestCart_SetQuantityIsAbsolute(t *testing.T) {
	ctx := context.Background()
	c := openCart(t, NewMemStore(), authed())

	c.Add(ctx, dancing)
	c.Add(ctx, dancing)

	ev := c.SetQuantity(ctx, dancing.ID, 7)
	if ev.Kind != EventUpdated || ev.Line.Quantity != 7 {
		t.Fatalf("ev=%+v", ev)
	}
	if c.TotalItems() != 7 || c.TotalPrice() != 7*2500 {
		t.Fatalf("items=%d price=%d", c.TotalItems(), c.TotalPrice())
	}
}

func TestCart_AbsentIDMutationsAreSilent(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	c := openCart(t, store, authed())
	c.Add(ctx, dancing)
	before := c.Lines()

	for name, ev := range map[string]Event{
		"remove":       c.Remove(ctx, 99),
		"set quantity": c.SetQuantity(ctx, 99, 3),
	} {
		if ev.Kind != EventNone {
			t.Fatalf("%s: kind=%v", name, ev.Kind)
		}
		if _, ok := ev.Notice(); ok {
			t.Fatalf("%s: no-op emitted a notice", name)
		}
	}

	if diff := cmp.Diff(before, c.Lines()); diff != "" {
		t.Fatalf("cart changed (-before +after):\n%s", diff)
	}
}

func TestCart_ClearDropsEverything(t *testing.T) {
	ctx := context.Background()
	c := openCart(t, NewMemStore(), authed())

	c.Add(ctx, dancing)
	c.Add(ctx, village)

	ev := c.Clear(ctx)
	if ev.Kind != EventCleared {
		t.Fatalf("kind=%v", ev.Kind)
	}
	if len(c.Lines()) != 0 || c.TotalItems() != 0 || c.TotalPrice() != 0 {
		t.Fatalf("cart not empty after clear")
	}

	n, ok := ev.Notice()
	if !ok || n.Severity != notify.SeverityDefault {
		t.Fatalf("notice=%+v ok=%v", n, ok)
	}
}

func TestCart_RoundTripThroughStorage(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	c := openCart(t, store, authed())
	c.Add(ctx, dancing)
	c.Add(ctx, dancing)
	c.Add(ctx, village)

	reopened := openCart(t, store, authed())
	if diff := cmp.Diff(c.Lines(), reopened.Lines()); diff != "" {
		t.Fatalf("round trip (-orig +reopened):\n%s", diff)
	}
}

type brokenStore struct{ loadErr, saveErr error }

func (b *brokenStore) Load(ctx context.Context, owner string) ([]Line, error) {
	return nil, b.loadErr
}
func (b *brokenStore) Save(ctx context.Context, owner string, lines []Line) error {
	return b.saveErr
}

func TestCart_CorruptSlotStartsEmpty(t *testing.T) {
	store := &brokenStore{loadErr: errors.New("corrupt cart payload")}
	c := openCart(t, store, authed())

	if len(c.Lines()) != 0 {
		t.Fatalf("lines=%+v", c.Lines())
	}
}

func TestCart_SaveFailureKeepsInMemoryState(t *testing.T) {
	ctx := context.Background()
	store := &brokenStore{saveErr: errors.New("slot full")}
	c := openCart(t, store, authed())

	if ev := c.Add(ctx, dancing); ev.Kind != EventAdded {
		t.Fatalf("kind=%v", ev.Kind)
	}
	if c.TotalItems() != 1 {
		t.Fatalf("items=%d", c.TotalItems())
	}
}
