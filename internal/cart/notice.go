package cart

import (
	"fmt"

	"kalaverse/internal/notify"
)

// Notice translates a mutation event into its user-facing message. The
// boolean is false for EventNone, which must stay silent.
func (e Event) Notice() (notify.Notice, bool) {
	switch e.Kind {
	case EventAdded, EventIncremented:
		return notify.Notice{
			Title:    "Added to Cart",
			Message:  fmt.Sprintf("%s by %s", e.Line.Title, e.Line.Artist),
			Severity: notify.SeverityDefault,
		}, true
	case EventUpdated:
		return notify.Notice{
			Title:    "Cart Updated",
			Message:  fmt.Sprintf("%s quantity set to %d", e.Line.Title, e.Line.Quantity),
			Severity: notify.SeverityDefault,
		}, true
	case EventRemoved:
		return notify.Notice{
			Title:    "Removed from Cart",
			Message:  e.Line.Title,
			Severity: notify.SeverityDefault,
		}, true
	case EventCleared:
		return notify.Notice{
			Title:    "Cart Cleared",
			Severity: notify.SeverityDefault,
		}, true
	case EventRejected:
		return notify.Notice{
			Title:    "Sign in required",
			Message:  "Please sign in to add artworks to your cart",
			Severity: notify.SeverityDestructive,
		}, true
	}
	return notify.Notice{}, false
}
