package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewID generates the opaque identity for any entity.
func NewID() string { return uuid.NewString() }

// NewOrderID builds the human-readable order number shown on receipts:
// ORD-<year>-<last six digits of the epoch millis>. The suffix is not
// collision-checked; two orders created within the same millisecond would
// share a number while keeping distinct ids.
func NewOrderID(t time.Time) string {
	millis := fmt.Sprintf("%d", t.UnixMilli())
	return fmt.Sprintf("ORD-%d-%s", t.Year(), millis[len(millis)-6:])
}

// Now returns the timestamp format used on createdAt/updatedAt.
func Now() string { return time.Now().UTC().Format(time.RFC3339) }
