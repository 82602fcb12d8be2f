package event

import (
	"time"

	"github.com/google/uuid"
)

// Event is one raised notification. After emission it should be treated as
// immutable. Source is the object the event was raised on; Args carry the
// loosely typed event payload in declaration order.
type Event struct {
	ID        string
	Name      string
	Source    any
	Args      []any
	Timestamp time.Time
}

// New creates an event with a fresh ID and a high precision UTC timestamp.
func New(name string, source any, args ...any) Event {
	return Event{
		ID:        uuid.NewString(),
		Name:      name,
		Source:    source,
		Args:      args,
		Timestamp: time.Now().UTC(),
	}
}
