package engine

import (
	"time"

	"github.com/google/uuid"
)

// EventType represents lifecycle phases of table and index operations.
type EventType string

const (
	EventIndexBuildStart EventType = "index_build_start"
	EventIndexBuildEnd   EventType = "index_build_end"
	EventScan            EventType = "scan"
	EventJoinStart       EventType = "join_start"
	EventJoinEnd         EventType = "join_end"
)

// Event is one lifecycle event, tagged with the owning table's session ID.
type Event struct {
	Type      EventType
	SessionID string
	Table     string
	Timestamp time.Time
	Detail    string // phase-specific detail (attribute, join partner, ...)
}

// Observer receives events at major operation phases.
type Observer interface {
	OnEvent(event Event)
}

// Subscribe attaches an observer to this table. Result tables produced by
// query operators inherit the subscription.
func (t *Table) Subscribe(o Observer) {
	t.observers = append(t.observers, o)
}

func (t *Table) notify(typ EventType, detail string) {
	if len(t.observers) == 0 {
		return
	}
	ev := Event{
		Type:      typ,
		SessionID: t.sessionID,
		Table:     t.Name,
		Timestamp: time.Now(),
		Detail:    detail,
	}
	for _, o := range t.observers {
		o.OnEvent(ev)
	}
}

func newSessionID() string {
	return uuid.New().String()
}
