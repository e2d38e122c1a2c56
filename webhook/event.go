package webhook

import "time"

// Event is the envelope of a single webhook delivery. It carries the raw
// payload map; the typed payload is built separately by the factory from
// the same type string.
type Event struct {
	id        string
	eventType string
	createdAt time.Time
	payload   map[string]any
}

func NewEvent(id, eventType string, createdAt time.Time, payload map[string]any) Event {
	return Event{
		id:        id,
		eventType: eventType,
		createdAt: createdAt,
		payload:   payload,
	}
}

func (e Event) ID() string {
	return e.id
}

func (e Event) Type() string {
	return e.eventType
}

func (e Event) CreatedAt() time.Time {
	return e.createdAt
}

func (e Event) Payload() map[string]any {
	return e.payload
}

// IsKnownEventType reports whether the event type matches one of the
// enumerated EventType constants. This is narrower than factory support:
// an event can be routed by prefix without being a known type.
func (e Event) IsKnownEventType() bool {
	_, ok := EventTypeFromString(e.eventType)
	return ok
}

// EventTypeEnum returns the matching EventType constant, if any.
func (e Event) EventTypeEnum() (EventType, bool) {
	return EventTypeFromString(e.eventType)
}
