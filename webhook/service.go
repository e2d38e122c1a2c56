package webhook

import "fmt"

// Service parses raw webhook deliveries into an Event envelope and a
// typed payload. It is stateless; a single instance is safe to share.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Result pairs the parsed envelope with its typed payload.
type Result struct {
	Event   Event
	Payload Payload
}

var requiredEventFields = []string{"id", "type", "created_at", "payload"}

// ParseEvent validates the webhook envelope and builds an Event. Any
// structural violation fails with an error naming the offending field.
func (s *Service) ParseEvent(data map[string]any) (Event, error) {
	for _, field := range requiredEventFields {
		if _, ok := data[field]; !ok {
			return Event{}, fmt.Errorf("ParseEvent: missing required webhook field %q", field)
		}
	}

	id := stringValue(data, "id")
	if id == "" {
		return Event{}, fmt.Errorf("ParseEvent: webhook field %q cannot be empty", "id")
	}

	eventType := stringValue(data, "type")
	if eventType == "" {
		return Event{}, fmt.Errorf("ParseEvent: webhook field %q cannot be empty", "type")
	}

	createdAt, ok := parseTime(data["created_at"])
	if !ok {
		return Event{}, fmt.Errorf("ParseEvent: webhook field %q is not a valid timestamp", "created_at")
	}

	payload, ok := data["payload"].(map[string]any)
	if !ok {
		return Event{}, fmt.Errorf("ParseEvent: %w", ErrPayloadNotObject)
	}

	return NewEvent(id, eventType, createdAt, payload), nil
}

// ParsePayload builds the typed payload for an event type.
func (s *Service) ParsePayload(payload map[string]any, eventType string) (Payload, error) {
	p, err := NewPayload(payload, eventType)
	if err != nil {
		return nil, fmt.Errorf("ParsePayload: %w", err)
	}
	return p, nil
}

// Process parses a complete webhook delivery. No partial result is
// returned on failure; callers should treat any error as "this delivery
// could not be classified" and respond non-2xx so the sender retries.
func (s *Service) Process(data map[string]any) (*Result, error) {
	event, err := s.ParseEvent(data)
	if err != nil {
		return nil, err
	}

	payload, err := s.ParsePayload(event.Payload(), event.Type())
	if err != nil {
		return nil, err
	}

	return &Result{Event: event, Payload: payload}, nil
}

// IsEventTypeSupported mirrors IsSupported for caller convenience.
func (s *Service) IsEventTypeSupported(eventType string) bool {
	return IsSupported(eventType)
}

// SupportedEventTypes mirrors SupportedTypes.
func (s *Service) SupportedEventTypes() []string {
	return SupportedTypes()
}

// IsKnownEventType reports whether the event type is an enumerated
// EventType constant.
func (s *Service) IsKnownEventType(eventType string) bool {
	_, ok := EventTypeFromString(eventType)
	return ok
}

// EventTypeEnum returns the matching EventType constant, if any.
func (s *Service) EventTypeEnum(eventType string) (EventType, bool) {
	return EventTypeFromString(eventType)
}
