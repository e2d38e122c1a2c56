package webhook

import (
	"fmt"
	"strings"
)

// payloadVariants maps event-type prefixes to payload constructors, in
// resolution order. Prefix matching keeps new sub-event-types routed to
// the right variant without registration; unrecognized namespaces fall
// back to GenericPayload so consumers never crash on an event type they
// don't know yet.
var payloadVariants = []struct {
	prefix string
	build  func(map[string]any) (Payload, error)
}{
	{
		prefix: "verify.",
		build: func(payload map[string]any) (Payload, error) {
			return newVerifyPayload(payload)
		},
	},
	{
		prefix: "transactional.",
		build: func(payload map[string]any) (Payload, error) {
			return newTransactionalPayload(payload)
		},
	},
}

// NewPayload constructs the typed payload variant for the given event
// type. Variant construction failures are wrapped with the offending
// type; the cause stays reachable through errors.Is/As.
func NewPayload(payload map[string]any, eventType string) (Payload, error) {
	if eventType == "" {
		return nil, fmt.Errorf("NewPayload: %w", ErrEmptyEventType)
	}

	for _, variant := range payloadVariants {
		if !strings.HasPrefix(eventType, variant.prefix) {
			continue
		}
		p, err := variant.build(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to create payload for type %q: %w", eventType, err)
		}
		return p, nil
	}

	return newGenericPayload(payload), nil
}

// IsSupported reports whether the event type is a known EventType
// constant or matches a registered prefix.
func IsSupported(eventType string) bool {
	if _, ok := EventTypeFromString(eventType); ok {
		return true
	}
	for _, variant := range payloadVariants {
		if strings.HasPrefix(eventType, variant.prefix) {
			return true
		}
	}
	return false
}

// SupportedTypes returns the registered event-type prefixes in
// resolution order.
func SupportedTypes() []string {
	prefixes := make([]string, 0, len(payloadVariants))
	for _, variant := range payloadVariants {
		prefixes = append(prefixes, variant.prefix)
	}
	return prefixes
}
