package webhook

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEventKnownType(t *testing.T) {
	createdAt := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		eventType string
		known     bool
		wantEnum  EventType
	}{
		{
			name:      "known verify type",
			eventType: "verify.attempt",
			known:     true,
			wantEnum:  EventTypeVerifyAttempt,
		},
		{
			name:      "known transactional type",
			eventType: "transactional.message.pending_delivery",
			known:     true,
			wantEnum:  EventTypeTransactionalMessagePendingDelivery,
		},
		{
			name:      "prefix-supported but not enumerated",
			eventType: "verify.new_subtype",
			known:     false,
		},
		{
			name:      "unknown namespace",
			eventType: "custom.thing",
			known:     false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			event := NewEvent("evt_1", tc.eventType, createdAt, map[string]any{})

			assert.Equal(t, tc.known, event.IsKnownEventType())
			enum, ok := event.EventTypeEnum()
			assert.Equal(t, tc.known, ok)
			if tc.known {
				assert.Equal(t, tc.wantEnum, enum)
			}
		})
	}
}

func TestEventAccessors(t *testing.T) {
	createdAt := time.Date(2026, 4, 1, 12, 0, 0, 500_000_000, time.UTC)
	payload := map[string]any{"verification_id": "vrf_1"}
	event := NewEvent("evt_1", "verify.attempt", createdAt, payload)

	assert.Equal(t, "evt_1", event.ID())
	assert.Equal(t, "verify.attempt", event.Type())
	assert.Equal(t, createdAt, event.CreatedAt())
	assert.Equal(t, payload, event.Payload())
}
