package webhook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayloadPrefixDispatch(t *testing.T) {
	tests := []struct {
		name      string
		eventType string
		payload   map[string]any
		wantKind  any
	}{
		{
			name:      "verify prefix",
			eventType: "verify.attempt",
			payload:   map[string]any{"verification_id": "vrf_1"},
			wantKind:  &VerifyPayload{},
		},
		{
			name:      "unknown verify sub-type still routes to verify",
			eventType: "verify.new_subtype",
			payload:   map[string]any{"verification_id": "vrf_1"},
			wantKind:  &VerifyPayload{},
		},
		{
			name:      "transactional prefix",
			eventType: "transactional.message.delivered",
			payload:   map[string]any{"id": "trans_1"},
			wantKind:  &TransactionalPayload{},
		},
		{
			name:      "unknown namespace degrades to generic",
			eventType: "custom.thing",
			payload:   map[string]any{"foo": "bar"},
			wantKind:  &GenericPayload{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewPayload(tc.payload, tc.eventType)
			require.NoError(t, err)
			assert.IsType(t, tc.wantKind, p)
		})
	}
}

func TestNewPayloadEmptyType(t *testing.T) {
	_, err := NewPayload(map[string]any{}, "")
	require.ErrorIs(t, err, ErrEmptyEventType)
}

func TestNewPayloadWrapsConstructionError(t *testing.T) {
	_, err := NewPayload(map[string]any{"status": "verified"}, "verify.attempt")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingVerificationID)
	assert.Contains(t, err.Error(), `"verify.attempt"`)
}

func TestIsSupported(t *testing.T) {
	tests := []struct {
		eventType string
		want      bool
	}{
		{eventType: "verify.attempt", want: true},
		{eventType: "verify.custom_subtype", want: true},
		{eventType: "transactional.message.created", want: true},
		{eventType: "transactional.anything", want: true},
		{eventType: "custom.thing", want: false},
		{eventType: "", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.eventType, func(t *testing.T) {
			assert.Equal(t, tc.want, IsSupported(tc.eventType))
		})
	}
}

func TestSupportedTypes(t *testing.T) {
	assert.Equal(t, []string{"verify.", "transactional."}, SupportedTypes())
}
