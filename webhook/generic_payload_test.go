package webhook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenericPayload(t *testing.T) {
	p := newGenericPayload(map[string]any{
		"foo": "bar",
		"metadata": map[string]any{
			"correlation_id": "corr_1",
		},
	})

	assert.True(t, p.Has("foo"))
	assert.False(t, p.Has("missing"))
	assert.Equal(t, "bar", p.Get("foo"))
	assert.Equal(t, "d", p.Get("missing", "d"))
	assert.Nil(t, p.Get("missing"))
}

func TestGenericPayloadDottedPath(t *testing.T) {
	p := newGenericPayload(map[string]any{
		"metadata": map[string]any{
			"correlation_id": "corr_1",
		},
		"scalar": "x",
	})

	assert.Equal(t, "corr_1", p.Get("metadata.correlation_id"))
	assert.Equal(t, "d", p.Get("metadata.missing", "d"))
	// intermediate level is not an object
	assert.Equal(t, "d", p.Get("scalar.nested", "d"))
}

func TestGenericPayloadToMap(t *testing.T) {
	data := map[string]any{"foo": "bar", "n": float64(2)}
	p := newGenericPayload(data)

	assert.Equal(t, data, p.ToMap())
	assert.Equal(t, data, p.RawPayload())
	assert.Equal(t, data, p.Data())
}
