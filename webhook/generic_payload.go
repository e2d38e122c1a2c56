package webhook

import "strings"

// GenericPayload holds payloads with no fixed schema, for event types
// that do not match a registered prefix.
type GenericPayload struct {
	data map[string]any
}

func newGenericPayload(payload map[string]any) *GenericPayload {
	return &GenericPayload{data: payload}
}

func (p *GenericPayload) Data() map[string]any {
	return p.data
}

// Get returns the value under key, supporting dotted paths for nested
// lookups ("metadata.correlation_id"). An optional default is returned
// when the path does not resolve.
func (p *GenericPayload) Get(key string, defaultValue ...any) any {
	v := getNestedValue(p.data, strings.Split(key, ".")...)
	if v == nil && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return v
}

// Has reports whether a top-level key exists in the payload.
func (p *GenericPayload) Has(key string) bool {
	_, ok := p.data[key]
	return ok
}

func (p *GenericPayload) RawPayload() map[string]any {
	return p.data
}

func (p *GenericPayload) ToMap() map[string]any {
	return p.data
}
