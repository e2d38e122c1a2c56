package webhook

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Payload is the typed view over a webhook payload map. Concrete types
// are VerifyPayload, TransactionalPayload and GenericPayload.
type Payload interface {
	// RawPayload returns the original untouched payload map, for access
	// to fields the typed variant does not model.
	RawPayload() map[string]any

	// ToMap returns the wire (snake_case) projection of the modeled
	// fields.
	ToMap() map[string]any
}

// getValue returns the raw value under key, or nil when absent.
func getValue(payload map[string]any, key string) any {
	v, ok := payload[key]
	if !ok {
		return nil
	}
	return v
}

// getNestedValue walks the payload along keys, failing soft: the moment
// an intermediate level is not a map or a key is missing, nil is
// returned.
func getNestedValue(payload map[string]any, keys ...string) any {
	var current any = payload
	for _, key := range keys {
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current, ok = m[key]
		if !ok {
			return nil
		}
	}
	return current
}

// stringValue returns the value under key coerced to a string, or ""
// when absent.
func stringValue(payload map[string]any, key string) string {
	v := getValue(payload, key)
	if v == nil {
		return ""
	}
	return cast.ToString(v)
}

// mapValue returns the value under key as a map, or nil when absent or
// not an object.
func mapValue(payload map[string]any, key string) map[string]any {
	m, ok := getValue(payload, key).(map[string]any)
	if !ok {
		return nil
	}
	return m
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTime attempts to parse an ISO-8601-like timestamp value.
func parseTime(value any) (time.Time, bool) {
	s, ok := value.(string)
	if !ok || s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// softTime parses a timestamp field, resolving to nil on any failure.
// Webhook payloads from varying API versions may carry malformed or
// absent timestamps, so parse failures never propagate as errors.
func softTime(payload map[string]any, key string) *time.Time {
	t, ok := parseTime(getValue(payload, key))
	if !ok {
		return nil
	}
	return &t
}

// parsePrice builds a Price from the first of keys holding a sub-map
// with both amount and currency. Missing or incomplete price data
// resolves to nil; an invalid currency is a construction error.
func parsePrice(payload map[string]any, keys ...string) (*Price, error) {
	for _, key := range keys {
		data := mapValue(payload, key)
		if data == nil {
			continue
		}
		amountRaw, hasAmount := data["amount"]
		currencyRaw, hasCurrency := data["currency"]
		if !hasAmount || !hasCurrency {
			return nil, nil
		}

		amount := decimal.NewFromFloat(cast.ToFloat64(amountRaw))
		price, err := NewPrice(amount, cast.ToString(currencyRaw))
		if err != nil {
			return nil, err
		}
		return &price, nil
	}
	return nil, nil
}

// orNil maps the empty string to nil so absent optional fields
// serialize as null rather than "".
func orNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func timeOrNil(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(time.RFC3339)
}

func priceOrNil(p *Price) any {
	if p == nil {
		return nil
	}
	return p.ToMap()
}
