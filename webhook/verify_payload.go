package webhook

import (
	"fmt"
	"time"

	"github.com/spf13/cast"
)

// VerifyPayload is the typed payload for verify.* events.
type VerifyPayload struct {
	raw                map[string]any
	attemptID          string
	carrierInformation map[string]any
	correlationID      string
	deliveryStatus     string
	price              *Price
	status             string
	target             string
	time               *time.Time
	verificationID     string
}

func newVerifyPayload(payload map[string]any) (*VerifyPayload, error) {
	id := stringValue(payload, "verification_id")
	if id == "" {
		return nil, ErrMissingVerificationID
	}

	price, err := parsePrice(payload, "price")
	if err != nil {
		return nil, fmt.Errorf("parse price: %w", err)
	}

	p := &VerifyPayload{
		raw:                payload,
		attemptID:          stringValue(payload, "attempt_id"),
		carrierInformation: mapValue(payload, "carrier_information"),
		deliveryStatus:     stringValue(payload, "delivery_status"),
		price:              price,
		status:             stringValue(payload, "status"),
		time:               softTime(payload, "time"),
		verificationID:     id,
	}

	// metadata.correlation_id takes precedence over the top-level field
	if v := getNestedValue(payload, "metadata", "correlation_id"); v != nil {
		p.correlationID = cast.ToString(v)
	} else {
		p.correlationID = stringValue(payload, "correlation_id")
	}

	// newer payloads nest the target under target.value
	if v := getNestedValue(payload, "target", "value"); v != nil {
		p.target = cast.ToString(v)
	} else {
		p.target = stringValue(payload, "target")
	}

	return p, nil
}

func (p *VerifyPayload) AttemptID() string {
	return p.attemptID
}

func (p *VerifyPayload) CarrierInformation() map[string]any {
	return p.carrierInformation
}

func (p *VerifyPayload) CorrelationID() string {
	return p.correlationID
}

func (p *VerifyPayload) DeliveryStatus() string {
	return p.deliveryStatus
}

func (p *VerifyPayload) Price() *Price {
	return p.price
}

// Status returns the verification status, falling back to the delivery
// status when absent.
func (p *VerifyPayload) Status() string {
	if p.status != "" {
		return p.status
	}
	return p.deliveryStatus
}

func (p *VerifyPayload) Target() string {
	return p.target
}

func (p *VerifyPayload) Time() *time.Time {
	return p.time
}

func (p *VerifyPayload) VerificationID() string {
	return p.verificationID
}

func (p *VerifyPayload) RawPayload() map[string]any {
	return p.raw
}

// ToMap emits the raw status field without the delivery-status fallback
// applied by Status.
func (p *VerifyPayload) ToMap() map[string]any {
	var carrierInformation any
	if p.carrierInformation != nil {
		carrierInformation = p.carrierInformation
	}

	return map[string]any{
		"attempt_id":          orNil(p.attemptID),
		"carrier_information": carrierInformation,
		"correlation_id":      orNil(p.correlationID),
		"delivery_status":     orNil(p.deliveryStatus),
		"price":               priceOrNil(p.price),
		"status":              orNil(p.status),
		"target":              orNil(p.target),
		"time":                timeOrNil(p.time),
		"verification_id":     p.verificationID,
	}
}
