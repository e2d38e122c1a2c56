package webhook

import (
	"fmt"
	"time"

	"github.com/spf13/cast"
)

// TransactionalPayload is the typed payload for transactional.* events.
type TransactionalPayload struct {
	raw           map[string]any
	correlationID string
	createdAt     *time.Time
	customerUUID  string
	expiresAt     *time.Time
	id            string
	mcc           string
	messageID     string
	mnc           string
	price         *Price
	segmentCount  int
	status        string
	to            string
	variables     map[string]any
}

func newTransactionalPayload(payload map[string]any) (*TransactionalPayload, error) {
	// fee is the newer field name, price the legacy one
	price, err := parsePrice(payload, "fee", "price")
	if err != nil {
		return nil, fmt.Errorf("parse price: %w", err)
	}

	return &TransactionalPayload{
		raw:           payload,
		correlationID: stringValue(payload, "correlation_id"),
		createdAt:     softTime(payload, "created_at"),
		customerUUID:  stringValue(payload, "customer_uuid"),
		expiresAt:     softTime(payload, "expires_at"),
		id:            stringValue(payload, "id"),
		mcc:           stringValue(payload, "mcc"),
		messageID:     stringValue(payload, "message_id"),
		mnc:           stringValue(payload, "mnc"),
		price:         price,
		segmentCount:  cast.ToInt(getValue(payload, "segment_count")),
		status:        stringValue(payload, "status"),
		to:            stringValue(payload, "to"),
		variables:     mapValue(payload, "variables"),
	}, nil
}

func (p *TransactionalPayload) CorrelationID() string {
	return p.correlationID
}

func (p *TransactionalPayload) CreatedAt() *time.Time {
	return p.createdAt
}

func (p *TransactionalPayload) CustomerUUID() string {
	return p.customerUUID
}

func (p *TransactionalPayload) ExpiresAt() *time.Time {
	return p.expiresAt
}

func (p *TransactionalPayload) ID() string {
	return p.id
}

func (p *TransactionalPayload) MCC() string {
	return p.mcc
}

func (p *TransactionalPayload) MessageID() string {
	return p.messageID
}

func (p *TransactionalPayload) MNC() string {
	return p.mnc
}

func (p *TransactionalPayload) Price() *Price {
	return p.price
}

func (p *TransactionalPayload) SegmentCount() int {
	return p.segmentCount
}

func (p *TransactionalPayload) Status() string {
	return p.status
}

func (p *TransactionalPayload) To() string {
	return p.to
}

func (p *TransactionalPayload) Variables() map[string]any {
	return p.variables
}

func (p *TransactionalPayload) RawPayload() map[string]any {
	return p.raw
}

func (p *TransactionalPayload) ToMap() map[string]any {
	var variables any
	if p.variables != nil {
		variables = p.variables
	}

	return map[string]any{
		"correlation_id": orNil(p.correlationID),
		"created_at":     timeOrNil(p.createdAt),
		"customer_uuid":  orNil(p.customerUUID),
		"expires_at":     timeOrNil(p.expiresAt),
		"id":             orNil(p.id),
		"mcc":            orNil(p.mcc),
		"message_id":     orNil(p.messageID),
		"mnc":            orNil(p.mnc),
		"price":          priceOrNil(p.price),
		"segment_count":  p.segmentCount,
		"status":         orNil(p.status),
		"to":             orNil(p.to),
		"variables":      variables,
	}
}
