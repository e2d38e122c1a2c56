package webhook

import "errors"

var (
	ErrEmptyEventType        = errors.New("event type cannot be empty")
	ErrEmptyCurrency         = errors.New("currency cannot be empty")
	ErrNegativeAmount        = errors.New("amount must be non-negative")
	ErrMissingVerificationID = errors.New("verification_id is required for verify payload")
	ErrPayloadNotObject      = errors.New("webhook payload must be an object")
	ErrInvalidSignature      = errors.New("webhook signature is invalid")
)
