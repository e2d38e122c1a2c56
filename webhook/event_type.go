package webhook

// EventType enumerates the event types Prelude is known to deliver.
// Events with other dot-namespaced types are still accepted; they are
// routed by prefix and fall back to a generic payload.
type EventType string

const (
	EventTypeTransactionalMessageCreated         EventType = "transactional.message.created"
	EventTypeTransactionalMessageDelivered       EventType = "transactional.message.delivered"
	EventTypeTransactionalMessageFailed          EventType = "transactional.message.failed"
	EventTypeTransactionalMessagePendingDelivery EventType = "transactional.message.pending_delivery"

	EventTypeVerifyAttempt        EventType = "verify.attempt"
	EventTypeVerifyAuthentication EventType = "verify.authentication"
	EventTypeVerifyDeliveryStatus EventType = "verify.delivery_status"
)

var knownEventTypes = map[EventType]struct{}{
	EventTypeTransactionalMessageCreated:         {},
	EventTypeTransactionalMessageDelivered:       {},
	EventTypeTransactionalMessageFailed:          {},
	EventTypeTransactionalMessagePendingDelivery: {},
	EventTypeVerifyAttempt:                       {},
	EventTypeVerifyAuthentication:                {},
	EventTypeVerifyDeliveryStatus:                {},
}

// EventTypeFromString returns the matching EventType constant, if any.
func EventTypeFromString(s string) (EventType, bool) {
	t := EventType(s)
	_, ok := knownEventTypes[t]
	if !ok {
		return "", false
	}
	return t, true
}
