package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"

	"github.com/AndreaAlhena/prelude-sdk/logging"
)

// SignatureHeader carries the hex-encoded HMAC-SHA256 of the request
// body, keyed with the webhook secret.
const SignatureHeader = "X-Prelude-Signature"

const maxBodySize = 1 << 20

// EventHandler is invoked once per successfully parsed delivery.
// Returning an error makes the handler respond 500 so the sender
// retries.
type EventHandler func(r *http.Request, result *Result) error

// Handler is an http.Handler for the webhook callback endpoint. It
// verifies the signature when a secret is configured, parses the
// delivery and hands the result to the EventHandler.
type Handler struct {
	service *Service
	secret  string
	onEvent EventHandler
}

func NewHandler(service *Service, secret string, onEvent EventHandler) *Handler {
	return &Handler{service: service, secret: secret, onEvent: onEvent}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := logging.FromContext(r.Context())

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		log.Error("failed to read webhook body", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if h.secret != "" && !VerifySignature(body, r.Header.Get(SignatureHeader), h.secret) {
		log.Warn("webhook signature verification failed")
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": ErrInvalidSignature.Error()})
		return
	}

	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil {
		log.Warn("failed to decode webhook body", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	result, err := h.service.Process(data)
	if err != nil {
		log.Warn("failed to process webhook", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	log.Info("webhook event parsed",
		"event_id", result.Event.ID(),
		"event_type", result.Event.Type(),
		"known_type", result.Event.IsKnownEventType(),
	)

	if h.onEvent != nil {
		if err := h.onEvent(r, result); err != nil {
			log.Error("event handler failed", "event_id", result.Event.ID(), "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "event handling failed"})
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "received"})
}

// Sign computes the hex-encoded HMAC-SHA256 signature of body.
func Sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks a signature in constant time.
func VerifySignature(body []byte, signature, secret string) bool {
	if signature == "" {
		return false
	}
	return hmac.Equal([]byte(Sign(body, secret)), []byte(signature))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
