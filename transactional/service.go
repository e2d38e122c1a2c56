// Package transactional sends template-based transactional messages.
package transactional

import (
	"context"
	"fmt"
	"time"

	"github.com/AndreaAlhena/prelude-sdk/config"
	"github.com/AndreaAlhena/prelude-sdk/transport"
)

type Service struct {
	client *transport.Client
}

func NewService(client *transport.Client) *Service {
	return &Service{client: client}
}

// Options tunes message delivery. Unset fields are left off the wire.
type Options struct {
	Variables     map[string]string `json:"variables,omitempty"`
	From          string            `json:"from,omitempty"`
	Locale        string            `json:"locale,omitempty"`
	ExpiresAt     string            `json:"expires_at,omitempty"`
	CallbackURL   string            `json:"callback_url,omitempty"`
	CorrelationID string            `json:"correlation_id,omitempty"`
}

// Message is the API's view of a dispatched transactional message.
type Message struct {
	ID            string            `json:"id"`
	To            string            `json:"to"`
	TemplateID    string            `json:"template_id"`
	Variables     map[string]string `json:"variables,omitempty"`
	From          string            `json:"from,omitempty"`
	CallbackURL   string            `json:"callback_url,omitempty"`
	CorrelationID string            `json:"correlation_id,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	ExpiresAt     time.Time         `json:"expires_at"`
}

type sendRequest struct {
	To         string `json:"to"`
	TemplateID string `json:"template_id"`
	*Options
}

// Send dispatches a transactional message to a phone number.
func (s *Service) Send(ctx context.Context, to, templateID string, opts *Options) (*Message, error) {
	var message Message
	req := sendRequest{To: to, TemplateID: templateID, Options: opts}
	if err := s.client.Post(ctx, config.EndpointTransactional, req, &message); err != nil {
		return nil, fmt.Errorf("transactional.Send: %w", err)
	}
	return &message, nil
}
