// Package watch feeds the fraud prediction API: outcome prediction,
// verification feedback and event dispatch.
package watch

import (
	"context"
	"fmt"

	"github.com/AndreaAlhena/prelude-sdk/config"
	"github.com/AndreaAlhena/prelude-sdk/transport"
	"github.com/AndreaAlhena/prelude-sdk/types"
)

// Event is a labeled observation dispatched to the watch API.
type Event struct {
	Target     types.Target     `json:"target"`
	Label      string           `json:"label"`
	Confidence types.Confidence `json:"confidence"`
}

// Feedback reports the outcome of a verification back to the watch API.
type Feedback struct {
	Target     types.Target    `json:"target"`
	Type       string          `json:"type"`
	Signals    *types.Signals  `json:"signals,omitempty"`
	DispatchID string          `json:"dispatch_id,omitempty"`
	Metadata   *types.Metadata `json:"metadata,omitempty"`
}

type PredictResponse struct {
	ID         string `json:"id"`
	Prediction string `json:"prediction"`
	RequestID  string `json:"request_id"`
}

type DispatchResponse struct {
	Status    string `json:"status"`
	RequestID string `json:"request_id"`
}

type FeedbackResponse struct {
	Status    string `json:"status,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// PredictOptions groups the optional parts of a PredictOutcome call.
type PredictOptions struct {
	DispatchID string
	Metadata   *types.Metadata
}

type Service struct {
	client *transport.Client
}

func NewService(client *transport.Client) *Service {
	return &Service{client: client}
}

type predictRequest struct {
	Target     types.Target    `json:"target"`
	Signals    types.Signals   `json:"signals"`
	DispatchID string          `json:"dispatch_id,omitempty"`
	Metadata   *types.Metadata `json:"metadata,omitempty"`
}

type feedbackRequest struct {
	Feedbacks []Feedback `json:"feedbacks"`
}

type dispatchRequest struct {
	Events []Event `json:"events"`
}

// PredictOutcome asks the watch API to predict the outcome of a
// verification before it is attempted.
func (s *Service) PredictOutcome(ctx context.Context, target types.Target, signals types.Signals, opts *PredictOptions) (*PredictResponse, error) {
	req := predictRequest{Target: target, Signals: signals}
	if opts != nil {
		req.DispatchID = opts.DispatchID
		req.Metadata = opts.Metadata
	}

	var response PredictResponse
	if err := s.client.Post(ctx, config.EndpointWatchPredict, req, &response); err != nil {
		return nil, fmt.Errorf("watch.PredictOutcome: %w", err)
	}
	return &response, nil
}

// SendFeedback reports verification outcomes.
func (s *Service) SendFeedback(ctx context.Context, feedbacks []Feedback) (*FeedbackResponse, error) {
	var response FeedbackResponse
	if err := s.client.Post(ctx, config.EndpointWatchFeedback, feedbackRequest{Feedbacks: feedbacks}, &response); err != nil {
		return nil, fmt.Errorf("watch.SendFeedback: %w", err)
	}
	return &response, nil
}

// DispatchEvents pushes labeled events to the watch API.
func (s *Service) DispatchEvents(ctx context.Context, events []Event) (*DispatchResponse, error) {
	var response DispatchResponse
	if err := s.client.Post(ctx, config.EndpointWatchEvent, dispatchRequest{Events: events}, &response); err != nil {
		return nil, fmt.Errorf("watch.DispatchEvents: %w", err)
	}
	return &response, nil
}
