// Package verify implements OTP verification: creating verifications,
// checking codes and resending OTPs.
package verify

import (
	"context"
	"fmt"

	"github.com/AndreaAlhena/prelude-sdk/config"
	"github.com/AndreaAlhena/prelude-sdk/transport"
	"github.com/AndreaAlhena/prelude-sdk/types"
)

type Service struct {
	client *transport.Client
}

func NewService(client *transport.Client) *Service {
	return &Service{client: client}
}

type createRequest struct {
	Target     types.Target   `json:"target"`
	Options    *Options       `json:"options,omitempty"`
	Signals    *types.Signals `json:"signals,omitempty"`
	Metadata   *types.Metadata `json:"metadata,omitempty"`
	DispatchID string         `json:"dispatch_id,omitempty"`
}

type checkRequest struct {
	Code   string       `json:"code"`
	Target types.Target `json:"target"`
}

// Create starts a verification for a phone number or email address.
func (s *Service) Create(ctx context.Context, target types.Target, opts *CreateOptions) (*Verification, error) {
	req := createRequest{Target: target}
	if opts != nil {
		req.Options = opts.Options
		req.Signals = opts.Signals
		req.Metadata = opts.Metadata
		req.DispatchID = opts.DispatchID
	}

	var verification Verification
	if err := s.client.Post(ctx, config.EndpointVerification, req, &verification); err != nil {
		return nil, fmt.Errorf("verify.Create: %w", err)
	}
	return &verification, nil
}

// Check verifies an OTP code against a pending verification.
func (s *Service) Check(ctx context.Context, target types.Target, code string) (*Result, error) {
	var result Result
	req := checkRequest{Code: code, Target: target}
	if err := s.client.Post(ctx, config.EndpointVerificationCheck, req, &result); err != nil {
		return nil, fmt.Errorf("verify.Check: %w", err)
	}
	return &result, nil
}

// ResendOTP resends the code for an existing verification.
func (s *Service) ResendOTP(ctx context.Context, verificationID string) (*Verification, error) {
	var verification Verification
	path := config.EndpointVerification + "/" + verificationID + "/resend"
	if err := s.client.Post(ctx, path, nil, &verification); err != nil {
		return nil, fmt.Errorf("verify.ResendOTP: %w", err)
	}
	return &verification, nil
}
