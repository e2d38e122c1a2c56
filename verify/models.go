package verify

import "github.com/AndreaAlhena/prelude-sdk/types"

// Silent describes the silent verification attempt, when one was made.
type Silent struct {
	Enabled     bool   `json:"enabled"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// Verification is the response to creating a verification.
type Verification struct {
	ID        string                   `json:"id"`
	Status    types.VerificationStatus `json:"status"`
	Method    types.VerificationMethod `json:"method"`
	Reason    types.VerificationReason `json:"reason,omitempty"`
	Channels  []types.Channel          `json:"channels,omitempty"`
	Silent    *Silent                  `json:"silent,omitempty"`
	Metadata  *types.Metadata          `json:"metadata,omitempty"`
	RequestID string                   `json:"request_id,omitempty"`
}

func (v *Verification) IsSuccess() bool {
	return v.Status == types.VerificationStatusSuccess
}

func (v *Verification) IsBlocked() bool {
	return v.Status == types.VerificationStatusBlocked
}

func (v *Verification) ShouldRetry() bool {
	return v.Status == types.VerificationStatusRetry
}

// Result is the response to checking an OTP code.
type Result struct {
	ID        string                   `json:"id"`
	Status    types.VerificationStatus `json:"status"`
	Method    types.VerificationMethod `json:"method"`
	Reason    types.VerificationReason `json:"reason,omitempty"`
	Channels  []types.Channel          `json:"channels,omitempty"`
	Silent    *Silent                  `json:"silent,omitempty"`
	Metadata  *types.Metadata          `json:"metadata,omitempty"`
	RequestID string                   `json:"request_id,omitempty"`
}

func (r *Result) IsSuccess() bool {
	return r.Status == types.VerificationStatusSuccess
}

func (r *Result) IsBlocked() bool {
	return r.Status == types.VerificationStatusBlocked
}

func (r *Result) IsRetry() bool {
	return r.Status == types.VerificationStatusRetry
}
