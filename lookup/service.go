// Package lookup queries carrier and line information for phone
// numbers.
package lookup

import (
	"context"
	"fmt"
	"net/url"

	"github.com/AndreaAlhena/prelude-sdk/config"
	"github.com/AndreaAlhena/prelude-sdk/transport"
	"github.com/AndreaAlhena/prelude-sdk/types"
)

// Type is an optional lookup feature.
type Type string

const TypeCNAM Type = "cnam"

// Flag marks special number conditions reported by the lookup.
type Flag string

const (
	FlagPorted    Flag = "ported"
	FlagTemporary Flag = "temporary"
)

type NetworkInfo struct {
	CarrierName string `json:"carrier_name"`
	MCC         string `json:"mcc"`
	MNC         string `json:"mnc"`
}

type Response struct {
	PhoneNumber         string         `json:"phone_number"`
	CountryCode         string         `json:"country_code"`
	NetworkInfo         NetworkInfo    `json:"network_info"`
	OriginalNetworkInfo NetworkInfo    `json:"original_network_info"`
	Flags               []Flag         `json:"flags,omitempty"`
	CallerName          string         `json:"caller_name,omitempty"`
	LineType            types.LineType `json:"line_type"`
}

type Service struct {
	client *transport.Client
}

func NewService(client *transport.Client) *Service {
	return &Service{client: client}
}

// Lookup fetches information for a phone number in E.164 format.
// Optional features (e.g. CNAM) are requested via types.
func (s *Service) Lookup(ctx context.Context, phoneNumber string, lookupTypes ...Type) (*Response, error) {
	query := url.Values{}
	for _, t := range lookupTypes {
		query.Add("type", string(t))
	}

	var response Response
	path := config.EndpointLookup + "/" + url.PathEscape(phoneNumber)
	if err := s.client.Get(ctx, path, query, &response); err != nil {
		return nil, fmt.Errorf("lookup.Lookup: %w", err)
	}
	return &response, nil
}
