package types

// Target is the phone number (E.164) or email address a request acts
// on.
type Target struct {
	Value string     `json:"value"`
	Type  TargetType `json:"type"`
}

func PhoneNumber(value string) Target {
	return Target{Value: value, Type: TargetTypePhoneNumber}
}

func EmailAddress(value string) Target {
	return Target{Value: value, Type: TargetTypeEmailAddress}
}

// Signals carries device and user context for fraud detection. Unset
// fields are left off the wire.
type Signals struct {
	IP             string               `json:"ip,omitempty"`
	DeviceID       string               `json:"device_id,omitempty"`
	DevicePlatform SignalDevicePlatform `json:"device_platform,omitempty"`
	DeviceModel    string               `json:"device_model,omitempty"`
	OSVersion      string               `json:"os_version,omitempty"`
	AppVersion     string               `json:"app_version,omitempty"`
	UserAgent      string               `json:"user_agent,omitempty"`
	IsTrustedUser  *bool                `json:"is_trusted_user,omitempty"`
}

type Metadata struct {
	CorrelationID string `json:"correlation_id,omitempty"`
}
