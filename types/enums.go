// Package types holds the wire enums and value objects shared across
// the API services.
package types

type TargetType string

const (
	TargetTypeEmailAddress TargetType = "email_address"
	TargetTypePhoneNumber  TargetType = "phone_number"
)

func (t TargetType) IsValid() bool {
	switch t {
	case TargetTypeEmailAddress, TargetTypePhoneNumber:
		return true
	}
	return false
}

type Channel string

const (
	ChannelRCS      Channel = "rcs"
	ChannelSMS      Channel = "sms"
	ChannelTelegram Channel = "telegram"
	ChannelViber    Channel = "viber"
	ChannelVoice    Channel = "voice"
	ChannelWhatsApp Channel = "whatsapp"
	ChannelZalo     Channel = "zalo"
)

type PreferredChannel string

const (
	PreferredChannelRCS      PreferredChannel = "rcs"
	PreferredChannelSMS      PreferredChannel = "sms"
	PreferredChannelTelegram PreferredChannel = "telegram"
	PreferredChannelViber    PreferredChannel = "viber"
	PreferredChannelWhatsApp PreferredChannel = "whatsapp"
	PreferredChannelZalo     PreferredChannel = "zalo"
)

type VerificationStatus string

const (
	VerificationStatusBlocked VerificationStatus = "blocked"
	VerificationStatusRetry   VerificationStatus = "retry"
	VerificationStatusSuccess VerificationStatus = "success"
)

type VerificationMethod string

const (
	VerificationMethodMessage VerificationMethod = "message"
	VerificationMethodSilent  VerificationMethod = "silent"
	VerificationMethodVoice   VerificationMethod = "voice"
)

// VerificationReason is only present when a verification is blocked.
type VerificationReason string

const (
	VerificationReasonExpiredSignature   VerificationReason = "expired_signature"
	VerificationReasonInBlockList        VerificationReason = "in_block_list"
	VerificationReasonInvalidPhoneLine   VerificationReason = "invalid_phone_line"
	VerificationReasonInvalidPhoneNumber VerificationReason = "invalid_phone_number"
	VerificationReasonInvalidSignature   VerificationReason = "invalid_signature"
	VerificationReasonRepeatedAttempts   VerificationReason = "repeated_attempts"
	VerificationReasonSuspicious         VerificationReason = "suspicious"
)

type OptionsMethod string

const (
	OptionsMethodAuto    OptionsMethod = "auto"
	OptionsMethodMessage OptionsMethod = "message"
	OptionsMethodVoice   OptionsMethod = "voice"
)

// Confidence grades a dispatched watch event.
type Confidence string

const (
	ConfidenceMaximum Confidence = "maximum"
	ConfidenceHigh    Confidence = "high"
	ConfidenceNeutral Confidence = "neutral"
	ConfidenceLow     Confidence = "low"
	ConfidenceMinimum Confidence = "minimum"
)

type SignalDevicePlatform string

const (
	SignalDevicePlatformAndroid SignalDevicePlatform = "android"
	SignalDevicePlatformIPadOS  SignalDevicePlatform = "ipados"
	SignalDevicePlatformIOS     SignalDevicePlatform = "ios"
	SignalDevicePlatformTVOS    SignalDevicePlatform = "tvos"
	SignalDevicePlatformWeb     SignalDevicePlatform = "web"
)

// LineType categorizes a looked-up phone number.
type LineType string

const (
	LineTypeCallingCards          LineType = "calling_cards"
	LineTypeFixedLine             LineType = "fixed_line"
	LineTypeISP                   LineType = "isp"
	LineTypeLocalRate             LineType = "local_rate"
	LineTypeMobile                LineType = "mobile"
	LineTypeOther                 LineType = "other"
	LineTypePager                 LineType = "pager"
	LineTypePayphone              LineType = "payphone"
	LineTypePremiumRate           LineType = "premium_rate"
	LineTypeSatellite             LineType = "satellite"
	LineTypeService               LineType = "service"
	LineTypeSharedCost            LineType = "shared_cost"
	LineTypeShortCodesCommercial  LineType = "short_codes_commercial"
	LineTypeTollFree              LineType = "toll_free"
	LineTypeUniversalAccess       LineType = "universal_access"
	LineTypeUnknown               LineType = "unknown"
	LineTypeVPN                   LineType = "vpn"
	LineTypeVoiceMail             LineType = "voice_mail"
	LineTypeVoIP                  LineType = "voip"
)
