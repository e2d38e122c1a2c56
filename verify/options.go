package verify

import "github.com/AndreaAlhena/prelude-sdk/types"

type AppRealmPlatform string

const AppRealmPlatformAndroid AppRealmPlatform = "android"

// AppRealm enables automatic SMS retrieval on supported platforms.
type AppRealm struct {
	Platform AppRealmPlatform `json:"platform"`
	Value    string           `json:"value"`
}

// Options tunes how the verification is delivered. Unset fields are
// left off the wire.
type Options struct {
	TemplateID       string                 `json:"template_id,omitempty"`
	Variables        map[string]string      `json:"variables,omitempty"`
	Method           types.OptionsMethod    `json:"method,omitempty"`
	Locale           string                 `json:"locale,omitempty"`
	AppRealm         *AppRealm              `json:"app_realm,omitempty"`
	CodeSize         int                    `json:"code_size,omitempty"`
	CustomCode       string                 `json:"custom_code,omitempty"`
	CallbackURL      string                 `json:"callback_url,omitempty"`
	PreferredChannel types.PreferredChannel `json:"preferred_channel,omitempty"`
}

// CreateOptions groups the optional parts of a Create call.
type CreateOptions struct {
	Signals    *types.Signals
	Options    *Options
	Metadata   *types.Metadata
	DispatchID string
}
