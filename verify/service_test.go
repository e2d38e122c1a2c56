package verify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndreaAlhena/prelude-sdk/config"
	"github.com/AndreaAlhena/prelude-sdk/transport"
	"github.com/AndreaAlhena/prelude-sdk/types"
)

func testService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.Default("sk_test_123")
	cfg.BaseURL = srv.URL
	return NewService(transport.New(cfg, nil))
}

func TestCreate(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	svc := testService(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{
			"id": "vrf_1",
			"status": "success",
			"method": "message",
			"channels": ["sms"],
			"request_id": "req_1"
		}`))
	})

	verification, err := svc.Create(context.Background(), types.PhoneNumber("+1234567890"), &CreateOptions{
		Options:    &Options{TemplateID: "tpl_1", CodeSize: 6},
		Signals:    &types.Signals{IP: "93.184.216.34", DevicePlatform: types.SignalDevicePlatformIOS},
		Metadata:   &types.Metadata{CorrelationID: "corr_1"},
		DispatchID: "disp_1",
	})
	require.NoError(t, err)

	assert.Equal(t, config.EndpointVerification, gotPath)
	assert.Equal(t, map[string]any{"type": "phone_number", "value": "+1234567890"}, gotBody["target"])
	assert.Equal(t, map[string]any{"template_id": "tpl_1", "code_size": float64(6)}, gotBody["options"])
	assert.Equal(t, map[string]any{"ip": "93.184.216.34", "device_platform": "ios"}, gotBody["signals"])
	assert.Equal(t, map[string]any{"correlation_id": "corr_1"}, gotBody["metadata"])
	assert.Equal(t, "disp_1", gotBody["dispatch_id"])

	assert.Equal(t, "vrf_1", verification.ID)
	assert.True(t, verification.IsSuccess())
	assert.False(t, verification.IsBlocked())
	assert.Equal(t, types.VerificationMethodMessage, verification.Method)
	assert.Equal(t, []types.Channel{types.ChannelSMS}, verification.Channels)
	assert.Equal(t, "req_1", verification.RequestID)
}

func TestCreateWithoutOptionsOmitsFields(t *testing.T) {
	var gotBody map[string]any
	svc := testService(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"id":"vrf_1","status":"success","method":"message"}`))
	})

	_, err := svc.Create(context.Background(), types.PhoneNumber("+1234567890"), nil)
	require.NoError(t, err)

	assert.Contains(t, gotBody, "target")
	assert.NotContains(t, gotBody, "options")
	assert.NotContains(t, gotBody, "signals")
	assert.NotContains(t, gotBody, "metadata")
	assert.NotContains(t, gotBody, "dispatch_id")
}

func TestCreateBlocked(t *testing.T) {
	svc := testService(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"vrf_1","status":"blocked","method":"message","reason":"suspicious"}`))
	})

	verification, err := svc.Create(context.Background(), types.PhoneNumber("+1234567890"), nil)
	require.NoError(t, err)

	assert.True(t, verification.IsBlocked())
	assert.Equal(t, types.VerificationReasonSuspicious, verification.Reason)
}

func TestCheck(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	svc := testService(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"id":"vrf_1","status":"retry","method":"message"}`))
	})

	result, err := svc.Check(context.Background(), types.PhoneNumber("+1234567890"), "123456")
	require.NoError(t, err)

	assert.Equal(t, config.EndpointVerificationCheck, gotPath)
	assert.Equal(t, "123456", gotBody["code"])
	assert.True(t, result.IsRetry())
}

func TestResendOTP(t *testing.T) {
	var gotPath string
	svc := testService(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"id":"vrf_1","status":"success","method":"message"}`))
	})

	verification, err := svc.ResendOTP(context.Background(), "vrf_1")
	require.NoError(t, err)

	assert.Equal(t, "/v2/verification/vrf_1/resend", gotPath)
	assert.Equal(t, "vrf_1", verification.ID)
}

func TestCreateAPIError(t *testing.T) {
	svc := testService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"invalid phone number"}`))
	})

	_, err := svc.Create(context.Background(), types.PhoneNumber("not-a-number"), nil)
	require.Error(t, err)

	var apiErr *transport.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "invalid phone number", apiErr.Message)
}
