package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/maksimkurb/zte-goform/src/internal/domain"
	"github.com/maksimkurb/zte-goform/src/internal/errors"
	"github.com/maksimkurb/zte-goform/src/internal/goform"
	"github.com/maksimkurb/zte-goform/src/internal/mocks"
)

func newTestRouter(client *mocks.MockDeviceClient) http.Handler {
	return NewRouter(domain.NewTestDependencies(client), RouterOptions{Version: "test", AllowPublicClients: true})
}

func serve(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	resp := DataResponse{Data: v}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response %q: %v", rec.Body.String(), err)
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) APIError {
	t.Helper()
	var resp ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	return resp.Error
}

func TestQuery_KeysInOrder(t *testing.T) {
	client := mocks.NewMockDeviceClient(goform.Values{"ppp_status": "ppp_connected", "lte_rsrp": "-95"})
	rec := serve(t, newTestRouter(client), http.MethodGet, "/api/v1/query?keys=lte_rsrp,ppp_status&keys=msisdn", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(client.QueryCalls) != 1 {
		t.Fatalf("Expected 1 query, got %d", len(client.QueryCalls))
	}
	if got := strings.Join(client.QueryCalls[0], ","); got != "lte_rsrp,ppp_status,msisdn" {
		t.Errorf("Expected keys in request order, got %s", got)
	}

	var resp QueryResponse
	decodeData(t, rec, &resp)
	if resp.Values["lte_rsrp"] != "-95" {
		t.Errorf("Expected lte_rsrp -95, got %v", resp.Values["lte_rsrp"])
	}
}

func TestCommand_StringifiesScalars(t *testing.T) {
	client := mocks.NewMockDeviceClient(nil)
	body := `{"goformId":"SET_DEVICE_MODE","debug_enable":1,"notCallback":true}`
	rec := serve(t, newTestRouter(client), http.MethodPost, "/api/v1/command", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(client.CommandCalls) != 1 {
		t.Fatalf("Expected 1 command, got %d", len(client.CommandCalls))
	}
	fields := client.CommandCalls[0]
	if fields["debug_enable"] != "1" || fields["notCallback"] != "true" {
		t.Errorf("Unexpected fields: %v", fields)
	}

	var resp CommandResponse
	decodeData(t, rec, &resp)
	if !resp.Success {
		t.Errorf("Expected success")
	}
}

func TestCommand_RejectsNestedValues(t *testing.T) {
	client := mocks.NewMockDeviceClient(nil)
	rec := serve(t, newTestRouter(client), http.MethodPost, "/api/v1/command", `{"goformId":{"a":1}}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
	if len(client.CommandCalls) != 0 {
		t.Errorf("Expected no command to reach the device")
	}
}

func TestCommand_RejectsWrongContentType(t *testing.T) {
	client := mocks.NewMockDeviceClient(nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/command", strings.NewReader("goformId=X"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	newTestRouter(client).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
}

func TestDeviceErrors_MapToStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   ErrorCode
	}{
		{"validation", errors.NewValidationError("bad key", nil), http.StatusBadRequest, ErrCodeValidationFailed},
		{"auth", errors.NewAuthError("rejected", nil), http.StatusUnauthorized, ErrCodeAuthFailed},
		{"access", errors.NewAccessError("private", nil), http.StatusForbidden, ErrCodeAccessDenied},
		{"timeout", errors.NewTimeoutError("no answer", nil), http.StatusGatewayTimeout, ErrCodeDeviceTimeout},
		{"transport", errors.NewTransportError("refused", nil), http.StatusBadGateway, ErrCodeDeviceUnreachable},
		{"other", errors.NewInternalError("boom", nil), http.StatusInternalServerError, ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mocks.MockDeviceClient{
				QueryFunc: func(keys []string) (goform.Values, error) { return nil, tt.err },
			}
			rec := serve(t, newTestRouter(client), http.MethodGet, "/api/v1/datausage", "")

			if rec.Code != tt.status {
				t.Errorf("Expected status %d, got %d", tt.status, rec.Code)
			}
			if apiErr := decodeError(t, rec); apiErr.Code != tt.code {
				t.Errorf("Expected code %s, got %s", tt.code, apiErr.Code)
			}
		})
	}
}

func TestDataUsage(t *testing.T) {
	client := mocks.NewMockDeviceClient(goform.Values{
		"datausage_usedamount":    "157303079731",
		"datausage_allotedamount": "214748364800",
		"datausage_usedrate":      "73.25",
	})
	rec := serve(t, newTestRouter(client), http.MethodGet, "/api/v1/datausage", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var usage struct {
		UsedData  string  `json:"used_data"`
		TotalData string  `json:"total_data"`
		UsedRate  float64 `json:"used_percent"`
	}
	decodeData(t, rec, &usage)
	if usage.UsedData != "146.5 GB" || usage.TotalData != "200 GB" {
		t.Errorf("Unexpected sizes: %+v", usage)
	}
	if usage.UsedRate != 73.25 {
		t.Errorf("Expected used_percent 73.25, got %v", usage.UsedRate)
	}
}

func TestConnection(t *testing.T) {
	client := mocks.NewMockDeviceClient(goform.Values{
		"ppp_status": "ipv4_ipv6_connected",
		"lte_rsrp":   "-95",
		"wan_ipaddr": "10.20.30.40",
	})
	rec := serve(t, newTestRouter(client), http.MethodGet, "/api/v1/connection", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var info struct {
		State     string `json:"state"`
		Connected bool   `json:"connected"`
		SignalLTE *int64 `json:"signal_lte"`
		WANIPv4   string `json:"wan_ipv4"`
	}
	decodeData(t, rec, &info)
	if !info.Connected || info.WANIPv4 != "10.20.30.40" {
		t.Errorf("Unexpected connection info: %+v", info)
	}
	if info.SignalLTE == nil || *info.SignalLTE != -95 {
		t.Errorf("Expected LTE signal -95, got %v", info.SignalLTE)
	}
}

func TestConnectionAction(t *testing.T) {
	tests := []struct {
		action   string
		status   int
		goformID string
	}{
		{"connect", http.StatusOK, "CONNECT_NETWORK"},
		{"disconnect", http.StatusOK, "DISCONNECT_NETWORK"},
		{"reboot", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			client := mocks.NewMockDeviceClient(nil)
			rec := serve(t, newTestRouter(client), http.MethodPost, "/api/v1/connection/"+tt.action, "")

			if rec.Code != tt.status {
				t.Fatalf("Expected status %d, got %d", tt.status, rec.Code)
			}
			if tt.goformID == "" {
				if len(client.CommandCalls) != 0 {
					t.Errorf("Expected no command for unknown action")
				}
				return
			}
			if len(client.CommandCalls) != 1 || client.CommandCalls[0][goform.FieldGoformID] != tt.goformID {
				t.Errorf("Expected %s command, got %v", tt.goformID, client.CommandCalls)
			}
		})
	}
}

func TestAuth(t *testing.T) {
	client := mocks.NewMockDeviceClient(nil)
	client.IsAuthenticatedFunc = func() bool { return client.LoginCalls > 0 }
	router := newTestRouter(client)

	var resp AuthResponse
	decodeData(t, serve(t, router, http.MethodGet, "/api/v1/auth", ""), &resp)
	if resp.Authenticated {
		t.Errorf("Expected unauthenticated before login")
	}
	if client.LoginCalls != 0 {
		t.Errorf("GET must not log in")
	}

	rec := serve(t, router, http.MethodPost, "/api/v1/auth", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	decodeData(t, rec, &resp)
	if !resp.Authenticated {
		t.Errorf("Expected authenticated after login")
	}
}

func TestAuth_LoginRejected(t *testing.T) {
	client := mocks.NewMockDeviceClient(nil)
	client.LoginFunc = func() error { return errors.NewAuthError("session authentication failed", nil) }

	rec := serve(t, newTestRouter(client), http.MethodPost, "/api/v1/auth", "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", rec.Code)
	}
}

func TestClearCache(t *testing.T) {
	client := mocks.NewMockDeviceClient(nil)
	rec := serve(t, newTestRouter(client), http.MethodDelete, "/api/v1/cache", "")

	if rec.Code != http.StatusNoContent {
		t.Errorf("Expected 204, got %d", rec.Code)
	}
	if client.ClearCacheCalls != 1 {
		t.Errorf("Expected 1 ClearCache call, got %d", client.ClearCacheCalls)
	}
}

func TestHealth(t *testing.T) {
	client := mocks.NewMockDeviceClient(nil)
	rec := serve(t, newTestRouter(client), http.MethodGet, "/health", "")

	var resp HealthCheckResponse
	decodeData(t, rec, &resp)
	if !resp.Healthy || resp.Version != "test" {
		t.Errorf("Unexpected health response: %+v", resp)
	}
	if len(client.QueryCalls) != 0 {
		t.Errorf("Health check must not query the device")
	}
}
