package goform

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/maksimkurb/zte-goform/src/internal/errors"
	"github.com/maksimkurb/zte-goform/src/internal/log"
	"github.com/maksimkurb/zte-goform/src/internal/utils"
)

// HTTPClient interface for dependency injection in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Request is a single call against the device.
type Request struct {
	Method string // http.MethodGet or http.MethodPost
	URL    string
	Form   Fields // POST body, form-encoded
}

// TransportConfig configures a Transport. Zero values select defaults.
type TransportConfig struct {
	// Timeout bounds each attempt. Only used when HTTPClient is nil.
	Timeout time.Duration
	// Retries is the timeout retry budget: the total number of attempts made
	// before a timeout is surfaced.
	Retries int
	// RateLimit spaces attempts to at most this many per second (0 = unlimited).
	RateLimit float64
	// HTTPClient overrides the default *http.Client.
	HTTPClient HTTPClient
}

// Transport performs single HTTP GET/POST calls against the device with
// bounded retry on timeout. It never touches cache or session state.
type Transport struct {
	endpoint   *Endpoint
	httpClient HTTPClient
	retries    int
	limiter    *rate.Limiter
}

// NewTransport creates a Transport sending the endpoint's headers.
func NewTransport(endpoint *Endpoint, cfg TransportConfig) *Transport {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Retries <= 0 {
		cfg.Retries = DefaultRetries
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	t := &Transport{
		endpoint:   endpoint,
		httpClient: httpClient,
		retries:    cfg.Retries,
	}
	if cfg.RateLimit > 0 {
		t.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}
	return t
}

// Retries returns the default retry budget.
func (t *Transport) Retries() int {
	return t.retries
}

// Send performs req with the default retry budget.
func (t *Transport) Send(req Request) (Values, error) {
	return t.SendWithRetries(req, t.retries)
}

// SendWithRetries performs req, retrying only on timeout. retries is the total
// number of attempts: with retries=3 and every attempt timing out, exactly
// three calls are made and the third timeout is returned. Values below 1 mean
// a single attempt.
//
// Any other failure is returned immediately as a transport error.
func (t *Transport) SendWithRetries(req Request, retries int) (Values, error) {
	if req.Method != http.MethodGet && req.Method != http.MethodPost {
		return nil, errors.NewValidationError(fmt.Sprintf("unsupported method %q", req.Method), nil)
	}
	if retries < 1 {
		retries = 1
	}

	var lastErr error
	for attempt := 1; attempt <= retries; attempt++ {
		values, err := t.sendOnce(req)
		if err == nil {
			return values, nil
		}
		if !isTimeout(err) {
			return nil, errors.NewTransportError(fmt.Sprintf("%s %s failed", req.Method, stripQuery(req.URL)), err)
		}
		lastErr = err
		log.Debugf("Device timed out on %s %s (attempt %d/%d)", req.Method, stripQuery(req.URL), attempt, retries)
	}

	return nil, errors.NewTimeoutError(
		fmt.Sprintf("%s %s timed out after %d attempt(s)", req.Method, stripQuery(req.URL), retries), lastErr)
}

func (t *Transport) sendOnce(req Request) (Values, error) {
	if t.limiter != nil {
		if err := t.limiter.Wait(context.Background()); err != nil {
			return nil, err
		}
	}

	var body io.Reader
	if req.Method == http.MethodPost {
		form := url.Values{}
		for k, v := range req.Form {
			form.Set(k, v)
		}
		body = strings.NewReader(form.Encode())
	}

	httpReq, err := http.NewRequest(req.Method, req.URL, body)
	if err != nil {
		return nil, err
	}
	httpReq.Header = t.endpoint.Headers()
	if req.Method == http.MethodPost {
		httpReq.Header.Set("Content-Type", formContentType)
	}

	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer utils.CloseOrWarn(resp.Body)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	return decodeValues(data), nil
}

// isTimeout reports whether err is a deadline/timeout rather than a hard failure.
func isTimeout(err error) bool {
	if stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return stderrors.As(err, &netErr) && netErr.Timeout()
}

// stripQuery keeps logs and errors short; query strings carry nothing secret
// but do carry a cache buster.
func stripQuery(raw string) string {
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		return raw[:i]
	}
	return raw
}
