package goform

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/maksimkurb/zte-goform/src/internal/errors"
)

// Endpoint describes the single device a client talks to: its normalized base
// URL, the headers sent with every request, and the URL builder.
//
// All methods are safe for concurrent use. SetBaseURL should not be called
// while requests are in flight.
type Endpoint struct {
	mu      sync.RWMutex
	base    *url.URL
	headers http.Header
	memo    *urlMemo
}

// NewEndpoint parses baseURL and derives the Referer/Origin headers from it.
//
// The path is forced to "/" and the fragment dropped; the query string is
// kept and used by Build when no query is given.
func NewEndpoint(baseURL string) (*Endpoint, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	e := &Endpoint{
		base: base,
		headers: http.Header{
			"Accept":          []string{headerAccept},
			"Accept-Language": []string{headerAcceptLanguage},
		},
		memo: newURLMemo(urlMemoSize),
	}
	e.deriveHeaders()
	return e, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.NewConfigError("base URL is empty", nil)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("invalid base URL %q", raw), err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.NewConfigError(fmt.Sprintf("base URL %q must use http or https", raw), nil)
	}
	if u.Host == "" {
		return nil, errors.NewConfigError(fmt.Sprintf("base URL %q has no host", raw), nil)
	}
	u.Path = "/"
	u.RawPath = ""
	u.Fragment = ""
	u.User = nil
	return u, nil
}

// deriveHeaders must be called with mu held for writing (or before publication).
func (e *Endpoint) deriveHeaders() {
	host := e.base.Hostname()
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	e.headers.Set("Referer", e.rootLocked()+"index.html")
	e.headers.Set("Origin", e.base.Scheme+"://"+host)
}

func (e *Endpoint) rootLocked() string {
	return e.base.Scheme + "://" + e.base.Host + "/"
}

// BaseURL returns the normalized base URL, e.g. "http://192.168.0.1/".
func (e *Endpoint) BaseURL() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.base.String()
}

// SetBaseURL points the endpoint at a different device address. Derived
// headers are recomputed and memoized URLs are dropped.
func (e *Endpoint) SetBaseURL(baseURL string) error {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.base = base
	e.deriveHeaders()
	e.memo.reset()
	return nil
}

// Headers returns a copy of the headers sent with every request.
func (e *Endpoint) Headers() http.Header {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.headers.Clone()
}

// SetHeader overrides a request header for all subsequent requests.
func (e *Endpoint) SetHeader(key, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.headers.Set(key, value)
}

// Build returns the absolute URL for path with the already-encoded query.
// An empty query falls back to the base URL's own query string.
func (e *Endpoint) Build(path, query string) string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	key := path + "\x00" + query
	if u, ok := e.memo.get(key); ok {
		return u
	}

	if query == "" {
		query = e.base.RawQuery
	}
	u := url.URL{
		Scheme:   e.base.Scheme,
		Host:     e.base.Host,
		Path:     "/" + strings.TrimPrefix(path, "/"),
		RawQuery: query,
	}
	built := u.String()
	e.memo.put(key, built)
	return built
}
