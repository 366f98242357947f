package goform

import (
	"encoding/base64"
	"net/http"
	"sync"

	"github.com/maksimkurb/zte-goform/src/internal/errors"
	"github.com/maksimkurb/zte-goform/src/internal/log"
)

// probeQuery asks for a cheap key the device only reveals to logged-in clients.
const probeQuery = "isTest=false&cmd=" + KeyHardwareVersion + "&multi_data=1"

// Authenticator establishes and maintains a privileged device session.
//
// Authentication state is never stored: the device drops sessions silently,
// so every check is a fresh probe.
type Authenticator struct {
	endpoint   *Endpoint
	transport  *Transport
	cache      *QueryCache
	lock       *sync.Mutex
	credential string // base64 of the password, as the web UI sends it
}

// NewAuthenticator creates an Authenticator for password. The password is
// encoded once here and never logged.
func NewAuthenticator(endpoint *Endpoint, transport *Transport, cache *QueryCache, lock *sync.Mutex, password string) *Authenticator {
	return &Authenticator{
		endpoint:   endpoint,
		transport:  transport,
		cache:      cache,
		lock:       lock,
		credential: encodeCredential(password),
	}
}

func encodeCredential(password string) string {
	return base64.StdEncoding.EncodeToString([]byte(password))
}

// IsAuthenticated probes the device. It takes the device lock so the probe
// never interleaves with a command.
func (a *Authenticator) IsAuthenticated() bool {
	a.lock.Lock()
	defer a.lock.Unlock()
	return a.isAuthenticatedLocked()
}

// isAuthenticatedLocked makes a single uncached attempt; any failure counts
// as "not authenticated".
func (a *Authenticator) isAuthenticatedLocked() bool {
	values, err := a.transport.SendWithRetries(Request{
		Method: http.MethodGet,
		URL:    a.endpoint.Build(QueryEndpoint, probeQuery),
	}, 1)
	if err != nil {
		log.Debugf("Authentication probe failed: %v", err)
		return false
	}
	return values.Has(KeyHardwareVersion)
}

// Renew logs in again and verifies the result.
func (a *Authenticator) Renew() error {
	a.lock.Lock()
	defer a.lock.Unlock()
	return a.renewLocked()
}

// Login renews only when the device does not already consider us logged in.
func (a *Authenticator) Login() error {
	a.lock.Lock()
	defer a.lock.Unlock()
	if a.isAuthenticatedLocked() {
		return nil
	}
	return a.renewLocked()
}

// renewLocked posts LOGIN, drops cached state, and re-probes. A failed
// re-probe means the credential is wrong and is fatal; it is never retried.
func (a *Authenticator) renewLocked() error {
	log.Debugf("Renewing device session")
	_, err := a.transport.Send(Request{
		Method: http.MethodPost,
		URL:    a.endpoint.Build(CommandEndpoint, ""),
		Form: Fields{
			FieldIsTest:   "false",
			FieldGoformID: GoformLogin,
			FieldPassword: a.credential,
		},
	})
	if err != nil {
		return err
	}

	a.cache.Invalidate()

	if !a.isAuthenticatedLocked() {
		return errors.NewAuthError("session authentication failed, check password and retry", nil)
	}
	return nil
}

// Guard applies the privileged request policy to op. The caller must hold
// the device lock.
//
//   - not authenticated: renew first
//   - empty response or session lapsed afterwards: renew once and retry op once
//
// A second failure is returned to the caller unchanged.
func (a *Authenticator) Guard(op func() (Values, error)) (Values, error) {
	if !a.isAuthenticatedLocked() {
		if err := a.renewLocked(); err != nil {
			return nil, err
		}
	}

	values, err := op()
	if err != nil {
		return nil, err
	}
	if len(values) > 0 && a.isAuthenticatedLocked() {
		return values, nil
	}

	log.Debugf("Device session lapsed during request, re-authenticating once")
	if err := a.renewLocked(); err != nil {
		return nil, err
	}
	return op()
}
