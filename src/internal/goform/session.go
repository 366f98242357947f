package goform

import (
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/maksimkurb/zte-goform/src/internal/errors"
	"github.com/maksimkurb/zte-goform/src/internal/hashing"
	"github.com/maksimkurb/zte-goform/src/internal/log"
)

// Session is the capability shared by every transport strategy. All
// implementations must behave identically as seen by callers.
type Session interface {
	// Query reads keys from the device, in order.
	Query(keys []string) (Values, error)
	// Command applies a write and reports whether the device accepted it.
	Command(fields Fields) (bool, error)
	// IsAuthenticated reports whether the device currently reveals private values.
	IsAuthenticated() bool
}

var (
	_ Session = (*PublicSession)(nil)
	_ Session = (*PrivateSession)(nil)
)

// guardFunc wraps a single device operation with a session policy.
type guardFunc func(op func() (Values, error)) (Values, error)

func unguarded(op func() (Values, error)) (Values, error) {
	return op()
}

// base carries what both built-in sessions share.
type base struct {
	endpoint  *Endpoint
	transport *Transport
	cache     *QueryCache
	lock      *sync.Mutex
	guard     guardFunc
	now       func() time.Time
}

// queryString builds isTest=false&cmd=<keys>&multi_data=1, keeping the
// caller's key order.
func queryString(keys []string) string {
	return "isTest=false&cmd=" + url.QueryEscape(CanonicalKey(keys)) + "&multi_data=1"
}

// queryRequest appends the millisecond cache-buster after Build so the URL
// memo holds one entry per key set.
func (b *base) queryRequest(keys []string) Request {
	u := b.endpoint.Build(QueryEndpoint, queryString(keys))
	u += "&_=" + strconv.FormatInt(b.now().UnixMilli(), 10)
	return Request{Method: http.MethodGet, URL: u}
}

func (b *base) query(keys []string) (Values, error) {
	if err := ValidateKeys(keys); err != nil {
		return nil, err
	}
	req := b.queryRequest(keys)
	return b.cache.GetOrFetch(keys, func() (Values, error) {
		return b.guard(func() (Values, error) {
			return b.transport.Send(req)
		})
	})
}

// command posts fields under the device lock. sign, when set, fills in the
// digest immediately before each attempt so a re-authenticated retry signs
// with the new challenge.
func (b *base) command(fields Fields, sign func(Fields) error) (bool, error) {
	form := fields.Clone()
	if _, ok := form[FieldIsTest]; !ok {
		form[FieldIsTest] = "false"
	}
	req := Request{Method: http.MethodPost, URL: b.endpoint.Build(CommandEndpoint, "")}

	b.lock.Lock()
	defer b.lock.Unlock()

	values, err := b.guard(func() (Values, error) {
		if sign != nil {
			if err := sign(form); err != nil {
				return nil, err
			}
		}
		req.Form = form
		return b.transport.Send(req)
	})
	if err != nil {
		if errors.CodeOf(err) == errors.ErrCodeTimeout {
			// The write may have reached the device; its effect is unknown.
			b.cache.Invalidate()
		}
		return false, err
	}

	// The POST completed, so device state may have changed whatever the result.
	b.cache.Invalidate()

	ok := IsSuccess(values)
	if !ok {
		log.Debugf("Device rejected %s=%s: result=%q", FieldGoformID, form[FieldGoformID], values.String(resultKey))
	}
	return ok, nil
}

// PublicSession talks to the device without a credential. Private values
// simply come back empty.
type PublicSession struct {
	base
}

// NewPublicSession creates an unauthenticated session.
func NewPublicSession(endpoint *Endpoint, transport *Transport, cache *QueryCache, lock *sync.Mutex) *PublicSession {
	return &PublicSession{base{
		endpoint:  endpoint,
		transport: transport,
		cache:     cache,
		lock:      lock,
		guard:     unguarded,
		now:       time.Now,
	}}
}

// Query implements Session.
func (s *PublicSession) Query(keys []string) (Values, error) {
	return s.query(keys)
}

// Command implements Session.
func (s *PublicSession) Command(fields Fields) (bool, error) {
	if err := ValidateFields(fields); err != nil {
		return false, err
	}
	return s.command(fields, nil)
}

// IsAuthenticated always reports false.
func (s *PublicSession) IsAuthenticated() bool {
	return false
}

// PrivateSession authenticates with a password and signs every command with
// the challenge-response digest.
type PrivateSession struct {
	base
	auth *Authenticator
}

// NewPrivateSession creates a credentialed session. No network I/O happens
// here; the first request logs in.
func NewPrivateSession(endpoint *Endpoint, transport *Transport, cache *QueryCache, lock *sync.Mutex, password string) *PrivateSession {
	auth := NewAuthenticator(endpoint, transport, cache, lock, password)
	return &PrivateSession{
		base: base{
			endpoint:  endpoint,
			transport: transport,
			cache:     cache,
			lock:      lock,
			guard:     auth.Guard,
			now:       time.Now,
		},
		auth: auth,
	}
}

// Query implements Session.
func (s *PrivateSession) Query(keys []string) (Values, error) {
	return s.query(keys)
}

// Command implements Session. Unless the caller supplied AD, the firmware
// versions are read (cached) first and the challenge is read fresh right
// before the POST.
func (s *PrivateSession) Command(fields Fields) (bool, error) {
	if err := ValidateFields(fields); err != nil {
		return false, err
	}
	if fields[FieldAD] != "" {
		return s.command(fields, nil)
	}

	versions, err := s.Query([]string{KeyLanguage, KeyWaInnerVersion, KeyCrVersion})
	if err != nil {
		return false, err
	}
	return s.command(fields, s.signer(versions))
}

func (s *PrivateSession) signer(versions Values) func(Fields) error {
	return func(form Fields) error {
		challenge, err := s.transport.Send(s.queryRequest([]string{KeyChallenge}))
		if err != nil {
			return err
		}
		form[FieldAD] = hashing.CommandDigest(
			challenge.String(KeyChallenge),
			versions.String(KeyWaInnerVersion),
			versions.String(KeyCrVersion),
		)
		return nil
	}
}

// IsAuthenticated probes the device.
func (s *PrivateSession) IsAuthenticated() bool {
	return s.auth.IsAuthenticated()
}

// Login authenticates unless the device already considers us logged in.
func (s *PrivateSession) Login() error {
	return s.auth.Login()
}

// Renew forces a fresh login.
func (s *PrivateSession) Renew() error {
	return s.auth.Renew()
}
