package goform

import (
	"net/http"
	"net/http/cookiejar"
	"sync"
	"time"
)

// Options configures a Client. Zero values select defaults.
type Options struct {
	// BaseURL of the device web UI, e.g. "http://192.168.0.1/".
	BaseURL string
	// Password enables the privileged session. Empty means public access only.
	Password string
	// Timeout bounds each HTTP attempt (default 10s).
	Timeout time.Duration
	// Retries is the timeout retry budget (default 5).
	Retries int
	// CacheTTL is how long query responses stay fresh (default 5s).
	CacheTTL time.Duration
	// RateLimit caps device requests per second (0 = unlimited).
	RateLimit float64
	// HTTPClient overrides the HTTP client, mainly for tests.
	HTTPClient HTTPClient
	// Session replaces the built-in strategies entirely. When set, every
	// other option is ignored and BaseURL is optional.
	Session Session
}

// Client is the entry point used by models and commands. It satisfies
// Session by delegating to the strategy chosen at construction.
type Client struct {
	endpoint *Endpoint
	cache    *QueryCache
	session  Session
}

var _ Session = (*Client)(nil)

// NewClient builds a Client. The strategy is chosen once: a supplied Session
// wins, then a password selects PrivateSession, otherwise PublicSession.
func NewClient(opts Options) (*Client, error) {
	if opts.Session != nil {
		c := &Client{session: opts.Session}
		if opts.BaseURL != "" {
			endpoint, err := NewEndpoint(opts.BaseURL)
			if err != nil {
				return nil, err
			}
			c.endpoint = endpoint
		}
		return c, nil
	}

	endpoint, err := NewEndpoint(opts.BaseURL)
	if err != nil {
		return nil, err
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = newHTTPClient(opts.Timeout, opts.Password != "")
	}

	lock := &sync.Mutex{}
	transport := NewTransport(endpoint, TransportConfig{
		Timeout:    opts.Timeout,
		Retries:    opts.Retries,
		RateLimit:  opts.RateLimit,
		HTTPClient: httpClient,
	})
	cache := NewQueryCache(lock, opts.CacheTTL)

	var session Session
	if opts.Password != "" {
		session = NewPrivateSession(endpoint, transport, cache, lock, opts.Password)
	} else {
		session = NewPublicSession(endpoint, transport, cache, lock)
	}

	return &Client{endpoint: endpoint, cache: cache, session: session}, nil
}

// newHTTPClient keeps cookies for privileged sessions; some firmware ties the
// login to a session cookie rather than the client address.
func newHTTPClient(timeout time.Duration, withCookies bool) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &http.Client{Timeout: timeout}
	if withCookies {
		// cookiejar.New only fails when given a PublicSuffixList that errors.
		jar, _ := cookiejar.New(nil)
		c.Jar = jar
	}
	return c
}

// Endpoint returns the device endpoint. Nil for a supplied session created
// without a BaseURL.
func (c *Client) Endpoint() *Endpoint {
	return c.endpoint
}

// Session returns the active strategy.
func (c *Client) Session() Session {
	return c.session
}

// Query implements Session. Keys are validated here for every strategy.
func (c *Client) Query(keys []string) (Values, error) {
	if err := ValidateKeys(keys); err != nil {
		return nil, err
	}
	return c.session.Query(keys)
}

// Command implements Session. Fields are validated here for every strategy.
func (c *Client) Command(fields Fields) (bool, error) {
	if err := ValidateFields(fields); err != nil {
		return false, err
	}
	return c.session.Command(fields)
}

// IsAuthenticated implements Session.
func (c *Client) IsAuthenticated() bool {
	return c.session.IsAuthenticated()
}

// Login authenticates when the active strategy supports it; otherwise it is
// a no-op.
func (c *Client) Login() error {
	if l, ok := c.session.(interface{ Login() error }); ok {
		return l.Login()
	}
	return nil
}

// ClearCache drops cached responses of the built-in strategies.
func (c *Client) ClearCache() {
	if c.cache != nil {
		c.cache.Invalidate()
	}
}
