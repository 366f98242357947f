package goform

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
)

// fakeDevice emulates the goform endpoints of a ZTE router closely enough to
// exercise the session layer.
type fakeDevice struct {
	mu       sync.Mutex
	password string            // plain text; the device expects it base64-encoded
	public   map[string]string // always revealed
	private  map[string]string // revealed only to logged-in clients
	result   string            // command result, default "success"

	loggedIn   bool
	emptyReads int // next N data reads answer with an empty body

	gets     map[string]int // cmd parameter -> count
	logins   int
	commands []url.Values
	events   []string

	requests    int32
	inflight    int32
	maxInflight int32
}

func newFakeDevice(password string) *fakeDevice {
	return &fakeDevice{
		password: password,
		public: map[string]string{
			"ppp_status": "ipv4_ipv6_connected",
		},
		private: map[string]string{
			KeyHardwareVersion: "MC801A_HW1.0",
			KeyChallenge:       "abc123",
			KeyLanguage:        "en",
			KeyWaInnerVersion:  "WA1",
			KeyCrVersion:       "CR2",
			"lte_rsrp":         "-95",
		},
		result: "success",
		gets:   make(map[string]int),
	}
}

func (d *fakeDevice) start(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(d)
	t.Cleanup(server.Close)
	return server
}

func (d *fakeDevice) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	atomic.AddInt32(&d.requests, 1)
	n := atomic.AddInt32(&d.inflight, 1)
	defer atomic.AddInt32(&d.inflight, -1)
	for {
		max := atomic.LoadInt32(&d.maxInflight)
		if n <= max || atomic.CompareAndSwapInt32(&d.maxInflight, max, n) {
			break
		}
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	switch r.URL.Path {
	case "/" + QueryEndpoint:
		cmd := r.URL.Query().Get("cmd")
		d.gets[cmd]++
		d.events = append(d.events, "get:"+cmd)
		if cmd != KeyHardwareVersion && d.emptyReads > 0 {
			d.emptyReads--
			return
		}
		resp := make(map[string]string)
		for _, key := range strings.Split(cmd, ",") {
			if v, ok := d.public[key]; ok {
				resp[key] = v
			} else if v, ok := d.private[key]; ok && d.loggedIn {
				resp[key] = v
			} else {
				resp[key] = ""
			}
		}
		_ = json.NewEncoder(w).Encode(resp)

	case "/" + CommandEndpoint:
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if r.PostForm.Get(FieldGoformID) == GoformLogin {
			d.logins++
			d.events = append(d.events, "login")
			if r.PostForm.Get(FieldPassword) == base64.StdEncoding.EncodeToString([]byte(d.password)) {
				d.loggedIn = true
				_, _ = w.Write([]byte(`{"result":"0"}`))
				return
			}
			_, _ = w.Write([]byte(`{"result":"3"}`))
			return
		}
		d.commands = append(d.commands, r.PostForm)
		d.events = append(d.events, "command:"+r.PostForm.Get(FieldGoformID))
		_ = json.NewEncoder(w).Encode(map[string]string{"result": d.result})

	default:
		http.NotFound(w, r)
	}
}

func (d *fakeDevice) expireSession() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.loggedIn = false
}

func (d *fakeDevice) setPublic(key, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.public[key] = value
}

func (d *fakeDevice) getCount(cmd string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gets[cmd]
}

func (d *fakeDevice) loginCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.logins
}

func (d *fakeDevice) recordedCommands() []url.Values {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]url.Values(nil), d.commands...)
}

func (d *fakeDevice) recordedEvents() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.events...)
}

func (d *fakeDevice) requestCount() int {
	return int(atomic.LoadInt32(&d.requests))
}

func newTestClient(t *testing.T, serverURL, password string) *Client {
	t.Helper()
	c, err := NewClient(Options{BaseURL: serverURL, Password: password})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	return c
}
