package goform

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/maksimkurb/zte-goform/src/internal/errors"
)

func TestNewEndpoint_Normalization(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantBase  string
		wantQuery string
		referer   string
		origin    string
	}{
		{
			name:      "plain address",
			input:     "http://192.168.0.1/",
			wantBase:  "http://192.168.0.1/",
			wantQuery: "http://192.168.0.1/goform/goform_get_cmd_process",
			referer:   "http://192.168.0.1/index.html",
			origin:    "http://192.168.0.1",
		},
		{
			name:      "path and fragment dropped, query kept",
			input:     "http://192.168.0.1/index.html?lang=en#home",
			wantBase:  "http://192.168.0.1/?lang=en",
			wantQuery: "http://192.168.0.1/goform/goform_get_cmd_process?lang=en",
			referer:   "http://192.168.0.1/index.html",
			origin:    "http://192.168.0.1",
		},
		{
			name:      "port is kept in referer but not origin",
			input:     "https://router.local:8443",
			wantBase:  "https://router.local:8443/",
			wantQuery: "https://router.local:8443/goform/goform_get_cmd_process",
			referer:   "https://router.local:8443/index.html",
			origin:    "https://router.local",
		},
		{
			name:      "ipv6 host",
			input:     "http://[fe80::1]/",
			wantBase:  "http://[fe80::1]/",
			wantQuery: "http://[fe80::1]/goform/goform_get_cmd_process",
			referer:   "http://[fe80::1]/index.html",
			origin:    "http://[fe80::1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEndpoint(tt.input)
			if err != nil {
				t.Fatalf("NewEndpoint(%q) returned error: %v", tt.input, err)
			}
			if got := e.BaseURL(); got != tt.wantBase {
				t.Errorf("BaseURL() = %q, want %q", got, tt.wantBase)
			}
			if got := e.Build(QueryEndpoint, ""); got != tt.wantQuery {
				t.Errorf("Build() = %q, want %q", got, tt.wantQuery)
			}
			headers := e.Headers()
			if got := headers.Get("Referer"); got != tt.referer {
				t.Errorf("Referer = %q, want %q", got, tt.referer)
			}
			if got := headers.Get("Origin"); got != tt.origin {
				t.Errorf("Origin = %q, want %q", got, tt.origin)
			}
			if headers.Get("Accept") != headerAccept {
				t.Errorf("Expected Accept header %q, got %q", headerAccept, headers.Get("Accept"))
			}
		})
	}
}

func TestNewEndpoint_Invalid(t *testing.T) {
	for _, input := range []string{"", "   ", "ftp://192.168.0.1/", "http://", "192.168.0.1", "http://%zz/"} {
		t.Run(input, func(t *testing.T) {
			_, err := NewEndpoint(input)
			if err == nil {
				t.Fatalf("Expected error for %q", input)
			}
			if !stderrors.Is(err, errors.ErrConfig) {
				t.Errorf("Expected config error, got %v", err)
			}
		})
	}
}

func TestEndpoint_BuildWithQuery(t *testing.T) {
	e, err := NewEndpoint("http://192.168.0.1/?ignored=1")
	if err != nil {
		t.Fatalf("NewEndpoint returned error: %v", err)
	}

	got := e.Build("/"+QueryEndpoint, "isTest=false&cmd=a%2Cb&multi_data=1")
	want := "http://192.168.0.1/goform/goform_get_cmd_process?isTest=false&cmd=a%2Cb&multi_data=1"
	if got != want {
		t.Errorf("Build() = %q, want %q", got, want)
	}

	if again := e.Build("/"+QueryEndpoint, "isTest=false&cmd=a%2Cb&multi_data=1"); again != got {
		t.Errorf("Expected memoized Build to be deterministic, got %q and %q", got, again)
	}
}

func TestEndpoint_MemoIsBounded(t *testing.T) {
	e, err := NewEndpoint("http://192.168.0.1/")
	if err != nil {
		t.Fatalf("NewEndpoint returned error: %v", err)
	}

	for i := 0; i < urlMemoSize*2; i++ {
		e.Build(QueryEndpoint, fmt.Sprintf("cmd=k%d", i))
	}

	if got := e.memo.len(); got != urlMemoSize {
		t.Errorf("Expected memo to hold %d entries, got %d", urlMemoSize, got)
	}
}

func TestURLMemo_EvictsLeastRecentlyUsed(t *testing.T) {
	m := newURLMemo(3)
	m.put("a", "1")
	m.put("b", "2")
	m.put("c", "3")

	// Touch "a" so "b" becomes the oldest.
	if v, ok := m.get("a"); !ok || v != "1" {
		t.Fatalf("Expected a=1, got %q (found=%v)", v, ok)
	}
	m.put("d", "4")

	if _, ok := m.get("b"); ok {
		t.Errorf("Expected b to be evicted")
	}
	for _, key := range []string{"a", "c", "d"} {
		if _, ok := m.get(key); !ok {
			t.Errorf("Expected %s to be kept", key)
		}
	}
	if m.len() != 3 {
		t.Errorf("Expected 3 entries, got %d", m.len())
	}

	m.put("a", "updated")
	if v, _ := m.get("a"); v != "updated" {
		t.Errorf("Expected put on existing key to update value, got %q", v)
	}

	m.reset()
	if m.len() != 0 {
		t.Errorf("Expected reset to empty the memo, got %d entries", m.len())
	}
}

func TestEndpoint_SetBaseURL(t *testing.T) {
	e, err := NewEndpoint("http://192.168.0.1/")
	if err != nil {
		t.Fatalf("NewEndpoint returned error: %v", err)
	}
	e.Build(QueryEndpoint, "cmd=a")

	if err := e.SetBaseURL("http://192.168.8.1/"); err != nil {
		t.Fatalf("SetBaseURL returned error: %v", err)
	}

	if e.memo.len() != 0 {
		t.Errorf("Expected memo to be cleared, got %d entries", e.memo.len())
	}
	if got := e.Headers().Get("Origin"); got != "http://192.168.8.1" {
		t.Errorf("Expected Origin to follow the new base, got %q", got)
	}
	if got := e.Headers().Get("Referer"); got != "http://192.168.8.1/index.html" {
		t.Errorf("Expected Referer to follow the new base, got %q", got)
	}
	if got := e.Build(QueryEndpoint, "cmd=a"); got != "http://192.168.8.1/goform/goform_get_cmd_process?cmd=a" {
		t.Errorf("Expected Build to use the new base, got %q", got)
	}

	if err := e.SetBaseURL("not a url"); err == nil {
		t.Errorf("Expected error for invalid base URL")
	}
	if got := e.BaseURL(); got != "http://192.168.8.1/" {
		t.Errorf("Expected failed SetBaseURL to keep the previous base, got %q", got)
	}
}

func TestEndpoint_SetHeader(t *testing.T) {
	e, err := NewEndpoint("http://192.168.0.1/")
	if err != nil {
		t.Fatalf("NewEndpoint returned error: %v", err)
	}

	e.SetHeader("User-Agent", "zte-goform-test")
	headers := e.Headers()
	if headers.Get("User-Agent") != "zte-goform-test" {
		t.Errorf("Expected custom header to be set")
	}

	headers.Set("Origin", "mutated")
	if e.Headers().Get("Origin") == "mutated" {
		t.Errorf("Expected Headers to return a copy")
	}
}
