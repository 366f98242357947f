package goform

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Values is a decoded device response. The device encodes almost everything
// as strings, but numbers and booleans do appear.
type Values map[string]any

// Fields is a command payload destined for the write endpoint.
type Fields map[string]string

// String returns the value for key rendered as a string, or "" if absent.
func (v Values) String(key string) string {
	switch x := v[key].(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case json.Number:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// Has reports whether key holds a truthy value. Absent, nil, "", false, 0 and
// empty containers all count as "value not present".
func (v Values) Has(key string) bool {
	switch x := v[key].(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case float64:
		return x != 0
	case []any:
		return len(x) > 0
	case map[string]any:
		return len(x) > 0
	default:
		return true
	}
}

// Int parses key as a base-10 integer. ok is false when the value is absent
// or not an integer.
func (v Values) Int(key string) (n int64, ok bool) {
	if !v.Has(key) {
		return 0, false
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v.String(key)), 10, 64)
	return n, err == nil
}

// Float parses key as a float.
func (v Values) Float(key string) (f float64, ok bool) {
	if !v.Has(key) {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v.String(key)), 64)
	return f, err == nil
}

// Bool parses key with strconv.ParseBool semantics ("1", "true", "0", ...).
// Unlike Has, a present "0" yields (false, true).
func (v Values) Bool(key string) (b bool, ok bool) {
	raw, present := v[key]
	if !present || raw == nil {
		return false, false
	}
	if x, isBool := raw.(bool); isBool {
		return x, true
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v.String(key)))
	return b, err == nil
}

// Clone returns a shallow copy.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Clone returns a copy of the payload.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, val := range f {
		out[k] = val
	}
	return out
}

// decodeValues decodes a response body. Empty or undecodable bodies yield an
// empty Values: the device sometimes answers a successful request with nothing.
func decodeValues(body []byte) Values {
	var result Values
	if len(strings.TrimSpace(string(body))) == 0 {
		return Values{}
	}
	if err := json.Unmarshal(body, &result); err != nil || result == nil {
		return Values{}
	}
	return result
}
