package goform

import "time"

const (
	// QueryEndpoint is the bulk read path, relative to the base URL.
	QueryEndpoint = "goform/goform_get_cmd_process"
	// CommandEndpoint is the write path, relative to the base URL.
	CommandEndpoint = "goform/goform_set_cmd_process"

	DefaultTimeout  = 10 * time.Second
	DefaultRetries  = 5
	DefaultCacheTTL = 5 * time.Second

	urlMemoSize = 32
)

// Header values the device's web server expects from its own UI.
const (
	headerAccept         = "application/json, text/javascript, */*; q=0.01"
	headerAcceptLanguage = "en-US,en;q=0.5"
	formContentType      = "application/x-www-form-urlencoded; charset=UTF-8"
)

// Command form fields.
const (
	FieldGoformID    = "goformId"
	FieldIsTest      = "isTest"
	FieldNotCallback = "notCallback"
	FieldPassword    = "password"
	FieldAD          = "AD"
)

// Device keys used by the session layer itself.
const (
	KeyHardwareVersion = "hardware_version"
	KeyChallenge       = "RD"
	KeyLanguage        = "Language"
	KeyWaInnerVersion  = "wa_inner_version"
	KeyCrVersion       = "cr_version"

	resultKey = "result"
)

// GoformLogin is the goformId of the login command.
const GoformLogin = "LOGIN"

// IsSuccess reports whether a command response signals success: the result
// field must be the literal string "0" or "success".
func IsSuccess(v Values) bool {
	result, ok := v[resultKey].(string)
	return ok && (result == "0" || result == "success")
}
