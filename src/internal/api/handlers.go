package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/maksimkurb/zte-goform/src/internal/domain"
	"github.com/maksimkurb/zte-goform/src/internal/goform"
	"github.com/maksimkurb/zte-goform/src/internal/log"
	"github.com/maksimkurb/zte-goform/src/internal/models"
)

// Handler manages all API endpoints and dependencies.
type Handler struct {
	deps    *domain.AppDependencies
	version string
}

// NewHandler creates a new API handler.
func NewHandler(deps *domain.AppDependencies, version string) *Handler {
	return &Handler{deps: deps, version: version}
}

func (h *Handler) client() domain.DeviceClient {
	return h.deps.DeviceClient()
}

// Query reads raw keys.
// GET /api/v1/query?keys=a,b
func (h *Handler) Query(w http.ResponseWriter, r *http.Request) {
	keys := splitKeys(r.URL.Query()["keys"])

	values, err := h.client().Query(keys)
	if err != nil {
		WriteDeviceError(w, err)
		return
	}
	writeJSONData(w, QueryResponse{Values: values})
}

// splitKeys accepts both keys=a,b and keys=a&keys=b, keeping order.
func splitKeys(params []string) []string {
	var keys []string
	for _, p := range params {
		keys = append(keys, strings.Split(p, ",")...)
	}
	return keys
}

// Command applies a raw command.
// POST /api/v1/command
func (h *Handler) Command(w http.ResponseWriter, r *http.Request) {
	var body map[string]interface{}
	if err := decodeJSON(r, &body); err != nil {
		WriteInvalidRequest(w, "Invalid JSON body: "+err.Error())
		return
	}

	fields, err := fieldsFromJSON(body)
	if err != nil {
		WriteInvalidRequest(w, err.Error())
		return
	}

	ok, err := h.client().Command(fields)
	if err != nil {
		WriteDeviceError(w, err)
		return
	}
	log.Infof("Command %s: success=%v", fields[goform.FieldGoformID], ok)
	writeJSONData(w, CommandResponse{Success: ok})
}

// fieldsFromJSON flattens scalar JSON values into form fields.
func fieldsFromJSON(body map[string]interface{}) (goform.Fields, error) {
	fields := make(goform.Fields, len(body))
	for k, v := range body {
		switch x := v.(type) {
		case string:
			fields[k] = x
		case bool:
			fields[k] = strconv.FormatBool(x)
		case float64:
			fields[k] = strconv.FormatFloat(x, 'f', -1, 64)
		default:
			return nil, fmt.Errorf("field %q must be a string, number or boolean", k)
		}
	}
	return fields, nil
}

// DataUsage returns plan usage.
// GET /api/v1/datausage
func (h *Handler) DataUsage(w http.ResponseWriter, r *http.Request) {
	usage, err := models.FetchDataUsage(h.client())
	if err != nil {
		WriteDeviceError(w, err)
		return
	}
	writeJSONData(w, usage)
}

// Connection returns WAN state.
// GET /api/v1/connection
func (h *Handler) Connection(w http.ResponseWriter, r *http.Request) {
	conn, err := models.FetchConnection(h.client())
	if err != nil {
		WriteDeviceError(w, err)
		return
	}
	writeJSONData(w, conn.Info())
}

// ConnectionAction switches the WAN link.
// POST /api/v1/connection/{action}
func (h *Handler) ConnectionAction(w http.ResponseWriter, r *http.Request) {
	action := chi.URLParam(r, "action")

	var (
		ok  bool
		err error
	)
	switch action {
	case "connect":
		ok, err = models.Connect(h.client())
	case "disconnect":
		ok, err = models.Disconnect(h.client())
	default:
		WriteNotFound(w, "action "+strconv.Quote(action))
		return
	}
	if err != nil {
		WriteDeviceError(w, err)
		return
	}
	log.Infof("Connection %s: success=%v", action, ok)
	writeJSONData(w, CommandResponse{Success: ok})
}

// Auth probes the session.
// GET /api/v1/auth
func (h *Handler) Auth(w http.ResponseWriter, r *http.Request) {
	writeJSONData(w, AuthResponse{Authenticated: h.client().IsAuthenticated()})
}

// Login authenticates the session if needed.
// POST /api/v1/auth
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if err := h.client().Login(); err != nil {
		WriteDeviceError(w, err)
		return
	}
	writeJSONData(w, AuthResponse{Authenticated: h.client().IsAuthenticated()})
}

// ClearCache drops cached query responses.
// DELETE /api/v1/cache
func (h *Handler) ClearCache(w http.ResponseWriter, r *http.Request) {
	h.client().ClearCache()
	w.WriteHeader(http.StatusNoContent)
}

// CheckHealth reports liveness without touching the device.
// GET /health
func (h *Handler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	writeJSONData(w, HealthCheckResponse{Healthy: true, Version: h.version})
}

// writeJSON writes a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(DataResponse{Data: data}); err != nil {
		log.Warnf("Failed to write response: %v", err)
	}
}

// writeJSONData writes a successful JSON response with data.
func writeJSONData(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}

// decodeJSON decodes JSON from the request body.
func decodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
