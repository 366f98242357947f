// Package api provides a local REST bridge to the router.
//
// The bridge exposes the goform client over HTTP so that scripts and
// dashboards can read device state without speaking goform themselves.
// Every request goes through the same client, so callers share its query
// cache, device lock and session.
//
// # Endpoints
//
//	GET  /api/v1/query?keys=a,b          raw query, keys in order
//	POST /api/v1/command                 raw command, JSON object of fields
//	GET  /api/v1/datausage               data plan usage
//	GET  /api/v1/connection              WAN connection state
//	POST /api/v1/connection/{action}     connect | disconnect
//	GET  /api/v1/auth                    session authentication probe
//	POST /api/v1/auth                    log in unless already authenticated
//	DELETE /api/v1/cache                 drop cached query responses
//	GET  /health                         liveness
//
// # Response Format
//
// All successful responses wrap data in a "data" field:
//
//	{
//	  "data": { /* response payload */ }
//	}
//
// Error responses use the following format:
//
//	{
//	  "error": {
//	    "code": "device_timeout",
//	    "message": "Human-readable error message"
//	  }
//	}
//
// Device errors map to statuses by kind: invalid input 400, rejected
// credential 401, private value without a session 403, transport failure
// 502, timeout 504.
package api
