// Package goform provides a client for the ZTE LTE/5G router "goform" HTTP API.
//
// The device exposes two endpoints: a bulk read (goform_get_cmd_process) that
// returns a JSON object for a comma-joined list of keys, and a single write
// (goform_set_cmd_process) that accepts a form-encoded command. Its embedded
// web server misbehaves under concurrent reads and writes, silently drops
// login sessions, and occasionally answers with an empty body.
//
// # Components
//
//   - Endpoint: normalized base URL, shared request headers, memoized URL builder
//   - Transport: one HTTP call per attempt, retry on timeout only
//   - QueryCache: short-lived responses keyed by the ordered key list
//   - Authenticator: LOGIN challenge, re-probing, renew-and-retry-once policy
//   - PublicSession / PrivateSession: the two built-in Session strategies
//   - Client: composition root choosing a Session once at construction
//
// # Locking
//
// A single device lock, owned by the Client and passed by pointer to the
// cache and sessions, serializes cache population, every command, and every
// re-authentication. Warm cache hits never take it. Commands invalidate the
// cache before the lock is released, so no reader can observe a value fetched
// before a write it should reflect.
//
// # Example Usage
//
//	client, err := goform.NewClient(goform.Options{
//	    BaseURL:  "http://192.168.0.1/",
//	    Password: "admin",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	values, err := client.Query([]string{"ppp_status", "lte_rsrp"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(values.String("ppp_status"))
//
//	ok, err := client.Command(goform.Fields{"goformId": "CONNECT_NETWORK"})
//
// Any type implementing Session can be supplied through Options.Session to
// replace the built-in HTTP strategies, e.g. a browser-driven bridge for
// firmware that rejects direct POSTs.
package goform
