// Package models turns raw goform responses into typed views of the device:
// data plan usage and WAN connection state.
//
// Models read through a goform.Session, so they share its cache and locking
// and work the same over public, private and externally supplied sessions.
//
// Values the device only reveals to logged-in clients are "private". Reading
// one that came back empty from an unauthenticated session yields an
// ACCESS_ERROR instead of a silent zero.
package models
