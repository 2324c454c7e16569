// Package session holds the shared authentication state of the client.
//
// The Store is the one authoritative slot for the authenticated identity:
// created once at startup, replaced wholesale through Replace, readable from
// anywhere, and broadcast to subscribers on every change. Token expiry
// checking lives here too since the token's lifetime is what decides whether
// a restored session is still usable.
package session
