// Package services contains the application services of the client: the
// session bootstrap that restores persisted state on screen activation, and
// the login service that drives a full authentication attempt (validation,
// remote exchange, persistence, state propagation).
//
// Both services treat the local cache as best-effort: a failed read or write
// is logged and never surfaced to the user, and never blocks the flow that
// follows it.
package services
