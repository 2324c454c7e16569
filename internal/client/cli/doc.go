// Package cli is the interactive front end of the client. It stands in for
// the mobile UI: it renders the login form, keeps the per-field invalid
// flags, presents the authentication alert, and "navigates" to the
// authenticated area once a session is established.
//
// The core flows live in the services package; this package only reads
// input, prints output, and reacts to the outcomes the services return.
package cli
