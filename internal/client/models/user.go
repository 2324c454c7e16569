// Package models holds client-side data records.
package models

// User is the identity record returned by the authentication service.
// It is replaced wholesale in the session store, never mutated in place.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Mobile string `json:"mobile,omitempty"`
}
