// Package common defines shared constants and sentinel errors used across the
// client layers. Callers should match these values with errors.Is.
package common

import "errors"

var (
	// ErrorUnauthorized marks a credential rejection by the remote service.
	ErrorUnauthorized = errors.New("unauthorized")
)
