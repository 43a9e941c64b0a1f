// Package apperr defines the sentinel errors that cross the service
// boundary. Handlers classify with errors.Is and map each to an HTTP status;
// everything unmatched is a 500.
package apperr

import "errors"

var (
	// ErrValidation covers missing or malformed request fields (400).
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateEmail is returned by registration when the email is taken (400).
	ErrDuplicateEmail = errors.New("email already taken")

	// ErrInvalidCredentials is returned by login for an unknown email or a
	// wrong password. The two cases are deliberately indistinguishable (401).
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUnauthorized covers missing, malformed, or expired bearer tokens (401).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidOrExpiredToken is returned by the password-reset flow when no
	// user holds the token or its expiry has passed (400).
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")

	// ErrNotFound covers resources that are absent or owned by a different
	// user. Cross-user access never reports ownership, only absence (404).
	ErrNotFound = errors.New("not found")

	// ErrUpstream covers failures of the AI completion provider (500, logged
	// server-side, generic message to the client).
	ErrUpstream = errors.New("upstream service failure")
)
