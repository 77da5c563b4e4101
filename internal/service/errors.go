package service

import "errors"

var (
	// ErrInvalidDataProvided marks malformed or missing inbound fields.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned for both "unknown email" and "wrong
	// password" so callers cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNoFieldsToUpdate is returned when a profile update carries no
	// mutable field at all.
	ErrNoFieldsToUpdate = errors.New("no fields to update")

	// ErrTokenCreationFailed wraps JWT signing failures.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid normalises every token validation failure
	// (bad signature, expired, malformed subject) so that callers never
	// learn which check rejected the token.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
