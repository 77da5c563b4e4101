package models

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims is the claim set carried by every issued session token.
//
// It extends the standard RFC 7519 registered claims (sub, exp, iat, iss,
// jti) with the user's contact email. The subject claim holds the user's
// UUID in its canonical string form.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Email is the contact address of the user the token was issued for.
	Email string `json:"email,omitempty"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
//
// UserID and Email are parsed copies of the "sub" and "email" claims,
// populated during issuance or after successful validation, so callers do
// not need to re-parse claim strings.
type Token struct {
	// Token is the underlying JWT token used for signing and claim
	// inspection. Excluded from JSON serialization because only the compact
	// string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID uuid.UUID `json:"-"`

	// Email is the contact address extracted from the "email" claim.
	Email string `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" (subject)
// claim and parses it as a UUID.
//
// Returns an error if the subject claim is missing, empty, or is not a
// well-formed UUID.
func (t *Token) GetUserID() (uuid.UUID, error) {
	subject, err := t.Claims.GetSubject()
	if err != nil {
		return uuid.Nil, err
	}

	return uuid.Parse(subject)
}
