package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token is a signed session token identifying the account that owns a
// browser session.
//
// It embeds [jwt.RegisteredClaims] so it can be passed directly to
// [jwt.ParseWithClaims]. OwnerID is a parsed copy of the "sub" claim.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form stored in the session cookie.
	SignedString string `json:"-"`

	// OwnerID is the account id extracted from the "sub" claim.
	OwnerID int64 `json:"-"`
}

// GetOwnerID parses the "sub" claim as a base-10 int64.
func (t *Token) GetOwnerID() (int64, error) {
	ownerIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting OwnerID from token: %w", err)
	}

	ownerID, err := strconv.ParseInt(ownerIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting OwnerID from token to int64: %w", err)
	}

	return ownerID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
