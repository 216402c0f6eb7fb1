package types

import "github.com/google/uuid"

// TokenClaims carries the identity extracted from a validated JWT.
type TokenClaims struct {
	UserID   uuid.UUID
	Username string
	IsAdmin  bool
}

// TokenPair is the access/refresh pair issued at login.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
