package models

import "github.com/golang-jwt/jwt/v5"

// CustomClaims identifies the merchant client a bearer token was issued to.
// The subject is "client:<client_id>".
type CustomClaims struct {
	jwt.RegisteredClaims
	ClientID   int64  `json:"client_id"`
	ClientName string `json:"client_name,omitempty"`
}

// HasClient reports whether the claims name a usable client
func (c *CustomClaims) HasClient() bool {
	return c != nil && c.ClientID > 0
}
