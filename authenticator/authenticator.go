package authenticator

import (
	"context"
)

// Token represents an authentication token
type Token struct {
	AccessToken  string
	RefreshToken string
	IDToken      string
	Expiry       int64
}

// Claims represents user claims from the ID token
type Claims map[string]interface{}

// Provider interface abstracts the external identity provider. The
// provider owns the credentials; this service only consumes the
// resolved identity.
type Provider interface {
	GetAuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*Token, error)
	GetClaims(ctx context.Context, token *Token) (Claims, error)
}

// Subject returns the stable user id from the claims
func (c Claims) Subject() string {
	return c.str("sub")
}

// Email returns the email claim
func (c Claims) Email() string {
	return c.str("email")
}

// Name returns the best available display name: name, then nickname,
// then email, then subject.
func (c Claims) Name() string {
	for _, key := range []string{"name", "nickname"} {
		if v := c.str(key); v != "" {
			return v
		}
	}
	if v := c.Email(); v != "" {
		return v
	}
	return c.Subject()
}

func (c Claims) str(key string) string {
	if v, ok := c[key].(string); ok {
		return v
	}
	return ""
}
