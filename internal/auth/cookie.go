package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the cookie holding the signed session token
const CookieName = "session_token"

const cookieIssuer = "crm-backend"

var errMalformedCookie = errors.New("malformed session cookie")

// CookieCodec signs session tokens into cookie values and reads them back.
// The session store stays authoritative; the signature only rejects forged
// values before they reach the database.
type CookieCodec struct {
	secret []byte
	now    func() time.Time
}

// NewCookieCodec creates a codec signing with secret
func NewCookieCodec(secret string) *CookieCodec {
	return &CookieCodec{secret: []byte(secret), now: time.Now}
}

// WithClock replaces the codec's time source
func (c *CookieCodec) WithClock(now func() time.Time) *CookieCodec {
	c.now = now
	return c
}

// Encode wraps a session token into an HS256 JWT expiring with the session
func (c *CookieCodec) Encode(token string, expiresAt time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:        token,
		Issuer:    cookieIssuer,
		IssuedAt:  jwt.NewNumericDate(c.now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign session cookie: %w", err)
	}
	return signed, nil
}

// Decode validates a cookie value and returns the session token it carries
func (c *CookieCodec) Decode(value string) (string, error) {
	if value == "" {
		return "", errMalformedCookie
	}
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(value, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(cookieIssuer),
		jwt.WithTimeFunc(c.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", err
	}
	if claims.ID == "" {
		return "", errMalformedCookie
	}
	return claims.ID, nil
}
