package auth

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/greencareers/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is what a bearer token asserts about its holder.
type TokenClaims struct {
	SubjectID string
	Email     string
	ExpiresAt time.Time
}

// Claims is the wire form: registered claims plus the holder's email.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// TokenCodec signs and verifies HMAC JWTs with a single shared key.
type TokenCodec struct {
	key    []byte
	method jwt.SigningMethod
	now    func() time.Time
}

// NewTokenCodec accepts HS256, HS384 or HS512.
func NewTokenCodec(key []byte, alg string) (*TokenCodec, error) {
	var m jwt.SigningMethod
	switch alg {
	case jwt.SigningMethodHS256.Alg():
		m = jwt.SigningMethodHS256
	case jwt.SigningMethodHS384.Alg():
		m = jwt.SigningMethodHS384
	case jwt.SigningMethodHS512.Alg():
		m = jwt.SigningMethodHS512
	default:
		return nil, fmt.Errorf("unsupported token algorithm %q", alg)
	}
	if len(key) == 0 {
		return nil, fmt.Errorf("empty token signing key")
	}
	return &TokenCodec{key: key, method: m, now: time.Now}, nil
}

// Issue signs claims with an expiry of now+ttl. Any ExpiresAt already set
// on claims is ignored.
func (c *TokenCodec) Issue(claims TokenClaims, ttl time.Duration) (string, error) {
	now := c.now()
	token := jwt.NewWithClaims(c.method, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.SubjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: claims.Email,
	})

	s, err := token.SignedString(c.key)
	if err != nil {
		return "", err
	}
	return s, nil
}

// Verify checks signature, algorithm and expiry. Every failure yields
// common.ErrInvalidToken.
func (c *TokenCodec) Verify(tokenString string) (*TokenClaims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return c.key, nil
	},
		jwt.WithValidMethods([]string{c.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil || !token.Valid {
		return nil, common.ErrInvalidToken
	}
	if claims.Subject == "" || claims.ExpiresAt == nil {
		return nil, common.ErrInvalidToken
	}

	return &TokenClaims{
		SubjectID: claims.Subject,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
