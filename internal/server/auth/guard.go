package auth

import (
	"context"
	"crypto/subtle"
	"strings"

	"github.com/dmitrijs2005/greencareers/internal/common"
	"github.com/dmitrijs2005/greencareers/internal/server/models"
)

// IdentityResolver turns a verified bearer token into the identity it names.
type IdentityResolver interface {
	ResolveFromToken(ctx context.Context, token string) (*models.Identity, error)
}

// Guard admits callers by shared secret or by bearer token. Every rejection
// is reported as common.ErrorUnauthorized.
type Guard struct {
	apiKey   string
	resolver IdentityResolver
}

func NewGuard(apiKey string, r IdentityResolver) *Guard {
	return &Guard{apiKey: apiKey, resolver: r}
}

// CheckSharedSecret requires presented to equal the configured key exactly.
// An empty configured key rejects everyone.
func (g *Guard) CheckSharedSecret(presented string) error {
	if g.apiKey == "" || presented == "" {
		return common.ErrorUnauthorized
	}
	if subtle.ConstantTimeCompare([]byte(presented), []byte(g.apiKey)) != 1 {
		return common.ErrorUnauthorized
	}
	return nil
}

// Authenticate accepts an "Authorization: Bearer <token>" value and returns
// the identity the token resolves to.
func (g *Guard) Authenticate(ctx context.Context, authorization string) (*models.Identity, error) {
	token, ok := BearerToken(authorization)
	if !ok {
		return nil, common.ErrorUnauthorized
	}
	identity, err := g.resolver.ResolveFromToken(ctx, token)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}
	return identity, nil
}

// BearerToken extracts the token from an authorization value. The scheme is
// matched case-insensitively.
func BearerToken(authorization string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authorization), " ")
	if !ok || !strings.EqualFold(scheme, common.BearerScheme) {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}

type ctxKey string

const identityKey ctxKey = "identity"

// WithIdentity stores the authenticated identity on ctx.
func WithIdentity(ctx context.Context, identity *models.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext returns the identity stored by WithIdentity.
func IdentityFromContext(ctx context.Context) (*models.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*models.Identity)
	return identity, ok && identity != nil
}
