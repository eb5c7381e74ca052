package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/greencareers/internal/common"
	"github.com/dmitrijs2005/greencareers/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolver struct {
	token string
	out   *models.Identity
	err   error
}

func (f *fakeResolver) ResolveFromToken(_ context.Context, token string) (*models.Identity, error) {
	f.token = token
	if f.err != nil {
		return nil, f.err
	}
	return f.out, nil
}

func TestGuard_CheckSharedSecret(t *testing.T) {
	t.Parallel()

	g := NewGuard("k1", nil)
	assert.NoError(t, g.CheckSharedSecret("k1"))
	assert.ErrorIs(t, g.CheckSharedSecret(""), common.ErrorUnauthorized)
	assert.ErrorIs(t, g.CheckSharedSecret("k2"), common.ErrorUnauthorized)
	assert.ErrorIs(t, g.CheckSharedSecret("K1"), common.ErrorUnauthorized)
	assert.ErrorIs(t, g.CheckSharedSecret("k1 "), common.ErrorUnauthorized)
}

func TestGuard_EmptyConfiguredKeyRejectsAll(t *testing.T) {
	t.Parallel()

	g := NewGuard("", nil)
	assert.ErrorIs(t, g.CheckSharedSecret(""), common.ErrorUnauthorized)
	assert.ErrorIs(t, g.CheckSharedSecret("anything"), common.ErrorUnauthorized)
}

func TestGuard_Authenticate(t *testing.T) {
	t.Parallel()

	want := &models.Identity{ID: "id-1"}
	r := &fakeResolver{out: want}
	g := NewGuard("k", r)

	got, err := g.Authenticate(context.Background(), "Bearer tok-1")
	require.NoError(t, err)
	assert.Same(t, want, got)
	assert.Equal(t, "tok-1", r.token)
}

func TestGuard_AuthenticateRejects(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		header string
		err    error
	}{
		"missing header":  {header: ""},
		"no scheme":       {header: "tok"},
		"wrong scheme":    {header: "Basic dXNlcjpwdw=="},
		"empty token":     {header: "Bearer   "},
		"invalid token":   {header: "Bearer x", err: common.ErrInvalidToken},
		"user gone":       {header: "Bearer x", err: common.ErrUserNotFound},
		"store exploding": {header: "Bearer x", err: errors.New("boom")},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			g := NewGuard("k", &fakeResolver{out: &models.Identity{ID: "x"}, err: tc.err})
			got, err := g.Authenticate(context.Background(), tc.header)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, common.ErrorUnauthorized)
		})
	}
}

func TestBearerToken(t *testing.T) {
	t.Parallel()

	tok, ok := BearerToken("bearer abc")
	assert.True(t, ok)
	assert.Equal(t, "abc", tok)

	tok, ok = BearerToken("  BEARER   abc  ")
	assert.True(t, ok)
	assert.Equal(t, "abc", tok)
}

func TestIdentityContext(t *testing.T) {
	t.Parallel()

	_, ok := IdentityFromContext(context.Background())
	assert.False(t, ok)

	id := &models.Identity{ID: "i"}
	got, ok := IdentityFromContext(WithIdentity(context.Background(), id))
	assert.True(t, ok)
	assert.Same(t, id, got)
}
