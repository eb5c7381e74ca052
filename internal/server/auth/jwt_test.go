package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/greencareers/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCodec(t *testing.T, key, alg string, now time.Time) *TokenCodec {
	t.Helper()
	c, err := NewTokenCodec([]byte(key), alg)
	require.NoError(t, err)
	c.now = func() time.Time { return now }
	return c
}

func TestTokenCodec_IssueAndVerify(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for _, alg := range []string{"HS256", "HS384", "HS512"} {
		t.Run(alg, func(t *testing.T) {
			c := newCodec(t, "super-secret", alg, now)

			tok, err := c.Issue(TokenClaims{SubjectID: "id-1", Email: "a@b.com"}, 30*time.Minute)
			require.NoError(t, err)

			got, err := c.Verify(tok)
			require.NoError(t, err)

			want := &TokenClaims{SubjectID: "id-1", Email: "a@b.com", ExpiresAt: now.Add(30 * time.Minute)}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("claims mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenCodec_IgnoresSuppliedExpiry(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	c := newCodec(t, "k", "HS256", now)

	tok, err := c.Issue(TokenClaims{SubjectID: "id", ExpiresAt: now.Add(100 * time.Hour)}, time.Minute)
	require.NoError(t, err)

	got, err := c.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Minute), got.ExpiresAt)
}

func TestTokenCodec_Expired(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	issuer := newCodec(t, "secret", "HS256", now)

	tok, err := issuer.Issue(TokenClaims{SubjectID: "u1"}, time.Minute)
	require.NoError(t, err)

	later := newCodec(t, "secret", "HS256", now.Add(2*time.Minute))
	_, err = later.Verify(tok)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestTokenCodec_WrongSecret(t *testing.T) {
	t.Parallel()

	now := time.Now()
	tok, err := newCodec(t, "right-secret", "HS256", now).Issue(TokenClaims{SubjectID: "u2"}, time.Hour)
	require.NoError(t, err)

	_, err = newCodec(t, "wrong-secret", "HS256", now).Verify(tok)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestTokenCodec_TamperedPayload(t *testing.T) {
	t.Parallel()

	c := newCodec(t, "k", "HS256", time.Now())
	tok, err := c.Issue(TokenClaims{SubjectID: "u3"}, time.Hour)
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	other, err := c.Issue(TokenClaims{SubjectID: "someone-else"}, time.Hour)
	require.NoError(t, err)
	parts[1] = strings.Split(other, ".")[1]

	got, err := c.Verify(strings.Join([]string{parts[0], parts[1], strings.Split(tok, ".")[2]}, "."))
	assert.Nil(t, got)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestTokenCodec_RejectsOtherAlgorithm(t *testing.T) {
	t.Parallel()

	now := time.Now()
	tok, err := newCodec(t, "k", "HS512", now).Issue(TokenClaims{SubjectID: "u"}, time.Hour)
	require.NoError(t, err)

	_, err = newCodec(t, "k", "HS256", now).Verify(tok)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestTokenCodec_MissingSubjectOrExpiry(t *testing.T) {
	t.Parallel()

	key := []byte("k")
	c := newCodec(t, "k", "HS256", time.Now())

	noSub, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString(key)
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "u"},
	}).SignedString(key)
	require.NoError(t, err)

	for name, tok := range map[string]string{"no subject": noSub, "no expiry": noExp} {
		t.Run(name, func(t *testing.T) {
			_, err := c.Verify(tok)
			assert.ErrorIs(t, err, common.ErrInvalidToken)
		})
	}
}

func TestTokenCodec_Malformed(t *testing.T) {
	t.Parallel()

	c := newCodec(t, "k", "HS256", time.Now())
	for _, tok := range []string{"", "not.a.jwt", "abc"} {
		_, err := c.Verify(tok)
		assert.ErrorIs(t, err, common.ErrInvalidToken, tok)
	}
}

func TestNewTokenCodec_Rejects(t *testing.T) {
	t.Parallel()

	_, err := NewTokenCodec([]byte("k"), "RS256")
	assert.Error(t, err)

	_, err = NewTokenCodec(nil, "HS256")
	assert.Error(t, err)
}
