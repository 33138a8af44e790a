package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func mint(t *testing.T, method jwt.SigningMethod, key any, claims jwt.RegisteredClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func validClaims() jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Subject:   "admin-1",
		Issuer:    "rundi",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
}

func TestJWTVerifier(t *testing.T) {
	v := NewJWTVerifier(secret, "rundi")

	t.Run("valid", func(t *testing.T) {
		id, err := v.Verify(context.Background(), mint(t, jwt.SigningMethodHS256, []byte(secret), validClaims()))
		require.NoError(t, err)
		assert.Equal(t, "admin-1", id)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := v.Verify(context.Background(), mint(t, jwt.SigningMethodHS256, []byte("other"), validClaims()))
		assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})

	t.Run("expired", func(t *testing.T) {
		c := validClaims()
		c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
		_, err := v.Verify(context.Background(), mint(t, jwt.SigningMethodHS256, []byte(secret), c))
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		c := validClaims()
		c.Issuer = "someone-else"
		_, err := v.Verify(context.Background(), mint(t, jwt.SigningMethodHS256, []byte(secret), c))
		assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
	})

	t.Run("other algorithm", func(t *testing.T) {
		_, err := v.Verify(context.Background(), mint(t, jwt.SigningMethodHS512, []byte(secret), validClaims()))
		assert.Error(t, err)
	})

	t.Run("no subject", func(t *testing.T) {
		c := validClaims()
		c.Subject = ""
		_, err := v.Verify(context.Background(), mint(t, jwt.SigningMethodHS256, []byte(secret), c))
		assert.ErrorIs(t, err, errMissingSubject)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := v.Verify(context.Background(), "not-a-jwt")
		assert.Error(t, err)
	})
}

type fakeAuth struct {
	tok *auth.Token
	err error
}

func (f fakeAuth) VerifyIDToken(context.Context, string) (*auth.Token, error) {
	return f.tok, f.err
}

func TestFirebaseVerifier(t *testing.T) {
	id, err := NewFirebaseVerifier(fakeAuth{tok: &auth.Token{UID: "uid-1"}}).Verify(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", id)

	_, err = NewFirebaseVerifier(fakeAuth{err: errors.New("expired")}).Verify(context.Background(), "x")
	assert.Error(t, err)

	_, err = NewFirebaseVerifier(fakeAuth{tok: &auth.Token{}}).Verify(context.Background(), "x")
	assert.ErrorIs(t, err, errMissingSubject)
}
