package token_test

import (
	"testing"
	"time"

	"github.com/bloglane/admin-auth-server/token"
	"github.com/stretchr/testify/require"
)

const (
	accessSecret  = "access-secret"
	refreshSecret = "refresh-secret"
	testAdminID   = "admin-1"
	testEmail     = "john.doe@example.com"
)

func newManager() *token.Manager {
	return token.NewManager(
		token.NewHMACSigner(accessSecret),
		token.NewHMACSigner(refreshSecret),
	)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := newManager()

	raw, err := m.MintAccessToken(testAdminID, testEmail, 15*time.Minute)
	require.NoError(t, err)

	claims, err := m.VerifyAccessToken(raw)
	require.NoError(t, err)
	require.Equal(t, testAdminID, claims.Subject)
	require.Equal(t, testEmail, claims.Email)
	require.NotEmpty(t, claims.ID)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	m := newManager()

	raw, err := m.MintRefreshToken(testAdminID, testEmail, 30*24*time.Hour)
	require.NoError(t, err)

	claims, err := m.VerifyRefreshToken(raw)
	require.NoError(t, err)
	require.Equal(t, testAdminID, claims.Subject)
}

func TestTokensAreNotInterchangeable(t *testing.T) {
	m := newManager()

	access, err := m.MintAccessToken(testAdminID, testEmail, 15*time.Minute)
	require.NoError(t, err)
	refresh, err := m.MintRefreshToken(testAdminID, testEmail, time.Hour)
	require.NoError(t, err)

	// A refresh token must not pass the access gate, and vice versa.
	_, err = m.VerifyAccessToken(refresh)
	require.ErrorIs(t, err, token.ErrInvalidToken)
	_, err = m.VerifyRefreshToken(access)
	require.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestExpiredTokenRejected(t *testing.T) {
	m := newManager()

	base := time.Now()
	token.NowTimeFunc = func() time.Time { return base }
	defer func() { token.NowTimeFunc = time.Now }()

	raw, err := m.MintAccessToken(testAdminID, testEmail, 15*time.Minute)
	require.NoError(t, err)

	token.NowTimeFunc = func() time.Time { return base.Add(16 * time.Minute) }
	_, err = m.VerifyAccessToken(raw)
	require.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestTamperedTokenRejected(t *testing.T) {
	m := newManager()
	other := token.NewManager(
		token.NewHMACSigner("some-other-secret"),
		token.NewHMACSigner("another-secret"),
	)

	raw, err := other.MintAccessToken(testAdminID, testEmail, 15*time.Minute)
	require.NoError(t, err)

	_, err = m.VerifyAccessToken(raw)
	require.ErrorIs(t, err, token.ErrInvalidToken)

	_, err = m.VerifyAccessToken("not-a-jwt")
	require.ErrorIs(t, err, token.ErrInvalidToken)
}
