package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// ErrInvalidToken is returned when a token fails signature or expiry
// verification.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the claim shape carried by both access and refresh tokens:
// the admin id in the subject plus the admin email.
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Manager mints and verifies the two stateless bearer credentials of the
// authority. Access and refresh tokens are signed with independent
// signers so a leaked refresh secret cannot forge access tokens and vice
// versa. Neither token is tracked server-side; verification is signature
// plus expiry only.
type Manager struct {
	accessSigner  Signer
	refreshSigner Signer
}

func NewManager(accessSigner, refreshSigner Signer) *Manager {
	return &Manager{
		accessSigner:  accessSigner,
		refreshSigner: refreshSigner,
	}
}

// MintAccessToken creates a signed access token for the admin with the
// given lifetime.
func (m *Manager) MintAccessToken(adminID, email string, expiry time.Duration) (string, error) {
	signed, err := m.accessSigner.Sign(m.newClaims(adminID, email, expiry))
	if err != nil {
		return "", errors.Wrap(err, "[Manager.MintAccessToken] sign")
	}
	return signed, nil
}

// MintRefreshToken creates a signed refresh token for the admin with the
// given lifetime.
func (m *Manager) MintRefreshToken(adminID, email string, expiry time.Duration) (string, error) {
	signed, err := m.refreshSigner.Sign(m.newClaims(adminID, email, expiry))
	if err != nil {
		return "", errors.Wrap(err, "[Manager.MintRefreshToken] sign")
	}
	return signed, nil
}

// VerifyAccessToken parses and validates an access token, returning its
// claims. Any parse, signature or expiry failure maps to ErrInvalidToken.
func (m *Manager) VerifyAccessToken(raw string) (*Claims, error) {
	return verify(raw, m.accessSigner)
}

// VerifyRefreshToken parses and validates a refresh token, returning its
// claims.
func (m *Manager) VerifyRefreshToken(raw string) (*Claims, error) {
	return verify(raw, m.refreshSigner)
}

func (m *Manager) newClaims(adminID, email string, expiry time.Duration) *Claims {
	now := NowTimeFunc()
	return &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			ID:        uuid.New().String(),
		},
	}
}

func verify(raw string, signer Signer) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, signer.GetVerificationKey,
		jwt.WithValidMethods([]string{signer.GetSigningMethod().Alg()}),
		jwt.WithTimeFunc(func() time.Time { return NowTimeFunc() }),
	)
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
