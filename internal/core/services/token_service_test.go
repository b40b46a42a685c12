package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskstack/api/internal/core/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenServiceWithSecret("test-secret")
	userID := uuid.New()

	pair, err := svc.Issue(userID)
	require.NoError(t, err)
	require.NotEmpty(t, pair.Access)
	require.NotEmpty(t, pair.Refresh)
	assert.NotEqual(t, pair.Access, pair.Refresh)

	got, err := svc.Verify(pair.Access)
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	got, err = svc.VerifyRefresh(pair.Refresh)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestTokenKindsAreNotInterchangeable(t *testing.T) {
	svc := NewTokenServiceWithSecret("test-secret")

	pair, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	_, err = svc.Verify(pair.Refresh)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	_, err = svc.VerifyRefresh(pair.Access)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenTampering(t *testing.T) {
	svc := NewTokenServiceWithSecret("test-secret")

	pair, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	tampered := pair.Access + "x"
	_, err = svc.Verify(tampered)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	_, err = svc.Verify("not-a-token")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenWrongSecret(t *testing.T) {
	pair, err := NewTokenServiceWithSecret("secret-a").Issue(uuid.New())
	require.NoError(t, err)

	_, err = NewTokenServiceWithSecret("secret-b").Verify(pair.Access)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenExpired(t *testing.T) {
	svc := NewTokenServiceWithSecret("test-secret")

	claims := jwt.MapClaims{
		"sub":        uuid.New().String(),
		"token_type": tokenTypeAccess,
		"exp":        time.Now().Add(-time.Minute).Unix(),
		"iat":        time.Now().Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(expired)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
