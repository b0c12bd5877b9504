package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rojgarhub/backend/internal/pkg/apperrors"
	"github.com/rojgarhub/backend/internal/pkg/auth"
)

func newAuthService(t *testing.T, password string) *AuthService {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "rojgarhub-test",
	})
	return NewAuthService(hash, jwtService)
}

func TestLogin_Success(t *testing.T) {
	svc := newAuthService(t, "correct horse battery staple")

	resp, err := svc.Login("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, 3600, resp.ExpiresIn)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newAuthService(t, "correct horse battery staple")

	_, err := svc.Login("guess")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
