package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telemind_backend/pkg/apperrors"
)

func TestTokenManager_IssueAndVerify(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, err := issuer.Issue("user-123")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestTokenManager_Expired(t *testing.T) {
	m := NewTokenManager("test-secret", -time.Minute)

	token, err := m.Issue("user-123")
	require.NoError(t, err)

	_, err = m.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestTokenManager_Malformed(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := m.Verify(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken, "token=%q", token)
	}
}
