package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewHMACService("secret", time.Hour)
	id := uuid.New()

	token, exp, err := svc.GenerateAccessToken(id, "dev@example.com")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.CandidateID)
	assert.Equal(t, "dev@example.com", claims.Email)
}

func TestValidateExpired(t *testing.T) {
	svc := NewHMACService("secret", time.Minute)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := svc.GenerateAccessToken(uuid.New(), "")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.True(t, errors.Is(err, ErrTokenExpired))
}

func TestValidateWrongSecret(t *testing.T) {
	token, _, err := NewHMACService("one", time.Hour).GenerateAccessToken(uuid.New(), "")
	require.NoError(t, err)

	_, err = NewHMACService("two", time.Hour).ValidateToken(token)
	assert.True(t, errors.Is(err, ErrTokenInvalid))
}

func TestGenerateRequiresSecret(t *testing.T) {
	_, _, err := NewHMACService("", time.Hour).GenerateAccessToken(uuid.New(), "")
	assert.True(t, errors.Is(err, ErrTokenInvalid))
}
