package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundtrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)
	assert.True(t, CheckPasswordHash("correct horse battery", hash))
	assert.False(t, CheckPasswordHash("wrong password", hash))
}

func TestJWTRoundtrip(t *testing.T) {
	token, err := GenerateJWT("Principal", "principal@school.edu", "admin", time.Hour)
	require.NoError(t, err)

	email, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "principal@school.edu", email)
}

func TestExpiredJWTRejected(t *testing.T) {
	token, err := GenerateJWT("Principal", "principal@school.edu", "admin", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestTamperedJWTRejected(t *testing.T) {
	token, err := GenerateJWT("Principal", "principal@school.edu", "admin", time.Hour)
	require.NoError(t, err)

	_, err = ValidateJWT(token + "x")
	assert.Error(t, err)
}
