package tokens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserJWT(t *testing.T) {
	key := []byte("secret")

	token, err := GenerateUserJWT(42, "bakery", time.Minute, key)
	require.NoError(t, err)

	claims, err := ValidateUserJWT(token, key)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.ID)
	assert.Equal(t, "bakery", claims.Username)

	_, err = ValidateUserJWT(token, []byte("other"))
	require.ErrorIs(t, err, ErrInvalidToken)

	expired, err := GenerateUserJWT(42, "bakery", -time.Minute, key)
	require.NoError(t, err)
	_, err = ValidateUserJWT(expired, key)
	require.ErrorIs(t, err, ErrTokenExpired)

	_, err = ValidateUserJWT("not a token", key)
	require.ErrorIs(t, err, ErrInvalidToken)
}
