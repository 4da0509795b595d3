package jwt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateToken(userID, "cashier@example.com", "Cashier One", "cashier")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "cashier@example.com", claims.Email)
	assert.Equal(t, "Cashier One", claims.Name)
	assert.Equal(t, "cashier", claims.Role)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	token, err := GenerateToken(uuid.New(), "a@b.c", "A", "admin")
	require.NoError(t, err)

	_, err = ValidateToken(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
