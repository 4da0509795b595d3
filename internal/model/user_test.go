package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndCheckPassword(t *testing.T) {
	user := &User{Email: "cashier@example.com"}

	require.NoError(t, user.SetPassword("s3cret"))
	assert.NotEqual(t, "s3cret", user.Password)

	assert.True(t, user.CheckPassword("s3cret"))
	assert.False(t, user.CheckPassword("wrong"))
}
