package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminAuthLogin(t *testing.T) {
	service, err := NewAdminAuthService("secret")
	require.NoError(t, err)

	assert.NoError(t, service.Login("secret"))
	assert.ErrorIs(t, service.Login("wrong"), ErrPasswordIsIncorrect)
}
