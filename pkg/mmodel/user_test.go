package mmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	role, err := ParseRole("Scout")
	assert.NoError(t, err)
	assert.Equal(t, RoleScout, role)

	_, err = ParseRole("superuser")
	assert.Error(t, err)
}

func TestRoleOrdering(t *testing.T) {
	assert.True(t, RoleGuest < RoleUser)
	assert.True(t, RoleUser < RoleScout)
	assert.True(t, RoleScout < RoleAdmin)
}

func TestValidatePasswordStrength(t *testing.T) {
	assert.NoError(t, ValidatePasswordStrength("s3cr3t-pass"))
	assert.Error(t, ValidatePasswordStrength("short"))
	assert.Error(t, ValidatePasswordStrength("with space8"))
}

func TestPasswordHashAndVerify(t *testing.T) {
	hash, err := NewPassword("correct-horse")
	require.NoError(t, err)

	assert.True(t, VerifyPassword(hash, "correct-horse"))
	assert.False(t, VerifyPassword(hash, "wrong-horse"))
}
