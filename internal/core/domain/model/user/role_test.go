package user_test

import (
	"testing"

	"logistics/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Validate(t *testing.T) {
	t.Run("recognized roles are valid", func(t *testing.T) {
		roles := []user.Role{
			user.RoleUser,
			user.RoleSuperAdmin,
			user.RoleAdmin,
			user.RoleMerchant,
			user.RoleRecipient,
			user.RoleCarrier,
			user.RoleCourier,
		}

		for _, role := range roles {
			require.NoError(t, role.Validate(), "role %s", role)
		}
	})

	t.Run("unknown role is invalid", func(t *testing.T) {
		require.Error(t, user.RoleUnknown.Validate())
		require.Error(t, user.Role(42).Validate())
	})
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "User", user.RoleUser.String())
	assert.Equal(t, "SuperAdmin", user.RoleSuperAdmin.String())
	assert.Equal(t, "Courier", user.RoleCourier.String())
	assert.Equal(t, "Unknown", user.RoleUnknown.String())
	assert.Equal(t, "Unknown", user.Role(42).String())
}

func TestParseRole(t *testing.T) {
	t.Run("parses role names", func(t *testing.T) {
		role, err := user.ParseRole("Merchant")

		require.NoError(t, err)
		assert.Equal(t, user.RoleMerchant, role)
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := user.ParseRole("merchant")
		require.Error(t, err)

		_, err = user.ParseRole("")
		require.Error(t, err)
	})
}
