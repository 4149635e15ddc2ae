package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		input string
		want  Role
	}{
		{"client", RoleClient},
		{"employee", RoleEmployee},
		{"admin", RoleAdmin},
		{"ADMIN", RoleAdmin},
		{" employee ", RoleEmployee},
		{"", RoleAnonymous},
		{"null", RoleAnonymous},
		{"undefined", RoleAnonymous},
		{"superuser", RoleAnonymous},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRole(tt.input))
		})
	}
}

func TestRoleSurface(t *testing.T) {
	t.Run("Employee and admin share the management surface", func(t *testing.T) {
		assert.Equal(t, SurfaceManagement, RoleEmployee.Surface())
		assert.Equal(t, SurfaceManagement, RoleAdmin.Surface())
		assert.True(t, RoleEmployee.CanManageInventory())
		assert.True(t, RoleAdmin.CanManageInventory())
	})

	t.Run("Client and anonymous share the storefront surface", func(t *testing.T) {
		assert.Equal(t, SurfaceStorefront, RoleClient.Surface())
		assert.Equal(t, SurfaceStorefront, RoleAnonymous.Surface())
		assert.False(t, RoleClient.CanManageInventory())
	})

	t.Run("Only clients see checkout", func(t *testing.T) {
		assert.True(t, RoleClient.CanCheckout())
		assert.False(t, RoleAnonymous.CanCheckout())
		assert.False(t, RoleEmployee.CanCheckout())
	})
}

func TestRoleRoundTrip(t *testing.T) {
	for _, role := range []Role{RoleClient, RoleEmployee, RoleAdmin} {
		assert.Equal(t, role, ParseRole(role.String()))
	}
}
