//go:build unit

package user_test

import (
	"testing"
	"time"

	"hotel-booking-api/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	t.Run("normalizes case and whitespace", func(t *testing.T) {
		email, err := user.NewEmail("  Guest@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "guest@example.com", email.String())
	})

	cases := []struct {
		name string
		raw  string
		ok   bool
	}{
		{"plain address", "guest@example.com", true},
		{"with plus tag", "guest+tag@example.com", true},
		{"missing domain", "guest@", false},
		{"missing local part", "@example.com", false},
		{"no at sign", "guest.example.com", false},
		{"empty", "", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := user.NewEmail(c.raw)
			if c.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, user.ErrInvalidEmail)
			}
		})
	}
}

func TestNewUser(t *testing.T) {
	now := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	email, err := user.NewEmail("guest@example.com")
	require.NoError(t, err)

	t.Run("new users start active", func(t *testing.T) {
		u, err := user.NewUser(email, user.RoleGuest, now)
		require.NoError(t, err)
		assert.True(t, u.IsActive())
		assert.Equal(t, user.RoleGuest, u.Role())
	})

	t.Run("invalid role is rejected", func(t *testing.T) {
		_, err := user.NewUser(email, user.Role("superuser"), now)
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})
}

func TestValidatePlainPassword(t *testing.T) {
	assert.NoError(t, user.ValidatePlainPassword("longenough"))
	assert.NoError(t, user.ValidatePlainPassword("12345678"))
	assert.ErrorIs(t, user.ValidatePlainPassword("short"), user.ErrPasswordTooWeak)
	assert.ErrorIs(t, user.ValidatePlainPassword(""), user.ErrPasswordTooWeak)
}

func TestRolePermissions(t *testing.T) {
	cases := []struct {
		role               user.Role
		manageReservations bool
		manageInventory    bool
	}{
		{user.RoleGuest, false, false},
		{user.RoleStaff, true, false},
		{user.RoleAdmin, true, true},
	}
	for _, c := range cases {
		t.Run(c.role.String(), func(t *testing.T) {
			assert.Equal(t, c.manageReservations, c.role.CanManageReservations())
			assert.Equal(t, c.manageInventory, c.role.CanManageInventory())
		})
	}

	t.Run("role parsing", func(t *testing.T) {
		role, err := user.NewRole("staff")
		require.NoError(t, err)
		assert.Equal(t, user.RoleStaff, role)

		_, err = user.NewRole("root")
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})
}
