package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	data := Get()
	assert.NotNil(t, data)
	assert.False(t, data.Skip)
	assert.NotEmpty(t, data.Endpoints)
}

func TestFindPermissions(t *testing.T) {
	data := Get()

	t.Run("login endpoint skips auth", func(t *testing.T) {
		permission := data.FindPermissions("/v1/auth/login", "POST")
		assert.True(t, permission.Skip)
	})

	t.Run("room creation is manager only", func(t *testing.T) {
		permission := data.FindPermissions("/v1/rooms", "POST")
		assert.False(t, permission.Skip)
		assert.Equal(t, []string{"manager"}, permission.Roles)
	})

	t.Run("booking creation allows both roles", func(t *testing.T) {
		permission := data.FindPermissions("/v1/bookings", "POST")
		assert.Contains(t, permission.Roles, "manager")
		assert.Contains(t, permission.Roles, "receptionist")
	})

	t.Run("unknown endpoint returns zero value", func(t *testing.T) {
		permission := data.FindPermissions("/v1/unknown", "GET")
		assert.Empty(t, permission.Roles)
		assert.False(t, permission.Skip)
	})
}
