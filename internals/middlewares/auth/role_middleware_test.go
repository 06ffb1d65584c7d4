// file: internals/middlewares/auth/role_middleware_test.go
package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"koperasiku_backend/internals/constants"
)

// newGuardedApp memasang route /guarded dengan role yang disuntik
// lewat middleware pengganti token.
func newGuardedApp(role string, allowed []string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if role != "" {
			c.Locals("user_role", role)
		}
		return c.Next()
	})
	app.Get("/guarded", OnlyRolesSlice("akses ditolak", allowed), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestOnlyRolesSlice(t *testing.T) {
	t.Run("role HIGH boleh masuk route admin", func(t *testing.T) {
		app := newGuardedApp(constants.RoleHigh, constants.AdminOnly)
		resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("role LOW ditolak route admin", func(t *testing.T) {
		app := newGuardedApp(constants.RoleLow, constants.AdminOnly)
		resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("role HIGH ditolak route operator", func(t *testing.T) {
		app := newGuardedApp(constants.RoleHigh, constants.OperatorOnly)
		resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("tanpa role dianggap unauthorized", func(t *testing.T) {
		app := newGuardedApp("", constants.AdminOnly)
		resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}
