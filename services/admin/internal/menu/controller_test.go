package menu

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adminboard/pkg/config"
	"github.com/adminboard/pkg/router"
	"github.com/adminboard/services/admin/internal/rbac"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db := newTestDB(t)
	cache := rbac.NewMenuCache(rbac.NewResolver(db), &config.MenuCacheConfig{Enabled: true, TTLSeconds: 300, MaxRoles: 100})
	ctl := NewController(NewRepository(db), cache)

	pass := func(c *fiber.Ctx) error { return c.Next() }
	app := fiber.New()
	router.Register(app, map[string]fiber.Handler{
		"auth": pass, "view": pass, "create": pass, "edit": pass, "delete": pass,
	}, ctl)
	return app
}

func TestRoutesMountUnderPrefix(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/admin/menus/tree", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/admin/menus/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// 前缀外不注册任何路由
	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/tree", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
