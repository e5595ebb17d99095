package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextHelpers(t *testing.T) {
	app := fiber.New()
	app.Get("/me", func(c *fiber.Ctx) error {
		c.Locals("userId", int64(42))
		c.Locals("loginId", "alice")
		c.Locals("roleId", "02")
		c.Locals("empId", "e7")
		assert.Equal(t, int64(42), GetUserID(c))
		assert.Equal(t, "alice", GetLoginID(c))
		assert.Equal(t, "02", GetRoleID(c))
		assert.Equal(t, "e7", GetEmpID(c))
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestContextHelpersZeroValues(t *testing.T) {
	app := fiber.New()
	app.Get("/anon", func(c *fiber.Ctx) error {
		// 未经过认证中间件时全部取零值
		assert.Equal(t, int64(0), GetUserID(c))
		assert.Equal(t, "", GetLoginID(c))
		assert.Equal(t, "", GetRoleID(c))
		assert.Equal(t, "", GetEmpID(c))
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/odd", func(c *fiber.Ctx) error {
		// 类型不符时不panic，按零值处理
		c.Locals("userId", "not-a-number")
		c.Locals("loginId", 7)
		assert.Equal(t, int64(0), GetUserID(c))
		assert.Equal(t, "", GetLoginID(c))
		return c.SendStatus(fiber.StatusOK)
	})

	for _, path := range []string{"/anon", "/odd"} {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
}
