package rbac

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/adminboard/pkg/logger"
	"github.com/adminboard/pkg/middleware"
	"github.com/adminboard/pkg/response"
)

// RequireView 查看权限守卫
func RequireView(resolver *PermResolver) fiber.Handler {
	return requirePermit(resolver, "view", func(p Perms) bool { return p.View })
}

// RequireCreate 新增权限守卫
func RequireCreate(resolver *PermResolver) fiber.Handler {
	return requirePermit(resolver, "create", func(p Perms) bool { return p.Create })
}

// RequireEdit 编辑权限守卫
func RequireEdit(resolver *PermResolver) fiber.Handler {
	return requirePermit(resolver, "edit", func(p Perms) bool { return p.Edit })
}

// RequireDelete 删除权限守卫
func RequireDelete(resolver *PermResolver) fiber.Handler {
	return requirePermit(resolver, "delete", func(p Perms) bool { return p.Delete })
}

// requirePermit 缺权限返回403并记审计日志，未登录由JWT中间件负责401
func requirePermit(resolver *PermResolver, permit string, allowed func(Perms) bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		perms, err := EnsurePerms(c, resolver)
		if err != nil {
			logger.Error("resolve perms failed", zap.String("path", c.Path()), zap.Error(err))
			return response.ServerError(c, "Permission check failed")
		}
		if !allowed(perms) {
			logger.Warn("permission denied",
				zap.String("roleId", middleware.GetRoleID(c)),
				zap.String("permit", permit),
				zap.String("path", c.Path()),
			)
			return response.Forbidden(c, "You do not have "+permit+" permission for this page")
		}
		return c.Next()
	}
}
