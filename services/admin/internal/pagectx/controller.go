package pagectx

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/adminboard/pkg/logger"
	"github.com/adminboard/pkg/response"
	"github.com/adminboard/pkg/router"
)

// Controller 页面上下文控制器
type Controller struct {
	builder *Builder
}

// NewController 创建页面上下文控制器
func NewController(builder *Builder) *Controller {
	return &Controller{builder: builder}
}

// Prefix 路由前缀
func (ctl *Controller) Prefix() string {
	return "/admin/pagectx"
}

// Routes 路由配置，登录即可拿，页面自己按 perms 控制按钮
func (ctl *Controller) Routes(middlewares map[string]fiber.Handler) []router.Route {
	auth := middlewares["auth"]
	return []router.Route{
		{Method: fiber.MethodGet, Path: "/", Handler: ctl.Get, Middlewares: &[]fiber.Handler{auth}},
	}
}

// Get 当前请求的页面上下文
func (ctl *Controller) Get(c *fiber.Ctx) error {
	pc, err := ctl.builder.Build(c)
	if err != nil {
		logger.Error("build page context failed", zap.Error(err))
		return response.ServerError(c, "Failed to build page context")
	}
	return response.Success(c, pc)
}
