package rights

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/adminboard/pkg/logger"
	"github.com/adminboard/pkg/middleware"
	"github.com/adminboard/pkg/response"
	"github.com/adminboard/pkg/router"
	"github.com/adminboard/services/admin/internal/rbac"
)

// Controller 角色权限控制器
type Controller struct {
	repo  *Repository
	cache *rbac.MenuCache
}

// NewController 创建权限控制器
func NewController(repo *Repository, cache *rbac.MenuCache) *Controller {
	return &Controller{repo: repo, cache: cache}
}

// Prefix 路由前缀
func (ctl *Controller) Prefix() string {
	return "/admin/rights"
}

// Routes 路由配置
func (ctl *Controller) Routes(middlewares map[string]fiber.Handler) []router.Route {
	auth := middlewares["auth"]
	view := middlewares["view"]
	edit := middlewares["edit"]
	del := middlewares["delete"]

	return []router.Route{
		{Method: fiber.MethodGet, Path: "/matrix/:roleId", Handler: ctl.Matrix, Middlewares: &[]fiber.Handler{auth, view}},
		{Method: fiber.MethodGet, Path: "/:roleId", Handler: ctl.ListByRole, Middlewares: &[]fiber.Handler{auth, view}},
		{Method: fiber.MethodPost, Path: "/", Handler: ctl.Upsert, Middlewares: &[]fiber.Handler{auth, edit}},
		{Method: fiber.MethodDelete, Path: "/:roleId/:menuId", Handler: ctl.Delete, Middlewares: &[]fiber.Handler{auth, del}},
	}
}

// Matrix 角色的权限矩阵
func (ctl *Controller) Matrix(c *fiber.Ctx) error {
	roleID := c.Params("roleId")
	rows, err := ctl.repo.Matrix(c.UserContext(), roleID)
	if err != nil {
		logger.Error("load rights matrix failed", zap.String("roleId", roleID), zap.Error(err))
		return response.ServerError(c, "Failed to load rights matrix")
	}
	return response.Success(c, rows)
}

// ListByRole 角色的全部权限行
func (ctl *Controller) ListByRole(c *fiber.Ctx) error {
	roleID := c.Params("roleId")
	rows, err := ctl.repo.ListByRole(c.UserContext(), roleID)
	if err != nil {
		logger.Error("list rights failed", zap.String("roleId", roleID), zap.Error(err))
		return response.ServerError(c, "Failed to list rights")
	}
	return response.Success(c, rows)
}

// Upsert 新增或更新权限行，成功前失效该角色的菜单缓存
func (ctl *Controller) Upsert(c *fiber.Ctx) error {
	var req UpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.RoleID == "" || req.MenuID == "" {
		return response.BadRequest(c, "roleId and menuId are required")
	}

	row, err := ctl.repo.Upsert(c.UserContext(), &req, middleware.GetLoginID(c))
	if err != nil {
		logger.Error("upsert right failed",
			zap.String("roleId", req.RoleID), zap.String("menuId", req.MenuID), zap.Error(err))
		return response.ServerError(c, "Failed to save rights")
	}

	ctl.cache.InvalidateRole(req.RoleID)
	return response.SuccessWithMessage(c, "Rights saved", row)
}

// Delete 删除权限行，成功前失效该角色的菜单缓存
func (ctl *Controller) Delete(c *fiber.Ctx) error {
	roleID := c.Params("roleId")
	menuID := c.Params("menuId")

	if err := ctl.repo.DeleteRight(c.UserContext(), roleID, menuID); err != nil {
		logger.Error("delete right failed",
			zap.String("roleId", roleID), zap.String("menuId", menuID), zap.Error(err))
		return response.ServerError(c, "Failed to delete rights")
	}

	ctl.cache.InvalidateRole(roleID)
	return response.SuccessWithMessage(c, "Rights deleted", nil)
}
