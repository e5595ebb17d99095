package role

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/adminboard/pkg/dal"
	"github.com/adminboard/pkg/logger"
	"github.com/adminboard/pkg/middleware"
	"github.com/adminboard/pkg/response"
	"github.com/adminboard/pkg/router"
	"github.com/adminboard/services/admin/internal/model"
	"github.com/adminboard/services/admin/internal/rbac"
)

// CreateRequest 新建角色请求
type CreateRequest struct {
	RoleID   string `json:"roleId"`
	RoleName string `json:"roleName"`
	Status   string `json:"status"`
}

// UpdateRequest 更新角色请求
type UpdateRequest struct {
	RoleName string `json:"roleName"`
	Status   string `json:"status"`
}

// Controller 角色管理控制器
type Controller struct {
	repo  *Repository
	cache *rbac.MenuCache
}

// NewController 创建角色控制器
func NewController(repo *Repository, cache *rbac.MenuCache) *Controller {
	return &Controller{repo: repo, cache: cache}
}

// Prefix 路由前缀
func (ctl *Controller) Prefix() string {
	return "/admin/roles"
}

// Routes 路由配置
func (ctl *Controller) Routes(middlewares map[string]fiber.Handler) []router.Route {
	auth := middlewares["auth"]
	view := middlewares["view"]
	create := middlewares["create"]
	edit := middlewares["edit"]
	del := middlewares["delete"]

	return []router.Route{
		{Method: fiber.MethodGet, Path: "/", Handler: ctl.List, Middlewares: &[]fiber.Handler{auth, view}},
		{Method: fiber.MethodGet, Path: "/:roleId", Handler: ctl.Get, Middlewares: &[]fiber.Handler{auth, view}},
		{Method: fiber.MethodPost, Path: "/", Handler: ctl.Create, Middlewares: &[]fiber.Handler{auth, create}},
		{Method: fiber.MethodPut, Path: "/:roleId", Handler: ctl.Update, Middlewares: &[]fiber.Handler{auth, edit}},
		{Method: fiber.MethodDelete, Path: "/:roleId", Handler: ctl.Delete, Middlewares: &[]fiber.Handler{auth, del}},
	}
}

// List 分页查询角色
func (ctl *Controller) List(c *fiber.Ctx) error {
	p := &dal.Pagination{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("pageSize", 50),
	}
	result, err := ctl.repo.List(c.UserContext(), c.Query("q"), p)
	if err != nil {
		logger.Error("list roles failed", zap.Error(err))
		return response.ServerError(c, "Failed to list roles")
	}
	return response.SuccessPage(c, result.Items, result.Total, p.Page, p.PageSize)
}

// Get 按ID查角色
func (ctl *Controller) Get(c *fiber.Ctx) error {
	roleID := c.Params("roleId")
	row, err := ctl.repo.Get(c.UserContext(), roleID)
	if err != nil {
		logger.Error("get role failed", zap.String("roleId", roleID), zap.Error(err))
		return response.ServerError(c, "Failed to get role")
	}
	if row == nil {
		return response.NotFound(c, "Role '"+roleID+"' not found.")
	}
	return response.Success(c, row)
}

// Create 新建角色
func (ctl *Controller) Create(c *fiber.Ctx) error {
	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.RoleID == "" || req.RoleName == "" {
		return response.BadRequest(c, "roleId and roleName are required")
	}

	exists, err := ctl.repo.Exists(c.UserContext(), map[string]interface{}{"role_id": req.RoleID})
	if err != nil {
		logger.Error("check role exists failed", zap.Error(err))
		return response.ServerError(c, "Failed to create role")
	}
	if exists {
		return response.BadRequest(c, "Role '"+req.RoleID+"' already exists.")
	}

	row := &model.Role{RoleID: req.RoleID, RoleName: req.RoleName, Status: req.Status}
	if err := ctl.repo.CreateRole(c.UserContext(), row, middleware.GetLoginID(c)); err != nil {
		logger.Error("create role failed", zap.String("roleId", req.RoleID), zap.Error(err))
		return response.ServerError(c, "Failed to create role")
	}
	return response.SuccessWithMessage(c, "Role created", row)
}

// Update 更新角色
func (ctl *Controller) Update(c *fiber.Ctx) error {
	roleID := c.Params("roleId")
	row, err := ctl.repo.Get(c.UserContext(), roleID)
	if err != nil {
		logger.Error("get role failed", zap.String("roleId", roleID), zap.Error(err))
		return response.ServerError(c, "Failed to update role")
	}
	if row == nil {
		return response.NotFound(c, "Role '"+roleID+"' not found.")
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	row.RoleName = req.RoleName
	row.Status = req.Status

	if err := ctl.repo.UpdateRole(c.UserContext(), row, middleware.GetLoginID(c)); err != nil {
		logger.Error("update role failed", zap.String("roleId", roleID), zap.Error(err))
		return response.ServerError(c, "Failed to update role")
	}
	return response.SuccessWithMessage(c, "Role updated", row)
}

// Delete 安全删除角色，成功前失效该角色的菜单缓存
func (ctl *Controller) Delete(c *fiber.Ctx) error {
	roleID := c.Params("roleId")
	ok, msg, err := ctl.repo.DeleteSafe(c.UserContext(), roleID)
	if err != nil {
		logger.Error("delete role failed", zap.String("roleId", roleID), zap.Error(err))
		return response.ServerError(c, "Failed to delete role")
	}
	if !ok {
		return response.BadRequest(c, msg)
	}

	ctl.cache.InvalidateRole(roleID)
	return response.SuccessWithMessage(c, msg, nil)
}
