package menu

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

// Controller 菜单管理控制器
type Controller struct {
	repo  *Repository
	cache *rbac.MenuCache
}

// NewController 创建菜单控制器
func NewController(repo *Repository, cache *rbac.MenuCache) *Controller {
	return &Controller{repo: repo, cache: cache}
}

// Prefix 路由前缀
func (ctl *Controller) Prefix() string {
	return "/admin/menus"
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
		{Method: fiber.MethodGet, Path: "/tree", Handler: ctl.Tree, Middlewares: &[]fiber.Handler{auth, view}},
		{Method: fiber.MethodGet, Path: "/sidebar", Handler: ctl.Sidebar, Middlewares: &[]fiber.Handler{auth}},
		{Method: fiber.MethodGet, Path: "/:menuId", Handler: ctl.Get, Middlewares: &[]fiber.Handler{auth, view}},
		{Method: fiber.MethodPost, Path: "/", Handler: ctl.Create, Middlewares: &[]fiber.Handler{auth, create}},
		{Method: fiber.MethodPut, Path: "/:menuId", Handler: ctl.Update, Middlewares: &[]fiber.Handler{auth, edit}},
		{Method: fiber.MethodDelete, Path: "/:menuId", Handler: ctl.Delete, Middlewares: &[]fiber.Handler{auth, del}},
	}
}

// List 分页查询菜单
func (ctl *Controller) List(c *fiber.Ctx) error {
	p := &dal.Pagination{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("pageSize", 50),
	}
	result, err := ctl.repo.List(c.UserContext(), c.Query("q"), p)
	if err != nil {
		logger.Error("list menus failed", zap.Error(err))
		return response.ServerError(c, "Failed to list menus")
	}
	return response.SuccessPage(c, result.Items, result.Total, p.Page, p.PageSize)
}

// Tree 全量菜单树，管理页面用
func (ctl *Controller) Tree(c *fiber.Ctx) error {
	items, err := ctl.repo.AllItems(c.UserContext())
	if err != nil {
		logger.Error("load menu tree failed", zap.Error(err))
		return response.ServerError(c, "Failed to load menu tree")
	}
	return response.Success(c, rbac.BuildTree(items))
}

// Sidebar 当前角色可见的侧边栏菜单
func (ctl *Controller) Sidebar(c *fiber.Ctx) error {
	roleID := middleware.GetRoleID(c)
	flat, tree, err := ctl.cache.Get(c.UserContext(), roleID)
	if err != nil {
		logger.Error("resolve sidebar failed", zap.String("roleId", roleID), zap.Error(err))
		return response.ServerError(c, "Failed to load sidebar")
	}
	return response.Success(c, SidebarResponse{Flat: flat, Tree: tree})
}

// Get 按ID查菜单
func (ctl *Controller) Get(c *fiber.Ctx) error {
	menuID := c.Params("menuId")
	m, err := ctl.repo.Get(c.UserContext(), menuID)
	if err != nil {
		logger.Error("get menu failed", zap.String("menuId", menuID), zap.Error(err))
		return response.ServerError(c, "Failed to get menu")
	}
	if m == nil {
		return response.NotFound(c, "Menu '"+menuID+"' not found.")
	}
	return response.Success(c, m)
}

// Create 新建菜单，成功前先整体失效菜单缓存
func (ctl *Controller) Create(c *fiber.Ctx) error {
	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.MenuID == "" || req.MenuName == "" {
		return response.BadRequest(c, "menuId and menuName are required")
	}

	exists, err := ctl.repo.Exists(c.UserContext(), map[string]interface{}{"menu_id": req.MenuID})
	if err != nil {
		logger.Error("check menu exists failed", zap.Error(err))
		return response.ServerError(c, "Failed to create menu")
	}
	if exists {
		return response.BadRequest(c, "Menu '"+req.MenuID+"' already exists.")
	}

	m := &model.Menu{
		MenuID:          req.MenuID,
		MenuName:        req.MenuName,
		ParentID:        req.ParentID,
		IsParents:       req.IsParents,
		URL:             req.URL,
		MenuOrder:       req.MenuOrder,
		FontAwesomeIcon: req.FontAwesomeIcon,
		FAwesomeIconCSS: req.FAwesomeIconCSS,
		ActiveFlag:      req.ActiveFlag,
		Status:          req.Status,
	}
	if err := ctl.repo.CreateMenu(c.UserContext(), m, middleware.GetLoginID(c)); err != nil {
		logger.Error("create menu failed", zap.String("menuId", req.MenuID), zap.Error(err))
		return response.ServerError(c, "Failed to create menu")
	}

	ctl.cache.InvalidateAll()
	return response.SuccessWithMessage(c, "Menu created", m)
}

// Update 更新菜单，成功前先整体失效菜单缓存
func (ctl *Controller) Update(c *fiber.Ctx) error {
	menuID := c.Params("menuId")
	m, err := ctl.repo.Get(c.UserContext(), menuID)
	if err != nil {
		logger.Error("get menu failed", zap.String("menuId", menuID), zap.Error(err))
		return response.ServerError(c, "Failed to update menu")
	}
	if m == nil {
		return response.NotFound(c, "Menu '"+menuID+"' not found.")
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	m.MenuName = req.MenuName
	m.ParentID = req.ParentID
	m.IsParents = req.IsParents
	m.URL = req.URL
	m.MenuOrder = req.MenuOrder
	m.FontAwesomeIcon = req.FontAwesomeIcon
	m.FAwesomeIconCSS = req.FAwesomeIconCSS
	m.ActiveFlag = req.ActiveFlag
	m.Status = req.Status

	if err := ctl.repo.UpdateMenu(c.UserContext(), m, middleware.GetLoginID(c)); err != nil {
		logger.Error("update menu failed", zap.String("menuId", menuID), zap.Error(err))
		return response.ServerError(c, "Failed to update menu")
	}

	ctl.cache.InvalidateAll()
	return response.SuccessWithMessage(c, "Menu updated", m)
}

// Delete 安全删除菜单
func (ctl *Controller) Delete(c *fiber.Ctx) error {
	menuID := c.Params("menuId")
	ok, msg, err := ctl.repo.DeleteSafe(c.UserContext(), menuID)
	if err != nil {
		logger.Error("delete menu failed", zap.String("menuId", menuID), zap.Error(err))
		return response.ServerError(c, "Failed to delete menu")
	}
	if !ok {
		return response.BadRequest(c, msg)
	}

	ctl.cache.InvalidateAll()
	return response.SuccessWithMessage(c, msg, nil)
}
