package user

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/adminboard/pkg/auth"
	"github.com/adminboard/pkg/dal"
	"github.com/adminboard/pkg/logger"
	"github.com/adminboard/pkg/middleware"
	"github.com/adminboard/pkg/response"
	"github.com/adminboard/pkg/router"
	"github.com/adminboard/services/admin/internal/model"
)

// Controller 用户管理控制器
type Controller struct {
	repo *Repository
	jwt  *auth.JWTManager
}

// NewController 创建用户控制器
func NewController(repo *Repository, jwt *auth.JWTManager) *Controller {
	return &Controller{repo: repo, jwt: jwt}
}

// Prefix 路由前缀
func (ctl *Controller) Prefix() string {
	return "/admin/users"
}

// Routes 路由配置，登录是唯一不走JWT的入口
func (ctl *Controller) Routes(middlewares map[string]fiber.Handler) []router.Route {
	auth := middlewares["auth"]
	view := middlewares["view"]
	create := middlewares["create"]
	edit := middlewares["edit"]
	del := middlewares["delete"]

	return []router.Route{
		{Method: fiber.MethodPost, Path: "/login", Handler: ctl.Login},
		{Method: fiber.MethodGet, Path: "/me", Handler: ctl.Me, Middlewares: &[]fiber.Handler{auth}},
		{Method: fiber.MethodPost, Path: "/password", Handler: ctl.ChangePassword, Middlewares: &[]fiber.Handler{auth}},
		{Method: fiber.MethodGet, Path: "/", Handler: ctl.List, Middlewares: &[]fiber.Handler{auth, view}},
		{Method: fiber.MethodGet, Path: "/:loginId", Handler: ctl.Get, Middlewares: &[]fiber.Handler{auth, view}},
		{Method: fiber.MethodPost, Path: "/", Handler: ctl.Create, Middlewares: &[]fiber.Handler{auth, create}},
		{Method: fiber.MethodPut, Path: "/:loginId", Handler: ctl.Update, Middlewares: &[]fiber.Handler{auth, edit}},
		{Method: fiber.MethodDelete, Path: "/:loginId", Handler: ctl.Delete, Middlewares: &[]fiber.Handler{auth, del}},
	}
}

func profileOf(u *model.User) *Profile {
	return &Profile{
		LoginID: u.LoginID,
		EmpID:   u.EmpID,
		RoleID:  u.RoleID,
		Email:   u.Email,
		Status:  u.Status,
	}
}

// Login 登录换取Token
func (ctl *Controller) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.LoginID == "" || req.Password == "" {
		return response.BadRequest(c, "loginId and password are required")
	}

	u, err := ctl.repo.Authenticate(c.UserContext(), req.LoginID, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrUserDisabled) {
			logger.Warn("login rejected", zap.String("loginId", req.LoginID), zap.Error(err))
			return response.Unauthorized(c, "Invalid login or password")
		}
		logger.Error("login failed", zap.String("loginId", req.LoginID), zap.Error(err))
		return response.ServerError(c, "Login failed")
	}

	token, err := ctl.jwt.CreateTokenInfo(0, u.LoginID, u.RoleID, u.EmpID)
	if err != nil {
		logger.Error("issue token failed", zap.String("loginId", u.LoginID), zap.Error(err))
		return response.ServerError(c, "Login failed")
	}
	return response.Success(c, LoginResponse{Token: token, User: profileOf(u)})
}

// Me 当前登录用户信息
func (ctl *Controller) Me(c *fiber.Ctx) error {
	loginID := middleware.GetLoginID(c)
	u, err := ctl.repo.Get(c.UserContext(), loginID)
	if err != nil {
		logger.Error("get current user failed", zap.String("loginId", loginID), zap.Error(err))
		return response.ServerError(c, "Failed to load user")
	}
	if u == nil {
		return response.NotFound(c, "User not found")
	}
	return response.Success(c, profileOf(u))
}

// ChangePassword 修改自己的密码
func (ctl *Controller) ChangePassword(c *fiber.Ctx) error {
	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.NewPassword == "" {
		return response.BadRequest(c, "newPassword is required")
	}

	loginID := middleware.GetLoginID(c)
	if err := ctl.repo.ChangePassword(c.UserContext(), loginID, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return response.BadRequest(c, "Old password is incorrect")
		}
		logger.Error("change password failed", zap.String("loginId", loginID), zap.Error(err))
		return response.ServerError(c, "Failed to change password")
	}
	return response.SuccessWithMessage(c, "Password changed", nil)
}

// List 分页查询用户
func (ctl *Controller) List(c *fiber.Ctx) error {
	p := &dal.Pagination{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("pageSize", 50),
	}
	result, err := ctl.repo.List(c.UserContext(), c.Query("q"), p)
	if err != nil {
		logger.Error("list users failed", zap.Error(err))
		return response.ServerError(c, "Failed to list users")
	}

	profiles := make([]*Profile, 0, len(result.Items))
	for i := range result.Items {
		profiles = append(profiles, profileOf(&result.Items[i]))
	}
	return response.SuccessPage(c, profiles, result.Total, p.Page, p.PageSize)
}

// Get 按登录ID查用户
func (ctl *Controller) Get(c *fiber.Ctx) error {
	loginID := c.Params("loginId")
	u, err := ctl.repo.Get(c.UserContext(), loginID)
	if err != nil {
		logger.Error("get user failed", zap.String("loginId", loginID), zap.Error(err))
		return response.ServerError(c, "Failed to get user")
	}
	if u == nil {
		return response.NotFound(c, "User '"+loginID+"' not found.")
	}
	return response.Success(c, profileOf(u))
}

// Create 新建用户
func (ctl *Controller) Create(c *fiber.Ctx) error {
	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.LoginID == "" || req.Password == "" || req.RoleID == "" {
		return response.BadRequest(c, "loginId, password and roleId are required")
	}

	exists, err := ctl.repo.Exists(c.UserContext(), map[string]interface{}{"login_id": req.LoginID})
	if err != nil {
		logger.Error("check user exists failed", zap.Error(err))
		return response.ServerError(c, "Failed to create user")
	}
	if exists {
		return response.BadRequest(c, "User '"+req.LoginID+"' already exists.")
	}

	u := &model.User{
		LoginID: req.LoginID,
		EmpID:   req.EmpID,
		RoleID:  req.RoleID,
		Email:   req.Email,
		Status:  req.Status,
	}
	if err := ctl.repo.CreateUser(c.UserContext(), u, req.Password, middleware.GetLoginID(c)); err != nil {
		if errors.Is(err, ErrInvalidEmail) {
			return response.BadRequest(c, "Invalid email address")
		}
		logger.Error("create user failed", zap.String("loginId", req.LoginID), zap.Error(err))
		return response.ServerError(c, "Failed to create user")
	}
	return response.SuccessWithMessage(c, "User created", profileOf(u))
}

// Update 更新用户基本信息
func (ctl *Controller) Update(c *fiber.Ctx) error {
	loginID := c.Params("loginId")
	u, err := ctl.repo.Get(c.UserContext(), loginID)
	if err != nil {
		logger.Error("get user failed", zap.String("loginId", loginID), zap.Error(err))
		return response.ServerError(c, "Failed to update user")
	}
	if u == nil {
		return response.NotFound(c, "User '"+loginID+"' not found.")
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	u.EmpID = req.EmpID
	u.RoleID = req.RoleID
	u.Email = req.Email
	u.Status = req.Status

	if err := ctl.repo.UpdateUser(c.UserContext(), u, middleware.GetLoginID(c)); err != nil {
		if errors.Is(err, ErrInvalidEmail) {
			return response.BadRequest(c, "Invalid email address")
		}
		logger.Error("update user failed", zap.String("loginId", loginID), zap.Error(err))
		return response.ServerError(c, "Failed to update user")
	}
	return response.SuccessWithMessage(c, "User updated", profileOf(u))
}

// Delete 删除用户
func (ctl *Controller) Delete(c *fiber.Ctx) error {
	loginID := c.Params("loginId")
	if err := ctl.repo.DeleteUser(c.UserContext(), loginID); err != nil {
		logger.Error("delete user failed", zap.String("loginId", loginID), zap.Error(err))
		return response.ServerError(c, "Failed to delete user")
	}
	return response.SuccessWithMessage(c, "User deleted", nil)
}
