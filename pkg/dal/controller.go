package dal

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/adminboard/pkg/errors"
	"github.com/adminboard/pkg/logger"
	"github.com/adminboard/pkg/response"
	"github.com/adminboard/pkg/router"
)

// ParseInt64ID 解析 int64 类型的 ID
func ParseInt64ID(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New(400, "id must not be empty")
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.New(400, "invalid id")
	}
	return v, nil
}

// CrudHooks 实体级钩子，落库前设置审计字段或做校验
type CrudHooks[T any] struct {
	BeforeCreate func(c *fiber.Ctx, entity *T) error
	BeforeUpdate func(c *fiber.Ctx, entity *T) error
}

// CrudConfig 通用CRUD控制器配置
type CrudConfig[T any] struct {
	RoutePrefix  string       // 路由前缀
	Resource     string       // 资源名，用于消息文案
	KeyColumn    string       // 主键列名
	NumericKey   bool         // 主键是否数值型，数值型会先解析再查询
	SearchFields []string     // q 模糊匹配的列
	DefaultOrder string       // 列表默认排序
	Hooks        CrudHooks[T] // 实体钩子
}

// CrudController 通用CRUD控制器
// 列表支持 q 模糊查询和 filter SSQL过滤表达式，增删改查各挂对应的权限守卫
type CrudController[T any] struct {
	db  *gorm.DB
	cfg CrudConfig[T]
}

// NewCrudController 创建通用CRUD控制器
func NewCrudController[T any](db *gorm.DB, cfg CrudConfig[T]) *CrudController[T] {
	if cfg.Resource == "" {
		cfg.Resource = "resource"
	}
	return &CrudController[T]{db: db, cfg: cfg}
}

// Prefix 路由前缀
func (ctl *CrudController[T]) Prefix() string {
	return ctl.cfg.RoutePrefix
}

// Routes 路由配置
func (ctl *CrudController[T]) Routes(middlewares map[string]fiber.Handler) []router.Route {
	auth := middlewares["auth"]
	view := middlewares["view"]
	create := middlewares["create"]
	edit := middlewares["edit"]
	del := middlewares["delete"]

	return []router.Route{
		{Method: fiber.MethodGet, Path: "/", Handler: ctl.List, Middlewares: &[]fiber.Handler{auth, view}},
		{Method: fiber.MethodGet, Path: "/:id", Handler: ctl.Get, Middlewares: &[]fiber.Handler{auth, view}},
		{Method: fiber.MethodPost, Path: "/", Handler: ctl.Create, Middlewares: &[]fiber.Handler{auth, create}},
		{Method: fiber.MethodPut, Path: "/:id", Handler: ctl.Update, Middlewares: &[]fiber.Handler{auth, edit}},
		{Method: fiber.MethodDelete, Path: "/:id", Handler: ctl.Delete, Middlewares: &[]fiber.Handler{auth, del}},
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (ctl *CrudController[T]) keyValue(c *fiber.Ctx) (interface{}, error) {
	raw := c.Params("id")
	if ctl.cfg.NumericKey {
		return ParseInt64ID(raw)
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New(400, "id must not be empty")
	}
	return raw, nil
}

func (ctl *CrudController[T]) findByKey(c *fiber.Ctx, key interface{}) (*T, error) {
	return NewQueryBuilder[T](ctl.db).
		Where(ctl.cfg.KeyColumn+" = ?", key).
		First(c.UserContext())
}

// List 分页列表
func (ctl *CrudController[T]) List(c *fiber.Ctx) error {
	p := &Pagination{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("pageSize", 50),
	}

	qb := NewQueryBuilder[T](ctl.db)
	if q := strings.TrimSpace(c.Query("q")); q != "" && len(ctl.cfg.SearchFields) > 0 {
		like := "%" + q + "%"
		clauses := make([]string, 0, len(ctl.cfg.SearchFields))
		args := make([]interface{}, 0, len(ctl.cfg.SearchFields))
		for _, f := range ctl.cfg.SearchFields {
			clauses = append(clauses, f+" LIKE ?")
			args = append(args, like)
		}
		qb.Where(strings.Join(clauses, " OR "), args...)
	}
	qb.WhereSSql(c.Query("filter"))
	if ctl.cfg.DefaultOrder != "" {
		qb.Order(ctl.cfg.DefaultOrder)
	}

	result, err := qb.Paged(c.UserContext(), p)
	if err != nil {
		logger.Error("list failed", zap.String("resource", ctl.cfg.Resource), zap.Error(err))
		return response.ServerError(c, "Failed to list "+ctl.cfg.Resource)
	}
	return response.SuccessPage(c, result.Items, result.Total, p.Page, p.PageSize)
}

// Get 单条查询
func (ctl *CrudController[T]) Get(c *fiber.Ctx) error {
	key, err := ctl.keyValue(c)
	if err != nil {
		return response.BadRequest(c, "Invalid "+ctl.cfg.Resource+" id")
	}
	entity, err := ctl.findByKey(c, key)
	if err != nil {
		logger.Error("get failed", zap.String("resource", ctl.cfg.Resource), zap.Error(err))
		return response.ServerError(c, "Failed to get "+ctl.cfg.Resource)
	}
	if entity == nil {
		return response.NotFound(c, titleCase(ctl.cfg.Resource)+" not found")
	}
	return response.Success(c, entity)
}

// Create 新建
func (ctl *CrudController[T]) Create(c *fiber.Ctx) error {
	var entity T
	if err := c.BodyParser(&entity); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if ctl.cfg.Hooks.BeforeCreate != nil {
		if err := ctl.cfg.Hooks.BeforeCreate(c, &entity); err != nil {
			return response.BadRequest(c, errors.GetMessage(err))
		}
	}
	if err := ctl.db.WithContext(c.UserContext()).Create(&entity).Error; err != nil {
		logger.Error("create failed", zap.String("resource", ctl.cfg.Resource), zap.Error(err))
		return response.ServerError(c, "Failed to create "+ctl.cfg.Resource)
	}
	return response.SuccessWithMessage(c, titleCase(ctl.cfg.Resource)+" created", entity)
}

// Update 更新，先取出再用请求体覆盖，没给的字段保持原值
func (ctl *CrudController[T]) Update(c *fiber.Ctx) error {
	key, err := ctl.keyValue(c)
	if err != nil {
		return response.BadRequest(c, "Invalid "+ctl.cfg.Resource+" id")
	}
	entity, err := ctl.findByKey(c, key)
	if err != nil {
		logger.Error("get failed", zap.String("resource", ctl.cfg.Resource), zap.Error(err))
		return response.ServerError(c, "Failed to update "+ctl.cfg.Resource)
	}
	if entity == nil {
		return response.NotFound(c, titleCase(ctl.cfg.Resource)+" not found")
	}

	if err := c.BodyParser(entity); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if ctl.cfg.Hooks.BeforeUpdate != nil {
		if err := ctl.cfg.Hooks.BeforeUpdate(c, entity); err != nil {
			return response.BadRequest(c, errors.GetMessage(err))
		}
	}
	if err := ctl.db.WithContext(c.UserContext()).Save(entity).Error; err != nil {
		logger.Error("update failed", zap.String("resource", ctl.cfg.Resource), zap.Error(err))
		return response.ServerError(c, "Failed to update "+ctl.cfg.Resource)
	}
	return response.SuccessWithMessage(c, titleCase(ctl.cfg.Resource)+" updated", entity)
}

// Delete 删除
func (ctl *CrudController[T]) Delete(c *fiber.Ctx) error {
	key, err := ctl.keyValue(c)
	if err != nil {
		return response.BadRequest(c, "Invalid "+ctl.cfg.Resource+" id")
	}
	err = NewQueryBuilder[T](ctl.db).
		Where(ctl.cfg.KeyColumn+" = ?", key).
		Delete(c.UserContext())
	if err != nil {
		logger.Error("delete failed", zap.String("resource", ctl.cfg.Resource), zap.Error(err))
		return response.ServerError(c, "Failed to delete "+ctl.cfg.Resource)
	}
	return response.SuccessWithMessage(c, titleCase(ctl.cfg.Resource)+" deleted", nil)
}
