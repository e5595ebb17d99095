package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/adminboard/pkg/auth"
	"github.com/adminboard/pkg/config"
	"github.com/adminboard/pkg/database"
	apperrors "github.com/adminboard/pkg/errors"
	"github.com/adminboard/pkg/flash"
	"github.com/adminboard/pkg/logger"
	"github.com/adminboard/pkg/middleware"
	"github.com/adminboard/pkg/response"
	"github.com/adminboard/pkg/router"
	"github.com/adminboard/services/admin/internal/content"
	"github.com/adminboard/services/admin/internal/menu"
	"github.com/adminboard/services/admin/internal/model"
	"github.com/adminboard/services/admin/internal/org"
	"github.com/adminboard/services/admin/internal/pagectx"
	"github.com/adminboard/services/admin/internal/rbac"
	"github.com/adminboard/services/admin/internal/rights"
	"github.com/adminboard/services/admin/internal/role"
	"github.com/adminboard/services/admin/internal/user"
)

const serviceName = "admin-console"

func main() {
	// 加载配置
	if err := config.Init(""); err != nil {
		fmt.Printf("load config failed: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Get()

	// 初始化日志，失败时日志还没起来，只能打到标准输出
	if err := logger.Init(&cfg.Log); err != nil {
		fmt.Printf("init logger failed: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// 初始化数据库
	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("init database failed", zap.Error(err))
	}
	defer database.Close()

	if err := database.AutoMigrate(
		&model.Menu{}, &model.Right{}, &model.Role{}, &model.User{},
		&model.GroupInfo{}, &model.OrgInfo{}, &model.ZoneInfo{},
		&model.BranchInfo{}, &model.DesigInfo{}, &model.EmpInfo{},
		&model.ProjectInfo{}, &model.BannerInfo{}, &model.AwardInfo{},
		&model.TestimonialInfo{}, &model.Feedback{},
	); err != nil {
		logger.Fatal("auto migrate failed", zap.Error(err))
	}

	// 初始化Redis，闪存消息队列用
	if err := database.InitRedis(&cfg.Redis); err != nil {
		logger.Fatal("init redis failed", zap.Error(err))
	}
	defer database.CloseRedis()

	db := database.Get()
	jwtManager := auth.NewJWTManager(&cfg.JWT)

	// RBAC核心件
	resolver := rbac.NewResolver(db)
	menuCache := rbac.NewMenuCache(resolver, &cfg.MenuCache)
	permResolver := rbac.NewPermResolver(db)
	flashQueue := flash.NewQueue(database.GetRedis(), &cfg.Flash)

	app := fiber.New(fiber.Config{
		AppName:      serviceName,
		ErrorHandler: errorHandler,
	})

	app.Use(middleware.Recovery())
	app.Use(middleware.Cors())
	app.Use(middleware.RequestID())

	// 守卫按名字下发，各控制器自己挑
	middlewares := map[string]fiber.Handler{
		"auth":   middleware.JWTAuth(jwtManager),
		"view":   rbac.RequireView(permResolver),
		"create": rbac.RequireCreate(permResolver),
		"edit":   rbac.RequireEdit(permResolver),
		"delete": rbac.RequireDelete(permResolver),
	}

	menuRepo := menu.NewRepository(db)
	controllers := []router.Registrar{
		user.NewController(user.NewRepository(db), jwtManager),
		menu.NewController(menuRepo, menuCache),
		rights.NewController(rights.NewRepository(db), menuCache),
		role.NewController(role.NewRepository(db), menuCache),
		pagectx.NewController(pagectx.NewBuilder(db, menuCache, permResolver, flashQueue)),
	}
	controllers = append(controllers, org.Controllers(db)...)
	controllers = append(controllers, content.Controllers(db)...)

	router.Register(app, middlewares, controllers...)

	addr := fmt.Sprintf("%s:%d", cfg.Server.HTTP.Host, cfg.Server.HTTP.Port)
	go func() {
		logger.Info("server starting", zap.String("addr", addr), zap.String("service", serviceName))
		if err := app.Listen(addr); err != nil {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	if err := app.Shutdown(); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}

// errorHandler 兜底错误处理，业务错误和fiber自身错误都转统一响应
func errorHandler(c *fiber.Ctx, err error) error {
	switch e := err.(type) {
	case *apperrors.AppError:
		return response.Error(c, e.Code, e.Message)
	case *fiber.Error:
		return response.Error(c, e.Code, e.Message)
	}
	logger.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
	return response.ServerError(c, "Internal server error")
}
