package middleware

import (
	"strings"

	"github.com/adminboard/pkg/auth"
	"github.com/adminboard/pkg/logger"
	"github.com/adminboard/pkg/response"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// JWTAuth JWT认证中间件
// 认证失败统一返回401，权限不足(403)由路由守卫负责
func JWTAuth(jwtManager *auth.JWTManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get("Authorization")
		if token == "" {
			token = c.Query("token")
		}

		if token == "" {
			return response.Unauthorized(c, "missing authentication token")
		}

		token = strings.TrimPrefix(token, "Bearer ")

		claims, err := jwtManager.ParseToken(token)
		if err != nil {
			return response.Unauthorized(c, "invalid authentication token")
		}

		// 将用户信息存入上下文
		c.Locals("userId", claims.UserID)
		c.Locals("loginId", claims.LoginID)
		c.Locals("roleId", claims.RoleID)
		c.Locals("empId", claims.EmpID)
		c.Locals("claims", claims)

		return c.Next()
	}
}

// Recovery 恢复中间件
func Recovery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic recovered",
					zap.Any("error", err),
					zap.String("path", c.Path()),
					zap.String("method", c.Method()),
				)
				_ = response.ServerError(c, "")
			}
		}()
		return c.Next()
	}
}

// Cors 跨域中间件
func Cors() fiber.Handler {
	return func(c *fiber.Ctx) error {
		origin := c.Get("Origin")

		if origin != "" {
			c.Set("Access-Control-Allow-Origin", origin)
			c.Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE, PATCH")
			c.Set("Access-Control-Allow-Headers", "Origin, X-Requested-With, Content-Type, Accept, Authorization")
			c.Set("Access-Control-Allow-Credentials", "true")
		}

		if c.Method() == "OPTIONS" {
			return c.SendStatus(204)
		}

		return c.Next()
	}
}

// RequestID 请求ID中间件
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Locals("requestId", requestID)
		c.Set("X-Request-ID", requestID)
		return c.Next()
	}
}

// GetUserID 从上下文获取用户ID，缺失或类型不符时返回零值
func GetUserID(c *fiber.Ctx) int64 {
	userID, _ := c.Locals("userId").(int64)
	return userID
}

// GetLoginID 从上下文获取登录名
func GetLoginID(c *fiber.Ctx) string {
	loginID, _ := c.Locals("loginId").(string)
	return loginID
}

// GetRoleID 从上下文获取角色ID(原始字符串，未归一化)
func GetRoleID(c *fiber.Ctx) string {
	roleID, _ := c.Locals("roleId").(string)
	return roleID
}

// GetEmpID 从上下文获取员工ID
func GetEmpID(c *fiber.Ctx) string {
	empID, _ := c.Locals("empId").(string)
	return empID
}
