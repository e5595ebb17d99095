package rbac

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/adminboard/pkg/middleware"
	"github.com/adminboard/services/admin/internal/model"
)

const permsLocalKey = "perms"

// Perms 单次请求内四项操作权限
type Perms struct {
	View   bool `json:"view"`
	Create bool `json:"create"`
	Edit   bool `json:"edit"`
	Delete bool `json:"delete"`
}

// PermResolver 按 角色+路径 解析页面权限
type PermResolver struct {
	db *gorm.DB
}

// NewPermResolver 创建权限解析器
func NewPermResolver(db *gorm.DB) *PermResolver {
	return &PermResolver{db: db}
}

// Resolve 解析指定角色对指定路径的权限
// 非 admin/ 路径和空角色直接全false，不触库
// 管辖菜单 = URL为当前路径最长前缀的活跃菜单，前缀必须在段边界上
func (p *PermResolver) Resolve(ctx context.Context, roleID, path string) (Perms, error) {
	var out Perms

	path = strings.TrimPrefix(path, "/")
	if !strings.HasPrefix(path, "admin/") {
		return out, nil
	}
	if strings.TrimSpace(roleID) == "" {
		return out, nil
	}

	menu, err := p.governingMenu(ctx, path)
	if err != nil {
		return out, err
	}
	if menu == nil {
		return out, nil
	}

	var rights []model.Right
	err = p.db.WithContext(ctx).
		Where("role_id = ? AND menu_id = ? AND status = ?", strings.TrimSpace(roleID), menu.MenuID, "active").
		Limit(1).
		Find(&rights).Error
	if err != nil {
		return out, err
	}
	if len(rights) == 0 {
		return out, nil
	}

	r := rights[0]
	out.View = IsYes(r.ViewPermit)
	out.Create = IsYes(r.CreatePermit)
	out.Edit = IsYes(r.EditPermit)
	out.Delete = IsYes(r.DeletePermit)
	return out, nil
}

// governingMenu 找URL是路径最长前缀的活跃菜单，"#" 和空URL不参与
func (p *PermResolver) governingMenu(ctx context.Context, path string) (*model.Menu, error) {
	var menus []model.Menu
	if err := p.db.WithContext(ctx).Find(&menus).Error; err != nil {
		return nil, err
	}

	var best *model.Menu
	bestLen := -1
	for i := range menus {
		m := &menus[i]
		if !IsActiveStatus(m.Status) || !IsYes(m.ActiveFlag) {
			continue
		}
		url := strings.TrimLeft(strings.TrimSpace(m.URL), "/")
		if url == "" || url == "#" {
			continue
		}
		if path == url || strings.HasPrefix(path, url+"/") {
			if len(url) > bestLen {
				best = m
				bestLen = len(url)
			}
		}
	}
	return best, nil
}

// EnsurePerms 每个请求只解析一次权限，结果挂在 fiber Locals 上复用
func EnsurePerms(c *fiber.Ctx, resolver *PermResolver) (Perms, error) {
	if cached, ok := c.Locals(permsLocalKey).(Perms); ok {
		return cached, nil
	}

	perms, err := resolver.Resolve(c.UserContext(), middleware.GetRoleID(c), c.Path())
	if err != nil {
		return Perms{}, err
	}
	c.Locals(permsLocalKey, perms)
	return perms, nil
}
