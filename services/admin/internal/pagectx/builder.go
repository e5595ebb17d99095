package pagectx

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/adminboard/pkg/flash"
	"github.com/adminboard/pkg/logger"
	"github.com/adminboard/pkg/middleware"
	"github.com/adminboard/pkg/utils"
	"github.com/adminboard/services/admin/internal/model"
	"github.com/adminboard/services/admin/internal/rbac"
)

// UserInfo 页面上下文里的用户信息
type UserInfo struct {
	LoginID     string `json:"loginId"`
	DisplayName string `json:"displayName"`
	RoleID      string `json:"roleId"`
	EmpID       string `json:"empId"`
}

// PageContext 管理页面的公共上下文
// 侧边栏/权限/未读留言/闪存消息一次请求内只算一次
type PageContext struct {
	User                 *UserInfo        `json:"user"`
	MenuTree             []*rbac.MenuItem `json:"menuTree"`
	Perms                rbac.Perms       `json:"perms"`
	CanViewFeedback      bool             `json:"canViewFeedback"`
	FeedbackUnreadCount  int64            `json:"feedbackUnreadCount"`
	FeedbackUnreadOldest []model.Feedback `json:"feedbackUnreadOldest"`
	Flash                []flash.Message  `json:"flash"`
}

// Builder 页面上下文构建器
type Builder struct {
	db    *gorm.DB
	cache *rbac.MenuCache
	perms *rbac.PermResolver
	flash *flash.Queue
}

// NewBuilder 创建页面上下文构建器，flash 可以为空
func NewBuilder(db *gorm.DB, cache *rbac.MenuCache, perms *rbac.PermResolver, fq *flash.Queue) *Builder {
	return &Builder{db: db, cache: cache, perms: perms, flash: fq}
}

// Build 组装当前请求的页面上下文
func (b *Builder) Build(c *fiber.Ctx) (*PageContext, error) {
	ctx := c.UserContext()
	loginID := middleware.GetLoginID(c)
	roleID := middleware.GetRoleID(c)
	empID := middleware.GetEmpID(c)

	out := &PageContext{
		User: &UserInfo{
			LoginID:     loginID,
			DisplayName: b.displayName(ctx, empID, loginID),
			RoleID:      roleID,
			EmpID:       empID,
		},
		MenuTree:             []*rbac.MenuItem{},
		FeedbackUnreadOldest: []model.Feedback{},
		Flash:                []flash.Message{},
	}

	flat, tree, err := b.cache.Get(ctx, roleID)
	if err != nil {
		return nil, err
	}
	// 扁平列表有货而树是空的说明缓存条目坏了，重建一次自愈，不重试
	if len(flat) > 0 && len(tree) == 0 {
		logger.Warn("sidebar tree empty with non-empty flat list, refreshing",
			zap.String("roleId", roleID))
		if flat2, tree2, rerr := b.cache.Refresh(ctx, roleID); rerr == nil {
			flat, tree = flat2, tree2
		}
	}
	out.MenuTree = tree

	perms, err := rbac.EnsurePerms(c, b.perms)
	if err != nil {
		return nil, err
	}
	out.Perms = perms

	// 留言菜单在可见列表里就说明权限早已过滤过，不再查rights表
	out.CanViewFeedback = roleID != "" && (hasMenuURL(flat, "admin/feedback") || hasMenuURL(flat, "feedback"))
	if out.CanViewFeedback {
		if err := b.loadFeedbackUnread(ctx, out); err != nil {
			return nil, err
		}
	}

	if b.flash != nil && loginID != "" {
		msgs, ferr := b.flash.PopAll(ctx, loginID)
		if ferr != nil {
			// 闪存消息丢了不影响页面
			logger.Warn("pop flash failed", zap.String("loginId", loginID), zap.Error(ferr))
		} else if msgs != nil {
			out.Flash = msgs
		}
	}

	return out, nil
}

func (b *Builder) displayName(ctx context.Context, empID, loginID string) string {
	if empID != "" {
		var names []string
		err := b.db.WithContext(ctx).Model(&model.EmpInfo{}).
			Where("emp_id = ?", empID).
			Limit(1).
			Pluck("emp_name", &names).Error
		if err == nil && len(names) > 0 && strings.TrimSpace(names[0]) != "" {
			return names[0]
		}
	}
	return loginID
}

func (b *Builder) loadFeedbackUnread(ctx context.Context, out *PageContext) error {
	err := b.db.WithContext(ctx).Model(&model.Feedback{}).
		Where("is_read = ?", false).
		Count(&out.FeedbackUnreadCount).Error
	if err != nil {
		return err
	}
	err = b.db.WithContext(ctx).
		Where("is_read = ?", false).
		Order("created_at").Order("id").
		Limit(10).
		Find(&out.FeedbackUnreadOldest).Error
	if err != nil {
		return err
	}
	// 通知下拉框只要摘要
	for i := range out.FeedbackUnreadOldest {
		out.FeedbackUnreadOldest[i].Message = utils.Truncate(out.FeedbackUnreadOldest[i].Message, 120)
	}
	return nil
}

// hasMenuURL 可见菜单里是否有指向目标路径的项
func hasMenuURL(flat []*rbac.MenuItem, target string) bool {
	t := strings.Trim(strings.TrimSpace(target), "/")
	if t == "" {
		return false
	}
	for _, m := range flat {
		u := strings.Trim(strings.TrimSpace(m.URL), "/")
		if u == "" || u == "#" {
			continue
		}
		if u == t || strings.HasSuffix(u, "/"+t) {
			return true
		}
	}
	return false
}
