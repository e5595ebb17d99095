package role

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/adminboard/pkg/dal"
	"github.com/adminboard/services/admin/internal/model"
	"github.com/adminboard/services/admin/internal/rbac"
)

// Repository 角色仓储
type Repository struct {
	*dal.BaseRepository[model.Role]
	db *gorm.DB
}

// NewRepository 创建角色仓储
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		BaseRepository: dal.NewBaseRepository[model.Role](db),
		db:             db,
	}
}

// List 分页查询角色
func (r *Repository) List(ctx context.Context, q string, p *dal.Pagination) (*dal.PagedResult[model.Role], error) {
	p.Normalize()

	db := r.db.WithContext(ctx).Model(&model.Role{})
	if q = strings.TrimSpace(q); q != "" {
		like := "%" + q + "%"
		db = db.Where("role_id LIKE ? OR role_name LIKE ?", like, like)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, err
	}

	var roles []model.Role
	if err := db.Order("role_id").Offset(p.Offset()).Limit(p.PageSize).Find(&roles).Error; err != nil {
		return nil, err
	}
	return dal.NewPagedResult(roles, total, p), nil
}

// Get 按ID查角色，未找到返回 nil, nil
func (r *Repository) Get(ctx context.Context, roleID string) (*model.Role, error) {
	return r.FindOne(ctx, map[string]interface{}{"role_id": roleID})
}

// CreateRole 新建角色
func (r *Repository) CreateRole(ctx context.Context, role *model.Role, by string) error {
	role.Status = strings.ToLower(strings.TrimSpace(defaultStr(role.Status, "active")))
	role.CreatedBy = by
	role.UpdatedBy = by
	return r.db.WithContext(ctx).Create(role).Error
}

// UpdateRole 更新角色
func (r *Repository) UpdateRole(ctx context.Context, role *model.Role, by string) error {
	role.Status = strings.ToLower(strings.TrimSpace(defaultStr(role.Status, "active")))
	role.UpdatedBy = by
	return r.db.WithContext(ctx).Save(role).Error
}

// DeleteSafe 安全删除角色
// 角色还挂着权限行或被用户引用时拒绝删除，引用按归一化ID统计
func (r *Repository) DeleteSafe(ctx context.Context, roleID string) (bool, string, error) {
	row, err := r.Get(ctx, roleID)
	if err != nil {
		return false, "", err
	}
	if row == nil {
		return false, fmt.Sprintf("Role '%s' not found.", roleID), nil
	}

	rid := rbac.NormalizeID(roleID)

	var rights []model.Right
	if err := r.db.WithContext(ctx).Find(&rights).Error; err != nil {
		return false, "", err
	}
	linked := 0
	for i := range rights {
		if rbac.NormalizeID(rights[i].RoleID) == rid {
			linked++
		}
	}
	if linked > 0 {
		return false, fmt.Sprintf("Cannot delete role '%s': it has %d rights record(s).", roleID, linked), nil
	}

	var users []model.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return false, "", err
	}
	assigned := 0
	for i := range users {
		if rbac.NormalizeID(users[i].RoleID) == rid {
			assigned++
		}
	}
	if assigned > 0 {
		return false, fmt.Sprintf("Cannot delete role '%s': it is assigned to %d user(s).", roleID, assigned), nil
	}

	if err := r.db.WithContext(ctx).Where("role_id = ?", row.RoleID).Delete(&model.Role{}).Error; err != nil {
		return false, "", err
	}
	return true, fmt.Sprintf("Role '%s' deleted successfully.", roleID), nil
}

func defaultStr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
