package rights

import (
	"context"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/adminboard/pkg/dal"
	"github.com/adminboard/services/admin/internal/model"
	"github.com/adminboard/services/admin/internal/rbac"
)

// Repository 权限仓储
type Repository struct {
	*dal.BaseRepository[model.Right]
	db *gorm.DB
}

// NewRepository 创建权限仓储
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		BaseRepository: dal.NewBaseRepository[model.Right](db),
		db:             db,
	}
}

// Get 按 (role_id, menu_id) 查权限行，未找到返回 nil, nil
func (r *Repository) Get(ctx context.Context, roleID, menuID string) (*model.Right, error) {
	return r.FindOne(ctx, map[string]interface{}{"role_id": roleID, "menu_id": menuID})
}

// ListByRole 查角色的全部权限行
func (r *Repository) ListByRole(ctx context.Context, roleID string) ([]model.Right, error) {
	return r.FindAll(ctx, map[string]interface{}{"role_id": roleID}, dal.WithOrder("menu_id"))
}

// Upsert 按 (role_id, menu_id) 落权限行，存在则更新，不存在则新建
// 四项许可统一走 Y/N 归一化，status 统一小写
func (r *Repository) Upsert(ctx context.Context, req *UpsertRequest, by string) (*model.Right, error) {
	existing, err := r.Get(ctx, req.RoleID, req.MenuID)
	if err != nil {
		return nil, err
	}

	status := strings.ToLower(strings.TrimSpace(req.Status))
	if status == "" {
		status = "active"
	}

	if existing == nil {
		row := &model.Right{
			RoleID:       req.RoleID,
			MenuID:       req.MenuID,
			CreatePermit: rbac.YN(req.CreatePermit),
			ViewPermit:   rbac.YN(req.ViewPermit),
			EditPermit:   rbac.YN(req.EditPermit),
			DeletePermit: rbac.YN(req.DeletePermit),
			Status:       status,
		}
		row.CreatedBy = by
		row.UpdatedBy = by
		if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
			return nil, err
		}
		return row, nil
	}

	existing.CreatePermit = rbac.YN(req.CreatePermit)
	existing.ViewPermit = rbac.YN(req.ViewPermit)
	existing.EditPermit = rbac.YN(req.EditPermit)
	existing.DeletePermit = rbac.YN(req.DeletePermit)
	existing.Status = status
	existing.UpdatedBy = by
	if err := r.db.WithContext(ctx).Save(existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteRight 删除权限行
func (r *Repository) DeleteRight(ctx context.Context, roleID, menuID string) error {
	return r.db.WithContext(ctx).
		Where("role_id = ? AND menu_id = ?", roleID, menuID).
		Delete(&model.Right{}).Error
}

// Matrix 权限矩阵，全量菜单配上该角色的许可，按归一化ID对齐
func (r *Repository) Matrix(ctx context.Context, roleID string) ([]MatrixRow, error) {
	var menus []model.Menu
	if err := r.db.WithContext(ctx).Find(&menus).Error; err != nil {
		return nil, err
	}
	var all []model.Right
	if err := r.db.WithContext(ctx).Find(&all).Error; err != nil {
		return nil, err
	}

	rid := rbac.NormalizeID(roleID)
	byMenu := make(map[string]*model.Right, len(all))
	for i := range all {
		rt := &all[i]
		if rbac.NormalizeID(rt.RoleID) != rid {
			continue
		}
		if mid := rbac.NormalizeID(rt.MenuID); mid != "" {
			byMenu[mid] = rt
		}
	}

	rows := make([]MatrixRow, 0, len(menus))
	for i := range menus {
		m := &menus[i]
		row := MatrixRow{
			MenuID:       strings.TrimSpace(m.MenuID),
			MenuName:     strings.TrimSpace(m.MenuName),
			ParentID:     strings.TrimSpace(m.ParentID),
			URL:          strings.TrimSpace(m.URL),
			MenuOrder:    m.MenuOrder,
			CreatePermit: "N",
			ViewPermit:   "N",
			EditPermit:   "N",
			DeletePermit: "N",
		}
		if rt, ok := byMenu[rbac.NormalizeID(m.MenuID)]; ok {
			row.CreatePermit = rbac.YN(rt.CreatePermit)
			row.ViewPermit = rbac.YN(rt.ViewPermit)
			row.EditPermit = rbac.YN(rt.EditPermit)
			row.DeletePermit = rbac.YN(rt.DeletePermit)
			row.Assigned = true
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].MenuOrder != rows[j].MenuOrder {
			return rows[i].MenuOrder < rows[j].MenuOrder
		}
		return rows[i].MenuID < rows[j].MenuID
	})
	return rows, nil
}
