package menu

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/adminboard/pkg/dal"
	"github.com/adminboard/services/admin/internal/model"
	"github.com/adminboard/services/admin/internal/rbac"
)

// Repository 菜单仓储
type Repository struct {
	*dal.BaseRepository[model.Menu]
	db *gorm.DB
}

// NewRepository 创建菜单仓储
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		BaseRepository: dal.NewBaseRepository[model.Menu](db),
		db:             db,
	}
}

// List 分页查询菜单，q 在 menu_id/menu_name/url/status 上模糊匹配
func (r *Repository) List(ctx context.Context, q string, p *dal.Pagination) (*dal.PagedResult[model.Menu], error) {
	p.Normalize()

	db := r.db.WithContext(ctx).Model(&model.Menu{})
	if q = strings.TrimSpace(q); q != "" {
		like := "%" + q + "%"
		db = db.Where(
			"menu_id LIKE ? OR menu_name LIKE ? OR url LIKE ? OR status LIKE ?",
			like, like, like, like,
		)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, err
	}

	var menus []model.Menu
	err := db.Order("menu_id").Order("parent_id").Order("menu_order").
		Offset(p.Offset()).Limit(p.PageSize).
		Find(&menus).Error
	if err != nil {
		return nil, err
	}
	return dal.NewPagedResult(menus, total, p), nil
}

// Get 按ID查菜单，未找到返回 nil, nil
func (r *Repository) Get(ctx context.Context, menuID string) (*model.Menu, error) {
	return r.FindOne(ctx, map[string]interface{}{"menu_id": menuID})
}

// CreateMenu 新建菜单，标志列统一归一化后落库
func (r *Repository) CreateMenu(ctx context.Context, m *model.Menu, createdBy string) error {
	m.IsParents = rbac.YN(m.IsParents)
	m.ActiveFlag = strings.ToUpper(strings.TrimSpace(defaultStr(m.ActiveFlag, "Y")))
	m.Status = strings.ToLower(strings.TrimSpace(defaultStr(m.Status, "active")))
	m.CreatedBy = createdBy
	m.UpdatedBy = createdBy
	return r.db.WithContext(ctx).Create(m).Error
}

// UpdateMenu 更新菜单
func (r *Repository) UpdateMenu(ctx context.Context, m *model.Menu, updatedBy string) error {
	m.IsParents = rbac.YN(m.IsParents)
	m.ActiveFlag = strings.ToUpper(strings.TrimSpace(defaultStr(m.ActiveFlag, "Y")))
	m.Status = strings.ToLower(strings.TrimSpace(defaultStr(m.Status, "active")))
	m.UpdatedBy = updatedBy
	return r.db.WithContext(ctx).Save(m).Error
}

// DeleteSafe 安全删除
// 有子菜单或仍挂在角色权限上的菜单拒绝删除，返回面向用户的原因
// 子节点和权限关联都按归一化ID统计，防止 "01"/"1" 式脏数据漏网
func (r *Repository) DeleteSafe(ctx context.Context, menuID string) (bool, string, error) {
	row, err := r.Get(ctx, menuID)
	if err != nil {
		return false, "", err
	}
	if row == nil {
		return false, fmt.Sprintf("Menu '%s' not found.", menuID), nil
	}

	mid := rbac.NormalizeID(menuID)

	var menus []model.Menu
	if err := r.db.WithContext(ctx).Find(&menus).Error; err != nil {
		return false, "", err
	}
	children := 0
	for i := range menus {
		if rbac.NormalizeID(menus[i].ParentID) == mid && rbac.NormalizeID(menus[i].MenuID) != mid {
			children++
		}
	}
	if children > 0 {
		return false, fmt.Sprintf("Cannot delete menu '%s': it has %d child item(s).", menuID, children), nil
	}

	var rights []model.Right
	if err := r.db.WithContext(ctx).Find(&rights).Error; err != nil {
		return false, "", err
	}
	linked := 0
	for i := range rights {
		if rbac.NormalizeID(rights[i].MenuID) == mid {
			linked++
		}
	}
	if linked > 0 {
		return false, fmt.Sprintf("Cannot delete menu '%s': it is assigned to %d role(s).", menuID, linked), nil
	}

	if err := r.db.WithContext(ctx).Where("menu_id = ?", row.MenuID).Delete(&model.Menu{}).Error; err != nil {
		return false, "", err
	}
	return true, fmt.Sprintf("Menu '%s' deleted successfully.", menuID), nil
}

// AllItems 全量菜单转节点列表，管理端树视图用
func (r *Repository) AllItems(ctx context.Context) ([]*rbac.MenuItem, error) {
	var menus []model.Menu
	if err := r.db.WithContext(ctx).
		Order("menu_order").Order("menu_id").
		Find(&menus).Error; err != nil {
		return nil, err
	}
	items := make([]*rbac.MenuItem, 0, len(menus))
	for i := range menus {
		items = append(items, menuItem(&menus[i]))
	}
	return items, nil
}

func menuItem(m *model.Menu) *rbac.MenuItem {
	return &rbac.MenuItem{
		MenuID:    strings.TrimSpace(m.MenuID),
		MenuName:  strings.TrimSpace(m.MenuName),
		ParentID:  strings.TrimSpace(defaultStr(m.ParentID, "0")),
		IsParents: strings.TrimSpace(defaultStr(m.IsParents, "N")),
		URL:       strings.TrimSpace(defaultStr(m.URL, "#")),
		MenuOrder: m.MenuOrder,
		Icon:      strings.TrimSpace(m.FontAwesomeIcon),
		IconCSS:   strings.TrimSpace(m.FAwesomeIconCSS),
		Children:  []*rbac.MenuItem{},
	}
}

func defaultStr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
