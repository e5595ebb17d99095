package rbac

import (
	"context"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/adminboard/services/admin/internal/model"
)

// Resolver 按角色解析可见菜单
// 归一化匹配放在Go侧做，不依赖数据库方言的 TRIM/LTRIM 行为
type Resolver struct {
	db *gorm.DB
}

// NewResolver 创建可见性解析器
func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{db: db}
}

// VisibleMenus 解析角色可见的扁平菜单列表
// 直接可见 = 活跃菜单 × 活跃且 view_permit=Y 的权限行，按归一化ID关联
// 再沿 parent 链回填活跃祖先，保证树不断链，脏数据走默认值而不是报错
func (r *Resolver) VisibleMenus(ctx context.Context, roleID string) ([]*MenuItem, error) {
	if strings.TrimSpace(roleID) == "" {
		return []*MenuItem{}, nil
	}
	rid := NormalizeID(roleID)

	var menus []model.Menu
	if err := r.db.WithContext(ctx).Find(&menus).Error; err != nil {
		return nil, err
	}
	var rights []model.Right
	if err := r.db.WithContext(ctx).Find(&rights).Error; err != nil {
		return nil, err
	}

	// 活跃菜单按归一化ID建索引
	active := make([]*model.Menu, 0, len(menus))
	byID := make(map[string]*model.Menu, len(menus))
	for i := range menus {
		m := &menus[i]
		if !IsActiveStatus(m.Status) || !IsYes(m.ActiveFlag) {
			continue
		}
		active = append(active, m)
		if mid := NormalizeID(m.MenuID); mid != "" {
			byID[mid] = m
		}
	}

	// 该角色有查看权的菜单ID集合
	viewable := make(map[string]bool, len(rights))
	for i := range rights {
		rt := &rights[i]
		if !IsActiveStatus(rt.Status) || !IsYes(rt.ViewPermit) {
			continue
		}
		if NormalizeID(rt.RoleID) != rid {
			continue
		}
		if mid := NormalizeID(rt.MenuID); mid != "" {
			viewable[mid] = true
		}
	}

	included := make(map[string]*model.Menu)
	var visible []*model.Menu
	for _, m := range active {
		mid := NormalizeID(m.MenuID)
		if mid == "" || !viewable[mid] {
			continue
		}
		visible = append(visible, m)
		included[mid] = m
	}
	if len(visible) == 0 {
		return []*MenuItem{}, nil
	}

	// 回填活跃祖先，环和超深链靠步数上限兜底
	for _, m := range visible {
		cur := m
		for guard := 0; guard < 60; guard++ {
			if isRootMenu(cur) {
				break
			}
			pid := NormalizeID(cur.ParentID)
			if pid == "" || pid == "0" {
				break
			}
			parent, ok := byID[pid]
			if !ok {
				break
			}
			if pmid := NormalizeID(parent.MenuID); pmid != "" {
				included[pmid] = parent
			}
			cur = parent
		}
	}

	flat := make([]*MenuItem, 0, len(included))
	for _, m := range included {
		flat = append(flat, menuToItem(m))
	}
	sort.SliceStable(flat, func(i, j int) bool {
		if flat[i].MenuOrder != flat[j].MenuOrder {
			return flat[i].MenuOrder < flat[j].MenuOrder
		}
		return flat[i].MenuID < flat[j].MenuID
	})
	return flat, nil
}

func isRootMenu(m *model.Menu) bool {
	pid := NormalizeID(defaultStr(m.ParentID, "0"))
	mid := NormalizeID(m.MenuID)
	return IsYes(m.IsParents) || pid == "" || pid == "0" || pid == mid
}

func menuToItem(m *model.Menu) *MenuItem {
	return &MenuItem{
		MenuID:    strings.TrimSpace(m.MenuID),
		MenuName:  strings.TrimSpace(m.MenuName),
		ParentID:  strings.TrimSpace(defaultStr(m.ParentID, "0")),
		IsParents: strings.TrimSpace(defaultStr(m.IsParents, "N")),
		URL:       strings.TrimSpace(defaultStr(m.URL, "#")),
		MenuOrder: m.MenuOrder,
		Icon:      strings.TrimSpace(m.FontAwesomeIcon),
		IconCSS:   strings.TrimSpace(m.FAwesomeIconCSS),
		Children:  []*MenuItem{},
	}
}

func defaultStr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
