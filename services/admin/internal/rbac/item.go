package rbac

// MenuItem 侧边栏菜单节点，扁平列表与树共用同一结构
type MenuItem struct {
	MenuID    string      `json:"menuId"`
	MenuName  string      `json:"menuName"`
	ParentID  string      `json:"parentId"`
	IsParents string      `json:"isParents"`
	URL       string      `json:"url"`
	MenuOrder int         `json:"menuOrder"`
	Icon      string      `json:"icon"`
	IconCSS   string      `json:"iconCss"`
	Children  []*MenuItem `json:"children"`
}

// Clone 深拷贝节点及其子树
func (m *MenuItem) Clone() *MenuItem {
	if m == nil {
		return nil
	}
	c := *m
	c.Children = CloneItems(m.Children)
	return &c
}

// CloneItems 深拷贝节点切片
func CloneItems(items []*MenuItem) []*MenuItem {
	if items == nil {
		return nil
	}
	out := make([]*MenuItem, 0, len(items))
	for _, it := range items {
		out = append(out, it.Clone())
	}
	return out
}
