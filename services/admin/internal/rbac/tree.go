package rbac

import (
	"sort"
	"strings"
)

// BuildTree 把扁平菜单组装成树
// ID就地归一化，孤儿节点提升为根而不是丢弃，根按归一化ID去重后递归排序
func BuildTree(items []*MenuItem) []*MenuItem {
	byID := make(map[string]*MenuItem, len(items))
	for _, m := range items {
		m.Children = []*MenuItem{}
		m.MenuID = NormalizeID(m.MenuID)
		m.ParentID = NormalizeID(defaultStr(m.ParentID, "0"))
		m.IsParents = strings.ToUpper(strings.TrimSpace(defaultStr(m.IsParents, "N")))
		byID[m.MenuID] = m
	}

	isRoot := func(m *MenuItem) bool {
		return m.IsParents == "Y" || m.ParentID == "" || m.ParentID == "0" || m.ParentID == m.MenuID
	}

	var roots []*MenuItem
	for _, m := range items {
		if isRoot(m) {
			roots = append(roots, m)
			continue
		}
		if parent, ok := byID[m.ParentID]; ok {
			parent.Children = append(parent.Children, m)
		} else {
			roots = append(roots, m)
		}
	}

	// 根去重，同ID保留先出现的
	seen := make(map[string]bool, len(roots))
	uniq := roots[:0]
	for _, r := range roots {
		if r.MenuID == "" || seen[r.MenuID] {
			continue
		}
		seen[r.MenuID] = true
		uniq = append(uniq, r)
	}
	roots = uniq

	var sortNodes func(nodes []*MenuItem)
	sortNodes = func(nodes []*MenuItem) {
		sort.SliceStable(nodes, func(i, j int) bool {
			if nodes[i].MenuOrder != nodes[j].MenuOrder {
				return nodes[i].MenuOrder < nodes[j].MenuOrder
			}
			return nodes[i].MenuID < nodes[j].MenuID
		})
		for _, n := range nodes {
			sortNodes(n.Children)
		}
	}
	sortNodes(roots)

	if roots == nil {
		roots = []*MenuItem{}
	}
	return roots
}
