package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id, parent string, order int) *MenuItem {
	return &MenuItem{MenuID: id, ParentID: parent, IsParents: "N", MenuOrder: order}
}

func TestBuildTreeNormalizedParentMatch(t *testing.T) {
	// parent_id "01" 要挂到 menu_id "1" 下
	items := []*MenuItem{
		{MenuID: "1", ParentID: "0", IsParents: "Y", MenuOrder: 1},
		item("2", "01", 2),
	}
	roots := BuildTree(items)
	require.Len(t, roots, 1)
	assert.Equal(t, "1", roots[0].MenuID)
	require.Len(t, roots[0].Children, 1)
	assert.Equal(t, "2", roots[0].Children[0].MenuID)
}

func TestBuildTreeOrphanPromoted(t *testing.T) {
	items := []*MenuItem{
		{MenuID: "1", ParentID: "0", IsParents: "Y", MenuOrder: 1},
		item("9", "77", 2), // 父节点不存在
	}
	roots := BuildTree(items)
	require.Len(t, roots, 2)
	ids := []string{roots[0].MenuID, roots[1].MenuID}
	assert.Contains(t, ids, "9")
}

func TestBuildTreeDedupRoots(t *testing.T) {
	items := []*MenuItem{
		{MenuID: "01", ParentID: "0", IsParents: "Y", MenuOrder: 1, MenuName: "first"},
		{MenuID: "1", ParentID: "0", IsParents: "Y", MenuOrder: 2, MenuName: "dup"},
	}
	roots := BuildTree(items)
	require.Len(t, roots, 1)
	assert.Equal(t, "first", roots[0].MenuName)
}

func TestBuildTreeSortRecursive(t *testing.T) {
	items := []*MenuItem{
		{MenuID: "2", ParentID: "0", IsParents: "Y", MenuOrder: 2},
		{MenuID: "1", ParentID: "0", IsParents: "Y", MenuOrder: 1},
		item("5", "1", 9),
		item("4", "1", 3),
		item("3", "1", 3), // 同序号按menu_id
	}
	roots := BuildTree(items)
	require.Len(t, roots, 2)
	assert.Equal(t, "1", roots[0].MenuID)
	assert.Equal(t, "2", roots[1].MenuID)

	children := roots[0].Children
	require.Len(t, children, 3)
	assert.Equal(t, "3", children[0].MenuID)
	assert.Equal(t, "4", children[1].MenuID)
	assert.Equal(t, "5", children[2].MenuID)
}

func TestBuildTreeSelfParentIsRoot(t *testing.T) {
	items := []*MenuItem{item("7", "7", 1)}
	roots := BuildTree(items)
	require.Len(t, roots, 1)
	assert.Equal(t, "7", roots[0].MenuID)
}

func TestBuildTreeEmpty(t *testing.T) {
	roots := BuildTree(nil)
	assert.NotNil(t, roots)
	assert.Empty(t, roots)
}
