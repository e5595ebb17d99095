package rbac

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adminboard/services/admin/internal/model"
)

func TestVisibleMenusEmptyRole(t *testing.T) {
	db := newTestDB(t)
	seedMenu(t, db, model.Menu{MenuID: "1", MenuName: "Home", ParentID: "0", IsParents: "Y", URL: "admin/home", MenuOrder: 1})
	seedRight(t, db, model.Right{RoleID: "1", MenuID: "1", ViewPermit: "Y"})

	r := NewResolver(db)
	flat, err := r.VisibleMenus(context.Background(), "  ")
	require.NoError(t, err)
	assert.Empty(t, flat)
}

func TestVisibleMenusNormalizedRoleAndMenuIDs(t *testing.T) {
	db := newTestDB(t)
	seedMenu(t, db, model.Menu{MenuID: "1", MenuName: "Home", ParentID: "0", IsParents: "Y", URL: "admin/home", MenuOrder: 1})
	// 权限行里role和menu都带前导零，照样要命中
	seedRight(t, db, model.Right{RoleID: "01", MenuID: "01", ViewPermit: "Y"})

	r := NewResolver(db)
	flat, err := r.VisibleMenus(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, flat, 1)
	assert.Equal(t, "Home", flat[0].MenuName)

	// 反过来查询侧带前导零也一样
	flat, err = r.VisibleMenus(context.Background(), "01")
	require.NoError(t, err)
	assert.Len(t, flat, 1)
}

func TestVisibleMenusAncestorBackfill(t *testing.T) {
	db := newTestDB(t)
	seedMenu(t, db, model.Menu{MenuID: "1", MenuName: "System", ParentID: "0", IsParents: "Y", URL: "#", MenuOrder: 1})
	seedMenu(t, db, model.Menu{MenuID: "2", MenuName: "Security", ParentID: "1", URL: "#", MenuOrder: 2})
	seedMenu(t, db, model.Menu{MenuID: "3", MenuName: "Menus", ParentID: "2", URL: "admin/menus", MenuOrder: 3})
	// 只给叶子节点授权
	seedRight(t, db, model.Right{RoleID: "5", MenuID: "3", ViewPermit: "Y"})

	r := NewResolver(db)
	flat, err := r.VisibleMenus(context.Background(), "5")
	require.NoError(t, err)

	ids := make([]string, 0, len(flat))
	for _, m := range flat {
		ids = append(ids, NormalizeID(m.MenuID))
	}
	assert.ElementsMatch(t, []string{"1", "2", "3"}, ids)
}

func TestVisibleMenusSkipsInactive(t *testing.T) {
	db := newTestDB(t)
	seedMenu(t, db, model.Menu{MenuID: "1", MenuName: "Live", ParentID: "0", IsParents: "Y", URL: "admin/a", MenuOrder: 1})
	seedMenu(t, db, model.Menu{MenuID: "2", MenuName: "Dead", ParentID: "0", IsParents: "Y", URL: "admin/b", MenuOrder: 2, Status: "inactive"})
	seedMenu(t, db, model.Menu{MenuID: "3", MenuName: "Flagged", ParentID: "0", IsParents: "Y", URL: "admin/c", MenuOrder: 3, ActiveFlag: "N"})
	seedRight(t, db, model.Right{RoleID: "1", MenuID: "1", ViewPermit: "Y"})
	seedRight(t, db, model.Right{RoleID: "1", MenuID: "2", ViewPermit: "Y"})
	seedRight(t, db, model.Right{RoleID: "1", MenuID: "3", ViewPermit: "Y"})

	r := NewResolver(db)
	flat, err := r.VisibleMenus(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, flat, 1)
	assert.Equal(t, "Live", flat[0].MenuName)
}

func TestVisibleMenusSkipsRevokedRights(t *testing.T) {
	db := newTestDB(t)
	seedMenu(t, db, model.Menu{MenuID: "1", MenuName: "A", ParentID: "0", IsParents: "Y", URL: "admin/a", MenuOrder: 1})
	seedMenu(t, db, model.Menu{MenuID: "2", MenuName: "B", ParentID: "0", IsParents: "Y", URL: "admin/b", MenuOrder: 2})
	seedRight(t, db, model.Right{RoleID: "1", MenuID: "1", ViewPermit: "N"})
	seedRight(t, db, model.Right{RoleID: "1", MenuID: "2", ViewPermit: "Y", Status: "inactive"})

	r := NewResolver(db)
	flat, err := r.VisibleMenus(context.Background(), "1")
	require.NoError(t, err)
	assert.Empty(t, flat)
}

func TestVisibleMenusSortedByOrderThenID(t *testing.T) {
	db := newTestDB(t)
	seedMenu(t, db, model.Menu{MenuID: "3", MenuName: "C", ParentID: "0", IsParents: "Y", URL: "admin/c", MenuOrder: 2})
	seedMenu(t, db, model.Menu{MenuID: "1", MenuName: "A", ParentID: "0", IsParents: "Y", URL: "admin/a", MenuOrder: 1})
	seedMenu(t, db, model.Menu{MenuID: "2", MenuName: "B", ParentID: "0", IsParents: "Y", URL: "admin/b", MenuOrder: 2})
	for _, id := range []string{"1", "2", "3"} {
		seedRight(t, db, model.Right{RoleID: "9", MenuID: id, ViewPermit: "Y"})
	}

	r := NewResolver(db)
	flat, err := r.VisibleMenus(context.Background(), "9")
	require.NoError(t, err)
	require.Len(t, flat, 3)
	assert.Equal(t, "A", flat[0].MenuName)
	assert.Equal(t, "B", flat[1].MenuName)
	assert.Equal(t, "C", flat[2].MenuName)
}

func TestVisibleMenusParentCycleGuard(t *testing.T) {
	db := newTestDB(t)
	// 两个节点互为父节点，回填必须在步数上限内停下来
	seedMenu(t, db, model.Menu{MenuID: "1", MenuName: "A", ParentID: "2", URL: "admin/a", MenuOrder: 1})
	seedMenu(t, db, model.Menu{MenuID: "2", MenuName: "B", ParentID: "1", URL: "admin/b", MenuOrder: 2})
	seedRight(t, db, model.Right{RoleID: "1", MenuID: "1", ViewPermit: "Y"})

	r := NewResolver(db)
	flat, err := r.VisibleMenus(context.Background(), "1")
	require.NoError(t, err)
	assert.Len(t, flat, 2)
}
