package menu

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/adminboard/pkg/dal"
	"github.com/adminboard/services/admin/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Menu{}, &model.Right{}))
	return db
}

func seed(t *testing.T, db *gorm.DB, m model.Menu) {
	t.Helper()
	if m.Status == "" {
		m.Status = "active"
	}
	if m.ActiveFlag == "" {
		m.ActiveFlag = "Y"
	}
	require.NoError(t, db.Create(&m).Error)
}

func TestDeleteSafeRefusesWithChildren(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	seed(t, db, model.Menu{MenuID: "10", MenuName: "Parent", ParentID: "0", IsParents: "Y"})
	seed(t, db, model.Menu{MenuID: "11", MenuName: "Child A", ParentID: "10"})
	seed(t, db, model.Menu{MenuID: "12", MenuName: "Child B", ParentID: "010"}) // 归一化后同样算子节点

	ok, msg, err := repo.DeleteSafe(context.Background(), "10")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, msg, "2 child item(s)")

	// 菜单还在
	m, err := repo.Get(context.Background(), "10")
	require.NoError(t, err)
	assert.NotNil(t, m)
}

func TestDeleteSafeRefusesWhenAssignedToRoles(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	seed(t, db, model.Menu{MenuID: "10", MenuName: "Leaf", ParentID: "0", IsParents: "Y"})
	require.NoError(t, db.Create(&model.Right{RoleID: "1", MenuID: "10", ViewPermit: "Y", Status: "active"}).Error)
	require.NoError(t, db.Create(&model.Right{RoleID: "2", MenuID: "010", ViewPermit: "Y", Status: "active"}).Error)

	ok, msg, err := repo.DeleteSafe(context.Background(), "10")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, msg, "2 role(s)")
}

func TestDeleteSafeDeletesLeaf(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	seed(t, db, model.Menu{MenuID: "10", MenuName: "Leaf", ParentID: "0", IsParents: "Y"})

	ok, msg, err := repo.DeleteSafe(context.Background(), "10")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, msg, "deleted successfully")

	m, err := repo.Get(context.Background(), "10")
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestDeleteSafeNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)

	ok, msg, err := repo.DeleteSafe(context.Background(), "99")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, msg, "not found")
}

func TestListFilterAndPaging(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	seed(t, db, model.Menu{MenuID: "1", MenuName: "Dashboard", ParentID: "0", IsParents: "Y", URL: "admin/dashboard"})
	seed(t, db, model.Menu{MenuID: "2", MenuName: "Roles", ParentID: "0", IsParents: "Y", URL: "admin/roles"})
	seed(t, db, model.Menu{MenuID: "3", MenuName: "Menus", ParentID: "0", IsParents: "Y", URL: "admin/menus"})

	p := &dal.Pagination{Page: 1, PageSize: 10}
	res, err := repo.List(context.Background(), "role", p)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Total)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Roles", res.Items[0].MenuName)

	res, err = repo.List(context.Background(), "", &dal.Pagination{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Total)
	assert.Len(t, res.Items, 2)
}

func TestCreateMenuCoercesFlags(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)

	m := &model.Menu{MenuID: "5", MenuName: "X", ParentID: "0", IsParents: " y ", ActiveFlag: " y ", Status: " Active "}
	require.NoError(t, repo.CreateMenu(context.Background(), m, "admin"))
	assert.Equal(t, "Y", m.IsParents)
	assert.Equal(t, "Y", m.ActiveFlag)
	assert.Equal(t, "active", m.Status)
	assert.Equal(t, "admin", m.CreatedBy)
}
