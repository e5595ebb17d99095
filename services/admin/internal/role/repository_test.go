package role

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/adminboard/services/admin/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Role{}, &model.Right{}, &model.User{}))
	return db
}

func TestDeleteSafeRefusesWithRights(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	require.NoError(t, repo.CreateRole(context.Background(), &model.Role{RoleID: "2", RoleName: "Editor"}, "admin"))
	require.NoError(t, db.Create(&model.Right{RoleID: "02", MenuID: "1", ViewPermit: "Y", Status: "active"}).Error)

	ok, msg, err := repo.DeleteSafe(context.Background(), "2")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, msg, "1 rights record(s)")
}

func TestDeleteSafeRefusesWithUsers(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	require.NoError(t, repo.CreateRole(context.Background(), &model.Role{RoleID: "2", RoleName: "Editor"}, "admin"))
	require.NoError(t, db.Create(&model.User{LoginID: "u1", EmpID: "e1", RoleID: "02", Email: "u@x.y", Password: "h", Status: "A"}).Error)

	ok, msg, err := repo.DeleteSafe(context.Background(), "2")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, msg, "1 user(s)")
}

func TestDeleteSafeDeletesUnreferenced(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	require.NoError(t, repo.CreateRole(context.Background(), &model.Role{RoleID: "3", RoleName: "Temp"}, "admin"))

	ok, msg, err := repo.DeleteSafe(context.Background(), "3")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, msg, "deleted successfully")

	row, err := repo.Get(context.Background(), "3")
	require.NoError(t, err)
	assert.Nil(t, row)
}
