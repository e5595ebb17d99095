package rbac

import (
	"testing"

	"github.com/glebarez/sqlite"
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
	require.NoError(t, db.AutoMigrate(&model.Menu{}, &model.Right{}))
	return db
}

func seedMenu(t *testing.T, db *gorm.DB, m model.Menu) {
	t.Helper()
	if m.Status == "" {
		m.Status = "active"
	}
	if m.ActiveFlag == "" {
		m.ActiveFlag = "Y"
	}
	if m.IsParents == "" {
		m.IsParents = "N"
	}
	require.NoError(t, db.Create(&m).Error)
}

func seedRight(t *testing.T, db *gorm.DB, r model.Right) {
	t.Helper()
	if r.Status == "" {
		r.Status = "active"
	}
	if r.ViewPermit == "" {
		r.ViewPermit = "N"
	}
	if r.CreatePermit == "" {
		r.CreatePermit = "N"
	}
	if r.EditPermit == "" {
		r.EditPermit = "N"
	}
	if r.DeletePermit == "" {
		r.DeletePermit = "N"
	}
	require.NoError(t, db.Create(&r).Error)
}
