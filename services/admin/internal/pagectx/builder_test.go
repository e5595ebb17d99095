package pagectx

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/adminboard/pkg/config"
	"github.com/adminboard/services/admin/internal/model"
	"github.com/adminboard/services/admin/internal/rbac"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Menu{}, &model.Right{}, &model.EmpInfo{}, &model.Feedback{}))
	return db
}

func newBuilder(db *gorm.DB) *Builder {
	cache := rbac.NewMenuCache(rbac.NewResolver(db), &config.MenuCacheConfig{Enabled: true, TTLSeconds: 300, MaxRoles: 100})
	return NewBuilder(db, cache, rbac.NewPermResolver(db), nil)
}

func testCtx(t *testing.T, app *fiber.App, path, loginID, roleID, empID string) *fiber.Ctx {
	t.Helper()
	reqCtx := &fasthttp.RequestCtx{}
	reqCtx.Request.SetRequestURI(path)
	c := app.AcquireCtx(reqCtx)
	c.Locals("loginId", loginID)
	c.Locals("roleId", roleID)
	c.Locals("empId", empID)
	return c
}

func TestBuildResolvesDisplayName(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&model.EmpInfo{EmpID: "e1", EmpName: "Jane Doe", Status: "active"}).Error)

	app := fiber.New()
	c := testCtx(t, app, "/admin/dashboard", "jane", "1", "e1")
	defer app.ReleaseCtx(c)

	pc, err := newBuilder(db).Build(c)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", pc.User.DisplayName)
	assert.Equal(t, "jane", pc.User.LoginID)
}

func TestBuildFallsBackToLoginID(t *testing.T) {
	db := newTestDB(t)

	app := fiber.New()
	c := testCtx(t, app, "/admin/dashboard", "jane", "1", "missing")
	defer app.ReleaseCtx(c)

	pc, err := newBuilder(db).Build(c)
	require.NoError(t, err)
	assert.Equal(t, "jane", pc.User.DisplayName)
}

func TestBuildFeedbackNotifications(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&model.Menu{MenuID: "1", MenuName: "Feedback", ParentID: "0", IsParents: "Y", URL: "admin/feedback", MenuOrder: 1, Status: "active", ActiveFlag: "Y"}).Error)
	require.NoError(t, db.Create(&model.Right{RoleID: "1", MenuID: "1", ViewPermit: "Y", Status: "active"}).Error)
	require.NoError(t, db.Create(&model.Feedback{Name: "A", Phone: "1", IsRead: false}).Error)
	require.NoError(t, db.Create(&model.Feedback{Name: "B", Phone: "2", IsRead: false}).Error)
	require.NoError(t, db.Create(&model.Feedback{Name: "C", Phone: "3", IsRead: true}).Error)

	app := fiber.New()
	c := testCtx(t, app, "/admin/feedback", "jane", "1", "")
	defer app.ReleaseCtx(c)

	pc, err := newBuilder(db).Build(c)
	require.NoError(t, err)
	assert.True(t, pc.CanViewFeedback)
	assert.Equal(t, int64(2), pc.FeedbackUnreadCount)
	assert.Len(t, pc.FeedbackUnreadOldest, 2)
	require.Len(t, pc.MenuTree, 1)
}

func TestBuildFeedbackHiddenWithoutMenu(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&model.Feedback{Name: "A", Phone: "1", IsRead: false}).Error)

	app := fiber.New()
	c := testCtx(t, app, "/admin/dashboard", "jane", "1", "")
	defer app.ReleaseCtx(c)

	pc, err := newBuilder(db).Build(c)
	require.NoError(t, err)
	assert.False(t, pc.CanViewFeedback)
	assert.Equal(t, int64(0), pc.FeedbackUnreadCount)
	assert.Empty(t, pc.FeedbackUnreadOldest)
}
