package rbac

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/adminboard/services/admin/internal/model"
)

func TestResolveNonAdminPath(t *testing.T) {
	db := newTestDB(t)
	p := NewPermResolver(db)
	perms, err := p.Resolve(context.Background(), "1", "/public/home")
	require.NoError(t, err)
	assert.Equal(t, Perms{}, perms)
}

func TestResolveEmptyRole(t *testing.T) {
	db := newTestDB(t)
	seedMenu(t, db, model.Menu{MenuID: "1", MenuName: "Menus", ParentID: "0", IsParents: "Y", URL: "admin/menus", MenuOrder: 1})
	p := NewPermResolver(db)
	perms, err := p.Resolve(context.Background(), "   ", "/admin/menus")
	require.NoError(t, err)
	assert.Equal(t, Perms{}, perms)
}

func TestResolveLongestPrefixWins(t *testing.T) {
	db := newTestDB(t)
	seedMenu(t, db, model.Menu{MenuID: "1", MenuName: "Admin", ParentID: "0", IsParents: "Y", URL: "admin", MenuOrder: 1})
	seedMenu(t, db, model.Menu{MenuID: "2", MenuName: "Menus", ParentID: "1", URL: "admin/menus", MenuOrder: 2})
	seedRight(t, db, model.Right{RoleID: "1", MenuID: "1", ViewPermit: "Y", EditPermit: "Y"})
	seedRight(t, db, model.Right{RoleID: "1", MenuID: "2", ViewPermit: "Y"})

	p := NewPermResolver(db)
	// 子页面归更长前缀的菜单管，只有view
	perms, err := p.Resolve(context.Background(), "1", "/admin/menus/edit/3")
	require.NoError(t, err)
	assert.True(t, perms.View)
	assert.False(t, perms.Edit)

	// 上层页面归短前缀的菜单管
	perms, err = p.Resolve(context.Background(), "1", "/admin/dashboard")
	require.NoError(t, err)
	assert.True(t, perms.Edit)
}

func TestResolvePrefixNeedsSegmentBoundary(t *testing.T) {
	db := newTestDB(t)
	seedMenu(t, db, model.Menu{MenuID: "1", MenuName: "Menus", ParentID: "0", IsParents: "Y", URL: "admin/menu", MenuOrder: 1})
	seedRight(t, db, model.Right{RoleID: "1", MenuID: "1", ViewPermit: "Y"})

	p := NewPermResolver(db)
	// "admin/menus" 不在 "admin/menu" 的段边界上
	perms, err := p.Resolve(context.Background(), "1", "/admin/menus")
	require.NoError(t, err)
	assert.Equal(t, Perms{}, perms)
}

func TestResolveHashURLIgnored(t *testing.T) {
	db := newTestDB(t)
	seedMenu(t, db, model.Menu{MenuID: "1", MenuName: "Group", ParentID: "0", IsParents: "Y", URL: "#", MenuOrder: 1})
	seedRight(t, db, model.Right{RoleID: "1", MenuID: "1", ViewPermit: "Y"})

	p := NewPermResolver(db)
	perms, err := p.Resolve(context.Background(), "1", "/admin/anything")
	require.NoError(t, err)
	assert.Equal(t, Perms{}, perms)
}

func TestResolvePermitMapping(t *testing.T) {
	db := newTestDB(t)
	seedMenu(t, db, model.Menu{MenuID: "1", MenuName: "Roles", ParentID: "0", IsParents: "Y", URL: "admin/roles", MenuOrder: 1})
	seedRight(t, db, model.Right{RoleID: "2", MenuID: "1", ViewPermit: "Y", CreatePermit: "N", EditPermit: "Y", DeletePermit: "N"})

	p := NewPermResolver(db)
	perms, err := p.Resolve(context.Background(), "2", "/admin/roles")
	require.NoError(t, err)
	assert.Equal(t, Perms{View: true, Create: false, Edit: true, Delete: false}, perms)
}

func TestResolveNoRightRow(t *testing.T) {
	db := newTestDB(t)
	seedMenu(t, db, model.Menu{MenuID: "1", MenuName: "Roles", ParentID: "0", IsParents: "Y", URL: "admin/roles", MenuOrder: 1})

	p := NewPermResolver(db)
	perms, err := p.Resolve(context.Background(), "2", "/admin/roles")
	require.NoError(t, err)
	assert.Equal(t, Perms{}, perms)
}

func TestResolveBannersPage(t *testing.T) {
	db := newTestDB(t)
	seedMenu(t, db, model.Menu{MenuID: "05", MenuName: "Banners", ParentID: "0", IsParents: "Y", URL: "admin/banners", MenuOrder: 5})
	seedRight(t, db, model.Right{RoleID: "02", MenuID: "05", ViewPermit: "Y", CreatePermit: "N"})

	p := NewPermResolver(db)
	perms, err := p.Resolve(context.Background(), "02", "/admin/banners")
	require.NoError(t, err)
	assert.Equal(t, Perms{View: true}, perms)

	// 没注册精确菜单的子路径靠最长前缀回退到同一行权限
	perms, err = p.Resolve(context.Background(), "02", "/admin/banners/new")
	require.NoError(t, err)
	assert.Equal(t, Perms{View: true}, perms)
}

func TestEnsurePermsMemoized(t *testing.T) {
	db := newTestDB(t)
	seedMenu(t, db, model.Menu{MenuID: "1", MenuName: "Roles", ParentID: "0", IsParents: "Y", URL: "admin/roles", MenuOrder: 1})
	seedRight(t, db, model.Right{RoleID: "2", MenuID: "1", ViewPermit: "Y"})

	app := fiber.New()
	reqCtx := &fasthttp.RequestCtx{}
	reqCtx.Request.SetRequestURI("/admin/roles")
	c := app.AcquireCtx(reqCtx)
	defer app.ReleaseCtx(c)
	c.Locals("roleId", "2")

	p := NewPermResolver(db)
	perms, err := EnsurePerms(c, p)
	require.NoError(t, err)
	assert.True(t, perms.View)

	// 同一请求内第二次读取不再触库，删掉权限行也不影响
	require.NoError(t, db.Where("role_id = ?", "2").Delete(&model.Right{}).Error)
	perms, err = EnsurePerms(c, p)
	require.NoError(t, err)
	assert.True(t, perms.View)
}
