package rbac

import (
	"context"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/adminboard/pkg/config"
	"github.com/adminboard/pkg/logger"
)

// MenuSource 菜单可见性来源
type MenuSource interface {
	VisibleMenus(ctx context.Context, roleID string) ([]*MenuItem, error)
}

type cacheEntry struct {
	epoch   int64
	expires time.Time
	flat    []*MenuItem
	tree    []*MenuItem
}

// MenuCache 按角色缓存侧边栏菜单
// LRU限定角色数上限，singleflight防止同角色并发重建，
// epoch整体失效不用遍历，所有读出都做深拷贝防止调用方改写缓存
type MenuCache struct {
	source  MenuSource
	enabled bool
	debug   bool
	ttl     time.Duration
	epoch   atomic.Int64
	entries *lru.Cache[string, *cacheEntry]
	group   singleflight.Group
}

// NewMenuCache 创建菜单缓存
func NewMenuCache(source MenuSource, cfg *config.MenuCacheConfig) *MenuCache {
	ttl := time.Duration(cfg.TTLSeconds) * time.Second
	if ttl < 5*time.Second {
		ttl = 300 * time.Second
	}
	maxRoles := cfg.MaxRoles
	if maxRoles < 50 {
		maxRoles = 50
	}
	entries, _ := lru.New[string, *cacheEntry](maxRoles)
	return &MenuCache{
		source:  source,
		enabled: cfg.Enabled,
		debug:   cfg.Debug,
		ttl:     ttl,
		entries: entries,
	}
}

// Get 取角色的扁平菜单和菜单树，未命中时重建
func (mc *MenuCache) Get(ctx context.Context, roleID string) ([]*MenuItem, []*MenuItem, error) {
	rid := NormalizeID(roleID)

	if !mc.enabled {
		flat, err := mc.source.VisibleMenus(ctx, roleID)
		if err != nil {
			return nil, nil, err
		}
		return flat, BuildTree(CloneItems(flat)), nil
	}

	if e := mc.lookup(rid); e != nil {
		if mc.debug {
			logger.Debug("menu cache hit", zap.String("roleId", rid))
		}
		return CloneItems(e.flat), CloneItems(e.tree), nil
	}

	v, err, _ := mc.group.Do(rid, func() (interface{}, error) {
		// 等锁期间别的goroutine可能已经建好了
		if e := mc.lookup(rid); e != nil {
			return e, nil
		}
		return mc.rebuild(ctx, rid, roleID)
	})
	if err != nil {
		return nil, nil, err
	}
	e := v.(*cacheEntry)
	return CloneItems(e.flat), CloneItems(e.tree), nil
}

// Refresh 无条件重建一次角色缓存，用于读到坏数据后的自愈
func (mc *MenuCache) Refresh(ctx context.Context, roleID string) ([]*MenuItem, []*MenuItem, error) {
	rid := NormalizeID(roleID)
	if !mc.enabled {
		flat, err := mc.source.VisibleMenus(ctx, roleID)
		if err != nil {
			return nil, nil, err
		}
		return flat, BuildTree(CloneItems(flat)), nil
	}
	e, err := mc.rebuild(ctx, rid, roleID)
	if err != nil {
		return nil, nil, err
	}
	return CloneItems(e.flat), CloneItems(e.tree), nil
}

// InvalidateRole 失效单个角色
func (mc *MenuCache) InvalidateRole(roleID string) {
	rid := NormalizeID(roleID)
	mc.entries.Remove(rid)
	if mc.debug {
		logger.Debug("menu cache invalidate role", zap.String("roleId", rid))
	}
}

// InvalidateAll 整体失效，推进epoch让存量条目作废
func (mc *MenuCache) InvalidateAll() {
	mc.epoch.Add(1)
	mc.entries.Purge()
	if mc.debug {
		logger.Debug("menu cache invalidate all", zap.Int64("epoch", mc.epoch.Load()))
	}
}

func (mc *MenuCache) lookup(rid string) *cacheEntry {
	e, ok := mc.entries.Get(rid)
	if !ok {
		return nil
	}
	if e.epoch != mc.epoch.Load() || time.Now().After(e.expires) {
		return nil
	}
	return e
}

func (mc *MenuCache) rebuild(ctx context.Context, rid, roleID string) (*cacheEntry, error) {
	epoch := mc.epoch.Load()
	flat, err := mc.source.VisibleMenus(ctx, roleID)
	if err != nil {
		return nil, err
	}
	e := &cacheEntry{
		epoch:   epoch,
		expires: time.Now().Add(mc.ttl),
		flat:    flat,
		tree:    BuildTree(CloneItems(flat)),
	}
	// 重建期间整体失效过就不落缓存，直接把结果还给调用方
	if mc.epoch.Load() == epoch {
		mc.entries.Add(rid, e)
	}
	if mc.debug {
		logger.Debug("menu cache rebuilt", zap.String("roleId", rid), zap.Int("items", len(flat)))
	}
	return e, nil
}
