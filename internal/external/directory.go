package external

import (
	"context"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/patrickmn/go-cache"
	"github.com/user/filmhub/internal/model"
	"github.com/user/filmhub/internal/service"
	"github.com/user/filmhub/internal/utils"
	"golang.org/x/sync/singleflight"
)

const (
	allUsersKey     = "users:all"
	userCacheSize   = 4096
	defaultCacheTTL = time.Hour
	lookupTimeout   = 10 * time.Second
)

// CachedDirectory 为身份服务加一层缓存，并发的相同请求只回源一次
type CachedDirectory struct {
	source  service.UserDirectory
	users   *utils.TTLCache[model.UserProfile]
	lists   *cache.Cache
	group   singleflight.Group
	timeout time.Duration
	logger  hclog.Logger
}

// NewCachedDirectory ttl 为 0 时使用 1 小时
func NewCachedDirectory(source service.UserDirectory, ttl time.Duration, logger hclog.Logger) *CachedDirectory {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &CachedDirectory{
		source:  source,
		users:   utils.NewTTLCache[model.UserProfile](userCacheSize, ttl),
		lists:   cache.New(ttl, 2*ttl),
		timeout: lookupTimeout,
		logger:  logger.Named("directory"),
	}
}

// GetUser 读取单个用户
func (d *CachedDirectory) GetUser(ctx context.Context, userID string) (*model.UserProfile, error) {
	if user, ok := d.users.Get(userID); ok {
		return &user, nil
	}
	v, _, err := d.shared(ctx, "user:"+userID, func(ctx context.Context) (any, error) {
		user, err := d.source.GetUser(ctx, userID)
		if err == nil && user != nil {
			d.users.Set(userID, *user)
		}
		return user, err
	})
	if err != nil {
		return nil, err
	}
	user, _ := v.(*model.UserProfile)
	if user == nil {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

// GetUsers 读取全部用户
func (d *CachedDirectory) GetUsers(ctx context.Context) ([]model.UserProfile, error) {
	if v, ok := d.lists.Get(allUsersKey); ok {
		return v.([]model.UserProfile), nil
	}
	v, shared, err := d.shared(ctx, allUsersKey, func(ctx context.Context) (any, error) {
		users, err := d.source.GetUsers(ctx)
		if err != nil {
			return nil, err
		}
		d.lists.SetDefault(allUsersKey, users)
		for _, u := range users {
			d.users.Set(u.UserID, u)
		}
		return users, nil
	})
	if err != nil {
		return nil, err
	}
	users := v.([]model.UserProfile)
	d.logger.Debug("用户列表回源", "count", len(users), "shared", shared)
	return users, nil
}

// shared 合并相同 key 的并发回源。回源不随发起者取消，只受 d.timeout 限制；
// 调用方取消时自己先返回
func (d *CachedDirectory) shared(ctx context.Context, key string, fn func(context.Context) (any, error)) (any, bool, error) {
	ch := d.group.DoChan(key, func() (any, error) {
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
		defer cancel()
		return fn(fctx)
	})
	select {
	case <-ctx.Done():
		return nil, false, ctx.Err()
	case r := <-ch:
		return r.Val, r.Shared, r.Err
	}
}

// Invalidate 清空缓存
func (d *CachedDirectory) Invalidate() {
	d.users.Clear()
	d.lists.Flush()
}
