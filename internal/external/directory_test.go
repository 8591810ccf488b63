package external

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/filmhub/internal/model"
)

type countingSource struct {
	userCalls int32
	listCalls int32
	delay     time.Duration
}

func (s *countingSource) GetUser(ctx context.Context, id string) (*model.UserProfile, error) {
	atomic.AddInt32(&s.userCalls, 1)
	if id == "ghost" {
		return nil, nil
	}
	return &model.UserProfile{UserID: id, Name: "name-" + id}, nil
}

func (s *countingSource) GetUsers(ctx context.Context) ([]model.UserProfile, error) {
	atomic.AddInt32(&s.listCalls, 1)
	time.Sleep(s.delay)
	return []model.UserProfile{{UserID: "a"}, {UserID: "b"}}, nil
}

func TestCachedDirectory_GetUser(t *testing.T) {
	src := &countingSource{}
	dir := NewCachedDirectory(src, time.Minute, hclog.NewNullLogger())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		u, err := dir.GetUser(ctx, "x")
		require.NoError(t, err)
		assert.Equal(t, "name-x", u.Name)
	}
	assert.Equal(t, int32(1), src.userCalls)

	for i := 0; i < 2; i++ {
		u, err := dir.GetUser(ctx, "ghost")
		require.NoError(t, err)
		assert.Nil(t, u)
	}
	assert.Equal(t, int32(3), src.userCalls, "不存在的用户不缓存")
}

func TestCachedDirectory_GetUsersSharesFlight(t *testing.T) {
	src := &countingSource{delay: 50 * time.Millisecond}
	dir := NewCachedDirectory(src, time.Minute, hclog.NewNullLogger())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			users, err := dir.GetUsers(ctx)
			assert.NoError(t, err)
			assert.Len(t, users, 2)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), atomic.LoadInt32(&src.listCalls))

	// 列表回源后单个用户也已缓存
	_, err := dir.GetUser(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, int32(0), atomic.LoadInt32(&src.userCalls))

	dir.Invalidate()
	_, err = dir.GetUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&src.listCalls))
}

type blockingSource struct {
	started chan context.Context
	release chan struct{}
}

func (s *blockingSource) GetUser(ctx context.Context, id string) (*model.UserProfile, error) {
	s.started <- ctx
	<-s.release
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &model.UserProfile{UserID: id, Name: "name-" + id}, nil
}

func (s *blockingSource) GetUsers(ctx context.Context) ([]model.UserProfile, error) {
	return nil, nil
}

func TestCachedDirectory_CallerCancelDoesNotFailWaiters(t *testing.T) {
	src := &blockingSource{started: make(chan context.Context, 1), release: make(chan struct{})}
	dir := NewCachedDirectory(src, time.Minute, hclog.NewNullLogger())

	first, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := dir.GetUser(first, "x")
		firstErr <- err
	}()
	flightCtx := <-src.started

	cancel()
	require.ErrorIs(t, <-firstErr, context.Canceled)
	require.NoError(t, flightCtx.Err())

	second := make(chan *model.UserProfile, 1)
	go func() {
		u, err := dir.GetUser(context.Background(), "x")
		assert.NoError(t, err)
		second <- u
	}()
	close(src.release)

	u := <-second
	require.NotNil(t, u)
	assert.Equal(t, "name-x", u.Name)

	cached, ok := dir.users.Get("x")
	require.True(t, ok)
	assert.Equal(t, "name-x", cached.Name)
}
