package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/filmhub/internal/dto"
	"github.com/user/filmhub/internal/testutil"
)

func TestNotifications(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewRepos(t)
	hub := &fakeBroadcaster{}
	svc := NewNotificationService(repos, hub, testLogger())

	first, err := svc.CreateNotification(ctx, dto.CreateNotificationRequest{UserID: "u1", Message: "New episode"})
	require.NoError(t, err)
	require.True(t, first.Success, first.Message)
	_, err = svc.CreateNotification(ctx, dto.CreateNotificationRequest{UserID: "u1", Message: "Second"})
	require.NoError(t, err)
	_, err = svc.CreateNotification(ctx, dto.CreateNotificationRequest{UserID: "u2", Message: "Other"})
	require.NoError(t, err)

	require.Len(t, hub.events, 3)
	assert.Equal(t, EventNotification, hub.events[0].Type)

	list, err := svc.GetUserNotifications(ctx, "u1", dto.PageQuery{})
	require.NoError(t, err)
	require.Len(t, list.Data.Items, 2)
	assert.Equal(t, "Second", list.Data.Items[0].Message)

	unread, err := svc.CountUnread(ctx, "u1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, unread.Data)

	read, err := svc.MarkAsRead(ctx, "u1", first.Data.ID)
	require.NoError(t, err)
	assert.True(t, read.Success)
	notMine, err := svc.MarkAsRead(ctx, "u2", first.Data.ID)
	require.NoError(t, err)
	assert.Equal(t, KindNotFound, notMine.Kind)

	all, err := svc.MarkAllAsRead(ctx, "u1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, all.Data)

	deleted, err := svc.DeleteNotification(ctx, "u2", first.Data.ID)
	require.NoError(t, err)
	assert.Equal(t, KindNotFound, deleted.Kind)
	deleted, err = svc.DeleteNotification(ctx, "u1", first.Data.ID)
	require.NoError(t, err)
	assert.True(t, deleted.Success)

	invalid, err := svc.CreateNotification(ctx, dto.CreateNotificationRequest{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, KindInvalid, invalid.Kind)
}

func TestNotificationBroadcastFailure(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewRepos(t)
	hub := &fakeBroadcaster{err: errors.New("closed")}
	svc := NewNotificationService(repos, hub, testLogger())

	// 推送失败时通知仍然保存
	res, err := svc.CreateNotification(ctx, dto.CreateNotificationRequest{UserID: "u1", Message: "hi"})
	require.NoError(t, err)
	assert.True(t, res.Success)

	_, err = svc.Broadcast(ctx, dto.BroadcastRequest{Message: "maintenance"})
	assert.Error(t, err)
}
