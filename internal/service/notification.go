package service

import (
	"context"

	"github.com/hashicorp/go-hclog"
	"github.com/user/filmhub/internal/dto"
	"github.com/user/filmhub/internal/mapper"
	"github.com/user/filmhub/internal/repository"
)

// 推送事件类型
const (
	EventNotification = "notification"
	EventBroadcast    = "broadcast"
)

// Event 推送给在线客户端的消息
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// NotificationService 通知服务
type NotificationService struct {
	notifications *repository.NotificationRepository
	broadcaster   Broadcaster
	logger        hclog.Logger
}

// NewNotificationService 创建通知服务
func NewNotificationService(repos *repository.Repositories, broadcaster Broadcaster, logger hclog.Logger) *NotificationService {
	return &NotificationService{
		notifications: repos.Notification,
		broadcaster:   broadcaster,
		logger:        logger.Named("notification"),
	}
}

// CreateNotification 保存通知并实时推送，推送失败不影响保存结果
func (s *NotificationService) CreateNotification(ctx context.Context, req dto.CreateNotificationRequest) (*Result[dto.NotificationResponse], error) {
	if msg := validateRequest(req); msg != "" {
		return Invalid[dto.NotificationResponse]("%s", msg), nil
	}
	notification := mapper.ToNotification(req)
	if _, err := s.notifications.Add(ctx, &notification); err != nil {
		return nil, err
	}
	res := mapper.ToNotificationResponse(notification)
	if err := s.broadcaster.Broadcast(Event{Type: EventNotification, Data: res}); err != nil {
		s.logger.Warn("推送通知失败", "id", notification.ID, "error", err)
	}
	return Ok(res, "创建成功"), nil
}

// Broadcast 仅推送，不落库
func (s *NotificationService) Broadcast(ctx context.Context, req dto.BroadcastRequest) (*Result[bool], error) {
	if msg := validateRequest(req); msg != "" {
		return Invalid[bool]("%s", msg), nil
	}
	if err := s.broadcaster.Broadcast(Event{Type: EventBroadcast, Data: req}); err != nil {
		return nil, err
	}
	return Ok(true, "已推送"), nil
}

// GetUserNotifications 用户通知，最新在前
func (s *NotificationService) GetUserNotifications(ctx context.Context, userID string, page dto.PageQuery) (*Result[dto.PagedResponse[dto.NotificationResponse]], error) {
	p := repository.NewPage(page.PageNumber, page.PageSize)
	items, total, err := s.notifications.ListByUser(ctx, userID, p)
	if err != nil {
		return nil, err
	}
	res := mapper.Slice(items, mapper.ToNotificationResponse)
	return Ok(dto.NewPagedResponse(res, p.Number, p.Size, total), ""), nil
}

// CountUnread 未读数量
func (s *NotificationService) CountUnread(ctx context.Context, userID string) (*Result[int64], error) {
	count, err := s.notifications.CountUnread(ctx, userID)
	if err != nil {
		return nil, err
	}
	return Ok(count, ""), nil
}

// MarkAsRead 标记单条已读
func (s *NotificationService) MarkAsRead(ctx context.Context, userID string, id int) (*Result[bool], error) {
	affected, err := s.notifications.MarkRead(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return NotFound[bool]("通知 %d 不存在", id), nil
	}
	return Ok(true, ""), nil
}

// MarkAllAsRead 全部标记已读，返回更新条数
func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID string) (*Result[int64], error) {
	affected, err := s.notifications.MarkAllRead(ctx, userID)
	if err != nil {
		return nil, err
	}
	return Ok(affected, ""), nil
}

// DeleteNotification 删除自己的通知
func (s *NotificationService) DeleteNotification(ctx context.Context, userID string, id int) (*Result[bool], error) {
	removed, err := s.notifications.RemoveRange(ctx, repository.Where(
		repository.Eq("id", id),
		repository.Eq("user_id", userID),
	))
	if err != nil {
		return nil, err
	}
	if removed == 0 {
		return NotFound[bool]("通知 %d 不存在", id), nil
	}
	return Ok(true, "删除成功"), nil
}
