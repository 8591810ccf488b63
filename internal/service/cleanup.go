package service

import (
	"context"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/user/filmhub/internal/repository"
)

const (
	readNotificationRetention = 90 * 24 * time.Hour
	guestHistoryRetention     = 30 * 24 * time.Hour
)

// CleanupReport 一次清理删除的行数
type CleanupReport struct {
	ReadNotifications int64
	GuestHistories    int64
}

// CleanupService 定时清理过期数据
type CleanupService struct {
	notifications *repository.NotificationRepository
	histories     *repository.WatchHistoryRepository
	logger        hclog.Logger
	now           func() time.Time
}

// NewCleanupService 创建清理服务
func NewCleanupService(repos *repository.Repositories, logger hclog.Logger) *CleanupService {
	return &CleanupService{
		notifications: repos.Notification,
		histories:     repos.WatchHistory,
		logger:        logger.Named("cleanup"),
		now:           time.Now,
	}
}

// Start 启动时先运行一次，之后按 interval 执行，ctx 取消后退出
func (s *CleanupService) Start(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			if _, err := s.Run(ctx); err != nil && ctx.Err() == nil {
				s.logger.Error("清理失败", "error", err)
			}
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

// Run 删除 90 天前的已读通知，以及 30 天未迁移的游客观看记录
func (s *CleanupService) Run(ctx context.Context) (CleanupReport, error) {
	var report CleanupReport
	now := s.now().UTC()

	n, err := s.notifications.RemoveRange(ctx, repository.Where(
		repository.Eq("is_read", true),
		repository.Lt("created_at", now.Add(-readNotificationRetention)),
	))
	if err != nil {
		return report, err
	}
	report.ReadNotifications = n

	// 身份服务的用户 ID 形如 provider|id，游客 ID 是 UUID
	n, err = s.histories.RemoveRange(ctx, repository.Where(
		repository.NotLike("user_id", "%|%"),
		repository.Lt("log_time", now.Add(-guestHistoryRetention)),
	))
	if err != nil {
		return report, err
	}
	report.GuestHistories = n

	if report.ReadNotifications > 0 || report.GuestHistories > 0 {
		s.logger.Info("已清理过期数据", "notifications", report.ReadNotifications, "guest_histories", report.GuestHistories)
	}
	return report, nil
}
