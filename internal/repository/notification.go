package repository

import (
	"context"

	"github.com/user/filmhub/internal/model"
	"gorm.io/gorm"
)

// NotificationRepository 通知仓库
type NotificationRepository struct {
	*Repository[model.Notification]
	db *gorm.DB
}

// NewNotificationRepository 创建通知仓库
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{Repository: NewRepository[model.Notification](db), db: db}
}

// ListByUser 获取用户通知，最新在前
func (r *NotificationRepository) ListByUser(ctx context.Context, userID string, page Page) ([]model.Notification, int64, error) {
	return r.FindPaged(ctx, Where(Eq("user_id", userID)).
		OrderBy("created_at", true).
		OrderBy("id", true).
		Paged(page))
}

// CountUnread 统计未读数量
func (r *NotificationRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
	return r.Count(ctx, Where(Eq("user_id", userID), Eq("is_read", false)))
}

// MarkRead 标记单条已读，返回受影响行数
func (r *NotificationRepository) MarkRead(ctx context.Context, userID string, id int) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("user_id = ? AND id = ?", userID, id).
		UpdateColumn("is_read", true)
	return res.RowsAffected, res.Error
}

// MarkAllRead 标记用户全部通知已读
func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		UpdateColumn("is_read", true)
	return res.RowsAffected, res.Error
}
