package repository

import (
	"context"
	"errors"

	"github.com/user/filmhub/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderRepository 订单仓库
type OrderRepository struct {
	*Repository[model.Order]
	db *gorm.DB
}

// NewOrderRepository 创建订单仓库
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{Repository: NewRepository[model.Order](db), db: db}
}

// FindBySession 根据支付会话查找订单
func (r *OrderRepository) FindBySession(ctx context.Context, sessionID string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).Where("session_id = ?", sessionID).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateIfAbsent 按 session_id 幂等写入订单，返回库中的订单
func (r *OrderRepository) CreateIfAbsent(ctx context.Context, order *model.Order) (*model.Order, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "session_id"}}, DoNothing: true}).
		Create(order).Error
	if err != nil {
		return nil, err
	}
	return r.FindBySession(ctx, order.SessionID)
}

// HasPurchased 用户是否已购买该影片
func (r *OrderRepository) HasPurchased(ctx context.Context, userID string, movieID int) (bool, error) {
	count, err := r.Count(ctx, Where(Eq("user_id", userID), Eq("movie_id", movieID)))
	return count > 0, err
}

// ListByUser 获取用户订单，最新在前
func (r *OrderRepository) ListByUser(ctx context.Context, userID string, page Page) ([]model.Order, int64, error) {
	return r.FindPaged(ctx, Where(Eq("user_id", userID)).
		OrderBy("created_at", true).
		OrderBy("id", true).
		Paged(page))
}
