package dto

import "time"

// UserResponse 用户资料
type UserResponse struct {
	UserID  string `json:"userId"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// CreateCommentRequest 发表评论；EpisodeID 为空时为影片评论
type CreateCommentRequest struct {
	MovieID   int    `json:"movieId" binding:"required,gt=0"`
	EpisodeID *int   `json:"episodeId" binding:"omitempty,gt=0"`
	Content   string `json:"content" binding:"required,max=2000"`
}

// CommentResponse 评论
type CommentResponse struct {
	ID        int           `json:"id"`
	MovieID   int           `json:"movieId"`
	EpisodeID *int          `json:"episodeId"`
	Content   string        `json:"content"`
	CreatedAt time.Time     `json:"createdAt"`
	User      *UserResponse `json:"user"`
}

// FollowedMovieResponse 关注的影片
type FollowedMovieResponse struct {
	ID        int            `json:"id"`
	MovieID   int            `json:"movieId"`
	CreatedAt time.Time      `json:"createdAt"`
	Movie     *MovieResponse `json:"movie,omitempty"`
}

// RecordWatchRequest 上报观看进度
type RecordWatchRequest struct {
	MovieID          int     `json:"movieId" binding:"required,gt=0"`
	EpisodeID        *int    `json:"episodeId" binding:"omitempty,gt=0"`
	CurrentWatchTime float64 `json:"currentWatchTime" binding:"gte=0"`
	IsWatched        bool    `json:"isWatched"`
}

// WatchHistoryResponse 观看记录
type WatchHistoryResponse struct {
	ID               int            `json:"id"`
	MovieID          int            `json:"movieId"`
	EpisodeID        *int           `json:"episodeId"`
	CurrentWatchTime float64        `json:"currentWatchTime"`
	IsWatched        bool           `json:"isWatched"`
	LogTime          time.Time      `json:"logTime"`
	Movie            *MovieResponse `json:"movie,omitempty"`
}

// CreateNotificationRequest 创建通知
type CreateNotificationRequest struct {
	UserID  string  `json:"userId" binding:"required"`
	Message string  `json:"message" binding:"required,max=1000"`
	URL     *string `json:"url" binding:"omitempty,url"`
}

// BroadcastRequest 实时推送
type BroadcastRequest struct {
	Message string `json:"message" binding:"required,max=1000"`
}

// NotificationResponse 通知
type NotificationResponse struct {
	ID        int       `json:"id"`
	UserID    string    `json:"userId"`
	Message   string    `json:"message"`
	URL       *string   `json:"url"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// CheckoutRequest 发起支付
type CheckoutRequest struct {
	MovieID int `json:"movieId" binding:"required,gt=0"`
}

// CheckoutResponse 支付会话
type CheckoutResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// CompleteOrderRequest 支付完成回调
type CompleteOrderRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
}

// OrderResponse 订单
type OrderResponse struct {
	ID        int       `json:"id"`
	SessionID string    `json:"sessionId"`
	UserID    string    `json:"userId"`
	MovieID   int       `json:"movieId"`
	Amount    int64     `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
}
