package model

import "time"

// Comment 评论；EpisodeID 不为空时表示分集评论
type Comment struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	MovieID   int       `json:"movie_id" gorm:"not null;index"`
	EpisodeID *int      `json:"episode_id" gorm:"index"`
	UserID    string    `json:"user_id" gorm:"not null;index"`
	Content   string    `json:"content" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	Movie     *Movie    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Episode   *Episode  `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// FollowedMovie 用户关注的影片
type FollowedMovie struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"not null;index"`
	MovieID   int       `json:"movie_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
	Movie     *Movie    `json:"movie,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

// WatchHistory 观看进度记录，同一用户同一影片可有多条，以 LogTime 最新者为准
type WatchHistory struct {
	ID               int       `json:"id" gorm:"primaryKey"`
	UserID           string    `json:"user_id" gorm:"not null;index"` // 登录用户 ID 或游客 ID
	MovieID          int       `json:"movie_id" gorm:"not null;index"`
	EpisodeID        *int      `json:"episode_id"`
	CurrentWatchTime float64   `json:"current_watch_time"` // 秒
	IsWatched        bool      `json:"is_watched"`
	LogTime          time.Time `json:"log_time" gorm:"index"`
	Movie            *Movie    `json:"movie,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

// Notification 用户通知
type Notification struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"not null;index"`
	Message   string    `json:"message" gorm:"not null"`
	URL       *string   `json:"url"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

// Order 已完成的购买
type Order struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	SessionID string    `json:"session_id" gorm:"not null;uniqueIndex"`
	UserID    string    `json:"user_id" gorm:"not null;index"`
	MovieID   int       `json:"movie_id" gorm:"not null;index"`
	Amount    int64     `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}
