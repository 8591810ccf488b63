package mapper

import (
	"github.com/user/filmhub/internal/dto"
	"github.com/user/filmhub/internal/model"
)

// ToUserResponse 用户资料响应
func ToUserResponse(u model.UserProfile) dto.UserResponse {
	return dto.UserResponse{UserID: u.UserID, Name: u.Name, Picture: u.Picture}
}

// ToCommentResponse 评论响应；user 可为 nil（身份服务中已不存在）
func ToCommentResponse(c model.Comment, user *model.UserProfile) dto.CommentResponse {
	res := dto.CommentResponse{
		ID:        c.ID,
		MovieID:   c.MovieID,
		EpisodeID: c.EpisodeID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
	if user != nil {
		u := ToUserResponse(*user)
		res.User = &u
	}
	return res
}

// ToFollowedMovieResponse 关注响应
func ToFollowedMovieResponse(f model.FollowedMovie) dto.FollowedMovieResponse {
	res := dto.FollowedMovieResponse{ID: f.ID, MovieID: f.MovieID, CreatedAt: f.CreatedAt}
	if f.Movie != nil {
		m := ToMovieResponse(*f.Movie)
		res.Movie = &m
	}
	return res
}

// ToWatchHistoryResponse 观看记录响应
func ToWatchHistoryResponse(h model.WatchHistory) dto.WatchHistoryResponse {
	res := dto.WatchHistoryResponse{
		ID:               h.ID,
		MovieID:          h.MovieID,
		EpisodeID:        h.EpisodeID,
		CurrentWatchTime: h.CurrentWatchTime,
		IsWatched:        h.IsWatched,
		LogTime:          h.LogTime,
	}
	if h.Movie != nil {
		m := ToMovieResponse(*h.Movie)
		res.Movie = &m
	}
	return res
}

// ToNotification 创建请求 -> 实体
func ToNotification(req dto.CreateNotificationRequest) model.Notification {
	return model.Notification{UserID: req.UserID, Message: req.Message, URL: req.URL}
}

// ToNotificationResponse 通知响应
func ToNotificationResponse(n model.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		Message:   n.Message,
		URL:       n.URL,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

// ToOrderResponse 订单响应
func ToOrderResponse(o model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:        o.ID,
		SessionID: o.SessionID,
		UserID:    o.UserID,
		MovieID:   o.MovieID,
		Amount:    o.Amount,
		CreatedAt: o.CreatedAt,
	}
}
