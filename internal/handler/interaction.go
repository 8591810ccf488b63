package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/user/filmhub/internal/dto"
	"github.com/user/filmhub/internal/middleware"
	"github.com/user/filmhub/internal/utils"
)

// ==================== 评论 ====================

// MovieComments 影片评论
func (h *Handler) MovieComments(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	page, valid := pageQuery(c)
	if !valid {
		return
	}
	res, err := h.Comment.GetMovieComments(c.Request.Context(), id, page)
	ok(h, c, res, err)
}

// EpisodeComments 分集评论
func (h *Handler) EpisodeComments(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	page, valid := pageQuery(c)
	if !valid {
		return
	}
	res, err := h.Comment.GetEpisodeComments(c.Request.Context(), id, page)
	ok(h, c, res, err)
}

// CreateComment 发表评论，带 episodeId 时为分集评论
func (h *Handler) CreateComment(c *gin.Context) {
	userID, valid := currentUser(c)
	if !valid {
		return
	}
	var req dto.CreateCommentRequest
	if !bindJSON(c, &req) {
		return
	}
	ctx := c.Request.Context()
	if req.EpisodeID != nil {
		res, err := h.Comment.CreateEpisodeComment(ctx, userID, req)
		created(h, c, res, err)
		return
	}
	res, err := h.Comment.CreateMovieComment(ctx, userID, req)
	created(h, c, res, err)
}

// DeleteComment 删除评论（作者或管理员）
func (h *Handler) DeleteComment(c *gin.Context) {
	userID, valid := currentUser(c)
	if !valid {
		return
	}
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	res, err := h.Comment.DeleteComment(c.Request.Context(), userID, middleware.IsAdmin(c), id)
	ok(h, c, res, err)
}

// ==================== 观看记录 ====================

// RecordWatch 上报观看进度，游客使用会话中的游客 ID
func (h *Handler) RecordWatch(c *gin.Context) {
	var req dto.RecordWatchRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.WatchHistory.RecordProgress(c.Request.Context(), middleware.ViewerID(c), req)
	ok(h, c, res, err)
}

// WatchProgress 当前观看进度（秒）
func (h *Handler) WatchProgress(c *gin.Context) {
	movieID, valid := queryID(c, "movieId")
	if !valid {
		return
	}
	if movieID == 0 {
		utils.BadRequest(c, "缺少 movieId")
		return
	}
	episodeID, valid := queryID(c, "episodeId")
	if !valid {
		return
	}
	var episode *int
	if episodeID > 0 {
		episode = &episodeID
	}
	res, err := h.WatchHistory.GetCurrentWatchingTime(c.Request.Context(), middleware.ViewerID(c), movieID, episode)
	ok(h, c, res, err)
}

// WatchHistories 观看记录（每部影片最新一条）
func (h *Handler) WatchHistories(c *gin.Context) {
	page, valid := pageQuery(c)
	if !valid {
		return
	}
	res, err := h.WatchHistory.GetWatchHistories(c.Request.Context(), middleware.ViewerID(c), page)
	ok(h, c, res, err)
}

// MigrateWatchHistory 登录后把当前会话游客的观看记录迁移到当前用户
func (h *Handler) MigrateWatchHistory(c *gin.Context) {
	userID, valid := currentUser(c)
	if !valid {
		return
	}
	res, err := h.WatchHistory.MigrateGuestHistory(c.Request.Context(), middleware.GetGuestID(c), userID)
	ok(h, c, res, err)
}

// ==================== 用户 ====================

// Me 当前用户资料
func (h *Handler) Me(c *gin.Context) {
	userID, valid := currentUser(c)
	if !valid {
		return
	}
	res, err := h.User.GetProfile(c.Request.Context(), userID)
	ok(h, c, res, err)
}

// ListUsers 全部用户（管理员）
func (h *Handler) ListUsers(c *gin.Context) {
	res, err := h.User.GetAllUsers(c.Request.Context())
	ok(h, c, res, err)
}

// FollowedMovies 关注的影片
func (h *Handler) FollowedMovies(c *gin.Context) {
	userID, valid := currentUser(c)
	if !valid {
		return
	}
	page, valid := pageQuery(c)
	if !valid {
		return
	}
	res, err := h.User.GetFollowedMovies(c.Request.Context(), userID, page)
	ok(h, c, res, err)
}

// IsFollowing 是否关注了影片
func (h *Handler) IsFollowing(c *gin.Context) {
	userID, valid := currentUser(c)
	if !valid {
		return
	}
	movieID, valid := paramID(c, "movieId")
	if !valid {
		return
	}
	res, err := h.User.IsFollowing(c.Request.Context(), userID, movieID)
	ok(h, c, res, err)
}

// FollowMovie 关注影片
func (h *Handler) FollowMovie(c *gin.Context) {
	userID, valid := currentUser(c)
	if !valid {
		return
	}
	movieID, valid := paramID(c, "movieId")
	if !valid {
		return
	}
	res, err := h.User.FollowMovie(c.Request.Context(), userID, movieID)
	created(h, c, res, err)
}

// UnfollowMovie 取消关注
func (h *Handler) UnfollowMovie(c *gin.Context) {
	userID, valid := currentUser(c)
	if !valid {
		return
	}
	movieID, valid := paramID(c, "movieId")
	if !valid {
		return
	}
	res, err := h.User.UnfollowMovie(c.Request.Context(), userID, movieID)
	ok(h, c, res, err)
}

// ==================== 通知 ====================

// Notifications 当前用户的通知
func (h *Handler) Notifications(c *gin.Context) {
	userID, valid := currentUser(c)
	if !valid {
		return
	}
	page, valid := pageQuery(c)
	if !valid {
		return
	}
	res, err := h.Notification.GetUserNotifications(c.Request.Context(), userID, page)
	ok(h, c, res, err)
}

// UnreadCount 未读通知数
func (h *Handler) UnreadCount(c *gin.Context) {
	userID, valid := currentUser(c)
	if !valid {
		return
	}
	res, err := h.Notification.CountUnread(c.Request.Context(), userID)
	ok(h, c, res, err)
}

// MarkAsRead 标记已读
func (h *Handler) MarkAsRead(c *gin.Context) {
	userID, valid := currentUser(c)
	if !valid {
		return
	}
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	res, err := h.Notification.MarkAsRead(c.Request.Context(), userID, id)
	ok(h, c, res, err)
}

// MarkAllAsRead 全部标记已读
func (h *Handler) MarkAllAsRead(c *gin.Context) {
	userID, valid := currentUser(c)
	if !valid {
		return
	}
	res, err := h.Notification.MarkAllAsRead(c.Request.Context(), userID)
	ok(h, c, res, err)
}

// DeleteNotification 删除通知
func (h *Handler) DeleteNotification(c *gin.Context) {
	userID, valid := currentUser(c)
	if !valid {
		return
	}
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	res, err := h.Notification.DeleteNotification(c.Request.Context(), userID, id)
	ok(h, c, res, err)
}

// CreateNotification 给指定用户发送通知（管理员）
func (h *Handler) CreateNotification(c *gin.Context) {
	var req dto.CreateNotificationRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.Notification.CreateNotification(c.Request.Context(), req)
	created(h, c, res, err)
}

// Broadcast 向所有在线客户端推送消息（管理员）
func (h *Handler) Broadcast(c *gin.Context) {
	var req dto.BroadcastRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.Notification.Broadcast(c.Request.Context(), req)
	ok(h, c, res, err)
}

// ==================== 订单 ====================

// Checkout 创建支付会话
func (h *Handler) Checkout(c *gin.Context) {
	userID, valid := currentUser(c)
	if !valid {
		return
	}
	var req dto.CheckoutRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.Order.CreateCheckoutSession(c.Request.Context(), userID, req)
	created(h, c, res, err)
}

// CompleteOrder 支付完成后确认订单
func (h *Handler) CompleteOrder(c *gin.Context) {
	userID, valid := currentUser(c)
	if !valid {
		return
	}
	var req dto.CompleteOrderRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.Order.CompleteOrder(c.Request.Context(), userID, req)
	ok(h, c, res, err)
}

// Orders 当前用户的订单
func (h *Handler) Orders(c *gin.Context) {
	userID, valid := currentUser(c)
	if !valid {
		return
	}
	page, valid := pageQuery(c)
	if !valid {
		return
	}
	res, err := h.Order.GetUserOrders(c.Request.Context(), userID, page)
	ok(h, c, res, err)
}

// HasPurchased 是否已购买影片
func (h *Handler) HasPurchased(c *gin.Context) {
	userID, valid := currentUser(c)
	if !valid {
		return
	}
	movieID, valid := paramID(c, "movieId")
	if !valid {
		return
	}
	res, err := h.Order.HasPurchased(c.Request.Context(), userID, movieID)
	ok(h, c, res, err)
}

// ==================== 统计 ====================

// ViewStatistics 按天的观看趋势
func (h *Handler) ViewStatistics(c *gin.Context) {
	var req dto.StatisticRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.BadRequest(c, "无效的日期参数")
		return
	}
	res, err := h.Statistic.GetViewStatistics(c.Request.Context(), req)
	ok(h, c, res, err)
}

// TopMovies 观看最多的影片
func (h *Handler) TopMovies(c *gin.Context) {
	var req dto.StatisticRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.BadRequest(c, "无效的日期参数")
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	res, err := h.Statistic.GetTopMovies(c.Request.Context(), req, limit)
	ok(h, c, res, err)
}

// Overview 后台概览
func (h *Handler) Overview(c *gin.Context) {
	res, err := h.Statistic.GetOverview(c.Request.Context())
	ok(h, c, res, err)
}
