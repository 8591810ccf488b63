package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/user/filmhub/internal/dto"
	"github.com/user/filmhub/internal/mapper"
	"github.com/user/filmhub/internal/model"
	"github.com/user/filmhub/internal/repository"
)

// WatchHistoryService 观看记录服务，viewerID 为登录用户 ID 或游客 ID
type WatchHistoryService struct {
	histories *repository.WatchHistoryRepository
	movies    *repository.MovieRepository
	episodes  *repository.EpisodeRepository
	logger    hclog.Logger
	now       func() time.Time
}

// NewWatchHistoryService 创建观看记录服务
func NewWatchHistoryService(repos *repository.Repositories, logger hclog.Logger) *WatchHistoryService {
	return &WatchHistoryService{
		histories: repos.WatchHistory,
		movies:    repos.Movie,
		episodes:  repos.Episode,
		logger:    logger.Named("history"),
		now:       time.Now,
	}
}

// RecordProgress 上报观看进度
// 同一天内对同一影片（同一分集）的上报更新最新一条记录，跨天则新增一条
func (s *WatchHistoryService) RecordProgress(ctx context.Context, viewerID string, req dto.RecordWatchRequest) (*Result[dto.WatchHistoryResponse], error) {
	if viewerID == "" {
		return Invalid[dto.WatchHistoryResponse]("缺少观看者标识"), nil
	}
	if msg := validateRequest(req); msg != "" {
		return Invalid[dto.WatchHistoryResponse]("%s", msg), nil
	}
	movie, err := s.movies.GetByID(ctx, req.MovieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return NotFound[dto.WatchHistoryResponse]("影片 %d 不存在", req.MovieID), nil
	}
	if req.EpisodeID != nil {
		episode, err := s.episodes.GetByID(ctx, *req.EpisodeID)
		if err != nil {
			return nil, err
		}
		if episode == nil || episode.MovieID != req.MovieID {
			return NotFound[dto.WatchHistoryResponse]("分集 %d 不存在", *req.EpisodeID), nil
		}
	}

	now := s.now().UTC()
	latest, err := s.histories.LatestEntry(ctx, viewerID, req.MovieID, req.EpisodeID)
	if err != nil {
		return nil, err
	}
	if latest != nil && sameEpisode(latest.EpisodeID, req.EpisodeID) && sameDay(latest.LogTime, now) {
		latest.CurrentWatchTime = req.CurrentWatchTime
		latest.IsWatched = latest.IsWatched || req.IsWatched
		latest.LogTime = now
		if _, err := s.histories.Update(ctx, latest); err != nil {
			return nil, err
		}
		return Ok(mapper.ToWatchHistoryResponse(*latest), ""), nil
	}

	history := model.WatchHistory{
		UserID:           viewerID,
		MovieID:          req.MovieID,
		EpisodeID:        req.EpisodeID,
		CurrentWatchTime: req.CurrentWatchTime,
		IsWatched:        req.IsWatched,
		LogTime:          now,
	}
	if _, err := s.histories.Add(ctx, &history); err != nil {
		return nil, err
	}
	return Ok(mapper.ToWatchHistoryResponse(history), ""), nil
}

// GetCurrentWatchingTime 最近一次的播放位置（秒），无记录时为 0
func (s *WatchHistoryService) GetCurrentWatchingTime(ctx context.Context, viewerID string, movieID int, episodeID *int) (*Result[float64], error) {
	if viewerID == "" {
		return Invalid[float64]("缺少观看者标识"), nil
	}
	latest, err := s.histories.Latest(ctx, viewerID, movieID, episodeID)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return Ok(0.0, ""), nil
	}
	return Ok(latest.CurrentWatchTime, ""), nil
}

// GetWatchHistories 每部影片取最新一条记录，按观看时间倒序分页
func (s *WatchHistoryService) GetWatchHistories(ctx context.Context, viewerID string, page dto.PageQuery) (*Result[dto.PagedResponse[dto.WatchHistoryResponse]], error) {
	if viewerID == "" {
		return Invalid[dto.PagedResponse[dto.WatchHistoryResponse]]("缺少观看者标识"), nil
	}
	latest, err := s.histories.LatestPerMovie(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	p := repository.NewPage(page.PageNumber, page.PageSize)
	start := min(p.Offset(), len(latest))
	end := min(start+p.Limit(), len(latest))
	items := mapper.Slice(latest[start:end], mapper.ToWatchHistoryResponse)
	return Ok(dto.NewPagedResponse(items, p.Number, p.Size, int64(len(latest))), ""), nil
}

// MigrateGuestHistory 登录后把游客记录转到用户名下，返回迁移条数
func (s *WatchHistoryService) MigrateGuestHistory(ctx context.Context, guestID, userID string) (*Result[int64], error) {
	if guestID == "" || userID == "" {
		return Invalid[int64]("游客 ID 与用户 ID 均不能为空"), nil
	}
	if guestID == userID {
		return Invalid[int64]("游客 ID 与用户 ID 不能相同"), nil
	}
	// 游客 ID 为会话中生成的 UUID，身份提供方的用户 ID 形如 provider|id
	if _, err := uuid.Parse(guestID); err != nil || strings.Contains(guestID, "|") {
		return Invalid[int64]("无效的游客 ID"), nil
	}
	moved, err := s.histories.ReassignUser(ctx, guestID, userID)
	if err != nil {
		return nil, err
	}
	if moved > 0 {
		s.logger.Info("游客观看记录已迁移", "guest", guestID, "user", userID, "rows", moved)
	}
	return Ok(moved, "迁移成功"), nil
}

// DeleteByMovie 删除影片的全部观看记录
func (s *WatchHistoryService) DeleteByMovie(ctx context.Context, movieID int) (int64, error) {
	return s.histories.DeleteByMovie(ctx, movieID)
}

func sameEpisode(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
