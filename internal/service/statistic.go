package service

import (
	"context"
	"time"

	"github.com/user/filmhub/internal/dto"
	"github.com/user/filmhub/internal/repository"
)

const defaultTopLimit = 10

// StatisticService 后台统计
type StatisticService struct {
	histories *repository.WatchHistoryRepository
	repos     *repository.Repositories
}

// NewStatisticService 创建统计服务
func NewStatisticService(repos *repository.Repositories) *StatisticService {
	return &StatisticService{histories: repos.WatchHistory, repos: repos}
}

// GetViewStatistics 时间范围内每部影片每天的观看次数（范围含两端日期）
func (s *StatisticService) GetViewStatistics(ctx context.Context, req dto.StatisticRequest) (*Result[[]dto.MovieViewStatistic], error) {
	from, to, res := dayRange[[]dto.MovieViewStatistic](req)
	if res != nil {
		return res, nil
	}
	rows, err := s.histories.ViewsByMovieAndDay(ctx, from, to)
	if err != nil {
		return nil, err
	}

	stats := []dto.MovieViewStatistic{}
	index := make(map[int]int)
	for _, r := range rows {
		i, ok := index[r.MovieID]
		if !ok {
			i = len(stats)
			index[r.MovieID] = i
			stats = append(stats, dto.MovieViewStatistic{MovieID: r.MovieID, Title: r.Title, Points: []dto.ViewPoint{}})
		}
		stats[i].Points = append(stats[i].Points, dto.ViewPoint{Day: r.Day, Views: r.Views})
		stats[i].TotalViews += r.Views
	}
	return Ok(stats, ""), nil
}

// GetTopMovies 时间范围内观看最多的影片
func (s *StatisticService) GetTopMovies(ctx context.Context, req dto.StatisticRequest, limit int) (*Result[[]dto.TopMovieResponse], error) {
	from, to, res := dayRange[[]dto.TopMovieResponse](req)
	if res != nil {
		return res, nil
	}
	if limit <= 0 || limit > 100 {
		limit = defaultTopLimit
	}
	rows, err := s.histories.TopMovies(ctx, from, to, limit)
	if err != nil {
		return nil, err
	}
	top := make([]dto.TopMovieResponse, 0, len(rows))
	for _, r := range rows {
		top = append(top, dto.TopMovieResponse{MovieID: r.MovieID, Title: r.Title, Views: r.Views})
	}
	return Ok(top, ""), nil
}

// GetOverview 后台概览计数
func (s *StatisticService) GetOverview(ctx context.Context) (*Result[dto.OverviewResponse], error) {
	var (
		res dto.OverviewResponse
		err error
	)
	if res.Movies, err = s.repos.Movie.Count(ctx, repository.Query{}); err != nil {
		return nil, err
	}
	if res.Series, err = s.repos.Movie.Count(ctx, repository.Where(repository.Eq("is_series", true))); err != nil {
		return nil, err
	}
	if res.Episodes, err = s.repos.Episode.Count(ctx, repository.Query{}); err != nil {
		return nil, err
	}
	if res.Genres, err = s.repos.Genre.Count(ctx, repository.Query{}); err != nil {
		return nil, err
	}
	if res.Orders, err = s.repos.Order.Count(ctx, repository.Query{}); err != nil {
		return nil, err
	}
	err = s.repos.Order.BaseQuery(ctx, repository.Query{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&res.Revenue).Error
	if err != nil {
		return nil, err
	}
	return Ok(res, ""), nil
}

// dayRange 把日期范围展开为 [from 00:00, to 23:59:59.999] (UTC)
func dayRange[T any](req dto.StatisticRequest) (time.Time, time.Time, *Result[T]) {
	if req.From.IsZero() || req.To.IsZero() {
		return time.Time{}, time.Time{}, Invalid[T]("from 与 to 不能为空")
	}
	from := truncateDay(req.From)
	to := truncateDay(req.To)
	if from.After(to) {
		return time.Time{}, time.Time{}, Invalid[T]("开始日期不能晚于结束日期")
	}
	return from, to.Add(24*time.Hour - time.Nanosecond), nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
