package repository

import (
	"context"
	"errors"
	"time"

	"github.com/user/filmhub/internal/model"
	"gorm.io/gorm"
)

// WatchHistoryRepository 观看记录仓库
type WatchHistoryRepository struct {
	*Repository[model.WatchHistory]
	db *gorm.DB
}

// NewWatchHistoryRepository 创建观看记录仓库
func NewWatchHistoryRepository(db *gorm.DB) *WatchHistoryRepository {
	return &WatchHistoryRepository{Repository: NewRepository[model.WatchHistory](db), db: db}
}

// Latest 获取某用户在某影片（可选分集）上最新的一条记录
func (r *WatchHistoryRepository) Latest(ctx context.Context, userID string, movieID int, episodeID *int) (*model.WatchHistory, error) {
	tx := r.db.WithContext(ctx).Where("user_id = ? AND movie_id = ?", userID, movieID)
	if episodeID != nil {
		tx = tx.Where("episode_id = ?", *episodeID)
	}
	return firstHistory(tx)
}

// LatestEntry 与 Latest 相同，但 episodeID 为 nil 时只匹配影片级记录
func (r *WatchHistoryRepository) LatestEntry(ctx context.Context, userID string, movieID int, episodeID *int) (*model.WatchHistory, error) {
	tx := r.db.WithContext(ctx).Where("user_id = ? AND movie_id = ?", userID, movieID)
	if episodeID != nil {
		tx = tx.Where("episode_id = ?", *episodeID)
	} else {
		tx = tx.Where("episode_id IS NULL")
	}
	return firstHistory(tx)
}

func firstHistory(tx *gorm.DB) (*model.WatchHistory, error) {
	var h model.WatchHistory
	err := tx.Order("log_time DESC").Order("id DESC").First(&h).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// LatestPerMovie 按影片分组取最新记录，最新观看在前
func (r *WatchHistoryRepository) LatestPerMovie(ctx context.Context, userID string) ([]model.WatchHistory, error) {
	var histories []model.WatchHistory
	err := r.db.WithContext(ctx).
		Preload("Movie").
		Where("user_id = ?", userID).
		Order("log_time DESC").
		Order("id DESC").
		Find(&histories).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[int]bool)
	latest := make([]model.WatchHistory, 0, len(histories))
	for _, h := range histories {
		if seen[h.MovieID] {
			continue
		}
		seen[h.MovieID] = true
		latest = append(latest, h)
	}
	return latest, nil
}

// ReassignUser 把 from 名下的全部记录转给 to
func (r *WatchHistoryRepository) ReassignUser(ctx context.Context, from, to string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.WatchHistory{}).
		Where("user_id = ?", from).
		Update("user_id", to)
	return res.RowsAffected, res.Error
}

// DeleteByMovie 删除影片的全部观看记录
func (r *WatchHistoryRepository) DeleteByMovie(ctx context.Context, movieID int) (int64, error) {
	return r.RemoveRange(ctx, Where(Eq("movie_id", movieID)))
}

// MovieDayViews 单部影片单日的观看次数
type MovieDayViews struct {
	MovieID int
	Title   string
	Day     string
	Views   int64
}

// ViewsByMovieAndDay 统计时间范围内每部影片每天的观看次数
func (r *WatchHistoryRepository) ViewsByMovieAndDay(ctx context.Context, from, to time.Time) ([]MovieDayViews, error) {
	rows := []MovieDayViews{}
	err := r.db.WithContext(ctx).
		Table("watch_histories AS w").
		Select("w.movie_id AS movie_id, m.title AS title, DATE(w.log_time) AS day, COUNT(*) AS views").
		Joins("JOIN movies m ON m.id = w.movie_id").
		Where("w.log_time >= ? AND w.log_time <= ?", from, to).
		Group("w.movie_id, m.title, DATE(w.log_time)").
		Order("day ASC").
		Order("w.movie_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	// postgres 返回的 date 会被格式化为 RFC3339，统一截取到日期
	for i := range rows {
		if len(rows[i].Day) > 10 {
			rows[i].Day = rows[i].Day[:10]
		}
	}
	return rows, nil
}

// MovieViews 单部影片的观看次数
type MovieViews struct {
	MovieID int
	Title   string
	Views   int64
}

// TopMovies 时间范围内观看次数最多的影片
func (r *WatchHistoryRepository) TopMovies(ctx context.Context, from, to time.Time, limit int) ([]MovieViews, error) {
	rows := []MovieViews{}
	err := r.db.WithContext(ctx).
		Table("watch_histories AS w").
		Select("w.movie_id AS movie_id, m.title AS title, COUNT(*) AS views").
		Joins("JOIN movies m ON m.id = w.movie_id").
		Where("w.log_time >= ? AND w.log_time <= ?", from, to).
		Group("w.movie_id, m.title").
		Order("views DESC").
		Order("w.movie_id ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
