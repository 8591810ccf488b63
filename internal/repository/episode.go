package repository

import (
	"context"

	"github.com/user/filmhub/internal/model"
	"gorm.io/gorm"
)

// EpisodeRepository 分集仓库
type EpisodeRepository struct {
	*Repository[model.Episode]
	db *gorm.DB
}

// NewEpisodeRepository 创建分集仓库
func NewEpisodeRepository(db *gorm.DB) *EpisodeRepository {
	return &EpisodeRepository{Repository: NewRepository[model.Episode](db), db: db}
}

// MaxEpisodeNumber 获取影片当前最大集数，无分集时返回 0
func (r *EpisodeRepository) MaxEpisodeNumber(ctx context.Context, movieID int) (int, error) {
	var max int
	err := r.db.WithContext(ctx).Model(&model.Episode{}).
		Where("movie_id = ?", movieID).
		Select("COALESCE(MAX(episode_number), 0)").
		Scan(&max).Error
	return max, err
}

// ListByMovie 按集数顺序分页获取影片分集
func (r *EpisodeRepository) ListByMovie(ctx context.Context, movieID int, onlyVisible bool, page Page) ([]model.Episode, int64, error) {
	q := Where(Eq("movie_id", movieID))
	if onlyVisible {
		q = q.And(Eq("is_show", true))
	}
	return r.FindPaged(ctx, q.OrderBy("episode_number", false).Paged(page))
}

// ListAllByMovie 获取影片全部分集
func (r *EpisodeRepository) ListAllByMovie(ctx context.Context, movieID int) ([]model.Episode, error) {
	return r.FindAll(ctx, Where(Eq("movie_id", movieID)).OrderBy("episode_number", false))
}

// DeleteWithComments 删除分集及其评论、观看记录
func (r *EpisodeRepository) DeleteWithComments(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("episode_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("episode_id = ?", id).Delete(&model.WatchHistory{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Episode{}, id).Error
	})
}
