package repository

import (
	"context"
	"time"

	"github.com/user/filmhub/internal/model"
	"gorm.io/gorm"
)

// FollowedMovieRepository 关注影片仓库
type FollowedMovieRepository struct {
	*Repository[model.FollowedMovie]
	db *gorm.DB
}

// NewFollowedMovieRepository 创建关注仓库
func NewFollowedMovieRepository(db *gorm.DB) *FollowedMovieRepository {
	return &FollowedMovieRepository{Repository: NewRepository[model.FollowedMovie](db), db: db}
}

// Follow 添加关注，已关注时不重复写入
func (r *FollowedMovieRepository) Follow(ctx context.Context, userID string, movieID int) (*model.FollowedMovie, error) {
	follow := model.FollowedMovie{UserID: userID, MovieID: movieID, CreatedAt: time.Now()}
	err := r.db.WithContext(ctx).
		Where(model.FollowedMovie{UserID: userID, MovieID: movieID}).
		FirstOrCreate(&follow).Error
	if err != nil {
		return nil, err
	}
	return &follow, nil
}

// Unfollow 取消关注
func (r *FollowedMovieRepository) Unfollow(ctx context.Context, userID string, movieID int) (int64, error) {
	return r.RemoveRange(ctx, Where(Eq("user_id", userID), Eq("movie_id", movieID)))
}

// IsFollowing 检查是否已关注
func (r *FollowedMovieRepository) IsFollowing(ctx context.Context, userID string, movieID int) (bool, error) {
	count, err := r.Count(ctx, Where(Eq("user_id", userID), Eq("movie_id", movieID)))
	return count > 0, err
}

// ListByUser 获取用户关注列表（预加载影片及类型）
func (r *FollowedMovieRepository) ListByUser(ctx context.Context, userID string, page Page) ([]model.FollowedMovie, int64, error) {
	return r.FindPaged(ctx, Where(Eq("user_id", userID)).
		With("Movie", "Movie.MovieGenres.Genre").
		OrderBy("created_at", true).
		OrderBy("id", true).
		Paged(page))
}
