package repository

import (
	"context"

	"github.com/user/filmhub/internal/model"
	"gorm.io/gorm"
)

// CommentRepository 评论仓库
type CommentRepository struct {
	*Repository[model.Comment]
}

// NewCommentRepository 创建评论仓库
func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{Repository: NewRepository[model.Comment](db)}
}

// ListByMovie 影片级评论（不含分集评论），最新在前
func (r *CommentRepository) ListByMovie(ctx context.Context, movieID int, page Page) ([]model.Comment, int64, error) {
	return r.FindPaged(ctx, Where(Eq("movie_id", movieID), IsNull("episode_id")).
		OrderBy("created_at", true).
		OrderBy("id", true).
		Paged(page))
}

// ListByEpisode 分集评论，最新在前
func (r *CommentRepository) ListByEpisode(ctx context.Context, episodeID int, page Page) ([]model.Comment, int64, error) {
	return r.FindPaged(ctx, Where(Eq("episode_id", episodeID)).
		OrderBy("created_at", true).
		OrderBy("id", true).
		Paged(page))
}
