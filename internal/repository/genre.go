package repository

import (
	"context"

	"github.com/user/filmhub/internal/model"
	"gorm.io/gorm"
)

// GenreRepository 类型仓库
type GenreRepository struct {
	*Repository[model.Genre]
	db *gorm.DB
}

// NewGenreRepository 创建类型仓库
func NewGenreRepository(db *gorm.DB) *GenreRepository {
	return &GenreRepository{Repository: NewRepository[model.Genre](db), db: db}
}

// ExistingIDs 返回 ids 中实际存在的类型 ID
func (r *GenreRepository) ExistingIDs(ctx context.Context, ids []int) ([]int, error) {
	found := []int{}
	if len(ids) == 0 {
		return found, nil
	}
	err := r.db.WithContext(ctx).Model(&model.Genre{}).Where("id IN ?", uniqueIDs(ids)).Pluck("id", &found).Error
	return found, err
}

// Delete 先删除影片关联，再删除类型
func (r *GenreRepository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("genre_id = ?", id).Delete(&model.MovieGenre{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Genre{}, id).Error
	})
}
