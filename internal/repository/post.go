package repository

import (
	"context"
	"errors"

	"github.com/user/filmhub/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const postPreloadTags = "PostTags.Tag"

// PostRepository 资讯文章仓库
type PostRepository struct {
	*Repository[model.Post]
	db *gorm.DB
}

// NewPostRepository 创建资讯文章仓库
func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{Repository: NewRepository[model.Post](db), db: db}
}

// Create 写入文章及标签关联
func (r *PostRepository) Create(ctx context.Context, post *model.Post, tagIDs []int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(post).Error; err != nil {
			return err
		}
		return replacePostTags(tx, post.ID, tagIDs)
	})
}

// Save 保存文章；tagIDs 为 nil 时保留原有标签
func (r *PostRepository) Save(ctx context.Context, post *model.Post, tagIDs []int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(post).Error; err != nil {
			return err
		}
		if tagIDs == nil {
			return nil
		}
		return replacePostTags(tx, post.ID, tagIDs)
	})
}

func replacePostTags(tx *gorm.DB, postID int, tagIDs []int) error {
	if err := tx.Where("post_id = ?", postID).Delete(&model.PostTags{}).Error; err != nil {
		return err
	}
	ids := uniqueIDs(tagIDs)
	if len(ids) == 0 {
		return nil
	}
	rows := make([]model.PostTags, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, model.PostTags{PostID: postID, TagID: id})
	}
	return tx.Omit(clause.Associations).Create(&rows).Error
}

// GetWithTags 查找文章并预加载标签
func (r *PostRepository) GetWithTags(ctx context.Context, id int) (*model.Post, error) {
	var post model.Post
	err := r.db.WithContext(ctx).Preload(postPreloadTags).First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// FindPosts 分页获取文章；tagID 为 0 时不按标签过滤
func (r *PostRepository) FindPosts(ctx context.Context, tagID int, onlyVisible bool, page Page) ([]model.Post, int64, error) {
	q := Query{}.With(postPreloadTags).OrderBy("created_at", true).OrderBy("id", true).Paged(page)
	if onlyVisible {
		q = q.And(Eq("is_show", true))
	}
	if tagID > 0 {
		var ids []int
		if err := r.db.WithContext(ctx).Model(&model.PostTags{}).Where("tag_id = ?", tagID).Pluck("post_id", &ids).Error; err != nil {
			return nil, 0, err
		}
		if len(ids) == 0 {
			return []model.Post{}, 0, nil
		}
		q = q.And(In("id", ids))
	}
	return r.FindPaged(ctx, q)
}

// DeleteAggregate 先删除标签关联，再删除文章
func (r *PostRepository) DeleteAggregate(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.PostTags{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Post{}, id).Error
	})
}

// TagRepository 资讯标签仓库
type TagRepository struct {
	*Repository[model.Tag]
	db *gorm.DB
}

// NewTagRepository 创建资讯标签仓库
func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{Repository: NewRepository[model.Tag](db), db: db}
}

// ExistingIDs 返回 ids 中实际存在的标签 ID
func (r *TagRepository) ExistingIDs(ctx context.Context, ids []int) ([]int, error) {
	found := []int{}
	if len(ids) == 0 {
		return found, nil
	}
	err := r.db.WithContext(ctx).Model(&model.Tag{}).Where("id IN ?", uniqueIDs(ids)).Pluck("id", &found).Error
	return found, err
}

// Delete 先删除文章关联，再删除标签
func (r *TagRepository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", id).Delete(&model.PostTags{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Tag{}, id).Error
	})
}
