package repository

import (
	"context"
	"errors"

	"github.com/user/filmhub/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const blogPostPreloadTags = "BlogPostTags.BlogTag"

// BlogPostRepository 博客文章仓库
type BlogPostRepository struct {
	*Repository[model.BlogPost]
	db *gorm.DB
}

// NewBlogPostRepository 创建博客文章仓库
func NewBlogPostRepository(db *gorm.DB) *BlogPostRepository {
	return &BlogPostRepository{Repository: NewRepository[model.BlogPost](db), db: db}
}

// Create 写入文章及标签关联
func (r *BlogPostRepository) Create(ctx context.Context, post *model.BlogPost, tagIDs []int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(post).Error; err != nil {
			return err
		}
		return replaceBlogPostTags(tx, post.ID, tagIDs)
	})
}

// Save 保存文章；tagIDs 为 nil 时保留原有标签
func (r *BlogPostRepository) Save(ctx context.Context, post *model.BlogPost, tagIDs []int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(post).Error; err != nil {
			return err
		}
		if tagIDs == nil {
			return nil
		}
		return replaceBlogPostTags(tx, post.ID, tagIDs)
	})
}

func replaceBlogPostTags(tx *gorm.DB, postID int, tagIDs []int) error {
	if err := tx.Where("blog_post_id = ?", postID).Delete(&model.BlogPostTag{}).Error; err != nil {
		return err
	}
	ids := uniqueIDs(tagIDs)
	if len(ids) == 0 {
		return nil
	}
	rows := make([]model.BlogPostTag, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, model.BlogPostTag{BlogPostID: postID, BlogTagID: id})
	}
	return tx.Omit(clause.Associations).Create(&rows).Error
}

// GetWithTags 查找文章并预加载标签
func (r *BlogPostRepository) GetWithTags(ctx context.Context, id int) (*model.BlogPost, error) {
	var post model.BlogPost
	err := r.db.WithContext(ctx).Preload(blogPostPreloadTags).First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// FindPosts 分页获取文章；tagID 为 0 时不按标签过滤
func (r *BlogPostRepository) FindPosts(ctx context.Context, tagID int, onlyVisible bool, page Page) ([]model.BlogPost, int64, error) {
	q := Query{}.With(blogPostPreloadTags).OrderBy("created_at", true).OrderBy("id", true).Paged(page)
	if onlyVisible {
		q = q.And(Eq("is_show", true))
	}
	if tagID > 0 {
		var ids []int
		if err := r.db.WithContext(ctx).Model(&model.BlogPostTag{}).Where("blog_tag_id = ?", tagID).Pluck("blog_post_id", &ids).Error; err != nil {
			return nil, 0, err
		}
		if len(ids) == 0 {
			return []model.BlogPost{}, 0, nil
		}
		q = q.And(In("id", ids))
	}
	return r.FindPaged(ctx, q)
}

// DeleteAggregate 先删除标签关联，再删除文章
func (r *BlogPostRepository) DeleteAggregate(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("blog_post_id = ?", id).Delete(&model.BlogPostTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.BlogPost{}, id).Error
	})
}

// BlogTagRepository 博客标签仓库
type BlogTagRepository struct {
	*Repository[model.BlogTag]
	db *gorm.DB
}

// NewBlogTagRepository 创建博客标签仓库
func NewBlogTagRepository(db *gorm.DB) *BlogTagRepository {
	return &BlogTagRepository{Repository: NewRepository[model.BlogTag](db), db: db}
}

// ExistingIDs 返回 ids 中实际存在的标签 ID
func (r *BlogTagRepository) ExistingIDs(ctx context.Context, ids []int) ([]int, error) {
	found := []int{}
	if len(ids) == 0 {
		return found, nil
	}
	err := r.db.WithContext(ctx).Model(&model.BlogTag{}).Where("id IN ?", uniqueIDs(ids)).Pluck("id", &found).Error
	return found, err
}

// Delete 先删除文章关联，再删除标签
func (r *BlogTagRepository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("blog_tag_id = ?", id).Delete(&model.BlogPostTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.BlogTag{}, id).Error
	})
}
