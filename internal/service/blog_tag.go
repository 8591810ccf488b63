package service

import (
	"context"

	"github.com/user/filmhub/internal/dto"
	"github.com/user/filmhub/internal/mapper"
	"github.com/user/filmhub/internal/model"
	"github.com/user/filmhub/internal/repository"
)

// BlogTagService 博客标签服务
type BlogTagService struct {
	tags tagService[model.BlogTag]
}

// NewBlogTagService 创建博客标签服务
func NewBlogTagService(repos *repository.Repositories) *BlogTagService {
	return &BlogTagService{tags: tagService[model.BlogTag]{
		store:   repos.BlogTag,
		label:   "博客标签",
		newTag:  func(name string) model.BlogTag { return model.BlogTag{Name: name} },
		rename:  func(t *model.BlogTag, name string) { t.Name = name },
		respond: mapper.ToBlogTagResponse,
	}}
}

// CreateBlogTag 创建标签
func (s *BlogTagService) CreateBlogTag(ctx context.Context, req dto.TagRequest) (*Result[dto.TagResponse], error) {
	return s.tags.create(ctx, req)
}

// UpdateBlogTag 重命名标签
func (s *BlogTagService) UpdateBlogTag(ctx context.Context, id int, req dto.TagRequest) (*Result[dto.TagResponse], error) {
	return s.tags.update(ctx, id, req)
}

// DeleteBlogTag 删除标签及文章关联
func (s *BlogTagService) DeleteBlogTag(ctx context.Context, id int) (*Result[bool], error) {
	return s.tags.delete(ctx, id)
}

// GetBlogTagByID 标签详情
func (s *BlogTagService) GetBlogTagByID(ctx context.Context, id int) (*Result[dto.TagResponse], error) {
	return s.tags.get(ctx, id)
}

// GetAllBlogTags 全部标签
func (s *BlogTagService) GetAllBlogTags(ctx context.Context) (*Result[[]dto.TagResponse], error) {
	return s.tags.all(ctx)
}

// GetBlogTagsPaged 分页获取标签
func (s *BlogTagService) GetBlogTagsPaged(ctx context.Context, page dto.PageQuery) (*Result[dto.PagedResponse[dto.TagResponse]], error) {
	return s.tags.paged(ctx, page)
}

// TagService 资讯标签服务
type TagService struct {
	tags tagService[model.Tag]
}

// NewTagService 创建资讯标签服务
func NewTagService(repos *repository.Repositories) *TagService {
	return &TagService{tags: tagService[model.Tag]{
		store:   repos.Tag,
		label:   "标签",
		newTag:  func(name string) model.Tag { return model.Tag{Name: name} },
		rename:  func(t *model.Tag, name string) { t.Name = name },
		respond: mapper.ToTagResponse,
	}}
}

// CreateTag 创建标签
func (s *TagService) CreateTag(ctx context.Context, req dto.TagRequest) (*Result[dto.TagResponse], error) {
	return s.tags.create(ctx, req)
}

// UpdateTag 重命名标签
func (s *TagService) UpdateTag(ctx context.Context, id int, req dto.TagRequest) (*Result[dto.TagResponse], error) {
	return s.tags.update(ctx, id, req)
}

// DeleteTag 删除标签及文章关联
func (s *TagService) DeleteTag(ctx context.Context, id int) (*Result[bool], error) {
	return s.tags.delete(ctx, id)
}

// GetTagByID 标签详情
func (s *TagService) GetTagByID(ctx context.Context, id int) (*Result[dto.TagResponse], error) {
	return s.tags.get(ctx, id)
}

// GetAllTags 全部标签
func (s *TagService) GetAllTags(ctx context.Context) (*Result[[]dto.TagResponse], error) {
	return s.tags.all(ctx)
}

// GetTagsPaged 分页获取标签
func (s *TagService) GetTagsPaged(ctx context.Context, page dto.PageQuery) (*Result[dto.PagedResponse[dto.TagResponse]], error) {
	return s.tags.paged(ctx, page)
}
