package service

import (
	"context"

	"github.com/hashicorp/go-hclog"
	"github.com/user/filmhub/internal/dto"
	"github.com/user/filmhub/internal/mapper"
	"github.com/user/filmhub/internal/model"
	"github.com/user/filmhub/internal/repository"
)

// BlogPostService 博客文章服务
type BlogPostService struct {
	articles articleService[model.BlogPost]
}

// NewBlogPostService 创建博客文章服务
func NewBlogPostService(repos *repository.Repositories, store MediaStore, logger hclog.Logger) *BlogPostService {
	return &BlogPostService{articles: articleService[model.BlogPost]{
		store:     repos.BlogPost,
		tags:      repos.BlogTag,
		media:     &media{store: store, logger: logger.Named("blog")},
		label:     "博客",
		preload:   "BlogPostTags.BlogTag",
		build:     mapper.ToBlogPost,
		merge:     mapper.MergeBlogPost,
		respond:   mapper.ToBlogPostResponse,
		idOf:      func(p *model.BlogPost) int { return p.ID },
		thumbnail: func(p *model.BlogPost) *string { return &p.ThumbnailURL },
	}}
}

// CreateBlogPost 创建博客
func (s *BlogPostService) CreateBlogPost(ctx context.Context, req dto.CreateArticleRequest) (*Result[dto.ArticleResponse], error) {
	return s.articles.create(ctx, req)
}

// UpdateBlogPost 更新博客
func (s *BlogPostService) UpdateBlogPost(ctx context.Context, id int, req dto.UpdateArticleRequest) (*Result[dto.ArticleResponse], error) {
	return s.articles.update(ctx, id, req)
}

// DeleteBlogPost 删除博客
func (s *BlogPostService) DeleteBlogPost(ctx context.Context, id int) (*Result[bool], error) {
	return s.articles.delete(ctx, id)
}

// GetBlogPostByID 博客详情
func (s *BlogPostService) GetBlogPostByID(ctx context.Context, id int) (*Result[dto.ArticleResponse], error) {
	return s.articles.get(ctx, id)
}

// GetAllBlogPosts 全部博客
func (s *BlogPostService) GetAllBlogPosts(ctx context.Context) (*Result[[]dto.ArticleResponse], error) {
	return s.articles.all(ctx)
}

// GetBlogPostsPaged 分页获取博客
func (s *BlogPostService) GetBlogPostsPaged(ctx context.Context, page dto.PageQuery) (*Result[dto.PagedResponse[dto.ArticleResponse]], error) {
	return s.articles.paged(ctx, 0, page)
}

// GetBlogPostsByTag 某标签下的博客
func (s *BlogPostService) GetBlogPostsByTag(ctx context.Context, tagID int, page dto.PageQuery) (*Result[dto.PagedResponse[dto.ArticleResponse]], error) {
	return s.articles.byTag(ctx, tagID, page)
}
