package service

import (
	"context"

	"github.com/hashicorp/go-hclog"
	"github.com/user/filmhub/internal/dto"
	"github.com/user/filmhub/internal/mapper"
	"github.com/user/filmhub/internal/model"
	"github.com/user/filmhub/internal/repository"
)

// PostService 资讯文章服务
type PostService struct {
	articles articleService[model.Post]
}

// NewPostService 创建资讯文章服务
func NewPostService(repos *repository.Repositories, store MediaStore, logger hclog.Logger) *PostService {
	return &PostService{articles: articleService[model.Post]{
		store:     repos.Post,
		tags:      repos.Tag,
		media:     &media{store: store, logger: logger.Named("post")},
		label:     "资讯",
		preload:   "PostTags.Tag",
		build:     mapper.ToPost,
		merge:     mapper.MergePost,
		respond:   mapper.ToPostResponse,
		idOf:      func(p *model.Post) int { return p.ID },
		thumbnail: func(p *model.Post) *string { return &p.ThumbnailURL },
	}}
}

// CreatePost 创建资讯
func (s *PostService) CreatePost(ctx context.Context, req dto.CreateArticleRequest) (*Result[dto.ArticleResponse], error) {
	return s.articles.create(ctx, req)
}

// UpdatePost 更新资讯
func (s *PostService) UpdatePost(ctx context.Context, id int, req dto.UpdateArticleRequest) (*Result[dto.ArticleResponse], error) {
	return s.articles.update(ctx, id, req)
}

// DeletePost 删除资讯
func (s *PostService) DeletePost(ctx context.Context, id int) (*Result[bool], error) {
	return s.articles.delete(ctx, id)
}

// GetPostByID 资讯详情
func (s *PostService) GetPostByID(ctx context.Context, id int) (*Result[dto.ArticleResponse], error) {
	return s.articles.get(ctx, id)
}

// GetAllPosts 全部资讯
func (s *PostService) GetAllPosts(ctx context.Context) (*Result[[]dto.ArticleResponse], error) {
	return s.articles.all(ctx)
}

// GetPostsPaged 分页获取资讯
func (s *PostService) GetPostsPaged(ctx context.Context, page dto.PageQuery) (*Result[dto.PagedResponse[dto.ArticleResponse]], error) {
	return s.articles.paged(ctx, 0, page)
}

// GetPostsByTag 某标签下的资讯
func (s *PostService) GetPostsByTag(ctx context.Context, tagID int, page dto.PageQuery) (*Result[dto.PagedResponse[dto.ArticleResponse]], error) {
	return s.articles.byTag(ctx, tagID, page)
}
