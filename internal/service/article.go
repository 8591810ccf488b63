package service

import (
	"context"
	"fmt"

	"github.com/user/filmhub/internal/dto"
	"github.com/user/filmhub/internal/repository"
)

// articleStore 文章聚合仓库（文章 + 标签关联）
type articleStore[T any] interface {
	Create(ctx context.Context, article *T, tagIDs []int) error
	Save(ctx context.Context, article *T, tagIDs []int) error
	GetWithTags(ctx context.Context, id int) (*T, error)
	FindAll(ctx context.Context, q repository.Query) ([]T, error)
	FindPosts(ctx context.Context, tagID int, onlyVisible bool, page repository.Page) ([]T, int64, error)
	DeleteAggregate(ctx context.Context, id int) error
}

// tagLookup 校验标签 ID
type tagLookup interface {
	ExistingIDs(ctx context.Context, ids []int) ([]int, error)
}

// articleService 博客与资讯共用的文章服务模板
type articleService[T any] struct {
	store     articleStore[T]
	tags      tagLookup
	media     *media
	label     string
	preload   string
	build     func(dto.CreateArticleRequest) T
	merge     func(*T, dto.UpdateArticleRequest)
	respond   func(T) dto.ArticleResponse
	idOf      func(*T) int
	thumbnail func(*T) *string
}

func (s *articleService[T]) create(ctx context.Context, req dto.CreateArticleRequest) (*Result[dto.ArticleResponse], error) {
	if msg := validateRequest(req); msg != "" {
		return Invalid[dto.ArticleResponse]("%s", msg), nil
	}
	if res, err := s.checkTags(ctx, req.TagIDs); res != nil || err != nil {
		return res, err
	}

	article := s.build(req)
	uploaded, err := s.media.uploadAll(ctx, upload{file: req.Thumbnail, dst: s.thumbnail(&article)})
	if err != nil {
		return nil, fmt.Errorf("上传%s缩略图失败: %w", s.label, err)
	}
	if err := s.store.Create(ctx, &article, req.TagIDs); err != nil {
		s.media.discard(context.WithoutCancel(ctx), uploaded...)
		return nil, fmt.Errorf("保存%s失败: %w", s.label, err)
	}
	return s.reload(ctx, s.idOf(&article), "创建成功")
}

func (s *articleService[T]) update(ctx context.Context, id int, req dto.UpdateArticleRequest) (*Result[dto.ArticleResponse], error) {
	if msg := validateRequest(req); msg != "" {
		return Invalid[dto.ArticleResponse]("%s", msg), nil
	}
	article, err := s.store.GetWithTags(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return NotFound[dto.ArticleResponse]("%s %d 不存在", s.label, id), nil
	}
	if req.TagIDs != nil {
		if res, err := s.checkTags(ctx, req.TagIDs); res != nil || err != nil {
			return res, err
		}
	}

	s.merge(article, req)

	var replaced string
	if req.Thumbnail != nil {
		replaced = *s.thumbnail(article)
	}
	uploaded, err := s.media.uploadAll(ctx, upload{file: req.Thumbnail, dst: s.thumbnail(article)})
	if err != nil {
		return nil, fmt.Errorf("上传%s缩略图失败: %w", s.label, err)
	}
	if err := s.store.Save(ctx, article, req.TagIDs); err != nil {
		s.media.discard(context.WithoutCancel(ctx), uploaded...)
		return nil, fmt.Errorf("保存%s失败: %w", s.label, err)
	}
	s.media.discard(context.WithoutCancel(ctx), replaced)
	return s.reload(ctx, id, "更新成功")
}

func (s *articleService[T]) delete(ctx context.Context, id int) (*Result[bool], error) {
	article, err := s.store.GetWithTags(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return NotFound[bool]("%s %d 不存在", s.label, id), nil
	}
	if err := s.store.DeleteAggregate(ctx, id); err != nil {
		return nil, fmt.Errorf("删除%s失败: %w", s.label, err)
	}
	s.media.discard(context.WithoutCancel(ctx), *s.thumbnail(article))
	return Ok(true, "删除成功"), nil
}

func (s *articleService[T]) get(ctx context.Context, id int) (*Result[dto.ArticleResponse], error) {
	return s.reload(ctx, id, "")
}

func (s *articleService[T]) all(ctx context.Context) (*Result[[]dto.ArticleResponse], error) {
	articles, err := s.store.FindAll(ctx, repository.Query{}.With(s.preload).OrderBy("created_at", true).OrderBy("id", true))
	if err != nil {
		return nil, err
	}
	res := make([]dto.ArticleResponse, 0, len(articles))
	for _, a := range articles {
		res = append(res, s.respond(a))
	}
	return Ok(res, ""), nil
}

func (s *articleService[T]) paged(ctx context.Context, tagID int, page dto.PageQuery) (*Result[dto.PagedResponse[dto.ArticleResponse]], error) {
	p := repository.NewPage(page.PageNumber, page.PageSize)
	articles, total, err := s.store.FindPosts(ctx, tagID, !page.IncludeHidden, p)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ArticleResponse, 0, len(articles))
	for _, a := range articles {
		items = append(items, s.respond(a))
	}
	return Ok(dto.NewPagedResponse(items, p.Number, p.Size, total), ""), nil
}

func (s *articleService[T]) byTag(ctx context.Context, tagID int, page dto.PageQuery) (*Result[dto.PagedResponse[dto.ArticleResponse]], error) {
	found, err := s.tags.ExistingIDs(ctx, []int{tagID})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return NotFound[dto.PagedResponse[dto.ArticleResponse]]("标签 %d 不存在", tagID), nil
	}
	return s.paged(ctx, tagID, page)
}

func (s *articleService[T]) reload(ctx context.Context, id int, message string) (*Result[dto.ArticleResponse], error) {
	article, err := s.store.GetWithTags(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return NotFound[dto.ArticleResponse]("%s %d 不存在", s.label, id), nil
	}
	return Ok(s.respond(*article), message), nil
}

func (s *articleService[T]) checkTags(ctx context.Context, ids []int) (*Result[dto.ArticleResponse], error) {
	if len(ids) == 0 {
		return nil, nil
	}
	existing, err := s.tags.ExistingIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if missing := missingIDs(ids, existing); len(missing) > 0 {
		return Invalid[dto.ArticleResponse]("标签不存在: %s", joinIDs(missing)), nil
	}
	return nil, nil
}
