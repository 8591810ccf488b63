package service

import (
	"context"
	"strings"

	"github.com/user/filmhub/internal/dto"
	"github.com/user/filmhub/internal/mapper"
	"github.com/user/filmhub/internal/repository"
)

// tagStore 标签仓库的公共能力，博客标签与资讯标签共用
type tagStore[T any] interface {
	Add(ctx context.Context, entity *T) (*T, error)
	Update(ctx context.Context, entity *T) (*T, error)
	GetByID(ctx context.Context, id any) (*T, error)
	FindAll(ctx context.Context, q repository.Query) ([]T, error)
	FindPaged(ctx context.Context, q repository.Query) ([]T, int64, error)
	Delete(ctx context.Context, id int) error
}

// tagService 标签服务模板
type tagService[T any] struct {
	store   tagStore[T]
	label   string
	newTag  func(name string) T
	rename  func(t *T, name string)
	respond func(T) dto.TagResponse
}

func (s *tagService[T]) create(ctx context.Context, req dto.TagRequest) (*Result[dto.TagResponse], error) {
	if msg := validateRequest(req); msg != "" {
		return Invalid[dto.TagResponse]("%s", msg), nil
	}
	tag := s.newTag(strings.TrimSpace(req.Name))
	if _, err := s.store.Add(ctx, &tag); err != nil {
		return nil, err
	}
	return Ok(s.respond(tag), "创建成功"), nil
}

func (s *tagService[T]) update(ctx context.Context, id int, req dto.TagRequest) (*Result[dto.TagResponse], error) {
	if msg := validateRequest(req); msg != "" {
		return Invalid[dto.TagResponse]("%s", msg), nil
	}
	tag, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return NotFound[dto.TagResponse]("%s %d 不存在", s.label, id), nil
	}
	s.rename(tag, strings.TrimSpace(req.Name))
	if _, err := s.store.Update(ctx, tag); err != nil {
		return nil, err
	}
	return Ok(s.respond(*tag), "更新成功"), nil
}

func (s *tagService[T]) delete(ctx context.Context, id int) (*Result[bool], error) {
	tag, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return NotFound[bool]("%s %d 不存在", s.label, id), nil
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return nil, err
	}
	return Ok(true, "删除成功"), nil
}

func (s *tagService[T]) get(ctx context.Context, id int) (*Result[dto.TagResponse], error) {
	tag, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return NotFound[dto.TagResponse]("%s %d 不存在", s.label, id), nil
	}
	return Ok(s.respond(*tag), ""), nil
}

func (s *tagService[T]) all(ctx context.Context) (*Result[[]dto.TagResponse], error) {
	tags, err := s.store.FindAll(ctx, repository.Query{}.OrderBy("name", false))
	if err != nil {
		return nil, err
	}
	return Ok(mapper.Slice(tags, s.respond), ""), nil
}

func (s *tagService[T]) paged(ctx context.Context, page dto.PageQuery) (*Result[dto.PagedResponse[dto.TagResponse]], error) {
	p := repository.NewPage(page.PageNumber, page.PageSize)
	tags, total, err := s.store.FindPaged(ctx, repository.Query{}.OrderBy("id", false).Paged(p))
	if err != nil {
		return nil, err
	}
	return Ok(dto.NewPagedResponse(mapper.Slice(tags, s.respond), p.Number, p.Size, total), ""), nil
}
