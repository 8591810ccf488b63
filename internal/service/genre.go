package service

import (
	"context"
	"strings"

	"github.com/user/filmhub/internal/dto"
	"github.com/user/filmhub/internal/mapper"
	"github.com/user/filmhub/internal/model"
	"github.com/user/filmhub/internal/repository"
)

// GenreService 影片类型服务
type GenreService struct {
	genres *repository.GenreRepository
}

// NewGenreService 创建类型服务
func NewGenreService(repos *repository.Repositories) *GenreService {
	return &GenreService{genres: repos.Genre}
}

// CreateGenre 创建类型
func (s *GenreService) CreateGenre(ctx context.Context, req dto.GenreRequest) (*Result[dto.GenreResponse], error) {
	if msg := validateRequest(req); msg != "" {
		return Invalid[dto.GenreResponse]("%s", msg), nil
	}
	genre := model.Genre{Name: strings.TrimSpace(req.Name), IsShow: req.IsShow}
	if _, err := s.genres.Add(ctx, &genre); err != nil {
		return nil, err
	}
	return Ok(mapper.ToGenreResponse(genre), "创建成功"), nil
}

// UpdateGenre 更新类型
func (s *GenreService) UpdateGenre(ctx context.Context, id int, req dto.UpdateGenreRequest) (*Result[dto.GenreResponse], error) {
	if msg := validateRequest(req); msg != "" {
		return Invalid[dto.GenreResponse]("%s", msg), nil
	}
	genre, err := s.genres.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if genre == nil {
		return NotFound[dto.GenreResponse]("类型 %d 不存在", id), nil
	}
	if req.Name != nil {
		genre.Name = strings.TrimSpace(*req.Name)
	}
	if req.IsShow != nil {
		genre.IsShow = *req.IsShow
	}
	if _, err := s.genres.Update(ctx, genre); err != nil {
		return nil, err
	}
	return Ok(mapper.ToGenreResponse(*genre), "更新成功"), nil
}

// DeleteGenre 删除类型，先删除影片关联
func (s *GenreService) DeleteGenre(ctx context.Context, id int) (*Result[bool], error) {
	genre, err := s.genres.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if genre == nil {
		return NotFound[bool]("类型 %d 不存在", id), nil
	}
	if err := s.genres.Delete(ctx, id); err != nil {
		return nil, err
	}
	return Ok(true, "删除成功"), nil
}

// GetGenreByID 类型详情
func (s *GenreService) GetGenreByID(ctx context.Context, id int) (*Result[dto.GenreResponse], error) {
	genre, err := s.genres.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if genre == nil {
		return NotFound[dto.GenreResponse]("类型 %d 不存在", id), nil
	}
	return Ok(mapper.ToGenreResponse(*genre), ""), nil
}

// GetAllGenres 全部类型
func (s *GenreService) GetAllGenres(ctx context.Context) (*Result[[]dto.GenreResponse], error) {
	genres, err := s.genres.FindAll(ctx, repository.Query{}.OrderBy("id", false))
	if err != nil {
		return nil, err
	}
	return Ok(mapper.Slice(genres, mapper.ToGenreResponse), ""), nil
}

// GetGenresPaged 分页获取类型，非管理员只看到显示中的类型
func (s *GenreService) GetGenresPaged(ctx context.Context, page dto.PageQuery) (*Result[dto.PagedResponse[dto.GenreResponse]], error) {
	p := repository.NewPage(page.PageNumber, page.PageSize)
	q := repository.Query{}
	if !page.IncludeHidden {
		q = q.And(repository.Eq("is_show", true))
	}
	genres, total, err := s.genres.FindPaged(ctx, q.OrderBy("id", false).Paged(p))
	if err != nil {
		return nil, err
	}
	items := mapper.Slice(genres, mapper.ToGenreResponse)
	return Ok(dto.NewPagedResponse(items, p.Number, p.Size, total), ""), nil
}
