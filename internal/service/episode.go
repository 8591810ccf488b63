package service

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/user/filmhub/internal/dto"
	"github.com/user/filmhub/internal/mapper"
	"github.com/user/filmhub/internal/repository"
)

// EpisodeService 分集服务
type EpisodeService struct {
	episodes *repository.EpisodeRepository
	movies   *repository.MovieRepository
	media    *media
	logger   hclog.Logger
}

// NewEpisodeService 创建分集服务
func NewEpisodeService(repos *repository.Repositories, store MediaStore, logger hclog.Logger) *EpisodeService {
	logger = logger.Named("episode")
	return &EpisodeService{
		episodes: repos.Episode,
		movies:   repos.Movie,
		media:    &media{store: store, logger: logger},
		logger:   logger,
	}
}

// CreateEpisode 为剧集追加一集，集数为当前最大集数 +1
func (s *EpisodeService) CreateEpisode(ctx context.Context, req dto.CreateEpisodeRequest) (*Result[dto.EpisodeResponse], error) {
	if msg := validateRequest(req); msg != "" {
		return Invalid[dto.EpisodeResponse]("%s", msg), nil
	}
	movie, err := s.movies.GetByID(ctx, req.MovieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return NotFound[dto.EpisodeResponse]("影片 %d 不存在", req.MovieID), nil
	}
	if !movie.IsSeries {
		return Invalid[dto.EpisodeResponse]("影片 %d 不是剧集", req.MovieID), nil
	}

	maxNumber, err := s.episodes.MaxEpisodeNumber(ctx, req.MovieID)
	if err != nil {
		return nil, err
	}
	episode := mapper.ToEpisode(req)
	episode.EpisodeNumber = maxNumber + 1

	uploaded, err := s.media.uploadAll(ctx,
		upload{file: req.Video, video: true, dst: &episode.VideoURL},
		upload{file: req.Thumbnail, dst: &episode.ThumbnailURL},
	)
	if err != nil {
		return nil, fmt.Errorf("上传分集文件失败: %w", err)
	}
	if _, err := s.episodes.Add(ctx, &episode); err != nil {
		s.media.discard(context.WithoutCancel(ctx), uploaded...)
		return nil, fmt.Errorf("保存分集失败: %w", err)
	}
	s.logger.Info("分集已创建", "movie_id", episode.MovieID, "number", episode.EpisodeNumber)

	return Ok(mapper.ToEpisodeResponse(episode), "创建成功"), nil
}

// UpdateEpisode 更新分集，替换的文件在保存后删除
func (s *EpisodeService) UpdateEpisode(ctx context.Context, id int, req dto.UpdateEpisodeRequest) (*Result[dto.EpisodeResponse], error) {
	if msg := validateRequest(req); msg != "" {
		return Invalid[dto.EpisodeResponse]("%s", msg), nil
	}
	episode, err := s.episodes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if episode == nil {
		return NotFound[dto.EpisodeResponse]("分集 %d 不存在", id), nil
	}

	mapper.MergeEpisode(episode, req)
	if episode.Title == "" {
		return Invalid[dto.EpisodeResponse]("title 不能为空"), nil
	}

	var (
		uploads  []upload
		replaced []string
	)
	if req.Video != nil {
		uploads = append(uploads, upload{file: req.Video, video: true, dst: &episode.VideoURL})
		replaced = append(replaced, episode.VideoURL)
	}
	if req.Thumbnail != nil {
		uploads = append(uploads, upload{file: req.Thumbnail, dst: &episode.ThumbnailURL})
		replaced = append(replaced, episode.ThumbnailURL)
	}
	uploaded, err := s.media.uploadAll(ctx, uploads...)
	if err != nil {
		return nil, fmt.Errorf("上传分集文件失败: %w", err)
	}
	if _, err := s.episodes.Update(ctx, episode); err != nil {
		s.media.discard(context.WithoutCancel(ctx), uploaded...)
		return nil, fmt.Errorf("保存分集失败: %w", err)
	}
	s.media.discard(context.WithoutCancel(ctx), replaced...)

	return Ok(mapper.ToEpisodeResponse(*episode), "更新成功"), nil
}

// DeleteEpisode 删除分集及其评论、观看记录和文件
func (s *EpisodeService) DeleteEpisode(ctx context.Context, id int) (*Result[bool], error) {
	episode, err := s.episodes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if episode == nil {
		return NotFound[bool]("分集 %d 不存在", id), nil
	}
	if err := s.episodes.DeleteWithComments(ctx, id); err != nil {
		return nil, fmt.Errorf("删除分集失败: %w", err)
	}
	s.media.discard(context.WithoutCancel(ctx), episode.VideoURL, episode.ThumbnailURL)
	return Ok(true, "删除成功"), nil
}

// DeleteEpisodesByMovie 删除影片下全部分集，影片删除时调用
func (s *EpisodeService) DeleteEpisodesByMovie(ctx context.Context, movieID int) error {
	episodes, err := s.episodes.ListAllByMovie(ctx, movieID)
	if err != nil {
		return err
	}
	var files []string
	for _, e := range episodes {
		if err := s.episodes.DeleteWithComments(ctx, e.ID); err != nil {
			return fmt.Errorf("删除分集 %d 失败: %w", e.ID, err)
		}
		files = append(files, e.VideoURL, e.ThumbnailURL)
	}
	s.media.discard(context.WithoutCancel(ctx), files...)
	return nil
}

// GetEpisodeByID 分集详情
func (s *EpisodeService) GetEpisodeByID(ctx context.Context, id int) (*Result[dto.EpisodeResponse], error) {
	episode, err := s.episodes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if episode == nil {
		return NotFound[dto.EpisodeResponse]("分集 %d 不存在", id), nil
	}
	return Ok(mapper.ToEpisodeResponse(*episode), ""), nil
}

// GetEpisodesByMovie 按集数分页获取影片分集
func (s *EpisodeService) GetEpisodesByMovie(ctx context.Context, movieID int, page dto.PageQuery) (*Result[dto.PagedResponse[dto.EpisodeResponse]], error) {
	movie, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return NotFound[dto.PagedResponse[dto.EpisodeResponse]]("影片 %d 不存在", movieID), nil
	}
	p := repository.NewPage(page.PageNumber, page.PageSize)
	episodes, total, err := s.episodes.ListByMovie(ctx, movieID, !page.IncludeHidden, p)
	if err != nil {
		return nil, err
	}
	items := mapper.Slice(episodes, mapper.ToEpisodeResponse)
	return Ok(dto.NewPagedResponse(items, p.Number, p.Size, total), ""), nil
}
