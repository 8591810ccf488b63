package service

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/user/filmhub/internal/dto"
	"github.com/user/filmhub/internal/mapper"
	"github.com/user/filmhub/internal/model"
	"github.com/user/filmhub/internal/repository"
)

// MovieService 影片服务
type MovieService struct {
	movies    *repository.MovieRepository
	genres    *repository.GenreRepository
	episodes  *EpisodeService
	histories *WatchHistoryService
	media     *media
	logger    hclog.Logger
}

// NewMovieService 创建影片服务
func NewMovieService(
	repos *repository.Repositories,
	episodes *EpisodeService,
	histories *WatchHistoryService,
	store MediaStore,
	logger hclog.Logger,
) *MovieService {
	logger = logger.Named("movie")
	return &MovieService{
		movies:    repos.Movie,
		genres:    repos.Genre,
		episodes:  episodes,
		histories: histories,
		media:     &media{store: store, logger: logger},
		logger:    logger,
	}
}

// CreateMovie 创建影片
// 1. 校验请求与类型 ID
// 2. 并发上传海报、横幅（非剧集时上传视频）
// 3. 写入影片与类型关联，失败时回收已上传文件
func (s *MovieService) CreateMovie(ctx context.Context, req dto.CreateMovieRequest) (*Result[dto.MovieResponse], error) {
	if msg := validateRequest(req); msg != "" {
		return Invalid[dto.MovieResponse]("%s", msg), nil
	}
	if res, err := s.checkGenres(ctx, req.GenreIDs); res != nil || err != nil {
		return res, err
	}

	movie := mapper.ToMovie(req)
	if field := blankMovieField(&movie); field != "" {
		return Invalid[dto.MovieResponse]("%s 不能为空", field), nil
	}
	if !movie.IsSeries {
		movie.IsSeriesCompleted = nil
	}

	uploads := []upload{
		{file: req.Poster, dst: &movie.PosterURL},
		{file: req.Banner, dst: &movie.BannerURL},
	}
	if !movie.IsSeries && req.Video != nil {
		uploads = append(uploads, upload{file: req.Video, video: true, dst: &movie.VideoURL})
	}
	uploaded, err := s.media.uploadAll(ctx, uploads...)
	if err != nil {
		return nil, fmt.Errorf("上传影片文件失败: %w", err)
	}

	if err := s.movies.Create(ctx, &movie, req.GenreIDs); err != nil {
		s.media.discard(context.WithoutCancel(ctx), uploaded...)
		return nil, fmt.Errorf("保存影片失败: %w", err)
	}
	s.logger.Info("影片已创建", "id", movie.ID, "title", movie.Title)

	return s.respond(ctx, movie.ID, "创建成功")
}

// UpdateMovie 更新影片；新文件先上传，保存成功后再删除旧文件
func (s *MovieService) UpdateMovie(ctx context.Context, id int, req dto.UpdateMovieRequest) (*Result[dto.MovieResponse], error) {
	if msg := validateRequest(req); msg != "" {
		return Invalid[dto.MovieResponse]("%s", msg), nil
	}
	movie, err := s.movies.GetWithGenres(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return NotFound[dto.MovieResponse]("影片 %d 不存在", id), nil
	}
	if req.GenreIDs != nil {
		if res, err := s.checkGenres(ctx, req.GenreIDs); res != nil || err != nil {
			return res, err
		}
	}

	mapper.MergeMovie(movie, req)
	if field := blankMovieField(movie); field != "" {
		return Invalid[dto.MovieResponse]("%s 不能为空", field), nil
	}
	if !movie.IsSeries {
		movie.IsSeriesCompleted = nil
	}

	var (
		uploads  []upload
		replaced []string
	)
	if req.Poster != nil {
		uploads = append(uploads, upload{file: req.Poster, dst: &movie.PosterURL})
		replaced = append(replaced, movie.PosterURL)
	}
	if req.Banner != nil {
		uploads = append(uploads, upload{file: req.Banner, dst: &movie.BannerURL})
		replaced = append(replaced, movie.BannerURL)
	}
	if req.Video != nil && !movie.IsSeries {
		uploads = append(uploads, upload{file: req.Video, video: true, dst: &movie.VideoURL})
		replaced = append(replaced, movie.VideoURL)
	}
	uploaded, err := s.media.uploadAll(ctx, uploads...)
	if err != nil {
		return nil, fmt.Errorf("上传影片文件失败: %w", err)
	}

	if err := s.movies.Save(ctx, movie, req.GenreIDs); err != nil {
		s.media.discard(context.WithoutCancel(ctx), uploaded...)
		return nil, fmt.Errorf("保存影片失败: %w", err)
	}
	s.media.discard(context.WithoutCancel(ctx), replaced...)

	return s.respond(ctx, movie.ID, "更新成功")
}

// DeleteMovie 删除影片及分集、类型关联、评论、关注和观看记录，最后清理文件
func (s *MovieService) DeleteMovie(ctx context.Context, id int) (*Result[bool], error) {
	movie, err := s.movies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return NotFound[bool]("影片 %d 不存在", id), nil
	}

	if _, err := s.histories.DeleteByMovie(ctx, id); err != nil {
		return nil, fmt.Errorf("删除观看记录失败: %w", err)
	}
	if err := s.episodes.DeleteEpisodesByMovie(ctx, id); err != nil {
		return nil, err
	}
	if err := s.movies.DeleteAggregate(ctx, id); err != nil {
		return nil, fmt.Errorf("删除影片失败: %w", err)
	}

	cleanup := context.WithoutCancel(ctx)
	s.media.discard(cleanup, movie.PosterURL, movie.BannerURL)
	s.media.discard(cleanup, movie.VideoURL)
	s.logger.Info("影片已删除", "id", id)

	return Ok(true, "删除成功"), nil
}

// GetMovieByID 影片详情
func (s *MovieService) GetMovieByID(ctx context.Context, id int) (*Result[dto.MovieResponse], error) {
	return s.respond(ctx, id, "")
}

// GetAllMovies 全部影片
func (s *MovieService) GetAllMovies(ctx context.Context) (*Result[[]dto.MovieResponse], error) {
	movies, err := s.movies.ListWithGenres(ctx)
	if err != nil {
		return nil, err
	}
	return Ok(mapper.Slice(movies, mapper.ToMovieResponse), ""), nil
}

// GetMoviesPaged 分页列表
func (s *MovieService) GetMoviesPaged(ctx context.Context, page dto.PageQuery) (*Result[dto.PagedResponse[dto.MovieResponse]], error) {
	return s.find(ctx, repository.MovieFilter{Kind: repository.MoviesAll}, page)
}

// GetMoviesByGenre 某类型下的影片
func (s *MovieService) GetMoviesByGenre(ctx context.Context, genreID int, page dto.PageQuery) (*Result[dto.PagedResponse[dto.MovieResponse]], error) {
	genre, err := s.genres.GetByID(ctx, genreID)
	if err != nil {
		return nil, err
	}
	if genre == nil {
		return NotFound[dto.PagedResponse[dto.MovieResponse]]("类型 %d 不存在", genreID), nil
	}
	return s.find(ctx, repository.MovieFilter{Kind: repository.MoviesByGenre, GenreID: genreID}, page)
}

// GetSameGenreMovies 与指定影片同类型的其它影片
func (s *MovieService) GetSameGenreMovies(ctx context.Context, movieID int, page dto.PageQuery) (*Result[dto.PagedResponse[dto.MovieResponse]], error) {
	movie, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return NotFound[dto.PagedResponse[dto.MovieResponse]]("影片 %d 不存在", movieID), nil
	}
	return s.find(ctx, repository.MovieFilter{Kind: repository.MoviesSameGenre, MovieID: movieID}, page)
}

// GetRecentlyAdded 按上映时间倒序
func (s *MovieService) GetRecentlyAdded(ctx context.Context, page dto.PageQuery) (*Result[dto.PagedResponse[dto.MovieResponse]], error) {
	return s.find(ctx, repository.MovieFilter{Kind: repository.MoviesRecent}, page)
}

// GetTVShows 剧集列表
func (s *MovieService) GetTVShows(ctx context.Context, page dto.PageQuery) (*Result[dto.PagedResponse[dto.MovieResponse]], error) {
	return s.find(ctx, repository.MovieFilter{Kind: repository.MoviesBySeries, IsSeries: true}, page)
}

// SearchMovies 按标题搜索
func (s *MovieService) SearchMovies(ctx context.Context, keyword string, page dto.PageQuery) (*Result[dto.PagedResponse[dto.MovieResponse]], error) {
	if keyword == "" {
		return Invalid[dto.PagedResponse[dto.MovieResponse]]("搜索关键词不能为空"), nil
	}
	return s.find(ctx, repository.MovieFilter{Kind: repository.MoviesSearch, Keyword: keyword}, page)
}

// IncreaseViewCount 播放量 +1
func (s *MovieService) IncreaseViewCount(ctx context.Context, id int) (*Result[bool], error) {
	movie, err := s.movies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return NotFound[bool]("影片 %d 不存在", id), nil
	}
	if err := s.movies.IncrementView(ctx, id); err != nil {
		return nil, err
	}
	return Ok(true, ""), nil
}

func (s *MovieService) find(ctx context.Context, f repository.MovieFilter, page dto.PageQuery) (*Result[dto.PagedResponse[dto.MovieResponse]], error) {
	p := repository.NewPage(page.PageNumber, page.PageSize)
	f.Page = p
	f.OnlyVisible = !page.IncludeHidden
	movies, total, err := s.movies.FindMovies(ctx, f)
	if err != nil {
		return nil, err
	}
	items := mapper.Slice(movies, mapper.ToMovieResponse)
	return Ok(dto.NewPagedResponse(items, p.Number, p.Size, total), ""), nil
}

func (s *MovieService) respond(ctx context.Context, id int, message string) (*Result[dto.MovieResponse], error) {
	movie, err := s.movies.GetWithGenres(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return NotFound[dto.MovieResponse]("影片 %d 不存在", id), nil
	}
	return Ok(mapper.ToMovieResponse(*movie), message), nil
}

// checkGenres 所有类型 ID 必须存在，否则返回列出无效 ID 的失败结果
func (s *MovieService) checkGenres(ctx context.Context, ids []int) (*Result[dto.MovieResponse], error) {
	if len(ids) == 0 {
		return nil, nil
	}
	existing, err := s.genres.ExistingIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if missing := missingIDs(ids, existing); len(missing) > 0 {
		return Invalid[dto.MovieResponse]("类型不存在: %s", joinIDs(missing)), nil
	}
	return nil, nil
}

// blankMovieField 返回合并后为空的必填字段名
func blankMovieField(m *model.Movie) string {
	switch {
	case m.Title == "":
		return "title"
	case m.Director == "":
		return "director"
	case m.Actor == "":
		return "actors"
	}
	return ""
}
