// Package mapper 在请求、实体与响应结构之间转换
package mapper

import (
	"strings"

	"github.com/user/filmhub/internal/dto"
	"github.com/user/filmhub/internal/model"
)

const actorSeparator = ", "

// JoinActors 演员列表存储为分隔字符串
func JoinActors(actors []string) string {
	cleaned := make([]string, 0, len(actors))
	for _, a := range actors {
		if s := strings.TrimSpace(a); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	return strings.Join(cleaned, actorSeparator)
}

// SplitActors 还原演员列表；演员名中不允许出现逗号
func SplitActors(actor string) []string {
	res := []string{}
	if actor == "" {
		return res
	}
	for _, p := range strings.Split(actor, ",") {
		if s := strings.TrimSpace(p); s != "" {
			res = append(res, s)
		}
	}
	return res
}

// Slice 逐个转换
func Slice[S, D any](in []S, fn func(S) D) []D {
	out := make([]D, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}

// ToMovie 创建请求 -> 实体（文件地址由服务填写）
func ToMovie(req dto.CreateMovieRequest) model.Movie {
	return model.Movie{
		Title:             strings.TrimSpace(req.Title),
		Description:       req.Description,
		Director:          strings.TrimSpace(req.Director),
		Actor:             JoinActors(req.Actors),
		IsPaid:            req.IsPaid,
		Price:             req.Price,
		IsSeries:          req.IsSeries,
		IsSeriesCompleted: req.IsSeriesCompleted,
		IsShow:            req.IsShow,
		ReleaseDate:       req.ReleaseDate,
	}
}

// MergeMovie 把更新请求中非空的标量字段合并到实体
func MergeMovie(m *model.Movie, req dto.UpdateMovieRequest) {
	if req.Title != nil {
		m.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		m.Description = *req.Description
	}
	if req.Director != nil {
		m.Director = strings.TrimSpace(*req.Director)
	}
	if req.Actors != nil {
		m.Actor = JoinActors(req.Actors)
	}
	if req.IsPaid != nil {
		m.IsPaid = *req.IsPaid
	}
	if req.Price != nil {
		m.Price = *req.Price
	}
	if req.IsSeries != nil {
		m.IsSeries = *req.IsSeries
	}
	if req.IsSeriesCompleted != nil {
		m.IsSeriesCompleted = req.IsSeriesCompleted
	}
	if req.IsShow != nil {
		m.IsShow = *req.IsShow
	}
	if req.ReleaseDate != nil {
		m.ReleaseDate = *req.ReleaseDate
	}
}

// ToMovieResponse 实体 -> 响应
func ToMovieResponse(m model.Movie) dto.MovieResponse {
	genres := make([]dto.MovieGenreResponse, 0, len(m.MovieGenres))
	for _, mg := range m.MovieGenres {
		g := dto.MovieGenreResponse{GenreID: mg.GenreID}
		if mg.Genre != nil {
			g.GenreName = mg.Genre.Name
		}
		genres = append(genres, g)
	}
	return dto.MovieResponse{
		ID:                m.ID,
		Title:             m.Title,
		Description:       m.Description,
		Director:          m.Director,
		Actors:            SplitActors(m.Actor),
		PosterURL:         m.PosterURL,
		BannerURL:         m.BannerURL,
		VideoURL:          m.VideoURL,
		IsPaid:            m.IsPaid,
		Price:             m.Price,
		IsSeries:          m.IsSeries,
		IsSeriesCompleted: m.IsSeriesCompleted,
		ViewCount:         m.ViewCount,
		RateCount:         m.RateCount,
		IsShow:            m.IsShow,
		ReleaseDate:       m.ReleaseDate,
		CreatedAt:         m.CreatedAt,
		Genres:            genres,
	}
}

// ToEpisode 创建请求 -> 实体
func ToEpisode(req dto.CreateEpisodeRequest) model.Episode {
	return model.Episode{
		MovieID:     req.MovieID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		IsShow:      req.IsShow,
	}
}

// MergeEpisode 合并分集更新
func MergeEpisode(e *model.Episode, req dto.UpdateEpisodeRequest) {
	if req.Title != nil {
		e.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		e.Description = req.Description
	}
	if req.IsShow != nil {
		e.IsShow = *req.IsShow
	}
}

// ToEpisodeResponse 分集响应
func ToEpisodeResponse(e model.Episode) dto.EpisodeResponse {
	return dto.EpisodeResponse{
		ID:            e.ID,
		MovieID:       e.MovieID,
		Title:         e.Title,
		Description:   e.Description,
		EpisodeNumber: e.EpisodeNumber,
		VideoURL:      e.VideoURL,
		ThumbnailURL:  e.ThumbnailURL,
		IsShow:        e.IsShow,
		CreatedAt:     e.CreatedAt,
	}
}

// ToGenreResponse 类型响应
func ToGenreResponse(g model.Genre) dto.GenreResponse {
	return dto.GenreResponse{ID: g.ID, Name: g.Name, IsShow: g.IsShow}
}
