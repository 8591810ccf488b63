package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/user/filmhub/internal/dto"
)

// ListMovies 影片列表，支持 genreId 与 q 过滤
func (h *Handler) ListMovies(c *gin.Context) {
	page, valid := pageQuery(c)
	if !valid {
		return
	}
	genreID, valid := queryID(c, "genreId")
	if !valid {
		return
	}
	ctx := c.Request.Context()
	switch {
	case c.Query("q") != "":
		res, err := h.Movie.SearchMovies(ctx, c.Query("q"), page)
		ok(h, c, res, err)
	case genreID > 0:
		res, err := h.Movie.GetMoviesByGenre(ctx, genreID, page)
		ok(h, c, res, err)
	default:
		res, err := h.Movie.GetMoviesPaged(ctx, page)
		ok(h, c, res, err)
	}
}

// AllMovies 全部影片
func (h *Handler) AllMovies(c *gin.Context) {
	res, err := h.Movie.GetAllMovies(c.Request.Context())
	ok(h, c, res, err)
}

// RecentMovies 最近上架
func (h *Handler) RecentMovies(c *gin.Context) {
	page, valid := pageQuery(c)
	if !valid {
		return
	}
	res, err := h.Movie.GetRecentlyAdded(c.Request.Context(), page)
	ok(h, c, res, err)
}

// TVShows 剧集
func (h *Handler) TVShows(c *gin.Context) {
	page, valid := pageQuery(c)
	if !valid {
		return
	}
	res, err := h.Movie.GetTVShows(c.Request.Context(), page)
	ok(h, c, res, err)
}

// GetMovie 影片详情
func (h *Handler) GetMovie(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	res, err := h.Movie.GetMovieByID(c.Request.Context(), id)
	ok(h, c, res, err)
}

// SimilarMovies 同类型影片
func (h *Handler) SimilarMovies(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	page, valid := pageQuery(c)
	if !valid {
		return
	}
	res, err := h.Movie.GetSameGenreMovies(c.Request.Context(), id, page)
	ok(h, c, res, err)
}

// IncreaseViewCount 播放计数
func (h *Handler) IncreaseViewCount(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	res, err := h.Movie.IncreaseViewCount(c.Request.Context(), id)
	ok(h, c, res, err)
}

// CreateMovie 创建影片（multipart）
func (h *Handler) CreateMovie(c *gin.Context) {
	var req dto.CreateMovieRequest
	if !bindForm(c, &req) {
		return
	}
	files := newFormFiles(c)
	defer files.Close()
	if !files.bind(map[string]**dto.File{"poster": &req.Poster, "banner": &req.Banner, "video": &req.Video}) {
		return
	}
	res, err := h.Movie.CreateMovie(c.Request.Context(), req)
	created(h, c, res, err)
}

// UpdateMovie 更新影片（multipart），未上传的文件保持不变
func (h *Handler) UpdateMovie(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	var req dto.UpdateMovieRequest
	if !bindForm(c, &req) {
		return
	}
	files := newFormFiles(c)
	defer files.Close()
	if !files.bind(map[string]**dto.File{"poster": &req.Poster, "banner": &req.Banner, "video": &req.Video}) {
		return
	}
	res, err := h.Movie.UpdateMovie(c.Request.Context(), id, req)
	ok(h, c, res, err)
}

// DeleteMovie 删除影片及其分集、观看记录和文件
func (h *Handler) DeleteMovie(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	res, err := h.Movie.DeleteMovie(c.Request.Context(), id)
	ok(h, c, res, err)
}

// MovieEpisodes 影片的分集
func (h *Handler) MovieEpisodes(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	page, valid := pageQuery(c)
	if !valid {
		return
	}
	res, err := h.Episode.GetEpisodesByMovie(c.Request.Context(), id, page)
	ok(h, c, res, err)
}

// GetEpisode 分集详情
func (h *Handler) GetEpisode(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	res, err := h.Episode.GetEpisodeByID(c.Request.Context(), id)
	ok(h, c, res, err)
}

// CreateEpisode 创建分集（multipart）
func (h *Handler) CreateEpisode(c *gin.Context) {
	var req dto.CreateEpisodeRequest
	if !bindForm(c, &req) {
		return
	}
	files := newFormFiles(c)
	defer files.Close()
	if !files.bind(map[string]**dto.File{"video": &req.Video, "thumbnail": &req.Thumbnail}) {
		return
	}
	res, err := h.Episode.CreateEpisode(c.Request.Context(), req)
	created(h, c, res, err)
}

// UpdateEpisode 更新分集（multipart）
func (h *Handler) UpdateEpisode(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	var req dto.UpdateEpisodeRequest
	if !bindForm(c, &req) {
		return
	}
	files := newFormFiles(c)
	defer files.Close()
	if !files.bind(map[string]**dto.File{"video": &req.Video, "thumbnail": &req.Thumbnail}) {
		return
	}
	res, err := h.Episode.UpdateEpisode(c.Request.Context(), id, req)
	ok(h, c, res, err)
}

// DeleteEpisode 删除分集
func (h *Handler) DeleteEpisode(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	res, err := h.Episode.DeleteEpisode(c.Request.Context(), id)
	ok(h, c, res, err)
}
