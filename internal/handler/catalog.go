package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/user/filmhub/internal/dto"
)

// ==================== 影片类型 ====================

// ListGenres 类型分页
func (h *Handler) ListGenres(c *gin.Context) {
	page, valid := pageQuery(c)
	if !valid {
		return
	}
	res, err := h.Genre.GetGenresPaged(c.Request.Context(), page)
	ok(h, c, res, err)
}

// AllGenres 全部类型
func (h *Handler) AllGenres(c *gin.Context) {
	res, err := h.Genre.GetAllGenres(c.Request.Context())
	ok(h, c, res, err)
}

// GetGenre 类型详情
func (h *Handler) GetGenre(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	res, err := h.Genre.GetGenreByID(c.Request.Context(), id)
	ok(h, c, res, err)
}

// CreateGenre 创建类型
func (h *Handler) CreateGenre(c *gin.Context) {
	var req dto.GenreRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.Genre.CreateGenre(c.Request.Context(), req)
	created(h, c, res, err)
}

// UpdateGenre 更新类型
func (h *Handler) UpdateGenre(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	var req dto.UpdateGenreRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.Genre.UpdateGenre(c.Request.Context(), id, req)
	ok(h, c, res, err)
}

// DeleteGenre 删除类型
func (h *Handler) DeleteGenre(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	res, err := h.Genre.DeleteGenre(c.Request.Context(), id)
	ok(h, c, res, err)
}

// ==================== 博客标签 ====================

// ListBlogTags 博客标签分页
func (h *Handler) ListBlogTags(c *gin.Context) {
	page, valid := pageQuery(c)
	if !valid {
		return
	}
	res, err := h.BlogTag.GetBlogTagsPaged(c.Request.Context(), page)
	ok(h, c, res, err)
}

// AllBlogTags 全部博客标签
func (h *Handler) AllBlogTags(c *gin.Context) {
	res, err := h.BlogTag.GetAllBlogTags(c.Request.Context())
	ok(h, c, res, err)
}

// GetBlogTag 博客标签详情
func (h *Handler) GetBlogTag(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	res, err := h.BlogTag.GetBlogTagByID(c.Request.Context(), id)
	ok(h, c, res, err)
}

// CreateBlogTag 创建博客标签
func (h *Handler) CreateBlogTag(c *gin.Context) {
	var req dto.TagRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.BlogTag.CreateBlogTag(c.Request.Context(), req)
	created(h, c, res, err)
}

// UpdateBlogTag 更新博客标签
func (h *Handler) UpdateBlogTag(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	var req dto.TagRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.BlogTag.UpdateBlogTag(c.Request.Context(), id, req)
	ok(h, c, res, err)
}

// DeleteBlogTag 删除博客标签
func (h *Handler) DeleteBlogTag(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	res, err := h.BlogTag.DeleteBlogTag(c.Request.Context(), id)
	ok(h, c, res, err)
}

// ==================== 资讯标签 ====================

// ListTags 资讯标签分页
func (h *Handler) ListTags(c *gin.Context) {
	page, valid := pageQuery(c)
	if !valid {
		return
	}
	res, err := h.Tag.GetTagsPaged(c.Request.Context(), page)
	ok(h, c, res, err)
}

// AllTags 全部资讯标签
func (h *Handler) AllTags(c *gin.Context) {
	res, err := h.Tag.GetAllTags(c.Request.Context())
	ok(h, c, res, err)
}

// GetTag 资讯标签详情
func (h *Handler) GetTag(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	res, err := h.Tag.GetTagByID(c.Request.Context(), id)
	ok(h, c, res, err)
}

// CreateTag 创建资讯标签
func (h *Handler) CreateTag(c *gin.Context) {
	var req dto.TagRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.Tag.CreateTag(c.Request.Context(), req)
	created(h, c, res, err)
}

// UpdateTag 更新资讯标签
func (h *Handler) UpdateTag(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	var req dto.TagRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.Tag.UpdateTag(c.Request.Context(), id, req)
	ok(h, c, res, err)
}

// DeleteTag 删除资讯标签
func (h *Handler) DeleteTag(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	res, err := h.Tag.DeleteTag(c.Request.Context(), id)
	ok(h, c, res, err)
}
