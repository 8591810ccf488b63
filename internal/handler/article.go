package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/user/filmhub/internal/dto"
)

// ListBlogPosts 博客分页，支持 tagId 过滤
func (h *Handler) ListBlogPosts(c *gin.Context) {
	page, valid := pageQuery(c)
	if !valid {
		return
	}
	tagID, valid := queryID(c, "tagId")
	if !valid {
		return
	}
	if tagID > 0 {
		res, err := h.BlogPost.GetBlogPostsByTag(c.Request.Context(), tagID, page)
		ok(h, c, res, err)
		return
	}
	res, err := h.BlogPost.GetBlogPostsPaged(c.Request.Context(), page)
	ok(h, c, res, err)
}

// AllBlogPosts 全部博客
func (h *Handler) AllBlogPosts(c *gin.Context) {
	res, err := h.BlogPost.GetAllBlogPosts(c.Request.Context())
	ok(h, c, res, err)
}

// GetBlogPost 博客详情
func (h *Handler) GetBlogPost(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	res, err := h.BlogPost.GetBlogPostByID(c.Request.Context(), id)
	ok(h, c, res, err)
}

// CreateBlogPost 创建博客（multipart）
func (h *Handler) CreateBlogPost(c *gin.Context) {
	req, files, valid := bindCreateArticle(c)
	if !valid {
		return
	}
	defer files.Close()
	res, err := h.BlogPost.CreateBlogPost(c.Request.Context(), req)
	created(h, c, res, err)
}

// UpdateBlogPost 更新博客（multipart）
func (h *Handler) UpdateBlogPost(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	req, files, valid := bindUpdateArticle(c)
	if !valid {
		return
	}
	defer files.Close()
	res, err := h.BlogPost.UpdateBlogPost(c.Request.Context(), id, req)
	ok(h, c, res, err)
}

// DeleteBlogPost 删除博客
func (h *Handler) DeleteBlogPost(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	res, err := h.BlogPost.DeleteBlogPost(c.Request.Context(), id)
	ok(h, c, res, err)
}

// ListPosts 资讯分页，支持 tagId 过滤
func (h *Handler) ListPosts(c *gin.Context) {
	page, valid := pageQuery(c)
	if !valid {
		return
	}
	tagID, valid := queryID(c, "tagId")
	if !valid {
		return
	}
	if tagID > 0 {
		res, err := h.Post.GetPostsByTag(c.Request.Context(), tagID, page)
		ok(h, c, res, err)
		return
	}
	res, err := h.Post.GetPostsPaged(c.Request.Context(), page)
	ok(h, c, res, err)
}

// AllPosts 全部资讯
func (h *Handler) AllPosts(c *gin.Context) {
	res, err := h.Post.GetAllPosts(c.Request.Context())
	ok(h, c, res, err)
}

// GetPost 资讯详情
func (h *Handler) GetPost(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	res, err := h.Post.GetPostByID(c.Request.Context(), id)
	ok(h, c, res, err)
}

// CreatePost 创建资讯（multipart）
func (h *Handler) CreatePost(c *gin.Context) {
	req, files, valid := bindCreateArticle(c)
	if !valid {
		return
	}
	defer files.Close()
	res, err := h.Post.CreatePost(c.Request.Context(), req)
	created(h, c, res, err)
}

// UpdatePost 更新资讯（multipart）
func (h *Handler) UpdatePost(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	req, files, valid := bindUpdateArticle(c)
	if !valid {
		return
	}
	defer files.Close()
	res, err := h.Post.UpdatePost(c.Request.Context(), id, req)
	ok(h, c, res, err)
}

// DeletePost 删除资讯
func (h *Handler) DeletePost(c *gin.Context) {
	id, valid := paramID(c, "id")
	if !valid {
		return
	}
	res, err := h.Post.DeletePost(c.Request.Context(), id)
	ok(h, c, res, err)
}

func bindCreateArticle(c *gin.Context) (dto.CreateArticleRequest, *formFiles, bool) {
	var req dto.CreateArticleRequest
	if !bindForm(c, &req) {
		return req, nil, false
	}
	files := newFormFiles(c)
	if !files.bind(map[string]**dto.File{"thumbnail": &req.Thumbnail}) {
		files.Close()
		return req, nil, false
	}
	return req, files, true
}

func bindUpdateArticle(c *gin.Context) (dto.UpdateArticleRequest, *formFiles, bool) {
	var req dto.UpdateArticleRequest
	if !bindForm(c, &req) {
		return req, nil, false
	}
	files := newFormFiles(c)
	if !files.bind(map[string]**dto.File{"thumbnail": &req.Thumbnail}) {
		files.Close()
		return req, nil, false
	}
	return req, files, true
}
