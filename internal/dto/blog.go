package dto

import "time"

// CreateArticleRequest 创建文章（博客与资讯共用）
type CreateArticleRequest struct {
	Title     string `form:"title" binding:"required,notblank,max=255"`
	Content   string `form:"content" binding:"required,notblank"`
	IsShow    bool   `form:"isShow"`
	TagIDs    []int  `form:"tagIds"`
	Thumbnail *File  `form:"-" binding:"required"`
}

// UpdateArticleRequest 更新文章
type UpdateArticleRequest struct {
	Title     *string `form:"title" binding:"omitnil,notblank,max=255"`
	Content   *string `form:"content" binding:"omitnil,notblank"`
	IsShow    *bool   `form:"isShow"`
	TagIDs    []int   `form:"tagIds"`
	Thumbnail *File   `form:"-"`
}

// ArticleTagResponse 文章标签
type ArticleTagResponse struct {
	TagID   int    `json:"tagId"`
	TagName string `json:"tagName"`
}

// ArticleResponse 文章
type ArticleResponse struct {
	ID           int                  `json:"id"`
	Title        string               `json:"title"`
	Content      string               `json:"content"`
	ThumbnailURL string               `json:"thumbnailUrl"`
	IsShow       bool                 `json:"isShow"`
	CreatedAt    time.Time            `json:"createdAt"`
	Tags         []ArticleTagResponse `json:"tags"`
}

// TagRequest 创建或更新标签
type TagRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// TagResponse 标签
type TagResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
