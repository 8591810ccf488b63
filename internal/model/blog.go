package model

import "time"

// BlogPost 博客文章
type BlogPost struct {
	ID           int           `json:"id" gorm:"primaryKey"`
	Title        string        `json:"title" gorm:"not null"`
	Content      string        `json:"content"`
	ThumbnailURL string        `json:"thumbnail_url"`
	IsShow       bool          `json:"is_show"`
	CreatedAt    time.Time     `json:"created_at" gorm:"index"`
	BlogPostTags []BlogPostTag `json:"blog_post_tags,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

// BlogTag 博客标签
type BlogTag struct {
	ID           int           `json:"id" gorm:"primaryKey"`
	Name         string        `json:"name" gorm:"not null"`
	BlogPostTags []BlogPostTag `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// BlogPostTag 博客文章与标签的关联
type BlogPostTag struct {
	BlogPostID int       `json:"blog_post_id" gorm:"primaryKey;autoIncrement:false"`
	BlogTagID  int       `json:"blog_tag_id" gorm:"primaryKey;autoIncrement:false"`
	BlogPost   *BlogPost `json:"-"`
	BlogTag    *BlogTag  `json:"blog_tag,omitempty"`
}

// Post 资讯文章
type Post struct {
	ID           int        `json:"id" gorm:"primaryKey"`
	Title        string     `json:"title" gorm:"not null"`
	Content      string     `json:"content"`
	ThumbnailURL string     `json:"thumbnail_url"`
	IsShow       bool       `json:"is_show"`
	CreatedAt    time.Time  `json:"created_at" gorm:"index"`
	PostTags     []PostTags `json:"post_tags,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

// Tag 资讯标签
type Tag struct {
	ID       int        `json:"id" gorm:"primaryKey"`
	Name     string     `json:"name" gorm:"not null"`
	PostTags []PostTags `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// PostTags 资讯文章与标签的关联
type PostTags struct {
	PostID int   `json:"post_id" gorm:"primaryKey;autoIncrement:false"`
	TagID  int   `json:"tag_id" gorm:"primaryKey;autoIncrement:false"`
	Post   *Post `json:"-"`
	Tag    *Tag  `json:"tag,omitempty"`
}

// TableName 关联表名
func (PostTags) TableName() string {
	return "post_tags"
}
