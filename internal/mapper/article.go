package mapper

import (
	"strings"

	"github.com/user/filmhub/internal/dto"
	"github.com/user/filmhub/internal/model"
)

// ToBlogPost 创建请求 -> 博客实体
func ToBlogPost(req dto.CreateArticleRequest) model.BlogPost {
	return model.BlogPost{
		Title:   strings.TrimSpace(req.Title),
		Content: req.Content,
		IsShow:  req.IsShow,
	}
}

// MergeBlogPost 合并博客更新
func MergeBlogPost(p *model.BlogPost, req dto.UpdateArticleRequest) {
	mergeArticle(&p.Title, &p.Content, &p.IsShow, req)
}

// ToBlogPostResponse 博客响应
func ToBlogPostResponse(p model.BlogPost) dto.ArticleResponse {
	tags := make([]dto.ArticleTagResponse, 0, len(p.BlogPostTags))
	for _, pt := range p.BlogPostTags {
		t := dto.ArticleTagResponse{TagID: pt.BlogTagID}
		if pt.BlogTag != nil {
			t.TagName = pt.BlogTag.Name
		}
		tags = append(tags, t)
	}
	return dto.ArticleResponse{
		ID:           p.ID,
		Title:        p.Title,
		Content:      p.Content,
		ThumbnailURL: p.ThumbnailURL,
		IsShow:       p.IsShow,
		CreatedAt:    p.CreatedAt,
		Tags:         tags,
	}
}

// ToPost 创建请求 -> 资讯实体
func ToPost(req dto.CreateArticleRequest) model.Post {
	return model.Post{
		Title:   strings.TrimSpace(req.Title),
		Content: req.Content,
		IsShow:  req.IsShow,
	}
}

// MergePost 合并资讯更新
func MergePost(p *model.Post, req dto.UpdateArticleRequest) {
	mergeArticle(&p.Title, &p.Content, &p.IsShow, req)
}

// ToPostResponse 资讯响应
func ToPostResponse(p model.Post) dto.ArticleResponse {
	tags := make([]dto.ArticleTagResponse, 0, len(p.PostTags))
	for _, pt := range p.PostTags {
		t := dto.ArticleTagResponse{TagID: pt.TagID}
		if pt.Tag != nil {
			t.TagName = pt.Tag.Name
		}
		tags = append(tags, t)
	}
	return dto.ArticleResponse{
		ID:           p.ID,
		Title:        p.Title,
		Content:      p.Content,
		ThumbnailURL: p.ThumbnailURL,
		IsShow:       p.IsShow,
		CreatedAt:    p.CreatedAt,
		Tags:         tags,
	}
}

func mergeArticle(title, content *string, isShow *bool, req dto.UpdateArticleRequest) {
	if req.Title != nil {
		*title = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil {
		*content = *req.Content
	}
	if req.IsShow != nil {
		*isShow = *req.IsShow
	}
}

// ToBlogTagResponse 博客标签响应
func ToBlogTagResponse(t model.BlogTag) dto.TagResponse {
	return dto.TagResponse{ID: t.ID, Name: t.Name}
}

// ToTagResponse 资讯标签响应
func ToTagResponse(t model.Tag) dto.TagResponse {
	return dto.TagResponse{ID: t.ID, Name: t.Name}
}
