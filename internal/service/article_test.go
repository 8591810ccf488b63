package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/filmhub/internal/dto"
	"github.com/user/filmhub/internal/testutil"
)

func TestBlogPostLifecycle(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewRepos(t)
	store := &fakeStore{}
	tags := NewBlogTagService(repos)
	posts := NewBlogPostService(repos, store, testLogger())

	tag, err := tags.CreateBlogTag(ctx, dto.TagRequest{Name: "review"})
	require.NoError(t, err)

	bad, err := posts.CreateBlogPost(ctx, dto.CreateArticleRequest{
		Title: "Heat", Content: "...", TagIDs: []int{tag.Data.ID, 77}, Thumbnail: file("t.jpg"),
	})
	require.NoError(t, err)
	assert.Equal(t, KindInvalid, bad.Kind)
	assert.Contains(t, bad.Message, "77")
	assert.Empty(t, store.Uploaded())

	created, err := posts.CreateBlogPost(ctx, dto.CreateArticleRequest{
		Title: "Heat", Content: "A classic", IsShow: true, TagIDs: []int{tag.Data.ID}, Thumbnail: file("t.jpg"),
	})
	require.NoError(t, err)
	require.True(t, created.Success, created.Message)
	assert.Equal(t, []dto.ArticleTagResponse{{TagID: tag.Data.ID, TagName: "review"}}, created.Data.Tags)
	oldThumb := created.Data.ThumbnailURL

	content := "Still a classic"
	updated, err := posts.UpdateBlogPost(ctx, created.Data.ID, dto.UpdateArticleRequest{
		Content: &content, TagIDs: []int{}, Thumbnail: file("t2.jpg"),
	})
	require.NoError(t, err)
	require.True(t, updated.Success, updated.Message)
	assert.Equal(t, "Still a classic", updated.Data.Content)
	assert.Empty(t, updated.Data.Tags)
	assert.Equal(t, []string{oldThumb}, store.Deleted())

	byTag, err := posts.GetBlogPostsByTag(ctx, tag.Data.ID, dto.PageQuery{})
	require.NoError(t, err)
	assert.Empty(t, byTag.Data.Items)
	unknownTag, err := posts.GetBlogPostsByTag(ctx, 404, dto.PageQuery{})
	require.NoError(t, err)
	assert.Equal(t, KindNotFound, unknownTag.Kind)

	paged, err := posts.GetBlogPostsPaged(ctx, dto.PageQuery{})
	require.NoError(t, err)
	assert.Len(t, paged.Data.Items, 1)

	deleted, err := posts.DeleteBlogPost(ctx, created.Data.ID)
	require.NoError(t, err)
	require.True(t, deleted.Success)
	assert.Contains(t, store.Deleted(), updated.Data.ThumbnailURL)

	all, err := posts.GetAllBlogPosts(ctx)
	require.NoError(t, err)
	assert.Empty(t, all.Data)
}

func TestPostByTag(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewRepos(t)
	tags := NewTagService(repos)
	posts := NewPostService(repos, &fakeStore{}, testLogger())

	news, err := tags.CreateTag(ctx, dto.TagRequest{Name: "news"})
	require.NoError(t, err)
	for _, title := range []string{"One", "Two"} {
		req := dto.CreateArticleRequest{Title: title, Content: "x", IsShow: true, Thumbnail: file(title + ".jpg")}
		if title == "Two" {
			req.TagIDs = []int{news.Data.ID}
		}
		res, err := posts.CreatePost(ctx, req)
		require.NoError(t, err)
		require.True(t, res.Success, res.Message)
	}

	byTag, err := posts.GetPostsByTag(ctx, news.Data.ID, dto.PageQuery{})
	require.NoError(t, err)
	require.Len(t, byTag.Data.Items, 1)
	assert.Equal(t, "Two", byTag.Data.Items[0].Title)

	// 删除标签后文章不再关联
	_, err = tags.DeleteTag(ctx, news.Data.ID)
	require.NoError(t, err)
	got, err := posts.GetPostByID(ctx, byTag.Data.Items[0].ID)
	require.NoError(t, err)
	assert.Empty(t, got.Data.Tags)
}
