package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/filmhub/internal/dto"
	"github.com/user/filmhub/internal/testutil"
)

func TestGenreLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	genres := NewGenreService(f.repos)

	created, err := genres.CreateGenre(ctx, dto.GenreRequest{Name: " Action ", IsShow: true})
	require.NoError(t, err)
	require.True(t, created.Success)
	assert.Equal(t, "Action", created.Data.Name)

	hidden, err := genres.CreateGenre(ctx, dto.GenreRequest{Name: "Hidden"})
	require.NoError(t, err)

	invalid, err := genres.CreateGenre(ctx, dto.GenreRequest{})
	require.NoError(t, err)
	assert.Equal(t, KindInvalid, invalid.Kind)

	visible, err := genres.GetGenresPaged(ctx, dto.PageQuery{})
	require.NoError(t, err)
	assert.Len(t, visible.Data.Items, 1)
	everything, err := genres.GetGenresPaged(ctx, dto.PageQuery{IncludeHidden: true})
	require.NoError(t, err)
	assert.Len(t, everything.Data.Items, 2)

	name := "Crime"
	updated, err := genres.UpdateGenre(ctx, created.Data.ID, dto.UpdateGenreRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Crime", updated.Data.Name)
	assert.True(t, updated.Data.IsShow)

	// 删除类型时同时移除影片关联
	movie, err := f.movies.CreateMovie(ctx, movieRequest("Heat", created.Data.ID, hidden.Data.ID))
	require.NoError(t, err)
	deleted, err := genres.DeleteGenre(ctx, created.Data.ID)
	require.NoError(t, err)
	require.True(t, deleted.Success)

	got, err := f.movies.GetMovieByID(ctx, movie.Data.ID)
	require.NoError(t, err)
	assert.Equal(t, []dto.MovieGenreResponse{{GenreID: hidden.Data.ID, GenreName: "Hidden"}}, got.Data.Genres)

	missing, err := genres.GetGenreByID(ctx, created.Data.ID)
	require.NoError(t, err)
	assert.Equal(t, KindNotFound, missing.Kind)
}

func TestTagServices(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewRepos(t)
	blogTags := NewBlogTagService(repos)
	tags := NewTagService(repos)

	a, err := blogTags.CreateBlogTag(ctx, dto.TagRequest{Name: "review"})
	require.NoError(t, err)
	_, err = tags.CreateTag(ctx, dto.TagRequest{Name: "news"})
	require.NoError(t, err)

	renamed, err := blogTags.UpdateBlogTag(ctx, a.Data.ID, dto.TagRequest{Name: "reviews"})
	require.NoError(t, err)
	assert.Equal(t, "reviews", renamed.Data.Name)

	all, err := tags.GetAllTags(ctx)
	require.NoError(t, err)
	require.Len(t, all.Data, 1)
	assert.Equal(t, "news", all.Data[0].Name)

	missing, err := tags.UpdateTag(ctx, 999, dto.TagRequest{Name: "x"})
	require.NoError(t, err)
	assert.Equal(t, KindNotFound, missing.Kind)
	assert.Contains(t, missing.Message, "999")

	deleted, err := blogTags.DeleteBlogTag(ctx, a.Data.ID)
	require.NoError(t, err)
	assert.True(t, deleted.Success)
	paged, err := blogTags.GetBlogTagsPaged(ctx, dto.PageQuery{})
	require.NoError(t, err)
	assert.Empty(t, paged.Data.Items)
}
