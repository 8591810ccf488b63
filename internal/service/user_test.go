package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/filmhub/internal/dto"
	"github.com/user/filmhub/internal/model"
)

func TestUserProfile(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	users := &fakeUsers{users: map[string]model.UserProfile{
		"auth0|1": {UserID: "auth0|1", Name: "Vincent", Picture: "https://cdn.test/v.png"},
	}}
	svc := NewUserService(f.repos, users)

	res, err := svc.GetProfile(ctx, "auth0|1")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, dto.UserResponse{UserID: "auth0|1", Name: "Vincent", Picture: "https://cdn.test/v.png"}, res.Data)

	res, err = svc.GetProfile(ctx, "auth0|missing")
	require.NoError(t, err)
	assert.Equal(t, KindNotFound, res.Kind)

	all, err := svc.GetAllUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, all.Data, 1)
}

func TestFollowMovie(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewUserService(f.repos, &fakeUsers{})

	created, err := f.movies.CreateMovie(ctx, movieRequest("Heat", f.genre(t, "Crime")))
	require.NoError(t, err)
	require.True(t, created.Success, created.Message)
	movieID := created.Data.ID

	res, err := svc.FollowMovie(ctx, "auth0|1", 999)
	require.NoError(t, err)
	assert.Equal(t, KindNotFound, res.Kind)

	first, err := svc.FollowMovie(ctx, "auth0|1", movieID)
	require.NoError(t, err)
	require.True(t, first.Success)
	again, err := svc.FollowMovie(ctx, "auth0|1", movieID)
	require.NoError(t, err)
	assert.Equal(t, first.Data.ID, again.Data.ID)

	following, err := svc.IsFollowing(ctx, "auth0|1", movieID)
	require.NoError(t, err)
	assert.True(t, following.Data)

	list, err := svc.GetFollowedMovies(ctx, "auth0|1", dto.PageQuery{PageNumber: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, list.Data.Items, 1)
	assert.EqualValues(t, 1, list.Data.TotalCount)
	require.NotNil(t, list.Data.Items[0].Movie)
	assert.Equal(t, "Heat", list.Data.Items[0].Movie.Title)

	removed, err := svc.UnfollowMovie(ctx, "auth0|1", movieID)
	require.NoError(t, err)
	assert.True(t, removed.Data)

	removed, err = svc.UnfollowMovie(ctx, "auth0|1", movieID)
	require.NoError(t, err)
	assert.Equal(t, KindNotFound, removed.Kind)
}
