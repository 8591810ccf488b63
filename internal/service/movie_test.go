package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/filmhub/internal/dto"
	"github.com/user/filmhub/internal/model"
	"github.com/user/filmhub/internal/repository"
)

func TestCreateMovieWithGenre(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	action := f.genre(t, "Action")

	res, err := f.movies.CreateMovie(ctx, movieRequest("Heat", action))
	require.NoError(t, err)
	require.True(t, res.Success, res.Message)

	assert.Equal(t, []dto.MovieGenreResponse{{GenreID: action, GenreName: "Action"}}, res.Data.Genres)
	assert.Equal(t, []string{"Al Pacino", "Robert De Niro"}, res.Data.Actors)
	assert.NotEmpty(t, res.Data.PosterURL)
	assert.NotEmpty(t, res.Data.BannerURL)
	assert.Empty(t, res.Data.VideoURL)
}

func TestCreateMovieRejectsUnknownGenres(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	action := f.genre(t, "Action")

	res, err := f.movies.CreateMovie(ctx, movieRequest("Heat", action, 999, 1000, 999))
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, KindInvalid, res.Kind)
	assert.Contains(t, res.Message, "999")
	assert.Contains(t, res.Message, "1000")

	all, err := f.repos.Movie.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.Empty(t, f.store.Uploaded())
}

func TestCreateMovieRequiresFiles(t *testing.T) {
	f := newFixture(t)
	req := movieRequest("Heat")
	req.Banner = nil

	res, err := f.movies.CreateMovie(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, KindInvalid, res.Kind)
	assert.Contains(t, res.Message, "Banner")
}

func TestCreateMovieSeriesFlags(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	completed := true

	req := movieRequest("Heat")
	req.IsSeriesCompleted = &completed
	req.Video = file("movie.mp4")
	res, err := f.movies.CreateMovie(ctx, req)
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Nil(t, res.Data.IsSeriesCompleted)
	assert.NotEmpty(t, res.Data.VideoURL)

	series := movieRequest("The Wire")
	series.IsSeries = true
	series.IsSeriesCompleted = &completed
	series.Video = file("ignored.mp4")
	res, err = f.movies.CreateMovie(ctx, series)
	require.NoError(t, err)
	require.True(t, res.Success)
	require.NotNil(t, res.Data.IsSeriesCompleted)
	assert.True(t, *res.Data.IsSeriesCompleted)
	assert.Empty(t, res.Data.VideoURL)
}

func TestCreateMovieUploadFailureCleansUp(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.store.failOn = "banner.jpg"

	res, err := f.movies.CreateMovie(ctx, movieRequest("Heat"))
	require.ErrorIs(t, err, errUpload)
	assert.Nil(t, res)

	all, err := f.repos.Movie.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.ElementsMatch(t, f.store.Uploaded(), f.store.Deleted())
}

func TestUpdateMovie(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	action := f.genre(t, "Action")
	drama := f.genre(t, "Drama")
	created, err := f.movies.CreateMovie(ctx, movieRequest("Heat", action))
	require.NoError(t, err)
	oldPoster := created.Data.PosterURL

	title := "Heat (1995)"
	res, err := f.movies.UpdateMovie(ctx, created.Data.ID, dto.UpdateMovieRequest{
		Title:    &title,
		GenreIDs: []int{drama},
		Poster:   file("poster2.jpg"),
	})
	require.NoError(t, err)
	require.True(t, res.Success, res.Message)

	assert.Equal(t, "Heat (1995)", res.Data.Title)
	assert.Equal(t, created.Data.BannerURL, res.Data.BannerURL)
	assert.NotEqual(t, oldPoster, res.Data.PosterURL)
	assert.Equal(t, []dto.MovieGenreResponse{{GenreID: drama, GenreName: "Drama"}}, res.Data.Genres)
	assert.Equal(t, []string{oldPoster}, f.store.Deleted())

	res, err = f.movies.UpdateMovie(ctx, created.Data.ID, dto.UpdateMovieRequest{GenreIDs: []int{42}})
	require.NoError(t, err)
	assert.Equal(t, KindInvalid, res.Kind)
	assert.Contains(t, res.Message, "42")

	res, err = f.movies.UpdateMovie(ctx, 9999, dto.UpdateMovieRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, KindNotFound, res.Kind)
}

func TestCreateMovieRejectsCommaInActorName(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	req := movieRequest("Iron Man")
	req.Actors = []string{"Robert Downey, Jr.", "Gwyneth Paltrow"}
	res, err := f.movies.CreateMovie(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, KindInvalid, res.Kind)
	assert.Contains(t, res.Message, ",")
	assert.Empty(t, f.store.Uploaded())
}

func TestUpdateMovieRejectsBlankRequiredFields(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	created, err := f.movies.CreateMovie(ctx, movieRequest("Heat", f.genre(t, "Crime")))
	require.NoError(t, err)
	require.True(t, created.Success, created.Message)

	empty, blank := "", "   "
	for _, req := range []dto.UpdateMovieRequest{
		{Title: &empty},
		{Title: &blank},
		{Director: &empty},
		{Actors: []string{}},
		{Actors: []string{" ", ""}},
	} {
		res, err := f.movies.UpdateMovie(ctx, created.Data.ID, req)
		require.NoError(t, err)
		assert.Equal(t, KindInvalid, res.Kind, res.Message)
	}

	stored, err := f.repos.Movie.GetByID(ctx, created.Data.ID)
	require.NoError(t, err)
	assert.Equal(t, "Heat", stored.Title)
	assert.Equal(t, "Michael Mann", stored.Director)
	assert.Empty(t, f.store.Deleted())
}

func TestDeleteMovieCascades(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	action := f.genre(t, "Action")

	req := movieRequest("The Wire", action)
	req.IsSeries = true
	created, err := f.movies.CreateMovie(ctx, req)
	require.NoError(t, err)
	movieID := created.Data.ID

	ep, err := f.episodes.CreateEpisode(ctx, dto.CreateEpisodeRequest{MovieID: movieID, Title: "Pilot", Video: file("e1.mp4")})
	require.NoError(t, err)
	require.True(t, ep.Success, ep.Message)
	_, err = f.history.RecordProgress(ctx, "user-1", dto.RecordWatchRequest{MovieID: movieID, CurrentWatchTime: 12})
	require.NoError(t, err)

	res, err := f.movies.DeleteMovie(ctx, movieID)
	require.NoError(t, err)
	require.True(t, res.Success)

	byMovie := repository.Where(repository.Eq("movie_id", movieID))
	episodes, err := f.repos.Episode.Count(ctx, byMovie)
	require.NoError(t, err)
	assert.Zero(t, episodes)
	links, err := repository.NewRepository[model.MovieGenre](f.repos.DB).Count(ctx, byMovie)
	require.NoError(t, err)
	assert.Zero(t, links)
	histories, err := f.repos.WatchHistory.Count(ctx, byMovie)
	require.NoError(t, err)
	assert.Zero(t, histories)
	movies, err := f.repos.Movie.Count(ctx, repository.Query{})
	require.NoError(t, err)
	assert.Zero(t, movies)
	assert.ElementsMatch(t, f.store.Uploaded(), f.store.Deleted())

	res, err = f.movies.DeleteMovie(ctx, movieID)
	require.NoError(t, err)
	assert.Equal(t, KindNotFound, res.Kind)
}

func TestGetMovieByIDIsStable(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	created, err := f.movies.CreateMovie(ctx, movieRequest("Heat", f.genre(t, "Action")))
	require.NoError(t, err)

	first, err := f.movies.GetMovieByID(ctx, created.Data.ID)
	require.NoError(t, err)
	second, err := f.movies.GetMovieByID(ctx, created.Data.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	missing, err := f.movies.GetMovieByID(ctx, 9999)
	require.NoError(t, err)
	assert.Equal(t, KindNotFound, missing.Kind)
}

func TestMovieListings(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	action := f.genre(t, "Action")
	drama := f.genre(t, "Drama")

	create := func(title string, series bool, released time.Time, genres ...int) int {
		req := movieRequest(title, genres...)
		req.IsSeries = series
		req.ReleaseDate = released
		res, err := f.movies.CreateMovie(ctx, req)
		require.NoError(t, err)
		require.True(t, res.Success, res.Message)
		return res.Data.ID
	}
	heat := create("Heat", false, time.Date(1995, 12, 15, 0, 0, 0, 0, time.UTC), action)
	create("Collateral", false, time.Date(2004, 8, 6, 0, 0, 0, 0, time.UTC), action, drama)
	create("The Wire", true, time.Date(2002, 6, 2, 0, 0, 0, 0, time.UTC), drama)

	page := dto.PageQuery{PageNumber: 1, PageSize: 2}
	paged, err := f.movies.GetMoviesPaged(ctx, page)
	require.NoError(t, err)
	assert.Len(t, paged.Data.Items, 2)
	assert.EqualValues(t, 3, paged.Data.TotalCount)
	assert.Equal(t, 2, paged.Data.TotalPages)

	beyond, err := f.movies.GetMoviesPaged(ctx, dto.PageQuery{PageNumber: 5, PageSize: 2})
	require.NoError(t, err)
	require.True(t, beyond.Success)
	assert.Empty(t, beyond.Data.Items)

	same, err := f.movies.GetSameGenreMovies(ctx, heat, dto.PageQuery{})
	require.NoError(t, err)
	require.Len(t, same.Data.Items, 1)
	assert.Equal(t, "Collateral", same.Data.Items[0].Title)

	recent, err := f.movies.GetRecentlyAdded(ctx, dto.PageQuery{})
	require.NoError(t, err)
	require.Len(t, recent.Data.Items, 3)
	assert.Equal(t, "Collateral", recent.Data.Items[0].Title)

	shows, err := f.movies.GetTVShows(ctx, dto.PageQuery{})
	require.NoError(t, err)
	require.Len(t, shows.Data.Items, 1)
	assert.Equal(t, "The Wire", shows.Data.Items[0].Title)

	byGenre, err := f.movies.GetMoviesByGenre(ctx, drama, dto.PageQuery{})
	require.NoError(t, err)
	assert.Len(t, byGenre.Data.Items, 2)

	unknown, err := f.movies.GetMoviesByGenre(ctx, 999, dto.PageQuery{})
	require.NoError(t, err)
	assert.Equal(t, KindNotFound, unknown.Kind)

	found, err := f.movies.SearchMovies(ctx, "coll", dto.PageQuery{})
	require.NoError(t, err)
	require.Len(t, found.Data.Items, 1)

	viewed, err := f.movies.IncreaseViewCount(ctx, heat)
	require.NoError(t, err)
	require.True(t, viewed.Success)
	got, err := f.movies.GetMovieByID(ctx, heat)
	require.NoError(t, err)
	assert.EqualValues(t, 1, got.Data.ViewCount)
}
