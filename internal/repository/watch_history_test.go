package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/filmhub/internal/model"
	"github.com/user/filmhub/internal/repository"
	"github.com/user/filmhub/internal/testutil"
)

func TestWatchHistoryLatestPerMovie(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewRepos(t)
	heat := seedMovie(t, repos, "Heat", false, time.Now())
	ronin := seedMovie(t, repos, "Ronin", false, time.Now())
	base := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	rows := []model.WatchHistory{
		{UserID: "u1", MovieID: heat.ID, CurrentWatchTime: 10, LogTime: base},
		{UserID: "u1", MovieID: heat.ID, CurrentWatchTime: 50, LogTime: base.Add(time.Hour)},
		{UserID: "u1", MovieID: ronin.ID, CurrentWatchTime: 5, LogTime: base.Add(30 * time.Minute)},
		{UserID: "u2", MovieID: ronin.ID, CurrentWatchTime: 99, LogTime: base.Add(2 * time.Hour)},
	}
	for i := range rows {
		_, err := repos.WatchHistory.Add(ctx, &rows[i])
		require.NoError(t, err)
	}

	latest, err := repos.WatchHistory.LatestPerMovie(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.Equal(t, heat.ID, latest[0].MovieID)
	assert.Equal(t, 50.0, latest[0].CurrentWatchTime)
	require.NotNil(t, latest[0].Movie)
	assert.Equal(t, "Heat", latest[0].Movie.Title)
	assert.Equal(t, ronin.ID, latest[1].MovieID)

	one, err := repos.WatchHistory.Latest(ctx, "u1", heat.ID, nil)
	require.NoError(t, err)
	require.NotNil(t, one)
	assert.Equal(t, 50.0, one.CurrentWatchTime)

	none, err := repos.WatchHistory.Latest(ctx, "nobody", heat.ID, nil)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestWatchHistoryReassignUser(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewRepos(t)
	heat := seedMovie(t, repos, "Heat", false, time.Now())

	for _, user := range []string{"guest-1", "guest-1", "other"} {
		_, err := repos.WatchHistory.Add(ctx, &model.WatchHistory{UserID: user, MovieID: heat.ID, LogTime: time.Now()})
		require.NoError(t, err)
	}

	n, err := repos.WatchHistory.ReassignUser(ctx, "guest-1", "user-1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	left, err := repos.WatchHistory.Count(ctx, repository.Where(repository.Eq("user_id", "guest-1")))
	require.NoError(t, err)
	assert.Zero(t, left)
}

func TestWatchHistoryAggregations(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewRepos(t)
	heat := seedMovie(t, repos, "Heat", false, time.Now())
	ronin := seedMovie(t, repos, "Ronin", false, time.Now())
	day1 := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	logs := []struct {
		movie int
		at    time.Time
	}{
		{heat.ID, day1}, {heat.ID, day1.Add(time.Hour)}, {heat.ID, day2},
		{ronin.ID, day2}, {ronin.ID, day2.AddDate(0, 1, 0)},
	}
	for _, l := range logs {
		_, err := repos.WatchHistory.Add(ctx, &model.WatchHistory{UserID: "u", MovieID: l.movie, LogTime: l.at})
		require.NoError(t, err)
	}

	from := day1.Add(-time.Hour)
	to := day2.Add(time.Hour)

	daily, err := repos.WatchHistory.ViewsByMovieAndDay(ctx, from, to)
	require.NoError(t, err)
	require.Len(t, daily, 3)
	assert.Equal(t, "2025-05-01", daily[0].Day)
	assert.Equal(t, heat.ID, daily[0].MovieID)
	assert.EqualValues(t, 2, daily[0].Views)
	assert.Equal(t, "Heat", daily[0].Title)

	top, err := repos.WatchHistory.TopMovies(ctx, from, to, 10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, heat.ID, top[0].MovieID)
	assert.EqualValues(t, 3, top[0].Views)
	assert.EqualValues(t, 1, top[1].Views)
}
