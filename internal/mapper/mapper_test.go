package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/user/filmhub/internal/dto"
	"github.com/user/filmhub/internal/model"
)

func TestActorsRoundTrip(t *testing.T) {
	joined := JoinActors([]string{" Al Pacino ", "", "Robert De Niro"})
	assert.Equal(t, "Al Pacino, Robert De Niro", joined)
	assert.Equal(t, []string{"Al Pacino", "Robert De Niro"}, SplitActors(joined))
	assert.Empty(t, SplitActors(""))
}

func TestMergeMovieOnlyTouchesGivenFields(t *testing.T) {
	m := model.Movie{Title: "Heat", Director: "Mann", Price: 100, IsShow: true}
	title := "Heat (1995)"
	hidden := false

	MergeMovie(&m, dto.UpdateMovieRequest{Title: &title, IsShow: &hidden})

	assert.Equal(t, "Heat (1995)", m.Title)
	assert.Equal(t, "Mann", m.Director)
	assert.EqualValues(t, 100, m.Price)
	assert.False(t, m.IsShow)
}

func TestToMovieResponseGenres(t *testing.T) {
	m := model.Movie{
		ID:    1,
		Actor: "A, B",
		MovieGenres: []model.MovieGenre{
			{MovieID: 1, GenreID: 1, Genre: &model.Genre{ID: 1, Name: "Action"}},
			{MovieID: 1, GenreID: 2},
		},
	}

	res := ToMovieResponse(m)

	assert.Equal(t, []string{"A", "B"}, res.Actors)
	assert.Equal(t, []dto.MovieGenreResponse{{GenreID: 1, GenreName: "Action"}, {GenreID: 2}}, res.Genres)
}

func TestToCommentResponseWithoutUser(t *testing.T) {
	res := ToCommentResponse(model.Comment{ID: 3, Content: "hi"}, nil)
	assert.Nil(t, res.User)

	res = ToCommentResponse(model.Comment{ID: 3}, &model.UserProfile{UserID: "u", Name: "N"})
	if assert.NotNil(t, res.User) {
		assert.Equal(t, "N", res.User.Name)
	}
}
