package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filmgrid/movies-api/internal/domain"
)

func ratedMovie(t *testing.T, title string, scores ...int) domain.Movie {
	t.Helper()
	movie := domain.NewMovie(title, "synopsis", time.Date(1972, time.March, 24, 0, 0, 0, 0, time.UTC))
	for _, score := range scores {
		rating, err := domain.NewRating(score)
		require.NoError(t, err)
		movie.Ratings = append(movie.Ratings, rating)
	}
	return movie
}

func TestNewMovieSummary_ComputesAverage(t *testing.T) {
	summary := NewMovieSummary(ratedMovie(t, "The Godfather", 5, 3))
	assert.Equal(t, 4.0, summary.AverageRating)

	unrated := NewMovieSummary(ratedMovie(t, "The Godfather Part II"))
	assert.Equal(t, 0.0, unrated.AverageRating, "no ratings projects as 0, not NaN")
}

func TestNewActorDetails_ProjectsLoadedGraph(t *testing.T) {
	actor := domain.NewActor("Al Pacino")
	actor.Movies = []domain.Movie{ratedMovie(t, "The Godfather", 4)}

	details := NewActorDetails(actor)
	assert.Equal(t, actor.ID, details.ID)
	assert.Equal(t, "Al Pacino", details.Name)
	require.Len(t, details.Movies, 1)
	assert.Equal(t, 4.0, details.Movies[0].AverageRating)

	// Empty relations project as empty lists, not null.
	bare := NewActorDetails(domain.NewActor("Diane Keaton"))
	assert.NotNil(t, bare.Movies)
	assert.Empty(t, bare.Movies)
}

func TestNewMovieDetails_ProjectsCast(t *testing.T) {
	movie := ratedMovie(t, "Heat", 5)
	movie.Actors = []domain.Actor{domain.NewActor("Al Pacino"), domain.NewActor("Robert De Niro")}

	details := NewMovieDetails(movie)
	assert.Equal(t, movie.ID, details.ID)
	assert.Equal(t, 5.0, details.AverageRating)
	require.Len(t, details.Actors, 2)
	assert.Equal(t, "Al Pacino", details.Actors[0].Name)
}
