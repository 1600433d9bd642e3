package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRating_Bounds(t *testing.T) {
	for _, score := range []int{0, 1, 4, 5} {
		r, err := NewRating(score)
		require.NoError(t, err, "score %d", score)
		assert.Equal(t, score, r.Score())
	}

	for _, score := range []int{-1, 6, 100, -100} {
		_, err := NewRating(score)
		assert.Error(t, err, "score %d should be rejected", score)
	}
}

func mustRating(t *testing.T, score int) Rating {
	t.Helper()
	r, err := NewRating(score)
	require.NoError(t, err)
	return r
}

func TestMovie_AverageRating(t *testing.T) {
	movie := NewMovie("The Godfather", "An offer you can't refuse.", time.Date(1972, time.March, 24, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, 0.0, movie.AverageRating(), "empty rating collection averages to 0")

	movie.Ratings = append(movie.Ratings, mustRating(t, 5))
	assert.Equal(t, 5.0, movie.AverageRating())

	movie.Ratings = append(movie.Ratings, mustRating(t, 3))
	assert.Equal(t, 4.0, movie.AverageRating())

	movie.Ratings = append(movie.Ratings, mustRating(t, 0))
	assert.InDelta(t, 8.0/3.0, movie.AverageRating(), 1e-9)
}

func TestEntity_IdentityByID(t *testing.T) {
	a := NewActor("Al Pacino")
	b := NewActor("Al Pacino")

	assert.False(t, a.Is(b.Entity), "distinct entities with equal fields are not the same")

	renamed := a
	renamed.Name = "Alfredo Pacino"
	assert.True(t, a.Is(renamed.Entity), "identity follows the ID, not field values")
}

func TestNewEntity_AssignsIDBeforePersistence(t *testing.T) {
	e := NewEntity()
	assert.NotEqual(t, [16]byte{}, [16]byte(e.ID))
	assert.False(t, e.CreatedAt.IsZero())
	assert.Nil(t, e.UpdatedAt)
}
