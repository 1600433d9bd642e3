package domain

import "time"

// Movie is the catalog's central aggregate. Actors is the inverse side of
// Actor.Movies; Ratings is an owned, append-only collection in insertion
// order. Both are populated only on eager-loaded reads.
type Movie struct {
	Entity
	Title       string
	Description string
	ReleaseDate time.Time
	Actors      []Actor
	Ratings     []Rating
}

// NewMovie constructs an unsaved movie with a client-side ID.
func NewMovie(title, description string, releaseDate time.Time) Movie {
	return Movie{
		Entity:      NewEntity(),
		Title:       title,
		Description: description,
		ReleaseDate: releaseDate,
	}
}

// AverageRating returns the arithmetic mean of all rating scores. A movie
// without ratings averages to exactly 0.
func (m Movie) AverageRating() float64 {
	if len(m.Ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range m.Ratings {
		sum += r.Score()
	}
	return float64(sum) / float64(len(m.Ratings))
}
