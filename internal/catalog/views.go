package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/filmgrid/movies-api/internal/domain"
)

// Response projections. Each is a pure function of an already-loaded entity
// graph; nothing here touches the store.

// ActorSummary is the list-view shape for actors.
type ActorSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ActorDetails adds the actor's movies, each with its computed average.
type ActorDetails struct {
	ID     uuid.UUID      `json:"id"`
	Name   string         `json:"name"`
	Movies []MovieSummary `json:"movies"`
}

// MovieSummary is the list-view shape for movies, derived average included.
type MovieSummary struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	ReleaseDate   time.Time `json:"releaseDate"`
	AverageRating float64   `json:"averageRating"`
}

// MovieDetails adds the cast to the summary fields.
type MovieDetails struct {
	ID            uuid.UUID      `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	ReleaseDate   time.Time      `json:"releaseDate"`
	AverageRating float64        `json:"averageRating"`
	Actors        []ActorSummary `json:"actors"`
}

// NewActorSummary projects an actor into its summary shape.
func NewActorSummary(actor domain.Actor) ActorSummary {
	return ActorSummary{ID: actor.ID, Name: actor.Name}
}

// NewActorDetails projects an actor with loaded movies into its detail shape.
func NewActorDetails(actor domain.Actor) ActorDetails {
	movies := make([]MovieSummary, 0, len(actor.Movies))
	for _, movie := range actor.Movies {
		movies = append(movies, NewMovieSummary(movie))
	}
	return ActorDetails{
		ID:     actor.ID,
		Name:   actor.Name,
		Movies: movies,
	}
}

// NewMovieSummary projects a movie with loaded ratings into its summary shape.
func NewMovieSummary(movie domain.Movie) MovieSummary {
	return MovieSummary{
		ID:            movie.ID,
		Title:         movie.Title,
		Description:   movie.Description,
		ReleaseDate:   movie.ReleaseDate,
		AverageRating: movie.AverageRating(),
	}
}

// NewMovieDetails projects a movie with loaded cast and ratings into its
// detail shape.
func NewMovieDetails(movie domain.Movie) MovieDetails {
	actors := make([]ActorSummary, 0, len(movie.Actors))
	for _, actor := range movie.Actors {
		actors = append(actors, NewActorSummary(actor))
	}
	return MovieDetails{
		ID:            movie.ID,
		Title:         movie.Title,
		Description:   movie.Description,
		ReleaseDate:   movie.ReleaseDate,
		AverageRating: movie.AverageRating(),
		Actors:        actors,
	}
}
