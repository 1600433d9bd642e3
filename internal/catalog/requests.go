package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// One request type per operation. The relation-ID lists distinguish omitted
// (nil: leave associations alone on update) from empty (non-nil zero length:
// clear them). encoding/json leaves a plain slice nil when the key is absent
// or null, so no pointer wrapping is needed.

// CreateActorCommand creates an actor, optionally attached to existing movies.
type CreateActorCommand struct {
	Name   string      `json:"name" validate:"notblank,max=100"`
	Movies []uuid.UUID `json:"movies"`
}

// UpdateActorCommand overwrites an actor's name and optionally replaces its
// movie set. The ID comes from the request path, not the body.
type UpdateActorCommand struct {
	ID     uuid.UUID   `json:"-"`
	Name   string      `json:"name" validate:"notblank,max=100"`
	Movies []uuid.UUID `json:"movies"`
}

// ListActorsQuery filters actors by a name substring; blank means all.
type ListActorsQuery struct {
	Name string
}

// CreateMovieCommand creates a movie, optionally attached to existing actors.
type CreateMovieCommand struct {
	Title       string      `json:"title" validate:"notblank,max=500"`
	Description string      `json:"description" validate:"notblank,max=2000"`
	ReleaseDate time.Time   `json:"releaseDate"`
	Actors      []uuid.UUID `json:"actors"`
}

// UpdateMovieCommand overwrites a movie's fields and optionally replaces its
// cast.
type UpdateMovieCommand struct {
	ID          uuid.UUID   `json:"-"`
	Title       string      `json:"title" validate:"notblank,max=500"`
	Description string      `json:"description" validate:"notblank,max=2000"`
	ReleaseDate time.Time   `json:"releaseDate"`
	Actors      []uuid.UUID `json:"actors"`
}

// ListMoviesQuery filters movies by a title substring; blank means all.
type ListMoviesQuery struct {
	Title string
}

// RateMovieCommand appends one rating to a movie.
type RateMovieCommand struct {
	ID   uuid.UUID `json:"-"`
	Rate int       `json:"rate" validate:"gte=0,lte=5"`
}

// normalizeFilter treats whitespace-only filters as absent. A filter with
// surrounding whitespace around visible text is kept verbatim.
func normalizeFilter(filter string) string {
	if strings.TrimSpace(filter) == "" {
		return ""
	}
	return filter
}
