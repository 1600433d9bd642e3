package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/filmgrid/movies-api/internal/domain"
	"github.com/filmgrid/movies-api/internal/repository"
)

// CreateMovie constructs and persists a new movie. Referenced actor IDs that
// do not exist are silently dropped. Returns the new movie's ID.
func (s *Service) CreateMovie(ctx context.Context, cmd CreateMovieCommand) (uuid.UUID, error) {
	movie := domain.NewMovie(cmd.Title, cmd.Description, cmd.ReleaseDate)

	var actorIDs []uuid.UUID
	if len(cmd.Actors) > 0 {
		existing, err := s.repo.Actors.ExistingIDs(ctx, cmd.Actors)
		if err != nil {
			return uuid.Nil, fmt.Errorf("resolve actors: %w", err)
		}
		actorIDs = existing
	}

	if err := s.repo.Movies.Insert(ctx, movie, actorIDs); err != nil {
		return uuid.Nil, err
	}
	return movie.ID, nil
}

// GetMovieDetails fetches a movie with cast and ratings eagerly loaded and
// projects it. Returns (nil, nil) when the movie does not exist.
func (s *Service) GetMovieDetails(ctx context.Context, id uuid.UUID) (*MovieDetails, error) {
	movie, err := s.repo.Movies.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	details := NewMovieDetails(movie)
	return &details, nil
}

// ListMovies returns movie summaries, filtered by title substring when the
// query carries one. A blank or whitespace-only filter means no filter.
// Ratings come preloaded so the averages are computed without extra reads.
func (s *Service) ListMovies(ctx context.Context, query ListMoviesQuery) ([]MovieSummary, error) {
	movies, err := s.repo.Movies.List(ctx, normalizeFilter(query.Title))
	if err != nil {
		return nil, err
	}
	summaries := make([]MovieSummary, 0, len(movies))
	for _, movie := range movies {
		summaries = append(summaries, NewMovieSummary(movie))
	}
	return summaries, nil
}

// UpdateMovie overwrites the movie's fields and, when cmd.Actors is non-nil,
// replaces the cast with the resolved existing actors. Returns false when the
// movie does not exist.
func (s *Service) UpdateMovie(ctx context.Context, cmd UpdateMovieCommand) (bool, error) {
	actorIDs, err := s.resolveActorSet(ctx, cmd.Actors)
	if err != nil {
		return false, err
	}
	return s.repo.Movies.Update(ctx, cmd.ID, cmd.Title, cmd.Description, cmd.ReleaseDate, actorIDs)
}

// DeleteMovie removes the movie together with its owned ratings and
// association rows; actors are untouched. Returns false when the movie does
// not exist.
func (s *Service) DeleteMovie(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.repo.Movies.Delete(ctx, id)
}

// RateMovie appends one rating to the movie's collection. Returns false when
// the movie does not exist. The Rating constructor re-checks the range even
// though the request pipeline validated it first.
func (s *Service) RateMovie(ctx context.Context, cmd RateMovieCommand) (bool, error) {
	rating, err := domain.NewRating(cmd.Rate)
	if err != nil {
		return false, err
	}
	return s.repo.Movies.AppendRating(ctx, cmd.ID, rating)
}

// resolveActorSet keeps the nil/empty distinction: nil in, nil out (leave
// cast); non-nil in, the resolved existing subset out (replace).
func (s *Service) resolveActorSet(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	if ids == nil {
		return nil, nil
	}
	existing, err := s.repo.Actors.ExistingIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve actors: %w", err)
	}
	return existing, nil
}
