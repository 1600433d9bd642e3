package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/filmgrid/movies-api/internal/domain"
	"github.com/filmgrid/movies-api/internal/repository"
)

// Service holds one handler per catalog operation. Handlers receive already
// validated requests; "not found" is a plain return value (nil view or false),
// never an error. Handlers do not call each other — composition such as
// "create then fetch details" happens at the HTTP boundary.
type Service struct {
	repo *repository.Repository
}

// NewService constructs the handler set over the given repositories.
func NewService(repo *repository.Repository) *Service {
	return &Service{repo: repo}
}

// CreateActor constructs and persists a new actor. Referenced movie IDs that
// do not exist are silently dropped. Returns the new actor's ID.
func (s *Service) CreateActor(ctx context.Context, cmd CreateActorCommand) (uuid.UUID, error) {
	actor := domain.NewActor(cmd.Name)

	var movieIDs []uuid.UUID
	if len(cmd.Movies) > 0 {
		existing, err := s.repo.Movies.ExistingIDs(ctx, cmd.Movies)
		if err != nil {
			return uuid.Nil, fmt.Errorf("resolve movies: %w", err)
		}
		movieIDs = existing
	}

	if err := s.repo.Actors.Insert(ctx, actor, movieIDs); err != nil {
		return uuid.Nil, err
	}
	return actor.ID, nil
}

// GetActorDetails fetches an actor with its movies eagerly loaded and
// projects it. Returns (nil, nil) when the actor does not exist.
func (s *Service) GetActorDetails(ctx context.Context, id uuid.UUID) (*ActorDetails, error) {
	actor, err := s.repo.Actors.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	details := NewActorDetails(actor)
	return &details, nil
}

// ListActors returns actor summaries, filtered by name substring when the
// query carries one. A blank or whitespace-only filter means no filter.
func (s *Service) ListActors(ctx context.Context, query ListActorsQuery) ([]ActorSummary, error) {
	actors, err := s.repo.Actors.List(ctx, normalizeFilter(query.Name))
	if err != nil {
		return nil, err
	}
	summaries := make([]ActorSummary, 0, len(actors))
	for _, actor := range actors {
		summaries = append(summaries, NewActorSummary(actor))
	}
	return summaries, nil
}

// UpdateActor overwrites the actor's name and, when cmd.Movies is non-nil,
// replaces the association set with the resolved existing movies. Returns
// false when the actor does not exist.
func (s *Service) UpdateActor(ctx context.Context, cmd UpdateActorCommand) (bool, error) {
	movieIDs, err := s.resolveMovieSet(ctx, cmd.Movies)
	if err != nil {
		return false, err
	}
	return s.repo.Actors.Update(ctx, cmd.ID, cmd.Name, movieIDs)
}

// DeleteActor removes the actor and its association rows; associated movies
// are untouched. Returns false when the actor does not exist.
func (s *Service) DeleteActor(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.repo.Actors.Delete(ctx, id)
}

// resolveMovieSet keeps the nil/empty distinction: nil in, nil out (leave
// associations); non-nil in, the resolved existing subset out (replace).
func (s *Service) resolveMovieSet(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	if ids == nil {
		return nil, nil
	}
	existing, err := s.repo.Movies.ExistingIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve movies: %w", err)
	}
	return existing, nil
}
