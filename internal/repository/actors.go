package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/filmgrid/movies-api/internal/domain"
)

// ActorsRepository provides persistence for actors and their side of the
// actor/movie association.
type ActorsRepository struct {
	pool *pgxpool.Pool
}

const actorColumns = `id, name, created_at, updated_at`

// Insert stores a new actor and links it to the given movies in one
// transaction. movieIDs are expected to reference existing movies; the link
// statement re-checks existence so stray IDs produce no rows rather than a
// constraint error.
func (r *ActorsRepository) Insert(ctx context.Context, actor domain.Actor, movieIDs []uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx,
		`INSERT INTO actors (id, name, created_at) VALUES ($1, $2, $3)`,
		actor.ID, actor.Name, actor.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert actor: %w", err)
	}

	if len(movieIDs) > 0 {
		_, err = tx.Exec(ctx,
			`INSERT INTO movie_actors (movie_id, actor_id)
             SELECT m.id, $1 FROM movies m WHERE m.id = ANY($2)`,
			actor.ID, movieIDs)
		if err != nil {
			return fmt.Errorf("link movies: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// GetByID fetches an actor with its movies (and their rating scores) eagerly
// loaded, so callers can project details without further reads.
func (r *ActorsRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Actor, error) {
	row := r.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM actors WHERE id = $1`, actorColumns), id)
	actor, err := scanActor(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.Actor{}, ErrNotFound
		}
		return domain.Actor{}, err
	}

	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
        SELECT %s FROM movies m
        JOIN movie_actors ma ON ma.movie_id = m.id
        WHERE ma.actor_id = $1`, prefixedMovieColumns), id)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("load actor movies: %w", err)
	}
	movies, err := collectMovies(rows)
	if err != nil {
		return domain.Actor{}, err
	}
	if err := attachRatings(ctx, r.pool, movies); err != nil {
		return domain.Actor{}, err
	}

	actor.Movies = movies
	return actor, nil
}

// List returns actors, optionally narrowed to names containing the filter.
// Case behavior follows the store's LIKE semantics. Relations are not loaded.
func (r *ActorsRepository) List(ctx context.Context, nameFilter string) ([]domain.Actor, error) {
	query := fmt.Sprintf(`SELECT %s FROM actors`, actorColumns)
	args := []any{}
	if nameFilter != "" {
		query += ` WHERE name LIKE '%' || $1 || '%'`
		args = append(args, nameFilter)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	actors := make([]domain.Actor, 0)
	for rows.Next() {
		actor, err := scanActor(rows)
		if err != nil {
			return nil, err
		}
		actors = append(actors, actor)
	}
	return actors, rows.Err()
}

// Update overwrites the actor's name and, when movieIDs is non-nil, replaces
// the whole association set (an empty non-nil slice clears it). A nil
// movieIDs leaves associations untouched. Returns false when the actor does
// not exist.
func (r *ActorsRepository) Update(ctx context.Context, id uuid.UUID, name string, movieIDs []uuid.UUID) (bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx,
		`UPDATE actors SET name = $2, updated_at = now() WHERE id = $1`, id, name)
	if err != nil {
		return false, fmt.Errorf("update actor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	if movieIDs != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM movie_actors WHERE actor_id = $1`, id); err != nil {
			return false, fmt.Errorf("clear movie links: %w", err)
		}
		if len(movieIDs) > 0 {
			_, err = tx.Exec(ctx,
				`INSERT INTO movie_actors (movie_id, actor_id)
                 SELECT m.id, $1 FROM movies m WHERE m.id = ANY($2)`,
				id, movieIDs)
			if err != nil {
				return false, fmt.Errorf("link movies: %w", err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes the actor; association rows go with it via cascade, the
// movies themselves stay. Returns false when the actor does not exist.
func (r *ActorsRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM actors WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ExistingIDs filters the given IDs down to those present in the actors
// table. Never returns nil for a non-nil input.
func (r *ActorsRepository) ExistingIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	existing := make([]uuid.UUID, 0, len(ids))
	if len(ids) == 0 {
		return existing, nil
	}

	rows, err := r.pool.Query(ctx, `SELECT id FROM actors WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		existing = append(existing, id)
	}
	return existing, rows.Err()
}

func scanActor(row pgx.Row) (domain.Actor, error) {
	var actor domain.Actor
	if err := row.Scan(&actor.ID, &actor.Name, &actor.CreatedAt, &actor.UpdatedAt); err != nil {
		return domain.Actor{}, err
	}
	return actor, nil
}
