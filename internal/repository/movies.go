package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/filmgrid/movies-api/internal/domain"
)

// MoviesRepository provides persistence for movies, their cast links, and the
// owned rating collection.
type MoviesRepository struct {
	pool *pgxpool.Pool
}

const movieColumns = `id, title, description, release_date, created_at, updated_at`

const prefixedMovieColumns = `m.id, m.title, m.description, m.release_date, m.created_at, m.updated_at`

// Insert stores a new movie and links its cast in one transaction. actorIDs
// are expected to reference existing actors; stray IDs simply produce no link
// rows.
func (r *MoviesRepository) Insert(ctx context.Context, movie domain.Movie, actorIDs []uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx,
		`INSERT INTO movies (id, title, description, release_date, created_at)
         VALUES ($1, $2, $3, $4, $5)`,
		movie.ID, movie.Title, movie.Description, movie.ReleaseDate, movie.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert movie: %w", err)
	}

	if len(actorIDs) > 0 {
		_, err = tx.Exec(ctx,
			`INSERT INTO movie_actors (movie_id, actor_id)
             SELECT $1, a.id FROM actors a WHERE a.id = ANY($2)`,
			movie.ID, actorIDs)
		if err != nil {
			return fmt.Errorf("link actors: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// GetByID fetches a movie with its cast and rating scores eagerly loaded.
func (r *MoviesRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Movie, error) {
	row := r.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM movies WHERE id = $1`, movieColumns), id)
	movie, err := scanMovie(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.Movie{}, ErrNotFound
		}
		return domain.Movie{}, err
	}

	rows, err := r.pool.Query(ctx, `
        SELECT a.id, a.name, a.created_at, a.updated_at FROM actors a
        JOIN movie_actors ma ON ma.actor_id = a.id
        WHERE ma.movie_id = $1`, id)
	if err != nil {
		return domain.Movie{}, fmt.Errorf("load movie actors: %w", err)
	}
	defer rows.Close()
	actors := make([]domain.Actor, 0)
	for rows.Next() {
		actor, err := scanActor(rows)
		if err != nil {
			return domain.Movie{}, err
		}
		actors = append(actors, actor)
	}
	if err := rows.Err(); err != nil {
		return domain.Movie{}, err
	}
	movie.Actors = actors

	movies := []domain.Movie{movie}
	if err := attachRatings(ctx, r.pool, movies); err != nil {
		return domain.Movie{}, err
	}
	return movies[0], nil
}

// List returns movies, optionally narrowed to titles containing the filter,
// with rating scores loaded so summaries can carry the average. Cast is not
// loaded.
func (r *MoviesRepository) List(ctx context.Context, titleFilter string) ([]domain.Movie, error) {
	query := fmt.Sprintf(`SELECT %s FROM movies`, movieColumns)
	args := []any{}
	if titleFilter != "" {
		query += ` WHERE title LIKE '%' || $1 || '%'`
		args = append(args, titleFilter)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	movies, err := collectMovies(rows)
	if err != nil {
		return nil, err
	}
	if err := attachRatings(ctx, r.pool, movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// Update overwrites the movie's fields and, when actorIDs is non-nil,
// replaces the whole cast set (empty non-nil clears it, nil leaves it).
// Returns false when the movie does not exist.
func (r *MoviesRepository) Update(ctx context.Context, id uuid.UUID, title, description string, releaseDate time.Time, actorIDs []uuid.UUID) (bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx,
		`UPDATE movies
         SET title = $2, description = $3, release_date = $4, updated_at = now()
         WHERE id = $1`,
		id, title, description, releaseDate)
	if err != nil {
		return false, fmt.Errorf("update movie: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	if actorIDs != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM movie_actors WHERE movie_id = $1`, id); err != nil {
			return false, fmt.Errorf("clear actor links: %w", err)
		}
		if len(actorIDs) > 0 {
			_, err = tx.Exec(ctx,
				`INSERT INTO movie_actors (movie_id, actor_id)
                 SELECT $1, a.id FROM actors a WHERE a.id = ANY($2)`,
				id, actorIDs)
			if err != nil {
				return false, fmt.Errorf("link actors: %w", err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes the movie together with its owned ratings and association
// rows (both cascade). Actors stay. Returns false when the movie does not
// exist.
func (r *MoviesRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// AppendRating adds one rating to the movie's owned collection. Ratings are
// never edited or removed. The insert is conditional on the movie existing,
// so not-found comes back as false rather than a constraint error.
func (r *MoviesRepository) AppendRating(ctx context.Context, movieID uuid.UUID, rating domain.Rating) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`INSERT INTO movie_ratings (movie_id, score)
         SELECT id, $2 FROM movies WHERE id = $1`,
		movieID, rating.Score())
	if err != nil {
		return false, fmt.Errorf("append rating: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ExistingIDs filters the given IDs down to those present in the movies
// table. Never returns nil for a non-nil input.
func (r *MoviesRepository) ExistingIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	existing := make([]uuid.UUID, 0, len(ids))
	if len(ids) == 0 {
		return existing, nil
	}

	rows, err := r.pool.Query(ctx, `SELECT id FROM movies WHERE id = ANY($1)`, ids)
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

func scanMovie(row pgx.Row) (domain.Movie, error) {
	var movie domain.Movie
	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.ReleaseDate,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)
	if err != nil {
		return domain.Movie{}, err
	}
	return movie, nil
}

func collectMovies(rows pgx.Rows) ([]domain.Movie, error) {
	defer rows.Close()
	movies := make([]domain.Movie, 0)
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		movies = append(movies, movie)
	}
	return movies, rows.Err()
}

// attachRatings loads the rating scores for every movie in the slice in one
// query, in insertion order, so projections never trigger extra reads.
func attachRatings(ctx context.Context, pool *pgxpool.Pool, movies []domain.Movie) error {
	if len(movies) == 0 {
		return nil
	}

	index := make(map[uuid.UUID]int, len(movies))
	ids := make([]uuid.UUID, len(movies))
	for i := range movies {
		ids[i] = movies[i].ID
		index[movies[i].ID] = i
	}

	rows, err := pool.Query(ctx,
		`SELECT movie_id, score FROM movie_ratings WHERE movie_id = ANY($1) ORDER BY seq`, ids)
	if err != nil {
		return fmt.Errorf("load ratings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var movieID uuid.UUID
		var score int
		if err := rows.Scan(&movieID, &score); err != nil {
			return err
		}
		rating, err := domain.NewRating(score)
		if err != nil {
			return fmt.Errorf("stored rating for movie %s: %w", movieID, err)
		}
		i, ok := index[movieID]
		if !ok {
			continue
		}
		movies[i].Ratings = append(movies[i].Ratings, rating)
	}
	return rows.Err()
}
