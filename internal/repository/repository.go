package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/filmgrid/movies-api/internal/store"
)

// ErrNotFound indicates the requested entity does not exist.
var ErrNotFound = errors.New("repository: not found")

// Repository aggregates the per-entity repositories.
type Repository struct {
	Actors *ActorsRepository
	Movies *MoviesRepository
}

// New constructs a Repository backed by the provided store.
func New(st *store.Store) *Repository {
	return NewWithPool(st.Pool())
}

// NewWithPool allows constructing repositories directly from a pgx pool.
func NewWithPool(pool *pgxpool.Pool) *Repository {
	return &Repository{
		Actors: &ActorsRepository{pool: pool},
		Movies: &MoviesRepository{pool: pool},
	}
}
