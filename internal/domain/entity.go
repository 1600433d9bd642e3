package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entity carries the persistent identity shared by catalog aggregates. IDs are
// generated here, not by the database, so they exist before the first insert.
type Entity struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// NewEntity assigns a fresh ID and creation timestamp.
func NewEntity() Entity {
	return Entity{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
	}
}

// Is reports identity equality. Two entities are the same iff their IDs match,
// regardless of field values.
func (e Entity) Is(other Entity) bool {
	return e.ID == other.ID
}
