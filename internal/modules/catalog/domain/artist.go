package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Artist struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Bio       string    `json:"bio" db:"bio"`
	Genre     string    `json:"genre" db:"genre"`
	Picture   string    `json:"picture" db:"picture"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

type ArtistRepository interface {
	Create(ctx context.Context, artist *Artist) error
	GetByID(ctx context.Context, id uuid.UUID) (*Artist, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Artist, error)
	List(ctx context.Context, search string, limit, offset int) ([]Artist, int, error)
	Update(ctx context.Context, artist *Artist) error
	Delete(ctx context.Context, id uuid.UUID) error
}
