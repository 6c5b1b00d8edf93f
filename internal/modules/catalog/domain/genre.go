package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Genre struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

type GenreRepository interface {
	Create(ctx context.Context, genre *Genre) error
	GetByID(ctx context.Context, id uuid.UUID) (*Genre, error)
	GetByName(ctx context.Context, name string) (*Genre, error)
	List(ctx context.Context) ([]Genre, error)
	Update(ctx context.Context, genre *Genre) error
	Delete(ctx context.Context, id uuid.UUID) error
}
