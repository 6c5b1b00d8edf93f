package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Album struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	ArtistID    *uuid.UUID `json:"artistId" db:"artist_id"`
	ReleaseDate string     `json:"releaseDate" db:"release_date"`
	CoverArt    string     `json:"coverArt" db:"cover_art"`
	Genre       string     `json:"genre" db:"genre"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

type AlbumRepository interface {
	Create(ctx context.Context, album *Album) error
	GetByID(ctx context.Context, id uuid.UUID) (*Album, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Album, error)
	List(ctx context.Context, search string, limit, offset int) ([]Album, int, error)
	ListByArtist(ctx context.Context, artistID uuid.UUID) ([]Album, error)
	Update(ctx context.Context, album *Album) error
	Delete(ctx context.Context, id uuid.UUID) error
}
