package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Song is a playable track. ArtistID and AlbumID may point at records that
// no longer exist.
type Song struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Title     string     `json:"title" db:"title"`
	ArtistID  *uuid.UUID `json:"artistId" db:"artist_id"`
	AlbumID   *uuid.UUID `json:"albumId" db:"album_id"`
	Duration  int        `json:"duration" db:"duration"`
	FileURL   string     `json:"fileUrl" db:"file_url"`
	Genre     string     `json:"genre" db:"genre"`
	PlayCount int64      `json:"playCount" db:"play_count"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
}

// SongDetails is a song with its artist and album resolved; either is nil
// when the reference dangles.
type SongDetails struct {
	Song
	Artist *Artist `json:"artist"`
	Album  *Album  `json:"album"`
}

// SongCacheKey is the redis key holding the enriched song.
func SongCacheKey(id uuid.UUID) string {
	return "song:" + id.String()
}

// SongFilter narrows a song listing. Genre matches case-insensitively.
type SongFilter struct {
	Search   string
	Genre    string
	ArtistID *uuid.UUID
	AlbumID  *uuid.UUID
	Limit    int
	Offset   int
}

type SongRepository interface {
	Create(ctx context.Context, song *Song) error
	GetByID(ctx context.Context, id uuid.UUID) (*Song, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Song, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context, filter SongFilter) ([]Song, int, error)
	Update(ctx context.Context, song *Song) error
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementPlayCount(ctx context.Context, id uuid.UUID) (int64, error)
}

// SongFinder is the read-only view other modules depend on.
type SongFinder interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Song, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Song, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
