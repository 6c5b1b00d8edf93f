package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PlaylistSong is an explicit playlist/song relation record. It is managed
// independently of Playlist.SongIDs.
type PlaylistSong struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	PlaylistID uuid.UUID  `json:"playlistId" db:"playlist_id"`
	SongID     uuid.UUID  `json:"songId" db:"song_id"`
	AddedBy    *uuid.UUID `json:"addedBy" db:"added_by"`
	AddedAt    time.Time  `json:"addedAt" db:"added_at"`
	Position   int        `json:"position" db:"position"`
}

type PlaylistSongRepository interface {
	Create(ctx context.Context, entry *PlaylistSong) error
	GetByID(ctx context.Context, id uuid.UUID) (*PlaylistSong, error)
	List(ctx context.Context) ([]PlaylistSong, error)
	ListByPlaylist(ctx context.Context, playlistID uuid.UUID) ([]PlaylistSong, error)
	ListBySong(ctx context.Context, songID uuid.UUID) ([]PlaylistSong, error)
	CountByPlaylist(ctx context.Context, playlistID uuid.UUID) (int, error)
	Update(ctx context.Context, entry *PlaylistSong) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByPair(ctx context.Context, playlistID, songID uuid.UUID) error
	// DeleteAllForPlaylist returns ErrEntryNotFound when nothing was removed.
	DeleteAllForPlaylist(ctx context.Context, playlistID uuid.UUID) error
}
