package http

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/saransh1220/soundwave/internal/modules/playlist/application"
	"github.com/saransh1220/soundwave/internal/modules/playlist/domain"
)

type PlaylistService interface {
	Create(ctx context.Context, ownerID uuid.UUID, req application.CreatePlaylistRequest) (*domain.Playlist, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.PlaylistWithSongs, error)
	List(ctx context.Context, search string, limit, offset int) ([]domain.Playlist, int, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.PlaylistWithSongs, error)
	UpdateMetadata(ctx context.Context, caller application.Caller, id uuid.UUID, req application.UpdatePlaylistRequest) (*domain.Playlist, error)
	Delete(ctx context.Context, caller application.Caller, id uuid.UUID) error
	UploadCover(ctx context.Context, caller application.Caller, id uuid.UUID, file io.Reader) (*domain.Playlist, error)
	AddSong(ctx context.Context, caller application.Caller, id, songID uuid.UUID) (*domain.Playlist, error)
	AddSongs(ctx context.Context, caller application.Caller, id uuid.UUID, songIDs []uuid.UUID) (*domain.Playlist, int, error)
	RemoveSong(ctx context.Context, caller application.Caller, id, songID uuid.UUID) (*domain.Playlist, error)
}

type EntryService interface {
	Create(ctx context.Context, playlistID uuid.UUID, addedBy *uuid.UUID, req application.CreateEntryRequest) (*domain.PlaylistSong, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.PlaylistSong, error)
	List(ctx context.Context) ([]domain.PlaylistSong, error)
	ListByPlaylist(ctx context.Context, playlistID uuid.UUID) ([]domain.PlaylistSong, error)
	ListBySong(ctx context.Context, songID uuid.UUID) ([]domain.PlaylistSong, error)
	Count(ctx context.Context, playlistID uuid.UUID) (int, error)
	UpdatePosition(ctx context.Context, id uuid.UUID, req application.UpdateEntryRequest) (*domain.PlaylistSong, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByPair(ctx context.Context, playlistID, songID uuid.UUID) error
	DeleteAll(ctx context.Context, playlistID uuid.UUID) error
}
