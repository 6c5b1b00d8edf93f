package application

import (
	"context"

	"github.com/google/uuid"
	catalogDomain "github.com/saransh1220/soundwave/internal/modules/catalog/domain"
	"github.com/saransh1220/soundwave/internal/modules/playlist/domain"
)

// EntryService manages PlaylistSong relation records.
type EntryService struct {
	entries   domain.PlaylistSongRepository
	playlists domain.PlaylistRepository
	songs     catalogDomain.SongFinder
}

func NewEntryService(entries domain.PlaylistSongRepository, playlists domain.PlaylistRepository, songs catalogDomain.SongFinder) *EntryService {
	return &EntryService{entries: entries, playlists: playlists, songs: songs}
}

func (s *EntryService) Create(ctx context.Context, playlistID uuid.UUID, addedBy *uuid.UUID, req CreateEntryRequest) (*domain.PlaylistSong, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	songID, err := uuid.Parse(req.SongID)
	if err != nil {
		return nil, catalogDomain.ErrSongNotFound
	}
	if _, err := s.playlists.GetByID(ctx, playlistID); err != nil {
		return nil, err
	}
	exists, err := s.songs.Exists(ctx, songID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, catalogDomain.ErrSongNotFound
	}

	entry := &domain.PlaylistSong{
		PlaylistID: playlistID,
		SongID:     songID,
		AddedBy:    addedBy,
		Position:   req.Position,
	}
	if err := s.entries.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *EntryService) Get(ctx context.Context, id uuid.UUID) (*domain.PlaylistSong, error) {
	return s.entries.GetByID(ctx, id)
}

func (s *EntryService) List(ctx context.Context) ([]domain.PlaylistSong, error) {
	return s.entries.List(ctx)
}

func (s *EntryService) ListByPlaylist(ctx context.Context, playlistID uuid.UUID) ([]domain.PlaylistSong, error) {
	return s.entries.ListByPlaylist(ctx, playlistID)
}

func (s *EntryService) ListBySong(ctx context.Context, songID uuid.UUID) ([]domain.PlaylistSong, error) {
	return s.entries.ListBySong(ctx, songID)
}

func (s *EntryService) Count(ctx context.Context, playlistID uuid.UUID) (int, error) {
	return s.entries.CountByPlaylist(ctx, playlistID)
}

func (s *EntryService) UpdatePosition(ctx context.Context, id uuid.UUID, req UpdateEntryRequest) (*domain.PlaylistSong, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	entry, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	entry.Position = req.Position
	if err := s.entries.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *EntryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.entries.Delete(ctx, id)
}

func (s *EntryService) DeleteByPair(ctx context.Context, playlistID, songID uuid.UUID) error {
	return s.entries.DeleteByPair(ctx, playlistID, songID)
}

func (s *EntryService) DeleteAll(ctx context.Context, playlistID uuid.UUID) error {
	return s.entries.DeleteAllForPlaylist(ctx, playlistID)
}
