package http_test

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/saransh1220/soundwave/internal/modules/playlist/application"
	"github.com/saransh1220/soundwave/internal/modules/playlist/domain"
	"github.com/stretchr/testify/mock"
)

type mockPlaylistService struct{ mock.Mock }

func (m *mockPlaylistService) playlist(args mock.Arguments) (*domain.Playlist, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Playlist), args.Error(1)
}

func (m *mockPlaylistService) Create(ctx context.Context, ownerID uuid.UUID, req application.CreatePlaylistRequest) (*domain.Playlist, error) {
	return m.playlist(m.Called(ctx, ownerID, req))
}

func (m *mockPlaylistService) Get(ctx context.Context, id uuid.UUID) (*domain.PlaylistWithSongs, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlaylistWithSongs), args.Error(1)
}

func (m *mockPlaylistService) List(ctx context.Context, search string, limit, offset int) ([]domain.Playlist, int, error) {
	args := m.Called(ctx, search, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Playlist), args.Int(1), args.Error(2)
}

func (m *mockPlaylistService) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.PlaylistWithSongs, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlaylistWithSongs), args.Error(1)
}

func (m *mockPlaylistService) UpdateMetadata(ctx context.Context, c application.Caller, id uuid.UUID, req application.UpdatePlaylistRequest) (*domain.Playlist, error) {
	return m.playlist(m.Called(ctx, c, id, req))
}

func (m *mockPlaylistService) Delete(ctx context.Context, c application.Caller, id uuid.UUID) error {
	return m.Called(ctx, c, id).Error(0)
}

func (m *mockPlaylistService) UploadCover(ctx context.Context, c application.Caller, id uuid.UUID, file io.Reader) (*domain.Playlist, error) {
	return m.playlist(m.Called(ctx, c, id, file))
}

func (m *mockPlaylistService) AddSong(ctx context.Context, c application.Caller, id, songID uuid.UUID) (*domain.Playlist, error) {
	return m.playlist(m.Called(ctx, c, id, songID))
}

func (m *mockPlaylistService) AddSongs(ctx context.Context, c application.Caller, id uuid.UUID, songIDs []uuid.UUID) (*domain.Playlist, int, error) {
	args := m.Called(ctx, c, id, songIDs)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).(*domain.Playlist), args.Int(1), args.Error(2)
}

func (m *mockPlaylistService) RemoveSong(ctx context.Context, c application.Caller, id, songID uuid.UUID) (*domain.Playlist, error) {
	return m.playlist(m.Called(ctx, c, id, songID))
}
