package http_test

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/saransh1220/soundwave/internal/modules/catalog/application"
	"github.com/saransh1220/soundwave/internal/modules/catalog/domain"
	fsDomain "github.com/saransh1220/soundwave/internal/modules/filestorage/domain"
	"github.com/stretchr/testify/mock"
)

type mockSongService struct{ mock.Mock }

func (m *mockSongService) CreateSong(ctx context.Context, req application.CreateSongRequest) (*domain.Song, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Song), args.Error(1)
}

func (m *mockSongService) GetSong(ctx context.Context, id uuid.UUID) (*domain.SongDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SongDetails), args.Error(1)
}

func (m *mockSongService) ListSongs(ctx context.Context, filter domain.SongFilter) ([]domain.Song, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Song), args.Int(1), args.Error(2)
}

func (m *mockSongService) UpdateSong(ctx context.Context, id uuid.UUID, req application.UpdateSongRequest) (*domain.Song, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Song), args.Error(1)
}

func (m *mockSongService) DeleteSong(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockSongService) RecordPlay(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSongService) OpenAudio(ctx context.Context, id uuid.UUID) (io.ReadCloser, *fsDomain.File, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(*fsDomain.File), args.Error(2)
}

func (m *mockSongService) AttachAudio(ctx context.Context, id uuid.UUID, file io.Reader, filename, contentType string) (*domain.Song, error) {
	args := m.Called(ctx, id, file, filename, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Song), args.Error(1)
}

type mockGenreService struct{ mock.Mock }

func (m *mockGenreService) CreateGenre(ctx context.Context, req application.GenreRequest) (*domain.Genre, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Genre), args.Error(1)
}

func (m *mockGenreService) GetGenre(ctx context.Context, id uuid.UUID) (*domain.Genre, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Genre), args.Error(1)
}

func (m *mockGenreService) ListGenres(ctx context.Context) ([]domain.Genre, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Genre), args.Error(1)
}

func (m *mockGenreService) UpdateGenre(ctx context.Context, id uuid.UUID, req application.GenreRequest) (*domain.Genre, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Genre), args.Error(1)
}

func (m *mockGenreService) DeleteGenre(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
