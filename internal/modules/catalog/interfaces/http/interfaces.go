package http

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/saransh1220/soundwave/internal/modules/catalog/application"
	"github.com/saransh1220/soundwave/internal/modules/catalog/domain"
	fsDomain "github.com/saransh1220/soundwave/internal/modules/filestorage/domain"
)

type SongService interface {
	CreateSong(ctx context.Context, req application.CreateSongRequest) (*domain.Song, error)
	GetSong(ctx context.Context, id uuid.UUID) (*domain.SongDetails, error)
	ListSongs(ctx context.Context, filter domain.SongFilter) ([]domain.Song, int, error)
	UpdateSong(ctx context.Context, id uuid.UUID, req application.UpdateSongRequest) (*domain.Song, error)
	DeleteSong(ctx context.Context, id uuid.UUID) error
	RecordPlay(ctx context.Context, id uuid.UUID) (int64, error)
	OpenAudio(ctx context.Context, id uuid.UUID) (io.ReadCloser, *fsDomain.File, error)
	AttachAudio(ctx context.Context, id uuid.UUID, file io.Reader, filename, contentType string) (*domain.Song, error)
}

type ArtistService interface {
	CreateArtist(ctx context.Context, req application.CreateArtistRequest) (*domain.Artist, error)
	GetArtist(ctx context.Context, id uuid.UUID) (*domain.Artist, error)
	ListArtists(ctx context.Context, search string, limit, offset int) ([]domain.Artist, int, error)
	UpdateArtist(ctx context.Context, id uuid.UUID, req application.UpdateArtistRequest) (*domain.Artist, error)
	DeleteArtist(ctx context.Context, id uuid.UUID) error
	UploadPicture(ctx context.Context, id uuid.UUID, file io.Reader) (*domain.Artist, error)
}

type AlbumService interface {
	CreateAlbum(ctx context.Context, req application.CreateAlbumRequest) (*domain.Album, error)
	GetAlbum(ctx context.Context, id uuid.UUID) (*domain.Album, error)
	ListAlbums(ctx context.Context, search string, limit, offset int) ([]domain.Album, int, error)
	ListByArtist(ctx context.Context, artistID uuid.UUID) ([]domain.Album, error)
	UpdateAlbum(ctx context.Context, id uuid.UUID, req application.UpdateAlbumRequest) (*domain.Album, error)
	DeleteAlbum(ctx context.Context, id uuid.UUID) error
	UploadCover(ctx context.Context, id uuid.UUID, file io.Reader) (*domain.Album, error)
}

type GenreService interface {
	CreateGenre(ctx context.Context, req application.GenreRequest) (*domain.Genre, error)
	GetGenre(ctx context.Context, id uuid.UUID) (*domain.Genre, error)
	ListGenres(ctx context.Context) ([]domain.Genre, error)
	UpdateGenre(ctx context.Context, id uuid.UUID, req application.GenreRequest) (*domain.Genre, error)
	DeleteGenre(ctx context.Context, id uuid.UUID) error
}
