package application

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/saransh1220/soundwave/internal/modules/catalog/domain"
	fsDomain "github.com/saransh1220/soundwave/internal/modules/filestorage/domain"
	"github.com/saransh1220/soundwave/internal/shared/infrastructure/logging"
)

const audioFolder = "audio"

// AudioStore is the slice of the file service the song service needs.
type AudioStore interface {
	Upload(ctx context.Context, file io.Reader, filename, folder, contentType string) (string, string, error)
	Open(ctx context.Context, urlOrKey string) (io.ReadCloser, *fsDomain.File, error)
	DeleteByURL(ctx context.Context, url string) error
}

type SongService struct {
	songs   domain.SongRepository
	artists domain.ArtistRepository
	albums  domain.AlbumRepository
	files   AudioStore
}

func NewSongService(songs domain.SongRepository, artists domain.ArtistRepository, albums domain.AlbumRepository, files AudioStore) *SongService {
	return &SongService{songs: songs, artists: artists, albums: albums, files: files}
}

func (s *SongService) CreateSong(ctx context.Context, req CreateSongRequest) (*domain.Song, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	song := &domain.Song{
		Title:    req.Title,
		ArtistID: req.ArtistID,
		AlbumID:  req.AlbumID,
		Duration: req.Duration,
		FileURL:  req.FileURL,
		Genre:    req.Genre,
	}
	if err := s.songs.Create(ctx, song); err != nil {
		return nil, fmt.Errorf("create song: %w", err)
	}
	return song, nil
}

// GetSong returns the song with its artist and album attached.
func (s *SongService) GetSong(ctx context.Context, id uuid.UUID) (*domain.SongDetails, error) {
	song, err := s.songs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	details, err := s.Enrich(ctx, []domain.Song{*song})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

func (s *SongService) ListSongs(ctx context.Context, filter domain.SongFilter) ([]domain.Song, int, error) {
	return s.songs.List(ctx, filter)
}

// Enrich attaches artists and albums with one bulk lookup each. References
// that no longer resolve are left nil.
func (s *SongService) Enrich(ctx context.Context, songs []domain.Song) ([]domain.SongDetails, error) {
	var artistIDs, albumIDs []uuid.UUID
	for _, song := range songs {
		if song.ArtistID != nil {
			artistIDs = append(artistIDs, *song.ArtistID)
		}
		if song.AlbumID != nil {
			albumIDs = append(albumIDs, *song.AlbumID)
		}
	}

	artists, err := s.artists.GetByIDs(ctx, dedupe(artistIDs))
	if err != nil {
		return nil, fmt.Errorf("load artists: %w", err)
	}
	albums, err := s.albums.GetByIDs(ctx, dedupe(albumIDs))
	if err != nil {
		return nil, fmt.Errorf("load albums: %w", err)
	}

	artistByID := make(map[uuid.UUID]*domain.Artist, len(artists))
	for i := range artists {
		artistByID[artists[i].ID] = &artists[i]
	}
	albumByID := make(map[uuid.UUID]*domain.Album, len(albums))
	for i := range albums {
		albumByID[albums[i].ID] = &albums[i]
	}

	out := make([]domain.SongDetails, len(songs))
	for i, song := range songs {
		out[i].Song = song
		if song.ArtistID != nil {
			out[i].Artist = artistByID[*song.ArtistID]
		}
		if song.AlbumID != nil {
			out[i].Album = albumByID[*song.AlbumID]
		}
	}
	return out, nil
}

func (s *SongService) UpdateSong(ctx context.Context, id uuid.UUID, req UpdateSongRequest) (*domain.Song, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	song, err := s.songs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		song.Title = *req.Title
	}
	if req.ArtistID != nil {
		song.ArtistID = req.ArtistID
	}
	if req.AlbumID != nil {
		song.AlbumID = req.AlbumID
	}
	if req.Duration != nil {
		song.Duration = *req.Duration
	}
	if req.FileURL != nil {
		song.FileURL = *req.FileURL
	}
	if req.Genre != nil {
		song.Genre = *req.Genre
	}

	if err := s.songs.Update(ctx, song); err != nil {
		return nil, err
	}
	return song, nil
}

func (s *SongService) DeleteSong(ctx context.Context, id uuid.UUID) error {
	return s.songs.Delete(ctx, id)
}

// RecordPlay increments the play count and returns the new total.
func (s *SongService) RecordPlay(ctx context.Context, id uuid.UUID) (int64, error) {
	count, err := s.songs.IncrementPlayCount(ctx, id)
	if err != nil {
		return 0, err
	}
	songPlaysTotal.Inc()
	return count, nil
}

// OpenAudio opens the stored audio object of a song.
func (s *SongService) OpenAudio(ctx context.Context, id uuid.UUID) (io.ReadCloser, *fsDomain.File, error) {
	song, err := s.songs.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if song.FileURL == "" {
		return nil, nil, domain.ErrNoAudioFile
	}
	return s.files.Open(ctx, song.FileURL)
}

// AttachAudio stores a new audio file for the song and replaces its
// file URL. The previous object is removed on a best-effort basis.
func (s *SongService) AttachAudio(ctx context.Context, id uuid.UUID, file io.Reader, filename, contentType string) (*domain.Song, error) {
	song, err := s.songs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	url, _, err := s.files.Upload(ctx, file, filename, audioFolder, contentType)
	if err != nil {
		return nil, fmt.Errorf("upload audio: %w", err)
	}

	previous := song.FileURL
	song.FileURL = url
	if err := s.songs.Update(ctx, song); err != nil {
		_ = s.files.DeleteByURL(ctx, url)
		return nil, err
	}

	if previous != "" {
		if err := s.files.DeleteByURL(ctx, previous); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Str("url", previous).Msg("failed to remove replaced audio")
		}
	}
	return song, nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
