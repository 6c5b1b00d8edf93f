package application

import (
	"context"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/saransh1220/soundwave/internal/modules/catalog/domain"
	fsDomain "github.com/saransh1220/soundwave/internal/modules/filestorage/domain"
)

type memSongs struct {
	byID    map[uuid.UUID]*domain.Song
	updates int
	listFn  func(domain.SongFilter) ([]domain.Song, int, error)
}

func newMemSongs(songs ...domain.Song) *memSongs {
	m := &memSongs{byID: map[uuid.UUID]*domain.Song{}}
	for i := range songs {
		s := songs[i]
		m.byID[s.ID] = &s
	}
	return m
}

func (m *memSongs) Create(_ context.Context, s *domain.Song) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	cp := *s
	m.byID[s.ID] = &cp
	return nil
}

func (m *memSongs) GetByID(_ context.Context, id uuid.UUID) (*domain.Song, error) {
	s, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrSongNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *memSongs) GetByIDs(_ context.Context, ids []uuid.UUID) ([]domain.Song, error) {
	out := []domain.Song{}
	for _, id := range ids {
		if s, ok := m.byID[id]; ok {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *memSongs) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := m.byID[id]
	return ok, nil
}

func (m *memSongs) List(_ context.Context, f domain.SongFilter) ([]domain.Song, int, error) {
	if m.listFn != nil {
		return m.listFn(f)
	}
	return nil, 0, nil
}

func (m *memSongs) Update(_ context.Context, s *domain.Song) error {
	if _, ok := m.byID[s.ID]; !ok {
		return domain.ErrSongNotFound
	}
	m.updates++
	cp := *s
	m.byID[s.ID] = &cp
	return nil
}

func (m *memSongs) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.byID[id]; !ok {
		return domain.ErrSongNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *memSongs) IncrementPlayCount(_ context.Context, id uuid.UUID) (int64, error) {
	s, ok := m.byID[id]
	if !ok {
		return 0, domain.ErrSongNotFound
	}
	s.PlayCount++
	return s.PlayCount, nil
}

type memArtists struct {
	byID     map[uuid.UUID]domain.Artist
	lookups  [][]uuid.UUID
	updateFn func(*domain.Artist) error
}

func (m *memArtists) Create(_ context.Context, a *domain.Artist) error {
	a.ID = uuid.New()
	m.byID[a.ID] = *a
	return nil
}

func (m *memArtists) GetByID(_ context.Context, id uuid.UUID) (*domain.Artist, error) {
	a, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrArtistNotFound
	}
	return &a, nil
}

func (m *memArtists) GetByIDs(_ context.Context, ids []uuid.UUID) ([]domain.Artist, error) {
	m.lookups = append(m.lookups, ids)
	out := []domain.Artist{}
	for _, id := range ids {
		if a, ok := m.byID[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memArtists) List(context.Context, string, int, int) ([]domain.Artist, int, error) {
	return nil, 0, nil
}

func (m *memArtists) Update(_ context.Context, a *domain.Artist) error {
	if m.updateFn != nil {
		return m.updateFn(a)
	}
	m.byID[a.ID] = *a
	return nil
}

func (m *memArtists) Delete(context.Context, uuid.UUID) error { return nil }

type memAlbums struct {
	byID map[uuid.UUID]domain.Album
}

func (m *memAlbums) Create(_ context.Context, a *domain.Album) error {
	a.ID = uuid.New()
	m.byID[a.ID] = *a
	return nil
}

func (m *memAlbums) GetByID(_ context.Context, id uuid.UUID) (*domain.Album, error) {
	a, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrAlbumNotFound
	}
	return &a, nil
}

func (m *memAlbums) GetByIDs(_ context.Context, ids []uuid.UUID) ([]domain.Album, error) {
	out := []domain.Album{}
	for _, id := range ids {
		if a, ok := m.byID[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memAlbums) List(context.Context, string, int, int) ([]domain.Album, int, error) {
	return nil, 0, nil
}

func (m *memAlbums) ListByArtist(context.Context, uuid.UUID) ([]domain.Album, error) {
	return nil, nil
}

func (m *memAlbums) Update(_ context.Context, a *domain.Album) error {
	m.byID[a.ID] = *a
	return nil
}

func (m *memAlbums) Delete(context.Context, uuid.UUID) error { return nil }

type fakeFiles struct {
	objects map[string]string
	deleted []string
}

func (f *fakeFiles) Upload(_ context.Context, file io.Reader, filename, folder, _ string) (string, string, error) {
	b, _ := io.ReadAll(file)
	key := folder + "/" + filename
	f.objects["http://files/"+key] = string(b)
	return "http://files/" + key, key, nil
}

func (f *fakeFiles) Open(_ context.Context, url string) (io.ReadCloser, *fsDomain.File, error) {
	body, ok := f.objects[url]
	if !ok {
		return nil, nil, fsDomain.ErrFileNotFound
	}
	return io.NopCloser(strings.NewReader(body)), &fsDomain.File{URL: url, ContentType: "audio/mpeg", Size: int64(len(body))}, nil
}

func (f *fakeFiles) DeleteByURL(_ context.Context, url string) error {
	f.deleted = append(f.deleted, url)
	delete(f.objects, url)
	return nil
}

type fakeImages struct {
	err error
}

func (f fakeImages) UploadImage(_ context.Context, _ io.Reader, folder string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "http://files/" + folder + "/img.jpg", nil
}
