package application

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/lib/pq"
	catalogDomain "github.com/saransh1220/soundwave/internal/modules/catalog/domain"
	"github.com/saransh1220/soundwave/internal/modules/playlist/domain"
)

// memPlaylists is an in-memory PlaylistRepository honouring the version
// check. conflicts makes the next N membership writes fail as if another
// writer got there first. reads counts GetByID calls.
type memPlaylists struct {
	mu        sync.Mutex
	byID      map[uuid.UUID]domain.Playlist
	conflicts int
	writes    int
	reads     int
}

func newMemPlaylists(ps ...domain.Playlist) *memPlaylists {
	m := &memPlaylists{byID: map[uuid.UUID]domain.Playlist{}}
	for _, p := range ps {
		if p.Version == 0 {
			p.Version = 1
		}
		m.byID[p.ID] = p
	}
	return m
}

func clonePlaylist(p domain.Playlist) domain.Playlist {
	p.SongIDs = append(pq.StringArray{}, p.SongIDs...)
	return p
}

func (m *memPlaylists) Create(_ context.Context, p *domain.Playlist) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = uuid.New()
	p.Version = 1
	m.byID[p.ID] = clonePlaylist(*p)
	return nil
}

func (m *memPlaylists) GetByID(_ context.Context, id uuid.UUID) (*domain.Playlist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads++
	p, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrPlaylistNotFound
	}
	cp := clonePlaylist(p)
	return &cp, nil
}

func (m *memPlaylists) List(context.Context, string, int, int) ([]domain.Playlist, int, error) {
	return nil, 0, nil
}

func (m *memPlaylists) ListByOwner(_ context.Context, owner uuid.UUID) ([]domain.Playlist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Playlist{}
	for _, p := range m.byID {
		if p.CreatedBy == owner {
			out = append(out, clonePlaylist(p))
		}
	}
	return out, nil
}

func (m *memPlaylists) UpdateMembership(_ context.Context, p *domain.Playlist) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.byID[p.ID]
	if !ok {
		return domain.ErrVersionConflict
	}
	if m.conflicts > 0 {
		m.conflicts--
		stored.Version++
		m.byID[p.ID] = stored
		return domain.ErrVersionConflict
	}
	if stored.Version != p.Version {
		return domain.ErrVersionConflict
	}
	m.writes++
	p.Version++
	m.byID[p.ID] = clonePlaylist(*p)
	return nil
}

func (m *memPlaylists) UpdateMetadata(_ context.Context, p *domain.Playlist) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.byID[p.ID]
	if !ok {
		return domain.ErrPlaylistNotFound
	}
	stored.Name, stored.Description, stored.IsPublic, stored.CoverImage = p.Name, p.Description, p.IsPublic, p.CoverImage
	m.byID[p.ID] = stored
	return nil
}

func (m *memPlaylists) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return domain.ErrPlaylistNotFound
	}
	delete(m.byID, id)
	return nil
}

type memSongs map[uuid.UUID]catalogDomain.Song

func (m memSongs) GetByID(_ context.Context, id uuid.UUID) (*catalogDomain.Song, error) {
	s, ok := m[id]
	if !ok {
		return nil, catalogDomain.ErrSongNotFound
	}
	return &s, nil
}

func (m memSongs) GetByIDs(_ context.Context, ids []uuid.UUID) ([]catalogDomain.Song, error) {
	out := []catalogDomain.Song{}
	for _, id := range ids {
		if s, ok := m[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m memSongs) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := m[id]
	return ok, nil
}

// passEnricher attaches nothing; artist/album resolution is covered by the
// catalog tests.
type passEnricher struct{}

func (passEnricher) Enrich(_ context.Context, songs []catalogDomain.Song) ([]catalogDomain.SongDetails, error) {
	out := make([]catalogDomain.SongDetails, len(songs))
	for i, s := range songs {
		out[i] = catalogDomain.SongDetails{Song: s}
	}
	return out, nil
}

type stubImages struct{}

func (stubImages) UploadImage(context.Context, io.Reader, string) (string, error) {
	return "http://files/playlists/cover.jpg", nil
}
