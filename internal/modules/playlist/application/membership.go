package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	catalogDomain "github.com/saransh1220/soundwave/internal/modules/catalog/domain"
	"github.com/saransh1220/soundwave/internal/modules/playlist/domain"
	"github.com/saransh1220/soundwave/internal/shared/infrastructure/logging"
)

// maxMembershipAttempts bounds the reload-and-reapply loop on version
// conflicts.
const maxMembershipAttempts = 3

// SongEnricher attaches artist and album records to songs.
type SongEnricher interface {
	Enrich(ctx context.Context, songs []catalogDomain.Song) ([]catalogDomain.SongDetails, error)
}

// MembershipManager edits the ordered song list of playlists.
type MembershipManager struct {
	playlists domain.PlaylistRepository
	songs     catalogDomain.SongFinder
	enricher  SongEnricher
	now       func() time.Time
}

func NewMembershipManager(playlists domain.PlaylistRepository, songs catalogDomain.SongFinder, enricher SongEnricher) *MembershipManager {
	return &MembershipManager{playlists: playlists, songs: songs, enricher: enricher, now: time.Now}
}

// mutate applies fn to the already loaded playlist and persists it with a
// version check. fn reports whether the playlist must be written. On a
// conflict the playlist is reloaded and fn applied again.
func (m *MembershipManager) mutate(ctx context.Context, p *domain.Playlist, fn func(p *domain.Playlist) bool) (*domain.Playlist, error) {
	for attempt := 1; ; attempt++ {
		if !fn(p) {
			return p, nil
		}
		p.UpdatedAt = m.now()

		err := m.playlists.UpdateMembership(ctx, p)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, domain.ErrVersionConflict) {
			return nil, fmt.Errorf("save playlist membership: %w", err)
		}
		logging.FromContext(ctx).Debug().
			Str("playlist_id", p.ID.String()).
			Int("attempt", attempt).
			Msg("playlist version conflict, retrying")
		if attempt == maxMembershipAttempts {
			return nil, domain.ErrConcurrentModification
		}
		if p, err = m.playlists.GetByID(ctx, p.ID); err != nil {
			return nil, err
		}
	}
}

// AddSong appends songID to the playlist unless already present. The
// playlist's updated_at is bumped either way.
func (m *MembershipManager) AddSong(ctx context.Context, playlistID, songID uuid.UUID) (*domain.Playlist, error) {
	p, err := m.playlists.GetByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	return m.AddSongTo(ctx, p, songID)
}

// AddSongTo is AddSong for a playlist the caller has already loaded.
func (m *MembershipManager) AddSongTo(ctx context.Context, p *domain.Playlist, songID uuid.UUID) (*domain.Playlist, error) {
	exists, err := m.songs.Exists(ctx, songID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, catalogDomain.ErrSongNotFound
	}

	added := false
	p, err = m.mutate(ctx, p, func(p *domain.Playlist) bool {
		added = p.Add(songID.String())
		return true
	})
	if err != nil {
		return nil, err
	}
	if added {
		membershipChanges.WithLabelValues("add").Inc()
	}
	return p, nil
}

// AddSongsBatch adds songIDs in order, skipping ids already present or
// unknown. The playlist is written once, and only if something was added.
func (m *MembershipManager) AddSongsBatch(ctx context.Context, playlistID uuid.UUID, songIDs []uuid.UUID) (*domain.Playlist, int, error) {
	if len(songIDs) == 0 {
		return nil, 0, domain.ErrNoSongsProvided
	}
	p, err := m.playlists.GetByID(ctx, playlistID)
	if err != nil {
		return nil, 0, err
	}
	return m.AddSongsTo(ctx, p, songIDs)
}

func (m *MembershipManager) AddSongsTo(ctx context.Context, p *domain.Playlist, songIDs []uuid.UUID) (*domain.Playlist, int, error) {
	if len(songIDs) == 0 {
		return nil, 0, domain.ErrNoSongsProvided
	}

	known, err := m.songs.GetByIDs(ctx, songIDs)
	if err != nil {
		return nil, 0, err
	}
	exists := make(map[uuid.UUID]bool, len(known))
	for _, s := range known {
		exists[s.ID] = true
	}

	added := 0
	p, err = m.mutate(ctx, p, func(p *domain.Playlist) bool {
		added = 0
		for _, id := range songIDs {
			if exists[id] && p.Add(id.String()) {
				added++
			}
		}
		return added > 0
	})
	if err != nil {
		return nil, 0, err
	}

	membershipChanges.WithLabelValues("batch_add").Add(float64(added))
	logging.FromContext(ctx).Info().
		Str("playlist_id", p.ID.String()).
		Int("requested", len(songIDs)).
		Int("added", added).
		Msg("batch added songs to playlist")
	return p, added, nil
}

// RemoveSong drops songID if present. Only a missing playlist is an error.
func (m *MembershipManager) RemoveSong(ctx context.Context, playlistID, songID uuid.UUID) (*domain.Playlist, error) {
	p, err := m.playlists.GetByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	return m.RemoveSongFrom(ctx, p, songID)
}

func (m *MembershipManager) RemoveSongFrom(ctx context.Context, p *domain.Playlist, songID uuid.UUID) (*domain.Playlist, error) {
	removed := false
	p, err := m.mutate(ctx, p, func(p *domain.Playlist) bool {
		removed = p.Remove(songID.String())
		return true
	})
	if err != nil {
		return nil, err
	}
	if removed {
		membershipChanges.WithLabelValues("remove").Inc()
	}
	return p, nil
}

// Enrich resolves the playlist's songs in membership order. Ids that no
// longer resolve are left out of the result but stay in the stored list.
func (m *MembershipManager) Enrich(ctx context.Context, p *domain.Playlist) (*domain.PlaylistWithSongs, error) {
	ids := make([]uuid.UUID, 0, len(p.SongIDs))
	for _, raw := range p.SongIDs {
		if id, err := uuid.Parse(raw); err == nil {
			ids = append(ids, id)
		}
	}

	found, err := m.songs.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load playlist songs: %w", err)
	}
	byID := make(map[uuid.UUID]catalogDomain.Song, len(found))
	for _, s := range found {
		byID[s.ID] = s
	}

	ordered := make([]catalogDomain.Song, 0, len(found))
	for _, id := range ids {
		if s, ok := byID[id]; ok {
			ordered = append(ordered, s)
		}
	}

	details, err := m.enricher.Enrich(ctx, ordered)
	if err != nil {
		return nil, err
	}

	out := &domain.PlaylistWithSongs{Playlist: *p, Songs: details}
	out.SongIDs = make(pq.StringArray, len(p.SongIDs))
	copy(out.SongIDs, p.SongIDs)
	return out, nil
}

// ListForUser returns every playlist owned by userID, each enriched.
func (m *MembershipManager) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.PlaylistWithSongs, error) {
	playlists, err := m.playlists.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.PlaylistWithSongs, 0, len(playlists))
	for i := range playlists {
		enriched, err := m.Enrich(ctx, &playlists[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *enriched)
	}
	return out, nil
}
