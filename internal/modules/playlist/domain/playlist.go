package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	catalogDomain "github.com/saransh1220/soundwave/internal/modules/catalog/domain"
)

// Playlist owns an ordered membership list of song ids. The list never holds
// the same id twice; ids may refer to songs that have since been deleted.
type Playlist struct {
	ID          uuid.UUID      `json:"id" db:"id"`
	Name        string         `json:"name" db:"name"`
	Description string         `json:"description" db:"description"`
	CreatedBy   uuid.UUID      `json:"createdBy" db:"created_by"`
	IsPublic    bool           `json:"isPublic" db:"is_public"`
	CoverImage  string         `json:"coverImage" db:"cover_image"`
	SongIDs     pq.StringArray `json:"songIds" db:"song_ids"`
	Version     int            `json:"-" db:"version"`
	CreatedAt   time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time      `json:"updatedAt" db:"updated_at"`
}

func (p *Playlist) Contains(songID string) bool {
	for _, id := range p.SongIDs {
		if id == songID {
			return true
		}
	}
	return false
}

// Add appends songID unless present and reports whether it was appended.
func (p *Playlist) Add(songID string) bool {
	if p.Contains(songID) {
		return false
	}
	p.SongIDs = append(p.SongIDs, songID)
	return true
}

// Remove drops songID and reports whether it was present.
func (p *Playlist) Remove(songID string) bool {
	for i, id := range p.SongIDs {
		if id == songID {
			p.SongIDs = append(p.SongIDs[:i:i], p.SongIDs[i+1:]...)
			return true
		}
	}
	return false
}

// PlaylistWithSongs is a playlist with its resolvable songs attached in
// membership order.
type PlaylistWithSongs struct {
	Playlist
	Songs []catalogDomain.SongDetails `json:"songs"`
}

type PlaylistRepository interface {
	Create(ctx context.Context, playlist *Playlist) error
	GetByID(ctx context.Context, id uuid.UUID) (*Playlist, error)
	List(ctx context.Context, search string, limit, offset int) ([]Playlist, int, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Playlist, error)
	// UpdateMembership persists SongIDs and UpdatedAt only if the stored
	// version still equals playlist.Version, returning ErrVersionConflict
	// otherwise. On success playlist.Version is advanced.
	UpdateMembership(ctx context.Context, playlist *Playlist) error
	UpdateMetadata(ctx context.Context, playlist *Playlist) error
	Delete(ctx context.Context, id uuid.UUID) error
}
