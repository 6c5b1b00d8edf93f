package http

import (
	"context"

	"github.com/google/uuid"
	"github.com/saransh1220/soundwave/internal/modules/catalog/domain"
	"github.com/saransh1220/soundwave/internal/shared/infrastructure/cache"
	"github.com/saransh1220/soundwave/internal/shared/infrastructure/logging"
)

// SongIDLister finds the songs of an artist or album.
type SongIDLister interface {
	SongIDs(ctx context.Context, filter domain.SongFilter) ([]uuid.UUID, error)
}

// SongCacheEvictor drops cached songs that embed a changed artist or album.
// A nil evictor does nothing.
type SongCacheEvictor struct {
	songs SongIDLister
	cache *cache.Cache
}

func NewSongCacheEvictor(songs SongIDLister, c *cache.Cache) *SongCacheEvictor {
	return &SongCacheEvictor{songs: songs, cache: c}
}

func (e *SongCacheEvictor) ForArtist(ctx context.Context, artistID uuid.UUID) {
	e.evict(ctx, domain.SongFilter{ArtistID: &artistID})
}

func (e *SongCacheEvictor) ForAlbum(ctx context.Context, albumID uuid.UUID) {
	e.evict(ctx, domain.SongFilter{AlbumID: &albumID})
}

func (e *SongCacheEvictor) evict(ctx context.Context, filter domain.SongFilter) {
	if e == nil {
		return
	}
	ids, err := e.songs.SongIDs(ctx, filter)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("could not list songs for cache eviction")
		return
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = domain.SongCacheKey(id)
	}
	e.cache.Delete(ctx, keys...)
}
