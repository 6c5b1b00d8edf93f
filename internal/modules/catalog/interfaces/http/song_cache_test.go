package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/saransh1220/soundwave/internal/modules/catalog/application"
	"github.com/saransh1220/soundwave/internal/modules/catalog/domain"
	catalogHttp "github.com/saransh1220/soundwave/internal/modules/catalog/interfaces/http"
	"github.com/saransh1220/soundwave/internal/shared/infrastructure/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLister struct {
	mu      sync.Mutex
	filters []domain.SongFilter
}

func (l *recordingLister) SongIDs(_ context.Context, filter domain.SongFilter) ([]uuid.UUID, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.filters = append(l.filters, filter)
	return []uuid.UUID{uuid.New()}, nil
}

type stubArtists struct {
	catalogHttp.ArtistService
	err error
}

func (s stubArtists) UpdateArtist(_ context.Context, id uuid.UUID, _ application.UpdateArtistRequest) (*domain.Artist, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Artist{ID: id, Name: "Renamed"}, nil
}

func (s stubArtists) DeleteArtist(context.Context, uuid.UUID) error { return s.err }

type stubAlbums struct {
	catalogHttp.AlbumService
}

func (stubAlbums) UpdateAlbum(_ context.Context, id uuid.UUID, _ application.UpdateAlbumRequest) (*domain.Album, error) {
	return &domain.Album{ID: id, Title: "Retitled"}, nil
}

func (stubAlbums) UploadCover(_ context.Context, id uuid.UUID, _ io.Reader) (*domain.Album, error) {
	return &domain.Album{ID: id}, nil
}

func TestArtistHandler_ChangesEvictCachedSongs(t *testing.T) {
	lister := &recordingLister{}
	h := catalogHttp.NewArtistHandler(stubArtists{}, catalogHttp.NewSongCacheEvictor(lister, cache.New(nil)))
	id := uuid.New()

	req := httptest.NewRequest(http.MethodPut, "/api/artists/"+id.String(), strings.NewReader(`{"name":"Renamed"}`))
	req.SetPathValue("id", id.String())
	rr := httptest.NewRecorder()
	h.Update(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	req = httptest.NewRequest(http.MethodDelete, "/api/artists/"+id.String(), nil)
	req.SetPathValue("id", id.String())
	rr = httptest.NewRecorder()
	h.Delete(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	require.Len(t, lister.filters, 2)
	for _, f := range lister.filters {
		require.NotNil(t, f.ArtistID)
		assert.Equal(t, id, *f.ArtistID)
		assert.Nil(t, f.AlbumID)
	}
}

func TestArtistHandler_FailedUpdateKeepsCache(t *testing.T) {
	lister := &recordingLister{}
	h := catalogHttp.NewArtistHandler(stubArtists{err: domain.ErrArtistNotFound}, catalogHttp.NewSongCacheEvictor(lister, cache.New(nil)))
	id := uuid.New()

	req := httptest.NewRequest(http.MethodPut, "/api/artists/"+id.String(), strings.NewReader(`{"name":"Renamed"}`))
	req.SetPathValue("id", id.String())
	rr := httptest.NewRecorder()
	h.Update(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Empty(t, lister.filters)
}

func TestAlbumHandler_ChangesEvictCachedSongs(t *testing.T) {
	lister := &recordingLister{}
	h := catalogHttp.NewAlbumHandler(stubAlbums{}, catalogHttp.NewSongCacheEvictor(lister, cache.New(nil)))
	id := uuid.New()

	req := httptest.NewRequest(http.MethodPut, "/api/albums/"+id.String(), strings.NewReader(`{"title":"Retitled"}`))
	req.SetPathValue("id", id.String())
	rr := httptest.NewRecorder()
	h.Update(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	require.Len(t, lister.filters, 1)
	require.NotNil(t, lister.filters[0].AlbumID)
	assert.Equal(t, id, *lister.filters[0].AlbumID)
}

func TestAlbumHandler_NilEvictor(t *testing.T) {
	h := catalogHttp.NewAlbumHandler(stubAlbums{}, nil)
	id := uuid.New()

	req := httptest.NewRequest(http.MethodPut, "/api/albums/"+id.String(), strings.NewReader(`{"title":"Retitled"}`))
	req.SetPathValue("id", id.String())
	rr := httptest.NewRecorder()
	h.Update(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}
