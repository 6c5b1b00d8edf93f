package http

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/saransh1220/soundwave/internal/modules/catalog/application"
	"github.com/saransh1220/soundwave/internal/modules/catalog/domain"
	"github.com/saransh1220/soundwave/internal/shared/infrastructure/cache"
	"github.com/saransh1220/soundwave/internal/shared/infrastructure/logging"
	"github.com/saransh1220/soundwave/internal/shared/utils"
)

const (
	songCacheTTL   = 10 * time.Minute
	maxAudioUpload = 200 << 20
)

type SongHandler struct {
	service SongService
	cache   *cache.Cache
}

func NewSongHandler(service SongService, c *cache.Cache) *SongHandler {
	return &SongHandler{service: service, cache: c}
}

func (h *SongHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req application.CreateSongRequest
	if !decodeBody(w, r, &req) {
		return
	}
	song, err := h.service.CreateSong(r.Context(), req)
	if err != nil {
		writeCatalogError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, song)
}

// Get serves the enriched song, from redis when cached.
func (h *SongHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	key := domain.SongCacheKey(id)
	if raw, hit := h.cache.GetRaw(r.Context(), key); hit {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Cache", "HIT")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(raw)
		return
	}

	song, err := h.service.GetSong(r.Context(), id)
	if err != nil {
		writeCatalogError(w, r, err)
		return
	}

	if err := h.cache.Set(r.Context(), key, song, songCacheTTL); err != nil {
		logging.FromContext(r.Context()).Warn().Err(err).Str("key", key).Msg("failed to cache song")
	}
	w.Header().Set("X-Cache", "MISS")
	utils.WriteJSON(w, http.StatusOK, song)
}

// List pages through all songs; ?search= matches titles.
func (h *SongHandler) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, domain.SongFilter{Search: r.URL.Query().Get("search")})
}

func (h *SongHandler) ListByGenre(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, domain.SongFilter{Genre: r.PathValue("genre")})
}

func (h *SongHandler) ListByArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "artistId")
	if !ok {
		return
	}
	h.list(w, r, domain.SongFilter{ArtistID: &id})
}

func (h *SongHandler) ListByAlbum(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "albumId")
	if !ok {
		return
	}
	h.list(w, r, domain.SongFilter{AlbumID: &id})
}

func (h *SongHandler) list(w http.ResponseWriter, r *http.Request, filter domain.SongFilter) {
	page := utils.ParsePageRequest(r.URL.Query(), 10)
	filter.Limit = page.Size
	filter.Offset = page.Offset()

	songs, total, err := h.service.ListSongs(r.Context(), filter)
	if err != nil {
		writeCatalogError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.NewPageResponse(songs, total, page))
}

func (h *SongHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req application.UpdateSongRequest
	if !decodeBody(w, r, &req) {
		return
	}
	song, err := h.service.UpdateSong(r.Context(), id, req)
	if err != nil {
		writeCatalogError(w, r, err)
		return
	}
	h.cache.Delete(r.Context(), domain.SongCacheKey(id))
	utils.WriteJSON(w, http.StatusOK, song)
}

func (h *SongHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteSong(r.Context(), id); err != nil {
		writeCatalogError(w, r, err)
		return
	}
	h.cache.Delete(r.Context(), domain.SongCacheKey(id))
	w.WriteHeader(http.StatusNoContent)
}

func (h *SongHandler) Play(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if _, err := h.service.RecordPlay(r.Context(), id); err != nil {
		writeCatalogError(w, r, err)
		return
	}
	h.cache.Delete(r.Context(), domain.SongCacheKey(id))
	utils.WriteSuccess(w, http.StatusOK, nil, "Play count incremented")
}

// Stream copies the stored audio object to the client.
func (h *SongHandler) Stream(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	body, file, err := h.service.OpenAudio(r.Context(), id)
	if err != nil {
		writeCatalogError(w, r, err)
		return
	}
	defer body.Close()

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Content-Disposition", "inline")
	w.Header().Set("Accept-Ranges", "none")
	if file != nil && file.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(file.Size, 10))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, body); err != nil {
		logging.FromContext(r.Context()).Warn().Err(err).Str("song_id", id.String()).Msg("stream interrupted")
	}
}

// UploadAudio accepts a multipart "file" and makes it the song's audio.
func (h *SongHandler) UploadAudio(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxAudioUpload)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		utils.WriteError(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid multipart upload")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, utils.CodeBadRequest, "file is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "audio/mpeg"
	}
	song, err := h.service.AttachAudio(r.Context(), id, file, header.Filename, contentType)
	if err != nil {
		writeCatalogError(w, r, err)
		return
	}
	h.cache.Delete(r.Context(), domain.SongCacheKey(id))
	logging.FromContext(r.Context()).Info().
		Str("song_id", id.String()).
		Int64("size", header.Size).
		Msg("song audio uploaded")
	utils.WriteJSON(w, http.StatusOK, song)
}
