package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/saransh1220/soundwave/internal/modules/playlist/application"
	"github.com/saransh1220/soundwave/internal/modules/playlist/domain"
	"github.com/saransh1220/soundwave/internal/shared/utils"
)

const maxCoverUpload = 10 << 20

type PlaylistHandler struct {
	service PlaylistService
}

func NewPlaylistHandler(service PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{service: service}
}

func (h *PlaylistHandler) Create(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}
	var req application.CreatePlaylistRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid request body")
		return
	}
	p, err := h.service.Create(r.Context(), c.UserID, req)
	if err != nil {
		writePlaylistError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, p)
}

func (h *PlaylistHandler) List(w http.ResponseWriter, r *http.Request) {
	page := utils.ParsePageRequest(r.URL.Query(), 10)
	playlists, total, err := h.service.List(r.Context(), r.URL.Query().Get("search"), page.Size, page.Offset())
	if err != nil {
		writePlaylistError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.NewPageResponse(playlists, total, page))
}

// Mine returns the caller's own playlists with songs resolved.
func (h *PlaylistHandler) Mine(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}
	playlists, err := h.service.ListForUser(r.Context(), c.UserID)
	if err != nil {
		writePlaylistError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, playlists)
}

func (h *PlaylistHandler) ByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	playlists, err := h.service.ListForUser(r.Context(), userID)
	if err != nil {
		writePlaylistError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, playlists)
}

func (h *PlaylistHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	p, err := h.service.Get(r.Context(), id)
	if err != nil {
		writePlaylistError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, p)
}

func (h *PlaylistHandler) Update(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req application.UpdatePlaylistRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid request body")
		return
	}
	p, err := h.service.UpdateMetadata(r.Context(), c, id, req)
	if err != nil {
		writePlaylistError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, p)
}

func (h *PlaylistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(r.Context(), c, id); err != nil {
		writePlaylistError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *PlaylistHandler) AddSong(w http.ResponseWriter, r *http.Request) {
	h.membership(w, r, h.service.AddSong)
}

func (h *PlaylistHandler) RemoveSong(w http.ResponseWriter, r *http.Request) {
	h.membership(w, r, h.service.RemoveSong)
}

func (h *PlaylistHandler) membership(w http.ResponseWriter, r *http.Request,
	op func(context.Context, application.Caller, uuid.UUID, uuid.UUID) (*domain.Playlist, error)) {
	c, ok := caller(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	songID, ok := pathID(w, r, "songId")
	if !ok {
		return
	}
	p, err := op(r.Context(), c, id, songID)
	if err != nil {
		writePlaylistError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, p)
}

// AddSongs adds a batch of songs, skipping unknown ids and ids already in
// the playlist.
func (h *PlaylistHandler) AddSongs(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req application.BatchAddRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid request body")
		return
	}

	if len(req.SongIDs) == 0 {
		writePlaylistError(w, r, domain.ErrNoSongsProvided)
		return
	}
	// A malformed id becomes uuid.Nil, which never resolves and is skipped
	// like any unknown song.
	songIDs := make([]uuid.UUID, len(req.SongIDs))
	for i, raw := range req.SongIDs {
		songIDs[i], _ = uuid.Parse(raw)
	}

	p, added, err := h.service.AddSongs(r.Context(), c, id, songIDs)
	if err != nil {
		writePlaylistError(w, r, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, batchResult{AddedCount: added, Playlist: p}, fmt.Sprintf("Added %d songs", added))
}

type batchResult struct {
	AddedCount int              `json:"addedCount"`
	Playlist   *domain.Playlist `json:"playlist"`
}

// UploadCover accepts a multipart "image" field.
func (h *PlaylistHandler) UploadCover(w http.ResponseWriter, r *http.Request) {
	c, ok := caller(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxCoverUpload)
	if err := r.ParseMultipartForm(maxCoverUpload); err != nil {
		utils.WriteError(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid multipart upload")
		return
	}
	file, _, err := r.FormFile("image")
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, utils.CodeBadRequest, "image is required")
		return
	}
	defer file.Close()

	p, err := h.service.UploadCover(r.Context(), c, id, file)
	if err != nil {
		writePlaylistError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, p)
}
