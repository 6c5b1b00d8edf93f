package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/saransh1220/soundwave/internal/gateway/middleware"
	"github.com/saransh1220/soundwave/internal/modules/playlist/application"
	"github.com/saransh1220/soundwave/internal/shared/utils"
)

// EntryHandler serves /api/playlist-songs, the explicit relation records.
type EntryHandler struct {
	service EntryService
}

func NewEntryHandler(service EntryService) *EntryHandler {
	return &EntryHandler{service: service}
}

func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	playlistID, ok := pathID(w, r, "playlistId")
	if !ok {
		return
	}
	var req application.CreateEntryRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid request body")
		return
	}
	var addedBy *uuid.UUID
	if id, ok := middleware.UserIDFromContext(r.Context()); ok {
		addedBy = &id
	}
	entry, err := h.service.Create(r.Context(), playlistID, addedBy, req)
	if err != nil {
		writePlaylistError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, entry)
}

func (h *EntryHandler) ListByPlaylist(w http.ResponseWriter, r *http.Request) {
	playlistID, ok := pathID(w, r, "playlistId")
	if !ok {
		return
	}
	entries, err := h.service.ListByPlaylist(r.Context(), playlistID)
	if err != nil {
		writePlaylistError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, entries)
}

func (h *EntryHandler) Count(w http.ResponseWriter, r *http.Request) {
	playlistID, ok := pathID(w, r, "playlistId")
	if !ok {
		return
	}
	n, err := h.service.Count(r.Context(), playlistID)
	if err != nil {
		writePlaylistError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]int{"count": n})
}

func (h *EntryHandler) DeleteByPair(w http.ResponseWriter, r *http.Request) {
	playlistID, ok := pathID(w, r, "playlistId")
	if !ok {
		return
	}
	songID, ok := pathID(w, r, "songId")
	if !ok {
		return
	}
	if err := h.service.DeleteByPair(r.Context(), playlistID, songID); err != nil {
		writePlaylistError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *EntryHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	playlistID, ok := pathID(w, r, "playlistId")
	if !ok {
		return
	}
	if err := h.service.DeleteAll(r.Context(), playlistID); err != nil {
		writePlaylistError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.List(r.Context())
	if err != nil {
		writePlaylistError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, entries)
}

func (h *EntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	entry, err := h.service.Get(r.Context(), id)
	if err != nil {
		writePlaylistError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, entry)
}

func (h *EntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req application.UpdateEntryRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid request body")
		return
	}
	entry, err := h.service.UpdatePosition(r.Context(), id, req)
	if err != nil {
		writePlaylistError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, entry)
}

func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		writePlaylistError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *EntryHandler) ListBySong(w http.ResponseWriter, r *http.Request) {
	songID, ok := pathID(w, r, "songId")
	if !ok {
		return
	}
	entries, err := h.service.ListBySong(r.Context(), songID)
	if err != nil {
		writePlaylistError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, entries)
}
