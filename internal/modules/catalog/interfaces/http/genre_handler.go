package http

import (
	"net/http"

	"github.com/saransh1220/soundwave/internal/modules/catalog/application"
	"github.com/saransh1220/soundwave/internal/shared/utils"
)

type GenreHandler struct {
	service GenreService
}

func NewGenreHandler(service GenreService) *GenreHandler {
	return &GenreHandler{service: service}
}

func (h *GenreHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req application.GenreRequest
	if !decodeBody(w, r, &req) {
		return
	}
	genre, err := h.service.CreateGenre(r.Context(), req)
	if err != nil {
		writeCatalogError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, genre)
}

func (h *GenreHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	genre, err := h.service.GetGenre(r.Context(), id)
	if err != nil {
		writeCatalogError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, genre)
}

func (h *GenreHandler) List(w http.ResponseWriter, r *http.Request) {
	genres, err := h.service.ListGenres(r.Context())
	if err != nil {
		writeCatalogError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, genres)
}

func (h *GenreHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req application.GenreRequest
	if !decodeBody(w, r, &req) {
		return
	}
	genre, err := h.service.UpdateGenre(r.Context(), id, req)
	if err != nil {
		writeCatalogError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, genre)
}

func (h *GenreHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteGenre(r.Context(), id); err != nil {
		writeCatalogError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
