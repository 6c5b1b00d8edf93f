package http

import (
	"io"
	"net/http"

	"github.com/saransh1220/soundwave/internal/modules/catalog/application"
	"github.com/saransh1220/soundwave/internal/shared/utils"
)

type AlbumHandler struct {
	service AlbumService
	songs   *SongCacheEvictor
}

// NewAlbumHandler takes an optional evictor for cached songs embedding the album.
func NewAlbumHandler(service AlbumService, songs *SongCacheEvictor) *AlbumHandler {
	return &AlbumHandler{service: service, songs: songs}
}

func (h *AlbumHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req application.CreateAlbumRequest
	if !decodeBody(w, r, &req) {
		return
	}
	album, err := h.service.CreateAlbum(r.Context(), req)
	if err != nil {
		writeCatalogError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, album)
}

func (h *AlbumHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	album, err := h.service.GetAlbum(r.Context(), id)
	if err != nil {
		writeCatalogError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, album)
}

func (h *AlbumHandler) List(w http.ResponseWriter, r *http.Request) {
	page := utils.ParsePageRequest(r.URL.Query(), 10)
	albums, total, err := h.service.ListAlbums(r.Context(), r.URL.Query().Get("search"), page.Size, page.Offset())
	if err != nil {
		writeCatalogError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.NewPageResponse(albums, total, page))
}

func (h *AlbumHandler) ListByArtist(w http.ResponseWriter, r *http.Request) {
	artistID, ok := pathID(w, r, "artistId")
	if !ok {
		return
	}
	albums, err := h.service.ListByArtist(r.Context(), artistID)
	if err != nil {
		writeCatalogError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, albums)
}

func (h *AlbumHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req application.UpdateAlbumRequest
	if !decodeBody(w, r, &req) {
		return
	}
	album, err := h.service.UpdateAlbum(r.Context(), id, req)
	if err != nil {
		writeCatalogError(w, r, err)
		return
	}
	h.songs.ForAlbum(r.Context(), id)
	utils.WriteJSON(w, http.StatusOK, album)
}

func (h *AlbumHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteAlbum(r.Context(), id); err != nil {
		writeCatalogError(w, r, err)
		return
	}
	h.songs.ForAlbum(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *AlbumHandler) UploadCover(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	uploadImage(w, r, func(file io.Reader) (interface{}, error) {
		album, err := h.service.UploadCover(r.Context(), id, file)
		if err != nil {
			return nil, err
		}
		h.songs.ForAlbum(r.Context(), id)
		return album, nil
	})
}
