package http

import (
	"io"
	"net/http"

	"github.com/saransh1220/soundwave/internal/modules/catalog/application"
	"github.com/saransh1220/soundwave/internal/shared/utils"
)

type ArtistHandler struct {
	service ArtistService
	songs   *SongCacheEvictor
}

// NewArtistHandler takes an optional evictor for cached songs embedding the artist.
func NewArtistHandler(service ArtistService, songs *SongCacheEvictor) *ArtistHandler {
	return &ArtistHandler{service: service, songs: songs}
}

func (h *ArtistHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req application.CreateArtistRequest
	if !decodeBody(w, r, &req) {
		return
	}
	artist, err := h.service.CreateArtist(r.Context(), req)
	if err != nil {
		writeCatalogError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, artist)
}

func (h *ArtistHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	artist, err := h.service.GetArtist(r.Context(), id)
	if err != nil {
		writeCatalogError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, artist)
}

func (h *ArtistHandler) List(w http.ResponseWriter, r *http.Request) {
	page := utils.ParsePageRequest(r.URL.Query(), 10)
	artists, total, err := h.service.ListArtists(r.Context(), r.URL.Query().Get("search"), page.Size, page.Offset())
	if err != nil {
		writeCatalogError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.NewPageResponse(artists, total, page))
}

func (h *ArtistHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req application.UpdateArtistRequest
	if !decodeBody(w, r, &req) {
		return
	}
	artist, err := h.service.UpdateArtist(r.Context(), id, req)
	if err != nil {
		writeCatalogError(w, r, err)
		return
	}
	h.songs.ForArtist(r.Context(), id)
	utils.WriteJSON(w, http.StatusOK, artist)
}

func (h *ArtistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteArtist(r.Context(), id); err != nil {
		writeCatalogError(w, r, err)
		return
	}
	h.songs.ForArtist(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *ArtistHandler) UploadPicture(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	uploadImage(w, r, func(file io.Reader) (interface{}, error) {
		artist, err := h.service.UploadPicture(r.Context(), id, file)
		if err != nil {
			return nil, err
		}
		h.songs.ForArtist(r.Context(), id)
		return artist, nil
	})
}

// uploadImage reads the multipart "image" field and hands it to store.
func uploadImage(w http.ResponseWriter, r *http.Request, store func(io.Reader) (interface{}, error)) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageUpload)
	if err := r.ParseMultipartForm(maxImageUpload); err != nil {
		utils.WriteError(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid multipart upload")
		return
	}
	file, _, err := r.FormFile("image")
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, utils.CodeBadRequest, "image is required")
		return
	}
	defer file.Close()

	out, err := store(file)
	if err != nil {
		writeCatalogError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, out)
}

