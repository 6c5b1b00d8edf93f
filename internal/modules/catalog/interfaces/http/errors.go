package http

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/saransh1220/soundwave/internal/modules/catalog/domain"
	fsApp "github.com/saransh1220/soundwave/internal/modules/filestorage/application"
	fsDomain "github.com/saransh1220/soundwave/internal/modules/filestorage/domain"
	"github.com/saransh1220/soundwave/internal/shared/utils"
)

const maxImageUpload = 10 << 20

func writeCatalogError(w http.ResponseWriter, r *http.Request, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		utils.WriteValidationError(w, err)
	case errors.Is(err, domain.ErrSongNotFound),
		errors.Is(err, domain.ErrArtistNotFound),
		errors.Is(err, domain.ErrAlbumNotFound),
		errors.Is(err, domain.ErrGenreNotFound),
		errors.Is(err, domain.ErrNoAudioFile),
		errors.Is(err, fsDomain.ErrFileNotFound):
		utils.WriteError(w, http.StatusNotFound, utils.CodeNotFound, err.Error())
	case errors.Is(err, domain.ErrGenreAlreadyExists):
		utils.WriteError(w, http.StatusConflict, utils.CodeConflict, err.Error())
	case errors.Is(err, fsApp.ErrInvalidImage):
		utils.WriteError(w, http.StatusBadRequest, utils.CodeBadRequest, err.Error())
	default:
		utils.WriteInternalError(w, r, err)
	}
}

// pathID parses the named path value, answering 400 when it is not a uuid.
func pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := utils.DecodeJSON(r, dst); err != nil {
		utils.WriteError(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid request body")
		return false
	}
	return true
}
