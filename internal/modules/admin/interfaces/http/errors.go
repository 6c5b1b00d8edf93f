package http

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/saransh1220/soundwave/internal/gateway/middleware"
	authDomain "github.com/saransh1220/soundwave/internal/modules/auth/domain"
	catalogDomain "github.com/saransh1220/soundwave/internal/modules/catalog/domain"
	playlistDomain "github.com/saransh1220/soundwave/internal/modules/playlist/domain"
	"github.com/saransh1220/soundwave/internal/shared/utils"
)

func writeAdminError(w http.ResponseWriter, r *http.Request, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		utils.WriteValidationError(w, err)
	case errors.Is(err, authDomain.ErrInvalidRole):
		utils.WriteError(w, http.StatusBadRequest, utils.CodeBadRequest, err.Error())
	case errors.Is(err, authDomain.ErrUserNotFound),
		errors.Is(err, catalogDomain.ErrSongNotFound),
		errors.Is(err, playlistDomain.ErrPlaylistNotFound):
		utils.WriteError(w, http.StatusNotFound, utils.CodeNotFound, err.Error())
	case errors.Is(err, authDomain.ErrEmailAlreadyExists),
		errors.Is(err, authDomain.ErrUsernameAlreadyExists):
		utils.WriteError(w, http.StatusConflict, utils.CodeConflict, err.Error())
	default:
		utils.WriteInternalError(w, r, err)
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

// adminID is the acting administrator recorded in audit entries.
func adminID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, utils.CodeUnauthorized, "authentication required")
		return uuid.Nil, false
	}
	return id, true
}
