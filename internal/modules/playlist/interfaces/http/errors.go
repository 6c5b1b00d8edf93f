package http

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/saransh1220/soundwave/internal/gateway/middleware"
	catalogDomain "github.com/saransh1220/soundwave/internal/modules/catalog/domain"
	fsApp "github.com/saransh1220/soundwave/internal/modules/filestorage/application"
	"github.com/saransh1220/soundwave/internal/modules/playlist/application"
	"github.com/saransh1220/soundwave/internal/modules/playlist/domain"
	"github.com/saransh1220/soundwave/internal/shared/utils"
)

func writePlaylistError(w http.ResponseWriter, r *http.Request, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		utils.WriteValidationError(w, err)
	case errors.Is(err, domain.ErrNoSongsProvided), errors.Is(err, fsApp.ErrInvalidImage):
		utils.WriteError(w, http.StatusBadRequest, utils.CodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotOwner):
		utils.WriteError(w, http.StatusForbidden, utils.CodeForbidden, err.Error())
	case errors.Is(err, domain.ErrPlaylistNotFound),
		errors.Is(err, domain.ErrEntryNotFound),
		errors.Is(err, catalogDomain.ErrSongNotFound):
		utils.WriteError(w, http.StatusNotFound, utils.CodeNotFound, err.Error())
	case errors.Is(err, domain.ErrConcurrentModification):
		utils.WriteError(w, http.StatusConflict, utils.CodeConflict, err.Error())
	default:
		utils.WriteInternalError(w, r, err)
	}
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// caller reads the authenticated identity; routes are wrapped in
// RequireAuth, so a miss here answers 401 as a fallback.
func caller(w http.ResponseWriter, r *http.Request) (application.Caller, bool) {
	id, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, utils.CodeUnauthorized, "authentication required")
		return application.Caller{}, false
	}
	return application.Caller{UserID: id, IsAdmin: middleware.IsAdmin(r.Context())}, true
}
