package http

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/saransh1220/soundwave/internal/gateway/middleware"
	"github.com/saransh1220/soundwave/internal/modules/social/domain"
	"github.com/saransh1220/soundwave/internal/shared/utils"
)

func writeSocialError(w http.ResponseWriter, r *http.Request, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		utils.WriteValidationError(w, err)
	case errors.Is(err, domain.ErrInvalidTargetType),
		errors.Is(err, domain.ErrInvalidFollowingType),
		errors.Is(err, domain.ErrTargetNotFound):
		utils.WriteError(w, http.StatusBadRequest, utils.CodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrLikeNotFound), errors.Is(err, domain.ErrFollowNotFound):
		utils.WriteError(w, http.StatusNotFound, utils.CodeNotFound, err.Error())
	case errors.Is(err, domain.ErrAlreadyLiked), errors.Is(err, domain.ErrAlreadyFollowing):
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

func queryID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.URL.Query().Get(name))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, utils.CodeBadRequest, name+" query parameter must be a uuid")
		return uuid.Nil, false
	}
	return id, true
}

func callerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, utils.CodeUnauthorized, "authentication required")
	}
	return id, ok
}
