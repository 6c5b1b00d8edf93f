package http

import (
	"context"
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/saransh1220/soundwave/internal/gateway/middleware"
	"github.com/saransh1220/soundwave/internal/modules/adminlog/application"
	"github.com/saransh1220/soundwave/internal/modules/adminlog/domain"
	"github.com/saransh1220/soundwave/internal/modules/adminlog/infrastructure/websocket"
	"github.com/saransh1220/soundwave/internal/shared/utils"
)

type AdminLogService interface {
	Create(ctx context.Context, req application.CreateAdminLogRequest) (*domain.AdminLog, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.AdminLog, error)
	List(ctx context.Context, filter domain.AdminLogFilter) ([]domain.AdminLog, int, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.AdminLog, error)
	Update(ctx context.Context, id uuid.UUID, req application.UpdateAdminLogRequest) (*domain.AdminLog, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AdminLogHandler serves /api/adminlogs, /api/admin/logs and the live feed.
type AdminLogHandler struct {
	service AdminLogService
	hub     *websocket.Hub
}

func NewAdminLogHandler(service AdminLogService, hub *websocket.Hub) *AdminLogHandler {
	return &AdminLogHandler{service: service, hub: hub}
}

func (h *AdminLogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req application.CreateAdminLogRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid request body")
		return
	}
	entry, err := h.service.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, entry)
}

// List pages through entries, newest first. ?action= and ?userId= narrow
// the result.
func (h *AdminLogHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := utils.ParsePageRequest(q, 20)
	filter := domain.AdminLogFilter{Action: q.Get("action"), Limit: page.Size, Offset: page.Offset()}
	if raw := q.Get("userId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.WriteError(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid userId")
			return
		}
		filter.UserID = &id
	}

	logs, total, err := h.service.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.NewPageResponse(logs, total, page))
}

func (h *AdminLogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	entry, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, entry)
}

func (h *AdminLogHandler) ByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	logs, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, logs)
}

func (h *AdminLogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req application.UpdateAdminLogRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid request body")
		return
	}
	entry, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, entry)
}

func (h *AdminLogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Feed upgrades to a websocket that receives every admin log write.
func (h *AdminLogHandler) Feed(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, utils.CodeUnauthorized, "authentication required")
		return
	}
	websocket.ServeWs(h.hub, w, r, userID)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		utils.WriteValidationError(w, err)
	case errors.Is(err, domain.ErrAdminLogNotFound):
		utils.WriteError(w, http.StatusNotFound, utils.CodeNotFound, err.Error())
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
