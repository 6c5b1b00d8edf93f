package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/saransh1220/soundwave/internal/modules/admin/application"
	adminlogDomain "github.com/saransh1220/soundwave/internal/modules/adminlog/domain"
	authDomain "github.com/saransh1220/soundwave/internal/modules/auth/domain"
	catalogDomain "github.com/saransh1220/soundwave/internal/modules/catalog/domain"
	userApp "github.com/saransh1220/soundwave/internal/modules/user/application"
	"github.com/saransh1220/soundwave/internal/shared/utils"
)

const (
	userPageSize    = 10
	contentPageSize = 20
	logPageSize     = 50
)

type AdminService interface {
	ListUsers(ctx context.Context, filter authDomain.UserFilter) ([]authDomain.User, int, error)
	UserDetails(ctx context.Context, id uuid.UUID) (*application.UserDetails, error)
	UpdateUser(ctx context.Context, adminID, id uuid.UUID, req userApp.UpdateUserRequest) (*authDomain.User, error)
	Ban(ctx context.Context, adminID, id uuid.UUID, reason string) (*application.BanResult, error)
	ListSongs(ctx context.Context, search string, limit, offset int) ([]catalogDomain.Song, int, error)
	ListPlaylists(ctx context.Context, search string, limit, offset int) ([]application.PlaylistWithCreator, int, error)
	DeleteSong(ctx context.Context, adminID, id uuid.UUID) error
	DeletePlaylist(ctx context.Context, adminID, id uuid.UUID) error
	Settings(ctx context.Context) (*application.SettingsView, error)
	UpdateSettings(ctx context.Context, adminID uuid.UUID, patch application.SettingsPatch) (*application.Settings, error)
	Logs(ctx context.Context, filter adminlogDomain.AdminLogFilter) ([]adminlogDomain.AdminLog, int, error)
}

type messageResponse struct {
	Message string `json:"message"`
}

type settingsUpdateResponse struct {
	Message         string                `json:"message"`
	UpdatedSettings *application.Settings `json:"updatedSettings"`
}

// AdminHandler serves the /api/admin console outside of statistics.
type AdminHandler struct {
	service AdminService
}

func NewAdminHandler(service AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// ListUsers pages through accounts. ?search= matches username or email and
// takes precedence over ?role=.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := utils.ParsePageRequest(q, userPageSize)
	users, total, err := h.service.ListUsers(r.Context(), authDomain.UserFilter{
		Role:   q.Get("role"),
		Search: q.Get("search"),
		Limit:  page.Size,
		Offset: page.Offset(),
	})
	if err != nil {
		writeAdminError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.NewPageResponse(users, total, page))
}

func (h *AdminHandler) UserDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	details, err := h.service.UserDetails(r.Context(), id)
	if err != nil {
		writeAdminError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, details)
}

func (h *AdminHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	admin, ok := adminID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req userApp.UpdateUserRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid request body")
		return
	}
	user, err := h.service.UpdateUser(r.Context(), admin, id, req)
	if err != nil {
		writeAdminError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, user)
}

// BanUser deactivates an account. The body is optional.
func (h *AdminHandler) BanUser(w http.ResponseWriter, r *http.Request) {
	admin, ok := adminID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req application.BanRequest
	if r.ContentLength != 0 {
		if err := utils.DecodeJSON(r, &req); err != nil {
			utils.WriteError(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid request body")
			return
		}
	}
	res, err := h.service.Ban(r.Context(), admin, id, req.Reason)
	if err != nil {
		writeAdminError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, res)
}

func (h *AdminHandler) ListSongs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := utils.ParsePageRequest(q, contentPageSize)
	songs, total, err := h.service.ListSongs(r.Context(), q.Get("search"), page.Size, page.Offset())
	if err != nil {
		writeAdminError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.NewPageResponse(songs, total, page))
}

func (h *AdminHandler) ListPlaylists(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := utils.ParsePageRequest(q, contentPageSize)
	items, total, err := h.service.ListPlaylists(r.Context(), q.Get("search"), page.Size, page.Offset())
	if err != nil {
		writeAdminError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.NewPageResponse(items, total, page))
}

func (h *AdminHandler) DeleteSong(w http.ResponseWriter, r *http.Request) {
	h.deleteContent(w, r, h.service.DeleteSong, "Song deleted successfully")
}

func (h *AdminHandler) DeletePlaylist(w http.ResponseWriter, r *http.Request) {
	h.deleteContent(w, r, h.service.DeletePlaylist, "Playlist deleted successfully")
}

func (h *AdminHandler) deleteContent(w http.ResponseWriter, r *http.Request, del func(context.Context, uuid.UUID, uuid.UUID) error, message string) {
	admin, ok := adminID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := del(r.Context(), admin, id); err != nil {
		writeAdminError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, messageResponse{Message: message})
}

func (h *AdminHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Settings(r.Context())
	if err != nil {
		writeAdminError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, view)
}

func (h *AdminHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	admin, ok := adminID(w, r)
	if !ok {
		return
	}
	var patch application.SettingsPatch
	if err := utils.DecodeJSON(r, &patch); err != nil {
		utils.WriteError(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid request body")
		return
	}
	updated, err := h.service.UpdateSettings(r.Context(), admin, patch)
	if err != nil {
		writeAdminError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, settingsUpdateResponse{
		Message:         "Settings updated successfully",
		UpdatedSettings: updated,
	})
}

// Logs pages through the audit trail. ?action= and ?adminId= narrow it.
func (h *AdminHandler) Logs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := utils.ParsePageRequest(q, logPageSize)
	filter := adminlogDomain.AdminLogFilter{Action: q.Get("action"), Limit: page.Size, Offset: page.Offset()}
	if raw := q.Get("adminId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.WriteError(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid adminId")
			return
		}
		filter.UserID = &id
	}
	logs, total, err := h.service.Logs(r.Context(), filter)
	if err != nil {
		writeAdminError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.NewPageResponse(logs, total, page))
}
