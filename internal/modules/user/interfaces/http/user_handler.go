package http

import (
	"context"
	"errors"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/saransh1220/soundwave/internal/gateway/middleware"
	authDomain "github.com/saransh1220/soundwave/internal/modules/auth/domain"
	fsApp "github.com/saransh1220/soundwave/internal/modules/filestorage/application"
	"github.com/saransh1220/soundwave/internal/modules/user/application"
	"github.com/saransh1220/soundwave/internal/shared/utils"
)

const maxPictureUpload = 10 << 20

type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*authDomain.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req application.UpdateProfileRequest) (*authDomain.User, error)
	UploadProfilePicture(ctx context.Context, userID uuid.UUID, file io.Reader) (*authDomain.User, error)
	CreateUser(ctx context.Context, req application.CreateUserRequest) (*authDomain.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*authDomain.User, error)
	ListUsers(ctx context.Context, filter authDomain.UserFilter) ([]authDomain.User, int, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req application.UpdateUserRequest) (*authDomain.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type UserHandler struct {
	service UserService
}

func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, utils.CodeUnauthorized, "authentication required")
		return
	}
	user, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		writeUserError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, user)
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, utils.CodeUnauthorized, "authentication required")
		return
	}
	var req application.UpdateProfileRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid request body")
		return
	}
	user, err := h.service.UpdateProfile(r.Context(), userID, req)
	if err != nil {
		writeUserError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, user)
}

// UploadProfilePicture accepts a multipart "image" field.
func (h *UserHandler) UploadProfilePicture(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, utils.CodeUnauthorized, "authentication required")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxPictureUpload)
	if err := r.ParseMultipartForm(maxPictureUpload); err != nil {
		utils.WriteError(w, http.StatusBadRequest, utils.CodeBadRequest, "file too large")
		return
	}
	file, _, err := r.FormFile("image")
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, utils.CodeBadRequest, "image is required")
		return
	}
	defer file.Close()

	user, err := h.service.UploadProfilePicture(r.Context(), userID, file)
	if err != nil {
		writeUserError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req application.CreateUserRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid request body")
		return
	}
	user, err := h.service.CreateUser(r.Context(), req)
	if err != nil {
		writeUserError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid user id")
		return
	}
	user, err := h.service.GetUser(r.Context(), id)
	if err != nil {
		writeUserError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, user)
}

// List pages through users; ?search= matches username or email and ?role=
// narrows by role.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := utils.ParsePageRequest(q, 10)
	users, total, err := h.service.ListUsers(r.Context(), authDomain.UserFilter{
		Search: q.Get("search"),
		Role:   q.Get("role"),
		Limit:  page.Size,
		Offset: page.Offset(),
	})
	if err != nil {
		writeUserError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.NewPageResponse(users, total, page))
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid user id")
		return
	}
	var req application.UpdateUserRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid request body")
		return
	}
	user, err := h.service.UpdateUser(r.Context(), id, req)
	if err != nil {
		writeUserError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid user id")
		return
	}
	if err := h.service.DeleteUser(r.Context(), id); err != nil {
		writeUserError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeUserError(w http.ResponseWriter, r *http.Request, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		utils.WriteValidationError(w, err)
	case errors.Is(err, authDomain.ErrInvalidRole), errors.Is(err, fsApp.ErrInvalidImage):
		utils.WriteError(w, http.StatusBadRequest, utils.CodeBadRequest, err.Error())
	case errors.Is(err, authDomain.ErrUserNotFound):
		utils.WriteError(w, http.StatusNotFound, utils.CodeNotFound, err.Error())
	case errors.Is(err, authDomain.ErrEmailAlreadyExists),
		errors.Is(err, authDomain.ErrUsernameAlreadyExists),
		errors.Is(err, authDomain.ErrUserAlreadyExists):
		utils.WriteError(w, http.StatusConflict, utils.CodeConflict, err.Error())
	default:
		utils.WriteInternalError(w, r, err)
	}
}
