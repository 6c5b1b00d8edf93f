package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/saransh1220/soundwave/internal/modules/auth/application"
	"github.com/saransh1220/soundwave/internal/modules/auth/domain"
	"github.com/saransh1220/soundwave/internal/shared/infrastructure/logging"
	"github.com/saransh1220/soundwave/internal/shared/utils"
)

// AuthService defines the interface for auth operations
type AuthService interface {
	Register(ctx context.Context, req application.RegisterRequest) (*application.AuthResult, error)
	Login(ctx context.Context, req application.LoginRequest) (*application.AuthResult, error)
	GoogleLogin(ctx context.Context, googleClientID string, req application.GoogleLoginRequest) (*application.AuthResult, error)
	ResolveToken(ctx context.Context, token string) (*domain.User, error)
}

type AuthHandler struct {
	service        AuthService
	googleClientID string
}

func NewAuthHandler(service AuthService, googleClientID string) *AuthHandler {
	return &AuthHandler{service: service, googleClientID: googleClientID}
}

// AuthResponse is returned by register and every login flavour.
type AuthResponse struct {
	Token       string      `json:"token"`
	UserID      uuid.UUID   `json:"userId"`
	Username    string      `json:"username"`
	Email       string      `json:"email"`
	DisplayName string      `json:"displayName"`
	Role        domain.Role `json:"role"`
	Message     string      `json:"message"`
}

func newAuthResponse(res *application.AuthResult, message string) AuthResponse {
	out := AuthResponse{
		Token:    res.Token,
		UserID:   res.User.ID,
		Username: res.User.Username,
		Email:    res.User.Email,
		Role:     res.User.Role,
		Message:  message,
	}
	if res.User.DisplayName != nil {
		out.DisplayName = *res.User.DisplayName
	}
	return out
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req application.RegisterRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid request body")
		return
	}

	res, err := h.service.Register(r.Context(), req)
	if err != nil {
		var verrs validation.Errors
		switch {
		case errors.As(err, &verrs):
			utils.WriteValidationError(w, err)
		case errors.Is(err, domain.ErrEmailAlreadyExists), errors.Is(err, domain.ErrUsernameAlreadyExists),
			errors.Is(err, domain.ErrUserAlreadyExists):
			utils.WriteError(w, http.StatusBadRequest, utils.CodeBadRequest, err.Error())
		default:
			utils.WriteInternalError(w, r, err)
		}
		return
	}

	logging.FromContext(r.Context()).Info().Str("username", res.User.Username).Msg("user registered")
	utils.WriteJSON(w, http.StatusCreated, newAuthResponse(res, "registration successful"))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req application.LoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid request body")
		return
	}

	res, err := h.service.Login(r.Context(), req)
	if err != nil {
		h.writeLoginError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, newAuthResponse(res, "login successful"))
}

func (h *AuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	var req application.GoogleLoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil || req.Token == "" {
		utils.WriteError(w, http.StatusBadRequest, utils.CodeBadRequest, "invalid request body")
		return
	}

	res, err := h.service.GoogleLogin(r.Context(), h.googleClientID, req)
	if err != nil {
		h.writeLoginError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, newAuthResponse(res, "login successful"))
}

func (h *AuthHandler) writeLoginError(w http.ResponseWriter, r *http.Request, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		utils.WriteValidationError(w, err)
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrInvalidGoogleToken):
		utils.WriteError(w, http.StatusUnauthorized, utils.CodeUnauthorized, err.Error())
	case errors.Is(err, domain.ErrUserInactive):
		utils.WriteError(w, http.StatusForbidden, utils.CodeForbidden, err.Error())
	default:
		utils.WriteInternalError(w, r, err)
	}
}

// Validate reports whether the presented token belongs to a live account.
func (h *AuthHandler) Validate(w http.ResponseWriter, r *http.Request) {
	user, ok := h.caller(w, r)
	if !ok {
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"valid":    true,
		"userId":   user.ID,
		"username": user.Username,
		"role":     user.Role,
	})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := h.caller(w, r)
	if !ok {
		return
	}
	utils.WriteJSON(w, http.StatusOK, user)
}

// caller resolves the bearer token itself: /api/auth/ routes are not
// covered by the identity resolver.
func (h *AuthHandler) caller(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	token := ""
	if parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2); len(parts) == 2 && parts[0] == "Bearer" {
		token = strings.TrimSpace(parts[1])
	}
	if token == "" {
		utils.WriteError(w, http.StatusUnauthorized, utils.CodeUnauthorized, "missing or invalid authorization")
		return nil, false
	}

	user, err := h.service.ResolveToken(r.Context(), token)
	if err != nil {
		logging.FromContext(r.Context()).Debug().Err(err).Msg("token rejected")
		utils.WriteError(w, http.StatusUnauthorized, utils.CodeUnauthorized, "invalid or expired token")
		return nil, false
	}
	return user, true
}
