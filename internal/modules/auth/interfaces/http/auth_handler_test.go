package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/saransh1220/soundwave/internal/modules/auth/application"
	"github.com/saransh1220/soundwave/internal/modules/auth/domain"
	auth_http "github.com/saransh1220/soundwave/internal/modules/auth/interfaces/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) result(args mock.Arguments) (*application.AuthResult, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*application.AuthResult), args.Error(1)
}

func (m *MockAuthService) Register(ctx context.Context, req application.RegisterRequest) (*application.AuthResult, error) {
	return m.result(m.Called(ctx, req))
}

func (m *MockAuthService) Login(ctx context.Context, req application.LoginRequest) (*application.AuthResult, error) {
	return m.result(m.Called(ctx, req))
}

func (m *MockAuthService) GoogleLogin(ctx context.Context, clientID string, req application.GoogleLoginRequest) (*application.AuthResult, error) {
	return m.result(m.Called(ctx, clientID, req))
}

func (m *MockAuthService) ResolveToken(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func jsonBody(t *testing.T, v interface{}) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func sampleResult() *application.AuthResult {
	name := "Alice"
	return &application.AuthResult{
		Token: "tok",
		User:  &domain.User{ID: uuid.New(), Username: "alice", Email: "alice@example.com", DisplayName: &name, Role: domain.RoleUser},
	}
}

func TestRegisterHandler_Success(t *testing.T) {
	svc := new(MockAuthService)
	h := auth_http.NewAuthHandler(svc, "")
	res := sampleResult()

	req := application.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "secret1"}
	svc.On("Register", mock.Anything, req).Return(res, nil).Once()

	rec := httptest.NewRecorder()
	h.Register(rec, httptest.NewRequest(http.MethodPost, "/api/auth/register", jsonBody(t, req)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "tok", body["token"])
	assert.Equal(t, res.User.ID.String(), body["userId"])
	assert.Equal(t, "Alice", body["displayName"])
	assert.Equal(t, "USER", body["role"])
	assert.NotEmpty(t, body["message"])
}

func TestRegisterHandler_Errors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"duplicate email", domain.ErrEmailAlreadyExists, http.StatusBadRequest, "bad_request"},
		{"duplicate username", domain.ErrUsernameAlreadyExists, http.StatusBadRequest, "bad_request"},
		{"invalid fields", validation.Errors{"email": errors.New("must be a valid email address")}, http.StatusBadRequest, "validation_failed"},
		{"storage failure", errors.New("pq: connection refused"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(MockAuthService)
			h := auth_http.NewAuthHandler(svc, "")
			svc.On("Register", mock.Anything, mock.Anything).Return(nil, tc.err).Once()

			rec := httptest.NewRecorder()
			h.Register(rec, httptest.NewRequest(http.MethodPost, "/api/auth/register", jsonBody(t, map[string]string{"username": "x"})))

			assert.Equal(t, tc.status, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error":"`+tc.code+`"`)
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}

func TestRegisterHandler_InvalidJSON(t *testing.T) {
	h := auth_http.NewAuthHandler(new(MockAuthService), "")
	rec := httptest.NewRecorder()
	h.Register(rec, httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString("{")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginHandler(t *testing.T) {
	cases := []struct {
		name   string
		res    *application.AuthResult
		err    error
		status int
	}{
		{"success", sampleResult(), nil, http.StatusOK},
		{"bad credentials", nil, domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"deactivated", nil, domain.ErrUserInactive, http.StatusForbidden},
		{"storage failure", nil, errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(MockAuthService)
			h := auth_http.NewAuthHandler(svc, "")
			login := application.LoginRequest{Username: "alice", Password: "secret1"}
			if tc.res != nil {
				svc.On("Login", mock.Anything, login).Return(tc.res, nil).Once()
			} else {
				svc.On("Login", mock.Anything, login).Return(nil, tc.err).Once()
			}

			rec := httptest.NewRecorder()
			h.Login(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", jsonBody(t, login)))

			assert.Equal(t, tc.status, rec.Code)
			if tc.res != nil {
				assert.Contains(t, rec.Body.String(), `"token":"tok"`)
			}
		})
	}
}

func TestGoogleLoginHandler(t *testing.T) {
	svc := new(MockAuthService)
	h := auth_http.NewAuthHandler(svc, "client-id")
	svc.On("GoogleLogin", mock.Anything, "client-id", application.GoogleLoginRequest{Token: "g"}).Return(sampleResult(), nil).Once()

	rec := httptest.NewRecorder()
	h.GoogleLogin(rec, httptest.NewRequest(http.MethodPost, "/api/auth/google", jsonBody(t, map[string]string{"token": "g"})))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.GoogleLogin(rec, httptest.NewRequest(http.MethodPost, "/api/auth/google", jsonBody(t, map[string]string{})))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertExpectations(t)
}

func TestMeAndValidateHandlers(t *testing.T) {
	svc := new(MockAuthService)
	h := auth_http.NewAuthHandler(svc, "")
	user := sampleResult().User
	svc.On("ResolveToken", mock.Anything, "good").Return(user, nil)
	svc.On("ResolveToken", mock.Anything, "bad").Return(nil, domain.ErrUserInactive)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	h.Me(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
	assert.NotContains(t, rec.Body.String(), "password")

	req = httptest.NewRequest(http.MethodGet, "/api/auth/validate", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec = httptest.NewRecorder()
	h.Validate(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"valid":true`)

	req = httptest.NewRequest(http.MethodGet, "/api/auth/validate", nil)
	req.Header.Set("Authorization", "Bearer bad")
	rec = httptest.NewRecorder()
	h.Validate(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	h.Me(rec, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
