package gateway

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/saransh1220/soundwave/internal/gateway/middleware"
	authDomain "github.com/saransh1220/soundwave/internal/modules/auth/domain"
	"github.com/stretchr/testify/assert"
)

func ok(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) }

func serve(r *Router, req *http.Request) int {
	w := httptest.NewRecorder()
	r.Mux().ServeHTTP(w, req)
	return w.Code
}

func TestRouter_Pattern(t *testing.T) {
	r := NewRouter().Group("/api").Group("/songs")

	assert.Equal(t, "GET /api/songs", r.pattern("GET "))
	assert.Equal(t, "GET /api/songs/{id}", r.pattern("GET /{id}"))
	assert.Equal(t, "/api/songs/x", r.pattern("/x"))
}

func TestRouter_GroupSharesMux(t *testing.T) {
	root := NewRouter()
	root.Group("/api/genres").HandleFunc("GET ", ok)

	assert.Equal(t, http.StatusNoContent, serve(root, httptest.NewRequest(http.MethodGet, "/api/genres", nil)))
	assert.Equal(t, http.StatusNotFound, serve(root, httptest.NewRequest(http.MethodGet, "/genres", nil)))
}

func TestRouter_Authed(t *testing.T) {
	r := NewRouter()
	r.Authed("GET /me", ok)

	assert.Equal(t, http.StatusUnauthorized, serve(r, httptest.NewRequest(http.MethodGet, "/me", nil)))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req = req.WithContext(middleware.WithIdentity(req.Context(), uuid.New(), "sam", authDomain.RoleUser))
	assert.Equal(t, http.StatusNoContent, serve(r, req))
}

func TestRouter_Role(t *testing.T) {
	r := NewRouter()
	r.Role("DELETE /x", ok, authDomain.RoleAdmin, authDomain.RoleModerator)

	as := func(role authDomain.Role) int {
		req := httptest.NewRequest(http.MethodDelete, "/x", nil)
		req = req.WithContext(middleware.WithIdentity(req.Context(), uuid.New(), "sam", role))
		return serve(r, req)
	}
	assert.Equal(t, http.StatusNoContent, as(authDomain.RoleModerator))
	assert.Equal(t, http.StatusNoContent, as(authDomain.RoleAdmin))
	assert.Equal(t, http.StatusForbidden, as(authDomain.RoleUser))
	assert.Equal(t, http.StatusUnauthorized, serve(r, httptest.NewRequest(http.MethodDelete, "/x", nil)))
}
