package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	authDomain "github.com/saransh1220/soundwave/internal/modules/auth/domain"
	"github.com/stretchr/testify/assert"
)

type stubResolver struct {
	users map[string]*authDomain.User
	calls int
	panic bool
}

func (s *stubResolver) ResolveToken(ctx context.Context, token string) (*authDomain.User, error) {
	s.calls++
	if s.panic {
		panic("boom")
	}
	if u, ok := s.users[token]; ok {
		return u, nil
	}
	return nil, errors.New("invalid token")
}

type seen struct {
	called   bool
	id       uuid.UUID
	hasID    bool
	username string
	role     authDomain.Role
}

func capture(s *seen) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.called = true
		s.id, s.hasID = UserIDFromContext(r.Context())
		s.username = UsernameFromContext(r.Context())
		s.role, _ = RoleFromContext(r.Context())
	})
}

func TestResolveIdentity_AttachesStoredIdentity(t *testing.T) {
	user := &authDomain.User{ID: uuid.New(), Username: "alice", Role: authDomain.RoleAdmin, IsActive: true}
	resolver := &stubResolver{users: map[string]*authDomain.User{"good": user}}

	for _, attach := range []func(*http.Request){
		func(r *http.Request) { r.Header.Set("Authorization", "Bearer good") },
		func(r *http.Request) { q := r.URL.Query(); q.Set("token", "good"); r.URL.RawQuery = q.Encode() },
	} {
		var s seen
		req := httptest.NewRequest(http.MethodGet, "/api/playlists", nil)
		attach(req)
		ResolveIdentity(resolver)(capture(&s)).ServeHTTP(httptest.NewRecorder(), req)

		assert.True(t, s.called)
		assert.True(t, s.hasID)
		assert.Equal(t, user.ID, s.id)
		assert.Equal(t, "alice", s.username)
		assert.Equal(t, authDomain.RoleAdmin, s.role)
	}
}

func TestResolveIdentity_FailsOpen(t *testing.T) {
	cases := map[string]func(*http.Request){
		"no token":      func(r *http.Request) {},
		"bad token":     func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") },
		"wrong scheme":  func(r *http.Request) { r.Header.Set("Authorization", "Basic good") },
		"resolver boom": func(r *http.Request) { r.Header.Set("Authorization", "Bearer good") },
	}

	for name, attach := range cases {
		t.Run(name, func(t *testing.T) {
			resolver := &stubResolver{users: map[string]*authDomain.User{}, panic: name == "resolver boom"}
			var s seen
			req := httptest.NewRequest(http.MethodGet, "/api/songs", nil)
			attach(req)
			rec := httptest.NewRecorder()

			ResolveIdentity(resolver)(capture(&s)).ServeHTTP(rec, req)

			assert.True(t, s.called)
			assert.False(t, s.hasID)
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestResolveIdentity_SkipsPublicPaths(t *testing.T) {
	user := &authDomain.User{ID: uuid.New(), Username: "alice", IsActive: true}
	resolver := &stubResolver{users: map[string]*authDomain.User{"good": user}}

	for _, path := range []string{"/", "/api/auth/login", "/public/songs", "/health", "/metrics", "/docs/index.html", "/error"} {
		var s seen
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer good")
		ResolveIdentity(resolver)(capture(&s)).ServeHTTP(httptest.NewRecorder(), req)

		assert.True(t, s.called, path)
		assert.False(t, s.hasID, path)
	}
	assert.Zero(t, resolver.calls)
}

func TestResolveIdentity_KeepsExistingIdentity(t *testing.T) {
	existing := uuid.New()
	resolver := &stubResolver{users: map[string]*authDomain.User{"good": {ID: uuid.New(), Username: "other"}}}

	var s seen
	req := httptest.NewRequest(http.MethodGet, "/api/songs", nil)
	req.Header.Set("Authorization", "Bearer good")
	req = req.WithContext(WithIdentity(req.Context(), existing, "me", authDomain.RoleUser))
	ResolveIdentity(resolver)(capture(&s)).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, existing, s.id)
	assert.Zero(t, resolver.calls)
}

func TestRequireAuth(t *testing.T) {
	var s seen
	rec := httptest.NewRecorder()
	RequireAuth(capture(&s)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/playlists", nil))
	assert.False(t, s.called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error":"unauthorized"`)

	req := httptest.NewRequest(http.MethodGet, "/api/playlists", nil)
	req = req.WithContext(WithIdentity(req.Context(), uuid.New(), "bob", authDomain.RoleUser))
	rec = httptest.NewRecorder()
	RequireAuth(capture(&s)).ServeHTTP(rec, req)
	assert.True(t, s.called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole(t *testing.T) {
	guard := RequireRole(authDomain.RoleAdmin, authDomain.RoleModerator)

	cases := []struct {
		name   string
		role   *authDomain.Role
		status int
	}{
		{"anonymous", nil, http.StatusUnauthorized},
		{"user", rolePtr(authDomain.RoleUser), http.StatusForbidden},
		{"empty role counts as user", rolePtr(""), http.StatusForbidden},
		{"moderator", rolePtr(authDomain.RoleModerator), http.StatusOK},
		{"admin", rolePtr(authDomain.RoleAdmin), http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
			if tc.role != nil {
				req = req.WithContext(WithIdentity(req.Context(), uuid.New(), "x", *tc.role))
			}
			rec := httptest.NewRecorder()
			guard(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(rec, req)
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

func rolePtr(r authDomain.Role) *authDomain.Role { return &r }
