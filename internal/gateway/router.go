package gateway

import (
	"net/http"
	"strings"

	"github.com/saransh1220/soundwave/internal/gateway/middleware"
	authDomain "github.com/saransh1220/soundwave/internal/modules/auth/domain"
)

// Router wraps http.ServeMux with a path prefix and access helpers so each
// resource group registers its routes relative to its base path.
type Router struct {
	mux    *http.ServeMux
	prefix string
}

func NewRouter() *Router {
	return &Router{mux: http.NewServeMux()}
}

func (r *Router) Mux() *http.ServeMux {
	return r.mux
}

// Group returns a router sharing the same mux whose patterns are rooted at
// prefix.
func (r *Router) Group(prefix string) *Router {
	return &Router{mux: r.mux, prefix: r.prefix + prefix}
}

// pattern joins "METHOD path" with the group prefix. An empty path maps to
// the prefix itself.
func (r *Router) pattern(p string) string {
	method, path, found := strings.Cut(p, " ")
	if !found {
		return r.prefix + p
	}
	return method + " " + r.prefix + path
}

func (r *Router) Handle(pattern string, handler http.Handler) {
	r.mux.Handle(r.pattern(pattern), handler)
}

func (r *Router) HandleFunc(pattern string, handler http.HandlerFunc) {
	r.mux.Handle(r.pattern(pattern), handler)
}

// Authed registers a route that answers 401 to anonymous callers.
func (r *Router) Authed(pattern string, handler http.HandlerFunc) {
	r.Handle(pattern, middleware.RequireAuth(handler))
}

// Role registers a route restricted to the listed roles.
func (r *Router) Role(pattern string, handler http.HandlerFunc, roles ...authDomain.Role) {
	r.Handle(pattern, middleware.RequireRole(roles...)(handler))
}
