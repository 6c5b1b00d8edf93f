package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	authDomain "github.com/saransh1220/soundwave/internal/modules/auth/domain"
	"github.com/saransh1220/soundwave/internal/shared/infrastructure/logging"
	"github.com/saransh1220/soundwave/internal/shared/utils"
)

type contextKey string

const (
	ContextKeyUserId   contextKey = "user_id"
	ContextKeyRole     contextKey = "role"
	ContextKeyUsername contextKey = "username"
)

// IdentityResolver maps a bearer token to a live account.
type IdentityResolver interface {
	ResolveToken(ctx context.Context, token string) (*authDomain.User, error)
}

// publicPrefixes never carry identity resolution.
var publicPrefixes = []string{"/api/auth/", "/public/", "/health", "/metrics", "/docs", "/error"}

func isPublicPath(path string) bool {
	if path == "/" {
		return true
	}
	for _, p := range publicPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func bearerToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return strings.TrimSpace(parts[1])
		}
	}
	return r.URL.Query().Get("token")
}

// ResolveIdentity attaches the caller's id, username and role to the request
// context when a valid token for an active account is presented. It never
// rejects a request: every failure, including a panic in the resolver,
// leaves the request unauthenticated and lets it through.
func ResolveIdentity(resolver IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}
			if _, ok := UserIDFromContext(r.Context()); ok {
				next.ServeHTTP(w, r)
				return
			}
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			if user := resolveSafely(r.Context(), resolver, token); user != nil {
				ctx := context.WithValue(r.Context(), ContextKeyUserId, user.ID)
				ctx = context.WithValue(ctx, ContextKeyUsername, user.Username)
				ctx = context.WithValue(ctx, ContextKeyRole, string(user.Role))
				ctx = logging.WithUserID(ctx, user.ID.String())
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

func resolveSafely(ctx context.Context, resolver IdentityResolver, token string) (user *authDomain.User) {
	defer func() {
		if rec := recover(); rec != nil {
			logging.FromContext(ctx).Error().Interface("panic", rec).Msg("identity resolution panicked")
			user = nil
		}
	}()

	u, err := resolver.ResolveToken(ctx, token)
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("token not accepted")
		return nil
	}
	return u
}

// RequireAuth answers 401 unless ResolveIdentity attached a caller.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserIDFromContext(r.Context()); !ok {
			utils.WriteError(w, http.StatusUnauthorized, utils.CodeUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole answers 401 for anonymous callers and 403 for callers whose
// role is not listed.
func RequireRole(roles ...authDomain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, _ := RoleFromContext(r.Context())
			for _, allowed := range roles {
				if role == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}
			utils.WriteError(w, http.StatusForbidden, utils.CodeForbidden, "insufficient permissions")
		}))
	}
}

func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(ContextKeyUserId).(uuid.UUID)
	return id, ok && id != uuid.Nil
}

func UsernameFromContext(ctx context.Context) string {
	name, _ := ctx.Value(ContextKeyUsername).(string)
	return name
}

// RoleFromContext returns the caller's role. An authenticated caller with no
// stored role counts as USER.
func RoleFromContext(ctx context.Context) (authDomain.Role, bool) {
	if _, ok := UserIDFromContext(ctx); !ok {
		return "", false
	}
	role, _ := ctx.Value(ContextKeyRole).(string)
	if role == "" {
		return authDomain.RoleUser, true
	}
	return authDomain.Role(role), true
}

// IsAdmin reports whether the caller holds the ADMIN role.
func IsAdmin(ctx context.Context) bool {
	role, ok := RoleFromContext(ctx)
	return ok && role == authDomain.RoleAdmin
}

// WithIdentity returns ctx carrying the given caller. Used by tests and
// internal callers that already know who is acting.
func WithIdentity(ctx context.Context, id uuid.UUID, username string, role authDomain.Role) context.Context {
	ctx = context.WithValue(ctx, ContextKeyUserId, id)
	ctx = context.WithValue(ctx, ContextKeyUsername, username)
	return context.WithValue(ctx, ContextKeyRole, string(role))
}
