package gateway

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/saransh1220/soundwave/internal/gateway/middleware"
	admin_http "github.com/saransh1220/soundwave/internal/modules/admin/interfaces/http"
	adminlog_http "github.com/saransh1220/soundwave/internal/modules/adminlog/interfaces/http"
	analytics_http "github.com/saransh1220/soundwave/internal/modules/analytics/interfaces/http"
	authDomain "github.com/saransh1220/soundwave/internal/modules/auth/domain"
	auth_http "github.com/saransh1220/soundwave/internal/modules/auth/interfaces/http"
	catalog_http "github.com/saransh1220/soundwave/internal/modules/catalog/interfaces/http"
	playlist_http "github.com/saransh1220/soundwave/internal/modules/playlist/interfaces/http"
	social_http "github.com/saransh1220/soundwave/internal/modules/social/interfaces/http"
	user_http "github.com/saransh1220/soundwave/internal/modules/user/interfaces/http"
	"github.com/saransh1220/soundwave/internal/shared/utils"
)

var (
	adminOnly = []authDomain.Role{authDomain.RoleAdmin}
	staff     = []authDomain.Role{authDomain.RoleAdmin, authDomain.RoleModerator}
)

// RouterConfig holds all the handlers needed for routing
type RouterConfig struct {
	Resolver        middleware.IdentityResolver
	AllowedOrigins  string
	Uploads         http.Handler
	AuthHandler     *auth_http.AuthHandler
	SongHandler     *catalog_http.SongHandler
	ArtistHandler   *catalog_http.ArtistHandler
	AlbumHandler    *catalog_http.AlbumHandler
	GenreHandler    *catalog_http.GenreHandler
	UserHandler     *user_http.UserHandler
	PlaylistHandler *playlist_http.PlaylistHandler
	EntryHandler    *playlist_http.EntryHandler
	LikeHandler     *social_http.LikeHandler
	FollowHandler   *social_http.FollowHandler
	AdminLogHandler *adminlog_http.AdminLogHandler
	StatsHandler    *analytics_http.StatsHandler
	AdminHandler    *admin_http.AdminHandler
}

// NewHandler returns the routed mux behind the global middleware chain.
// Identity resolution runs innermost so its log fields reach handlers.
func NewHandler(config RouterConfig) http.Handler {
	var h http.Handler = SetupRoutes(config)
	h = middleware.ResolveIdentity(config.Resolver)(h)
	h = middleware.CORSMiddleware(h, config.AllowedOrigins)
	h = middleware.PrometheusMiddleware(h)
	h = middleware.RequestLogging(h)
	return middleware.Recovery(h)
}

// SetupRoutes creates and configures all application routes
func SetupRoutes(config RouterConfig) *http.ServeMux {
	r := NewRouter()

	r.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "UP"})
	})
	r.Handle("GET /metrics", promhttp.Handler())
	if config.Uploads != nil {
		r.Handle("GET /uploads/", http.StripPrefix("/uploads/", config.Uploads))
	}

	authRoutes(r.Group("/api/auth"), config.AuthHandler)
	catalogRoutes(r, config)
	userRoutes(r, config.UserHandler)
	playlistRoutes(r, config.PlaylistHandler, config.EntryHandler)
	socialRoutes(r, config.LikeHandler, config.FollowHandler)
	adminLogRoutes(r.Group("/api/adminlogs"), config.AdminLogHandler)
	adminRoutes(r.Group("/api/admin"), config)

	return r.Mux()
}

// Token checks happen inside the auth handler; the resolver skips /api/auth/.
func authRoutes(r *Router, h *auth_http.AuthHandler) {
	r.HandleFunc("POST /register", h.Register)
	r.HandleFunc("POST /login", h.Login)
	r.HandleFunc("POST /google", h.GoogleLogin)
	r.HandleFunc("GET /validate", h.Validate)
	r.HandleFunc("GET /me", h.Me)
}

func catalogRoutes(r *Router, config RouterConfig) {
	songs := r.Group("/api/songs")
	songs.HandleFunc("GET ", config.SongHandler.List)
	songs.HandleFunc("GET /{id}", config.SongHandler.Get)
	songs.HandleFunc("GET /genre/{genre}", config.SongHandler.ListByGenre)
	songs.HandleFunc("GET /artist/{artistId}", config.SongHandler.ListByArtist)
	songs.HandleFunc("GET /album/{albumId}", config.SongHandler.ListByAlbum)
	songs.HandleFunc("GET /stream/{id}", config.SongHandler.Stream)
	songs.HandleFunc("POST /{id}/play", config.SongHandler.Play)
	songs.Role("POST ", config.SongHandler.Create, staff...)
	songs.Role("PUT /{id}", config.SongHandler.Update, staff...)
	songs.Role("DELETE /{id}", config.SongHandler.Delete, staff...)
	songs.Role("POST /{id}/audio", config.SongHandler.UploadAudio, staff...)

	artists := r.Group("/api/artists")
	artists.HandleFunc("GET ", config.ArtistHandler.List)
	artists.HandleFunc("GET /{id}", config.ArtistHandler.Get)
	artists.Role("POST ", config.ArtistHandler.Create, staff...)
	artists.Role("PUT /{id}", config.ArtistHandler.Update, staff...)
	artists.Role("DELETE /{id}", config.ArtistHandler.Delete, staff...)
	artists.Role("POST /{id}/picture", config.ArtistHandler.UploadPicture, staff...)

	albums := r.Group("/api/albums")
	albums.HandleFunc("GET ", config.AlbumHandler.List)
	albums.HandleFunc("GET /{id}", config.AlbumHandler.Get)
	albums.HandleFunc("GET /artist/{artistId}", config.AlbumHandler.ListByArtist)
	albums.Role("POST ", config.AlbumHandler.Create, staff...)
	albums.Role("PUT /{id}", config.AlbumHandler.Update, staff...)
	albums.Role("DELETE /{id}", config.AlbumHandler.Delete, staff...)
	albums.Role("POST /{id}/cover", config.AlbumHandler.UploadCover, staff...)

	genres := r.Group("/api/genres")
	genres.HandleFunc("GET ", config.GenreHandler.List)
	genres.HandleFunc("GET /{id}", config.GenreHandler.Get)
	genres.Role("POST ", config.GenreHandler.Create, staff...)
	genres.Role("PUT /{id}", config.GenreHandler.Update, staff...)
	genres.Role("DELETE /{id}", config.GenreHandler.Delete, staff...)
}

func userRoutes(r *Router, h *user_http.UserHandler) {
	profile := r.Group("/api/user/profile")
	profile.Authed("GET ", h.GetProfile)
	profile.Authed("PUT ", h.UpdateProfile)
	profile.Authed("POST /picture", h.UploadProfilePicture)

	users := r.Group("/api/users")
	users.Role("POST ", h.Create, adminOnly...)
	users.Role("GET ", h.List, adminOnly...)
	users.Role("GET /{id}", h.Get, adminOnly...)
	users.Role("PUT /{id}", h.Update, adminOnly...)
	users.Role("DELETE /{id}", h.Delete, adminOnly...)
}

func playlistRoutes(r *Router, h *playlist_http.PlaylistHandler, entries *playlist_http.EntryHandler) {
	p := r.Group("/api/playlists")
	p.Authed("POST ", h.Create)
	p.Authed("GET ", h.List)
	p.Authed("GET /all", h.Mine)
	p.Authed("GET /user/{userId}", h.ByUser)
	p.Authed("GET /{id}", h.Get)
	p.Authed("PUT /{id}", h.Update)
	p.Authed("DELETE /{id}", h.Delete)
	p.Authed("POST /{id}/songs/batch", h.AddSongs)
	p.Authed("POST /{id}/songs/{songId}", h.AddSong)
	p.Authed("DELETE /{id}/songs/{songId}", h.RemoveSong)
	p.Authed("POST /{id}/cover", h.UploadCover)

	e := r.Group("/api/playlist-songs")
	e.Authed("POST /playlist/{playlistId}/songs", entries.Create)
	e.Authed("GET /playlist/{playlistId}/songs", entries.ListByPlaylist)
	e.Authed("GET /playlist/{playlistId}/songs/count", entries.Count)
	e.Authed("DELETE /playlist/{playlistId}/songs/{songId}", entries.DeleteByPair)
	e.Authed("DELETE /playlist/{playlistId}/songs", entries.DeleteAll)
	e.Authed("GET /entries", entries.List)
	e.Authed("GET /entries/{id}", entries.Get)
	e.Authed("PUT /entries/{id}", entries.Update)
	e.Authed("DELETE /entries/{id}", entries.Delete)
	e.Authed("GET /by-song/{songId}", entries.ListBySong)
}

func socialRoutes(r *Router, likes *social_http.LikeHandler, follows *social_http.FollowHandler) {
	l := r.Group("/api/user-likes")
	l.Authed("POST ", likes.Create)
	l.Authed("GET ", likes.List)
	l.Authed("GET /exists", likes.Exists)
	l.Authed("GET /{id}", likes.Get)
	l.Authed("DELETE /{id}", likes.Delete)
	l.Authed("GET /user/{userId}", likes.ByUser)
	l.Authed("GET /user/{userId}/type/{type}", likes.ByUserAndType)
	l.Authed("GET /target/{targetId}", likes.ByTarget)
	l.Authed("GET /target/{targetId}/count", likes.CountByTarget)
	l.Authed("DELETE /target/{targetId}", likes.Unlike)

	f := r.Group("/api/user-follows")
	f.Authed("POST ", follows.Create)
	f.Authed("GET ", follows.List)
	f.Authed("GET /exists", follows.Exists)
	f.Authed("GET /{id}", follows.Get)
	f.Authed("DELETE /{id}", follows.Delete)
	f.Authed("GET /followers/{followingId}", follows.Followers)
	f.Authed("GET /following/{followerId}", follows.Following)
	f.Authed("DELETE /following/{followingId}", follows.Unfollow)
}

func adminLogRoutes(r *Router, h *adminlog_http.AdminLogHandler) {
	r.Role("POST ", h.Create, adminOnly...)
	r.Role("GET ", h.List, adminOnly...)
	r.Role("GET /{id}", h.Get, adminOnly...)
	r.Role("GET /user/{userId}", h.ByUser, adminOnly...)
	r.Role("PUT /{id}", h.Update, adminOnly...)
	r.Role("DELETE /{id}", h.Delete, adminOnly...)
}

func adminRoutes(r *Router, config RouterConfig) {
	stats := config.StatsHandler
	r.Role("GET /stats", stats.Overview, adminOnly...)
	r.Role("GET /stats/genres", stats.Genres, adminOnly...)
	r.Role("GET /stats/artists", stats.Artists, adminOnly...)
	r.Role("GET /stats/daily", stats.Daily, adminOnly...)
	r.Role("GET /stats/platform", stats.Platform, adminOnly...)
	r.Role("GET /stats/roles", stats.Roles, adminOnly...)

	admin := config.AdminHandler
	r.Role("GET /users", admin.ListUsers, adminOnly...)
	r.Role("GET /users/{id}/details", admin.UserDetails, adminOnly...)
	r.Role("PUT /users/{id}", admin.UpdateUser, adminOnly...)
	r.Role("POST /users/{id}/ban", admin.BanUser, adminOnly...)
	r.Role("GET /content/songs", admin.ListSongs, adminOnly...)
	r.Role("GET /content/playlists", admin.ListPlaylists, adminOnly...)
	r.Role("DELETE /content/songs/{id}", admin.DeleteSong, adminOnly...)
	r.Role("DELETE /content/playlists/{id}", admin.DeletePlaylist, adminOnly...)
	r.Role("GET /settings", admin.GetSettings, adminOnly...)
	r.Role("PUT /settings", admin.UpdateSettings, adminOnly...)
	r.Role("GET /logs", admin.Logs, adminOnly...)

	r.Role("GET /ws", config.AdminLogHandler.Feed, adminOnly...)
}
