package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jasonlvhit/gocron"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/saransh1220/soundwave/internal/gateway"
	"github.com/saransh1220/soundwave/internal/modules/admin"
	adminApp "github.com/saransh1220/soundwave/internal/modules/admin/application"
	"github.com/saransh1220/soundwave/internal/modules/adminlog"
	"github.com/saransh1220/soundwave/internal/modules/analytics"
	"github.com/saransh1220/soundwave/internal/modules/auth"
	"github.com/saransh1220/soundwave/internal/modules/catalog"
	"github.com/saransh1220/soundwave/internal/modules/filestorage"
	"github.com/saransh1220/soundwave/internal/modules/playlist"
	"github.com/saransh1220/soundwave/internal/modules/social"
	"github.com/saransh1220/soundwave/internal/modules/user"
	"github.com/saransh1220/soundwave/internal/shared/infrastructure/cache"
	"github.com/saransh1220/soundwave/internal/shared/infrastructure/config"
	"github.com/saransh1220/soundwave/internal/shared/infrastructure/database"
	"github.com/saransh1220/soundwave/internal/shared/infrastructure/logging"
	"github.com/saransh1220/soundwave/pkg/migration"
)

func main() {
	cfg := config.Load()

	logger := logging.New(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	logging.SetGlobalLogger(logger)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, &logger); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run(ctx context.Context, cfg config.Config, logger *zerolog.Logger) error {
	if cfg.Migrations.AutoRun {
		if err := migration.AutoMigrate(cfg.Database.URL(), cfg.Migrations.Path, logger); err != nil {
			return err
		}
	}

	db, err := database.NewPostgresDB(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()
	log.Info().Str("host", cfg.Database.Host).Str("db", cfg.Database.DBName).Msg("database connected")

	rdb := connectRedis(cfg.Redis)
	if rdb != nil {
		defer rdb.Close()
	}
	docs := cache.New(rdb)

	files, err := filestorage.NewModule(ctx, cfg.FileStorage)
	if err != nil {
		return err
	}

	authModule := auth.NewModule(db, cfg.JWT.Secret, cfg.JWT.Expiry, cfg.Google.ClientID)
	catalogModule := catalog.NewModule(db, files.Service(), docs)
	userModule := user.NewModule(authModule.UserRepository(), files.Service())
	playlistModule := playlist.NewModule(db, catalogModule.SongFinder(), catalogModule.SongService(), files.Service())
	socialModule := social.NewModule(db, catalogModule.SongFinder(), playlistModule.Repository())
	adminLogModule := adminlog.NewModule(db)
	analyticsModule := analytics.NewModule(db, docs)
	adminModule := admin.NewModule(adminApp.Deps{
		Users:     userModule.Service(),
		Lookup:    authModule.UserFinder(),
		Songs:     catalogModule.SongService(),
		Playlists: playlistModule.Service(),
		Owners:    playlistModule.Repository(),
		Audit:     adminLogModule.Service(),
		Cache:     docs,
	}, docs)

	hub := adminLogModule.Hub()
	go hub.Run()

	scheduler := gocron.NewScheduler()
	if err := analyticsModule.ScheduleRefresh(scheduler, cfg.Jobs.StatsRefreshMinutes); err != nil {
		return err
	}
	stopJobs := scheduler.Start()

	routes := gateway.RouterConfig{
		Resolver:        authModule.Service(),
		AllowedOrigins:  cfg.Server.AllowedOrigins,
		AuthHandler:     authModule.HTTPHandler(),
		SongHandler:     catalogModule.SongHandler(),
		ArtistHandler:   catalogModule.ArtistHandler(),
		AlbumHandler:    catalogModule.AlbumHandler(),
		GenreHandler:    catalogModule.GenreHandler(),
		UserHandler:     userModule.HTTPHandler(),
		PlaylistHandler: playlistModule.PlaylistHandler(),
		EntryHandler:    playlistModule.EntryHandler(),
		LikeHandler:     socialModule.LikeHandler(),
		FollowHandler:   socialModule.FollowHandler(),
		AdminLogHandler: adminLogModule.HTTPHandler(),
		StatsHandler:    analyticsModule.HTTPHandler(),
		AdminHandler:    adminModule.HTTPHandler(),
	}
	if !cfg.FileStorage.UseS3 {
		routes.Uploads = http.FileServer(http.Dir(cfg.FileStorage.LocalPath))
	}

	server := gateway.NewServer(cfg.Server.Port, gateway.NewHandler(routes))
	server.OnShutdown(hub.Stop)
	server.OnShutdown(func() { stopJobs <- true })
	return server.Run(ctx)
}

// connectRedis returns nil when redis is unreachable. Caching and stored
// settings are then disabled rather than failing startup.
func connectRedis(cfg database.RedisConfig) *redis.Client {
	client, err := database.NewRedis(cfg)
	if err != nil {
		log.Warn().Err(err).Str("addr", cfg.Addr()).Msg("redis unavailable, caching disabled")
		return nil
	}
	log.Info().Str("addr", cfg.Addr()).Msg("redis connected")
	return client
}
