package playlist

import (
	"github.com/jmoiron/sqlx"
	catalogDomain "github.com/saransh1220/soundwave/internal/modules/catalog/domain"
	"github.com/saransh1220/soundwave/internal/modules/playlist/application"
	"github.com/saransh1220/soundwave/internal/modules/playlist/domain"
	persistence "github.com/saransh1220/soundwave/internal/modules/playlist/infrastructure/persistence/postgres"
	playlistHttp "github.com/saransh1220/soundwave/internal/modules/playlist/interfaces/http"
)

// Module wires playlists and the playlist_songs relation.
type Module struct {
	repo    *persistence.PgPlaylistRepository
	service *application.PlaylistService

	playlistHandler *playlistHttp.PlaylistHandler
	entryHandler    *playlistHttp.EntryHandler
}

func NewModule(db *sqlx.DB, songs catalogDomain.SongFinder, enricher application.SongEnricher, images application.ImageUploader) *Module {
	repo := persistence.NewPlaylistRepository(db)
	entries := persistence.NewPlaylistSongRepository(db)

	members := application.NewMembershipManager(repo, songs, enricher)
	service := application.NewPlaylistService(repo, members, images)

	return &Module{
		repo:            repo,
		service:         service,
		playlistHandler: playlistHttp.NewPlaylistHandler(service),
		entryHandler:    playlistHttp.NewEntryHandler(application.NewEntryService(entries, repo, songs)),
	}
}

// Repository is the read/write view used by likes, admin and stats.
func (m *Module) Repository() domain.PlaylistRepository {
	return m.repo
}

func (m *Module) Service() *application.PlaylistService {
	return m.service
}

func (m *Module) PlaylistHandler() *playlistHttp.PlaylistHandler { return m.playlistHandler }
func (m *Module) EntryHandler() *playlistHttp.EntryHandler       { return m.entryHandler }
