package catalog

import (
	"github.com/jmoiron/sqlx"
	"github.com/saransh1220/soundwave/internal/modules/catalog/application"
	"github.com/saransh1220/soundwave/internal/modules/catalog/domain"
	persistence "github.com/saransh1220/soundwave/internal/modules/catalog/infrastructure/persistence/postgres"
	catalogHttp "github.com/saransh1220/soundwave/internal/modules/catalog/interfaces/http"
	fsApp "github.com/saransh1220/soundwave/internal/modules/filestorage/application"
	"github.com/saransh1220/soundwave/internal/shared/infrastructure/cache"
)

// Module wires songs, artists, albums and genres.
type Module struct {
	songs   *persistence.PgSongRepository
	artists *persistence.PgArtistRepository
	albums  *persistence.PgAlbumRepository
	genres  *persistence.PgGenreRepository

	songService *application.SongService

	songHandler   *catalogHttp.SongHandler
	artistHandler *catalogHttp.ArtistHandler
	albumHandler  *catalogHttp.AlbumHandler
	genreHandler  *catalogHttp.GenreHandler
}

func NewModule(db *sqlx.DB, files *fsApp.FileService, c *cache.Cache) *Module {
	songs := persistence.NewSongRepository(db)
	artists := persistence.NewArtistRepository(db)
	albums := persistence.NewAlbumRepository(db)
	genres := persistence.NewGenreRepository(db)

	songService := application.NewSongService(songs, artists, albums, files)
	evictor := catalogHttp.NewSongCacheEvictor(songs, c)

	return &Module{
		songs:         songs,
		artists:       artists,
		albums:        albums,
		genres:        genres,
		songService:   songService,
		songHandler:   catalogHttp.NewSongHandler(songService, c),
		artistHandler: catalogHttp.NewArtistHandler(application.NewArtistService(artists, files), evictor),
		albumHandler:  catalogHttp.NewAlbumHandler(application.NewAlbumService(albums, files), evictor),
		genreHandler:  catalogHttp.NewGenreHandler(application.NewGenreService(genres)),
	}
}

// SongFinder is the read view used by playlists and likes.
func (m *Module) SongFinder() domain.SongFinder {
	return m.songs
}

// SongRepository is used by admin content management.
func (m *Module) SongRepository() domain.SongRepository {
	return m.songs
}

func (m *Module) ArtistRepository() domain.ArtistRepository {
	return m.artists
}

func (m *Module) AlbumRepository() domain.AlbumRepository {
	return m.albums
}

// SongService exposes enrichment to the playlist module.
func (m *Module) SongService() *application.SongService {
	return m.songService
}

func (m *Module) SongHandler() *catalogHttp.SongHandler     { return m.songHandler }
func (m *Module) ArtistHandler() *catalogHttp.ArtistHandler { return m.artistHandler }
func (m *Module) AlbumHandler() *catalogHttp.AlbumHandler   { return m.albumHandler }
func (m *Module) GenreHandler() *catalogHttp.GenreHandler   { return m.genreHandler }
