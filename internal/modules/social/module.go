package social

import (
	"github.com/jmoiron/sqlx"
	"github.com/saransh1220/soundwave/internal/modules/social/application"
	persistence "github.com/saransh1220/soundwave/internal/modules/social/infrastructure/persistence/postgres"
	socialHttp "github.com/saransh1220/soundwave/internal/modules/social/interfaces/http"
)

// Module wires likes and follows.
type Module struct {
	likeHandler   *socialHttp.LikeHandler
	followHandler *socialHttp.FollowHandler
}

func NewModule(db *sqlx.DB, songs application.SongLookup, playlists application.PlaylistLookup) *Module {
	likes := application.NewLikeService(persistence.NewLikeRepository(db), songs, playlists)
	follows := application.NewFollowService(persistence.NewFollowRepository(db))
	return &Module{
		likeHandler:   socialHttp.NewLikeHandler(likes),
		followHandler: socialHttp.NewFollowHandler(follows),
	}
}

func (m *Module) LikeHandler() *socialHttp.LikeHandler     { return m.likeHandler }
func (m *Module) FollowHandler() *socialHttp.FollowHandler { return m.followHandler }
