package application

import (
	"time"

	"github.com/google/uuid"
	authDomain "github.com/saransh1220/soundwave/internal/modules/auth/domain"
	playlistDomain "github.com/saransh1220/soundwave/internal/modules/playlist/domain"
)

type UserDetails struct {
	User          *authDomain.User `json:"user"`
	PlaylistCount int              `json:"playlistCount"`
	LastActive    *time.Time       `json:"lastActive"`
}

type BanRequest struct {
	Reason string `json:"reason"`
}

type BanResult struct {
	Message  string `json:"message"`
	Username string `json:"username"`
	Reason   string `json:"reason"`
}

type Creator struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

type PlaylistWithCreator struct {
	Playlist playlistDomain.Playlist `json:"playlist"`
	Creator  *Creator                `json:"creator"`
}

// SettingsView is the settings document plus live platform figures.
type SettingsView struct {
	Settings
	TotalUsers int `json:"totalUsers"`
}
