package application

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const SettingsKey = "settings:platform"

// Settings is the platform-wide configuration editable from the console.
type Settings struct {
	AppName             string `json:"appName"`
	Version             string `json:"version"`
	Environment         string `json:"environment"`
	AllowRegistrations  bool   `json:"allowRegistrations"`
	MaxPlaylistsPerUser int    `json:"maxPlaylistsPerUser"`
	MaxSongsPerPlaylist int    `json:"maxSongsPerPlaylist"`
	MaintenanceMode     bool   `json:"maintenanceMode"`
}

func DefaultSettings() Settings {
	return Settings{
		AppName:             "Soundwave",
		Version:             "1.0.0",
		Environment:         "Production",
		AllowRegistrations:  true,
		MaxPlaylistsPerUser: 50,
		MaxSongsPerPlaylist: 100,
		MaintenanceMode:     false,
	}
}

// SettingsPatch carries the fields an update touches; nil means unchanged.
type SettingsPatch struct {
	AppName             *string `json:"appName"`
	AllowRegistrations  *bool   `json:"allowRegistrations"`
	MaxPlaylistsPerUser *int    `json:"maxPlaylistsPerUser"`
	MaxSongsPerPlaylist *int    `json:"maxSongsPerPlaylist"`
	MaintenanceMode     *bool   `json:"maintenanceMode"`
}

func (p SettingsPatch) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.AppName, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&p.MaxPlaylistsPerUser, validation.NilOrNotEmpty, validation.Min(1)),
		validation.Field(&p.MaxSongsPerPlaylist, validation.NilOrNotEmpty, validation.Min(1)),
	)
}

func (p SettingsPatch) apply(s *Settings) {
	if p.AppName != nil {
		s.AppName = *p.AppName
	}
	if p.AllowRegistrations != nil {
		s.AllowRegistrations = *p.AllowRegistrations
	}
	if p.MaxPlaylistsPerUser != nil {
		s.MaxPlaylistsPerUser = *p.MaxPlaylistsPerUser
	}
	if p.MaxSongsPerPlaylist != nil {
		s.MaxSongsPerPlaylist = *p.MaxSongsPerPlaylist
	}
	if p.MaintenanceMode != nil {
		s.MaintenanceMode = *p.MaintenanceMode
	}
}

// Store is the document store settings live in. The shared redis cache
// satisfies it; a ttl of 0 keeps the document forever.
type Store interface {
	Get(ctx context.Context, key string, dest interface{}) bool
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// SettingsStore reads and writes the settings document, falling back to
// DefaultSettings when nothing has been saved.
type SettingsStore struct {
	store Store
}

func NewSettingsStore(store Store) *SettingsStore {
	return &SettingsStore{store: store}
}

func (s *SettingsStore) Load(ctx context.Context) Settings {
	settings := DefaultSettings()
	if s.store != nil {
		s.store.Get(ctx, SettingsKey, &settings)
	}
	return settings
}

func (s *SettingsStore) Save(ctx context.Context, settings Settings) error {
	if s.store == nil {
		return nil
	}
	return s.store.Set(ctx, SettingsKey, settings, 0)
}
