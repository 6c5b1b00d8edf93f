package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	adminlogDomain "github.com/saransh1220/soundwave/internal/modules/adminlog/domain"
	authDomain "github.com/saransh1220/soundwave/internal/modules/auth/domain"
	catalogDomain "github.com/saransh1220/soundwave/internal/modules/catalog/domain"
	playlistDomain "github.com/saransh1220/soundwave/internal/modules/playlist/domain"
	userApp "github.com/saransh1220/soundwave/internal/modules/user/application"
	"github.com/saransh1220/soundwave/internal/shared/infrastructure/logging"
)

const defaultBanReason = "No reason provided"

type Users interface {
	ListUsers(ctx context.Context, filter authDomain.UserFilter) ([]authDomain.User, int, error)
	GetUser(ctx context.Context, id uuid.UUID) (*authDomain.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req userApp.UpdateUserRequest) (*authDomain.User, error)
}

type UserLookup interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]authDomain.User, error)
}

type Songs interface {
	ListSongs(ctx context.Context, filter catalogDomain.SongFilter) ([]catalogDomain.Song, int, error)
	DeleteSong(ctx context.Context, id uuid.UUID) error
}

type Playlists interface {
	List(ctx context.Context, search string, limit, offset int) ([]playlistDomain.Playlist, int, error)
	DeleteAny(ctx context.Context, id uuid.UUID) error
}

type PlaylistOwners interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]playlistDomain.Playlist, error)
}

type AuditLog interface {
	Record(ctx context.Context, adminID uuid.UUID, action, details string) (*adminlogDomain.AdminLog, error)
	List(ctx context.Context, filter adminlogDomain.AdminLogFilter) ([]adminlogDomain.AdminLog, int, error)
}

// Evictor drops cached documents.
type Evictor interface {
	Delete(ctx context.Context, keys ...string)
}

// Deps groups the collaborators of the console service.
type Deps struct {
	Users     Users
	Lookup    UserLookup
	Songs     Songs
	Playlists Playlists
	Owners    PlaylistOwners
	Audit     AuditLog
	Cache     Evictor
	Settings  *SettingsStore
}

// AdminService backs the /api/admin console. Every mutation leaves an
// audit entry naming the acting administrator.
type AdminService struct {
	deps Deps
}

func NewAdminService(deps Deps) *AdminService {
	return &AdminService{deps: deps}
}

func (s *AdminService) ListUsers(ctx context.Context, filter authDomain.UserFilter) ([]authDomain.User, int, error) {
	return s.deps.Users.ListUsers(ctx, filter)
}

func (s *AdminService) UserDetails(ctx context.Context, id uuid.UUID) (*UserDetails, error) {
	user, err := s.deps.Users.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	playlists, err := s.deps.Owners.ListByOwner(ctx, id)
	if err != nil {
		return nil, err
	}
	return &UserDetails{User: user, PlaylistCount: len(playlists), LastActive: user.LastActive}, nil
}

func (s *AdminService) UpdateUser(ctx context.Context, adminID, id uuid.UUID, req userApp.UpdateUserRequest) (*authDomain.User, error) {
	user, err := s.deps.Users.UpdateUser(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.audit(ctx, adminID, adminlogDomain.ActionUserUpdate, fmt.Sprintf("Updated user: %s", user.Username))
	return user, nil
}

// Ban deactivates the account. An empty reason is recorded as
// "No reason provided".
func (s *AdminService) Ban(ctx context.Context, adminID, id uuid.UUID, reason string) (*BanResult, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = defaultBanReason
	}

	inactive := false
	user, err := s.deps.Users.UpdateUser(ctx, id, userApp.UpdateUserRequest{IsActive: &inactive})
	if err != nil {
		return nil, err
	}

	s.audit(ctx, adminID, adminlogDomain.ActionUserBan,
		fmt.Sprintf("Banned user: %s, Reason: %s", user.Username, reason))
	return &BanResult{Message: "User banned successfully", Username: user.Username, Reason: reason}, nil
}

func (s *AdminService) ListSongs(ctx context.Context, search string, limit, offset int) ([]catalogDomain.Song, int, error) {
	return s.deps.Songs.ListSongs(ctx, catalogDomain.SongFilter{Search: search, Limit: limit, Offset: offset})
}

// ListPlaylists pages through every playlist, resolving each creator.
// Creators that no longer exist are reported as nil.
func (s *AdminService) ListPlaylists(ctx context.Context, search string, limit, offset int) ([]PlaylistWithCreator, int, error) {
	playlists, total, err := s.deps.Playlists.List(ctx, search, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	seen := make(map[uuid.UUID]bool)
	ids := []uuid.UUID{}
	for _, p := range playlists {
		if !seen[p.CreatedBy] {
			seen[p.CreatedBy] = true
			ids = append(ids, p.CreatedBy)
		}
	}
	creators := make(map[uuid.UUID]*Creator)
	if len(ids) > 0 {
		users, err := s.deps.Lookup.GetByIDs(ctx, ids)
		if err != nil {
			return nil, 0, err
		}
		for i := range users {
			creators[users[i].ID] = &Creator{ID: users[i].ID, Username: users[i].Username}
		}
	}

	items := make([]PlaylistWithCreator, len(playlists))
	for i, p := range playlists {
		items[i] = PlaylistWithCreator{Playlist: p, Creator: creators[p.CreatedBy]}
	}
	return items, total, nil
}

func (s *AdminService) DeleteSong(ctx context.Context, adminID, id uuid.UUID) error {
	if err := s.deps.Songs.DeleteSong(ctx, id); err != nil {
		return err
	}
	if s.deps.Cache != nil {
		s.deps.Cache.Delete(ctx, catalogDomain.SongCacheKey(id))
	}
	s.audit(ctx, adminID, adminlogDomain.ActionSongDelete, fmt.Sprintf("Deleted song: %s", id))
	return nil
}

func (s *AdminService) DeletePlaylist(ctx context.Context, adminID, id uuid.UUID) error {
	if err := s.deps.Playlists.DeleteAny(ctx, id); err != nil {
		return err
	}
	s.audit(ctx, adminID, adminlogDomain.ActionPlaylistDelete, fmt.Sprintf("Deleted playlist: %s", id))
	return nil
}

// Settings returns the stored settings together with the live user count.
func (s *AdminService) Settings(ctx context.Context) (*SettingsView, error) {
	_, total, err := s.deps.Users.ListUsers(ctx, authDomain.UserFilter{Limit: 1})
	if err != nil {
		return nil, err
	}
	return &SettingsView{Settings: s.deps.Settings.Load(ctx), TotalUsers: total}, nil
}

func (s *AdminService) UpdateSettings(ctx context.Context, adminID uuid.UUID, patch SettingsPatch) (*Settings, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	current := s.deps.Settings.Load(ctx)
	patch.apply(&current)
	if err := s.deps.Settings.Save(ctx, current); err != nil {
		return nil, err
	}

	details := "Updated platform settings"
	if patch.MaintenanceMode != nil {
		details = fmt.Sprintf("Maintenance mode set to %t", *patch.MaintenanceMode)
	}
	s.audit(ctx, adminID, adminlogDomain.ActionSettingsUpdate, details)
	return &current, nil
}

func (s *AdminService) Logs(ctx context.Context, filter adminlogDomain.AdminLogFilter) ([]adminlogDomain.AdminLog, int, error) {
	return s.deps.Audit.List(ctx, filter)
}

// audit records an entry for a mutation that already succeeded. A failed
// write is logged and does not undo the mutation.
func (s *AdminService) audit(ctx context.Context, adminID uuid.UUID, action, details string) {
	if _, err := s.deps.Audit.Record(ctx, adminID, action, details); err != nil {
		logging.FromContext(ctx).Error().Err(err).Str("action", action).Msg("failed to record admin action")
	}
}
