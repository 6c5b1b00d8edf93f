package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrAdminLogNotFound = errors.New("admin log not found")

// Actions written by the admin console.
const (
	ActionUserBan        = "USER_BAN"
	ActionUserUpdate     = "USER_UPDATE"
	ActionSongDelete     = "SONG_DELETE"
	ActionPlaylistDelete = "PLAYLIST_DELETE"
	ActionSettingsUpdate = "SETTINGS_UPDATE"
)

// AdminLog is one audit entry. UserID is the acting admin.
type AdminLog struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"userId" db:"user_id"`
	Action    string    `json:"action" db:"action"`
	Details   string    `json:"details" db:"details"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

type AdminLogFilter struct {
	Action string
	UserID *uuid.UUID
	Limit  int
	Offset int
}

type AdminLogRepository interface {
	Create(ctx context.Context, entry *AdminLog) error
	GetByID(ctx context.Context, id uuid.UUID) (*AdminLog, error)
	List(ctx context.Context, filter AdminLogFilter) ([]AdminLog, int, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]AdminLog, error)
	Update(ctx context.Context, entry *AdminLog) error
	Delete(ctx context.Context, id uuid.UUID) error
}
