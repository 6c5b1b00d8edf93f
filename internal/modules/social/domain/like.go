package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type TargetType string

const (
	TargetSong     TargetType = "song"
	TargetPlaylist TargetType = "playlist"
)

func ParseTargetType(s string) (TargetType, error) {
	switch t := TargetType(s); t {
	case TargetSong, TargetPlaylist:
		return t, nil
	}
	return "", ErrInvalidTargetType
}

// Like records that a user liked a song or a playlist.
type Like struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	UserID     uuid.UUID  `json:"userId" db:"user_id"`
	TargetID   uuid.UUID  `json:"targetId" db:"target_id"`
	TargetType TargetType `json:"targetType" db:"target_type"`
	CreatedAt  time.Time  `json:"createdAt" db:"created_at"`
}

type LikeRepository interface {
	Create(ctx context.Context, like *Like) error
	GetByID(ctx context.Context, id uuid.UUID) (*Like, error)
	List(ctx context.Context) ([]Like, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Like, error)
	ListByTarget(ctx context.Context, targetID uuid.UUID) ([]Like, error)
	ListByUserAndType(ctx context.Context, userID uuid.UUID, t TargetType) ([]Like, error)
	Exists(ctx context.Context, userID, targetID uuid.UUID) (bool, error)
	CountByTarget(ctx context.Context, targetID uuid.UUID) (int, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUserAndTarget(ctx context.Context, userID, targetID uuid.UUID) error
}
