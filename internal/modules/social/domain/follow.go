package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type FollowingType string

const (
	FollowingUser   FollowingType = "user"
	FollowingArtist FollowingType = "artist"
)

func ParseFollowingType(s string) (FollowingType, error) {
	switch t := FollowingType(s); t {
	case FollowingUser, FollowingArtist:
		return t, nil
	}
	return "", ErrInvalidFollowingType
}

type Follow struct {
	ID            uuid.UUID     `json:"id" db:"id"`
	FollowerID    uuid.UUID     `json:"followerId" db:"follower_id"`
	FollowingID   uuid.UUID     `json:"followingId" db:"following_id"`
	FollowingType FollowingType `json:"followingType" db:"following_type"`
	CreatedAt     time.Time     `json:"createdAt" db:"created_at"`
}

type FollowRepository interface {
	Create(ctx context.Context, f *Follow) error
	GetByID(ctx context.Context, id uuid.UUID) (*Follow, error)
	List(ctx context.Context) ([]Follow, error)
	ListByFollower(ctx context.Context, followerID uuid.UUID) ([]Follow, error)
	ListByFollowing(ctx context.Context, followingID uuid.UUID) ([]Follow, error)
	Exists(ctx context.Context, followerID, followingID uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByPair(ctx context.Context, followerID, followingID uuid.UUID) error
}
