package http

import (
	"context"

	"github.com/google/uuid"
	"github.com/saransh1220/soundwave/internal/modules/social/application"
	"github.com/saransh1220/soundwave/internal/modules/social/domain"
)

type LikeService interface {
	Like(ctx context.Context, userID uuid.UUID, req application.CreateLikeRequest) (*domain.Like, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Like, error)
	List(ctx context.Context) ([]domain.Like, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Like, error)
	ListByTarget(ctx context.Context, targetID uuid.UUID) ([]domain.Like, error)
	ListByUserAndType(ctx context.Context, userID uuid.UUID, targetType string) ([]domain.Like, error)
	Exists(ctx context.Context, userID, targetID uuid.UUID) (bool, error)
	Count(ctx context.Context, targetID uuid.UUID) (int, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Unlike(ctx context.Context, userID, targetID uuid.UUID) error
}

type FollowService interface {
	Follow(ctx context.Context, followerID uuid.UUID, req application.CreateFollowRequest) (*domain.Follow, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Follow, error)
	List(ctx context.Context) ([]domain.Follow, error)
	ListByFollower(ctx context.Context, followerID uuid.UUID) ([]domain.Follow, error)
	ListByFollowing(ctx context.Context, followingID uuid.UUID) ([]domain.Follow, error)
	Exists(ctx context.Context, followerID, followingID uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Unfollow(ctx context.Context, followerID, followingID uuid.UUID) error
}
