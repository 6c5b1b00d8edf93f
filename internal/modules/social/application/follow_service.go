package application

import (
	"context"

	"github.com/google/uuid"
	"github.com/saransh1220/soundwave/internal/modules/social/domain"
)

type FollowService struct {
	follows domain.FollowRepository
}

func NewFollowService(follows domain.FollowRepository) *FollowService {
	return &FollowService{follows: follows}
}

func (s *FollowService) Follow(ctx context.Context, followerID uuid.UUID, req CreateFollowRequest) (*domain.Follow, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	followingType, err := domain.ParseFollowingType(req.FollowingType)
	if err != nil {
		return nil, err
	}
	followingID := uuid.MustParse(req.FollowingID)

	exists, err := s.follows.Exists(ctx, followerID, followingID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAlreadyFollowing
	}

	f := &domain.Follow{FollowerID: followerID, FollowingID: followingID, FollowingType: followingType}
	if err := s.follows.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *FollowService) Get(ctx context.Context, id uuid.UUID) (*domain.Follow, error) {
	return s.follows.GetByID(ctx, id)
}

func (s *FollowService) List(ctx context.Context) ([]domain.Follow, error) {
	return s.follows.List(ctx)
}

func (s *FollowService) ListByFollower(ctx context.Context, followerID uuid.UUID) ([]domain.Follow, error) {
	return s.follows.ListByFollower(ctx, followerID)
}

func (s *FollowService) ListByFollowing(ctx context.Context, followingID uuid.UUID) ([]domain.Follow, error) {
	return s.follows.ListByFollowing(ctx, followingID)
}

func (s *FollowService) Exists(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	return s.follows.Exists(ctx, followerID, followingID)
}

func (s *FollowService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.follows.Delete(ctx, id)
}

func (s *FollowService) Unfollow(ctx context.Context, followerID, followingID uuid.UUID) error {
	return s.follows.DeleteByPair(ctx, followerID, followingID)
}
