package application

import (
	"context"
	"errors"

	"github.com/google/uuid"
	playlistDomain "github.com/saransh1220/soundwave/internal/modules/playlist/domain"
	"github.com/saransh1220/soundwave/internal/modules/social/domain"
	"github.com/saransh1220/soundwave/internal/shared/infrastructure/logging"
)

type SongLookup interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type PlaylistLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*playlistDomain.Playlist, error)
}

type LikeService struct {
	likes     domain.LikeRepository
	songs     SongLookup
	playlists PlaylistLookup
}

func NewLikeService(likes domain.LikeRepository, songs SongLookup, playlists PlaylistLookup) *LikeService {
	return &LikeService{likes: likes, songs: songs, playlists: playlists}
}

// Like records that userID likes the requested song or playlist. The target
// must exist and must not already be liked by the same user.
func (s *LikeService) Like(ctx context.Context, userID uuid.UUID, req CreateLikeRequest) (*domain.Like, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	targetType, err := domain.ParseTargetType(req.TargetType)
	if err != nil {
		return nil, err
	}
	targetID := uuid.MustParse(req.TargetID)

	if err := s.checkTarget(ctx, targetType, targetID); err != nil {
		return nil, err
	}
	exists, err := s.likes.Exists(ctx, userID, targetID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAlreadyLiked
	}

	like := &domain.Like{UserID: userID, TargetID: targetID, TargetType: targetType}
	if err := s.likes.Create(ctx, like); err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Debug().
		Str("target_id", targetID.String()).
		Str("target_type", string(targetType)).
		Msg("like recorded")
	return like, nil
}

func (s *LikeService) checkTarget(ctx context.Context, t domain.TargetType, id uuid.UUID) error {
	switch t {
	case domain.TargetSong:
		ok, err := s.songs.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrTargetNotFound
		}
	case domain.TargetPlaylist:
		_, err := s.playlists.GetByID(ctx, id)
		if errors.Is(err, playlistDomain.ErrPlaylistNotFound) {
			return domain.ErrTargetNotFound
		}
		return err
	}
	return nil
}

func (s *LikeService) Get(ctx context.Context, id uuid.UUID) (*domain.Like, error) {
	return s.likes.GetByID(ctx, id)
}

func (s *LikeService) List(ctx context.Context) ([]domain.Like, error) {
	return s.likes.List(ctx)
}

func (s *LikeService) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Like, error) {
	return s.likes.ListByUser(ctx, userID)
}

func (s *LikeService) ListByTarget(ctx context.Context, targetID uuid.UUID) ([]domain.Like, error) {
	return s.likes.ListByTarget(ctx, targetID)
}

func (s *LikeService) ListByUserAndType(ctx context.Context, userID uuid.UUID, targetType string) ([]domain.Like, error) {
	t, err := domain.ParseTargetType(targetType)
	if err != nil {
		return nil, err
	}
	return s.likes.ListByUserAndType(ctx, userID, t)
}

func (s *LikeService) Exists(ctx context.Context, userID, targetID uuid.UUID) (bool, error) {
	return s.likes.Exists(ctx, userID, targetID)
}

func (s *LikeService) Count(ctx context.Context, targetID uuid.UUID) (int, error) {
	return s.likes.CountByTarget(ctx, targetID)
}

func (s *LikeService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.likes.Delete(ctx, id)
}

// Unlike removes userID's like of targetID.
func (s *LikeService) Unlike(ctx context.Context, userID, targetID uuid.UUID) error {
	return s.likes.DeleteByUserAndTarget(ctx, userID, targetID)
}
