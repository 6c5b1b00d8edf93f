package application

import (
	"context"
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	playlistDomain "github.com/saransh1220/soundwave/internal/modules/playlist/domain"
	"github.com/saransh1220/soundwave/internal/modules/social/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockLikeRepo struct {
	mock.Mock
	domain.LikeRepository
}

func (m *mockLikeRepo) Create(ctx context.Context, l *domain.Like) error {
	return m.Called(ctx, l).Error(0)
}

func (m *mockLikeRepo) Exists(ctx context.Context, userID, targetID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, targetID)
	return args.Bool(0), args.Error(1)
}

func (m *mockLikeRepo) ListByUserAndType(ctx context.Context, userID uuid.UUID, t domain.TargetType) ([]domain.Like, error) {
	args := m.Called(ctx, userID, t)
	return args.Get(0).([]domain.Like), args.Error(1)
}

type knownSongs map[uuid.UUID]bool

func (k knownSongs) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	return k[id], nil
}

type knownPlaylists map[uuid.UUID]bool

func (k knownPlaylists) GetByID(_ context.Context, id uuid.UUID) (*playlistDomain.Playlist, error) {
	if !k[id] {
		return nil, playlistDomain.ErrPlaylistNotFound
	}
	return &playlistDomain.Playlist{ID: id}, nil
}

func TestLikeService_LikeExistingSong(t *testing.T) {
	user, song := uuid.New(), uuid.New()
	repo := new(mockLikeRepo)
	repo.On("Exists", mock.Anything, user, song).Return(false, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(l *domain.Like) bool {
		return l.UserID == user && l.TargetID == song && l.TargetType == domain.TargetSong
	})).Return(nil)
	svc := NewLikeService(repo, knownSongs{song: true}, knownPlaylists{})

	like, err := svc.Like(context.Background(), user, CreateLikeRequest{TargetID: song.String(), TargetType: "song"})
	require.NoError(t, err)
	assert.Equal(t, domain.TargetSong, like.TargetType)
	repo.AssertExpectations(t)
}

func TestLikeService_LikeRejections(t *testing.T) {
	user, song, playlist := uuid.New(), uuid.New(), uuid.New()
	repo := new(mockLikeRepo)
	repo.On("Exists", mock.Anything, user, song).Return(true, nil)
	svc := NewLikeService(repo, knownSongs{song: true}, knownPlaylists{playlist: true})
	ctx := context.Background()

	_, err := svc.Like(ctx, user, CreateLikeRequest{TargetID: song.String(), TargetType: "album"})
	assert.ErrorIs(t, err, domain.ErrInvalidTargetType)

	_, err = svc.Like(ctx, user, CreateLikeRequest{TargetID: "nope", TargetType: "song"})
	var verrs validation.Errors
	assert.True(t, errors.As(err, &verrs))

	_, err = svc.Like(ctx, user, CreateLikeRequest{TargetID: uuid.NewString(), TargetType: "song"})
	assert.ErrorIs(t, err, domain.ErrTargetNotFound)

	_, err = svc.Like(ctx, user, CreateLikeRequest{TargetID: uuid.NewString(), TargetType: "playlist"})
	assert.ErrorIs(t, err, domain.ErrTargetNotFound)

	_, err = svc.Like(ctx, user, CreateLikeRequest{TargetID: song.String(), TargetType: "song"})
	assert.ErrorIs(t, err, domain.ErrAlreadyLiked)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLikeService_ListByUserAndTypeValidatesType(t *testing.T) {
	user := uuid.New()
	repo := new(mockLikeRepo)
	repo.On("ListByUserAndType", mock.Anything, user, domain.TargetPlaylist).Return([]domain.Like{{UserID: user}}, nil)
	svc := NewLikeService(repo, knownSongs{}, knownPlaylists{})

	likes, err := svc.ListByUserAndType(context.Background(), user, "playlist")
	require.NoError(t, err)
	assert.Len(t, likes, 1)

	_, err = svc.ListByUserAndType(context.Background(), user, "artist")
	assert.ErrorIs(t, err, domain.ErrInvalidTargetType)
}

type mockFollowRepo struct {
	mock.Mock
	domain.FollowRepository
}

func (m *mockFollowRepo) Create(ctx context.Context, f *domain.Follow) error {
	return m.Called(ctx, f).Error(0)
}

func (m *mockFollowRepo) Exists(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	args := m.Called(ctx, followerID, followingID)
	return args.Bool(0), args.Error(1)
}

func TestFollowService_Follow(t *testing.T) {
	follower, artist, already := uuid.New(), uuid.New(), uuid.New()
	repo := new(mockFollowRepo)
	repo.On("Exists", mock.Anything, follower, artist).Return(false, nil)
	repo.On("Exists", mock.Anything, follower, already).Return(true, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Follow")).Return(nil)
	svc := NewFollowService(repo)
	ctx := context.Background()

	f, err := svc.Follow(ctx, follower, CreateFollowRequest{FollowingID: artist.String(), FollowingType: "artist"})
	require.NoError(t, err)
	assert.Equal(t, domain.FollowingArtist, f.FollowingType)

	_, err = svc.Follow(ctx, follower, CreateFollowRequest{FollowingID: already.String(), FollowingType: "user"})
	assert.ErrorIs(t, err, domain.ErrAlreadyFollowing)

	_, err = svc.Follow(ctx, follower, CreateFollowRequest{FollowingID: artist.String(), FollowingType: "song"})
	assert.ErrorIs(t, err, domain.ErrInvalidFollowingType)

	repo.AssertNumberOfCalls(t, "Create", 1)
}
