package application

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/saransh1220/soundwave/internal/modules/playlist/domain"
)

// ImageUploader stores a resized image and returns its public URL.
type ImageUploader interface {
	UploadImage(ctx context.Context, file io.Reader, folder string) (string, error)
}

// Caller identifies who is acting on a playlist.
type Caller struct {
	UserID  uuid.UUID
	IsAdmin bool
}

func (c Caller) canModify(p *domain.Playlist) bool {
	return c.IsAdmin || p.CreatedBy == c.UserID
}

type PlaylistService struct {
	repo    domain.PlaylistRepository
	members *MembershipManager
	images  ImageUploader
}

func NewPlaylistService(repo domain.PlaylistRepository, members *MembershipManager, images ImageUploader) *PlaylistService {
	return &PlaylistService{repo: repo, members: members, images: images}
}

func (s *PlaylistService) Create(ctx context.Context, ownerID uuid.UUID, req CreatePlaylistRequest) (*domain.Playlist, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}
	p := &domain.Playlist{
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   ownerID,
		IsPublic:    isPublic,
		CoverImage:  req.CoverImage,
		SongIDs:     pq.StringArray{},
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create playlist: %w", err)
	}
	return p, nil
}

// Get returns the playlist with its songs resolved.
func (s *PlaylistService) Get(ctx context.Context, id uuid.UUID) (*domain.PlaylistWithSongs, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.members.Enrich(ctx, p)
}

func (s *PlaylistService) List(ctx context.Context, search string, limit, offset int) ([]domain.Playlist, int, error) {
	return s.repo.List(ctx, search, limit, offset)
}

func (s *PlaylistService) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.PlaylistWithSongs, error) {
	return s.members.ListForUser(ctx, userID)
}

func (s *PlaylistService) UpdateMetadata(ctx context.Context, caller Caller, id uuid.UUID, req UpdatePlaylistRequest) (*domain.Playlist, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	p, err := s.owned(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.IsPublic != nil {
		p.IsPublic = *req.IsPublic
	}
	if req.CoverImage != nil {
		p.CoverImage = *req.CoverImage
	}
	if err := s.repo.UpdateMetadata(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PlaylistService) Delete(ctx context.Context, caller Caller, id uuid.UUID) error {
	if _, err := s.owned(ctx, caller, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *PlaylistService) UploadCover(ctx context.Context, caller Caller, id uuid.UUID, file io.Reader) (*domain.Playlist, error) {
	p, err := s.owned(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	url, err := s.images.UploadImage(ctx, file, "playlists")
	if err != nil {
		return nil, err
	}
	p.CoverImage = url
	if err := s.repo.UpdateMetadata(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PlaylistService) AddSong(ctx context.Context, caller Caller, id, songID uuid.UUID) (*domain.Playlist, error) {
	p, err := s.owned(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	return s.members.AddSongTo(ctx, p, songID)
}

func (s *PlaylistService) AddSongs(ctx context.Context, caller Caller, id uuid.UUID, songIDs []uuid.UUID) (*domain.Playlist, int, error) {
	p, err := s.owned(ctx, caller, id)
	if err != nil {
		return nil, 0, err
	}
	return s.members.AddSongsTo(ctx, p, songIDs)
}

func (s *PlaylistService) RemoveSong(ctx context.Context, caller Caller, id, songID uuid.UUID) (*domain.Playlist, error) {
	p, err := s.owned(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	return s.members.RemoveSongFrom(ctx, p, songID)
}

// DeleteAny removes a playlist without an ownership check.
func (s *PlaylistService) DeleteAny(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *PlaylistService) owned(ctx context.Context, caller Caller, id uuid.UUID) (*domain.Playlist, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.canModify(p) {
		return nil, domain.ErrNotOwner
	}
	return p, nil
}
