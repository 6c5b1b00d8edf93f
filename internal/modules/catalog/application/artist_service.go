package application

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/saransh1220/soundwave/internal/modules/catalog/domain"
)

// ImageUploader stores a resized image and returns its public URL.
type ImageUploader interface {
	UploadImage(ctx context.Context, file io.Reader, folder string) (string, error)
}

type ArtistService struct {
	repo   domain.ArtistRepository
	images ImageUploader
}

func NewArtistService(repo domain.ArtistRepository, images ImageUploader) *ArtistService {
	return &ArtistService{repo: repo, images: images}
}

func (s *ArtistService) CreateArtist(ctx context.Context, req CreateArtistRequest) (*domain.Artist, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	artist := &domain.Artist{Name: req.Name, Bio: req.Bio, Genre: req.Genre, Picture: req.Picture}
	if err := s.repo.Create(ctx, artist); err != nil {
		return nil, fmt.Errorf("create artist: %w", err)
	}
	return artist, nil
}

func (s *ArtistService) GetArtist(ctx context.Context, id uuid.UUID) (*domain.Artist, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ArtistService) ListArtists(ctx context.Context, search string, limit, offset int) ([]domain.Artist, int, error) {
	return s.repo.List(ctx, search, limit, offset)
}

func (s *ArtistService) UpdateArtist(ctx context.Context, id uuid.UUID, req UpdateArtistRequest) (*domain.Artist, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	artist, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		artist.Name = *req.Name
	}
	if req.Bio != nil {
		artist.Bio = *req.Bio
	}
	if req.Genre != nil {
		artist.Genre = *req.Genre
	}
	if req.Picture != nil {
		artist.Picture = *req.Picture
	}
	if err := s.repo.Update(ctx, artist); err != nil {
		return nil, err
	}
	return artist, nil
}

func (s *ArtistService) DeleteArtist(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// UploadPicture stores a new artist picture and points the artist at it.
func (s *ArtistService) UploadPicture(ctx context.Context, id uuid.UUID, file io.Reader) (*domain.Artist, error) {
	artist, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	url, err := s.images.UploadImage(ctx, file, "artists")
	if err != nil {
		return nil, err
	}
	artist.Picture = url
	if err := s.repo.Update(ctx, artist); err != nil {
		return nil, err
	}
	return artist, nil
}
