package application

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/saransh1220/soundwave/internal/modules/catalog/domain"
)

type AlbumService struct {
	repo   domain.AlbumRepository
	images ImageUploader
}

func NewAlbumService(repo domain.AlbumRepository, images ImageUploader) *AlbumService {
	return &AlbumService{repo: repo, images: images}
}

func (s *AlbumService) CreateAlbum(ctx context.Context, req CreateAlbumRequest) (*domain.Album, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	album := &domain.Album{
		Title:       req.Title,
		ArtistID:    req.ArtistID,
		ReleaseDate: req.ReleaseDate,
		CoverArt:    req.CoverArt,
		Genre:       req.Genre,
	}
	if err := s.repo.Create(ctx, album); err != nil {
		return nil, fmt.Errorf("create album: %w", err)
	}
	return album, nil
}

func (s *AlbumService) GetAlbum(ctx context.Context, id uuid.UUID) (*domain.Album, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AlbumService) ListAlbums(ctx context.Context, search string, limit, offset int) ([]domain.Album, int, error) {
	return s.repo.List(ctx, search, limit, offset)
}

func (s *AlbumService) ListByArtist(ctx context.Context, artistID uuid.UUID) ([]domain.Album, error) {
	return s.repo.ListByArtist(ctx, artistID)
}

func (s *AlbumService) UpdateAlbum(ctx context.Context, id uuid.UUID, req UpdateAlbumRequest) (*domain.Album, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	album, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		album.Title = *req.Title
	}
	if req.ArtistID != nil {
		album.ArtistID = req.ArtistID
	}
	if req.ReleaseDate != nil {
		album.ReleaseDate = *req.ReleaseDate
	}
	if req.CoverArt != nil {
		album.CoverArt = *req.CoverArt
	}
	if req.Genre != nil {
		album.Genre = *req.Genre
	}
	if err := s.repo.Update(ctx, album); err != nil {
		return nil, err
	}
	return album, nil
}

func (s *AlbumService) DeleteAlbum(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *AlbumService) UploadCover(ctx context.Context, id uuid.UUID, file io.Reader) (*domain.Album, error) {
	album, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	url, err := s.images.UploadImage(ctx, file, "albums")
	if err != nil {
		return nil, err
	}
	album.CoverArt = url
	if err := s.repo.Update(ctx, album); err != nil {
		return nil, err
	}
	return album, nil
}
