package application

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/saransh1220/soundwave/internal/modules/catalog/domain"
)

type GenreService struct {
	repo domain.GenreRepository
}

func NewGenreService(repo domain.GenreRepository) *GenreService {
	return &GenreService{repo: repo}
}

// CreateGenre rejects names that already exist, ignoring case.
func (s *GenreService) CreateGenre(ctx context.Context, req GenreRequest) (*domain.Genre, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.repo.GetByName(ctx, req.Name); err == nil {
		return nil, domain.ErrGenreAlreadyExists
	} else if !errors.Is(err, domain.ErrGenreNotFound) {
		return nil, err
	}

	genre := &domain.Genre{Name: req.Name, Description: req.Description}
	if err := s.repo.Create(ctx, genre); err != nil {
		return nil, err
	}
	return genre, nil
}

func (s *GenreService) GetGenre(ctx context.Context, id uuid.UUID) (*domain.Genre, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *GenreService) ListGenres(ctx context.Context) ([]domain.Genre, error) {
	return s.repo.List(ctx)
}

func (s *GenreService) UpdateGenre(ctx context.Context, id uuid.UUID, req GenreRequest) (*domain.Genre, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	genre, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing, err := s.repo.GetByName(ctx, req.Name); err == nil && existing.ID != id {
		return nil, domain.ErrGenreAlreadyExists
	}
	genre.Name = req.Name
	genre.Description = req.Description
	if err := s.repo.Update(ctx, genre); err != nil {
		return nil, err
	}
	return genre, nil
}

func (s *GenreService) DeleteGenre(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
