package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/saransh1220/soundwave/internal/modules/catalog/domain"
)

type PgGenreRepository struct {
	db *sqlx.DB
}

func NewGenreRepository(db *sqlx.DB) *PgGenreRepository {
	return &PgGenreRepository{db: db}
}

func (r *PgGenreRepository) Create(ctx context.Context, genre *domain.Genre) error {
	if genre.ID == uuid.Nil {
		genre.ID = uuid.New()
	}
	genre.CreatedAt = time.Now()

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO genres (id, name, description, created_at)
		VALUES (:id, :name, :description, :created_at)`, genre)
	if isUniqueViolation(err) {
		return domain.ErrGenreAlreadyExists
	}
	return err
}

func (r *PgGenreRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Genre, error) {
	return r.getOne(ctx, `SELECT * FROM genres WHERE id = $1`, id)
}

// GetByName matches case-insensitively.
func (r *PgGenreRepository) GetByName(ctx context.Context, name string) (*domain.Genre, error) {
	return r.getOne(ctx, `SELECT * FROM genres WHERE LOWER(name) = LOWER($1)`, name)
}

func (r *PgGenreRepository) List(ctx context.Context) ([]domain.Genre, error) {
	genres := []domain.Genre{}
	if err := r.db.SelectContext(ctx, &genres, `SELECT * FROM genres ORDER BY name`); err != nil {
		return nil, err
	}
	return genres, nil
}

func (r *PgGenreRepository) Update(ctx context.Context, genre *domain.Genre) error {
	res, err := r.db.NamedExecContext(ctx,
		`UPDATE genres SET name = :name, description = :description WHERE id = :id`, genre)
	if isUniqueViolation(err) {
		return domain.ErrGenreAlreadyExists
	}
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrGenreNotFound)
}

func (r *PgGenreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM genres WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrGenreNotFound)
}

func (r *PgGenreRepository) getOne(ctx context.Context, query string, arg interface{}) (*domain.Genre, error) {
	var genre domain.Genre
	err := r.db.GetContext(ctx, &genre, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrGenreNotFound
	}
	if err != nil {
		return nil, err
	}
	return &genre, nil
}
