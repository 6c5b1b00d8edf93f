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

type PgArtistRepository struct {
	db *sqlx.DB
}

func NewArtistRepository(db *sqlx.DB) *PgArtistRepository {
	return &PgArtistRepository{db: db}
}

func (r *PgArtistRepository) Create(ctx context.Context, artist *domain.Artist) error {
	if artist.ID == uuid.Nil {
		artist.ID = uuid.New()
	}
	now := time.Now()
	artist.CreatedAt, artist.UpdatedAt = now, now

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO artists (id, name, bio, genre, picture, created_at, updated_at)
		VALUES (:id, :name, :bio, :genre, :picture, :created_at, :updated_at)`, artist)
	return err
}

func (r *PgArtistRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Artist, error) {
	var artist domain.Artist
	err := r.db.GetContext(ctx, &artist, `SELECT * FROM artists WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrArtistNotFound
	}
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *PgArtistRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Artist, error) {
	artists := []domain.Artist{}
	if len(ids) == 0 {
		return artists, nil
	}
	query, args, err := inQuery(r.db, `SELECT * FROM artists WHERE id IN (?)`, ids)
	if err != nil {
		return nil, err
	}
	if err := r.db.SelectContext(ctx, &artists, query, args...); err != nil {
		return nil, err
	}
	return artists, nil
}

// List pages through artists by name, optionally filtered by a name substring.
func (r *PgArtistRepository) List(ctx context.Context, search string, limit, offset int) ([]domain.Artist, int, error) {
	var rows []struct {
		domain.Artist
		TotalCount int `db:"total_count"`
	}

	query := `SELECT *, COUNT(*) OVER() AS total_count FROM artists`
	args := []interface{}{}
	if search != "" {
		query += ` WHERE name ILIKE $1 ORDER BY name LIMIT $2 OFFSET $3`
		args = append(args, likePattern(search), limit, offset)
	} else {
		query += ` ORDER BY name LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}

	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, err
	}
	artists := make([]domain.Artist, len(rows))
	for i := range rows {
		artists[i] = rows[i].Artist
	}
	if len(rows) == 0 {
		return artists, 0, nil
	}
	return artists, rows[0].TotalCount, nil
}

func (r *PgArtistRepository) Update(ctx context.Context, artist *domain.Artist) error {
	artist.UpdatedAt = time.Now()
	res, err := r.db.NamedExecContext(ctx, `
		UPDATE artists
		SET name = :name, bio = :bio, genre = :genre, picture = :picture, updated_at = :updated_at
		WHERE id = :id`, artist)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrArtistNotFound)
}

func (r *PgArtistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM artists WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrArtistNotFound)
}
