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

type PgAlbumRepository struct {
	db *sqlx.DB
}

func NewAlbumRepository(db *sqlx.DB) *PgAlbumRepository {
	return &PgAlbumRepository{db: db}
}

func (r *PgAlbumRepository) Create(ctx context.Context, album *domain.Album) error {
	if album.ID == uuid.Nil {
		album.ID = uuid.New()
	}
	now := time.Now()
	album.CreatedAt, album.UpdatedAt = now, now

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO albums (id, title, artist_id, release_date, cover_art, genre, created_at, updated_at)
		VALUES (:id, :title, :artist_id, :release_date, :cover_art, :genre, :created_at, :updated_at)`, album)
	return err
}

func (r *PgAlbumRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Album, error) {
	var album domain.Album
	err := r.db.GetContext(ctx, &album, `SELECT * FROM albums WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrAlbumNotFound
	}
	if err != nil {
		return nil, err
	}
	return &album, nil
}

func (r *PgAlbumRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Album, error) {
	albums := []domain.Album{}
	if len(ids) == 0 {
		return albums, nil
	}
	query, args, err := inQuery(r.db, `SELECT * FROM albums WHERE id IN (?)`, ids)
	if err != nil {
		return nil, err
	}
	if err := r.db.SelectContext(ctx, &albums, query, args...); err != nil {
		return nil, err
	}
	return albums, nil
}

func (r *PgAlbumRepository) List(ctx context.Context, search string, limit, offset int) ([]domain.Album, int, error) {
	var rows []struct {
		domain.Album
		TotalCount int `db:"total_count"`
	}

	query := `SELECT *, COUNT(*) OVER() AS total_count FROM albums`
	args := []interface{}{}
	if search != "" {
		query += ` WHERE title ILIKE $1 ORDER BY title LIMIT $2 OFFSET $3`
		args = append(args, likePattern(search), limit, offset)
	} else {
		query += ` ORDER BY title LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}

	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, err
	}
	albums := make([]domain.Album, len(rows))
	for i := range rows {
		albums[i] = rows[i].Album
	}
	if len(rows) == 0 {
		return albums, 0, nil
	}
	return albums, rows[0].TotalCount, nil
}

func (r *PgAlbumRepository) ListByArtist(ctx context.Context, artistID uuid.UUID) ([]domain.Album, error) {
	albums := []domain.Album{}
	err := r.db.SelectContext(ctx, &albums,
		`SELECT * FROM albums WHERE artist_id = $1 ORDER BY release_date DESC, title`, artistID)
	if err != nil {
		return nil, err
	}
	return albums, nil
}

func (r *PgAlbumRepository) Update(ctx context.Context, album *domain.Album) error {
	album.UpdatedAt = time.Now()
	res, err := r.db.NamedExecContext(ctx, `
		UPDATE albums
		SET title = :title, artist_id = :artist_id, release_date = :release_date,
		    cover_art = :cover_art, genre = :genre, updated_at = :updated_at
		WHERE id = :id`, album)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrAlbumNotFound)
}

func (r *PgAlbumRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM albums WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrAlbumNotFound)
}
