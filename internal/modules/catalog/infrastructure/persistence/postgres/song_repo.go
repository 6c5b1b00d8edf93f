package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/saransh1220/soundwave/internal/modules/catalog/domain"
)

type PgSongRepository struct {
	db *sqlx.DB
}

func NewSongRepository(db *sqlx.DB) *PgSongRepository {
	return &PgSongRepository{db: db}
}

func (r *PgSongRepository) Create(ctx context.Context, song *domain.Song) error {
	if song.ID == uuid.Nil {
		song.ID = uuid.New()
	}
	now := time.Now()
	song.CreatedAt, song.UpdatedAt = now, now
	if song.PlayCount < 0 {
		song.PlayCount = 0
	}

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO songs (
			id, title, artist_id, album_id, duration, file_url, genre,
			play_count, created_at, updated_at
		) VALUES (
			:id, :title, :artist_id, :album_id, :duration, :file_url, :genre,
			:play_count, :created_at, :updated_at
		)`, song)
	return err
}

func (r *PgSongRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Song, error) {
	var song domain.Song
	err := r.db.GetContext(ctx, &song, `SELECT * FROM songs WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrSongNotFound
	}
	if err != nil {
		return nil, err
	}
	return &song, nil
}

// GetByIDs bulk-loads songs; ids with no row are absent from the result.
func (r *PgSongRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Song, error) {
	songs := []domain.Song{}
	if len(ids) == 0 {
		return songs, nil
	}
	query, args, err := inQuery(r.db, `SELECT * FROM songs WHERE id IN (?)`, ids)
	if err != nil {
		return nil, err
	}
	if err := r.db.SelectContext(ctx, &songs, query, args...); err != nil {
		return nil, err
	}
	return songs, nil
}

func (r *PgSongRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM songs WHERE id = $1)`, id)
	return exists, err
}

// List pages through songs, newest first.
func (r *PgSongRepository) List(ctx context.Context, filter domain.SongFilter) ([]domain.Song, int, error) {
	var rows []struct {
		domain.Song
		TotalCount int `db:"total_count"`
	}

	query := `SELECT *, COUNT(*) OVER() AS total_count FROM songs WHERE 1=1`
	args := []interface{}{}
	argID := 1

	if filter.Search != "" {
		query += fmt.Sprintf(" AND title ILIKE $%d", argID)
		args = append(args, likePattern(filter.Search))
		argID++
	}
	if filter.Genre != "" {
		query += fmt.Sprintf(" AND LOWER(genre) = LOWER($%d)", argID)
		args = append(args, filter.Genre)
		argID++
	}
	if filter.ArtistID != nil {
		query += fmt.Sprintf(" AND artist_id = $%d", argID)
		args = append(args, *filter.ArtistID)
		argID++
	}
	if filter.AlbumID != nil {
		query += fmt.Sprintf(" AND album_id = $%d", argID)
		args = append(args, *filter.AlbumID)
		argID++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d", argID, argID+1)
	args = append(args, filter.Limit, filter.Offset)

	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, err
	}
	songs := make([]domain.Song, len(rows))
	for i := range rows {
		songs[i] = rows[i].Song
	}
	if len(rows) == 0 {
		return songs, 0, nil
	}
	return songs, rows[0].TotalCount, nil
}

// SongIDs returns the ids of every song of the filter's artist or album.
func (r *PgSongRepository) SongIDs(ctx context.Context, filter domain.SongFilter) ([]uuid.UUID, error) {
	query := `SELECT id FROM songs WHERE 1=1`
	args := []interface{}{}
	if filter.ArtistID != nil {
		args = append(args, *filter.ArtistID)
		query += fmt.Sprintf(" AND artist_id = $%d", len(args))
	}
	if filter.AlbumID != nil {
		args = append(args, *filter.AlbumID)
		query += fmt.Sprintf(" AND album_id = $%d", len(args))
	}
	if len(args) == 0 {
		return nil, nil
	}

	ids := []uuid.UUID{}
	if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, err
	}
	return ids, nil
}

// Update overwrites the editable fields. play_count is only changed by
// IncrementPlayCount.
func (r *PgSongRepository) Update(ctx context.Context, song *domain.Song) error {
	song.UpdatedAt = time.Now()
	res, err := r.db.NamedExecContext(ctx, `
		UPDATE songs
		SET title = :title, artist_id = :artist_id, album_id = :album_id,
		    duration = :duration, file_url = :file_url, genre = :genre,
		    updated_at = :updated_at
		WHERE id = :id`, song)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrSongNotFound)
}

func (r *PgSongRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM songs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrSongNotFound)
}

// IncrementPlayCount bumps play_count atomically and returns the new value.
func (r *PgSongRepository) IncrementPlayCount(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count,
		`UPDATE songs SET play_count = play_count + 1 WHERE id = $1 RETURNING play_count`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.ErrSongNotFound
	}
	return count, err
}
