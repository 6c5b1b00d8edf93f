package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/saransh1220/soundwave/internal/modules/playlist/domain"
)

type PgPlaylistRepository struct {
	db *sqlx.DB
}

func NewPlaylistRepository(db *sqlx.DB) *PgPlaylistRepository {
	return &PgPlaylistRepository{db: db}
}

func (r *PgPlaylistRepository) Create(ctx context.Context, p *domain.Playlist) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.SongIDs == nil {
		p.SongIDs = pq.StringArray{}
	}
	now := time.Now()
	p.CreatedAt, p.UpdatedAt = now, now
	p.Version = 1

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO playlists (
			id, name, description, created_by, is_public, cover_image,
			song_ids, version, created_at, updated_at
		) VALUES (
			:id, :name, :description, :created_by, :is_public, :cover_image,
			:song_ids, :version, :created_at, :updated_at
		)`, p)
	return err
}

func (r *PgPlaylistRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Playlist, error) {
	var p domain.Playlist
	err := r.db.GetContext(ctx, &p, `SELECT * FROM playlists WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPlaylistNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List pages through playlists by name, optionally filtered by a name
// substring.
func (r *PgPlaylistRepository) List(ctx context.Context, search string, limit, offset int) ([]domain.Playlist, int, error) {
	var rows []struct {
		domain.Playlist
		TotalCount int `db:"total_count"`
	}

	query := `SELECT *, COUNT(*) OVER() AS total_count FROM playlists`
	args := []interface{}{}
	if search != "" {
		query += ` WHERE name ILIKE $1 ORDER BY updated_at DESC, id LIMIT $2 OFFSET $3`
		args = append(args, "%"+search+"%", limit, offset)
	} else {
		query += ` ORDER BY updated_at DESC, id LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}

	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, err
	}
	playlists := make([]domain.Playlist, len(rows))
	for i := range rows {
		playlists[i] = rows[i].Playlist
	}
	if len(rows) == 0 {
		return playlists, 0, nil
	}
	return playlists, rows[0].TotalCount, nil
}

func (r *PgPlaylistRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Playlist, error) {
	playlists := []domain.Playlist{}
	err := r.db.SelectContext(ctx, &playlists,
		`SELECT * FROM playlists WHERE created_by = $1 ORDER BY created_at`, ownerID)
	if err != nil {
		return nil, err
	}
	return playlists, nil
}

func (r *PgPlaylistRepository) UpdateMembership(ctx context.Context, p *domain.Playlist) error {
	res, err := r.db.NamedExecContext(ctx, `
		UPDATE playlists
		SET song_ids = :song_ids, updated_at = :updated_at, version = version + 1
		WHERE id = :id AND version = :version`, p)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrVersionConflict
	}
	p.Version++
	return nil
}

func (r *PgPlaylistRepository) UpdateMetadata(ctx context.Context, p *domain.Playlist) error {
	p.UpdatedAt = time.Now()
	res, err := r.db.NamedExecContext(ctx, `
		UPDATE playlists
		SET name = :name, description = :description, cover_image = :cover_image,
		    is_public = :is_public, updated_at = :updated_at
		WHERE id = :id`, p)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrPlaylistNotFound)
}

func (r *PgPlaylistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM playlists WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrPlaylistNotFound)
}

func requireRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
