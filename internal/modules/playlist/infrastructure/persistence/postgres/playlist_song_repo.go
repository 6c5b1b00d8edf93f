package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/saransh1220/soundwave/internal/modules/playlist/domain"
)

type PgPlaylistSongRepository struct {
	db *sqlx.DB
}

func NewPlaylistSongRepository(db *sqlx.DB) *PgPlaylistSongRepository {
	return &PgPlaylistSongRepository{db: db}
}

func (r *PgPlaylistSongRepository) Create(ctx context.Context, e *domain.PlaylistSong) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.AddedAt.IsZero() {
		e.AddedAt = time.Now()
	}
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO playlist_songs (id, playlist_id, song_id, added_by, added_at, position)
		VALUES (:id, :playlist_id, :song_id, :added_by, :added_at, :position)`, e)
	return err
}

func (r *PgPlaylistSongRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.PlaylistSong, error) {
	var e domain.PlaylistSong
	err := r.db.GetContext(ctx, &e, `SELECT * FROM playlist_songs WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PgPlaylistSongRepository) List(ctx context.Context) ([]domain.PlaylistSong, error) {
	return r.selectEntries(ctx, `SELECT * FROM playlist_songs ORDER BY added_at`)
}

func (r *PgPlaylistSongRepository) ListByPlaylist(ctx context.Context, playlistID uuid.UUID) ([]domain.PlaylistSong, error) {
	return r.selectEntries(ctx,
		`SELECT * FROM playlist_songs WHERE playlist_id = $1 ORDER BY position, added_at`, playlistID)
}

func (r *PgPlaylistSongRepository) ListBySong(ctx context.Context, songID uuid.UUID) ([]domain.PlaylistSong, error) {
	return r.selectEntries(ctx,
		`SELECT * FROM playlist_songs WHERE song_id = $1 ORDER BY added_at`, songID)
}

func (r *PgPlaylistSongRepository) CountByPlaylist(ctx context.Context, playlistID uuid.UUID) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM playlist_songs WHERE playlist_id = $1`, playlistID)
	return n, err
}

func (r *PgPlaylistSongRepository) Update(ctx context.Context, e *domain.PlaylistSong) error {
	res, err := r.db.NamedExecContext(ctx, `
		UPDATE playlist_songs
		SET playlist_id = :playlist_id, song_id = :song_id, added_by = :added_by, position = :position
		WHERE id = :id`, e)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrEntryNotFound)
}

func (r *PgPlaylistSongRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM playlist_songs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrEntryNotFound)
}

func (r *PgPlaylistSongRepository) DeleteByPair(ctx context.Context, playlistID, songID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM playlist_songs WHERE playlist_id = $1 AND song_id = $2`, playlistID, songID)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrEntryNotFound)
}

func (r *PgPlaylistSongRepository) DeleteAllForPlaylist(ctx context.Context, playlistID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM playlist_songs WHERE playlist_id = $1`, playlistID)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrEntryNotFound)
}

func (r *PgPlaylistSongRepository) selectEntries(ctx context.Context, query string, args ...interface{}) ([]domain.PlaylistSong, error) {
	entries := []domain.PlaylistSong{}
	if err := r.db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, err
	}
	return entries, nil
}
