package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/saransh1220/soundwave/internal/modules/analytics/domain"
)

type PgStatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *PgStatsRepository {
	return &PgStatsRepository{db: db}
}

func (r *PgStatsRepository) Counts(ctx context.Context) (*domain.PlatformCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users) AS users,
			(SELECT COUNT(*) FROM songs) AS songs,
			(SELECT COUNT(*) FROM artists) AS artists,
			(SELECT COUNT(*) FROM albums) AS albums,
			(SELECT COUNT(*) FROM playlists) AS playlists,
			(SELECT COUNT(*) FROM genres) AS genres`

	var counts domain.PlatformCounts
	if err := r.db.GetContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("failed to count rows: %w", err)
	}
	return &counts, nil
}

func (r *PgStatsRepository) Songs(ctx context.Context) ([]domain.SongStat, error) {
	songs := []domain.SongStat{}
	query := `SELECT id, title, artist_id, genre, play_count, created_at FROM songs ORDER BY created_at, id`
	if err := r.db.SelectContext(ctx, &songs, query); err != nil {
		return nil, fmt.Errorf("failed to load songs: %w", err)
	}
	return songs, nil
}

func (r *PgStatsRepository) Users(ctx context.Context) ([]domain.UserStat, error) {
	users := []domain.UserStat{}
	query := `SELECT id, username, COALESCE(role, '') AS role, join_date, last_active FROM users ORDER BY join_date, id`
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	return users, nil
}

func (r *PgStatsRepository) Artists(ctx context.Context) ([]domain.ArtistStat, error) {
	artists := []domain.ArtistStat{}
	query := `SELECT id, name, genre FROM artists ORDER BY name, id`
	if err := r.db.SelectContext(ctx, &artists, query); err != nil {
		return nil, fmt.Errorf("failed to load artists: %w", err)
	}
	return artists, nil
}

func (r *PgStatsRepository) Playlists(ctx context.Context) ([]domain.PlaylistStat, error) {
	playlists := []domain.PlaylistStat{}
	query := `SELECT created_by, COALESCE(cardinality(song_ids), 0) AS song_count FROM playlists ORDER BY created_at, id`
	if err := r.db.SelectContext(ctx, &playlists, query); err != nil {
		return nil, fmt.Errorf("failed to load playlists: %w", err)
	}
	return playlists, nil
}
