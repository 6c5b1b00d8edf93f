package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/saransh1220/soundwave/internal/modules/social/domain"
)

type PgFollowRepository struct {
	db *sqlx.DB
}

func NewFollowRepository(db *sqlx.DB) *PgFollowRepository {
	return &PgFollowRepository{db: db}
}

func (r *PgFollowRepository) Create(ctx context.Context, f *domain.Follow) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now()
	}
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO user_follows (id, follower_id, following_id, following_type, created_at)
		VALUES (:id, :follower_id, :following_id, :following_type, :created_at)`, f)
	if isUniqueViolation(err) {
		return domain.ErrAlreadyFollowing
	}
	return err
}

func (r *PgFollowRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Follow, error) {
	var f domain.Follow
	err := r.db.GetContext(ctx, &f, `SELECT * FROM user_follows WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrFollowNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *PgFollowRepository) List(ctx context.Context) ([]domain.Follow, error) {
	return r.selectFollows(ctx, `SELECT * FROM user_follows ORDER BY created_at DESC`)
}

func (r *PgFollowRepository) ListByFollower(ctx context.Context, followerID uuid.UUID) ([]domain.Follow, error) {
	return r.selectFollows(ctx,
		`SELECT * FROM user_follows WHERE follower_id = $1 ORDER BY created_at DESC`, followerID)
}

func (r *PgFollowRepository) ListByFollowing(ctx context.Context, followingID uuid.UUID) ([]domain.Follow, error) {
	return r.selectFollows(ctx,
		`SELECT * FROM user_follows WHERE following_id = $1 ORDER BY created_at DESC`, followingID)
}

func (r *PgFollowRepository) Exists(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM user_follows WHERE follower_id = $1 AND following_id = $2)`, followerID, followingID)
	return exists, err
}

func (r *PgFollowRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM user_follows WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrFollowNotFound)
}

func (r *PgFollowRepository) DeleteByPair(ctx context.Context, followerID, followingID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM user_follows WHERE follower_id = $1 AND following_id = $2`, followerID, followingID)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrFollowNotFound)
}

func (r *PgFollowRepository) selectFollows(ctx context.Context, query string, args ...interface{}) ([]domain.Follow, error) {
	follows := []domain.Follow{}
	if err := r.db.SelectContext(ctx, &follows, query, args...); err != nil {
		return nil, err
	}
	return follows, nil
}
