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

type PgLikeRepository struct {
	db *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) *PgLikeRepository {
	return &PgLikeRepository{db: db}
}

// Create inserts the like. The (user_id, target_id) unique key turns a
// racing duplicate into ErrAlreadyLiked.
func (r *PgLikeRepository) Create(ctx context.Context, l *domain.Like) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO user_likes (id, user_id, target_id, target_type, created_at)
		VALUES (:id, :user_id, :target_id, :target_type, :created_at)`, l)
	if isUniqueViolation(err) {
		return domain.ErrAlreadyLiked
	}
	return err
}

func (r *PgLikeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Like, error) {
	var l domain.Like
	err := r.db.GetContext(ctx, &l, `SELECT * FROM user_likes WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrLikeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *PgLikeRepository) List(ctx context.Context) ([]domain.Like, error) {
	return r.selectLikes(ctx, `SELECT * FROM user_likes ORDER BY created_at DESC`)
}

func (r *PgLikeRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Like, error) {
	return r.selectLikes(ctx,
		`SELECT * FROM user_likes WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

func (r *PgLikeRepository) ListByTarget(ctx context.Context, targetID uuid.UUID) ([]domain.Like, error) {
	return r.selectLikes(ctx,
		`SELECT * FROM user_likes WHERE target_id = $1 ORDER BY created_at DESC`, targetID)
}

func (r *PgLikeRepository) ListByUserAndType(ctx context.Context, userID uuid.UUID, t domain.TargetType) ([]domain.Like, error) {
	return r.selectLikes(ctx,
		`SELECT * FROM user_likes WHERE user_id = $1 AND target_type = $2 ORDER BY created_at DESC`, userID, t)
}

func (r *PgLikeRepository) Exists(ctx context.Context, userID, targetID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM user_likes WHERE user_id = $1 AND target_id = $2)`, userID, targetID)
	return exists, err
}

func (r *PgLikeRepository) CountByTarget(ctx context.Context, targetID uuid.UUID) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM user_likes WHERE target_id = $1`, targetID)
	return n, err
}

func (r *PgLikeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM user_likes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrLikeNotFound)
}

func (r *PgLikeRepository) DeleteByUserAndTarget(ctx context.Context, userID, targetID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM user_likes WHERE user_id = $1 AND target_id = $2`, userID, targetID)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrLikeNotFound)
}

func (r *PgLikeRepository) selectLikes(ctx context.Context, query string, args ...interface{}) ([]domain.Like, error) {
	likes := []domain.Like{}
	if err := r.db.SelectContext(ctx, &likes, query, args...); err != nil {
		return nil, err
	}
	return likes, nil
}
