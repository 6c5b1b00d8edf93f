package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/saransh1220/soundwave/internal/modules/adminlog/domain"
)

type PgAdminLogRepository struct {
	db *sqlx.DB
}

func NewAdminLogRepository(db *sqlx.DB) *PgAdminLogRepository {
	return &PgAdminLogRepository{db: db}
}

func (r *PgAdminLogRepository) Create(ctx context.Context, l *domain.AdminLog) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.Timestamp.IsZero() {
		l.Timestamp = time.Now()
	}
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO admin_logs (id, user_id, action, details, timestamp)
		VALUES (:id, :user_id, :action, :details, :timestamp)`, l)
	return err
}

func (r *PgAdminLogRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.AdminLog, error) {
	var l domain.AdminLog
	err := r.db.GetContext(ctx, &l, `SELECT * FROM admin_logs WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrAdminLogNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// List returns the newest entries first, optionally narrowed by action and
// acting user.
func (r *PgAdminLogRepository) List(ctx context.Context, filter domain.AdminLogFilter) ([]domain.AdminLog, int, error) {
	var rows []struct {
		domain.AdminLog
		TotalCount int `db:"total_count"`
	}

	query := `SELECT *, COUNT(*) OVER() AS total_count FROM admin_logs WHERE 1=1`
	args := []interface{}{}
	argID := 1

	if filter.Action != "" {
		query += fmt.Sprintf(" AND action = $%d", argID)
		args = append(args, filter.Action)
		argID++
	}
	if filter.UserID != nil {
		query += fmt.Sprintf(" AND user_id = $%d", argID)
		args = append(args, *filter.UserID)
		argID++
	}

	query += fmt.Sprintf(" ORDER BY timestamp DESC, id LIMIT $%d OFFSET $%d", argID, argID+1)
	args = append(args, filter.Limit, filter.Offset)

	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, err
	}
	logs := make([]domain.AdminLog, len(rows))
	for i := range rows {
		logs[i] = rows[i].AdminLog
	}
	if len(rows) == 0 {
		return logs, 0, nil
	}
	return logs, rows[0].TotalCount, nil
}

func (r *PgAdminLogRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.AdminLog, error) {
	logs := []domain.AdminLog{}
	err := r.db.SelectContext(ctx, &logs,
		`SELECT * FROM admin_logs WHERE user_id = $1 ORDER BY timestamp DESC`, userID)
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *PgAdminLogRepository) Update(ctx context.Context, l *domain.AdminLog) error {
	res, err := r.db.NamedExecContext(ctx, `
		UPDATE admin_logs SET user_id = :user_id, action = :action, details = :details
		WHERE id = :id`, l)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *PgAdminLogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM admin_logs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrAdminLogNotFound
	}
	return nil
}
