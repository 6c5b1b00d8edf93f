package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/saransh1220/soundwave/internal/modules/auth/domain"
)

type PgUserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a Postgres-backed user repository.
func NewUserRepository(db *sqlx.DB) *PgUserRepository {
	return &PgUserRepository{db: db}
}

// Create inserts a user. Unique violations on username or email map to
// ErrUsernameAlreadyExists / ErrEmailAlreadyExists.
func (r *PgUserRepository) Create(ctx context.Context, user *domain.User) error {
	now := time.Now()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.JoinDate.IsZero() {
		user.JoinDate = now
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = now
	}

	query := `
		INSERT INTO users (
			id, username, email, password_hash, display_name, profile_picture,
			role, is_active, join_date, last_active, created_at, updated_at
		) VALUES (
			:id, :username, :email, :password_hash, :display_name, :profile_picture,
			:role, :is_active, :join_date, :last_active, :created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, user)
	return mapUniqueViolation(err)
}

func (r *PgUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, `SELECT * FROM users WHERE id = $1`, id)
}

// GetByEmail matches case-insensitively; emails are stored lowercased.
func (r *PgUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT * FROM users WHERE email = LOWER($1)`, email)
}

func (r *PgUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT * FROM users WHERE username = $1`, username)
}

// GetByIDs bulk-loads users; missing ids are simply absent from the result.
func (r *PgUserRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	users := []domain.User{}
	if len(ids) == 0 {
		return users, nil
	}
	query, args, err := sqlx.In(`SELECT * FROM users WHERE id IN (?)`, ids)
	if err != nil {
		return nil, err
	}
	if err := r.db.SelectContext(ctx, &users, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *PgUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM users WHERE email = LOWER($1))`, email)
	return exists, err
}

func (r *PgUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username)
	return exists, err
}

// Update overwrites the mutable profile and role fields of a user.
func (r *PgUserRepository) Update(ctx context.Context, user *domain.User) error {
	user.UpdatedAt = time.Now()
	query := `
		UPDATE users SET
			username = :username,
			email = :email,
			display_name = :display_name,
			profile_picture = :profile_picture,
			role = :role,
			is_active = :is_active,
			updated_at = :updated_at
		WHERE id = :id`

	res, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return mapUniqueViolation(err)
	}
	return requireRow(res)
}

func (r *PgUserRepository) UpdateLastActive(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET last_active = $1 WHERE id = $2`, at, id)
	return err
}

func (r *PgUserRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET is_active = $1, updated_at = $2 WHERE id = $3`, active, time.Now(), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *PgUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// List pages through users. Search matches username or email substrings and
// takes precedence over the role filter.
func (r *PgUserRepository) List(ctx context.Context, filter domain.UserFilter) ([]domain.User, int, error) {
	var results []struct {
		domain.User
		TotalCount int `db:"total_count"`
	}

	query := `SELECT *, COUNT(*) OVER() AS total_count FROM users WHERE 1=1`
	args := []interface{}{}
	argID := 1

	if filter.Search != "" {
		query += fmt.Sprintf(" AND (username ILIKE $%d OR email ILIKE $%d)", argID, argID)
		args = append(args, "%"+filter.Search+"%")
		argID++
	} else if filter.Role != "" {
		query += fmt.Sprintf(" AND role = $%d", argID)
		args = append(args, filter.Role)
		argID++
	}

	query += fmt.Sprintf(" ORDER BY join_date DESC LIMIT $%d OFFSET $%d", argID, argID+1)
	args = append(args, filter.Limit, filter.Offset)

	if err := r.db.SelectContext(ctx, &results, query, args...); err != nil {
		return nil, 0, err
	}
	if len(results) == 0 {
		return []domain.User{}, 0, nil
	}

	users := make([]domain.User, len(results))
	for i := range results {
		users[i] = results[i].User
	}
	return users, results[0].TotalCount, nil
}

func (r *PgUserRepository) getOne(ctx context.Context, query string, arg interface{}) (*domain.User, error) {
	user := &domain.User{}
	err := r.db.GetContext(ctx, user, query, arg)
	if err == sql.ErrNoRows {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func mapUniqueViolation(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
		switch pqErr.Constraint {
		case "users_email_key":
			return domain.ErrEmailAlreadyExists
		case "users_username_key":
			return domain.ErrUsernameAlreadyExists
		}
		return domain.ErrUserAlreadyExists
	}
	return err
}

func requireRow(res sql.Result) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
