package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/saransh1220/soundwave/internal/modules/auth/domain"
	"github.com/saransh1220/soundwave/internal/modules/auth/infrastructure/persistence/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(sqlDB, "sqlmock"), mock, func() { _ = sqlDB.Close() }
}

var userColumns = []string{
	"id", "username", "email", "password_hash", "display_name", "profile_picture",
	"role", "is_active", "join_date", "last_active", "created_at", "updated_at",
}

func userRow(rows *sqlmock.Rows, id uuid.UUID, username, email string, role domain.Role) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(id.String(), username, email, "hash", nil, nil, string(role), true, now, nil, now, now)
}

func TestPgUserRepository_Create(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	u := &domain.User{Username: "dj", Email: "dj@example.com", PasswordHash: "hash", Role: domain.RoleUser, IsActive: true}
	mock.ExpectExec("INSERT INTO users").WillReturnResult(sqlmock.NewResult(1, 1))
	require.NoError(t, repo.Create(ctx, u))
	assert.NotEqual(t, uuid.Nil, u.ID)
	assert.False(t, u.JoinDate.IsZero())

	mock.ExpectExec("INSERT INTO users").WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})
	assert.ErrorIs(t, repo.Create(ctx, u), domain.ErrEmailAlreadyExists)

	mock.ExpectExec("INSERT INTO users").WillReturnError(&pq.Error{Code: "23505", Constraint: "users_username_key"})
	assert.ErrorIs(t, repo.Create(ctx, u), domain.ErrUsernameAlreadyExists)

	mock.ExpectExec("INSERT INTO users").WillReturnError(&pq.Error{Code: "23505"})
	assert.ErrorIs(t, repo.Create(ctx, u), domain.ErrUserAlreadyExists)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgUserRepository_Lookups(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := postgres.NewUserRepository(db)
	ctx := context.Background()
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM users WHERE email = LOWER\(\$1\)`).
		WithArgs("DJ@example.com").
		WillReturnRows(userRow(sqlmock.NewRows(userColumns), id, "dj", "dj@example.com", domain.RoleAdmin))
	got, err := repo.GetByEmail(ctx, "DJ@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, domain.RoleAdmin, got.Role)

	mock.ExpectQuery(`SELECT \* FROM users WHERE username = \$1`).WithArgs("ghost").WillReturnError(sql.ErrNoRows)
	got, err = repo.GetByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Nil(t, got)

	mock.ExpectQuery(`SELECT \* FROM users WHERE id = \$1`).WithArgs(id).
		WillReturnRows(userRow(sqlmock.NewRows(userColumns), id, "dj", "dj@example.com", domain.RoleUser))
	got, err = repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "dj", got.Username)

	mock.ExpectQuery(`SELECT EXISTS`).WithArgs("dj@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	exists, err := repo.ExistsByEmail(ctx, "dj@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectQuery(`SELECT EXISTS`).WithArgs("newbie").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	exists, err = repo.ExistsByUsername(ctx, "newbie")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgUserRepository_GetByIDs(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := postgres.NewUserRepository(db)

	users, err := repo.GetByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, users)

	a, b := uuid.New(), uuid.New()
	rows := sqlmock.NewRows(userColumns)
	userRow(rows, a, "a", "a@x.com", domain.RoleUser)
	mock.ExpectQuery(`SELECT \* FROM users WHERE id IN \(\?, \?\)`).WithArgs(a, b).WillReturnRows(rows)

	users, err = repo.GetByIDs(context.Background(), []uuid.UUID{a, b})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, a, users[0].ID)
}

func TestPgUserRepository_Mutations(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := postgres.NewUserRepository(db)
	ctx := context.Background()
	id := uuid.New()

	mock.ExpectExec("UPDATE users SET").WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Update(ctx, &domain.User{ID: id, Username: "x", Email: "x@x.com", Role: domain.RoleUser}))

	mock.ExpectExec("UPDATE users SET").WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Update(ctx, &domain.User{ID: id}), domain.ErrUserNotFound)

	mock.ExpectExec(`UPDATE users SET last_active = \$1 WHERE id = \$2`).WithArgs(sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.UpdateLastActive(ctx, id, time.Now()))

	mock.ExpectExec(`UPDATE users SET is_active = \$1`).WithArgs(false, sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.SetActive(ctx, id, false))

	mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(ctx, id), domain.ErrUserNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgUserRepository_List(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	cols := append(append([]string{}, userColumns...), "total_count")
	now := time.Now()
	rows := sqlmock.NewRows(cols).
		AddRow(uuid.New().String(), "a", "a@x.com", "h", nil, nil, "USER", true, now, nil, now, now, 12).
		AddRow(uuid.New().String(), "b", "b@x.com", "h", nil, nil, "USER", true, now, nil, now, now, 12)
	mock.ExpectQuery(`SELECT \*, COUNT\(\*\) OVER\(\) AS total_count FROM users WHERE 1=1 AND \(username ILIKE \$1 OR email ILIKE \$1\)`).
		WithArgs("%x.com%", 2, 0).
		WillReturnRows(rows)

	users, total, err := repo.List(ctx, domain.UserFilter{Search: "x.com", Role: "ADMIN", Limit: 2})
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, 12, total)

	mock.ExpectQuery(`AND role = \$1`).WithArgs("ADMIN", 10, 10).WillReturnRows(sqlmock.NewRows(cols))
	users, total, err = repo.List(ctx, domain.UserFilter{Role: "ADMIN", Limit: 10, Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, users)
	assert.Zero(t, total)

	require.NoError(t, mock.ExpectationsWereMet())
}
