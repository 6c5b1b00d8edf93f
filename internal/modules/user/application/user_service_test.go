package application

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	authDomain "github.com/saransh1220/soundwave/internal/modules/auth/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memUsers struct {
	byID map[uuid.UUID]authDomain.User
}

func newMemUsers(users ...authDomain.User) *memUsers {
	m := &memUsers{byID: map[uuid.UUID]authDomain.User{}}
	for _, u := range users {
		m.byID[u.ID] = u
	}
	return m
}

func (m *memUsers) Create(_ context.Context, u *authDomain.User) error {
	for _, existing := range m.byID {
		if existing.Email == u.Email {
			return authDomain.ErrEmailAlreadyExists
		}
	}
	u.ID = uuid.New()
	u.JoinDate = time.Now()
	m.byID[u.ID] = *u
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id uuid.UUID) (*authDomain.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return nil, authDomain.ErrUserNotFound
	}
	return &u, nil
}

func (m *memUsers) GetByEmail(context.Context, string) (*authDomain.User, error) {
	return nil, authDomain.ErrUserNotFound
}

func (m *memUsers) GetByUsername(context.Context, string) (*authDomain.User, error) {
	return nil, authDomain.ErrUserNotFound
}

func (m *memUsers) ExistsByEmail(context.Context, string) (bool, error)    { return false, nil }
func (m *memUsers) ExistsByUsername(context.Context, string) (bool, error) { return false, nil }

func (m *memUsers) Update(_ context.Context, u *authDomain.User) error {
	if _, ok := m.byID[u.ID]; !ok {
		return authDomain.ErrUserNotFound
	}
	m.byID[u.ID] = *u
	return nil
}

func (m *memUsers) UpdateLastActive(context.Context, uuid.UUID, time.Time) error { return nil }
func (m *memUsers) SetActive(context.Context, uuid.UUID, bool) error             { return nil }

func (m *memUsers) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.byID[id]; !ok {
		return authDomain.ErrUserNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *memUsers) List(_ context.Context, f authDomain.UserFilter) ([]authDomain.User, int, error) {
	out := []authDomain.User{}
	for _, u := range m.byID {
		if f.Role == "" || string(u.Role) == f.Role {
			out = append(out, u)
		}
	}
	return out, len(out), nil
}

type stubImages struct{}

func (stubImages) UploadImage(_ context.Context, file io.Reader, folder string) (string, error) {
	_, _ = io.ReadAll(file)
	return "http://files/" + folder + "/me.jpg", nil
}

func TestUserService_UpdateProfile(t *testing.T) {
	id := uuid.New()
	repo := newMemUsers(authDomain.User{ID: id, Username: "neo", Role: authDomain.RoleUser})
	svc := NewUserService(repo, stubImages{})
	ctx := context.Background()

	name := "  Thomas  "
	user, err := svc.UpdateProfile(ctx, id, UpdateProfileRequest{DisplayName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Thomas", *user.DisplayName)
	assert.Nil(t, repo.byID[id].ProfilePicture)

	long := strings.Repeat("x", 101)
	_, err = svc.UpdateProfile(ctx, id, UpdateProfileRequest{DisplayName: &long})
	var verrs validation.Errors
	assert.ErrorAs(t, err, &verrs)

	_, err = svc.UpdateProfile(ctx, uuid.New(), UpdateProfileRequest{DisplayName: &name})
	assert.ErrorIs(t, err, authDomain.ErrUserNotFound)
}

func TestUserService_UploadProfilePicture(t *testing.T) {
	id := uuid.New()
	repo := newMemUsers(authDomain.User{ID: id, Username: "neo"})
	user, err := NewUserService(repo, stubImages{}).UploadProfilePicture(context.Background(), id, strings.NewReader("jpg"))
	require.NoError(t, err)
	require.NotNil(t, user.ProfilePicture)
	assert.Equal(t, "http://files/profiles/me.jpg", *repo.byID[id].ProfilePicture)
}

func TestUserService_CreateUser(t *testing.T) {
	repo := newMemUsers()
	svc := NewUserService(repo, stubImages{})
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, CreateUserRequest{
		Username: "trinity", Email: " Trinity@Example.com ", Password: "secret1", Role: "moderator",
	})
	require.NoError(t, err)
	assert.Equal(t, "trinity@example.com", user.Email)
	assert.Equal(t, authDomain.RoleModerator, user.Role)
	assert.Equal(t, "trinity", *user.DisplayName)
	assert.True(t, user.IsActive)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")))

	_, err = svc.CreateUser(ctx, CreateUserRequest{Username: "morpheus", Email: "trinity@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, authDomain.ErrEmailAlreadyExists)

	_, err = svc.CreateUser(ctx, CreateUserRequest{Username: "x", Email: "bad", Password: "1"})
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "username")
	assert.Contains(t, verrs, "email")
	assert.Contains(t, verrs, "password")
}

func TestUserService_CreateUserRejectsPasswordOverBcryptLimit(t *testing.T) {
	repo := newMemUsers()
	svc := NewUserService(repo, stubImages{})

	_, err := svc.CreateUser(context.Background(), CreateUserRequest{
		Username: "trinity", Email: "trinity@example.com", Password: strings.Repeat("p", 100),
	})
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "password")
	assert.Empty(t, repo.byID)

	user, err := svc.CreateUser(context.Background(), CreateUserRequest{
		Username: "trinity", Email: "trinity@example.com", Password: strings.Repeat("p", 72),
	})
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(strings.Repeat("p", 72))))
}

func TestUserService_UpdateUser(t *testing.T) {
	id := uuid.New()
	repo := newMemUsers(authDomain.User{ID: id, Username: "neo", Email: "neo@x.io", Role: authDomain.RoleUser, IsActive: true})
	svc := NewUserService(repo, stubImages{})
	ctx := context.Background()

	role, inactive := "admin", false
	user, err := svc.UpdateUser(ctx, id, UpdateUserRequest{Role: &role, IsActive: &inactive})
	require.NoError(t, err)
	assert.Equal(t, authDomain.RoleAdmin, user.Role)
	assert.False(t, repo.byID[id].IsActive)
	assert.Equal(t, "neo@x.io", repo.byID[id].Email)

	bogus := "overlord"
	_, err = svc.UpdateUser(ctx, id, UpdateUserRequest{Role: &bogus})
	assert.ErrorIs(t, err, authDomain.ErrInvalidRole)

	require.NoError(t, svc.DeleteUser(ctx, id))
	assert.ErrorIs(t, svc.DeleteUser(ctx, id), authDomain.ErrUserNotFound)
}
