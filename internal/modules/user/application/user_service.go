package application

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	authDomain "github.com/saransh1220/soundwave/internal/modules/auth/domain"
	"golang.org/x/crypto/bcrypt"
)

// ImageUploader stores a resized image and returns its public URL.
type ImageUploader interface {
	UploadImage(ctx context.Context, file io.Reader, folder string) (string, error)
}

type UserService struct {
	repo   authDomain.UserRepository
	images ImageUploader
}

func NewUserService(repo authDomain.UserRepository, images ImageUploader) *UserService {
	return &UserService{repo: repo, images: images}
}

func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*authDomain.User, error) {
	return s.repo.GetByID(ctx, userID)
}

// UpdateProfile changes the caller's display name and picture.
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*authDomain.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if req.DisplayName != nil {
		name := strings.TrimSpace(*req.DisplayName)
		user.DisplayName = &name
	}
	if req.ProfilePicture != nil {
		user.ProfilePicture = req.ProfilePicture
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) UploadProfilePicture(ctx context.Context, userID uuid.UUID, file io.Reader) (*authDomain.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	url, err := s.images.UploadImage(ctx, file, "profiles")
	if err != nil {
		return nil, err
	}
	user.ProfilePicture = &url
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) CreateUser(ctx context.Context, req CreateUserRequest) (*authDomain.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	role, err := authDomain.ParseRole(req.Role)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	displayName := req.DisplayName
	if displayName == "" {
		displayName = req.Username
	}

	user := &authDomain.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		DisplayName:  &displayName,
		Role:         role,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*authDomain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context, filter authDomain.UserFilter) ([]authDomain.User, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*authDomain.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		user.Username = strings.TrimSpace(*req.Username)
	}
	if req.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.DisplayName != nil {
		user.DisplayName = req.DisplayName
	}
	if req.ProfilePicture != nil {
		user.ProfilePicture = req.ProfilePicture
	}
	if req.Role != nil {
		role, err := authDomain.ParseRole(*req.Role)
		if err != nil {
			return nil, err
		}
		user.Role = role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
