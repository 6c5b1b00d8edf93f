package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saransh1220/soundwave/internal/modules/auth/domain"
	"github.com/saransh1220/soundwave/internal/modules/auth/infrastructure/jwt"
	"github.com/saransh1220/soundwave/internal/shared/infrastructure/logging"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
)

// AuthService provides authentication operations
type AuthService struct {
	repo                 domain.UserRepository
	jwtSecret            string
	jwtExpiry            time.Duration
	googleTokenValidator func(ctx context.Context, token string, audience string) (*idtoken.Payload, error)
	now                  func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(repo domain.UserRepository, jwtSecret string, jwtExpiry time.Duration) *AuthService {
	return &AuthService{
		repo:                 repo,
		jwtSecret:            jwtSecret,
		jwtExpiry:            jwtExpiry,
		googleTokenValidator: idtoken.Validate,
		now:                  time.Now,
	}
}

// Register validates the request, rejects a taken email or username before
// writing anything, and creates a USER account.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	taken, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return nil, domain.ErrEmailAlreadyExists
	}

	taken, err = s.repo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if taken {
		return nil, domain.ErrUsernameAlreadyExists
	}

	hashedPass, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	displayName := req.DisplayName
	if displayName == "" {
		displayName = req.Username
	}

	now := s.now()
	user := &domain.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hashedPass),
		DisplayName:  &displayName,
		Role:         domain.RoleUser,
		IsActive:     true,
		JoinDate:     now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issue(user)
}

// Login authenticates by username first, then by email.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	req.Username = strings.TrimSpace(req.Username)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByUsername(ctx, req.Username)
	if errors.Is(err, domain.ErrUserNotFound) {
		user, err = s.repo.GetByEmail(ctx, req.Username)
	}
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}

	s.touch(ctx, user)
	return s.issue(user)
}

// GoogleLogin signs in with a Google ID token, creating the account on first use.
func (s *AuthService) GoogleLogin(ctx context.Context, googleClientID string, req GoogleLoginRequest) (*AuthResult, error) {
	log := logging.FromContext(ctx)

	validate := s.googleTokenValidator
	if validate == nil {
		validate = idtoken.Validate
	}

	payload, err := validate(ctx, req.Token, googleClientID)
	if err != nil {
		log.Warn().Err(err).Msg("google token rejected")
		return nil, domain.ErrInvalidGoogleToken
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, domain.ErrInvalidGoogleToken
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		user, err = s.createGoogleUser(ctx, email, name, picture)
	}
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}

	s.touch(ctx, user)
	return s.issue(user)
}

func (s *AuthService) createGoogleUser(ctx context.Context, email, name, picture string) (*domain.User, error) {
	username := strings.SplitN(email, "@", 2)[0]
	taken, err := s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		username = username + "-" + uuid.NewString()[:6]
	}
	if name == "" {
		name = username
	}

	now := s.now()
	user := &domain.User{
		ID:          uuid.New(),
		Username:    username,
		Email:       email,
		DisplayName: &name,
		Role:        domain.RoleUser,
		IsActive:    true,
		JoinDate:    now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if picture != "" {
		user.ProfilePicture = &picture
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Info().Str("username", username).Msg("created account from google sign-in")
	return user, nil
}

// GetUser retrieves a user by ID
func (s *AuthService) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

// ValidateToken validates a JWT token and returns the claims
func (s *AuthService) ValidateToken(tokenStr string) (*jwt.CustomClaims, error) {
	return jwt.ValidateToken(tokenStr, s.jwtSecret)
}

// ResolveToken maps a bearer token to the account it was issued for. The
// token must verify, the account must exist and be active, and the token's
// subject must still match the stored username.
func (s *AuthService) ResolveToken(ctx context.Context, tokenStr string) (*domain.User, error) {
	claims, err := jwt.ValidateToken(tokenStr, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user.Username != claims.Username() {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}
	return user, nil
}

func (s *AuthService) issue(user *domain.User) (*AuthResult, error) {
	token, err := jwt.GenerateToken(s.jwtSecret, s.jwtExpiry, user.ID, user.Username, string(user.Role))
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

// touch records the sign-in as the user's latest activity. Failures are logged only.
func (s *AuthService) touch(ctx context.Context, user *domain.User) {
	now := s.now()
	if err := s.repo.UpdateLastActive(ctx, user.ID, now); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("user_id", user.ID.String()).Msg("failed to record last activity")
		return
	}
	user.LastActive = &now
}
