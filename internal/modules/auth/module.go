package auth

import (
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/saransh1220/soundwave/internal/modules/auth/application"
	"github.com/saransh1220/soundwave/internal/modules/auth/domain"
	"github.com/saransh1220/soundwave/internal/modules/auth/infrastructure/persistence/postgres"
	auth_http "github.com/saransh1220/soundwave/internal/modules/auth/interfaces/http"
)

// Module represents the Auth module
type Module struct {
	service    *application.AuthService
	repository *postgres.PgUserRepository
	handler    *auth_http.AuthHandler
}

// NewModule creates and initializes the Auth module
func NewModule(db *sqlx.DB, jwtSecret string, jwtExpiry time.Duration, googleClientID string) *Module {
	repository := postgres.NewUserRepository(db)
	service := application.NewAuthService(repository, jwtSecret, jwtExpiry)

	return &Module{
		service:    service,
		repository: repository,
		handler:    auth_http.NewAuthHandler(service, googleClientID),
	}
}

// Service returns the auth service; it also serves as the gateway's identity resolver.
func (m *Module) Service() *application.AuthService {
	return m.service
}

// UserFinder returns the read-only user view for other modules
func (m *Module) UserFinder() domain.UserFinder {
	return m.repository
}

// UserRepository returns the full user repository for the user and admin modules
func (m *Module) UserRepository() domain.UserRepository {
	return m.repository
}

// HTTPHandler returns the HTTP handler for the auth module
func (m *Module) HTTPHandler() *auth_http.AuthHandler {
	return m.handler
}
