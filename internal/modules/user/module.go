package user

import (
	authDomain "github.com/saransh1220/soundwave/internal/modules/auth/domain"
	fileApp "github.com/saransh1220/soundwave/internal/modules/filestorage/application"
	"github.com/saransh1220/soundwave/internal/modules/user/application"
	user_http "github.com/saransh1220/soundwave/internal/modules/user/interfaces/http"
)

// Module serves profiles and the administrative user CRUD.
type Module struct {
	service *application.UserService
	handler *user_http.UserHandler
}

func NewModule(repo authDomain.UserRepository, fileService *fileApp.FileService) *Module {
	service := application.NewUserService(repo, fileService)
	return &Module{
		service: service,
		handler: user_http.NewUserHandler(service),
	}
}

func (m *Module) HTTPHandler() *user_http.UserHandler {
	return m.handler
}

func (m *Module) Service() *application.UserService {
	return m.service
}
