package admin

import (
	"github.com/saransh1220/soundwave/internal/modules/admin/application"
	"github.com/saransh1220/soundwave/internal/modules/admin/interfaces/http"
)

// Module serves the administrator console: accounts, content moderation,
// platform settings and the audit trail.
type Module struct {
	service *application.AdminService
	handler *http.AdminHandler
}

// NewModule wires the console over the other modules' services. store holds
// the settings document and is usually the shared redis cache.
func NewModule(deps application.Deps, store application.Store) *Module {
	if deps.Settings == nil {
		deps.Settings = application.NewSettingsStore(store)
	}
	service := application.NewAdminService(deps)
	return &Module{
		service: service,
		handler: http.NewAdminHandler(service),
	}
}

func (m *Module) Service() *application.AdminService { return m.service }
func (m *Module) HTTPHandler() *http.AdminHandler    { return m.handler }
