package adminlog

import (
	"github.com/jmoiron/sqlx"
	"github.com/saransh1220/soundwave/internal/modules/adminlog/application"
	persistence "github.com/saransh1220/soundwave/internal/modules/adminlog/infrastructure/persistence/postgres"
	"github.com/saransh1220/soundwave/internal/modules/adminlog/infrastructure/websocket"
	adminlogHttp "github.com/saransh1220/soundwave/internal/modules/adminlog/interfaces/http"
)

// Module wires the audit log and its live websocket feed. The caller owns
// the hub goroutine: start it with Hub().Run and stop it on shutdown.
type Module struct {
	hub     *websocket.Hub
	service *application.AdminLogService
	handler *adminlogHttp.AdminLogHandler
}

func NewModule(db *sqlx.DB) *Module {
	hub := websocket.NewHub()
	service := application.NewAdminLogService(persistence.NewAdminLogRepository(db), hub)
	return &Module{
		hub:     hub,
		service: service,
		handler: adminlogHttp.NewAdminLogHandler(service, hub),
	}
}

func (m *Module) Hub() *websocket.Hub                        { return m.hub }
func (m *Module) Service() *application.AdminLogService      { return m.service }
func (m *Module) HTTPHandler() *adminlogHttp.AdminLogHandler { return m.handler }
