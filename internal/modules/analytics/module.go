package analytics

import (
	"github.com/jasonlvhit/gocron"
	"github.com/jmoiron/sqlx"
	"github.com/saransh1220/soundwave/internal/modules/analytics/application"
	"github.com/saransh1220/soundwave/internal/modules/analytics/infrastructure/persistence/postgres"
	"github.com/saransh1220/soundwave/internal/modules/analytics/interfaces/http"
)

// Module bundles the admin statistics aggregator.
type Module struct {
	service *application.StatsService
	handler *http.StatsHandler
}

func NewModule(db *sqlx.DB, cache application.Cache) *Module {
	service := application.NewStatsService(postgres.NewStatsRepository(db), cache)
	return &Module{
		service: service,
		handler: http.NewStatsHandler(service),
	}
}

func (m *Module) Service() *application.StatsService { return m.service }
func (m *Module) HTTPHandler() *http.StatsHandler    { return m.handler }

// ScheduleRefresh registers the periodic overview refresh on scheduler.
func (m *Module) ScheduleRefresh(scheduler *gocron.Scheduler, minutes uint64) error {
	return application.ScheduleRefresh(scheduler, m.service, minutes)
}
