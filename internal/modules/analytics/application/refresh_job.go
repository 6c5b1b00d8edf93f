package application

import (
	"context"
	"time"

	"github.com/jasonlvhit/gocron"
	"github.com/rs/zerolog/log"
)

const refreshTimeout = 30 * time.Second

// ScheduleRefresh registers a job on scheduler that recomputes the cached
// overview every minutes minutes. A zero interval disables the job.
func ScheduleRefresh(scheduler *gocron.Scheduler, svc *StatsService, minutes uint64) error {
	if minutes == 0 {
		return nil
	}
	return scheduler.Every(minutes).Minutes().Do(svc.refreshInBackground)
}

func (s *StatsService) refreshInBackground() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	if _, err := s.Refresh(ctx); err != nil {
		log.Warn().Err(err).Msg("scheduled stats refresh failed")
	}
}
