package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/saransh1220/soundwave/internal/modules/analytics/application"
	"github.com/saransh1220/soundwave/internal/modules/analytics/domain"
	"github.com/saransh1220/soundwave/internal/shared/utils"
)

type StatsService interface {
	Overview(ctx context.Context) (*domain.Overview, error)
	GenreStats(ctx context.Context) (*domain.GenreStats, error)
	ArtistStats(ctx context.Context) (*domain.ArtistStats, error)
	DailyStats(ctx context.Context, days int) (*domain.DailySeries, error)
	PlatformStats(ctx context.Context) (*domain.PlatformStats, error)
	RoleStats(ctx context.Context) (map[string]int, error)
}

// StatsHandler serves the /api/admin/stats dashboard endpoints.
type StatsHandler struct {
	service StatsService
}

func NewStatsHandler(service StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

func (h *StatsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	respond(w, r)(h.service.Overview(r.Context()))
}

func (h *StatsHandler) Genres(w http.ResponseWriter, r *http.Request) {
	respond(w, r)(h.service.GenreStats(r.Context()))
}

func (h *StatsHandler) Artists(w http.ResponseWriter, r *http.Request) {
	respond(w, r)(h.service.ArtistStats(r.Context()))
}

func (h *StatsHandler) Daily(w http.ResponseWriter, r *http.Request) {
	days := application.DefaultDailyDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			utils.WriteError(w, http.StatusBadRequest, utils.CodeBadRequest, "days must be a number")
			return
		}
		days = n
	}
	series, err := h.service.DailyStats(r.Context(), days)
	if errors.Is(err, application.ErrInvalidRange) {
		utils.WriteError(w, http.StatusBadRequest, utils.CodeBadRequest, "days must be between 1 and 365")
		return
	}
	respond(w, r)(series, err)
}

func (h *StatsHandler) Platform(w http.ResponseWriter, r *http.Request) {
	respond(w, r)(h.service.PlatformStats(r.Context()))
}

func (h *StatsHandler) Roles(w http.ResponseWriter, r *http.Request) {
	respond(w, r)(h.service.RoleStats(r.Context()))
}

func respond(w http.ResponseWriter, r *http.Request) func(interface{}, error) {
	return func(v interface{}, err error) {
		if err != nil {
			utils.WriteInternalError(w, r, err)
			return
		}
		utils.WriteJSON(w, http.StatusOK, v)
	}
}
