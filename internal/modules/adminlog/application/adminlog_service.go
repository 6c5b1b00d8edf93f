package application

import (
	"context"
	"encoding/json"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	"github.com/saransh1220/soundwave/internal/modules/adminlog/domain"
	"github.com/saransh1220/soundwave/internal/shared/infrastructure/logging"
)

// Broadcaster pushes serialized events to live admin consoles.
type Broadcaster interface {
	BroadcastMessage(message []byte)
}

// Event is the message sent on the live feed.
type Event struct {
	Event string           `json:"event"`
	Log   *domain.AdminLog `json:"log"`
}

type CreateAdminLogRequest struct {
	UserID  string `json:"userId"`
	Action  string `json:"action"`
	Details string `json:"details"`
}

func (r CreateAdminLogRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserID, validation.Required, is.UUID),
		validation.Field(&r.Action, validation.Required, validation.Length(1, 50)),
	)
}

type UpdateAdminLogRequest struct {
	Action  *string `json:"action"`
	Details *string `json:"details"`
}

type AdminLogService struct {
	repo domain.AdminLogRepository
	feed Broadcaster
}

func NewAdminLogService(repo domain.AdminLogRepository, feed Broadcaster) *AdminLogService {
	return &AdminLogService{repo: repo, feed: feed}
}

// Record writes an audit entry for an action performed by adminID.
func (s *AdminLogService) Record(ctx context.Context, adminID uuid.UUID, action, details string) (*domain.AdminLog, error) {
	entry := &domain.AdminLog{UserID: adminID, Action: action, Details: details}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Info().
		Str("action", action).
		Str("admin_id", adminID.String()).
		Msg("admin action recorded")
	s.publish(ctx, "created", entry)
	return entry, nil
}

func (s *AdminLogService) Create(ctx context.Context, req CreateAdminLogRequest) (*domain.AdminLog, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.Record(ctx, uuid.MustParse(req.UserID), strings.ToUpper(req.Action), req.Details)
}

func (s *AdminLogService) Get(ctx context.Context, id uuid.UUID) (*domain.AdminLog, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AdminLogService) List(ctx context.Context, filter domain.AdminLogFilter) ([]domain.AdminLog, int, error) {
	filter.Action = strings.ToUpper(filter.Action)
	return s.repo.List(ctx, filter)
}

func (s *AdminLogService) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.AdminLog, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *AdminLogService) Update(ctx context.Context, id uuid.UUID, req UpdateAdminLogRequest) (*domain.AdminLog, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Action != nil && *req.Action != "" {
		entry.Action = strings.ToUpper(*req.Action)
	}
	if req.Details != nil {
		entry.Details = *req.Details
	}
	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, err
	}
	s.publish(ctx, "updated", entry)
	return entry, nil
}

func (s *AdminLogService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, "deleted", &domain.AdminLog{ID: id})
	return nil
}

func (s *AdminLogService) publish(ctx context.Context, event string, entry *domain.AdminLog) {
	if s.feed == nil {
		return
	}
	msg, err := json.Marshal(Event{Event: event, Log: entry})
	if err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("failed to encode admin log event")
		return
	}
	s.feed.BroadcastMessage(msg)
}
