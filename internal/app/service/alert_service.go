package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"resqconnect/internal/common"
	"resqconnect/internal/domain/model"
	"resqconnect/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type AlertService struct {
	alertRepo        repository.AlertRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	log              zerolog.Logger
}

func NewAlertService(
	alertRepo repository.AlertRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
	log zerolog.Logger,
) *AlertService {
	return &AlertService{
		alertRepo:        alertRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		log:              log,
	}
}

type CreateAlertRequest struct {
	Title         string              `json:"title"`
	Severity      model.AlertSeverity `json:"severity"`
	AffectedAreas []string            `json:"affectedAreas"`
	Details       string              `json:"details"`
	Region        string              `json:"region"`
}

type UpdateAlertRequest struct {
	Title         *string              `json:"title,omitempty"`
	Severity      *model.AlertSeverity `json:"severity,omitempty"`
	AffectedAreas *[]string            `json:"affectedAreas,omitempty"`
	Details       *string              `json:"details,omitempty"`
	Region        *string              `json:"region,omitempty"`
}

// List returns all alerts, newest first.
func (s *AlertService) List(ctx context.Context) []model.Alert {
	alerts := s.alertRepo.List(ctx)
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Date.After(alerts[j].Date)
	})
	return alerts
}

func (s *AlertService) Get(ctx context.Context, id string) (*model.Alert, error) {
	alert, err := s.alertRepo.FindByID(ctx, id)
	if err != nil {
		return nil, common.Errorf("alert not found: %w", common.ErrNotFound)
	}
	return alert, nil
}

func (s *AlertService) Create(ctx context.Context, req CreateAlertRequest) (*model.Alert, error) {
	if req.Title == "" || req.Severity == "" {
		return nil, common.Errorf("title and severity are required: %w", common.ErrBadRequest)
	}
	if !req.Severity.Valid() {
		return nil, common.Errorf("invalid severity, must be: minor, moderate, major, or catastrophic: %w", common.ErrBadRequest)
	}

	areas := req.AffectedAreas
	if areas == nil {
		areas = []string{}
	}
	region := req.Region
	if region == "" {
		region = "General"
	}

	now := time.Now()
	alert := &model.Alert{
		ID:            uuid.NewString(),
		Title:         req.Title,
		Severity:      req.Severity,
		Date:          now,
		AffectedAreas: areas,
		Details:       req.Details,
		Region:        region,
		CreatedAt:     now,
	}

	if err := s.alertRepo.Create(ctx, alert); err != nil {
		return nil, fmt.Errorf("failed to create alert: %w", err)
	}

	if err := s.notifyUsers(ctx, alert); err != nil {
		// The alert itself is already stored; fan-out failure is logged and
		// does not fail the request.
		s.log.Error().Err(err).Str("alert_id", alert.ID).Msg("failed to fan out alert notifications")
	}

	return alert, nil
}

// notifyUsers creates one notification per regular user (admins are skipped)
// describing the new alert.
func (s *AlertService) notifyUsers(ctx context.Context, alert *model.Alert) error {
	notificationType := model.NotificationWarning
	if alert.Severity == model.SeverityMajor || alert.Severity == model.SeverityCatastrophic {
		notificationType = model.NotificationError
	}

	message := alert.Title
	if len(alert.AffectedAreas) > 0 {
		message += " - Affected: " + strings.Join(alert.AffectedAreas, ", ")
	}

	batch := []model.Notification{}
	for _, user := range s.userRepo.List(ctx) {
		if user.Role != model.RoleUser {
			continue
		}
		batch = append(batch, model.Notification{
			ID:        uuid.NewString(),
			UserID:    user.ID,
			Title:     "New " + strings.ToUpper(string(alert.Severity)) + " Alert",
			Message:   message,
			Type:      notificationType,
			Read:      false,
			CreatedAt: time.Now(),
		})
	}
	if len(batch) == 0 {
		return nil
	}
	return s.notificationRepo.CreateBatch(ctx, batch)
}

func (s *AlertService) Update(ctx context.Context, id string, req UpdateAlertRequest) (*model.Alert, error) {
	alert, err := s.alertRepo.FindByID(ctx, id)
	if err != nil {
		return nil, common.Errorf("alert not found: %w", common.ErrNotFound)
	}

	if req.Title != nil {
		alert.Title = *req.Title
	}
	if req.Severity != nil {
		if !req.Severity.Valid() {
			return nil, common.Errorf("invalid severity: %w", common.ErrBadRequest)
		}
		alert.Severity = *req.Severity
	}
	if req.AffectedAreas != nil {
		alert.AffectedAreas = *req.AffectedAreas
	}
	if req.Details != nil {
		alert.Details = *req.Details
	}
	if req.Region != nil {
		alert.Region = *req.Region
	}

	if err := s.alertRepo.Update(ctx, alert); err != nil {
		return nil, fmt.Errorf("failed to update alert: %w", err)
	}
	return alert, nil
}

func (s *AlertService) Delete(ctx context.Context, id string) error {
	if _, err := s.alertRepo.FindByID(ctx, id); err != nil {
		return common.Errorf("alert not found: %w", common.ErrNotFound)
	}
	if err := s.alertRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete alert: %w", err)
	}
	return nil
}
