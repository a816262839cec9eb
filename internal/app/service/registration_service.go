package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"resqconnect/internal/common"
	"resqconnect/internal/domain/model"
	"resqconnect/internal/domain/repository"

	"github.com/google/uuid"
)

type RegistrationService struct {
	registrationRepo repository.RegistrationRepository
	eventRepo        repository.EventRepository
	userRepo         repository.UserRepository
}

func NewRegistrationService(
	registrationRepo repository.RegistrationRepository,
	eventRepo repository.EventRepository,
	userRepo repository.UserRepository,
) *RegistrationService {
	return &RegistrationService{
		registrationRepo: registrationRepo,
		eventRepo:        eventRepo,
		userRepo:         userRepo,
	}
}

func (s *RegistrationService) Register(ctx context.Context, userID, eventID string) (*model.Registration, error) {
	if eventID == "" {
		return nil, common.Errorf("event id is required: %w", common.ErrBadRequest)
	}

	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, common.Errorf("event not found: %w", common.ErrNotFound)
	}
	if event.IsCompleted {
		return nil, common.Errorf("cannot register for completed events: %w", common.ErrBadRequest)
	}

	if _, err := s.registrationRepo.FindByEventAndUser(ctx, eventID, userID); err == nil {
		return nil, common.Errorf("already registered for this event: %w", common.ErrConflict)
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("failed to check registration: %w", err)
	}

	registration := &model.Registration{
		ID:           uuid.NewString(),
		EventID:      eventID,
		UserID:       userID,
		RegisteredAt: time.Now(),
	}
	if err := s.registrationRepo.Create(ctx, registration); err != nil {
		return nil, fmt.Errorf("failed to create registration: %w", err)
	}
	return registration, nil
}

// MyRegistrations joins the caller's registrations with their events.
// Registrations whose event was deleted stay in storage but are dropped here.
func (s *RegistrationService) MyRegistrations(ctx context.Context, userID string) []model.RegistrationWithEvent {
	events := s.eventRepo.List(ctx)
	byID := make(map[string]model.Event, len(events))
	for _, event := range events {
		byID[event.ID] = event
	}

	joined := []model.RegistrationWithEvent{}
	for _, registration := range s.registrationRepo.ListByUser(ctx, userID) {
		event, ok := byID[registration.EventID]
		if !ok {
			continue
		}
		e := event
		joined = append(joined, model.RegistrationWithEvent{Registration: registration, Event: &e})
	}
	return joined
}

func (s *RegistrationService) IsRegistered(ctx context.Context, userID, eventID string) bool {
	_, err := s.registrationRepo.FindByEventAndUser(ctx, eventID, userID)
	return err == nil
}

func (s *RegistrationService) Cancel(ctx context.Context, userID, eventID string) error {
	if err := s.registrationRepo.DeleteByEventAndUser(ctx, eventID, userID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.Errorf("registration not found: %w", common.ErrNotFound)
		}
		return fmt.Errorf("failed to cancel registration: %w", err)
	}
	return nil
}

// EventRegistrations joins an event's roster with user summaries. A deleted
// user shows up as a nil user rather than hiding the registration.
func (s *RegistrationService) EventRegistrations(ctx context.Context, eventID string) []model.RegistrationWithUser {
	users := s.userRepo.List(ctx)
	byID := make(map[string]model.User, len(users))
	for _, user := range users {
		byID[user.ID] = user
	}

	joined := []model.RegistrationWithUser{}
	for _, registration := range s.registrationRepo.ListByEvent(ctx, eventID) {
		row := model.RegistrationWithUser{Registration: registration}
		if user, ok := byID[registration.UserID]; ok {
			summary := user.Summary()
			row.User = &summary
		}
		joined = append(joined, row)
	}
	return joined
}
