package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"resqconnect/internal/common"
	"resqconnect/internal/domain/model"
	"resqconnect/internal/domain/repository"

	"github.com/google/uuid"
)

type EventService struct {
	eventRepo repository.EventRepository
}

func NewEventService(eventRepo repository.EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

type CreateEventRequest struct {
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	Date         string `json:"date"`
}

type UpdateEventRequest struct {
	Title        *string `json:"title,omitempty"`
	Organization *string `json:"organization,omitempty"`
	Description  *string `json:"description,omitempty"`
	Location     *string `json:"location,omitempty"`
	Date         *string `json:"date,omitempty"`
	IsCompleted  *bool   `json:"isCompleted,omitempty"`
}

// List returns all events, upcoming ones before completed ones, each group
// ordered by date.
func (s *EventService) List(ctx context.Context) []model.Event {
	events := s.eventRepo.List(ctx)
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].IsCompleted != events[j].IsCompleted {
			return !events[i].IsCompleted
		}
		return events[i].Date < events[j].Date
	})
	return events
}

func (s *EventService) Get(ctx context.Context, id string) (*model.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, common.Errorf("event not found: %w", common.ErrNotFound)
	}
	return event, nil
}

func (s *EventService) Create(ctx context.Context, req CreateEventRequest) (*model.Event, error) {
	if req.Title == "" || req.Location == "" || req.Date == "" {
		return nil, common.Errorf("title, location, and date are required: %w", common.ErrBadRequest)
	}

	organization := req.Organization
	if organization == "" {
		organization = "ResQConnect"
	}

	event := &model.Event{
		ID:           uuid.NewString(),
		Title:        req.Title,
		Organization: organization,
		Description:  req.Description,
		Location:     req.Location,
		Date:         req.Date,
		IsCompleted:  false,
		CreatedAt:    time.Now(),
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

func (s *EventService) Update(ctx context.Context, id string, req UpdateEventRequest) (*model.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, common.Errorf("event not found: %w", common.ErrNotFound)
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Organization != nil {
		event.Organization = *req.Organization
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Date != nil {
		event.Date = *req.Date
	}
	if req.IsCompleted != nil {
		event.IsCompleted = *req.IsCompleted
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return event, nil
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	if _, err := s.eventRepo.FindByID(ctx, id); err != nil {
		return common.Errorf("event not found: %w", common.ErrNotFound)
	}
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}
