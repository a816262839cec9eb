package repository

import (
	"context"
	"time"

	"resqconnect/internal/common"
	"resqconnect/internal/domain/model"
	"resqconnect/internal/platform/storage"

	"github.com/rs/zerolog"
)

type EventRepository interface {
	List(ctx context.Context) []model.Event
	FindByID(ctx context.Context, id string) (*model.Event, error)
	Create(ctx context.Context, event *model.Event) error
	Update(ctx context.Context, event *model.Event) error
	Delete(ctx context.Context, id string) error
	Seed(ctx context.Context) error
}

type jsonEventRepository struct {
	events *storage.Collection[model.Event]
}

func NewJSONEventRepository(backend storage.Backend, log zerolog.Logger) EventRepository {
	return &jsonEventRepository{
		events: storage.NewCollection[model.Event](backend, "events", log),
	}
}

func (r *jsonEventRepository) List(ctx context.Context) []model.Event {
	return r.events.Read()
}

func (r *jsonEventRepository) FindByID(ctx context.Context, id string) (*model.Event, error) {
	event, ok := r.events.FindByID(id)
	if !ok {
		return nil, common.ErrNotFound
	}
	return &event, nil
}

func (r *jsonEventRepository) Create(ctx context.Context, event *model.Event) error {
	events := r.events.Read()
	return r.events.Write(append(events, *event))
}

func (r *jsonEventRepository) Update(ctx context.Context, event *model.Event) error {
	events := r.events.Read()
	index := -1
	for i := range events {
		if events[i].ID == event.ID {
			index = i
			break
		}
	}
	if index == -1 {
		return common.ErrNotFound
	}
	events[index] = *event
	return r.events.Write(events)
}

func (r *jsonEventRepository) Delete(ctx context.Context, id string) error {
	events := r.events.Read()
	filtered := make([]model.Event, 0, len(events))
	for _, event := range events {
		if event.ID != id {
			filtered = append(filtered, event)
		}
	}
	if len(filtered) == len(events) {
		return common.ErrNotFound
	}
	return r.events.Write(filtered)
}

func (r *jsonEventRepository) Seed(ctx context.Context) error {
	if len(r.events.Read()) > 0 {
		return nil
	}
	now := time.Now()
	return r.events.Write([]model.Event{
		{
			ID:           "1",
			Title:        "NDRF Mock Drill Exercise",
			Organization: "NDRF",
			Description:  "Advanced disaster response training with practical demonstrations and hands-on exercises",
			Location:     "Reliance Shopping Mall",
			Date:         "2025-05-15",
			IsCompleted:  false,
			CreatedAt:    now,
		},
		{
			ID:           "2",
			Title:        "SDRF Emergency Response Workshop",
			Organization: "SDRF",
			Description:  "Comprehensive workshop on emergency response protocols and rescue operations",
			Location:     "City Stadium",
			Date:         "2025-06-20",
			IsCompleted:  false,
			CreatedAt:    now,
		},
	})
}
