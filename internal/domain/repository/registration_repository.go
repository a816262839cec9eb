package repository

import (
	"context"

	"resqconnect/internal/common"
	"resqconnect/internal/domain/model"
	"resqconnect/internal/platform/storage"

	"github.com/rs/zerolog"
)

type RegistrationRepository interface {
	List(ctx context.Context) []model.Registration
	ListByUser(ctx context.Context, userID string) []model.Registration
	ListByEvent(ctx context.Context, eventID string) []model.Registration
	FindByEventAndUser(ctx context.Context, eventID, userID string) (*model.Registration, error)
	Create(ctx context.Context, registration *model.Registration) error
	DeleteByEventAndUser(ctx context.Context, eventID, userID string) error
}

type jsonRegistrationRepository struct {
	registrations *storage.Collection[model.Registration]
}

func NewJSONRegistrationRepository(backend storage.Backend, log zerolog.Logger) RegistrationRepository {
	return &jsonRegistrationRepository{
		registrations: storage.NewCollection[model.Registration](backend, "registrations", log),
	}
}

func (r *jsonRegistrationRepository) List(ctx context.Context) []model.Registration {
	return r.registrations.Read()
}

func (r *jsonRegistrationRepository) ListByUser(ctx context.Context, userID string) []model.Registration {
	matches := []model.Registration{}
	for _, registration := range r.registrations.Read() {
		if registration.UserID == userID {
			matches = append(matches, registration)
		}
	}
	return matches
}

func (r *jsonRegistrationRepository) ListByEvent(ctx context.Context, eventID string) []model.Registration {
	matches := []model.Registration{}
	for _, registration := range r.registrations.Read() {
		if registration.EventID == eventID {
			matches = append(matches, registration)
		}
	}
	return matches
}

func (r *jsonRegistrationRepository) FindByEventAndUser(ctx context.Context, eventID, userID string) (*model.Registration, error) {
	for _, registration := range r.registrations.Read() {
		if registration.EventID == eventID && registration.UserID == userID {
			reg := registration
			return &reg, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *jsonRegistrationRepository) Create(ctx context.Context, registration *model.Registration) error {
	registrations := r.registrations.Read()
	return r.registrations.Write(append(registrations, *registration))
}

func (r *jsonRegistrationRepository) DeleteByEventAndUser(ctx context.Context, eventID, userID string) error {
	registrations := r.registrations.Read()
	filtered := make([]model.Registration, 0, len(registrations))
	for _, registration := range registrations {
		if registration.EventID == eventID && registration.UserID == userID {
			continue
		}
		filtered = append(filtered, registration)
	}
	if len(filtered) == len(registrations) {
		return common.ErrNotFound
	}
	return r.registrations.Write(filtered)
}
