package service

import (
	"context"
	"testing"
	"time"

	"resqconnect/internal/common/security"
	"resqconnect/internal/domain/model"
	"resqconnect/internal/domain/repository"
	"resqconnect/internal/platform/config"
	"resqconnect/internal/platform/storage"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// testEnv wires every service against a fresh in-memory backend.
type testEnv struct {
	users         repository.UserRepository
	alerts        repository.AlertRepository
	events        repository.EventRepository
	notifications repository.NotificationRepository
	registrations repository.RegistrationRepository

	auth            *AuthService
	alertService    *AlertService
	eventService    *EventService
	notifyService   *NotificationService
	registrationsvc *RegistrationService
	userService     *UserService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	config.Load()
	security.InitJWT()

	backend := storage.NewMemoryBackend()
	log := zerolog.Nop()

	env := &testEnv{
		users:         repository.NewJSONUserRepository(backend, log),
		alerts:        repository.NewJSONAlertRepository(backend, log),
		events:        repository.NewJSONEventRepository(backend, log),
		notifications: repository.NewJSONNotificationRepository(backend, log),
		registrations: repository.NewJSONRegistrationRepository(backend, log),
	}
	env.auth = NewAuthService(env.users, log)
	env.alertService = NewAlertService(env.alerts, env.users, env.notifications, log)
	env.eventService = NewEventService(env.events)
	env.notifyService = NewNotificationService(env.notifications)
	env.registrationsvc = NewRegistrationService(env.registrations, env.events, env.users)
	env.userService = NewUserService(env.users)
	return env
}

func (e *testEnv) addUser(t *testing.T, id, name, email string, role model.Role) model.User {
	t.Helper()
	hashed, err := security.HashPassword("12345")
	require.NoError(t, err)
	user := model.User{
		ID:        id,
		Name:      name,
		Email:     email,
		Role:      role,
		Password:  hashed,
		CreatedAt: time.Now(),
	}
	require.NoError(t, e.users.Create(context.Background(), &user))
	return user
}

func (e *testEnv) addEvent(t *testing.T, id, title string, completed bool) model.Event {
	t.Helper()
	event := model.Event{
		ID:           id,
		Title:        title,
		Organization: "ResQConnect",
		Location:     "City Hall",
		Date:         "2025-06-01",
		IsCompleted:  completed,
		CreatedAt:    time.Now(),
	}
	require.NoError(t, e.events.Create(context.Background(), &event))
	return event
}
