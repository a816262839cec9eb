package client

import (
	"context"
	"net/http/httptest"
	"testing"

	"resqconnect/internal/api"
	"resqconnect/internal/app/service"
	"resqconnect/internal/common/security"
	"resqconnect/internal/domain/model"
	"resqconnect/internal/domain/repository"
	"resqconnect/internal/platform/config"
	"resqconnect/internal/platform/storage"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBackendServer(t *testing.T) *httptest.Server {
	t.Helper()
	config.Load()
	security.InitJWT()

	backend := storage.NewMemoryBackend()
	log := zerolog.Nop()

	userRepo := repository.NewJSONUserRepository(backend, log)
	alertRepo := repository.NewJSONAlertRepository(backend, log)
	eventRepo := repository.NewJSONEventRepository(backend, log)
	notificationRepo := repository.NewJSONNotificationRepository(backend, log)
	registrationRepo := repository.NewJSONRegistrationRepository(backend, log)

	authService := service.NewAuthService(userRepo, log)
	require.NoError(t, authService.InitUsers(context.Background()))
	require.NoError(t, eventRepo.Seed(context.Background()))

	router := api.NewRouter(
		authService,
		service.NewAlertService(alertRepo, userRepo, notificationRepo, log),
		service.NewEventService(eventRepo),
		service.NewNotificationService(notificationRepo),
		service.NewRegistrationService(registrationRepo, eventRepo, userRepo),
		service.NewUserService(userRepo),
	)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func TestClientLoginAndEventFlow(t *testing.T) {
	server := newTestBackendServer(t)
	c := New(server.URL)

	_, err := c.Login(context.Background(), "user@gmail.com", "12345")
	require.NoError(t, err)

	events, err := c.Events(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, events)

	eventID := events[0].ID
	_, err = c.RegisterForEvent(context.Background(), eventID)
	require.NoError(t, err)

	registered, err := c.IsRegistered(context.Background(), eventID)
	require.NoError(t, err)
	assert.True(t, registered)

	require.NoError(t, c.CancelRegistration(context.Background(), eventID))
	registered, err = c.IsRegistered(context.Background(), eventID)
	require.NoError(t, err)
	assert.False(t, registered)
}

func TestClientNormalizesServerErrors(t *testing.T) {
	server := newTestBackendServer(t)
	c := New(server.URL)

	_, err := c.Login(context.Background(), "user@gmail.com", "wrong")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.StatusCode)
	assert.NotEmpty(t, apiErr.Message)
	assert.Equal(t, apiErr.Message, err.Error())
}

func TestClientAttachesBearerToken(t *testing.T) {
	server := newTestBackendServer(t)
	c := New(server.URL)

	// Unauthenticated calls on protected routes surface the 401 body.
	_, err := c.Alerts(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.StatusCode)

	_, err = c.Login(context.Background(), "admin@gmail.com", "12345")
	require.NoError(t, err)

	alert, err := c.CreateAlert(context.Background(), service.CreateAlertRequest{
		Title:    "Heatwave",
		Severity: model.SeverityModerate,
	})
	require.NoError(t, err)
	assert.Equal(t, "General", alert.Region)

	alerts, err := c.Alerts(context.Background())
	require.NoError(t, err)
	assert.Len(t, alerts, 1)

	// Logout drops the token; the next protected call fails again.
	require.NoError(t, c.Logout(context.Background()))
	_, err = c.Alerts(context.Background())
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.StatusCode)
}
