package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"resqconnect/internal/app/service"
	"resqconnect/internal/common/security"
	"resqconnect/internal/domain/repository"
	"resqconnect/internal/platform/config"
	"resqconnect/internal/platform/storage"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer wires the full application over an in-memory backend and
// seeds the demo accounts plus one open event.
func newTestServer(t *testing.T) *httptest.Server {
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

	router := NewRouter(
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

func doRequest(t *testing.T, server *httptest.Server, method, path, token string, body interface{}) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, server.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func login(t *testing.T, server *httptest.Server, email, password string) string {
	t.Helper()
	resp, body := doRequest(t, server, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var parsed struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(body, &parsed))
	require.NotEmpty(t, parsed.Token)
	return parsed.Token
}

func TestHealth(t *testing.T) {
	server := newTestServer(t)
	resp, body := doRequest(t, server, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", string(body))
}

func TestRequestsWithoutTokenAreUnauthorized(t *testing.T) {
	server := newTestServer(t)

	for _, path := range []string{"/api/alerts", "/api/events", "/api/notifications", "/api/auth/me"} {
		resp, _ := doRequest(t, server, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}

	resp, _ := doRequest(t, server, http.MethodGet, "/api/alerts", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminEndpointsForbiddenForRegularUsers(t *testing.T) {
	server := newTestServer(t)
	userToken := login(t, server, "user@gmail.com", "12345")

	adminOnly := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/alerts"},
		{http.MethodPut, "/api/alerts/1"},
		{http.MethodDelete, "/api/alerts/1"},
		{http.MethodPost, "/api/events"},
		{http.MethodPut, "/api/events/1"},
		{http.MethodDelete, "/api/events/1"},
		{http.MethodGet, "/api/users"},
		{http.MethodGet, "/api/users/1"},
		{http.MethodPut, "/api/users/1/verify"},
		{http.MethodDelete, "/api/users/1"},
		{http.MethodGet, "/api/registrations/event/1"},
	}
	for _, route := range adminOnly {
		resp, _ := doRequest(t, server, route.method, route.path, userToken, map[string]string{})
		assert.Equal(t, http.StatusForbidden, resp.StatusCode, "%s %s", route.method, route.path)
	}
}

func TestRegisterAndLoginFlow(t *testing.T) {
	server := newTestServer(t)

	resp, body := doRequest(t, server, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     "Asha",
		"email":    "asha@example.com",
		"password": "secret",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	assert.NotContains(t, string(body), "password")

	resp, _ = doRequest(t, server, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     "Asha again",
		"email":    "ASHA@example.com",
		"password": "secret",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = doRequest(t, server, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "asha@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	token := login(t, server, "asha@example.com", "secret")
	resp, body = doRequest(t, server, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "asha@example.com")
	assert.NotContains(t, string(body), "password")
}

func TestAlertCreationNotifiesUsersOverHTTP(t *testing.T) {
	server := newTestServer(t)
	adminToken := login(t, server, "admin@gmail.com", "12345")
	userToken := login(t, server, "user@gmail.com", "12345")

	resp, body := doRequest(t, server, http.MethodPost, "/api/alerts", adminToken, map[string]interface{}{
		"title":         "Cyclone approaching",
		"severity":      "catastrophic",
		"affectedAreas": []string{"Chennai"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	resp, body = doRequest(t, server, http.MethodGet, "/api/notifications", userToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var parsed struct {
		Notifications []struct {
			Title string `json:"title"`
			Type  string `json:"type"`
		} `json:"notifications"`
	}
	require.NoError(t, json.Unmarshal(body, &parsed))
	require.Len(t, parsed.Notifications, 1)
	assert.Equal(t, "New CATASTROPHIC Alert", parsed.Notifications[0].Title)
	assert.Equal(t, "error", parsed.Notifications[0].Type)

	// Admin authors don't notify themselves.
	resp, body = doRequest(t, server, http.MethodGet, "/api/notifications/unread/count", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"count": 1}`, string(body)) // admin sees all rows, the single fan-out row
}

func TestInvalidSeverityRejectedOverHTTP(t *testing.T) {
	server := newTestServer(t)
	adminToken := login(t, server, "admin@gmail.com", "12345")

	resp, body := doRequest(t, server, http.MethodPost, "/api/alerts", adminToken, map[string]string{
		"title":    "X",
		"severity": "apocalyptic",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "message")
}
