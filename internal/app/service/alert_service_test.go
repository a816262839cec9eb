package service

import (
	"context"
	"testing"
	"time"

	"resqconnect/internal/common"
	"resqconnect/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAlertFansOutToRegularUsers(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "1", "Admin", "admin@example.com", model.RoleAdmin)
	env.addUser(t, "2", "Asha", "asha@example.com", model.RoleUser)
	env.addUser(t, "3", "Ravi", "ravi@example.com", model.RoleUser)

	alert, err := env.alertService.Create(context.Background(), CreateAlertRequest{
		Title:         "Flood warning",
		Severity:      model.SeverityMajor,
		AffectedAreas: []string{"Assam", "Guwahati"},
	})
	require.NoError(t, err)
	assert.Equal(t, "General", alert.Region)

	notifications := env.notifications.List(context.Background())
	require.Len(t, notifications, 2)
	for _, n := range notifications {
		assert.Contains(t, []string{"2", "3"}, n.UserID)
		assert.Equal(t, "New MAJOR Alert", n.Title)
		assert.Equal(t, "Flood warning - Affected: Assam, Guwahati", n.Message)
		assert.Equal(t, model.NotificationError, n.Type)
		assert.False(t, n.Read)
	}
}

func TestCreateAlertSeverityControlsNotificationType(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "2", "Asha", "asha@example.com", model.RoleUser)

	_, err := env.alertService.Create(context.Background(), CreateAlertRequest{
		Title:    "Light rain",
		Severity: model.SeverityMinor,
	})
	require.NoError(t, err)

	notifications := env.notifications.List(context.Background())
	require.Len(t, notifications, 1)
	assert.Equal(t, model.NotificationWarning, notifications[0].Type)
	assert.Equal(t, "Light rain", notifications[0].Message)
}

func TestCreateAlertValidation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.alertService.Create(context.Background(), CreateAlertRequest{Severity: model.SeverityMinor})
	assert.ErrorIs(t, err, common.ErrBadRequest)

	_, err = env.alertService.Create(context.Background(), CreateAlertRequest{Title: "X", Severity: "apocalyptic"})
	assert.ErrorIs(t, err, common.ErrBadRequest)
}

func TestUpdateAlertMergesOnlyProvidedFields(t *testing.T) {
	env := newTestEnv(t)

	alert, err := env.alertService.Create(context.Background(), CreateAlertRequest{
		Title:    "Original",
		Severity: model.SeverityModerate,
		Details:  "details",
		Region:   "India",
	})
	require.NoError(t, err)

	newTitle := "Updated"
	updated, err := env.alertService.Update(context.Background(), alert.ID, UpdateAlertRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Updated", updated.Title)
	assert.Equal(t, model.SeverityModerate, updated.Severity)
	assert.Equal(t, "details", updated.Details)
	assert.Equal(t, "India", updated.Region)

	bad := model.AlertSeverity("huge")
	_, err = env.alertService.Update(context.Background(), alert.ID, UpdateAlertRequest{Severity: &bad})
	assert.ErrorIs(t, err, common.ErrBadRequest)
}

func TestListAlertsNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	now := time.Now()
	for i, id := range []string{"old", "mid", "new"} {
		require.NoError(t, env.alerts.Create(context.Background(), &model.Alert{
			ID:       id,
			Title:    id,
			Severity: model.SeverityMinor,
			Date:     now.Add(time.Duration(i) * time.Hour),
		}))
	}

	alerts := env.alertService.List(context.Background())
	require.Len(t, alerts, 3)
	assert.Equal(t, "new", alerts[0].ID)
	assert.Equal(t, "old", alerts[2].ID)
}

func TestDeleteAlert(t *testing.T) {
	env := newTestEnv(t)
	alert, err := env.alertService.Create(context.Background(), CreateAlertRequest{Title: "X", Severity: model.SeverityMinor})
	require.NoError(t, err)

	require.NoError(t, env.alertService.Delete(context.Background(), alert.ID))
	assert.ErrorIs(t, env.alertService.Delete(context.Background(), alert.ID), common.ErrNotFound)
}
