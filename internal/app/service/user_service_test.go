package service

import (
	"context"
	"testing"

	"resqconnect/internal/common"
	"resqconnect/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUsersAppliesLegacyDefaults(t *testing.T) {
	env := newTestEnv(t)
	// A record written before location/verified existed.
	require.NoError(t, env.users.Create(context.Background(), &model.User{
		ID:       "legacy",
		Name:     "Old Timer",
		Email:    "old@example.com",
		Role:     model.RoleUser,
		Password: "$2a$10$fakefakefakefakefakefake",
	}))

	users := env.userService.List(context.Background())
	require.Len(t, users, 1)
	assert.Equal(t, "Not specified", users[0].Location)
	assert.True(t, users[0].Verified)
	assert.False(t, users[0].CreatedAt.IsZero())
}

func TestSetVerified(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "u1", "Asha", "asha@example.com", model.RoleUser)

	no := false
	user, err := env.userService.SetVerified(context.Background(), "u1", VerifyUserRequest{Verified: &no})
	require.NoError(t, err)
	assert.False(t, user.Verified)

	// Absent value defaults to verified.
	user, err = env.userService.SetVerified(context.Background(), "u1", VerifyUserRequest{})
	require.NoError(t, err)
	assert.True(t, user.Verified)

	_, err = env.userService.SetVerified(context.Background(), "missing", VerifyUserRequest{})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDeleteUserKeepsOrphanedRecords(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "u1", "Asha", "asha@example.com", model.RoleUser)
	env.addEvent(t, "e1", "Drill", false)

	_, err := env.registrationsvc.Register(context.Background(), "u1", "e1")
	require.NoError(t, err)
	require.NoError(t, env.notifications.Create(context.Background(), &model.Notification{ID: "n1", UserID: "u1"}))

	require.NoError(t, env.userService.Delete(context.Background(), "u1"))

	// Orphans persist in storage after the account is gone.
	assert.Len(t, env.registrations.List(context.Background()), 1)
	assert.Len(t, env.notifications.List(context.Background()), 1)

	// But the roster join shows no user for the orphaned registration.
	roster := env.registrationsvc.EventRegistrations(context.Background(), "e1")
	require.Len(t, roster, 1)
	assert.Nil(t, roster[0].User)
}
