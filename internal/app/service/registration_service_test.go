package service

import (
	"context"
	"testing"

	"resqconnect/internal/common"
	"resqconnect/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCheckCancelCycle(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "u1", "Asha", "asha@example.com", model.RoleUser)
	env.addEvent(t, "e1", "Drill", false)

	_, err := env.registrationsvc.Register(context.Background(), "u1", "e1")
	require.NoError(t, err)
	assert.True(t, env.registrationsvc.IsRegistered(context.Background(), "u1", "e1"))

	require.NoError(t, env.registrationsvc.Cancel(context.Background(), "u1", "e1"))
	assert.False(t, env.registrationsvc.IsRegistered(context.Background(), "u1", "e1"))

	assert.ErrorIs(t, env.registrationsvc.Cancel(context.Background(), "u1", "e1"), common.ErrNotFound)
}

func TestRegisterTwiceIsConflict(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "u1", "Asha", "asha@example.com", model.RoleUser)
	env.addEvent(t, "e1", "Drill", false)

	_, err := env.registrationsvc.Register(context.Background(), "u1", "e1")
	require.NoError(t, err)

	_, err = env.registrationsvc.Register(context.Background(), "u1", "e1")
	assert.ErrorIs(t, err, common.ErrConflict)
	assert.Len(t, env.registrations.List(context.Background()), 1)
}

func TestRegisterRejectsCompletedOrMissingEvent(t *testing.T) {
	env := newTestEnv(t)
	env.addEvent(t, "done", "Past drill", true)

	_, err := env.registrationsvc.Register(context.Background(), "u1", "done")
	assert.ErrorIs(t, err, common.ErrBadRequest)

	_, err = env.registrationsvc.Register(context.Background(), "u1", "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = env.registrationsvc.Register(context.Background(), "u1", "")
	assert.ErrorIs(t, err, common.ErrBadRequest)
}

func TestMyRegistrationsFiltersDeletedEvents(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "u1", "Asha", "asha@example.com", model.RoleUser)
	env.addEvent(t, "e1", "Drill", false)
	env.addEvent(t, "e2", "Workshop", false)

	_, err := env.registrationsvc.Register(context.Background(), "u1", "e1")
	require.NoError(t, err)
	_, err = env.registrationsvc.Register(context.Background(), "u1", "e2")
	require.NoError(t, err)

	require.NoError(t, env.events.Delete(context.Background(), "e2"))

	joined := env.registrationsvc.MyRegistrations(context.Background(), "u1")
	require.Len(t, joined, 1)
	assert.Equal(t, "e1", joined[0].EventID)
	require.NotNil(t, joined[0].Event)
	assert.Equal(t, "Drill", joined[0].Event.Title)

	// The orphaned registration stays in storage.
	assert.Len(t, env.registrations.List(context.Background()), 2)
}

func TestEventRegistrationsJoinsUsers(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "u1", "Asha", "asha@example.com", model.RoleUser)
	env.addUser(t, "u2", "Ravi", "ravi@example.com", model.RoleUser)
	env.addEvent(t, "e1", "Drill", false)

	_, err := env.registrationsvc.Register(context.Background(), "u1", "e1")
	require.NoError(t, err)
	_, err = env.registrationsvc.Register(context.Background(), "u2", "e1")
	require.NoError(t, err)

	require.NoError(t, env.users.Delete(context.Background(), "u2"))

	roster := env.registrationsvc.EventRegistrations(context.Background(), "e1")
	require.Len(t, roster, 2)

	byUser := map[string]*model.UserSummary{}
	for _, row := range roster {
		byUser[row.UserID] = row.User
	}
	require.NotNil(t, byUser["u1"])
	assert.Equal(t, "Asha", byUser["u1"].Name)
	assert.Nil(t, byUser["u2"])
}
