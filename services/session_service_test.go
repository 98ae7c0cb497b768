package services

import (
	"context"
	"testing"

	"fortumars-mart/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These run without Redis or Postgres configured, exercising the local
// in-process tier and the silent-degradation paths.

func TestSessionLoadCachedEmpty(t *testing.T) {
	svc := NewSessionService()
	assert.Nil(t, svc.LoadCached())
}

func TestSessionPersistThenLoadThenClear(t *testing.T) {
	svc := NewSessionService()
	user := models.User{ID: "u1", Email: "jane@example.com", Name: "Jane", Role: models.RoleUser}

	svc.Persist(user)

	cached := svc.LoadCached()
	require.NotNil(t, cached)
	assert.Equal(t, user, *cached)

	svc.Clear()
	assert.Nil(t, svc.LoadCached())
}

func TestReconcileWithoutRemoteStoreReturnsIdentityUnchanged(t *testing.T) {
	svc := NewSessionService()
	user := models.User{ID: "u1", Email: "jane@example.com", Name: "Jane", Role: models.RoleUser}

	assert.Equal(t, user, svc.Reconcile(context.Background(), user))
}

func TestDeviceDarkModeStoredPreferenceWins(t *testing.T) {
	svc := NewDeviceService()

	assert.True(t, svc.DarkMode(true), "no stored preference: system default applies")
	assert.False(t, svc.DarkMode(false))

	svc.SetDarkMode(false)
	assert.False(t, svc.DarkMode(true), "stored preference overrides system default")

	svc.SetDarkMode(true)
	assert.True(t, svc.DarkMode(false))
}
