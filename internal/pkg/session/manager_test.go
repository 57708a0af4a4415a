package session

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/apperrors"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/database"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/models"
)

func setupRedisManager(t *testing.T) (*Manager, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewManager(NewRedisStore(&database.RedisClient{Client: client})), mr
}

func testUser() *models.User {
	return &models.User{
		ID:       uuid.New(),
		MSISDN:   "6281234567890",
		FullName: "Ahmad",
		City:     "Jakarta",
		Role:     models.RoleVolunteer,
		IsActive: true,
	}
}

func TestManager_SaveAndLoad(t *testing.T) {
	for name, mgr := range map[string]*Manager{
		"memory": NewManager(NewMemoryStore()),
	} {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			user := testUser()
			userID := user.ID.String()

			require.NoError(t, mgr.Save(ctx, userID, "token-abc", user))

			sess, err := mgr.Load(ctx, userID)
			require.NoError(t, err)
			assert.Equal(t, "token-abc", sess.AccessToken)
			require.NotNil(t, sess.User)
			assert.Equal(t, user.ID, sess.User.ID)
			assert.Equal(t, user.MSISDN, sess.User.MSISDN)
			assert.Empty(t, sess.Screens)
		})
	}
}

func TestManager_SaveAndLoad_Redis(t *testing.T) {
	mgr, _ := setupRedisManager(t)
	ctx := context.Background()
	user := testUser()
	userID := user.ID.String()

	require.NoError(t, mgr.Save(ctx, userID, "token-abc", user))

	sess, err := mgr.Load(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "token-abc", sess.AccessToken)
	require.NotNil(t, sess.User)
	assert.Equal(t, user.FullName, sess.User.FullName)
}

func TestManager_LoadMissingSession(t *testing.T) {
	mgr := NewManager(NewMemoryStore())

	_, err := mgr.Load(context.Background(), uuid.New().String())

	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestManager_SaveUserOverwritesSnapshot(t *testing.T) {
	mgr := NewManager(NewMemoryStore())
	ctx := context.Background()
	user := testUser()
	userID := user.ID.String()

	require.NoError(t, mgr.Save(ctx, userID, "token-abc", user))

	user.Role = models.RoleSupervisor
	require.NoError(t, mgr.SaveUser(ctx, userID, user))

	sess, err := mgr.Load(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleSupervisor, sess.User.Role)
	assert.Equal(t, "token-abc", sess.AccessToken)
}

func TestManager_NavigationRoundTrip(t *testing.T) {
	mgr, _ := setupRedisManager(t)
	ctx := context.Background()
	user := testUser()
	userID := user.ID.String()

	require.NoError(t, mgr.Save(ctx, userID, "token-abc", user))

	screens, err := mgr.PushScreen(ctx, userID, "dashboard")
	require.NoError(t, err)
	assert.Equal(t, []string{"dashboard"}, screens)

	// Pushing the active screen again does not grow the history.
	screens, err = mgr.PushScreen(ctx, userID, "dashboard")
	require.NoError(t, err)
	assert.Equal(t, []string{"dashboard"}, screens)

	screens, err = mgr.PushScreen(ctx, userID, "donors")
	require.NoError(t, err)
	assert.Equal(t, []string{"dashboard", "donors"}, screens)

	screens, err = mgr.PopScreen(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"dashboard"}, screens)

	// Back at the root is a no-op.
	screens, err = mgr.PopScreen(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"dashboard"}, screens)
}

func TestManager_ClearDropsEverything(t *testing.T) {
	mgr := NewManager(NewMemoryStore())
	ctx := context.Background()
	user := testUser()
	userID := user.ID.String()

	require.NoError(t, mgr.Save(ctx, userID, "token-abc", user))
	_, err := mgr.PushScreen(ctx, userID, "dashboard")
	require.NoError(t, err)

	require.NoError(t, mgr.Clear(ctx, userID))

	_, err = mgr.Load(ctx, userID)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestManager_ClearIsIdempotent(t *testing.T) {
	mgr := NewManager(NewMemoryStore())

	assert.NoError(t, mgr.Clear(context.Background(), uuid.New().String()))
}
