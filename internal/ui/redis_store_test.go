package ui

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestRedisStore_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("terminate redis container: %v", err)
		}
	})

	addr, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: addr})
	store := NewRedisStore(client, "test:session:", time.Minute)
	t.Cleanup(func() { _ = store.Close() })

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	userID := int64(3)
	require.NoError(t, store.Save(ctx, &Session{ID: "s1", Role: "policymaker", Username: "james_p", UserID: &userID, Authenticated: true}))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "james_p", got.Username)
	assert.Equal(t, int64(3), *got.UserID)
	assert.True(t, got.stored)

	ttl, err := client.TTL(ctx, "test:session:s1").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, store.Delete(ctx, "s1"))
	_, err = store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
