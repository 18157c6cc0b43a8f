package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/best-life-api/internal/config"
	"github.com/best-life-api/internal/database"
	"github.com/best-life-api/internal/models"
	"github.com/best-life-api/internal/repository"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const migrationsPath = "../../migrations"

// startPostgres runs a throwaway Postgres and returns a migrated connection
func startPostgres(t *testing.T) *database.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "postgres",
				"POSTGRES_DB":       "best_life",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("terminate postgres container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	db, err := database.New(&config.DatabaseConfig{
		Host:         host,
		Port:         port.Port(),
		User:         "postgres",
		Password:     "postgres",
		Name:         "best_life",
		SSLMode:      "disable",
		MaxOpenConns: 5,
		MaxIdleConns: 2,
		MaxLifetime:  time.Minute,
	}, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.RunMigrations(migrationsPath))
	return db
}

func TestIntegration_Repositories(t *testing.T) {
	db := startPostgres(t)
	repos := repository.New(db)
	ctx := context.Background()

	t.Run("users and roles", func(t *testing.T) {
		user, err := repos.User.GetByID(ctx, 3)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "james_p", user.Name)
		assert.Equal(t, "policymaker", user.RoleName)

		roleID, err := repos.User.GetRoleIDByName(ctx, "student")
		require.NoError(t, err)
		assert.Equal(t, int64(1), *roleID)

		names, err := repos.User.ListNamesByRoleID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"grace_h", "gmiller"}, names)

		userID, err := repos.User.GetIDByName(ctx, "faye_w")
		require.NoError(t, err)
		assert.Equal(t, int64(4), *userID)
	})

	t.Run("filter fold matches postgres types", func(t *testing.T) {
		scores, err := repos.Score.ListPredicted(ctx, models.ScoreFilter{})
		require.NoError(t, err)
		assert.Len(t, scores, 20)

		scores, err = repos.Score.ListPredicted(ctx, models.ScoreFilter{CountryID: "3", FactorID: "2"})
		require.NoError(t, err)
		require.Len(t, scores, 1)
		assert.True(t, scores[0].Score.Equal(decimal.RequireFromString("91.2")))

		scores, err = repos.Score.ListPredicted(ctx, models.ScoreFilter{PredScore: "82.10"})
		require.NoError(t, err)
		require.Len(t, scores, 1)
		assert.Equal(t, int64(1), scores[0].CountryID)
	})

	t.Run("ml scores for one year", func(t *testing.T) {
		scores, err := repos.Score.ListMLScores(ctx, 2022)
		require.NoError(t, err)
		assert.Len(t, scores, 5)

		scores, err = repos.Score.ListMLScores(ctx, 2021)
		require.NoError(t, err)
		require.Len(t, scores, 1)
		assert.Equal(t, "Canada", scores[0].CountryName)
	})

	t.Run("preferences newest first", func(t *testing.T) {
		userID := int64(1)
		for i := 1; i <= 5; i++ {
			date := fmt.Sprintf("2024-0%d-15", i+4)
			top := fmt.Sprintf("Country %d", i)
			require.NoError(t, repos.Preference.Create(ctx, &models.PreferenceRequest{
				UserID:     &userID,
				PrefDate:   &date,
				TopCountry: &top,
				Weight1:    decimal.NewNullDecimal(decimal.RequireFromString("0.25")),
			}))
		}

		prefs, err := repos.Preference.ListRecent(ctx, 1, 5)
		require.NoError(t, err)
		require.Len(t, prefs, 5)
		assert.Equal(t, "Country 5", *prefs[0].TopCountry)
		assert.Equal(t, "Country 1", *prefs[4].TopCountry)
	})

	t.Run("lookups", func(t *testing.T) {
		names, err := repos.Lookup.CountryNames(ctx)
		require.NoError(t, err)
		assert.Len(t, names, 5)

		orgs, err := repos.Lookup.Organizations(ctx, 2, 4)
		require.NoError(t, err)
		require.Len(t, orgs, 1)
		assert.Equal(t, "Green Denmark Alliance", orgs[0].Name)

		unis, err := repos.Lookup.Universities(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, unis, 2)
	})

	t.Run("delete then lookup", func(t *testing.T) {
		deleted, err := repos.User.Delete(ctx, 2)
		require.NoError(t, err)
		assert.True(t, deleted)

		user, err := repos.User.GetByID(ctx, 2)
		require.NoError(t, err)
		assert.Nil(t, user)

		require.NoError(t, repos.User.UpdateName(ctx, 99, "ghost"))
	})
}

func TestIntegration_MigrateToVersion(t *testing.T) {
	db := startPostgres(t)
	repos := repository.New(db)
	ctx := context.Background()

	require.NoError(t, db.MigrateToVersion(migrationsPath, 1))
	names, err := repos.Lookup.CountryNames(ctx)
	require.NoError(t, err)
	assert.Empty(t, names, "seed data is rolled back with version 2")

	require.NoError(t, db.RunMigrations(migrationsPath))
	names, err = repos.Lookup.CountryNames(ctx)
	require.NoError(t, err)
	assert.Len(t, names, 5)
}
