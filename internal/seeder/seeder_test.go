package seeder

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/planhub/planhub/internal/database"
)

func setupTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	ctx := context.Background()

	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("planhub_test"),
		postgres.WithUsername("planhub"),
		postgres.WithPassword("planhub"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Skipf("could not start postgres container: %v", err)
	}
	t.Cleanup(func() {
		_ = ctr.Terminate(ctx)
	})

	connStr, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, database.RunMigrations(pool))

	return pool
}

func countRows(t *testing.T, pool *pgxpool.Pool, table string) int64 {
	t.Helper()
	var count int64
	err := pool.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&count)
	require.NoError(t, err)
	return count
}

func TestSeedIsIdempotent(t *testing.T) {
	pool := setupTestPool(t)

	s := New(pool, 42)
	require.NoError(t, s.Seed())

	counts := make(map[string]int64, len(clearOrder))
	for _, table := range clearOrder {
		counts[table] = countRows(t, pool, table)
	}
	assert.Greater(t, counts["users"], int64(0))
	assert.Greater(t, counts["organizations"], int64(0))
	assert.Greater(t, counts["tasks"], int64(0))
	assert.Greater(t, counts["task_dependencies"], int64(0))

	// A second run finds everything by slug/email/title and inserts nothing.
	require.NoError(t, New(pool, 42).Seed())
	for _, table := range clearOrder {
		assert.Equal(t, counts[table], countRows(t, pool, table), "table %s grew on reseed", table)
	}
}

func TestSeedAdminOnly(t *testing.T) {
	pool := setupTestPool(t)

	require.NoError(t, New(pool, 1).SeedAdmin())

	assert.Equal(t, int64(1), countRows(t, pool, "users"))
	assert.Equal(t, int64(0), countRows(t, pool, "organizations"))

	// Repeat runs keep the single account.
	require.NoError(t, New(pool, 1).SeedAdmin())
	assert.Equal(t, int64(1), countRows(t, pool, "users"))
}

func TestClearEmptiesEverything(t *testing.T) {
	pool := setupTestPool(t)

	s := New(pool, 7)
	require.NoError(t, s.Seed())
	require.NoError(t, s.Clear())

	for _, table := range clearOrder {
		assert.Equal(t, int64(0), countRows(t, pool, table), "table %s not empty", table)
	}
}
