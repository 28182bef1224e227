package database

import (
	"context"
	"testing"
	"time"

	"mini-rules/internal/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func testDatabaseConfig() config.DatabaseConfig {
	return config.DatabaseConfig{
		Host:            "localhost",
		Port:            5432,
		User:            "postgres",
		Password:        "postgres",
		Database:        "testdb",
		MaxConnections:  4,
		MinConnections:  1,
		MaxConnLifetime: 120,
	}
}

func TestPoolConfig(t *testing.T) {
	poolConfig, err := PoolConfig(testDatabaseConfig())

	require.NoError(t, err)
	assert.Equal(t, int32(4), poolConfig.MaxConns)
	assert.Equal(t, int32(1), poolConfig.MinConns)
	assert.Equal(t, 2*time.Minute, poolConfig.MaxConnLifetime)
	assert.Equal(t, 30*time.Minute, poolConfig.MaxConnIdleTime)
	assert.Equal(t, "testdb", poolConfig.ConnConfig.Database)
	assert.Equal(t, uint16(5432), poolConfig.ConnConfig.Port)
}

func TestNewPool_CannotConnect(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping network test in short mode")
	}

	cfg := testDatabaseConfig()
	cfg.Host = "invalid-host.invalid"

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := NewPool(ctx, cfg, zerolog.Nop())

	require.Error(t, err)
	assert.Nil(t, pool)
}

func TestNewPool_Success(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = pgContainer.Terminate(context.Background())
	})

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	cfg := testDatabaseConfig()
	cfg.Host = host
	cfg.Port = port.Int()

	pool, err := NewPool(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	defer pool.Close()

	assert.NoError(t, pool.Ping(ctx))
}
