package database

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/planhub/planhub/internal/config"
	"github.com/planhub/planhub/internal/logging"
)

var Pool *pgxpool.Pool

var log = logging.C("database")

func Connect(cfg *config.Config) (*pgxpool.Pool, error) {
	// Build connection string using postgres:// URL format.
	// url.UserPassword properly encodes username and password.
	userInfo := url.UserPassword(cfg.DBUsername, cfg.DBPassword)
	encodedDatabase := url.PathEscape(cfg.DBDatabase)

	dsn := fmt.Sprintf(
		"postgres://%s@%s:%s/%s?sslmode=disable",
		userInfo.String(),
		cfg.DBHost,
		cfg.DBPort,
		encodedDatabase,
	)

	log.Infof("Connecting to database: postgres://%s:***@%s:%s/%s", cfg.DBUsername, cfg.DBHost, cfg.DBPort, cfg.DBDatabase)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string (check your .env file): %w", err)
	}

	poolConfig.MaxConns = 25
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = 5 * time.Minute
	poolConfig.MaxConnIdleTime = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	Pool = pool
	log.Info("Database connection pool established")
	return pool, nil
}

func Close() {
	if Pool != nil {
		Pool.Close()
		log.Info("Database connection pool closed")
	}
}
