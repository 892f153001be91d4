// Package containers runs the throwaway postgres instances the db and
// controller suites test against.
package containers

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	postgresImage = "postgres:16.3-alpine"
	databaseName  = "placar_magico"
	databaseUser  = "pmuser"
	databasePass  = "secret"
)

// DBContainer is a postgres container already seeded with the club schema
// (players, games, game_events and the drafted team tables).
type DBContainer struct {
	container *postgres.PostgresContainer
}

// Start launches postgres and applies schemaDir/schema.sql before returning.
// The caller owns the container and is responsible for Shutdown.
func Start(ctx context.Context, schemaDir string) (*DBContainer, error) {
	container, err := postgres.Run(ctx, postgresImage,
		postgres.WithDatabase(databaseName),
		postgres.WithUsername(databaseUser),
		postgres.WithPassword(databasePass),
		postgres.WithInitScripts(filepath.Join(schemaDir, "schema.sql")),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, fmt.Errorf("error starting postgres container: %w", err)
	}

	return &DBContainer{container: container}, nil
}

func (c *DBContainer) Shutdown(ctx context.Context) error {
	return c.container.Terminate(ctx)
}

// ConnectionString builds a pgx connection string for the container. The
// container speaks plain TCP, so sslmode is disabled.
func (c *DBContainer) ConnectionString(ctx context.Context) (string, error) {
	return c.container.ConnectionString(ctx, "sslmode=disable")
}
