package test_utils

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ampliy/ampliy/internal/config"
	"github.com/ampliy/ampliy/internal/database"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

const (
	dbName     = "ampliy"
	dbUser     = "test_ampliy"
	dbPassword = "test_ampliy"
)

func preparePostgresContainer(ctx context.Context) (container *postgres.PostgresContainer, err error) {
	projectRoot, err := findProjectRoot()
	if err != nil {
		return nil, fmt.Errorf("failed to find project root: %w", err)
	}

	// testcontainers panics instead of failing when no Docker host can be found
	defer func() {
		if r := recover(); r != nil {
			container, err = nil, fmt.Errorf("docker unavailable: %v", r)
		}
	}()

	pgContainer, err := postgres.Run(
		ctx, "postgres:18.1-alpine",
		postgres.WithInitScripts(filepath.Join(projectRoot, "dev", "init.sql")),
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start container: %w", err)
	}
	return pgContainer, nil
}

// TestWithDB sets up a Postgres instance, applies all migrations and returns a pool
// connected to it. The cleanup function closes the pool and terminates the container.
func TestWithDB() (*pgxpool.Pool, func(), error) {
	ctx := context.Background()

	container, err := preparePostgresContainer(ctx)
	if err != nil {
		return nil, func() {}, err
	}
	terminate := func() {
		if err := container.Terminate(ctx); err != nil {
			log.Warnf("failed to terminate postgres container: %v", err)
		}
	}

	host, err := container.Host(ctx)
	if err != nil {
		terminate()
		return nil, func() {}, fmt.Errorf("failed to read container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		terminate()
		return nil, func() {}, fmt.Errorf("failed to read container port: %w", err)
	}
	log.Infof("Postgres container started at %s:%d", host, port.Int())

	cfg := config.Database{
		Host:   host,
		Port:   port.Int(),
		User:   dbUser,
		Pass:   dbPassword,
		Name:   dbName,
		Schema: "ampliy",
	}

	if err := database.Migrate(cfg); err != nil {
		terminate()
		return nil, func() {}, fmt.Errorf("failed to apply migrations: %w", err)
	}

	pool, err := database.Open(ctx, cfg)
	if err != nil {
		terminate()
		return nil, func() {}, fmt.Errorf("failed to open database connection: %w", err)
	}

	return pool, func() {
		pool.Close()
		terminate()
	}, nil
}

// findProjectRoot walks up from the working directory to the directory holding go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if fileExists(filepath.Join(dir, "go.mod")) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find project root")
		}
		dir = parent
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
