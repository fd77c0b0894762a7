//go:build integration

package containers

import (
	"context"
	"io"
	"testing"
	"time"

	"doctor-matching/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// PostgresContainer is a migrated Postgres instance with the specialty catalog seeded.
type PostgresContainer struct {
	URL string
	DB  *gorm.DB
}

// NewPostgresContainer starts Postgres, applies every migration and opens a gorm pool.
func NewPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("doctor_matching"),
		tcpostgres.WithUsername("doctor"),
		tcpostgres.WithPassword("doctor"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	url, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	migrator, err := database.NewMigratorFromURL(url, log)
	if err != nil {
		t.Fatalf("failed to create migrator: %v", err)
	}
	defer migrator.Close()
	if err := migrator.Up(); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	db, err := gorm.Open(postgres.Open(url), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return &PostgresContainer{URL: url, DB: db}
}

// Reset removes every doctor and dependent row, leaving the catalog intact.
func (p *PostgresContainer) Reset(t *testing.T) {
	t.Helper()
	if err := p.DB.Exec("TRUNCATE doctors, doctor_specialties, audit_logs RESTART IDENTITY CASCADE").Error; err != nil {
		t.Fatalf("failed to reset tables: %v", err)
	}
}
