package db

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

var (
	setupOnce sync.Once
	setupErr  error
	container *postgres.PostgresContainer
	testDSN   string
	testPool  *pgxpool.Pool
)

// TestMain гасит контейнер после всех тестов пакета.
func TestMain(m *testing.M) {
	code := m.Run()
	if testPool != nil {
		testPool.Close()
	}
	if container != nil {
		if err := testcontainers.TerminateContainer(container); err != nil {
			log.Printf("terminating postgres container: %v", err)
		}
	}
	os.Exit(code)
}

// setupTestDB поднимает PostgreSQL 16 testcontainer один раз на пакет,
// применяет миграции и очищает save_slots перед каждым тестом.
// Без docker тест пропускается.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)

	setupOnce.Do(func() {
		ctx := context.Background()
		container, setupErr = postgres.Run(ctx, "postgres:16-alpine",
			postgres.WithDatabase("testdb"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			postgres.BasicWaitStrategies(),
		)
		if setupErr != nil {
			return
		}
		testDSN, setupErr = container.ConnectionString(ctx, "sslmode=disable")
		if setupErr != nil {
			return
		}
		if setupErr = RunMigrations(ctx, testDSN); setupErr != nil {
			return
		}
		testPool, setupErr = pgxpool.New(ctx, testDSN)
	})
	if setupErr != nil {
		t.Fatalf("setting up test database: %v", setupErr)
	}

	if _, err := testPool.Exec(t.Context(), "TRUNCATE save_slots"); err != nil {
		t.Fatalf("truncating save_slots: %v", err)
	}
	return testPool
}
