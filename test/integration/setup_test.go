package integration

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/navacharity/charity-go/db"
	"github.com/navacharity/charity-go/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupPostgres wires the global DB to a real Postgres: an external one when
// TEST_DB_DSN is set, otherwise a throwaway container. Skipped unless
// integration runs are opted into.
func setupPostgres(t *testing.T) {
	t.Helper()

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		if os.Getenv("RUN_INTEGRATION") == "" {
			t.Skip("set RUN_INTEGRATION=1 or TEST_DB_DSN to run integration tests")
		}

		ctx := context.Background()
		req := testcontainers.ContainerRequest{
			Image: "postgres:15",
			Env: map[string]string{
				"POSTGRES_PASSWORD": "test",
				"POSTGRES_USER":     "test",
				"POSTGRES_DB":       "charity",
			},
			ExposedPorts: []string{"5432/tcp"},
			WaitingFor:   wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
		}

		pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		if err != nil {
			t.Fatalf("start postgres container: %v", err)
		}
		t.Cleanup(func() { _ = pg.Terminate(ctx) })

		host, err := pg.Host(ctx)
		if err != nil {
			t.Fatalf("container host: %v", err)
		}
		port, err := pg.MappedPort(ctx, "5432")
		if err != nil {
			t.Fatalf("container port: %v", err)
		}
		dsn = fmt.Sprintf("host=%s port=%s user=test password=test dbname=charity sslmode=disable", host, port.Port())
	}

	waitForPostgres(t, dsn)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open gorm: %v", err)
	}

	if err := gormDB.Migrator().DropTable(
		&models.AuditLog{},
		&models.Task{},
		&models.Benefactor{},
		&models.Charity{},
		&models.User{},
	); err != nil {
		t.Fatalf("drop tables: %v", err)
	}
	if err := gormDB.AutoMigrate(
		&models.User{},
		&models.Benefactor{},
		&models.Charity{},
		&models.Task{},
		&models.AuditLog{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	db.InitWithGormDB(gormDB)
}

func waitForPostgres(t *testing.T, dsn string) {
	t.Helper()

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	defer sqlDB.Close()

	deadline := time.Now().Add(30 * time.Second)
	for {
		if err = sqlDB.Ping(); err == nil {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("postgres not reachable: %v", err)
		}
		time.Sleep(500 * time.Millisecond)
	}
}
