package testutils

import (
	"fmt"
	"os"
	"testing"
	"time"

	"bleck-backend/internal/database"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// BaseTestSuite owns a throwaway Postgres container with the migrated schema
type BaseTestSuite struct {
	DB       *gorm.DB
	t        *testing.T
	pool     *dockertest.Pool
	resource *dockertest.Resource
}

// SetupTestSuite starts Postgres in Docker and migrates the schema.
// The calling test is skipped when Docker is not reachable.
// TEST_DATABASE_URL points the suite at an existing database instead.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	t.Helper()

	if dsn := os.Getenv("TEST_DATABASE_URL"); dsn != "" {
		db := openAndMigrate(t, dsn)
		return &BaseTestSuite{DB: db, t: t}
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker not available: %v", err)
	}
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("docker not reachable: %v", err)
	}
	pool.MaxWait = 2 * time.Minute

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=bleck_test",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Skipf("could not start postgres container: %v", err)
	}
	_ = resource.Expire(300)

	dsn := fmt.Sprintf("postgres://postgres:postgres@%s/bleck_test?sslmode=disable", resource.GetHostPort("5432/tcp"))

	var db *gorm.DB
	if err := pool.Retry(func() error {
		var openErr error
		db, openErr = gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
		if openErr != nil {
			return openErr
		}
		sqlDB, openErr := db.DB()
		if openErr != nil {
			return openErr
		}
		return sqlDB.Ping()
	}); err != nil {
		_ = pool.Purge(resource)
		t.Fatalf("could not connect to postgres: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		_ = pool.Purge(resource)
		t.Fatalf("migrate: %v", err)
	}

	return &BaseTestSuite{DB: db, t: t, pool: pool, resource: resource}
}

func openAndMigrate(t *testing.T, dsn string) *gorm.DB {
	t.Helper()
	db, err := database.Initialize(dsn, &database.Options{LogLevel: logger.Silent})
	if err != nil {
		t.Fatalf("initialize database: %v", err)
	}
	return db
}

// SetupTest runs before each test
func (s *BaseTestSuite) SetupTest() {
	s.truncate()
}

// TearDownTest runs after each test
func (s *BaseTestSuite) TearDownTest() {
	s.truncate()
}

// TeardownTestSuite closes the connection and removes the container
func (s *BaseTestSuite) TeardownTestSuite() {
	if s.DB != nil {
		if sqlDB, err := s.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if s.pool != nil && s.resource != nil {
		if err := s.pool.Purge(s.resource); err != nil {
			s.t.Logf("could not purge postgres container: %v", err)
		}
	}
}

func (s *BaseTestSuite) truncate() {
	if s.DB != nil {
		s.DB.Exec(`TRUNCATE TABLE "platform_tokens"`)
	}
}
