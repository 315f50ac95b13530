package integration

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	// Create PostgreSQL container
	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	// Get connection string
	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	// Create connection pool
	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	// Create schema
	createSchema(t, pool)

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// createSchema creates the database schema for testing.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	schema := `
		CREATE TABLE IF NOT EXISTS products (
			id VARCHAR(50) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price DECIMAL(10, 2) NOT NULL,
			old_price DECIMAL(10, 2) NOT NULL,
			type VARCHAR(20) NOT NULL,
			features TEXT[] NOT NULL DEFAULT '{}'
		);
	`

	if _, err := pool.Exec(ctx, schema); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
}

// SeedProducts inserts the sample catalogue into the products table.
func SeedProducts(t *testing.T, db *TestDB) {
	t.Helper()

	ctx := context.Background()

	products := []struct {
		id          string
		name        string
		description string
		price       float64
		oldPrice    float64
		typ         string
		features    []string
	}{
		{"mb_student", "MedBase Student", "Идеальный старт для студентов-медиков.", 4990, 8500, "student",
			[]string{"Библиотека учебников ГЭОТАР", "Базовый ИИ-ассистент", "Тесты для аккредитации"}},
		{"mb_pro", "MedBase Pro", "Для практикующих врачей и ординаторов.", 9990, 16650, "pro",
			[]string{"Все клинические рекомендации", "Продвинутый ИИ-диагност", "Правовая поддержка 24/7"}},
		{"mb_premium", "MedBase Premium", "Полный доступ ко всей экосистеме.", 14990, 24000, "premium",
			[]string{"Доступ к иностранным гайдлайнам", "Персональный менеджер", "Видео-лекции экспертов"}},
	}

	for _, p := range products {
		_, err := db.Pool.Exec(ctx, `
			INSERT INTO products (id, name, description, price, old_price, type, features)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO NOTHING
		`, p.id, p.name, p.description, p.price, p.oldPrice, p.typ, p.features)
		if err != nil {
			t.Fatalf("failed to seed product %s: %v", p.id, err)
		}
	}
}

// NopLogger returns a disabled logger for integration tests.
func NopLogger() zerolog.Logger {
	return zerolog.Nop()
}
