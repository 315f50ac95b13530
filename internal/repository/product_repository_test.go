package repository

import (
	"context"
	"testing"
	"time"

	"gift-shop/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB creates a PostgreSQL testcontainer and returns a connection pool.
func setupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	ctx := context.Background()

	// Start PostgreSQL container
	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	// Get connection string
	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	// Create connection pool
	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	// Create schema
	createSchema(t, pool)

	// Cleanup function
	cleanup := func() {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
	}

	return pool, cleanup
}

// createSchema creates the necessary database schema for testing.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
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
		)
	`

	_, err := pool.Exec(ctx, schema)
	require.NoError(t, err)
}

// insertTestProducts seeds the products table with the sample catalogue.
func insertTestProducts(t *testing.T, pool *pgxpool.Pool) {
	ctx := context.Background()

	products := []model.Product{
		{ID: "mb_student", Name: "MedBase Student", Description: "Для студентов", Price: 4990, OldPrice: 8500,
			Type: model.TypeStudent, Features: []string{"Библиотека учебников", "Базовый ИИ-ассистент"}},
		{ID: "mb_pro", Name: "MedBase Pro", Description: "Для врачей", Price: 9990, OldPrice: 16650,
			Type: model.TypePro, Features: []string{"Все клинические рекомендации"}},
	}

	for _, p := range products {
		_, err := pool.Exec(ctx, `
			INSERT INTO products (id, name, description, price, old_price, type, features)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, p.ID, p.Name, p.Description, p.Price, p.OldPrice, string(p.Type), p.Features)
		require.NoError(t, err)
	}
}

func TestProductRepository_GetAll(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping testcontainer test in short mode")
	}

	pool, cleanup := setupTestDB(t)
	defer cleanup()

	insertTestProducts(t, pool)

	repo := NewProductRepository(pool, zerolog.Nop())

	products, err := repo.GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)

	// Ordered by price
	assert.Equal(t, "mb_student", products[0].ID)
	assert.Equal(t, "mb_pro", products[1].ID)
	assert.Equal(t, model.TypeStudent, products[0].Type)
	assert.Equal(t, []string{"Все клинические рекомендации"}, products[1].Features)
}

func TestProductRepository_GetByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping testcontainer test in short mode")
	}

	pool, cleanup := setupTestDB(t)
	defer cleanup()

	insertTestProducts(t, pool)

	repo := NewProductRepository(pool, zerolog.Nop())
	ctx := context.Background()

	product, err := repo.GetByID(ctx, "mb_pro")
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "MedBase Pro", product.Name)
	assert.Equal(t, 9990.0, product.Price)
	assert.Equal(t, 16650.0, product.OldPrice)

	missing, err := repo.GetByID(ctx, "mb_enterprise")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
