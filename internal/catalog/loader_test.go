package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalogJSON = `[
	{
		"id": "mb_student",
		"name": "MedBase Student",
		"description": "Идеальный старт для студентов-медиков.",
		"price": 4990,
		"oldPrice": 8500,
		"type": "student",
		"features": ["Библиотека учебников", "Базовый ИИ-ассистент"]
	},
	{
		"id": "mb_pro",
		"name": "MedBase Pro",
		"description": "Для практикующих врачей.",
		"price": 9990,
		"oldPrice": 16650,
		"type": "pro",
		"features": ["Все клинические рекомендации"]
	}
]`

func writeTempCatalog(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFileLoader_Load(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())
	path := writeTempCatalog(t, sampleCatalogJSON)

	products, err := loader.Load(context.Background(), path)

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "mb_student", products[0].ID)
	assert.Equal(t, "MedBase Student", products[0].Name)
	assert.Equal(t, 4990.0, products[0].Price)
	assert.Equal(t, 8500.0, products[0].OldPrice)
	assert.Len(t, products[0].Features, 2)
	assert.Equal(t, "mb_pro", products[1].ID)
}

func TestFileLoader_LoadMissingFile(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())

	products, err := loader.Load(context.Background(), filepath.Join(t.TempDir(), "missing.json"))

	assert.Error(t, err)
	assert.Nil(t, products)
}

func TestFileLoader_LoadInvalidJSON(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())
	path := writeTempCatalog(t, "{not json")

	products, err := loader.Load(context.Background(), path)

	assert.Error(t, err)
	assert.Nil(t, products)
}

func TestFileLoader_LoadCancelledContext(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())
	path := writeTempCatalog(t, sampleCatalogJSON)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := loader.Load(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFallbackLoader_S3Disabled(t *testing.T) {
	fileLoader := NewFileLoader(zerolog.Nop())
	loader := NewFallbackLoader(nil, fileLoader, "catalog/", false, zerolog.Nop())
	path := writeTempCatalog(t, sampleCatalogJSON)

	products, err := loader.Load(context.Background(), path)

	require.NoError(t, err)
	assert.Len(t, products, 2)
}
