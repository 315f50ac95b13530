package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"gift-shop/internal/model"

	"github.com/rs/zerolog"
)

// Loader loads the product catalogue from a source.
type Loader interface {
	// Load reads the catalogue at the given path and returns its products.
	Load(ctx context.Context, path string) ([]model.Product, error)
}

// fileLoader implements Loader for reading catalogue JSON files.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based catalogue loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "catalog-loader").Logger(),
	}
}

// Load reads a catalogue JSON file containing an array of products.
func (l *fileLoader) Load(ctx context.Context, filePath string) ([]model.Product, error) {
	l.logger.Info().Str("file", filePath).Msg("loading catalogue file")

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to read catalogue file")
		return nil, fmt.Errorf("failed to read catalogue file %s: %w", filePath, err)
	}

	var products []model.Product
	if err := json.Unmarshal(data, &products); err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to parse catalogue file")
		return nil, fmt.Errorf("failed to parse catalogue file %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("products_loaded", len(products)).
		Msg("catalogue file loaded successfully")

	return products, nil
}
