package service

import (
	"context"

	"gift-shop/internal/catalog"
	"gift-shop/internal/model"

	"github.com/rs/zerolog"
)

// productService implements ProductService over the in-memory catalogue.
type productService struct {
	catalog *catalog.Catalog
	logger  zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(cat *catalog.Catalog, logger zerolog.Logger) ProductService {
	return &productService{
		catalog: cat,
		logger:  logger.With().Str("service", "product").Logger(),
	}
}

// GetAll retrieves all products in catalogue order.
func (s *productService) GetAll(ctx context.Context) ([]model.Product, error) {
	products := s.catalog.All()

	s.logger.Debug().
		Int("count", len(products)).
		Msg("retrieved products")

	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if id == "" {
		s.logger.Warn().Msg("product ID is empty")
		return nil, model.ErrProductNotFound
	}

	product, ok := s.catalog.Get(id)
	if !ok {
		s.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return &product, nil
}
