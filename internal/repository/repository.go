package repository

import (
	"context"

	"gift-shop/internal/model"
)

// ProductRepository defines the interface for product data access operations.
// The repository is a read-only catalogue source: the service keeps the
// catalogue in memory after startup and never writes products back.
type ProductRepository interface {
	// GetAll retrieves all products in catalogue order.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by its ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)
}
