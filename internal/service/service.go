package service

import (
	"context"

	"gift-shop/internal/model"
)

// ProductService defines operations for browsing the gift catalogue.
type ProductService interface {
	// GetAll retrieves all products in catalogue order.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)
}

// GiftService defines the gift purchase flow: validate the personalisation
// form, reserve an activation code, assemble the certificate.
type GiftService interface {
	// Purchase validates the request and reserves a certificate. On a
	// validation failure it returns *order.ValidationError and the reserver
	// is never invoked.
	Purchase(ctx context.Context, req *model.PurchaseRequest) (*model.Certificate, error)
}
