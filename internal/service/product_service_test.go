package service

import (
	"context"
	"testing"

	"gift-shop/internal/catalog"
	"gift-shop/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	cat, err := catalog.New([]model.Product{
		{ID: "mb_student", Name: "MedBase Student", Price: 4990, OldPrice: 8500, Type: model.TypeStudent},
		{ID: "mb_pro", Name: "MedBase Pro", Price: 9990, OldPrice: 16650, Type: model.TypePro},
		{ID: "mb_premium", Name: "MedBase Premium", Price: 14990, OldPrice: 24000, Type: model.TypePremium},
	})
	require.NoError(t, err)
	return cat
}

func TestProductService_GetAll(t *testing.T) {
	logger := zerolog.Nop()
	service := NewProductService(testCatalog(t), logger)

	products, err := service.GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "mb_student", products[0].ID)
	assert.Equal(t, "mb_pro", products[1].ID)
	assert.Equal(t, "mb_premium", products[2].ID)
}

func TestProductService_GetByID(t *testing.T) {
	logger := zerolog.Nop()
	service := NewProductService(testCatalog(t), logger)
	ctx := context.Background()

	tests := []struct {
		name        string
		productID   string
		expectError bool
		expected    string
	}{
		{name: "Existing product", productID: "mb_pro", expectError: false, expected: "MedBase Pro"},
		{name: "Unknown product", productID: "mb_enterprise", expectError: true},
		{name: "Empty product ID", productID: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product, err := service.GetByID(ctx, tt.productID)

			if tt.expectError {
				require.ErrorIs(t, err, model.ErrProductNotFound)
				assert.Nil(t, product)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, product.Name)
			}
		})
	}
}
