package reservation

import (
	"context"
	"fmt"
	"time"

	"gift-shop/internal/catalog"
	"gift-shop/internal/model"

	"github.com/rs/zerolog"
)

// Reserver reserves an activation code for a product and packages it into a
// certificate. This is the seam where a real inventory backend plugs in; the
// shipped implementation is a mock that generates codes locally.
//
// Callers are expected to keep at most one reservation outstanding per order
// flow; the reserver does not enforce this.
type Reserver interface {
	// Reserve produces a certificate for the given product and order.
	Reserve(ctx context.Context, productID string, ord model.GiftOrder) (*model.Certificate, error)
}

// ReserverConfig holds configuration for the mock reserver.
type ReserverConfig struct {
	// Delay is the simulated latency of the reservation call, so the calling
	// UI can exercise its pending state.
	Delay time.Duration

	// VendorPrefix is the namespace token stripped from product ids when
	// deriving code prefixes.
	VendorPrefix string
}

// DefaultReserverConfig returns the default reserver configuration.
func DefaultReserverConfig() *ReserverConfig {
	return &ReserverConfig{
		Delay:        1500 * time.Millisecond,
		VendorPrefix: "mb_",
	}
}

// mockReserver implements Reserver by generating codes locally behind a
// simulated network delay.
type mockReserver struct {
	catalog *catalog.Catalog
	expiry  ExpiryPolicy
	config  *ReserverConfig
	logger  zerolog.Logger
}

// NewMockReserver creates a reserver that stands in for a real inventory
// system. It looks products up in the catalogue, generates an activation code,
// waits the configured delay, and assembles the certificate.
func NewMockReserver(cat *catalog.Catalog, expiry ExpiryPolicy, config *ReserverConfig, logger zerolog.Logger) Reserver {
	if config == nil {
		config = DefaultReserverConfig()
	}

	return &mockReserver{
		catalog: cat,
		expiry:  expiry,
		config:  config,
		logger:  logger.With().Str("component", "mock-reserver").Logger(),
	}
}

// Reserve produces a certificate for the given product and order.
func (r *mockReserver) Reserve(ctx context.Context, productID string, ord model.GiftOrder) (*model.Certificate, error) {
	product, ok := r.catalog.Get(productID)
	if !ok {
		r.logger.Warn().Str("product_id", productID).Msg("unknown product id")
		return nil, model.ErrProductNotFound
	}

	code := NewCode(CodePrefix(productID, r.config.VendorPrefix))

	// Simulated latency of a real reservation call. The only suspension point
	// in the purchase flow; aborts early if the caller gives up.
	if r.config.Delay > 0 {
		timer := time.NewTimer(r.config.Delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			r.logger.Warn().
				Str("product_id", productID).
				Err(ctx.Err()).
				Msg("reservation cancelled")
			return nil, fmt.Errorf("%w: %v", model.ErrReservationFailed, ctx.Err())
		case <-timer.C:
		}
	}

	cert := model.NewCertificate(product, ord, code, r.expiry.ExpiryDate(time.Now()))

	r.logger.Info().
		Str("product_id", productID).
		Str("code", cert.Code).
		Msg("code reserved")

	return &cert, nil
}
