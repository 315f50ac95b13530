package service

import (
	"context"
	"fmt"

	"gift-shop/internal/model"
	"gift-shop/internal/order"
	"gift-shop/internal/reservation"

	"github.com/rs/zerolog"
)

// giftService implements GiftService.
type giftService struct {
	reserver reservation.Reserver
	logger   zerolog.Logger
}

// NewGiftService creates a new gift service.
func NewGiftService(reserver reservation.Reserver, logger zerolog.Logger) GiftService {
	return &giftService{
		reserver: reserver,
		logger:   logger.With().Str("service", "gift").Logger(),
	}
}

// Purchase validates the personalisation form and reserves a certificate.
// The flow is sequential with a typed result at each stage: collect and
// validate the form, reserve a code, assemble the certificate.
func (s *giftService) Purchase(ctx context.Context, req *model.PurchaseRequest) (*model.Certificate, error) {
	if req == nil {
		return nil, fmt.Errorf("purchase request is nil")
	}

	if req.ProductID == "" {
		s.logger.Warn().Msg("product ID is empty")
		return nil, model.ErrProductNotFound
	}

	collector := order.NewCollector()
	collector.UpdateField(order.FieldSenderName, req.SenderName)
	collector.UpdateField(order.FieldRecipientName, req.RecipientName)
	collector.UpdateField(order.FieldMessage, req.Message)
	collector.UpdateField(order.FieldEmail, req.Email)

	ord, fieldErrs := collector.Submit()
	if len(fieldErrs) > 0 {
		s.logger.Warn().
			Str("product_id", req.ProductID).
			Int("field_error_count", len(fieldErrs)).
			Msg("gift order validation failed")
		return nil, &order.ValidationError{Fields: fieldErrs}
	}

	cert, err := s.reserver.Reserve(ctx, req.ProductID, ord)
	if err != nil {
		s.logger.Warn().
			Str("product_id", req.ProductID).
			Err(err).
			Msg("code reservation failed")
		return nil, err
	}

	s.logger.Info().
		Str("product_id", req.ProductID).
		Str("product_name", cert.ProductName).
		Msg("gift purchased")

	return cert, nil
}
