package service

import (
	"context"
	"fmt"

	"mini-rules/internal/capability"
	"mini-rules/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	payments capability.PaymentProcessor
	logger   zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(payments capability.PaymentProcessor, logger zerolog.Logger) OrderService {
	return &orderService{
		payments: payments,
		logger:   logger.With().Str("service", "order").Logger(),
	}
}

// SubmitOrder charges the card exactly once. A declined charge yields a
// failed result with the payment_error code; no retry is attempted.
func (s *orderService) SubmitOrder(ctx context.Context, order model.Order, card model.CreditCard) (model.OrderResult, error) {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	log := s.logger.With().Str("order_id", order.ID.String()).Logger()

	result, err := s.payments.Charge(ctx, card, order.TotalAmount)
	if err != nil {
		log.Error().Err(err).Float64("amount", order.TotalAmount).Msg("failed to charge payment instrument")
		return model.OrderResult{}, fmt.Errorf("failed to charge order %s: %w", order.ID, err)
	}

	switch result.Status {
	case model.ChargeSuccess:
		log.Info().Float64("amount", order.TotalAmount).Msg("order submitted successfully")
		return model.OrderResult{Success: true}, nil
	case model.ChargeFailed:
		log.Warn().Float64("amount", order.TotalAmount).Msg("payment declined")
		return model.OrderResult{Success: false, Error: model.PaymentErrorCode}, nil
	default:
		log.Error().Str("status", string(result.Status)).Msg("unknown charge status")
		return model.OrderResult{}, fmt.Errorf("order %s: unknown charge status %q", order.ID, result.Status)
	}
}
