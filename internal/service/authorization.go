package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gamevault/pensopay/internal/gateway"
	"github.com/gamevault/pensopay/internal/models"
	"github.com/gamevault/pensopay/internal/repository"
	"github.com/google/uuid"
)

// Authorize starts a payment for the cart: it creates the order, asks the
// gateway for a payment link and records the resulting intent in the ledger.
// Expected business failures (cart already placed elsewhere, rejected
// payment) come back as unsuccessful results, not errors.
func (s *LifecycleService) Authorize(ctx context.Context, cartID uuid.UUID, urls CheckoutURLs) (*AuthorizeResult, error) {
	cartRepo := repository.NewCartRepository(s.db)
	orderRepo := repository.NewOrderRepository(s.db)

	order, cart, early, err := s.createOrder(ctx, cartRepo, orderRepo, cartID)
	if err != nil {
		return nil, err
	}
	if early != nil {
		return early, nil
	}

	resp, err := s.gateway.CreatePayment(ctx, order, urls.SuccessURL, urls.CancelURL, urls.CallbackURL)
	if err != nil {
		// Create failures propagate: the caller owns the decision of how to
		// resume a checkout that never reached the gateway.
		return nil, &ServiceError{
			Code:    ErrCodeTransportFailure,
			Message: "failed to create payment at gateway",
			Err:     err,
		}
	}

	switch resp.State() {
	case models.PaymentStateRejected, models.PaymentStateCanceled:
		s.logger.Warn("gateway rejected payment creation",
			"order_id", order.ID,
			"state", resp.State(),
		)
		return &AuthorizeResult{
			Success: false,
			Code:    ErrCodeGatewayRejected,
			Message: "payment was rejected by the gateway",
			OrderID: order.ID,
		}, nil
	}

	return s.recordAuthorization(ctx, order, cart, resp)
}

// createOrder loads the cart and creates its order. A non-nil result means
// authorization ends early: the cart's order is already placed (neutral
// no-op) or the cart conflicts with an order placed elsewhere.
func (s *LifecycleService) createOrder(
	ctx context.Context,
	cartRepo repository.CartRepository,
	orderRepo repository.OrderRepository,
	cartID uuid.UUID,
) (*models.Order, *models.Cart, *AuthorizeResult, error) {
	cart, err := cartRepo.FindByID(ctx, cartID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, nil, nil, &ServiceError{
				Code:    ErrCodeCartNotFound,
				Message: "cart not found",
				Err:     err,
			}
		}
		return nil, nil, nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to load cart: %v", err),
		}
	}

	placed, err := orderRepo.FindPlacedByCart(ctx, cart.ID)
	if err == nil {
		return nil, nil, &AuthorizeResult{
			Success: true,
			Message: "order already placed",
			OrderID: placed.ID,
		}, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, nil, nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to check placed orders: %v", err),
		}
	}

	if err := s.validateCart(cart); err != nil {
		return nil, nil, nil, err
	}

	order, err := orderRepo.CreateFromCart(ctx, cart, cart.Reference, cart.TotalAmount, cart.Currency)
	if err != nil {
		if errors.Is(err, models.ErrCartOrderConflict) {
			return nil, nil, &AuthorizeResult{
				Success: false,
				Code:    ErrCodeOrderConflict,
				Message: err.Error(),
			}, nil
		}
		return nil, nil, nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to create order: %v", err),
		}
	}

	return order, cart, nil, nil
}

func (s *LifecycleService) validateCart(cart *models.Cart) error {
	if err := ValidateReference(cart.Reference, s.testmode); err != nil {
		return &ServiceError{Code: ErrCodeInvalidReference, Message: err.Error()}
	}
	if err := ValidateAmount(cart.TotalAmount); err != nil {
		return &ServiceError{Code: ErrCodeInvalidAmount, Message: err.Error()}
	}
	if err := ValidateCurrency(cart.Currency); err != nil {
		return &ServiceError{Code: ErrCodeInvalidCurrency, Message: err.Error()}
	}
	return nil
}

// recordAuthorization commits the paired writes for one created payment: the
// root intent ledger entry, the order placed flip when the state warrants it,
// and the cart's payment_intent pointer for later webhook correlation. The
// writes commit or roll back as a unit.
func (s *LifecycleService) recordAuthorization(ctx context.Context, order *models.Order, cart *models.Cart, resp *gateway.PaymentResponse) (*AuthorizeResult, error) {
	entry, err := entryFromResponse(order.ID, nil, resp, "")
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to start transaction: %v", err),
		}
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	result, err := s.performRecordAuthorization(ctx,
		repository.NewOrderRepository(tx),
		repository.NewTransactionRepository(tx),
		repository.NewCartRepository(tx),
		order, cart, entry, resp,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to commit transaction: %v", err),
		}
	}

	return result, nil
}

// performRecordAuthorization contains the core recording logic
func (s *LifecycleService) performRecordAuthorization(
	ctx context.Context,
	orderRepo repository.OrderRepository,
	ledger repository.TransactionRepository,
	cartRepo repository.CartRepository,
	order *models.Order,
	cart *models.Cart,
	entry *models.Transaction,
	resp *gateway.PaymentResponse,
) (*AuthorizeResult, error) {
	if _, err := orderRepo.FindByIDForUpdate(ctx, order.ID); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to lock order: %v", err),
		}
	}

	if err := ledger.Append(ctx, entry); err != nil {
		if errors.Is(err, models.ErrDuplicateTransaction) {
			return &AuthorizeResult{
				Success: false,
				Code:    ErrCodeAlreadyRecorded,
				Message: "payment state already recorded",
				OrderID: order.ID,
			}, nil
		}
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to append ledger entry: %v", err),
		}
	}

	if resp.MarksPlaced() {
		if _, err := orderRepo.MarkPlaced(ctx, order.ID, time.Now()); err != nil {
			return nil, &ServiceError{
				Code:    ErrCodeInternalError,
				Message: fmt.Sprintf("failed to mark order placed: %v", err),
			}
		}
	}

	if err := cartRepo.SetPaymentIntent(ctx, cart.ID, resp.ID()); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to store payment intent on cart: %v", err),
		}
	}

	s.logger.Info("authorization recorded",
		"order_id", order.ID,
		"reference", resp.ID(),
		"state", resp.State(),
	)

	return &AuthorizeResult{
		Success:      true,
		RedirectLink: resp.Link(),
		OrderID:      order.ID,
		Transaction:  entry,
	}, nil
}
