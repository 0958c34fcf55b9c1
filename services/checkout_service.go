package services

import (
	"context"
	"time"

	"ticketing-service/logger"
	"ticketing-service/models"
	"ticketing-service/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// CheckoutOutcome carries what the redirect query string says happened.
// The markers are not a verified payment signal; see DESIGN.md.
type CheckoutOutcome struct {
	EventID  string
	BuyerID  string
	Success  bool
	Canceled bool
}

type CheckoutStatus string

const (
	StatusPlaced   CheckoutStatus = "placed"
	StatusCanceled CheckoutStatus = "canceled"
	StatusNone     CheckoutStatus = "none"
)

// CheckoutResult is the typed outcome of redirect handling. Recoverable
// failures (order lookup, email, event publish) are recorded here instead of
// being raised; only payment-session creation returns a ServiceError.
type CheckoutResult struct {
	Status         CheckoutStatus `json:"status"`
	OrderID        string         `json:"orderId,omitempty"`
	OrderFound     bool           `json:"orderFound"`
	EmailSent      bool           `json:"emailSent"`
	EventPublished bool           `json:"eventPublished"`
	RedirectTo     string         `json:"redirectTo,omitempty"`
}

// ConfirmationMailer dispatches the confirmation email, best-effort.
type ConfirmationMailer interface {
	SendConfirmation(ctx context.Context, order *models.Order) bool
}

// OrderEventPublisher emits order.placed events, best-effort.
type OrderEventPublisher interface {
	PublishOrderPlaced(ctx context.Context, event models.OrderPlacedEvent) error
}

// Checkout is the orchestration surface the HTTP layer depends on.
type Checkout interface {
	BeginCheckout(ctx context.Context, eventID, buyerID string) (string, *ServiceError)
	CompleteCheckout(ctx context.Context, outcome CheckoutOutcome) (*CheckoutResult, *ServiceError)
}

// CheckoutService coordinates payment-session creation, redirect outcome
// handling, order lookup-or-create and notification dispatch. publisher and
// guard may be nil when Kafka/Redis are not configured.
type CheckoutService struct {
	events    repository.EventRepository
	orders    repository.OrderRepository
	payments  PaymentSessionCreator
	mailer    ConfirmationMailer
	publisher OrderEventPublisher
	guard     repository.RedirectGuard
}

func NewCheckoutService(
	events repository.EventRepository,
	orders repository.OrderRepository,
	payments PaymentSessionCreator,
	mailer ConfirmationMailer,
	publisher OrderEventPublisher,
	guard repository.RedirectGuard,
) *CheckoutService {
	return &CheckoutService{
		events:    events,
		orders:    orders,
		payments:  payments,
		mailer:    mailer,
		publisher: publisher,
		guard:     guard,
	}
}

// BeginCheckout builds the order intent for (event, buyer) and creates the
// hosted checkout session. Returns the session URL the buyer is redirected
// to. A provider failure surfaces to the caller unrecovered.
func (s *CheckoutService) BeginCheckout(ctx context.Context, eventID, buyerID string) (string, *ServiceError) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		logger.Warn(ctx, "event lookup failed", zap.String("event_id", eventID), zap.Error(err))
		return "", &ServiceError{StatusCode: 404, Message: "Event not found"}
	}

	intent := models.OrderIntent{
		EventTitle: event.Title,
		EventID:    eventID,
		Price:      event.Price,
		IsFree:     event.IsFree,
		BuyerID:    buyerID,
	}

	sess, err := s.payments.CreateCheckoutSession(intent)
	if err != nil {
		logger.Error(ctx, "checkout session creation failed", err,
			zap.String("event_id", eventID),
			zap.String("buyer_id", buyerID),
		)
		return "", &ServiceError{StatusCode: 502, Message: "Failed to create checkout session"}
	}

	logger.Info(ctx, "checkout session created",
		zap.String("event_id", eventID),
		zap.String("buyer_id", buyerID),
		zap.String("session_id", sess.ID),
	)
	return sess.URL, nil
}

// CompleteCheckout handles the redirect back from the payment provider.
// Success: locate or create the order, send the confirmation email and
// publish order.placed, all failures absorbed into the result. Cancel: log
// only. No marker: no-op.
func (s *CheckoutService) CompleteCheckout(ctx context.Context, outcome CheckoutOutcome) (*CheckoutResult, *ServiceError) {
	switch {
	case outcome.Success:
		return s.completeSuccess(ctx, outcome), nil
	case outcome.Canceled:
		logger.Info(ctx, "order canceled, buyer returned without paying",
			zap.String("event_id", outcome.EventID),
			zap.String("buyer_id", outcome.BuyerID),
		)
		return &CheckoutResult{
			Status:     StatusCanceled,
			RedirectTo: "/events/" + outcome.EventID,
		}, nil
	default:
		return &CheckoutResult{Status: StatusNone}, nil
	}
}

func (s *CheckoutService) completeSuccess(ctx context.Context, outcome CheckoutOutcome) *CheckoutResult {
	result := &CheckoutResult{
		Status:     StatusPlaced,
		RedirectTo: "/events/" + outcome.EventID,
	}

	if s.guard != nil {
		first, err := s.guard.FirstSeen(ctx, outcome.EventID+":"+outcome.BuyerID)
		if err != nil {
			logger.Warn(ctx, "redirect guard unavailable, proceeding", zap.Error(err))
		} else if !first {
			logger.Info(ctx, "success redirect already handled",
				zap.String("event_id", outcome.EventID),
				zap.String("buyer_id", outcome.BuyerID),
			)
			return result
		}
	}

	order, err := s.orders.FindByEventAndBuyer(ctx, outcome.EventID, outcome.BuyerID)
	if err != nil {
		logger.Warn(ctx, "order lookup failed",
			zap.String("event_id", outcome.EventID),
			zap.String("buyer_id", outcome.BuyerID),
			zap.Error(err),
		)
	}
	if order == nil && err == nil {
		order = s.createOrder(ctx, outcome)
	}
	if order != nil {
		result.OrderFound = true
		result.OrderID = order.ID.Hex()

		result.EmailSent = s.mailer.SendConfirmation(ctx, order)

		if s.publisher != nil {
			event := models.OrderPlacedEvent{
				OrderID:     order.ID.Hex(),
				EventID:     outcome.EventID,
				BuyerID:     outcome.BuyerID,
				TotalAmount: order.TotalAmount,
				Timestamp:   time.Now().UTC(),
			}
			if pubErr := s.publisher.PublishOrderPlaced(ctx, event); pubErr != nil {
				logger.Warn(ctx, "order.placed publish failed", zap.Error(pubErr))
			} else {
				result.EventPublished = true
			}
		}
	}

	logger.Info(ctx, "order placed, confirmation dispatched",
		zap.String("event_id", outcome.EventID),
		zap.String("buyer_id", outcome.BuyerID),
		zap.Bool("order_found", result.OrderFound),
		zap.Bool("email_sent", result.EmailSent),
	)
	return result
}

// createOrder persists the order on the success redirect when no record
// exists yet for (event, buyer). Store failures are logged and absorbed.
func (s *CheckoutService) createOrder(ctx context.Context, outcome CheckoutOutcome) *models.Order {
	event, err := s.events.FindByID(ctx, outcome.EventID)
	if err != nil {
		logger.Warn(ctx, "event lookup for order creation failed",
			zap.String("event_id", outcome.EventID),
			zap.Error(err),
		)
		return nil
	}

	total := event.Price
	if event.IsFree {
		total = "0"
	}

	order, err := s.buildAndInsert(ctx, outcome, total)
	if err != nil {
		logger.Warn(ctx, "order creation failed",
			zap.String("event_id", outcome.EventID),
			zap.String("buyer_id", outcome.BuyerID),
			zap.Error(err),
		)
		return nil
	}
	return order
}

func (s *CheckoutService) buildAndInsert(ctx context.Context, outcome CheckoutOutcome, total string) (*models.Order, error) {
	eventOID, err := primitive.ObjectIDFromHex(outcome.EventID)
	if err != nil {
		return nil, err
	}
	buyerOID, err := primitive.ObjectIDFromHex(outcome.BuyerID)
	if err != nil {
		return nil, err
	}

	return s.orders.Create(ctx, &models.Order{
		Event:       eventOID,
		Buyer:       buyerOID,
		TotalAmount: total,
		CreatedAt:   time.Now().UTC(),
	})
}
