package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"ticketing-service/models"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/checkout/session"
)

// CheckoutSession is the slice of the provider session the flow needs: an
// opaque id and the hosted page URL the buyer is redirected to.
type CheckoutSession struct {
	ID  string
	URL string
}

// PaymentSessionCreator is the payment provider boundary.
type PaymentSessionCreator interface {
	CreateCheckoutSession(intent models.OrderIntent) (*CheckoutSession, error)
}

type StripeCheckoutService struct {
	serverURL string
}

func NewStripeCheckoutService(secretKey, serverURL string) *StripeCheckoutService {
	stripe.Key = secretKey
	return &StripeCheckoutService{serverURL: strings.TrimRight(serverURL, "/")}
}

// CheckoutAmount converts an event price to minor currency units: 0 for free
// events, round(price × 100) otherwise.
func CheckoutAmount(price string, isFree bool) (int64, error) {
	if isFree {
		return 0, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(price), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid event price %q: %w", price, err)
	}
	return int64(math.Round(f * 100)), nil
}

func (s *StripeCheckoutService) buildSessionParams(intent models.OrderIntent) (*stripe.CheckoutSessionParams, error) {
	amount, err := CheckoutAmount(intent.Price, intent.IsFree)
	if err != nil {
		return nil, err
	}

	params := &stripe.CheckoutSessionParams{
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(string(stripe.CurrencyUSD)),
					UnitAmount: stripe.Int64(amount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(intent.EventTitle),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(fmt.Sprintf("%s/events/%s?success=1", s.serverURL, intent.EventID)),
		CancelURL:  stripe.String(fmt.Sprintf("%s/events/%s?cancel=1", s.serverURL, intent.EventID)),
	}
	params.AddMetadata("eventId", intent.EventID)
	params.AddMetadata("buyerId", intent.BuyerID)

	return params, nil
}

// CreateCheckoutSession creates a hosted Stripe checkout session for the
// intent. A provider failure is fatal for the checkout call.
func (s *StripeCheckoutService) CreateCheckoutSession(intent models.OrderIntent) (*CheckoutSession, error) {
	params, err := s.buildSessionParams(intent)
	if err != nil {
		return nil, err
	}

	sess, err := session.New(params)
	if err != nil {
		return nil, err
	}
	return &CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}
