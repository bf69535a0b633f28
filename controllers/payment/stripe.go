package paymentControllers

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/checkout/session"
)

// ErrNotConfigured is returned when the Stripe secret key is missing; the
// handler hides it behind a generic message.
var ErrNotConfigured = errors.New("stripe is not configured")

// SessionLineItem references one catalog price.
type SessionLineItem struct {
	PriceReference string
	Quantity       int64
}

// SessionRequest is what the handler asks the payment provider for.
type SessionRequest struct {
	Items         []SessionLineItem
	CustomerEmail string
	OrderRef      string
}

// Session is the provider-issued checkout session.
type Session struct {
	ID  string
	URL string
}

// SessionCreator creates a hosted checkout session with the payment
// provider. Tests substitute a fake.
type SessionCreator interface {
	CreateSession(ctx context.Context, req SessionRequest) (*Session, error)
}

// StripeSessionCreator creates Stripe hosted Checkout sessions.
type StripeSessionCreator struct {
	SecretKey  string
	SuccessURL string
	CancelURL  string
}

func (s *StripeSessionCreator) CreateSession(_ context.Context, req SessionRequest) (*Session, error) {
	if s.SecretKey == "" {
		return nil, ErrNotConfigured
	}
	stripe.Key = s.SecretKey

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(req.Items))
	for _, item := range req.Items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			Price:    stripe.String(item.PriceReference),
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:         lineItems,
		CustomerEmail:     stripe.String(req.CustomerEmail),
		ClientReferenceID: stripe.String(req.OrderRef),
		SuccessURL:        stripe.String(s.SuccessURL),
		CancelURL:         stripe.String(s.CancelURL),
	}

	sess, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe session creation failed: %w", err)
	}
	return &Session{ID: sess.ID, URL: sess.URL}, nil
}
