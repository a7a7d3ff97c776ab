// internal/services/payment_gateway.go
package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/checkout/session"
	"github.com/stripe/stripe-go/v74/webhook"

	"github.com/javajoker/store-admin/internal/config"
)

const eventCheckoutCompleted = "checkout.session.completed"

type LineItem struct {
	Name string
	// UnitAmount is in the currency's minor unit (cents).
	UnitAmount int64
}

type CheckoutSessionParams struct {
	OrderID    string
	Currency   string
	Items      []LineItem
	SuccessURL string
	CancelURL  string
}

// PaymentEvent is the part of a provider webhook the store cares about.
type PaymentEvent struct {
	Type    string
	OrderID string
	Phone   string
	Address string
}

func (e *PaymentEvent) Completed() bool {
	return e.Type == eventCheckoutCompleted
}

type PaymentGateway interface {
	CreateCheckoutSession(params CheckoutSessionParams) (string, error)
	ParseWebhook(payload []byte, signature string) (*PaymentEvent, error)
}

type StripeGateway struct {
	webhookSecret string
}

func NewStripeGateway(cfg config.PaymentConfig) *StripeGateway {
	// Initialize Stripe
	stripe.Key = cfg.StripeSecretKey

	return &StripeGateway{webhookSecret: cfg.StripeWebhookSecret}
}

func (g *StripeGateway) CreateCheckoutSession(p CheckoutSessionParams) (string, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(p.Items))
	for _, item := range p.Items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(1),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(strings.ToLower(p.Currency)),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
				UnitAmount: stripe.Int64(item.UnitAmount),
			},
		})
	}

	params := &stripe.CheckoutSessionParams{
		LineItems:                lineItems,
		Mode:                     stripe.String(string(stripe.CheckoutSessionModePayment)),
		BillingAddressCollection: stripe.String(string(stripe.CheckoutSessionBillingAddressCollectionRequired)),
		PhoneNumberCollection: &stripe.CheckoutSessionPhoneNumberCollectionParams{
			Enabled: stripe.Bool(true),
		},
		SuccessURL: stripe.String(p.SuccessURL),
		CancelURL:  stripe.String(p.CancelURL),
	}
	params.AddMetadata("orderId", p.OrderID)

	s, err := session.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}

	return s.URL, nil
}

func (g *StripeGateway) ParseWebhook(payload []byte, signature string) (*PaymentEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, g.webhookSecret)
	if err != nil {
		return nil, err
	}

	result := &PaymentEvent{Type: string(event.Type)}
	if !result.Completed() {
		return result, nil
	}

	var s stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &s); err != nil {
		return nil, fmt.Errorf("failed to decode checkout session: %w", err)
	}

	result.OrderID = s.Metadata["orderId"]
	if s.CustomerDetails != nil {
		result.Phone = s.CustomerDetails.Phone
		if a := s.CustomerDetails.Address; a != nil {
			result.Address = joinAddress(a.Line1, a.Line2, a.City, a.State, a.PostalCode, a.Country)
		}
	}

	return result, nil
}

func joinAddress(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, ", ")
}
