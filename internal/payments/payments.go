package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SamuelOla04/wig-ecom-store/internal/catalog"
	"github.com/SamuelOla04/wig-ecom-store/internal/models"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/checkout/session"
	"github.com/stripe/stripe-go/v80/paymentintent"
)

// callTimeout bounds every outbound Stripe call.
const callTimeout = 10 * time.Second

// allowedShippingCountries is the checkout shipping allow-list.
var allowedShippingCountries = []string{"US", "CA", "GB", "AU"}

// Session is the hosted-checkout handle returned to the browser.
type Session struct {
	URL string
	ID  string
}

// Service builds Stripe checkout sessions and payment intents from cart
// contents validated against the catalog.
type Service struct {
	Catalog *catalog.Catalog
	BaseURL string
}

func NewService(cat *catalog.Catalog, apiKey, baseURL string) *Service {
	stripe.Key = apiKey
	return &Service{Catalog: cat, BaseURL: baseURL}
}

// lineItems resolves every requested item against the catalog. Any unknown
// product id rejects the whole request; there is no partial checkout.
func (s *Service) lineItems(items []models.CheckoutItem) ([]*stripe.CheckoutSessionLineItemParams, error) {
	lines := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, item := range items {
		product, err := s.Catalog.Get(item.ID)
		if err != nil {
			return nil, fmt.Errorf("product %s: %w", item.ID, err)
		}
		lines = append(lines, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(string(stripe.CurrencyUSD)),
				UnitAmount: stripe.Int64(product.Price),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:        stripe.String(product.Name),
					Description: stripe.String(product.Description),
					Images:      []*string{stripe.String(s.BaseURL + "/static/" + product.Image)},
				},
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}
	return lines, nil
}

// total sums price*quantity in minor units over the items the catalog knows.
// Unknown ids are skipped here, matching the payment-intent flow.
func (s *Service) total(items []models.CheckoutItem) int64 {
	var total int64
	for _, item := range items {
		if product, err := s.Catalog.Get(item.ID); err == nil {
			total += product.Price * item.Quantity
		}
	}
	return total
}

// CreateCheckoutSession submits a hosted-checkout request for the whole cart.
// The customer contact fields travel as opaque metadata so the order can be
// rebuilt from the webhook without a database.
func (s *Service) CreateCheckoutSession(ctx context.Context, req *models.CheckoutRequest) (*Session, error) {
	lines, err := s.lineItems(req.Items)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	params := &stripe.CheckoutSessionParams{
		Params:             stripe.Params{Context: ctx},
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lines,
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail:      stripe.String(req.CustomerInfo.Email),
		ShippingAddressCollection: &stripe.CheckoutSessionShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice(allowedShippingCountries),
		},
		BillingAddressCollection: stripe.String("required"),
		SuccessURL:               stripe.String(s.BaseURL + "/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:                stripe.String(s.BaseURL + "/cancel"),
		ClientReferenceID:        stripe.String(uuid.New().String()),
	}
	params.AddMetadata("customer_name", req.CustomerInfo.Name)
	params.AddMetadata("customer_email", req.CustomerInfo.Email)
	params.AddMetadata("customer_address", req.CustomerInfo.Address)

	sess, err := session.New(params)
	if err != nil {
		return nil, &ProviderError{Err: err}
	}
	return &Session{URL: sess.URL, ID: sess.ID}, nil
}

// CreatePaymentIntent opens a payment intent for the custom checkout flow and
// returns its client secret plus the computed total.
func (s *Service) CreatePaymentIntent(ctx context.Context, req *models.CheckoutRequest) (string, int64, error) {
	amount := s.total(req.Items)

	itemsJSON, err := json.Marshal(req.Items)
	if err != nil {
		return "", 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
	}
	params.AddMetadata("customer_name", req.CustomerInfo.Name)
	params.AddMetadata("customer_email", req.CustomerInfo.Email)
	params.AddMetadata("customer_address", req.CustomerInfo.Address)
	params.AddMetadata("items", string(itemsJSON))

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", 0, &ProviderError{Err: err}
	}
	return intent.ClientSecret, amount, nil
}

// GetCheckoutSession fetches a completed session for the success page.
func (s *Service) GetCheckoutSession(ctx context.Context, id string) (*stripe.CheckoutSession, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	sess, err := session.Get(id, &stripe.CheckoutSessionParams{Params: stripe.Params{Context: ctx}})
	if err != nil {
		return nil, &ProviderError{Err: err}
	}
	return sess, nil
}
