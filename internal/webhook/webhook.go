package webhook

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SamuelOla04/wig-ecom-store/internal/catalog"
	"github.com/SamuelOla04/wig-ecom-store/internal/models"
	"github.com/stripe/stripe-go/v80"
	stripewebhook "github.com/stripe/stripe-go/v80/webhook"
)

// ErrSignatureInvalid covers any signature mismatch or malformed payload.
// Verification fails closed: the event is dropped with no side effects and
// Stripe's own retry schedule is the recovery mechanism.
var ErrSignatureInvalid = errors.New("webhook signature invalid")

// Confirmer receives orders reconstructed from confirmed-payment events.
type Confirmer interface {
	Confirm(order models.Order) bool
}

// Dispatcher authenticates inbound Stripe events against the shared secret
// and routes them by type.
type Dispatcher struct {
	Secret  string
	Catalog *catalog.Catalog
	Orders  Confirmer
}

func NewDispatcher(secret string, cat *catalog.Catalog, orders Confirmer) *Dispatcher {
	return &Dispatcher{Secret: secret, Catalog: cat, Orders: orders}
}

// Dispatch verifies the exact raw body against the signature header and
// handles the event. A nil return means the event was accepted; the caller
// must answer success to Stripe even if downstream work failed, so an event
// whose business effect already committed is never redelivered.
func (d *Dispatcher) Dispatch(payload []byte, sigHeader string) error {
	event, err := stripewebhook.ConstructEvent(payload, sigHeader, d.Secret)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSignatureInvalid, err)
	}

	switch string(event.Type) {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return fmt.Errorf("%w: %v", ErrSignatureInvalid, err)
		}
		slog.Info("Payment successful for session", "session_id", sess.ID)
		d.Orders.Confirm(d.orderFromSession(&sess))

	case "payment_intent.succeeded":
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			return fmt.Errorf("%w: %v", ErrSignatureInvalid, err)
		}
		slog.Info("Payment succeeded", "payment_intent_id", intent.ID)
		d.Orders.Confirm(d.orderFromIntent(&intent))

	case "payment_intent.payment_failed":
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			return fmt.Errorf("%w: %v", ErrSignatureInvalid, err)
		}
		// No state change for failed payments; left as an extension point.
		slog.Info("Payment failed", "payment_intent_id", intent.ID)

	default:
		// Unknown kinds are expected as Stripe evolves its API. Acknowledge
		// so the provider does not retry.
		slog.Info("Unhandled event type", "type", event.Type)
	}

	return nil
}

func (d *Dispatcher) orderFromSession(sess *stripe.CheckoutSession) models.Order {
	email := sess.CustomerEmail
	if email == "" {
		email = sess.Metadata["customer_email"]
	}
	return models.Order{
		ID:            sess.ID,
		CustomerName:  customerName(sess.Metadata),
		CustomerEmail: email,
		Items:         d.itemsFromMetadata(sess.Metadata, sess.AmountTotal),
		TotalAmount:   sess.AmountTotal,
	}
}

func (d *Dispatcher) orderFromIntent(intent *stripe.PaymentIntent) models.Order {
	return models.Order{
		ID:            intent.ID,
		CustomerName:  customerName(intent.Metadata),
		CustomerEmail: intent.Metadata["customer_email"],
		Items:         d.itemsFromMetadata(intent.Metadata, intent.Amount),
		TotalAmount:   intent.Amount,
	}
}

func customerName(metadata map[string]string) string {
	if name := metadata["customer_name"]; name != "" {
		return name
	}
	return "Valued Customer"
}

// itemsFromMetadata rebuilds the order lines from the "items" metadata the
// checkout endpoints attach, resolving names and prices via the catalog.
// When nothing usable survives, a single generic line carries the total.
func (d *Dispatcher) itemsFromMetadata(metadata map[string]string, total int64) []models.OrderItem {
	var items []models.OrderItem
	if raw := metadata["items"]; raw != "" {
		var requested []models.CheckoutItem
		if err := json.Unmarshal([]byte(raw), &requested); err != nil {
			slog.Error("Could not parse order items from metadata", "error", err)
		} else {
			for _, item := range requested {
				product, err := d.Catalog.Get(item.ID)
				if err != nil {
					slog.Warn("Skipping unknown product in event metadata", "product_id", item.ID)
					continue
				}
				items = append(items, models.OrderItem{
					Name:     product.Name,
					Quantity: item.Quantity,
					Price:    product.Price,
				})
			}
		}
	}
	if len(items) == 0 {
		items = []models.OrderItem{{Name: "Premium Wig Order", Quantity: 1, Price: total}}
	}
	return items
}
