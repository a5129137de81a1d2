package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/SamuelOla04/wig-ecom-store/internal/catalog"
	"github.com/SamuelOla04/wig-ecom-store/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v80"
)

const testSecret = "whsec_test_secret"

// fakeConfirmer records the orders handed over by the dispatcher.
type fakeConfirmer struct {
	orders []models.Order
}

func (c *fakeConfirmer) Confirm(order models.Order) bool {
	c.orders = append(c.orders, order)
	return true
}

// sign produces the Stripe-Signature header value for a payload, the same
// scheme the real provider uses: v1 = HMAC-SHA256(secret, "<ts>.<payload>").
func sign(payload []byte, secret string, at time.Time) string {
	ts := at.Unix()
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts, payload)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func eventPayload(eventType, object string) []byte {
	return []byte(fmt.Sprintf(`{
		"id": "evt_test_1",
		"object": "event",
		"api_version": %q,
		"created": %d,
		"type": %q,
		"data": {"object": %s}
	}`, stripe.APIVersion, time.Now().Unix(), eventType, object))
}

func newTestDispatcher() (*Dispatcher, *fakeConfirmer) {
	confirmer := &fakeConfirmer{}
	return NewDispatcher(testSecret, catalog.Default(), confirmer), confirmer
}

func TestDispatchRejectsBadSignature(t *testing.T) {
	d, confirmer := newTestDispatcher()
	payload := eventPayload("checkout.session.completed", `{"id": "cs_test_1"}`)

	err := d.Dispatch(payload, sign(payload, "whsec_wrong_secret", time.Now()))

	assert.ErrorIs(t, err, ErrSignatureInvalid)
	assert.Empty(t, confirmer.orders, "an unauthenticated event must have no effect")
}

func TestDispatchRejectsTamperedPayload(t *testing.T) {
	d, confirmer := newTestDispatcher()
	payload := eventPayload("checkout.session.completed", `{"id": "cs_test_1"}`)
	header := sign(payload, testSecret, time.Now())
	payload[len(payload)-2] = 'X'

	err := d.Dispatch(payload, header)

	assert.ErrorIs(t, err, ErrSignatureInvalid)
	assert.Empty(t, confirmer.orders)
}

func TestDispatchRejectsStaleTimestamp(t *testing.T) {
	d, confirmer := newTestDispatcher()
	payload := eventPayload("checkout.session.completed", `{"id": "cs_test_1"}`)

	err := d.Dispatch(payload, sign(payload, testSecret, time.Now().Add(-time.Hour)))

	assert.ErrorIs(t, err, ErrSignatureInvalid)
	assert.Empty(t, confirmer.orders)
}

func TestDispatchCheckoutSessionCompleted(t *testing.T) {
	d, confirmer := newTestDispatcher()
	payload := eventPayload("checkout.session.completed", `{
		"id": "cs_test_1",
		"object": "checkout.session",
		"amount_total": 109998,
		"customer_email": "jane@example.com",
		"metadata": {
			"customer_name": "Jane Doe",
			"customer_email": "jane@example.com",
			"items": "[{\"id\":\"1\",\"quantity\":2}]"
		}
	}`)

	require.NoError(t, d.Dispatch(payload, sign(payload, testSecret, time.Now())))

	require.Len(t, confirmer.orders, 1)
	order := confirmer.orders[0]
	assert.Equal(t, "cs_test_1", order.ID)
	assert.Equal(t, "Jane Doe", order.CustomerName)
	assert.Equal(t, "jane@example.com", order.CustomerEmail)
	assert.Equal(t, int64(109998), order.TotalAmount)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "The 'Malibu' Blonde Wig", order.Items[0].Name)
	assert.Equal(t, int64(2), order.Items[0].Quantity)
}

func TestDispatchFallsBackToGenericItem(t *testing.T) {
	d, confirmer := newTestDispatcher()
	payload := eventPayload("checkout.session.completed", `{
		"id": "cs_test_2",
		"object": "checkout.session",
		"amount_total": 54999,
		"customer_email": "jane@example.com",
		"metadata": {}
	}`)

	require.NoError(t, d.Dispatch(payload, sign(payload, testSecret, time.Now())))

	require.Len(t, confirmer.orders, 1)
	order := confirmer.orders[0]
	assert.Equal(t, "Valued Customer", order.CustomerName)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Premium Wig Order", order.Items[0].Name)
	assert.Equal(t, int64(54999), order.Items[0].Price)
}

func TestDispatchPaymentIntentSucceeded(t *testing.T) {
	d, confirmer := newTestDispatcher()
	payload := eventPayload("payment_intent.succeeded", `{
		"id": "pi_test_1",
		"object": "payment_intent",
		"amount": 49999,
		"metadata": {
			"customer_name": "Jane Doe",
			"customer_email": "jane@example.com",
			"items": "[{\"id\":\"2\",\"quantity\":1}]"
		}
	}`)

	require.NoError(t, d.Dispatch(payload, sign(payload, testSecret, time.Now())))

	require.Len(t, confirmer.orders, 1)
	order := confirmer.orders[0]
	assert.Equal(t, "pi_test_1", order.ID)
	assert.Equal(t, "jane@example.com", order.CustomerEmail)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "The 'Espresso' Brown Wig", order.Items[0].Name)
}

func TestDispatchPaymentFailedHasNoEffect(t *testing.T) {
	d, confirmer := newTestDispatcher()
	payload := eventPayload("payment_intent.payment_failed", `{
		"id": "pi_test_2",
		"object": "payment_intent",
		"amount": 49999,
		"metadata": {}
	}`)

	require.NoError(t, d.Dispatch(payload, sign(payload, testSecret, time.Now())))

	assert.Empty(t, confirmer.orders)
}

func TestDispatchUnknownEventTypeIsAccepted(t *testing.T) {
	d, confirmer := newTestDispatcher()
	payload := eventPayload("customer.created", `{"id": "cus_test_1"}`)

	require.NoError(t, d.Dispatch(payload, sign(payload, testSecret, time.Now())))

	assert.Empty(t, confirmer.orders)
}
