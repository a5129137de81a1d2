package payments

import (
	"testing"

	"github.com/SamuelOla04/wig-ecom-store/internal/catalog"
	"github.com/SamuelOla04/wig-ecom-store/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService(catalog.Default(), "sk_test_key", "http://localhost:3000")
}

func TestLineItems(t *testing.T) {
	s := newTestService()

	lines, err := s.lineItems([]models.CheckoutItem{
		{ID: "1", Quantity: 2},
		{ID: "3", Quantity: 1},
	})
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, int64(54999), *lines[0].PriceData.UnitAmount)
	assert.Equal(t, int64(2), *lines[0].Quantity)
	assert.Equal(t, "The 'Malibu' Blonde Wig", *lines[0].PriceData.ProductData.Name)
	assert.Equal(t, "usd", *lines[0].PriceData.Currency)
	assert.Equal(t, "http://localhost:3000/static/product1.jpg", *lines[0].PriceData.ProductData.Images[0])

	assert.Equal(t, int64(52999), *lines[1].PriceData.UnitAmount)
	assert.Equal(t, int64(1), *lines[1].Quantity)
}

func TestLineItemsRejectsUnknownProduct(t *testing.T) {
	s := newTestService()

	_, err := s.lineItems([]models.CheckoutItem{
		{ID: "1", Quantity: 1},
		{ID: "999", Quantity: 1},
	})

	assert.ErrorIs(t, err, catalog.ErrUnknownProduct, "one bad item rejects the whole request")
}

func TestTotal(t *testing.T) {
	s := newTestService()

	total := s.total([]models.CheckoutItem{{ID: "1", Quantity: 2}})
	assert.Equal(t, int64(109998), total)
}

func TestTotalSkipsUnknownProducts(t *testing.T) {
	s := newTestService()

	total := s.total([]models.CheckoutItem{
		{ID: "2", Quantity: 1},
		{ID: "999", Quantity: 5},
	})
	assert.Equal(t, int64(49999), total)
}

func TestTotalEmptyCart(t *testing.T) {
	s := newTestService()

	assert.Zero(t, s.total(nil))
}
