package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/SamuelOla04/wig-ecom-store/internal/models"
	"github.com/SamuelOla04/wig-ecom-store/internal/orders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	require.NoError(t, s.Migrate("../../migrations"))
	return s
}

func testOrder(id string) *models.Order {
	now := time.Date(2026, 1, 1, 15, 30, 0, 0, time.UTC)
	return &models.Order{
		ID:            id,
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		Items:         []models.OrderItem{{Name: "The 'Malibu' Blonde Wig", Quantity: 2, Price: 54999}},
		TotalAmount:   109998,
		OrderDate:     now,
		DeliveryDate:  now.AddDate(0, 0, 7),
		EmailsSent:    0,
	}
}

func TestGetMissingOrder(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get("missing")
	assert.ErrorIs(t, err, orders.ErrNotFound)
}

func TestPutAndGet(t *testing.T) {
	s := newTestStore(t)
	order := testOrder("cs_test_1")

	require.NoError(t, s.Put(order))

	got, err := s.Get("cs_test_1")
	require.NoError(t, err)
	assert.Equal(t, order.CustomerName, got.CustomerName)
	assert.Equal(t, order.CustomerEmail, got.CustomerEmail)
	assert.Equal(t, order.TotalAmount, got.TotalAmount)
	assert.Equal(t, order.Items, got.Items)
	assert.WithinDuration(t, order.OrderDate, got.OrderDate, time.Second)
	assert.WithinDuration(t, order.DeliveryDate, got.DeliveryDate, time.Second)
	assert.Equal(t, 0, got.EmailsSent)
}

func TestPutUpserts(t *testing.T) {
	s := newTestStore(t)
	order := testOrder("cs_test_1")
	require.NoError(t, s.Put(order))

	order.EmailsSent = 3
	require.NoError(t, s.Put(order))

	got, err := s.Get("cs_test_1")
	require.NoError(t, err)
	assert.Equal(t, 3, got.EmailsSent)
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Put(testOrder("cs_test_1")))

	require.NoError(t, s.Delete("cs_test_1"))

	_, err := s.Get("cs_test_1")
	assert.ErrorIs(t, err, orders.ErrNotFound)
}

func TestForEach(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Put(testOrder("cs_test_1")))
	require.NoError(t, s.Put(testOrder("cs_test_2")))

	seen := map[string]bool{}
	require.NoError(t, s.ForEach(func(o *models.Order) error {
		seen[o.ID] = true
		return nil
	}))

	assert.Equal(t, map[string]bool{"cs_test_1": true, "cs_test_2": true}, seen)
}

func TestMigrateIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Migrate("../../migrations"))
	require.NoError(t, s.Put(testOrder("cs_test_1")))
}
