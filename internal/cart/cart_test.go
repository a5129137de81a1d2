package cart

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SamuelOla04/wig-ecom-store/internal/models"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMergesQuantities(t *testing.T) {
	c := &Cart{}
	c.Add(models.CartLine{ProductID: "1", Quantity: 1, Price: 549.99, Image: "product1.jpg"})
	c.Add(models.CartLine{ProductID: "1", Quantity: 2, Price: 549.99, Image: "product1.jpg"})

	require.Len(t, c.Lines, 1)
	assert.Equal(t, int64(3), c.Lines[0].Quantity)
}

func TestAddIgnoresNonPositiveQuantity(t *testing.T) {
	c := &Cart{}
	c.Add(models.CartLine{ProductID: "1", Quantity: 0})
	c.Add(models.CartLine{ProductID: "2", Quantity: -1})

	assert.Empty(t, c.Lines)
}

func TestSetQuantityRemovesAtZero(t *testing.T) {
	c := &Cart{}
	c.Add(models.CartLine{ProductID: "1", Quantity: 2, Price: 549.99})
	c.Add(models.CartLine{ProductID: "2", Quantity: 1, Price: 499.99})

	c.SetQuantity("1", 0)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, "2", c.Lines[0].ProductID)

	c.SetQuantity("2", -5)
	assert.Empty(t, c.Lines)
}

func TestTotal(t *testing.T) {
	c := &Cart{}
	c.Add(models.CartLine{ProductID: "1", Quantity: 2, Price: 549.99})

	assert.InDelta(t, 1099.98, c.Total(), 0.001)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	c := &Cart{}
	c.Add(models.CartLine{ProductID: "1", Quantity: 2, Price: 549.99, Image: "product1.jpg"})

	encoded, err := c.Encode()
	require.NoError(t, err)

	decoded, err := Decode(encoded)
	require.NoError(t, err)

	reencoded, err := decoded.Encode()
	require.NoError(t, err)
	assert.Equal(t, encoded, reencoded, "round-trip must reproduce the same JSON byte-for-byte")
	assert.Equal(t, c.Lines, decoded.Lines)
}

func TestSessionRepositoryRoundTrip(t *testing.T) {
	repo := NewSessionRepository(sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef")))

	c := &Cart{}
	c.Add(models.CartLine{ProductID: "1", Quantity: 2, Price: 549.99, Image: "product1.jpg"})

	// Save into a response, then replay the cookie on a fresh request.
	w := httptest.NewRecorder()
	saveReq := httptest.NewRequest(http.MethodPost, "/api/cart/add", nil)
	require.NoError(t, repo.Save(w, saveReq, c))

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	loadReq := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	for _, ck := range cookies {
		loadReq.AddCookie(ck)
	}

	loaded, err := repo.Load(loadReq)
	require.NoError(t, err)
	assert.Equal(t, c.Lines, loaded.Lines)
}

func TestSessionRepositoryEmptyCart(t *testing.T) {
	repo := NewSessionRepository(sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef")))

	loaded, err := repo.Load(httptest.NewRequest(http.MethodGet, "/api/cart", nil))
	require.NoError(t, err)
	assert.Empty(t, loaded.Lines)
}
