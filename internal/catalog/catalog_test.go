package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	all := c.All()
	require.Len(t, all, 4)

	p, err := c.Get("1")
	require.NoError(t, err)
	assert.Equal(t, "The 'Malibu' Blonde Wig", p.Name)
	assert.Equal(t, int64(54999), p.Price)
	assert.Equal(t, "$549.99", p.PriceDisplay)
}

func TestGetUnknownProduct(t *testing.T) {
	c := Default()

	_, err := c.Get("999")
	assert.ErrorIs(t, err, ErrUnknownProduct)
}

func TestAllReturnsCopy(t *testing.T) {
	c := Default()

	all := c.All()
	delete(all, "1")

	_, err := c.Get("1")
	assert.NoError(t, err, "mutating the returned map must not touch the catalog")
}
