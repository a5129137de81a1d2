package catalog

import (
	"errors"

	"github.com/SamuelOla04/wig-ecom-store/internal/models"
)

var ErrUnknownProduct = errors.New("product not found")

// Catalog is the read-only product lookup table. Products are defined at
// process start and never mutated.
type Catalog struct {
	products map[string]models.Product
}

func New(products ...models.Product) *Catalog {
	c := &Catalog{products: make(map[string]models.Product, len(products))}
	for _, p := range products {
		c.products[p.ID] = p
	}
	return c
}

// Default returns the shop's product line-up.
func Default() *Catalog {
	return New(
		models.Product{
			ID:           "1",
			Name:         "The 'Malibu' Blonde Wig",
			Price:        54999,
			PriceDisplay: "$549.99",
			Image:        "product1.jpg",
			Description:  "Stunning blonde wig with natural texture",
		},
		models.Product{
			ID:           "2",
			Name:         "The 'Espresso' Brown Wig",
			Price:        49999,
			PriceDisplay: "$499.99",
			Image:        "product2.jpg",
			Description:  "Rich brown wig with luxurious feel",
		},
		models.Product{
			ID:           "3",
			Name:         "The 'Autumn' Ginger Wig",
			Price:        52999,
			PriceDisplay: "$529.99",
			Image:        "product3.jpg",
			Description:  "Vibrant ginger wig for a bold look",
		},
		models.Product{
			ID:           "4",
			Name:         "The 'Onyx' Black Wig",
			Price:        49999,
			PriceDisplay: "$499.99",
			Image:        "product4.jpg",
			Description:  "Classic black wig with elegant styling",
		},
	)
}

func (c *Catalog) Get(id string) (models.Product, error) {
	p, ok := c.products[id]
	if !ok {
		return models.Product{}, ErrUnknownProduct
	}
	return p, nil
}

// All returns the full catalog mapping keyed by product id.
func (c *Catalog) All() map[string]models.Product {
	out := make(map[string]models.Product, len(c.products))
	for id, p := range c.products {
		out[id] = p
	}
	return out
}
