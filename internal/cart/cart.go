package cart

import (
	"encoding/json"

	"github.com/SamuelOla04/wig-ecom-store/internal/models"
)

// Cart holds the shopper's current lines. Mutations keep the invariant that
// every stored line has quantity >= 1.
type Cart struct {
	Lines []models.CartLine `json:"lines"`
}

// Add merges the line into the cart, summing quantities for an existing
// product. Lines with a non-positive quantity are ignored.
func (c *Cart) Add(line models.CartLine) {
	if line.Quantity <= 0 {
		return
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == line.ProductID {
			c.Lines[i].Quantity += line.Quantity
			return
		}
	}
	c.Lines = append(c.Lines, line)
}

// SetQuantity updates a line's quantity. A quantity <= 0 removes the line.
func (c *Cart) SetQuantity(productID string, quantity int64) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) Remove(productID string) {
	for i, line := range c.Lines {
		if line.ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// Items converts the cart into the shape the checkout endpoints accept.
func (c *Cart) Items() []models.CheckoutItem {
	items := make([]models.CheckoutItem, 0, len(c.Lines))
	for _, line := range c.Lines {
		items = append(items, models.CheckoutItem{ID: line.ProductID, Quantity: line.Quantity})
	}
	return items
}

// Total returns the cart total in major units.
func (c *Cart) Total() float64 {
	var total float64
	for _, line := range c.Lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// Encode serializes the cart to JSON for persistence. Decode of the result
// reproduces the same line list byte-for-byte when re-encoded.
func (c *Cart) Encode() (string, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func Decode(data string) (*Cart, error) {
	var c Cart
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, err
	}
	return &c, nil
}
