package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/SamuelOla04/wig-ecom-store/internal/cart"
	"github.com/SamuelOla04/wig-ecom-store/internal/catalog"
	"github.com/SamuelOla04/wig-ecom-store/internal/models"
	"github.com/gorilla/csrf"
)

type CartHandler struct {
	Repo    cart.Repository
	Catalog *catalog.Catalog
}

type cartItemRequest struct {
	ID       string `json:"id"`
	Quantity int64  `json:"quantity"`
}

// Get returns the current cart. The CSRF token for the mutation routes rides
// along in the response header.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.Repo.Load(r)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load cart"})
		return
	}
	w.Header().Set("X-CSRF-Token", csrf.Token(r))
	writeJSON(w, http.StatusOK, map[string]any{"lines": c.Lines, "total": c.Total()})
}

// Add puts a catalog product in the cart, merging quantities.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}
	if req.Quantity <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Quantity must be positive"})
		return
	}

	product, err := h.Catalog.Get(req.ID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Product not found"})
		return
	}

	c, err := h.Repo.Load(r)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load cart"})
		return
	}
	c.Add(models.CartLine{
		ProductID: product.ID,
		Quantity:  req.Quantity,
		Price:     float64(product.Price) / 100,
		Image:     product.Image,
	})
	h.save(w, r, c)
}

// Update sets a line's quantity; zero or below removes the line.
func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	c, err := h.Repo.Load(r)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load cart"})
		return
	}
	c.SetQuantity(req.ID, req.Quantity)
	h.save(w, r, c)
}

// Remove drops a line from the cart.
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	c, err := h.Repo.Load(r)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to load cart"})
		return
	}
	c.Remove(req.ID)
	h.save(w, r, c)
}

func (h *CartHandler) save(w http.ResponseWriter, r *http.Request, c *cart.Cart) {
	if err := h.Repo.Save(w, r, c); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to save cart"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"lines": c.Lines, "total": c.Total()})
}
