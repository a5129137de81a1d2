package handlers

import (
	"net/http"

	"github.com/SamuelOla04/wig-ecom-store/internal/catalog"
)

type ProductHandler struct {
	Catalog *catalog.Catalog
}

// List serves the full catalog mapping.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.All())
}

// Get serves a single product by path id.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := h.Catalog.Get(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Product not found"})
		return
	}
	writeJSON(w, http.StatusOK, product)
}
