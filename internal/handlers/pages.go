package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SamuelOla04/wig-ecom-store/internal/catalog"
	"github.com/SamuelOla04/wig-ecom-store/internal/payments"
)

type PagesHandler struct {
	Catalog   *catalog.Catalog
	Payments  *payments.Service
	Templates *TemplateCache
}

func (h *PagesHandler) render(w http.ResponseWriter, name string, data any) {
	tmpl := h.Templates.Get(name)
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	if err := tmpl.Execute(w, data); err != nil {
		slog.Error("Failed to render template", "template", name, "error", err)
	}
}

// Index is the storefront landing page.
func (h *PagesHandler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	h.render(w, "index.html", map[string]any{"Products": h.Catalog.All()})
}

// Success is where Stripe redirects after payment. When a session id is
// present we fetch the session to show the amount charged.
func (h *PagesHandler) Success(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{}

	if sessionID := r.URL.Query().Get("session_id"); sessionID != "" {
		sess, err := h.Payments.GetCheckoutSession(r.Context(), sessionID)
		if err != nil {
			slog.Error("Failed to retrieve checkout session", "session_id", sessionID, "error", err)
		} else {
			data["SessionID"] = sess.ID
			data["Amount"] = sess.AmountTotal
		}
	}

	h.render(w, "success.html", data)
}

// Cancel is where Stripe redirects when the customer backs out.
func (h *PagesHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.render(w, "cancel.html", nil)
}
