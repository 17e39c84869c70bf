package catalog

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/api/tool/getData", h.GetData)
	r.Post("/api/tool/compare", h.CompareProducts)
	r.Get("/api/products", h.ListProducts)
}
