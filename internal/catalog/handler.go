package catalog

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// GetData — the product lookup tool. Accepts {query} or {id}.
func (h *Handler) GetData(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Query string `json:"query"`
		ID    int64  `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"ok": false, "error": "invalid json",
		})
		return
	}

	if payload.ID != 0 {
		p, err := h.svc.LookupByID(r.Context(), payload.ID)
		switch {
		case errors.Is(err, ErrNotFound):
			writeJSON(w, http.StatusOK, map[string]any{"ok": true, "product": nil})
		case err != nil:
			log.Println("[catalog] getData by id failed:", err)
			writeJSON(w, http.StatusInternalServerError, map[string]any{
				"ok": false, "error": "lookup failed",
			})
		default:
			writeJSON(w, http.StatusOK, map[string]any{"ok": true, "product": p})
		}
		return
	}

	if payload.Query == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"ok": false, "error": "Provide query or id",
		})
		return
	}

	res, err := h.svc.Lookup(r.Context(), payload.Query)
	if err != nil {
		log.Println("[catalog] getData search failed:", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"ok": false, "error": "search failed",
		})
		return
	}

	if res.Product != nil {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "product": res.Product})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "results": res.Results})
}

// CompareProducts — the comparison tool. Accepts {aId, bId} or
// {aName, bName}; both sides are required either way.
func (h *Handler) CompareProducts(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		AID   int64  `json:"aId"`
		BID   int64  `json:"bId"`
		AName string `json:"aName"`
		BName string `json:"bName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"ok": false, "error": "invalid json",
		})
		return
	}

	var (
		cmp *Comparison
		err error
	)
	switch {
	case payload.AID != 0 && payload.BID != 0:
		cmp, err = h.svc.CompareByID(r.Context(), payload.AID, payload.BID)
	case payload.AName != "" && payload.BName != "":
		cmp, err = h.svc.Compare(r.Context(), payload.AName, payload.BName)
	default:
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"ok": false, "error": "Provide either aId & bId or aName & bName",
		})
		return
	}

	switch {
	case errors.Is(err, ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]any{
			"ok": false, "error": "Products not found",
		})
	case err != nil:
		log.Println("[catalog] compare failed:", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"ok": false, "error": "compare failed",
		})
	default:
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":         true,
			"a":          cmp.A,
			"b":          cmp.B,
			"comparison": cmp,
		})
	}
}

// ListProducts — paginated catalog listing.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	products, total, err := h.svc.List(r.Context(), page, limit)
	if err != nil {
		log.Println("[catalog] list failed:", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"ok": false, "error": "list failed",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"ok":       true,
		"products": products,
		"total":    total,
		"page":     page,
		"limit":    limit,
	})
}

func queryInt(r *http.Request, key string, defaultVal int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
