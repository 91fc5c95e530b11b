package web

import (
	"errors"
	"net/http"
	"time"

	"barstock/internal/app"
	"barstock/internal/core"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

// itemPayload is the JSON request body for create/update. Money fields
// accept JSON numbers or strings; decimal handles both.
type itemPayload struct {
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	UnitsPerCase    int             `json:"units_per_case"`
	MinStock        int             `json:"min_stock"`
	MaxStock        int             `json:"max_stock"`
	PrimarySupplier string          `json:"primary_supplier"`
	CostPerUnit     decimal.Decimal `json:"cost_per_unit"`
	CostPerCase     decimal.Decimal `json:"cost_per_case"`
}

// itemResponse is the JSON shape of a catalog item. Money crosses the API
// boundary as fixed two-decimal strings; no currency symbol is attached.
type itemResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	CategoryName    string    `json:"category_name"`
	UnitsPerCase    int       `json:"units_per_case"`
	MinStock        int       `json:"min_stock"`
	MaxStock        int       `json:"max_stock"`
	PrimarySupplier string    `json:"primary_supplier"`
	SupplierBucket  string    `json:"supplier_bucket"`
	CostPerUnit     string    `json:"cost_per_unit"`
	CostPerCase     string    `json:"cost_per_case"`
	CreatedAt       time.Time `json:"created_at"`
}

func toItemResponse(it core.Item) itemResponse {
	return itemResponse{
		ID:              it.ID,
		Name:            it.Name,
		Category:        string(it.Category),
		CategoryName:    it.Category.Label(),
		UnitsPerCase:    it.UnitsPerCase,
		MinStock:        it.MinStock,
		MaxStock:        it.MaxStock,
		PrimarySupplier: it.PrimarySupplier,
		SupplierBucket:  core.SupplierBucket(it.PrimarySupplier),
		CostPerUnit:     it.CostPerUnit.StringFixed(2),
		CostPerCase:     it.CostPerCase.StringFixed(2),
		CreatedAt:       it.CreatedAt,
	}
}

func itemRequest(p itemPayload) app.ItemRequest {
	return app.ItemRequest{
		Name:            p.Name,
		Category:        core.Category(p.Category),
		UnitsPerCase:    p.UnitsPerCase,
		MinStock:        p.MinStock,
		MaxStock:        p.MaxStock,
		PrimarySupplier: p.PrimarySupplier,
		CostPerUnit:     p.CostPerUnit,
		CostPerCase:     p.CostPerCase,
	}
}

// writeServiceError maps domain errors onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, core.ErrItemNotFound):
		writeError(w, r, err.Error(), "NOT_FOUND", http.StatusNotFound)
	case errors.Is(err, core.ErrInvalidInput):
		writeError(w, r, err.Error(), "BAD_REQUEST", http.StatusBadRequest)
	case errors.Is(err, app.ErrNothingToOrder):
		writeError(w, r, err.Error(), "NOT_FOUND", http.StatusNotFound)
	default:
		writeError(w, r, err.Error(), "INTERNAL_ERROR", http.StatusInternalServerError)
	}
}

// listItems handles GET /api/items.
func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListItems(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	items := make([]itemResponse, 0, len(result.Items))
	for _, it := range result.Items {
		items = append(items, toItemResponse(it))
	}
	writeJSON(w, items)
}

// getItem handles GET /api/items/{id}.
func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, toItemResponse(*result.Item))
}

// createItem handles POST /api/items.
func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	var p itemPayload
	if !decodeJSON(w, r, &p) {
		return
	}
	result, err := h.svc.CreateItem(r.Context(), itemRequest(p))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSONStatus(w, toItemResponse(*result.Item), http.StatusCreated)
}

// updateItem handles PUT /api/items/{id}.
func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	var p itemPayload
	if !decodeJSON(w, r, &p) {
		return
	}
	result, err := h.svc.UpdateItem(r.Context(), chi.URLParam(r, "id"), itemRequest(p))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, toItemResponse(*result.Item))
}

// deleteItem handles DELETE /api/items/{id}.
func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteItem(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	type response struct {
		Message string `json:"message"`
	}
	writeJSON(w, response{Message: "item deleted"})
}
