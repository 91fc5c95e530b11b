package web

import (
	"net/http"

	"barstock/internal/app"
	"barstock/internal/core"

	"github.com/go-chi/chi/v5"
)

type caseCalculationResponse struct {
	CasesToBuy  int    `json:"cases_to_buy"`
	DisplayText string `json:"display_text"`
}

type shoppingLineResponse struct {
	ItemID          string                  `json:"item_id"`
	ItemName        string                  `json:"item_name"`
	CurrentStock    int                     `json:"current_stock"`
	MaxStock        int                     `json:"max_stock"`
	NeedToBuyUnits  int                     `json:"need_to_buy_units"`
	CaseCalculation caseCalculationResponse `json:"case_calculation"`
	EstimatedCost   string                  `json:"estimated_cost"`
}

type supplierGroupResponse struct {
	Supplier  string                 `json:"supplier"`
	Items     []shoppingLineResponse `json:"items"`
	TotalCost string                 `json:"total_cost"`
}

type lowStockResponse struct {
	ItemID          string `json:"item_id"`
	ItemName        string `json:"item_name"`
	Category        string `json:"category"`
	CategoryName    string `json:"category_name"`
	PrimarySupplier string `json:"primary_supplier"`
	CurrentStock    int    `json:"current_stock"`
	MinStock        int    `json:"min_stock"`
	Deficit         int    `json:"deficit"`
}

func toShoppingLineResponse(l core.ShoppingLineItem) shoppingLineResponse {
	return shoppingLineResponse{
		ItemID:         l.ItemID,
		ItemName:       l.ItemName,
		CurrentStock:   l.CurrentStock,
		MaxStock:       l.MaxStock,
		NeedToBuyUnits: l.NeedToBuyUnits,
		CaseCalculation: caseCalculationResponse{
			CasesToBuy:  l.CaseCalculation.CasesToBuy,
			DisplayText: l.CaseCalculation.DisplayText,
		},
		EstimatedCost: l.EstimatedCost.StringFixed(2),
	}
}

func toSupplierGroupResponse(g app.SupplierGroup) supplierGroupResponse {
	items := make([]shoppingLineResponse, 0, len(g.Items))
	for _, l := range g.Items {
		items = append(items, toShoppingLineResponse(l))
	}
	return supplierGroupResponse{
		Supplier:  g.Supplier,
		Items:     items,
		TotalCost: g.TotalCost.StringFixed(2),
	}
}

// shoppingList handles GET /api/shopping-list. The response maps supplier
// name to that supplier's items and subtotal; an empty object means the bar
// is fully stocked.
func (h *Handler) shoppingList(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetShoppingList(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	resp := make(map[string]supplierGroupResponse, len(result.Suppliers))
	for supplier, group := range result.Suppliers {
		resp[supplier] = toSupplierGroupResponse(group)
	}
	writeJSON(w, resp)
}

// shoppingListText handles GET /api/shopping-list-text/{supplier}, returning
// the plain-text order message for one supplier. 404 when that supplier has
// nothing to order.
func (h *Handler) shoppingListText(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetSupplierOrderText(r.Context(), chi.URLParam(r, "supplier"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	type response struct {
		Supplier string `json:"supplier"`
		Text     string `json:"text"`
	}
	writeJSON(w, response{Supplier: result.Supplier, Text: result.Text})
}

// quickRestock handles GET /api/quick-restock: items below minimum, in
// catalog order.
func (h *Handler) quickRestock(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetLowStock(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	alerts := make([]lowStockResponse, 0, len(result.Alerts))
	for _, a := range result.Alerts {
		alerts = append(alerts, lowStockResponse{
			ItemID:          a.ItemID,
			ItemName:        a.ItemName,
			Category:        string(a.Category),
			CategoryName:    a.Category.Label(),
			PrimarySupplier: a.PrimarySupplier,
			CurrentStock:    a.CurrentStock,
			MinStock:        a.MinStock,
			Deficit:         a.Deficit,
		})
	}
	writeJSON(w, alerts)
}
