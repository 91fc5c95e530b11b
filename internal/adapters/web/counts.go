package web

import (
	"net/http"
	"time"

	"barstock/internal/app"
	"barstock/internal/core"

	"github.com/go-chi/chi/v5"
)

// countPayload is the JSON body for PUT /api/stock-counts/{itemID}.
// Omitted fields keep their stored values, so one room can be counted at a
// time.
type countPayload struct {
	MainBar     *int `json:"main_bar"`
	BeerBar     *int `json:"beer_bar"`
	Lobby       *int `json:"lobby"`
	StorageRoom *int `json:"storage_room"`
}

type countResponse struct {
	ID          string    `json:"id,omitempty"`
	ItemID      string    `json:"item_id"`
	MainBar     int       `json:"main_bar"`
	BeerBar     int       `json:"beer_bar"`
	Lobby       int       `json:"lobby"`
	StorageRoom int       `json:"storage_room"`
	TotalCount  int       `json:"total_count"`
	CountDate   time.Time `json:"count_date"`
}

func toCountResponse(c core.StockCount) countResponse {
	return countResponse{
		ID:          c.ID,
		ItemID:      c.ItemID,
		MainBar:     c.MainBar,
		BeerBar:     c.BeerBar,
		Lobby:       c.Lobby,
		StorageRoom: c.StorageRoom,
		TotalCount:  c.TotalCount,
		CountDate:   c.CountDate,
	}
}

// listStockCounts handles GET /api/stock-counts.
func (h *Handler) listStockCounts(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListStockCounts(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	counts := make([]countResponse, 0, len(result.Counts))
	for _, c := range result.Counts {
		counts = append(counts, toCountResponse(c))
	}
	writeJSON(w, counts)
}

// getStockCount handles GET /api/stock-counts/{itemID}. Items never counted
// return a zero-valued count, not 404.
func (h *Handler) getStockCount(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetStockCount(r.Context(), chi.URLParam(r, "itemID"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, toCountResponse(*result.Count))
}

// updateStockCount handles PUT /api/stock-counts/{itemID}.
func (h *Handler) updateStockCount(w http.ResponseWriter, r *http.Request) {
	var p countPayload
	if !decodeJSON(w, r, &p) {
		return
	}
	result, err := h.svc.UpdateStockCount(r.Context(), chi.URLParam(r, "itemID"), app.CountUpdateRequest{
		MainBar:     p.MainBar,
		BeerBar:     p.BeerBar,
		Lobby:       p.Lobby,
		StorageRoom: p.StorageRoom,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, toCountResponse(*result.Count))
}
