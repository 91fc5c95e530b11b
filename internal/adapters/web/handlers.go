package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"barstock/internal/app"

	"github.com/go-chi/chi/v5"
)

// Handler holds the ApplicationService and the chi router.
type Handler struct {
	svc    app.ApplicationService
	router chi.Router
}

// NewHandler creates and wires the chi router with all routes.
// allowedOrigins is the comma-separated ALLOWED_ORIGINS value.
func NewHandler(svc app.ApplicationService, allowedOrigins string) http.Handler {
	h := &Handler{svc: svc}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recoverer)
	r.Use(CORS(allowedOrigins))
	r.Use(RequestBodyLimit(1 << 20)) // 1 MB

	r.Get("/api/health", h.health)

	// ── Catalog ───────────────────────────────────────────────────────────
	r.Get("/api/items", h.listItems)
	r.Post("/api/items", h.createItem)
	r.Get("/api/items/{id}", h.getItem)
	r.Put("/api/items/{id}", h.updateItem)
	r.Delete("/api/items/{id}", h.deleteItem)

	// ── Stock counts ──────────────────────────────────────────────────────
	r.Get("/api/stock-counts", h.listStockCounts)
	r.Get("/api/stock-counts/{itemID}", h.getStockCount)
	r.Put("/api/stock-counts/{itemID}", h.updateStockCount)

	// ── Restock computations ──────────────────────────────────────────────
	r.Get("/api/shopping-list", h.shoppingList)
	r.Get("/api/shopping-list-text/{supplier}", h.shoppingListText)
	r.Get("/api/quick-restock", h.quickRestock)

	// ── Counting sessions ─────────────────────────────────────────────────
	r.Get("/api/stock-sessions", h.listSessions)
	r.Post("/api/stock-sessions", h.createSession)
	r.Get("/api/stock-sessions/current", h.currentSession)

	h.router = r
	return r
}

// health returns service status.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	type response struct {
		Status string `json:"status"`
	}
	writeJSON(w, response{Status: "ok"})
}

// decodeJSON decodes the request body into v, writing an appropriate error
// response and returning false on failure. Returns HTTP 413 when the body
// exceeds the RequestBodyLimit; HTTP 400 for all other decode errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, r, "request body too large", "REQUEST_TOO_LARGE", http.StatusRequestEntityTooLarge)
			return false
		}
		writeError(w, r, "invalid JSON body: "+err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return false
	}
	return true
}
