package app

import (
	"context"
)

// ApplicationService is the single interface all adapters (Web, CLI) call.
// It decouples presentation from business logic. Implementations must
// contain no fmt.Println, no ANSI codes, and no display logic of any kind.
type ApplicationService interface {
	// ListItems returns the full item catalog in creation order.
	ListItems(ctx context.Context) (*ItemListResult, error)

	// GetItem returns one catalog item by id.
	GetItem(ctx context.Context, id string) (*ItemResult, error)

	// CreateItem adds a catalog item after normalizing the input
	// (case price derived from unit price when absent).
	CreateItem(ctx context.Context, req ItemRequest) (*ItemResult, error)

	// UpdateItem replaces a catalog item's fields.
	UpdateItem(ctx context.Context, id string, req ItemRequest) (*ItemResult, error)

	// DeleteItem removes an item and its stock counts.
	DeleteItem(ctx context.Context, id string) error

	// ListStockCounts returns all stock count rows.
	ListStockCounts(ctx context.Context) (*CountListResult, error)

	// GetStockCount returns an item's count; zero-valued if never counted.
	GetStockCount(ctx context.Context, itemID string) (*CountResult, error)

	// UpdateStockCount patches an item's per-location counters, recomputing
	// the stored total atomically.
	UpdateStockCount(ctx context.Context, itemID string, req CountUpdateRequest) (*CountResult, error)

	// GetShoppingList computes the per-supplier shopping list from the
	// current catalog and counts.
	GetShoppingList(ctx context.Context) (*ShoppingListResult, error)

	// GetLowStock returns items counted below their minimum level.
	GetLowStock(ctx context.Context) (*LowStockResult, error)

	// GetSupplierOrderText renders a supplier's order message. Returns
	// ErrNothingToOrder when the supplier has no qualifying items.
	GetSupplierOrderText(ctx context.Context, supplier string) (*OrderTextResult, error)

	// CreateSession starts a counting session, deactivating any other.
	CreateSession(ctx context.Context, req SessionRequest) (*SessionResult, error)

	// ListSessions returns counting sessions newest first.
	ListSessions(ctx context.Context) (*SessionListResult, error)

	// CurrentSession returns the active session; Session is nil when none.
	CurrentSession(ctx context.Context) (*SessionResult, error)
}
