package app

import (
	"barstock/internal/core"

	"github.com/shopspring/decimal"
)

// ItemResult is returned by single-item operations.
type ItemResult struct {
	Item *core.Item
}

// ItemListResult is returned by ListItems.
type ItemListResult struct {
	Items []core.Item
}

// CountResult is returned by stock count operations.
type CountResult struct {
	Count *core.StockCount
}

// CountListResult is returned by ListStockCounts.
type CountListResult struct {
	Counts []core.StockCount
}

// SupplierGroup is one supplier's slice of the shopping list with its
// subtotal.
type SupplierGroup struct {
	Supplier  string
	Items     []core.ShoppingLineItem
	TotalCost decimal.Decimal
}

// ShoppingListResult is returned by GetShoppingList. Suppliers with no
// qualifying items are absent; an empty map means fully stocked.
type ShoppingListResult struct {
	Suppliers map[string]SupplierGroup
}

// LowStockResult is returned by GetLowStock.
type LowStockResult struct {
	Alerts []core.LowStockAlert
}

// OrderTextResult is returned by GetSupplierOrderText.
type OrderTextResult struct {
	Supplier string
	Text     string
}

// SessionResult is returned by session operations. Session is nil when
// CurrentSession finds no active session.
type SessionResult struct {
	Session *core.StockSession
}

// SessionListResult is returned by ListSessions.
type SessionListResult struct {
	Sessions []core.StockSession
}
