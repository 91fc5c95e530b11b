package core

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// The restock engine maps an item catalog plus the current stock counts to
// purchasing decisions: low-stock alerts, a per-supplier shopping list with
// case rounding and cost estimates, and a plain-text order message per
// supplier. It is stateless and performs no I/O: callers pass full
// snapshots, the engine only allocates new result values, and it is safe to
// call concurrently.

// LowStockAlert flags an item counted below its minimum level.
type LowStockAlert struct {
	ItemID          string
	ItemName        string
	Category        Category
	PrimarySupplier string
	CurrentStock    int
	MinStock        int
	Deficit         int
}

// CaseCalculation describes how a unit requirement converts to whole
// purchasable cases. CasesToBuy is zero for items without case packaging.
type CaseCalculation struct {
	CasesToBuy  int
	DisplayText string
}

// ShoppingLineItem is one catalog item on a supplier's shopping list.
type ShoppingLineItem struct {
	ItemID          string
	ItemName        string
	CurrentStock    int
	MaxStock        int
	NeedToBuyUnits  int
	CaseCalculation CaseCalculation
	EstimatedCost   decimal.Decimal
}

// CountsByItem collapses count rows into an item_id -> on-hand total map.
// The stored total_count is deliberately ignored and the location counters
// re-summed: a stale stored total is a data fault the engine must not
// propagate into purchasing decisions. A row with any negative counter maps
// to -1 so the callers below can exclude that item as malformed.
func CountsByItem(counts []StockCount) map[string]int {
	totals := make(map[string]int, len(counts))
	for _, c := range counts {
		if c.MainBar < 0 || c.BeerBar < 0 || c.Lobby < 0 || c.StorageRoom < 0 {
			totals[c.ItemID] = -1
			continue
		}
		totals[c.ItemID] = c.LocationSum()
	}
	return totals
}

// itemComputable reports whether an item record is well-formed enough to
// take part in restock computations. Bad records are skipped one at a time
// so a single broken row never blocks restocking for the rest of the
// catalog.
func itemComputable(it Item, onHand int) bool {
	if onHand < 0 {
		return false
	}
	if !it.Category.Valid() {
		return false
	}
	if it.UnitsPerCase < 1 || it.MinStock < 0 || it.MaxStock < 0 {
		return false
	}
	if it.CostPerUnit.IsNegative() || it.CostPerCase.IsNegative() {
		return false
	}
	return true
}

// ClassifyLowStock returns an alert for every item counted below its
// minimum level, in catalog input order. Items that were never counted are
// treated as zero on hand. An item with min_stock = 0 can never alert:
// a zero threshold means minimums are not tracked for it.
func ClassifyLowStock(items []Item, counts []StockCount) []LowStockAlert {
	totals := CountsByItem(counts)
	alerts := []LowStockAlert{}
	for _, it := range items {
		onHand := totals[it.ID]
		if !itemComputable(it, onHand) {
			continue
		}
		if onHand >= it.MinStock {
			continue
		}
		alerts = append(alerts, LowStockAlert{
			ItemID:          it.ID,
			ItemName:        it.Name,
			Category:        it.Category,
			PrimarySupplier: it.PrimarySupplier,
			CurrentStock:    onHand,
			MinStock:        it.MinStock,
			Deficit:         it.MinStock - onHand,
		})
	}
	return alerts
}

// BuildShoppingList computes what to buy to bring every item back to its
// maximum level, grouped by primary supplier. Items already at or above max
// do not appear at all, and a supplier with no qualifying items has no key
// in the result. Within a supplier group, items keep catalog input order.
func BuildShoppingList(items []Item, counts []StockCount) map[string][]ShoppingLineItem {
	totals := CountsByItem(counts)
	list := make(map[string][]ShoppingLineItem)
	for _, it := range items {
		onHand := totals[it.ID]
		if !itemComputable(it, onHand) {
			continue
		}
		need := it.MaxStock - onHand
		if need <= 0 {
			continue
		}
		list[it.PrimarySupplier] = append(list[it.PrimarySupplier], buildLine(it, onHand, need))
	}
	return list
}

// buildLine converts a unit requirement into a shopping line. Case-packed
// items round UP to whole cases: partial cases cannot be ordered, so 13
// units at 6 per case means 3 cases. Unit-packed items buy exactly the
// requirement.
func buildLine(it Item, onHand, need int) ShoppingLineItem {
	line := ShoppingLineItem{
		ItemID:         it.ID,
		ItemName:       it.Name,
		CurrentStock:   onHand,
		MaxStock:       it.MaxStock,
		NeedToBuyUnits: need,
	}
	if it.UnitsPerCase > 1 {
		cases := (need + it.UnitsPerCase - 1) / it.UnitsPerCase
		line.CaseCalculation = CaseCalculation{
			CasesToBuy:  cases,
			DisplayText: fmt.Sprintf("%d cases (%d units)", cases, cases*it.UnitsPerCase),
		}
		caseCost := it.CostPerCase
		if !caseCost.IsPositive() {
			caseCost = it.CostPerUnit.Mul(decimal.NewFromInt(int64(it.UnitsPerCase)))
		}
		line.EstimatedCost = caseCost.Mul(decimal.NewFromInt(int64(cases))).Round(2)
	} else {
		line.CaseCalculation = CaseCalculation{
			DisplayText: fmt.Sprintf("%d units", need),
		}
		line.EstimatedCost = it.CostPerUnit.Mul(decimal.NewFromInt(int64(need))).Round(2)
	}
	return line
}

// TotalCost sums estimated costs with decimal arithmetic, so supplier
// subtotals carry no accumulated binary-float error.
func TotalCost(lines []ShoppingLineItem) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.EstimatedCost)
	}
	return total
}

// SupplierOrderText renders one supplier's shopping list as a plain-text
// order message for pasting into a messaging app. Output is byte-stable for
// identical input: one line per item with its case or unit quantity, then
// the estimated total with two decimals.
func SupplierOrderText(supplier string, lines []ShoppingLineItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s order:\n", supplier)
	for _, l := range lines {
		fmt.Fprintf(&b, "- %s: %s\n", l.ItemName, l.CaseCalculation.DisplayText)
	}
	fmt.Fprintf(&b, "Total: %s\n", TotalCost(lines).StringFixed(2))
	return b.String()
}
