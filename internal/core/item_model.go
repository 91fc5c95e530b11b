package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Category classifies catalog items. The single-letter codes match the
// paper stock sheets the bar counted from before this system existed.
type Category string

const (
	CategoryBeer     Category = "B"
	CategoryAlcohol  Category = "A"
	CategoryMixers   Category = "M"
	CategoryOtherBar Category = "O"
	CategoryHostel   Category = "Z"
)

// Label returns the display name for the category.
func (c Category) Label() string {
	switch c {
	case CategoryBeer:
		return "Beer"
	case CategoryAlcohol:
		return "Alcohol"
	case CategoryMixers:
		return "Mixers"
	case CategoryOtherBar:
		return "Other Bar"
	case CategoryHostel:
		return "Hostel Supplies"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is one of the defined category codes.
func (c Category) Valid() bool {
	switch c {
	case CategoryBeer, CategoryAlcohol, CategoryMixers, CategoryOtherBar, CategoryHostel:
		return true
	}
	return false
}

// KnownSuppliers are the suppliers the bar regularly orders from. The set is
// open: an item may name any supplier string, and shopping-list grouping
// always uses the raw name. SupplierBucket only decides display styling.
var KnownSuppliers = []string{
	"Singha99", "Makro", "Local Market", "zBKK", "Tesco", "Big C", "Samui Shops", "Mr DIY",
}

// SupplierOther is the styling bucket for suppliers outside KnownSuppliers.
const SupplierOther = "Other"

// SupplierBucket maps a supplier name to its styling bucket. Unknown
// suppliers style as Other but still group under their own name.
func SupplierBucket(supplier string) string {
	for _, s := range KnownSuppliers {
		if s == supplier {
			return s
		}
	}
	return SupplierOther
}

// Item is a catalog record: what the product is and the purchase policy
// for it (case packaging, min/max levels, supplier, costs).
type Item struct {
	ID              string
	Name            string
	Category        Category
	UnitsPerCase    int
	MinStock        int
	MaxStock        int
	PrimarySupplier string
	CostPerUnit     decimal.Decimal
	CostPerCase     decimal.Decimal
	CreatedAt       time.Time
}

// ItemInput holds the fields required to create or update a catalog item.
type ItemInput struct {
	Name            string
	Category        Category
	UnitsPerCase    int
	MinStock        int
	MaxStock        int
	PrimarySupplier string
	CostPerUnit     decimal.Decimal
	CostPerCase     decimal.Decimal
}

// Normalize trims strings and derives the case price from the unit price
// when the item is case-packed and no explicit case price was given.
// This runs at the edit boundary so the restock engine never has to apply
// pricing defaults of its own.
func (in *ItemInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.PrimarySupplier = strings.TrimSpace(in.PrimarySupplier)
	if in.PrimarySupplier == "" {
		in.PrimarySupplier = SupplierOther
	}
	if in.CostPerCase.IsZero() && in.UnitsPerCase > 1 && in.CostPerUnit.IsPositive() {
		in.CostPerCase = in.CostPerUnit.Mul(decimal.NewFromInt(int64(in.UnitsPerCase)))
	}
}

// Validate checks the policy fields. A max level below the min level is a
// configuration error and is rejected here, at the edit boundary; the
// restock engine tolerates such items by clamping at zero.
func (in ItemInput) Validate() error {
	if in.Name == "" {
		return fmt.Errorf("item name is required")
	}
	if !in.Category.Valid() {
		return fmt.Errorf("unknown category %q", string(in.Category))
	}
	if in.UnitsPerCase < 1 {
		return fmt.Errorf("units_per_case must be at least 1, got %d", in.UnitsPerCase)
	}
	if in.MinStock < 0 {
		return fmt.Errorf("min_stock cannot be negative, got %d", in.MinStock)
	}
	if in.MaxStock < 0 {
		return fmt.Errorf("max_stock cannot be negative, got %d", in.MaxStock)
	}
	if in.MaxStock < in.MinStock {
		return fmt.Errorf("max_stock %d is below min_stock %d", in.MaxStock, in.MinStock)
	}
	if in.CostPerUnit.IsNegative() {
		return fmt.Errorf("cost_per_unit cannot be negative, got %s", in.CostPerUnit)
	}
	if in.CostPerCase.IsNegative() {
		return fmt.Errorf("cost_per_case cannot be negative, got %s", in.CostPerCase)
	}
	return nil
}
