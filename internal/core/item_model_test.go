package core_test

import (
	"testing"

	"barstock/internal/core"

	"github.com/shopspring/decimal"
)

func validInput() core.ItemInput {
	return core.ItemInput{
		Name:            "Big Chang",
		Category:        core.CategoryBeer,
		UnitsPerCase:    15,
		MinStock:        30,
		MaxStock:        120,
		PrimarySupplier: "Singha99",
		CostPerUnit:     decimal.NewFromInt(44),
		CostPerCase:     decimal.NewFromInt(660),
	}
}

func TestItemInputNormalize(t *testing.T) {
	t.Run("trims and defaults supplier", func(t *testing.T) {
		in := validInput()
		in.Name = "  Big Chang  "
		in.PrimarySupplier = "   "
		in.Normalize()
		if in.Name != "Big Chang" {
			t.Errorf("expected trimmed name, got %q", in.Name)
		}
		if in.PrimarySupplier != core.SupplierOther {
			t.Errorf("expected supplier %q, got %q", core.SupplierOther, in.PrimarySupplier)
		}
	})

	t.Run("derives case price for case-packed items", func(t *testing.T) {
		in := validInput()
		in.CostPerCase = decimal.Zero
		in.Normalize()
		if got := in.CostPerCase.StringFixed(2); got != "660.00" {
			t.Errorf("expected derived case price 660.00, got %s", got)
		}
	})

	t.Run("keeps an explicit case price", func(t *testing.T) {
		in := validInput()
		in.CostPerCase = decimal.NewFromInt(600)
		in.Normalize()
		if got := in.CostPerCase.StringFixed(2); got != "600.00" {
			t.Errorf("explicit case price must survive, got %s", got)
		}
	})

	t.Run("no derivation for unit-packed items", func(t *testing.T) {
		in := validInput()
		in.UnitsPerCase = 1
		in.CostPerCase = decimal.Zero
		in.Normalize()
		if !in.CostPerCase.IsZero() {
			t.Errorf("unit-packed item must keep zero case price, got %s", in.CostPerCase)
		}
	})

	t.Run("no derivation without a unit price", func(t *testing.T) {
		in := validInput()
		in.CostPerUnit = decimal.Zero
		in.CostPerCase = decimal.Zero
		in.Normalize()
		if !in.CostPerCase.IsZero() {
			t.Errorf("expected zero case price, got %s", in.CostPerCase)
		}
	})
}

func TestItemInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*core.ItemInput)
		wantErr bool
	}{
		{"valid", func(in *core.ItemInput) {}, false},
		{"empty name", func(in *core.ItemInput) { in.Name = "" }, true},
		{"unknown category", func(in *core.ItemInput) { in.Category = "X" }, true},
		{"zero units per case", func(in *core.ItemInput) { in.UnitsPerCase = 0 }, true},
		{"negative min", func(in *core.ItemInput) { in.MinStock = -1 }, true},
		{"negative max", func(in *core.ItemInput) { in.MaxStock = -1; in.MinStock = 0 }, true},
		{"max below min", func(in *core.ItemInput) { in.MaxStock = 10; in.MinStock = 100 }, true},
		{"negative unit cost", func(in *core.ItemInput) { in.CostPerUnit = decimal.NewFromInt(-1) }, true},
		{"negative case cost", func(in *core.ItemInput) { in.CostPerCase = decimal.NewFromInt(-1) }, true},
		{"zero min and max", func(in *core.ItemInput) { in.MinStock = 0; in.MaxStock = 0 }, false},
		{"free item", func(in *core.ItemInput) { in.CostPerUnit = decimal.Zero; in.CostPerCase = decimal.Zero }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			err := in.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected a validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestCategoryLabel(t *testing.T) {
	tests := []struct {
		category core.Category
		label    string
	}{
		{core.CategoryBeer, "Beer"},
		{core.CategoryAlcohol, "Alcohol"},
		{core.CategoryMixers, "Mixers"},
		{core.CategoryOtherBar, "Other Bar"},
		{core.CategoryHostel, "Hostel Supplies"},
		{core.Category("X"), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.category.Label(); got != tt.label {
			t.Errorf("category %q: expected label %q, got %q", tt.category, tt.label, got)
		}
	}
}

func TestSupplierBucket(t *testing.T) {
	if got := core.SupplierBucket("Makro"); got != "Makro" {
		t.Errorf("known supplier must keep its own bucket, got %q", got)
	}
	if got := core.SupplierBucket("Somchai's Stall"); got != core.SupplierOther {
		t.Errorf("unknown supplier must bucket as Other, got %q", got)
	}
}
