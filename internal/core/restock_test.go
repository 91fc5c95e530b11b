package core_test

import (
	"strings"
	"testing"

	"barstock/internal/core"

	"github.com/shopspring/decimal"
)

func beerItem(id, name string) core.Item {
	return core.Item{
		ID:              id,
		Name:            name,
		Category:        core.CategoryBeer,
		UnitsPerCase:    24,
		MinStock:        48,
		MaxStock:        120,
		PrimarySupplier: "Singha99",
		CostPerUnit:     decimal.NewFromInt(45),
		CostPerCase:     decimal.NewFromInt(650),
	}
}

func countFor(itemID string, mainBar, beerBar, lobby, storageRoom int) core.StockCount {
	c := core.StockCount{
		ItemID:      itemID,
		MainBar:     mainBar,
		BeerBar:     beerBar,
		Lobby:       lobby,
		StorageRoom: storageRoom,
	}
	c.TotalCount = c.LocationSum()
	return c
}

func TestClassifyLowStock(t *testing.T) {
	vodka := core.Item{
		ID: "vodka", Name: "Vodka", Category: core.CategoryAlcohol,
		UnitsPerCase: 1, MinStock: 5, MaxStock: 10,
		PrimarySupplier: "Makro", CostPerUnit: decimal.NewFromInt(350),
	}

	tests := []struct {
		name        string
		counted     int
		wantAlert   bool
		wantDeficit int
	}{
		{"below minimum", 3, true, 2},
		{"at minimum", 5, false, 0},
		{"above minimum", 8, false, 0},
		{"zero on hand", 0, true, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counts := []core.StockCount{countFor("vodka", tt.counted, 0, 0, 0)}
			alerts := core.ClassifyLowStock([]core.Item{vodka}, counts)
			if tt.wantAlert {
				if len(alerts) != 1 {
					t.Fatalf("expected 1 alert, got %d", len(alerts))
				}
				a := alerts[0]
				if a.Deficit != tt.wantDeficit {
					t.Errorf("expected deficit %d, got %d", tt.wantDeficit, a.Deficit)
				}
				if a.CurrentStock != tt.counted {
					t.Errorf("expected current stock %d, got %d", tt.counted, a.CurrentStock)
				}
				if a.ItemName != "Vodka" || a.PrimarySupplier != "Makro" {
					t.Errorf("alert carries wrong item fields: %+v", a)
				}
			} else if len(alerts) != 0 {
				t.Errorf("expected no alerts, got %+v", alerts)
			}
		})
	}
}

func TestClassifyLowStock_MissingCountIsZero(t *testing.T) {
	it := beerItem("chang", "Big Chang")
	alerts := core.ClassifyLowStock([]core.Item{it}, nil)
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert for never-counted item, got %d", len(alerts))
	}
	if alerts[0].CurrentStock != 0 || alerts[0].Deficit != 48 {
		t.Errorf("expected stock 0 / deficit 48, got %+v", alerts[0])
	}
}

func TestClassifyLowStock_ZeroMinimumNeverAlerts(t *testing.T) {
	it := beerItem("untracked", "Untracked")
	it.MinStock = 0
	alerts := core.ClassifyLowStock([]core.Item{it}, nil)
	if len(alerts) != 0 {
		t.Errorf("min_stock = 0 must never alert, got %+v", alerts)
	}
}

func TestClassifyLowStock_RecomputesStaleTotal(t *testing.T) {
	it := beerItem("chang", "Big Chang") // min 48
	// Locations sum to 60 but the stored total claims 10. The engine must
	// trust the locations, not the stored sum.
	c := core.StockCount{ItemID: "chang", MainBar: 20, BeerBar: 20, Lobby: 10, StorageRoom: 10, TotalCount: 10}
	alerts := core.ClassifyLowStock([]core.Item{it}, []core.StockCount{c})
	if len(alerts) != 0 {
		t.Errorf("expected no alert at 60 on hand (stale total 10), got %+v", alerts)
	}
}

func TestClassifyLowStock_PreservesCatalogOrder(t *testing.T) {
	items := []core.Item{beerItem("b", "Beta"), beerItem("a", "Alpha"), beerItem("c", "Gamma")}
	alerts := core.ClassifyLowStock(items, nil)
	if len(alerts) != 3 {
		t.Fatalf("expected 3 alerts, got %d", len(alerts))
	}
	for i, want := range []string{"Beta", "Alpha", "Gamma"} {
		if alerts[i].ItemName != want {
			t.Errorf("alert %d: expected %s, got %s", i, want, alerts[i].ItemName)
		}
	}
}

func TestBuildShoppingList_CaseRoundingCeils(t *testing.T) {
	it := core.Item{
		ID: "soda", Name: "Soda Water", Category: core.CategoryMixers,
		UnitsPerCase: 6, MinStock: 0, MaxStock: 13,
		PrimarySupplier: "Singha99", CostPerUnit: decimal.NewFromInt(10),
		CostPerCase: decimal.NewFromInt(60),
	}
	list := core.BuildShoppingList([]core.Item{it}, nil)
	lines := list["Singha99"]
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	l := lines[0]
	if l.NeedToBuyUnits != 13 {
		t.Errorf("expected need 13, got %d", l.NeedToBuyUnits)
	}
	if l.CaseCalculation.CasesToBuy != 3 {
		t.Errorf("13 units at 6/case must round up to 3 cases, got %d", l.CaseCalculation.CasesToBuy)
	}
	if l.CaseCalculation.DisplayText != "3 cases (18 units)" {
		t.Errorf("unexpected display text %q", l.CaseCalculation.DisplayText)
	}
}

func TestBuildShoppingList_ChangExample(t *testing.T) {
	it := core.Item{
		ID: "chang", Name: "Chang Beer", Category: core.CategoryBeer,
		UnitsPerCase: 24, MinStock: 48, MaxStock: 120,
		PrimarySupplier: "Singha99", CostPerCase: decimal.NewFromInt(650),
	}
	counts := []core.StockCount{countFor("chang", 30, 20, 5, 5)} // 60 on hand

	list := core.BuildShoppingList([]core.Item{it}, counts)
	l := list["Singha99"][0]
	if l.NeedToBuyUnits != 60 {
		t.Errorf("expected need 60, got %d", l.NeedToBuyUnits)
	}
	if l.CaseCalculation.CasesToBuy != 3 {
		t.Errorf("expected 3 cases, got %d", l.CaseCalculation.CasesToBuy)
	}
	if got := l.EstimatedCost.StringFixed(2); got != "1950.00" {
		t.Errorf("expected cost 1950.00, got %s", got)
	}
}

func TestBuildShoppingList_VodkaExample(t *testing.T) {
	it := core.Item{
		ID: "vodka", Name: "Vodka", Category: core.CategoryAlcohol,
		UnitsPerCase: 1, MinStock: 4, MaxStock: 10,
		PrimarySupplier: "Makro", CostPerUnit: decimal.NewFromInt(350),
	}
	counts := []core.StockCount{countFor("vodka", 2, 0, 0, 0)}

	alerts := core.ClassifyLowStock([]core.Item{it}, counts)
	if len(alerts) != 1 || alerts[0].Deficit != 2 {
		t.Fatalf("expected low-stock deficit 2, got %+v", alerts)
	}

	l := core.BuildShoppingList([]core.Item{it}, counts)["Makro"][0]
	if l.NeedToBuyUnits != 8 {
		t.Errorf("expected need 8, got %d", l.NeedToBuyUnits)
	}
	if l.CaseCalculation.CasesToBuy != 0 {
		t.Errorf("unit-packed item must report 0 cases, got %d", l.CaseCalculation.CasesToBuy)
	}
	if l.CaseCalculation.DisplayText != "8 units" {
		t.Errorf("unexpected display text %q", l.CaseCalculation.DisplayText)
	}
	if got := l.EstimatedCost.StringFixed(2); got != "2800.00" {
		t.Errorf("expected cost 2800.00, got %s", got)
	}
}

func TestBuildShoppingList_StockedItemsAbsent(t *testing.T) {
	atMax := beerItem("a", "At Max")
	overMax := beerItem("b", "Over Max")
	counts := []core.StockCount{
		countFor("a", 120, 0, 0, 0),
		countFor("b", 150, 0, 0, 0),
	}
	list := core.BuildShoppingList([]core.Item{atMax, overMax}, counts)
	if len(list) != 0 {
		t.Errorf("fully stocked catalog must produce an empty map, got %v", list)
	}
}

func TestBuildShoppingList_SupplierGrouping(t *testing.T) {
	chang := beerItem("chang", "Big Chang")
	leo := beerItem("leo", "Big Leo")
	rum := core.Item{
		ID: "rum", Name: "House Rum", Category: core.CategoryAlcohol,
		UnitsPerCase: 12, MinStock: 6, MaxStock: 24,
		PrimarySupplier: "Makro", CostPerCase: decimal.NewFromInt(288),
	}
	stocked := beerItem("full", "Stocked Beer")
	stocked.PrimarySupplier = "Tesco"

	counts := []core.StockCount{countFor("full", 120, 0, 0, 0)}
	list := core.BuildShoppingList([]core.Item{chang, rum, leo}, counts)

	if len(list) != 2 {
		t.Fatalf("expected 2 supplier groups, got %d (%v)", len(list), list)
	}
	if _, ok := list["Tesco"]; ok {
		t.Error("supplier with no qualifying items must have no key")
	}
	singha := list["Singha99"]
	if len(singha) != 2 || singha[0].ItemName != "Big Chang" || singha[1].ItemName != "Big Leo" {
		t.Errorf("group must preserve catalog order, got %+v", singha)
	}
	if len(list["Makro"]) != 1 {
		t.Errorf("expected 1 Makro line, got %+v", list["Makro"])
	}
}

func TestBuildShoppingList_ImplicitCaseCost(t *testing.T) {
	// No explicit case price: a case costs unit price times units per case.
	it := core.Item{
		ID: "cups", Name: "Cups", Category: core.CategoryOtherBar,
		UnitsPerCase: 50, MinStock: 0, MaxStock: 100,
		PrimarySupplier: "Makro", CostPerUnit: decimal.NewFromFloat(2.18),
	}
	l := core.BuildShoppingList([]core.Item{it}, nil)["Makro"][0]
	// 2 cases × (50 × 2.18) = 218.00
	if got := l.EstimatedCost.StringFixed(2); got != "218.00" {
		t.Errorf("expected 218.00, got %s", got)
	}
}

func TestBuildShoppingList_MaxBelowMinClampsToZero(t *testing.T) {
	it := beerItem("odd", "Odd Config")
	it.MinStock = 100
	it.MaxStock = 10
	counts := []core.StockCount{countFor("odd", 50, 0, 0, 0)}
	list := core.BuildShoppingList([]core.Item{it}, counts)
	if len(list) != 0 {
		t.Errorf("need must clamp at zero when stock exceeds max, got %v", list)
	}
}

func TestEngine_SkipsMalformedRecords(t *testing.T) {
	good := beerItem("good", "Good Beer")
	badCategory := beerItem("badcat", "Mystery")
	badCategory.Category = "X"
	badCase := beerItem("badcase", "Zero Case")
	badCase.UnitsPerCase = 0
	badMin := beerItem("badmin", "Negative Min")
	badMin.MinStock = -1
	badCount := beerItem("badcount", "Negative Count")

	counts := []core.StockCount{
		{ItemID: "badcount", MainBar: -5, BeerBar: 10, Lobby: 0, StorageRoom: 0},
	}

	items := []core.Item{good, badCategory, badCase, badMin, badCount}

	alerts := core.ClassifyLowStock(items, counts)
	if len(alerts) != 1 || alerts[0].ItemID != "good" {
		t.Errorf("only the well-formed item may alert, got %+v", alerts)
	}

	list := core.BuildShoppingList(items, counts)
	if len(list) != 1 || len(list["Singha99"]) != 1 || list["Singha99"][0].ItemID != "good" {
		t.Errorf("only the well-formed item may be bought, got %v", list)
	}
}

func TestTotalCost_DecimalAccumulation(t *testing.T) {
	lines := []core.ShoppingLineItem{
		{EstimatedCost: decimal.RequireFromString("10.10")},
		{EstimatedCost: decimal.RequireFromString("10.10")},
		{EstimatedCost: decimal.RequireFromString("10.10")},
	}
	if got := core.TotalCost(lines).StringFixed(2); got != "30.30" {
		t.Errorf("expected 30.30, got %s", got)
	}
	if got := core.TotalCost(nil).StringFixed(2); got != "0.00" {
		t.Errorf("expected 0.00 for empty list, got %s", got)
	}
}

func TestSupplierOrderText_Deterministic(t *testing.T) {
	chang := beerItem("chang", "Big Chang")
	vodka := core.Item{
		ID: "vodka", Name: "Vodka", Category: core.CategoryAlcohol,
		UnitsPerCase: 1, MinStock: 4, MaxStock: 10,
		PrimarySupplier: "Singha99", CostPerUnit: decimal.NewFromInt(350),
	}
	lines := core.BuildShoppingList([]core.Item{chang, vodka}, nil)["Singha99"]

	first := core.SupplierOrderText("Singha99", lines)
	second := core.SupplierOrderText("Singha99", lines)
	if first != second {
		t.Errorf("order text must be byte-identical across calls:\n%q\n%q", first, second)
	}

	if !strings.HasPrefix(first, "Singha99 order:\n") {
		t.Errorf("missing header: %q", first)
	}
	if !strings.Contains(first, "- Big Chang: 5 cases (120 units)\n") {
		t.Errorf("missing case line: %q", first)
	}
	if !strings.Contains(first, "- Vodka: 10 units\n") {
		t.Errorf("missing unit line: %q", first)
	}
	// 5 cases × 650 + 10 × 350 = 6750.00
	if !strings.HasSuffix(first, "Total: 6750.00\n") {
		t.Errorf("missing total line: %q", first)
	}
}
