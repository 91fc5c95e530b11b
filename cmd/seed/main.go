package main

import (
	"context"
	"fmt"
	"log"

	"barstock/internal/core"
	"barstock/internal/db"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Seeds the catalog with the bar's real stock sheet. Destructive: wipes
// items and counts first, which is why this is a command and not an API
// endpoint.
func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, "TRUNCATE TABLE stock_counts, items CASCADE"); err != nil {
		log.Fatalf("failed to clear existing data: %v", err)
	}

	items := catalog()
	itemService := core.NewItemService(pool)
	for _, in := range items {
		if _, err := itemService.CreateItem(ctx, in); err != nil {
			log.Fatalf("failed to seed %q: %v", in.Name, err)
		}
	}

	fmt.Printf("Seeded %d catalog items.\n", len(items))
}

func money(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// catalog is the full stock sheet: beers and mixers bought by the case from
// Singha99, spirits split between Makro and the Bangkok import run, and
// bar/hostel supplies from Makro and the local market.
func catalog() []core.ItemInput {
	return []core.ItemInput{
		{Name: "Big Chang", Category: core.CategoryBeer, UnitsPerCase: 15, MinStock: 30, MaxStock: 120, PrimarySupplier: "Singha99", CostPerUnit: money(44), CostPerCase: money(660)},
		{Name: "Small Chang", Category: core.CategoryBeer, UnitsPerCase: 24, MinStock: 48, MaxStock: 192, PrimarySupplier: "Singha99", CostPerUnit: money(45), CostPerCase: money(1080)},
		{Name: "Big Leo", Category: core.CategoryBeer, UnitsPerCase: 12, MinStock: 24, MaxStock: 96, PrimarySupplier: "Singha99", CostPerUnit: money(45), CostPerCase: money(540)},
		{Name: "Small Leo", Category: core.CategoryBeer, UnitsPerCase: 24, MinStock: 48, MaxStock: 192, PrimarySupplier: "Singha99", CostPerUnit: money(45), CostPerCase: money(1080)},
		{Name: "Big Singha", Category: core.CategoryBeer, UnitsPerCase: 12, MinStock: 24, MaxStock: 96, PrimarySupplier: "Singha99", CostPerUnit: money(50.08), CostPerCase: money(601)},
		{Name: "Small Singha", Category: core.CategoryBeer, UnitsPerCase: 24, MinStock: 48, MaxStock: 192, PrimarySupplier: "Singha99", CostPerUnit: money(27.08), CostPerCase: money(650)},
		{Name: "Small Heineken", Category: core.CategoryBeer, UnitsPerCase: 24, MinStock: 24, MaxStock: 96, PrimarySupplier: "Singha99", CostPerUnit: money(31.75), CostPerCase: money(762)},
		{Name: "Red Bull", Category: core.CategoryMixers, UnitsPerCase: 50, MinStock: 100, MaxStock: 300, PrimarySupplier: "Singha99", CostPerUnit: money(4), CostPerCase: money(200)},
		{Name: "Big Coke", Category: core.CategoryMixers, UnitsPerCase: 12, MinStock: 24, MaxStock: 96, PrimarySupplier: "Singha99", CostPerUnit: money(12), CostPerCase: money(144)},
		{Name: "Soda Water", Category: core.CategoryMixers, UnitsPerCase: 24, MinStock: 48, MaxStock: 144, PrimarySupplier: "Singha99", CostPerUnit: money(10), CostPerCase: money(240)},
		{Name: "Sangsom (Black)", Category: core.CategoryAlcohol, UnitsPerCase: 12, MinStock: 6, MaxStock: 24, PrimarySupplier: "Singha99", CostPerUnit: money(45), CostPerCase: money(540)},
		{Name: "Charles House Rum", Category: core.CategoryAlcohol, UnitsPerCase: 12, MinStock: 6, MaxStock: 24, PrimarySupplier: "Makro", CostPerUnit: money(24), CostPerCase: money(288)},
		{Name: "Jack Daniels", Category: core.CategoryAlcohol, UnitsPerCase: 1, MinStock: 1, MaxStock: 6, PrimarySupplier: "zBKK", CostPerUnit: money(1200)},
		{Name: "Grey Goose Vodka", Category: core.CategoryAlcohol, UnitsPerCase: 1, MinStock: 1, MaxStock: 4, PrimarySupplier: "zBKK", CostPerUnit: money(2500)},
		{Name: "Limes (25 pack)", Category: core.CategoryOtherBar, UnitsPerCase: 25, MinStock: 50, MaxStock: 200, PrimarySupplier: "Makro", CostPerUnit: money(0.4), CostPerCase: money(10)},
		{Name: "Plastic Cups (16oz)", Category: core.CategoryOtherBar, UnitsPerCase: 50, MinStock: 100, MaxStock: 500, PrimarySupplier: "Makro", CostPerUnit: money(2.18), CostPerCase: money(109)},
		{Name: "Toilet Paper", Category: core.CategoryHostel, UnitsPerCase: 24, MinStock: 24, MaxStock: 96, PrimarySupplier: "Makro", CostPerUnit: money(8.5), CostPerCase: money(204)},
		{Name: "Laundry Soap", Category: core.CategoryHostel, UnitsPerCase: 1, MinStock: 2, MaxStock: 8, PrimarySupplier: "Local Market", CostPerUnit: money(65)},
	}
}
