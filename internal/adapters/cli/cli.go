package cli

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"barstock/internal/app"
)

// Run executes a one-shot CLI command and exits.
// args is os.Args[1:], so the first element is the subcommand name.
func Run(ctx context.Context, svc app.ApplicationService, args []string) {
	switch args[0] {
	case "items", "catalog", "i":
		result, err := svc.ListItems(ctx)
		if err != nil {
			log.Fatalf("Failed to list items: %v", err)
		}
		printItems(result)

	case "shopping", "list", "s":
		result, err := svc.GetShoppingList(ctx)
		if err != nil {
			log.Fatalf("Failed to build shopping list: %v", err)
		}
		printShoppingList(result)

	case "low", "restock", "l":
		result, err := svc.GetLowStock(ctx)
		if err != nil {
			log.Fatalf("Failed to check low stock: %v", err)
		}
		printLowStock(result)

	case "order", "o":
		if len(args) < 2 {
			log.Fatal("Usage: app order <supplier>")
		}
		result, err := svc.GetSupplierOrderText(ctx, args[1])
		if err != nil {
			log.Fatalf("Failed to render order: %v", err)
		}
		fmt.Print(result.Text)

	default:
		log.Fatalf("Unknown command: %s\nAvailable: items, shopping, low, order <supplier>", args[0])
	}
}

func printItems(result *app.ItemListResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 72))
	fmt.Printf("  %-68s\n", "ITEM CATALOG")
	fmt.Println(strings.Repeat("=", 72))
	fmt.Printf("  %-24s %-14s %-12s %5s %5s %6s\n", "NAME", "CATEGORY", "SUPPLIER", "MIN", "MAX", "/CASE")
	fmt.Println(strings.Repeat("-", 72))
	for _, it := range result.Items {
		fmt.Printf("  %-24s %-14s %-12s %5d %5d %6d\n",
			it.Name, it.Category.Label(), it.PrimarySupplier, it.MinStock, it.MaxStock, it.UnitsPerCase)
	}
	fmt.Println(strings.Repeat("=", 72))
}

func printShoppingList(result *app.ShoppingListResult) {
	if len(result.Suppliers) == 0 {
		fmt.Println("All stocked up. Nothing to buy.")
		return
	}

	// Map order is random; sort suppliers for a stable printout.
	names := make([]string, 0, len(result.Suppliers))
	for name := range result.Suppliers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		group := result.Suppliers[name]
		fmt.Println()
		fmt.Println(strings.Repeat("=", 64))
		fmt.Printf("  SUPPLIER: %s\n", group.Supplier)
		fmt.Println(strings.Repeat("-", 64))
		for _, l := range group.Items {
			fmt.Printf("  %-28s %-22s %10s\n", l.ItemName, l.CaseCalculation.DisplayText, l.EstimatedCost.StringFixed(2))
		}
		fmt.Println(strings.Repeat("-", 64))
		fmt.Printf("  %-51s %10s\n", "TOTAL", group.TotalCost.StringFixed(2))
		fmt.Println(strings.Repeat("=", 64))
	}
}

func printLowStock(result *app.LowStockResult) {
	if len(result.Alerts) == 0 {
		fmt.Println("No items below minimum stock.")
		return
	}
	fmt.Println()
	fmt.Println(strings.Repeat("=", 68))
	fmt.Printf("  %-64s\n", "LOW STOCK")
	fmt.Println(strings.Repeat("=", 68))
	fmt.Printf("  %-24s %-14s %-12s %5s %5s %5s\n", "NAME", "CATEGORY", "SUPPLIER", "HAVE", "MIN", "NEED")
	fmt.Println(strings.Repeat("-", 68))
	for _, a := range result.Alerts {
		fmt.Printf("  %-24s %-14s %-12s %5d %5d %5d\n",
			a.ItemName, a.Category.Label(), a.PrimarySupplier, a.CurrentStock, a.MinStock, a.Deficit)
	}
	fmt.Println(strings.Repeat("=", 68))
}
