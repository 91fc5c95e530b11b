package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"barstock/internal/adapters/cli"
	"barstock/internal/app"
	"barstock/internal/core"
	"barstock/internal/db"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: app <command>")
		fmt.Fprintln(os.Stderr, "Commands: items, shopping, low, order <supplier>")
		os.Exit(2)
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	itemService := core.NewItemService(pool)
	countService := core.NewCountService(pool)
	sessionService := core.NewSessionService(pool)

	svc := app.NewAppService(pool, itemService, countService, sessionService)

	cli.Run(ctx, svc, os.Args[1:])
}
