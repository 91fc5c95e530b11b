package main

import (
	"context"
	"log"
	"net/http"
	"os"

	webAdapter "barstock/internal/adapters/web"
	"barstock/internal/app"
	"barstock/internal/core"
	"barstock/internal/db"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

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

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	handler := webAdapter.NewHandler(svc, allowedOrigins)

	log.Printf("server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}
