package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// Applies a migration file to the database named by DATABASE_URL.
// Usage: go run ./migrations [file]   (defaults to migrations/001_schema.sql)
func main() {
	_ = godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		fmt.Printf("Failed to connect to DB: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	file := "migrations/001_schema.sql"
	if len(os.Args) > 1 {
		file = os.Args[1]
	}

	sqlFile, err := os.ReadFile(file)
	if err != nil {
		fmt.Printf("Failed to read sql file: %v\n", err)
		os.Exit(1)
	}

	_, err = pool.Exec(ctx, string(sqlFile))
	if err != nil {
		fmt.Printf("Migration failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Migration successful.")
}
