package main

import (
	"context"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/adapters/repositories"
	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/config"
	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/platform/db"
)

// dbtool initializes the Postgres schema and seeds cooling points from JSON.
// Local SQLite runs are seeded by the server itself on startup.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pool, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	ctx := context.Background()
	seedPath := config.Get("SEED_PATH", "data/seeds/cooling_points.json")

	log.Println("Initializing database schema...")
	if err := repositories.InitPostgresSchema(ctx, pool); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding cooling points...")
	if err := repositories.SeedPostgresFromJSON(ctx, pool, seedPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}
