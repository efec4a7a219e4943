package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"

	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/adapters/cache"
	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/adapters/repositories"
	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/adapters/weather"
	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/api"
	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/config"
	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/domain"
	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/platform/db"
	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/ports"
	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (Postgres/SQLite/Overpass, Open-Meteo, Redis)
// behind ports and starts the HTTP server. Every client is constructed here
// and injected; nothing holds a hidden global.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")

	repo, cleanup, err := buildPointRepository()
	if err != nil {
		log.Fatal(err)
	}
	if cleanup != nil {
		defer cleanup()
	}

	var provider ports.WeatherProvider = weather.NewOpenMeteoProvider(config.Get("TIMEZONE", ""))

	// Optional read-through forecast cache; lookups work without it.
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		ttl := time.Duration(config.GetInt("FORECAST_TTL_SECONDS", 0)) * time.Second
		provider = weather.NewCachedProvider(provider, cache.NewRedisForecastCache(client, ttl))
		defer client.Close()
		log.Printf("forecast cache enabled addr=%s", addr)
	}

	engine := services.NewRouteEngine(provider, repo, services.RouteEngineConfig{
		MinutesPerKm: config.GetFloat("MINUTES_PER_KM", 0),
	})

	router := api.NewRouter(repo, engine)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// buildPointRepository selects the cooling point source:
// Postgres when DATABASE_URL is set, Overpass/OSM when OVERPASS_URL is set,
// a local SQLite file when DB_PATH is set, and the built-in demo set
// otherwise.
func buildPointRepository() (ports.CoolingPointRepository, func(), error) {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		pool, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, err
		}
		log.Println("cooling points source: postgres")
		return repositories.NewPostgresPointRepository(pool), func() { pool.Close() }, nil
	}

	if endpoint := os.Getenv("OVERPASS_URL"); endpoint != "" {
		home := domain.Coordinate{
			Lat: config.GetFloat("HOME_LAT", -23.5505),
			Lon: config.GetFloat("HOME_LON", -46.6333),
		}
		repo := repositories.NewOverpassPointRepository(endpoint, home)
		repo.RadiusM = config.GetInt("OVERPASS_RADIUS_M", repo.RadiusM)
		log.Println("cooling points source: overpass")
		return repo, nil, nil
	}

	if dbPath := os.Getenv("DB_PATH"); dbPath != "" {
		sqliteDB, err := openSqlite(dbPath, config.Get("SEED_PATH", "data/seeds/cooling_points.json"))
		if err != nil {
			return nil, nil, err
		}
		log.Println("cooling points source: sqlite")
		return repositories.NewSqlitePointRepository(sqliteDB), func() { sqliteDB.Close() }, nil
	}

	log.Println("cooling points source: built-in demo set")
	return repositories.NewStaticPointRepository(nil), nil, nil
}

func openSqlite(dbPath, seedPath string) (*sql.DB, error) {
	sqliteDB, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database %q: %w", dbPath, err)
	}

	if err := sqliteDB.Ping(); err != nil {
		return nil, fmt.Errorf("verify sqlite connection to %q: %w", dbPath, err)
	}

	// Initialize schema and seed demo data on startup for local runs.
	if err := repositories.InitSqliteSchema(sqliteDB); err != nil {
		return nil, err
	}
	if err := repositories.SeedSqliteFromJSON(sqliteDB, seedPath); err != nil {
		return nil, err
	}

	return sqliteDB, nil
}
