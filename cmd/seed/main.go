package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/vivekevdt/FlexiBuy/internal/catalog"
	"github.com/vivekevdt/FlexiBuy/internal/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS chatbotproducts (
	id            BIGSERIAL PRIMARY KEY,
	name          TEXT NOT NULL,
	description   TEXT,
	category      TEXT,
	image_url     TEXT,
	price         DOUBLE PRECISION,
	battery_hours DOUBLE PRECISION,
	ram_gb        DOUBLE PRECISION,
	storage_gb    DOUBLE PRECISION,
	rating        DOUBLE PRECISION,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
)`

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db open error: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("db ping error: %v", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		log.Fatalf("schema error: %v", err)
	}

	repo := catalog.NewRepo(db)
	for i := range demoProducts {
		if err := repo.Insert(ctx, &demoProducts[i]); err != nil {
			log.Fatalf("insert %q: %v", demoProducts[i].Name, err)
		}
	}

	log.Printf("seeded %d products", len(demoProducts))
}

func f(v float64) *float64 { return &v }

// Electronics carry the full spec fields so the compare tool has
// something to work with; the remaining categories leave them absent.
var demoProducts = []catalog.Product{
	{
		Name:         "Phone A",
		Description:  "Compact flagship phone with a bright OLED display.",
		Category:     "electronics",
		Price:        f(699),
		BatteryHours: f(22),
		RAMGB:        f(8),
		StorageGB:    f(128),
		Rating:       f(4.5),
	},
	{
		Name:         "Phone B",
		Description:  "Large-screen phone built around battery life.",
		Category:     "electronics",
		Price:        f(799),
		BatteryHours: f(30),
		RAMGB:        f(12),
		StorageGB:    f(256),
		Rating:       f(4.3),
	},
	{
		Name:         "Phone C Lite",
		Description:  "Budget phone for calls, messaging and light browsing.",
		Category:     "electronics",
		Price:        f(249),
		BatteryHours: f(18),
		RAMGB:        f(4),
		StorageGB:    f(64),
		Rating:       f(4.0),
	},
	{
		Name:         "Aurora Laptop 14",
		Description:  "Thin 14-inch laptop for everyday work.",
		Category:     "electronics",
		Price:        f(1099),
		BatteryHours: f(12),
		RAMGB:        f(16),
		StorageGB:    f(512),
		Rating:       f(4.6),
	},
	{
		Name:         "Aurora Laptop 16 Pro",
		Description:  "16-inch workstation laptop for heavy workloads.",
		Category:     "electronics",
		Price:        f(1899),
		BatteryHours: f(10),
		RAMGB:        f(32),
		StorageGB:    f(1024),
		Rating:       f(4.7),
	},
	{
		Name:         "Pulse Wireless Earbuds",
		Description:  "Noise-cancelling earbuds with a charging case.",
		Category:     "electronics",
		Price:        f(149),
		BatteryHours: f(28),
		Rating:       f(4.2),
	},
	{
		Name:         "Pulse Smart Watch",
		Description:  "Fitness watch with sleep and heart-rate tracking.",
		Category:     "electronics",
		Price:        f(229),
		BatteryHours: f(72),
		StorageGB:    f(32),
		Rating:       f(4.1),
	},
	{
		Name:        "Everyday Canvas Tote",
		Description: "Durable canvas tote bag for groceries and books.",
		Category:    "clothes",
		Price:       f(29),
		Rating:      f(4.4),
	},
	{
		Name:        "Cloud Knit Hoodie",
		Description: "Soft mid-weight hoodie in recycled cotton.",
		Category:    "clothes",
		Price:       f(59),
		Rating:      f(4.5),
	},
	{
		Name:        "Cast Iron Skillet 12in",
		Description: "Pre-seasoned skillet that works on any stovetop.",
		Category:    "home",
		Price:       f(45),
		Rating:      f(4.8),
	},
	{
		Name:        "The Quiet Orchard",
		Description: "A slow-burn novel about a family apple farm.",
		Category:    "books",
		Price:       f(18),
		Rating:      f(4.3),
	},
	{
		Name:        "Trailline Running Shoes",
		Description: "Lightweight trail shoes with a grippy outsole.",
		Category:    "shoes",
		Price:       f(119),
		Rating:      f(4.2),
	},
}
