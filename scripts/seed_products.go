package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
)

type product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	OldPrice    float64  `json:"oldPrice"`
	Type        string   `json:"type"`
	Features    []string `json:"features"`
}

// seed_products loads the catalogue JSON file into the products table so the
// API can be run with DB_ENABLED=true.
func main() {
	var (
		catalogPath = flag.String("catalog", "data/catalog.json", "path to the catalogue JSON file")
		connString  = flag.String("db", os.Getenv("DATABASE_URL"), "PostgreSQL connection string")
	)
	flag.Parse()

	if *connString == "" {
		log.Fatal("connection string is required (set DATABASE_URL or pass -db)")
	}

	data, err := os.ReadFile(*catalogPath)
	if err != nil {
		log.Fatalf("Failed to read catalogue file: %v", err)
	}

	var products []product
	if err := json.Unmarshal(data, &products); err != nil {
		log.Fatalf("Failed to parse catalogue file: %v", err)
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, *connString)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	schema := `
		CREATE TABLE IF NOT EXISTS products (
			id VARCHAR(50) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price DECIMAL(10, 2) NOT NULL,
			old_price DECIMAL(10, 2) NOT NULL,
			type VARCHAR(20) NOT NULL,
			features TEXT[] NOT NULL DEFAULT '{}'
		)
	`
	if _, err := pool.Exec(ctx, schema); err != nil {
		log.Fatalf("Failed to create products table: %v", err)
	}

	for _, p := range products {
		_, err := pool.Exec(ctx, `
			INSERT INTO products (id, name, description, price, old_price, type, features)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				description = EXCLUDED.description,
				price = EXCLUDED.price,
				old_price = EXCLUDED.old_price,
				type = EXCLUDED.type,
				features = EXCLUDED.features
		`, p.ID, p.Name, p.Description, p.Price, p.OldPrice, p.Type, p.Features)
		if err != nil {
			log.Fatalf("Failed to seed product %s: %v", p.ID, err)
		}
		fmt.Printf("Seeded product %s (%s)\n", p.ID, p.Name)
	}

	fmt.Printf("Done: %d products seeded\n", len(products))
}
