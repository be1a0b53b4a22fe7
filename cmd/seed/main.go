// Comando seed: completa sales_fact hasta un minimo de filas con ventas
// aleatorias sobre las dimensiones ya cargadas.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"math/rand"
	"time"

	"hanz-sales/internal/config"
	"hanz-sales/internal/db"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	minCount := flag.Int("min", 20, "minimum number of sales_fact rows")
	flag.Parse()

	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	added, err := ensureMinSales(ctx, pool, *minCount)
	if err != nil {
		logger.Fatal("seed failed", zap.Error(err))
	}
	logger.Info("seed done", zap.Int("added", added))
}

var errMissingDimensions = errors.New("missing dimension data (products/customers/regions); run migrations first")

func ensureMinSales(ctx context.Context, pool *pgxpool.Pool, minCount int) (int, error) {
	var current int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM sales_fact`).Scan(&current); err != nil {
		return 0, err
	}
	if current >= minCount {
		return 0, nil
	}

	var maxID *int
	if err := pool.QueryRow(ctx, `SELECT MAX(sale_id) FROM sales_fact`).Scan(&maxID); err != nil {
		return 0, err
	}
	nextID := 1
	if maxID != nil {
		nextID = *maxID + 1
	}

	productIDs, err := intColumn(ctx, pool, `SELECT product_id FROM products`)
	if err != nil {
		return 0, err
	}
	customerIDs, err := intColumn(ctx, pool, `SELECT customer_id FROM customers`)
	if err != nil {
		return 0, err
	}
	regionIDs, err := intColumn(ctx, pool, `SELECT region_id FROM regions`)
	if err != nil {
		return 0, err
	}
	if len(productIDs) == 0 || len(customerIDs) == 0 || len(regionIDs) == 0 {
		return 0, errMissingDimensions
	}

	base := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	toAdd := minCount - current
	for i := 0; i < toAdd; i++ {
		saleDate := base.AddDate(0, 0, rand.Intn(61))
		price := 10.0 + rand.Float64()*1490.0
		_, err := pool.Exec(ctx, `
			INSERT INTO sales_fact (sale_id, product_id, sale_date, quantity, price, customer_id, region_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`,
			nextID,
			productIDs[rand.Intn(len(productIDs))],
			saleDate.Format("2006-01-02"),
			1+rand.Intn(10),
			float64(int(price*100))/100,
			customerIDs[rand.Intn(len(customerIDs))],
			regionIDs[rand.Intn(len(regionIDs))],
		)
		if err != nil {
			return 0, err
		}
		nextID++
	}
	return toAdd, nil
}

func intColumn(ctx context.Context, pool *pgxpool.Pool, query string) ([]int, error) {
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []int{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
