//go:build ignore

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"mini-rules/internal/config"
	"mini-rules/internal/coupon"
	"mini-rules/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// seedPostgresCoupons creates COUPON_TABLE from the DB_* settings and fills
// it with the built-in coupons, for COUPON_SOURCE=postgres.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	pool, err := database.NewPool(ctx, cfg.Database, zerolog.New(os.Stderr))
	if err != nil {
		return err
	}
	defer pool.Close()

	table := pgx.Identifier(strings.Split(cfg.Coupon.Table, ".")).Sanitize()

	if _, err := pool.Exec(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			code     TEXT PRIMARY KEY,
			discount NUMERIC(5, 4) NOT NULL CHECK (discount > 0 AND discount < 1)
		)`, table)); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	for _, c := range coupon.GetCoupons() {
		if _, err := pool.Exec(ctx,
			fmt.Sprintf(`INSERT INTO %s (code, discount) VALUES ($1, $2::numeric)
				ON CONFLICT (code) DO UPDATE SET discount = EXCLUDED.discount`, table),
			c.Code, c.Discount.String(),
		); err != nil {
			return fmt.Errorf("failed to insert %s: %w", c.Code, err)
		}
		fmt.Printf("  - %s %s\n", c.Code, c.Discount.String())
	}

	fmt.Printf("Seeded %s in database %s\n", table, cfg.Database.Database)
	return nil
}
