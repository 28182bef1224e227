package coupon

import (
	"context"
	"fmt"
	"strings"

	"mini-rules/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Querier is the subset of a pgx pool used to read coupon rows.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// postgresLoader implements Loader for coupon tables stored in PostgreSQL.
// The source is the name of a table (optionally schema-qualified) with
// columns code and discount.
type postgresLoader struct {
	db     Querier
	logger zerolog.Logger
}

// NewPostgresLoader creates a coupon loader that reads from PostgreSQL.
func NewPostgresLoader(db Querier, logger zerolog.Logger) Loader {
	return &postgresLoader{
		db:     db,
		logger: logger.With().Str("component", "postgres-coupon-loader").Logger(),
	}
}

// Load reads every row from the named table.
func (l *postgresLoader) Load(ctx context.Context, tableName string) (Table, error) {
	if tableName == "" {
		return nil, fmt.Errorf("coupon table name is required")
	}

	ident := pgx.Identifier(strings.Split(tableName, "."))
	query := fmt.Sprintf(`SELECT code, discount::text FROM %s ORDER BY code`, ident.Sanitize())

	rows, err := l.db.Query(ctx, query)
	if err != nil {
		l.logger.Error().Err(err).Str("table", tableName).Msg("failed to query coupons")
		return nil, fmt.Errorf("failed to query coupons from %s: %w", tableName, err)
	}

	coupons, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Coupon, error) {
		var code, rawDiscount string
		if err := row.Scan(&code, &rawDiscount); err != nil {
			return model.Coupon{}, err
		}
		discount, err := decimal.NewFromString(rawDiscount)
		if err != nil {
			return model.Coupon{}, fmt.Errorf("coupon %s: invalid discount %q: %w", code, rawDiscount, err)
		}
		return model.Coupon{Code: code, Discount: discount}, nil
	})
	if err != nil {
		l.logger.Error().Err(err).Str("table", tableName).Msg("failed to scan coupons")
		return nil, fmt.Errorf("failed to scan coupons from %s: %w", tableName, err)
	}

	table, err := NewTable(coupons...)
	if err != nil {
		return nil, fmt.Errorf("coupon table %s: %w", tableName, err)
	}

	l.logger.Info().
		Str("table", tableName).
		Int("coupons_loaded", table.Size()).
		Msg("coupon table loaded from postgres")

	return table, nil
}
