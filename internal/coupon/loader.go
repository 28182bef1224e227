package coupon

import (
	"bufio"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"mini-rules/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// fileLoader implements Loader for reading gzipped coupon files.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based coupon loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "coupon-loader").Logger(),
	}
}

// Load reads a gzipped coupon file and returns a Table.
// The file holds one "CODE,DISCOUNT" pair per line; blank lines and lines
// starting with '#' are ignored.
func (l *fileLoader) Load(ctx context.Context, filePath string) (Table, error) {
	l.logger.Info().Str("file", filePath).Msg("loading coupon file")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open coupon file")
		return nil, fmt.Errorf("failed to open coupon file %s: %w", filePath, err)
	}
	defer file.Close()

	gzipReader, err := gzip.NewReader(file)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to create gzip reader")
		return nil, fmt.Errorf("failed to create gzip reader for %s: %w", filePath, err)
	}
	defer gzipReader.Close()

	table, err := readTable(ctx, gzipReader)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("error reading coupon file")
		return nil, fmt.Errorf("error reading coupon file %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("coupons_loaded", table.Size()).
		Msg("coupon file loaded successfully")

	return table, nil
}

// readTable parses "CODE,DISCOUNT" lines into a Table.
func readTable(ctx context.Context, r io.Reader) (Table, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var coupons []model.Coupon
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo%10_000 == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		c, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		coupons = append(coupons, c)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return NewTable(coupons...)
}

func parseLine(line string) (model.Coupon, error) {
	code, rawDiscount, found := strings.Cut(line, ",")
	if !found {
		return model.Coupon{}, fmt.Errorf("expected CODE,DISCOUNT but got %q", line)
	}

	discount, err := decimal.NewFromString(strings.TrimSpace(rawDiscount))
	if err != nil {
		return model.Coupon{}, fmt.Errorf("invalid discount %q: %w", rawDiscount, err)
	}

	return model.Coupon{
		Code:     strings.TrimSpace(code),
		Discount: discount,
	}, nil
}

// LoadTable loads every source in order with loader and merges the results.
// Codes from later sources override earlier ones. With no sources the
// built-in table is returned.
func LoadTable(ctx context.Context, loader Loader, sources []string, logger zerolog.Logger) (Table, error) {
	logger = logger.With().Str("component", "coupon-table").Logger()

	if len(sources) == 0 {
		logger.Info().Msg("no coupon sources configured, using built-in coupons")
		return DefaultTable(), nil
	}

	tables := make([]Table, 0, len(sources))
	for _, source := range sources {
		t, err := loader.Load(ctx, source)
		if err != nil {
			logger.Error().Err(err).Str("source", source).Msg("failed to load coupon source")
			return nil, fmt.Errorf("failed to load coupon source %s: %w", source, err)
		}
		tables = append(tables, t)
	}

	table := Merge(tables...)

	logger.Info().
		Int("source_count", len(sources)).
		Int("total_coupons", table.Size()).
		Msg("coupon table loaded")

	return table, nil
}
