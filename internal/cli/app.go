package cli

import (
	"context"
	"fmt"

	"mini-rules/internal/capability"
	"mini-rules/internal/config"
	"mini-rules/internal/coupon"
	"mini-rules/internal/database"
	"mini-rules/internal/eligibility"
	"mini-rules/internal/notify"
	"mini-rules/internal/policy"
	"mini-rules/internal/security"
	"mini-rules/internal/service"

	"github.com/rs/zerolog"
)

// App holds the components a command runs against.
type App struct {
	Logger      zerolog.Logger
	Clock       capability.Clock
	Coupons     coupon.Table
	Calculator  coupon.DiscountCalculator
	Eligibility eligibility.Table
	Hours       policy.OpeningHours
	Seasonal    policy.SeasonalDiscount
	Accounts    service.AccountService
}

// NewApp wires every component from cfg. Coupon and eligibility tables are
// read once here and never reloaded.
func NewApp(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*App, error) {
	coupons, err := loadCoupons(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	ages := eligibility.DefaultTable()
	if cfg.Eligibility.File != "" {
		ages, err = eligibility.LoadFile(cfg.Eligibility.File)
		if err != nil {
			return nil, fmt.Errorf("failed to load eligibility table: %w", err)
		}
		logger.Info().
			Str("file", cfg.Eligibility.File).
			Int("jurisdictions", len(ages)).
			Msg("eligibility table loaded")
	}

	notifier, err := notify.New(cfg.Email, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialise notifier: %w", err)
	}

	return &App{
		Logger:      logger,
		Clock:       capability.SystemClock{},
		Coupons:     coupons,
		Calculator:  coupon.NewCalculator(coupons, logger),
		Eligibility: ages,
		Hours: policy.OpeningHours{
			Open:  cfg.Store.OpenHour,
			Close: cfg.Store.CloseHour,
		},
		Seasonal: cfg.Store.Seasonal(),
		Accounts: service.NewAccountService(notifier, security.NewCodeGenerator(), logger),
	}, nil
}

func loadCoupons(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (coupon.Table, error) {
	switch cfg.Coupon.Source {
	case config.CouponSourceFile, config.CouponSourceS3:
		var remote coupon.Loader
		if cfg.S3.Enabled {
			s3Loader, err := coupon.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
			if err != nil {
				logger.Warn().
					Err(err).
					Msg("failed to initialise S3 loader, falling back to local file system only")
			} else {
				remote = s3Loader
			}
		}
		loader := coupon.NewFallbackLoader(remote, coupon.NewFileLoader(logger), cfg.S3.Prefix, logger)
		return coupon.LoadTable(ctx, loader, cfg.Coupon.Files, logger)

	case config.CouponSourcePostgres:
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialise database: %w", err)
		}
		defer pool.Close()
		return coupon.LoadTable(ctx, coupon.NewPostgresLoader(pool, logger), []string{cfg.Coupon.Table}, logger)

	default:
		return coupon.DefaultTable(), nil
	}
}
