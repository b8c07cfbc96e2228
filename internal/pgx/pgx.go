package pgx

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/pixelfed-scraper/internal/migrations"
	"github.com/orgball2608/pixelfed-scraper/pkg/config"
	"github.com/orgball2608/pixelfed-scraper/pkg/logger"
	"go.uber.org/fx"
)

const connectTimeout = 10 * time.Second

// Opts holds dependencies for creating a pgx pool.
type Opts struct {
	fx.In
	LC     fx.Lifecycle
	Logger logger.Logger
	Config *config.Config
}

// New creates a pgxpool.Pool with the schema migrated and closes it on stop.
// Run history is optional: it returns a nil pool when no database is
// configured or when the database cannot be reached or migrated.
func New(opts Opts) (*pgxpool.Pool, error) {
	log := opts.Logger.WithComponent("Postgres")
	if !opts.Config.PostgresEnabled() {
		log.Info("Postgres not configured, run history disabled")
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pgx, err := connect(ctx, opts.Config.GetDSN())
	if err != nil {
		log.Error("Postgres unavailable, run history disabled", "error", err)
		return nil, nil
	}
	log.Info("Connected to postgres")

	opts.LC.Append(
		fx.Hook{
			OnStop: func(ctx context.Context) error {
				pgx.Close()
				return nil
			},
		},
	)

	return pgx, nil
}

func connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pgx, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}
	if err := pgx.Ping(ctx); err != nil {
		pgx.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}
	if err := migrations.Up(ctx, dsn); err != nil {
		pgx.Close()
		return nil, err
	}
	return pgx, nil
}
