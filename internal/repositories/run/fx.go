package run

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/pixelfed-scraper/pkg/logger"
	"go.uber.org/fx"
)

var Module = fx.Module("run_repository",
	fx.Provide(
		func(pool *pgxpool.Pool, log logger.Logger) Repository {
			if pool == nil {
				return Nop{}
			}
			return NewPgx(pool, log)
		},
	),
)
