package run

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/pixelfed-scraper/internal/domain"
	"github.com/orgball2608/pixelfed-scraper/internal/repositories"
	"github.com/orgball2608/pixelfed-scraper/pkg/logger"
)

const table = "scrape_runs"

type Pgx struct {
	pg     *pgxpool.Pool
	logger logger.Logger
}

func NewPgx(pg *pgxpool.Pool, logger logger.Logger) *Pgx {
	return &Pgx{
		pg:     pg,
		logger: logger.WithComponent("RunRepo"),
	}
}

var _ Repository = (*Pgx)(nil)

// Create records a finished run
func (p *Pgx) Create(ctx context.Context, run domain.Run) error {
	query, args, err := repositories.SqBuilder.
		Insert(table).
		Columns("id", "instance", "username", "account_id", "method", "total_posts", "total_images",
			"output_path", "started_at", "duration_ms", "error").
		Values(run.ID, run.Instance, run.Username, run.AccountID, run.Method, run.TotalPosts, run.TotalImages,
			run.OutputPath, run.StartedAt, run.Duration.Milliseconds(), run.Error).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	_, err = p.pg.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetLatestByUsername returns the most recent runs for a username, newest first
func (p *Pgx) GetLatestByUsername(ctx context.Context, username string, count int) ([]*domain.Run, error) {
	query, args, err := repositories.SqBuilder.
		Select("id", "instance", "username", "account_id", "method", "total_posts", "total_images",
			"output_path", "started_at", "duration_ms", "error").
		From(table).
		Where(sq.Eq{"username": username}).
		OrderBy("started_at DESC").
		Limit(uint64(count)).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := p.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*domain.Run
	for rows.Next() {
		var (
			run        domain.Run
			durationMs int64
		)
		if err := rows.Scan(&run.ID, &run.Instance, &run.Username, &run.AccountID, &run.Method,
			&run.TotalPosts, &run.TotalImages, &run.OutputPath, &run.StartedAt, &durationMs, &run.Error); err != nil {
			return nil, err
		}
		run.Duration = time.Duration(durationMs) * time.Millisecond
		runs = append(runs, &run)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return runs, nil
}

// CleanupOldRecords deletes runs started before now minus olderThan
func (p *Pgx) CleanupOldRecords(ctx context.Context, olderThan time.Duration) (int64, error) {
	query, args, err := repositories.SqBuilder.
		Delete(table).
		Where(sq.Lt{"started_at": time.Now().Add(-olderThan)}).
		ToSql()
	if err != nil {
		return 0, repositories.ErrBadQuery
	}

	result, err := p.pg.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}
