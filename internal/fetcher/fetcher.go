// Package fetcher retrieves an account's posts by trying a list of named
// strategies in order until one of them yields something.
package fetcher

import (
	"context"
	"errors"
	"fmt"

	"github.com/orgball2608/pixelfed-scraper/internal/domain"
	"github.com/orgball2608/pixelfed-scraper/pkg/logger"
)

// Strategy labels, also written to the output metadata.
const (
	MethodAPI         = "api"
	MethodAPIPublic   = "api_public"
	MethodAtomFeed    = "atom_feed"
	MethodWebScraping = "web_scraping"
)

// ErrSkipped is returned by a strategy whose prerequisites are missing.
var ErrSkipped = errors.New("strategy skipped")

type FetchFunc func(ctx context.Context) ([]domain.Post, error)

type Strategy struct {
	Name  string
	Fetch FetchFunc
}

type Result struct {
	Posts  []domain.Post
	Method string
}

// Run invokes strategies in order and returns the first non-empty,
// error-free result. Failures never escape: when nothing yields, the result
// is empty and labelled domain.MethodNone.
func Run(ctx context.Context, log logger.Logger, strategies []Strategy) Result {
	for _, s := range strategies {
		if ctx.Err() != nil {
			log.Warn("Context done, not trying further strategies", "error", ctx.Err())
			break
		}

		log.Info("Trying strategy", "method", s.Name)
		posts, err := safeFetch(ctx, s)
		switch {
		case errors.Is(err, ErrSkipped):
			log.Info("Strategy skipped", "method", s.Name, "reason", err)
			continue
		case err != nil:
			log.Warn("Strategy failed", "method", s.Name, "error", err)
			continue
		case len(posts) == 0:
			log.Info("Strategy returned no posts", "method", s.Name)
			continue
		}

		log.Info("Strategy succeeded", "method", s.Name, "posts", len(posts))
		return Result{Posts: posts, Method: s.Name}
	}

	return Result{Posts: []domain.Post{}, Method: domain.MethodNone}
}

func safeFetch(ctx context.Context, s Strategy) (posts []domain.Post, err error) {
	defer func() {
		if r := recover(); r != nil {
			posts, err = nil, fmt.Errorf("panic in strategy %s: %v", s.Name, r)
		}
	}()
	return s.Fetch(ctx)
}
