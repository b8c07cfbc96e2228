package fetcher

import (
	"context"
	"fmt"

	"github.com/orgball2608/pixelfed-scraper/internal/domain"
	"github.com/orgball2608/pixelfed-scraper/internal/pixelfed"
	"github.com/orgball2608/pixelfed-scraper/pkg/logger"
)

// Strategies returns the fallback chain for one account, richest source
// first. accountID may be empty, in which case both API strategies skip.
func Strategies(client pixelfed.Client, log logger.Logger, handle, accountID string) []Strategy {
	return []Strategy{
		{Name: MethodAPI, Fetch: apiStrategy(client, log, accountID, true)},
		{Name: MethodAPIPublic, Fetch: apiStrategy(client, log, accountID, false)},
		{Name: MethodAtomFeed, Fetch: feedStrategy(client, log, handle)},
		{Name: MethodWebScraping, Fetch: webStrategy(client, log, handle)},
	}
}

func apiStrategy(client pixelfed.Client, log logger.Logger, accountID string, auth bool) FetchFunc {
	return func(ctx context.Context) ([]domain.Post, error) {
		if auth && !client.HasToken() {
			return nil, fmt.Errorf("%w: no access token", ErrSkipped)
		}
		if accountID == "" {
			return nil, fmt.Errorf("%w: account id unknown", ErrSkipped)
		}
		return Paginate(ctx, client, log, accountID, auth)
	}
}

// Paginate walks the statuses timeline with max_id cursors. It stops on an
// empty page or on a page shorter than the batch size. Pages retrieved
// before a failing page are kept.
func Paginate(ctx context.Context, client pixelfed.Client, log logger.Logger, accountID string, auth bool) ([]domain.Post, error) {
	batch := client.BatchSize()
	posts := []domain.Post{}
	maxID := ""

	for page := 1; ; page++ {
		statuses, err := client.AccountStatuses(ctx, accountID, maxID, auth)
		if err != nil {
			if page == 1 {
				return nil, err
			}
			log.Warn("Page failed, keeping earlier pages", "page", page, "error", err)
			return posts, nil
		}
		if len(statuses) == 0 {
			break
		}

		posts = append(posts, pixelfed.Posts(statuses)...)
		log.Info("Fetched page", "page", page, "count", len(statuses), "total", len(posts))

		if len(statuses) < batch {
			break
		}

		next := string(statuses[len(statuses)-1].ID)
		if next == "" || next == maxID {
			log.Warn("Cursor did not advance, stopping pagination", "page", page, "max_id", maxID)
			break
		}
		maxID = next
	}

	return posts, nil
}

func feedStrategy(client pixelfed.Client, log logger.Logger, handle string) FetchFunc {
	return func(ctx context.Context) ([]domain.Post, error) {
		entries, err := client.Feed(ctx, handle)
		if err != nil {
			return nil, err
		}
		log.Info("Found entries in feed", "count", len(entries))

		posts := []domain.Post{}
		for _, e := range entries {
			post := e.ToPost()
			if !post.HasImage() {
				continue
			}
			posts = append(posts, post)
		}
		log.Info("Extracted posts with media", "count", len(posts))
		return posts, nil
	}
}

func webStrategy(client pixelfed.Client, log logger.Logger, handle string) FetchFunc {
	return func(ctx context.Context) ([]domain.Post, error) {
		page, err := client.ProfilePage(ctx, handle)
		if err != nil {
			return nil, err
		}
		if page == nil {
			return nil, nil
		}

		posts := page.ToPosts()
		log.Info("Scraped profile page", "images", len(posts), "post_ids", len(page.PostIDs()))
		return posts, nil
	}
}
