package pixelfedimpl

import (
	"bytes"
	"context"
	"fmt"
	"net/url"

	"github.com/orgball2608/pixelfed-scraper/internal/pixelfed"
)

func (p *PixelfedImpl) Feed(ctx context.Context, handle string) ([]pixelfed.FeedEntry, error) {
	body, err := p.fetch(ctx, request{
		name:    "AtomFeed",
		path:    fmt.Sprintf("/users/%s.atom", url.PathEscape(handle)),
		accept:  acceptAtom,
		timeout: p.config.Scraper.FeedTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("atom feed of %s: %w", handle, err)
	}
	if len(body) == 0 {
		return nil, nil
	}

	entries, err := pixelfed.ParseFeed(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("atom feed of %s: %w", handle, err)
	}
	return entries, nil
}
