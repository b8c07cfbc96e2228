package pixelfedimpl

import (
	"context"
	"fmt"
	"net/url"

	"github.com/orgball2608/pixelfed-scraper/internal/pixelfed"
)

func (p *PixelfedImpl) ProfilePage(ctx context.Context, handle string) (*pixelfed.ProfilePage, error) {
	body, err := p.fetch(ctx, request{
		name:    "ProfilePage",
		path:    "/" + url.PathEscape(handle),
		accept:  acceptHTML,
		timeout: p.config.Scraper.APITimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("profile page of %s: %w", handle, err)
	}
	if len(body) == 0 {
		return nil, nil
	}
	return pixelfed.ParseProfilePage(p.config.Pixelfed.Instance, body)
}
