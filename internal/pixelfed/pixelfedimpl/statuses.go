package pixelfedimpl

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/orgball2608/pixelfed-scraper/internal/pixelfed"
)

func (p *PixelfedImpl) AccountStatuses(ctx context.Context, accountID, maxID string, auth bool) ([]pixelfed.Status, error) {
	params := map[string]string{
		"limit":           strconv.Itoa(p.BatchSize()),
		"only_media":      "true",
		"exclude_replies": "true",
		"exclude_reblogs": "true",
	}
	if maxID != "" {
		params["max_id"] = maxID
	}

	var statuses []pixelfed.Status
	_, err := p.fetchJSON(ctx, request{
		name:   "AccountStatuses",
		path:   fmt.Sprintf("/api/v1/accounts/%s/statuses", url.PathEscape(accountID)),
		params: params,
		auth:   auth,
	}, &statuses)
	if err != nil {
		return nil, fmt.Errorf("statuses of %s (max_id=%q): %w", accountID, maxID, err)
	}
	return statuses, nil
}
