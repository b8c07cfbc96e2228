package pixelfedimpl

import (
	"context"
	"fmt"
	"strconv"

	"github.com/orgball2608/pixelfed-scraper/internal/pixelfed"
)

func (p *PixelfedImpl) LookupAccount(ctx context.Context, handle string) (*pixelfed.Account, error) {
	if !p.HasToken() {
		return nil, pixelfed.ErrTokenRequired
	}

	var account pixelfed.Account
	found, err := p.fetchJSON(ctx, request{
		name:   "AccountLookup",
		path:   "/api/v1/accounts/lookup",
		params: map[string]string{"acct": handle},
		auth:   true,
	}, &account)
	if err != nil {
		return nil, fmt.Errorf("lookup account %s: %w", handle, err)
	}
	if !found || account.ID == "" {
		return nil, nil
	}
	return &account, nil
}

func (p *PixelfedImpl) SearchAccounts(ctx context.Context, query string, limit int) ([]pixelfed.Account, error) {
	if !p.HasToken() {
		return nil, pixelfed.ErrTokenRequired
	}

	var accounts []pixelfed.Account
	_, err := p.fetchJSON(ctx, request{
		name:   "AccountSearch",
		path:   "/api/v1/accounts/search",
		params: map[string]string{"q": query, "limit": strconv.Itoa(limit)},
		auth:   true,
	}, &accounts)
	if err != nil {
		return nil, fmt.Errorf("search accounts %s: %w", query, err)
	}
	return accounts, nil
}
