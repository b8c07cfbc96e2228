package fetcher

import (
	"context"
	"strings"

	"github.com/orgball2608/pixelfed-scraper/internal/pixelfed"
	"github.com/orgball2608/pixelfed-scraper/pkg/logger"
)

const searchLimit = 5

// ResolveAccountID finds the numeric id behind handle: exact lookup and
// search when a token is available, then the profile page. It returns ""
// when every method fails.
func ResolveAccountID(ctx context.Context, client pixelfed.Client, log logger.Logger, handle string) string {
	log.Info("Looking up account id", "username", handle)

	if client.HasToken() {
		account, err := client.LookupAccount(ctx, handle)
		switch {
		case err != nil:
			log.Warn("API lookup failed", "error", err)
		case account != nil && account.ID != "":
			log.Info("Found account via API lookup", "account_id", account.ID)
			return string(account.ID)
		}

		accounts, err := client.SearchAccounts(ctx, handle, searchLimit)
		if err != nil {
			log.Warn("API search failed", "error", err)
		}
		for _, acc := range accounts {
			if acc.ID != "" && strings.EqualFold(acc.Username, handle) {
				log.Info("Found account via API search", "account_id", acc.ID)
				return string(acc.ID)
			}
		}
	}

	page, err := client.ProfilePage(ctx, handle)
	if err != nil {
		log.Warn("Profile page scraping failed", "error", err)
	} else if page != nil {
		if id, ok := page.AccountID(); ok {
			log.Info("Found account via profile scraping", "account_id", id)
			return id
		}
	}

	log.Warn("Could not find account id", "username", handle)
	return ""
}
