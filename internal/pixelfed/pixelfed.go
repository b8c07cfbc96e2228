package pixelfed

import (
	"context"
	"errors"
)

var ErrTokenRequired = errors.New("access token required")

//go:generate go run go.uber.org/mock/mockgen -source=pixelfed.go -destination=mocks/mock.go

// Client talks to one Pixelfed instance. Methods return (nil, nil) when
// the server answered successfully with an empty body.
type Client interface {
	// LookupAccount resolves an exact handle. Authenticated.
	LookupAccount(ctx context.Context, handle string) (*Account, error)
	// SearchAccounts runs a fuzzy account search. Authenticated.
	SearchAccounts(ctx context.Context, query string, limit int) ([]Account, error)
	// AccountStatuses fetches one page of media statuses older than maxID.
	// auth selects whether the access token is sent.
	AccountStatuses(ctx context.Context, accountID, maxID string, auth bool) ([]Status, error)
	// Feed downloads and parses the account's Atom feed.
	Feed(ctx context.Context, handle string) ([]FeedEntry, error)
	// ProfilePage downloads the public profile HTML.
	ProfilePage(ctx context.Context, handle string) (*ProfilePage, error)

	HasToken() bool
	BatchSize() int
}
