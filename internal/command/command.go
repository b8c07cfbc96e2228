package command

import "context"

type Client interface {
	// HandleCommand listens for bot commands until ctx is done or the
	// update channel closes.
	HandleCommand(ctx context.Context) error
}
