package ports

import "context"

// RateLimiter caps request rate per key (typically route + client address).
// Allow reports whether the current request may proceed. An infrastructure
// error fails open: the request is allowed and the error returned for logging.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
