package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/mcgregorb/olympics-dashboard/internal/platform/logging"
)

// provider is one source in a category's fallback chain. A category's
// providers are ordered best first, with a static seed last so the chain
// cannot come back empty-handed.
type provider[T any] struct {
	// name labels the source in the snapshot's provenance map, for
	// example "live", "derived" or "static".
	name  string
	fetch func(ctx context.Context) (T, error)

	// accept is the category's quality bar. A fetched value that fails it
	// is discarded as if the fetch had failed. Nil accepts everything.
	accept func(T) error
}

type chain[T any] struct {
	category  string
	timeout   time.Duration
	logger    *logging.Logger
	providers []provider[T]
}

// resolveChain tries each provider once, in order, and returns the first
// accepted value along with the winning provider's name. There are no
// retries: a hung or broken source costs one timeout and the category moves
// on to the next provider.
func resolveChain[T any](ctx context.Context, c chain[T]) (T, string, error) {
	var zero T
	for _, p := range c.providers {
		value, err := fetchWithTimeout(ctx, c.timeout, p.fetch)
		if err != nil {
			c.logger.WarnContext(ctx, "provider failed",
				"category", c.category, "provider", p.name, "error", err)
			continue
		}
		if p.accept != nil {
			if err := p.accept(value); err != nil {
				c.logger.WarnContext(ctx, "provider result rejected",
					"category", c.category, "provider", p.name, "reason", err)
				continue
			}
		}
		c.logger.DebugContext(ctx, "category resolved",
			"category", c.category, "provider", p.name)
		return value, p.name, nil
	}
	return zero, "", fmt.Errorf("%w: category %s", ErrAllProvidersFailed, c.category)
}

func fetchWithTimeout[T any](ctx context.Context, timeout time.Duration, fetch func(ctx context.Context) (T, error)) (T, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return fetch(ctx)
}
