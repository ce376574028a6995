package usecase

import "errors"

var (
	// ErrAssembly means the final snapshot failed validation. This is the
	// only failure that aborts an update pass; everything upstream degrades
	// through fallbacks instead.
	ErrAssembly = errors.New("snapshot assembly failed")

	// ErrEmptyDerivation means a derived category had no winner data to
	// work from and its provider should fall through to the next source.
	ErrEmptyDerivation = errors.New("no winner data to derive from")

	// ErrAllProvidersFailed means every provider in a category's chain was
	// exhausted, including the static seed.
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoSessions means neither the scrape nor the static calendar had
	// sessions for the requested day window.
	ErrNoSessions = errors.New("no sessions in the requested window")
)
