package search

import (
	"context"

	"search-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Search runs the full pipeline: validate, cache lookup, score,
	// one-shot spelling correction, rank, hydrate, personalize, cache store.
	Search(ctx context.Context, sc model.Scope, input SearchInput) (SearchOutput, error)

	// Suggest runs the four autocomplete channels concurrently.
	Suggest(ctx context.Context, sc model.Scope, input SuggestInput) (SuggestOutput, error)

	// Expand maps the term through the tag graph to alternate query terms.
	Expand(ctx context.Context, input ExpandInput) (ExpandOutput, error)

	// RecordSearch persists one consumed search event (history + popular roll).
	RecordSearch(ctx context.Context, event SearchPerformedEvent) error
}

// EventPublisher publishes search events to the event stream. Publishing is
// best effort; the search path never fails on publisher errors.
//
//go:generate mockery --name EventPublisher
type EventPublisher interface {
	PublishSearchPerformed(ctx context.Context, event SearchPerformedEvent) error
}
