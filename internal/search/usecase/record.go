package usecase

import (
	"context"

	"search-srv/internal/search"
	"search-srv/internal/search/repository"
)

// RecordSearch persists one consumed search event. The history keeps the
// term as typed; what the pipeline corrected it to stays in the event.
func (uc *implUsecase) RecordSearch(ctx context.Context, event search.SearchPerformedEvent) error {
	if event.ID == "" || event.Term == "" || event.SearchedAt.IsZero() {
		return search.ErrInvalidEvent
	}

	return uc.repo.RecordSearch(ctx, repository.RecordSearchOptions{
		ID:         event.ID,
		UserID:     event.UserID,
		DeviceID:   event.DeviceID,
		Term:       event.Term,
		TotalCount: event.TotalCount,
		SearchedAt: event.SearchedAt,
	})
}
