package usecase

import (
	"context"

	"search-srv/internal/search"
	"search-srv/internal/search/repository"
)

// correctionThreshold is the minimum trigram similarity between the term
// and a known product name for a correction to be offered.
const correctionThreshold = 0.3

// correct runs the one-shot spelling correction after an empty primary
// result. When the corrected term finds matches the search is retried with
// it and the applied correction is recorded; when it finds nothing the
// corrected term is surfaced as a suggestion only. The correction never
// recurses.
func (uc *implUsecase) correct(ctx context.Context, opts repository.SearchCandidatesOptions,
	out *search.SearchOutput) ([]repository.Candidate, int64) {
	corrected, err := uc.repo.ClosestProductName(ctx, opts.Term, correctionThreshold)
	if err != nil {
		uc.l.Warnf(ctx, "search.usecase.correct.ClosestProductName: %v", err)
		return nil, 0
	}
	if corrected == "" || equalTerm(corrected, opts.Term) {
		return nil, 0
	}

	retryOpts := opts
	retryOpts.Term = corrected

	cands, total, err := uc.fetchCandidates(ctx, retryOpts)
	if err != nil {
		uc.l.Warnf(ctx, "search.usecase.correct.fetchCandidates: %v", err)
		return nil, 0
	}
	if total == 0 {
		out.DidYouMean = corrected
		return nil, 0
	}

	out.AutoCorrection = &search.AutoCorrection{From: opts.Term, To: corrected}
	return cands, total
}
