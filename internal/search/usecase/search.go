package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"search-srv/internal/model"
	"search-srv/internal/search"
	"search-srv/internal/search/repository"
)

// Search runs the full pipeline. The only errors that surface are store
// failures on the primary retrieval path; cache, correction, personalization
// and event publishing degrade without failing the request.
func (uc *implUsecase) Search(ctx context.Context, sc model.Scope, input search.SearchInput) (search.SearchOutput, error) {
	input.Term = normalizeTerm(input.Term)
	if len([]rune(input.Term)) < search.MinTermLength {
		return search.SearchOutput{Success: false, Message: search.MsgTermTooShort}, nil
	}
	input.Paginate.Adjust()

	key := cacheKey(sc, input)
	if out, ok := uc.fromCache(ctx, key); ok {
		return out, nil
	}

	opts := uc.candidateOptions(sc, input)
	cands, total, err := uc.fetchCandidates(ctx, opts)
	if err != nil {
		return search.SearchOutput{}, err
	}

	out := search.SearchOutput{Success: true, Message: "Success", TotalCount: total}

	if total == 0 {
		cands, total = uc.correct(ctx, opts, &out)
		out.TotalCount = total
	}

	products, err := uc.hydrate(ctx, sc, cands)
	if err != nil {
		return search.SearchOutput{}, err
	}

	if sc.UserID > 0 && input.Sort == search.SortRelevance {
		products = uc.personalize(ctx, sc.UserID, products)
	}
	out.Products = products

	uc.publishPerformed(ctx, sc, input.Term, out)
	uc.toCache(ctx, key, out)

	return out, nil
}

// fetchCandidates runs the page query and the count query concurrently.
func (uc *implUsecase) fetchCandidates(ctx context.Context, opts repository.SearchCandidatesOptions) ([]repository.Candidate, int64, error) {
	var (
		cands []repository.Candidate
		total int64
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		cands, err = uc.repo.SearchCandidates(egCtx, opts)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = uc.repo.CountCandidates(egCtx, opts)
		return err
	})
	if err := eg.Wait(); err != nil {
		uc.l.Errorf(ctx, "search.usecase.fetchCandidates: %v", err)
		return nil, 0, search.ErrSearchFailed
	}

	return cands, total, nil
}

// hydrate loads full product records and restores candidate order. Products
// that vanished between scoring and hydration are dropped silently.
func (uc *implUsecase) hydrate(ctx context.Context, sc model.Scope, cands []repository.Candidate) ([]model.Product, error) {
	if len(cands) == 0 {
		return []model.Product{}, nil
	}

	ids := make([]int64, len(cands))
	scores := make(map[int64]float64, len(cands))
	for i, c := range cands {
		ids[i] = c.ProductID
		scores[c.ProductID] = c.Score
	}

	loaded, err := uc.repo.GetProductsByIDs(ctx, repository.GetProductsOptions{IDs: ids, CallerID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "search.usecase.hydrate: %v", err)
		return nil, search.ErrHydrationFailed
	}

	byID := make(map[int64]model.Product, len(loaded))
	for _, p := range loaded {
		byID[p.ID] = p
	}

	products := make([]model.Product, 0, len(cands))
	for _, c := range cands {
		p, ok := byID[c.ProductID]
		if !ok {
			continue
		}
		p.RelevanceScore = scores[c.ProductID]
		products = append(products, p)
	}

	return products, nil
}

func (uc *implUsecase) fromCache(ctx context.Context, key string) (search.SearchOutput, bool) {
	if uc.cache == nil {
		return search.SearchOutput{}, false
	}

	data, err := uc.cache.GetSearchResults(ctx, key)
	if err != nil {
		return search.SearchOutput{}, false
	}

	var out search.SearchOutput
	if err := json.Unmarshal(data, &out); err != nil {
		uc.l.Warnf(ctx, "search.usecase.fromCache.Unmarshal: %v", err)
		return search.SearchOutput{}, false
	}
	out.CacheHit = true

	return out, true
}

func (uc *implUsecase) toCache(ctx context.Context, key string, out search.SearchOutput) {
	if uc.cache == nil {
		return
	}

	data, err := json.Marshal(out)
	if err != nil {
		uc.l.Warnf(ctx, "search.usecase.toCache.Marshal: %v", err)
		return
	}
	if err := uc.cache.SaveSearchResults(ctx, key, data, uc.cacheTTL); err != nil {
		uc.l.Warnf(ctx, "search.usecase.toCache.Save: %v", err)
	}
}

// publishPerformed emits the search event off the request path. A lost event
// costs one history row, never a response.
func (uc *implUsecase) publishPerformed(ctx context.Context, sc model.Scope, term string, out search.SearchOutput) {
	if uc.publisher == nil {
		return
	}

	event := search.SearchPerformedEvent{
		ID:         uuid.NewString(),
		UserID:     sc.UserID,
		DeviceID:   sc.DeviceID,
		Term:       term,
		TotalCount: out.TotalCount,
		SearchedAt: uc.clock().UTC(),
	}
	if out.AutoCorrection != nil {
		event.CorrectedTerm = out.AutoCorrection.To
	}

	bgCtx := context.WithoutCancel(ctx)
	go func() {
		if err := uc.publisher.PublishSearchPerformed(bgCtx, event); err != nil {
			uc.l.Warnf(bgCtx, "search.usecase.publishPerformed: %v", err)
		}
	}()
}

// equalTerm compares terms case-insensitively.
func equalTerm(a, b string) bool {
	return strings.EqualFold(a, b)
}
