package usecase

import (
	"time"

	"search-srv/config"
	"search-srv/internal/search"
	"search-srv/internal/search/repository"
	"search-srv/pkg/log"
)

type implUsecase struct {
	l         log.Logger
	repo      repository.CatalogRepository
	cache     repository.CacheRepository
	publisher search.EventPublisher

	weights    search.Weights
	thresholds search.Thresholds
	cacheTTL   time.Duration

	clock func() time.Time
}

var _ search.UseCase = &implUsecase{}

// New - Factory. cache and publisher may be nil; the consumer binary runs
// without either and the search path degrades gracefully when they are
// absent.
func New(l log.Logger, repo repository.CatalogRepository, cache repository.CacheRepository,
	publisher search.EventPublisher, cfg config.SearchConfig) search.UseCase {
	return &implUsecase{
		l:         l,
		repo:      repo,
		cache:     cache,
		publisher: publisher,
		weights: search.Weights{
			Lexical:   cfg.LexicalWeight,
			NameSim:   cfg.NameSimWeight,
			PrefixSim: cfg.PrefixSimWeight,
			Phonetic:  cfg.PhoneticWeight,
			BrandSim:  cfg.BrandSimWeight,
			Click:     cfg.ClickWeight,
			View:      cfg.ViewWeight,
			Rating:    cfg.RatingWeight,
		},
		thresholds: search.Thresholds{
			NameSim: cfg.NameSimThreshold,
			Prefix:  cfg.PrefixThreshold,
			Brand:   cfg.BrandThreshold,
		},
		cacheTTL: time.Duration(cfg.CacheTTLSeconds) * time.Second,
		clock:    time.Now,
	}
}
