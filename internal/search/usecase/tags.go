package usecase

import (
	"context"
	"strings"

	"search-srv/internal/search"
)

// Expand maps the term through the tag graph: term words to matched tags,
// matched tags to their categories, categories back to sibling tags. The
// sibling tag names become alternate query terms.
func (uc *implUsecase) Expand(ctx context.Context, input search.ExpandInput) (search.ExpandOutput, error) {
	term := normalizeTerm(input.Term)
	if len([]rune(term)) < search.MinTermLength {
		return search.ExpandOutput{}, nil
	}

	words := termWords(term, search.MinTagWordLength)
	if len(words) == 0 {
		return search.ExpandOutput{}, nil
	}

	matched, err := uc.repo.TagsMatchingWords(ctx, words, search.MaxMatchedTags)
	if err != nil {
		uc.l.Warnf(ctx, "search.usecase.Expand.TagsMatchingWords: %v", err)
		return search.ExpandOutput{}, nil
	}
	if len(matched) == 0 {
		return search.ExpandOutput{}, nil
	}

	tagIDs := make([]int64, len(matched))
	for i, t := range matched {
		tagIDs[i] = t.ID
	}

	categoryIDs, err := uc.repo.CategoryIDsForTags(ctx, tagIDs)
	if err != nil {
		uc.l.Warnf(ctx, "search.usecase.Expand.CategoryIDsForTags: %v", err)
		return search.ExpandOutput{}, nil
	}
	if len(categoryIDs) == 0 {
		return search.ExpandOutput{}, nil
	}

	siblings, err := uc.repo.SiblingTags(ctx, categoryIDs, tagIDs, search.MaxSiblingTags)
	if err != nil {
		uc.l.Warnf(ctx, "search.usecase.Expand.SiblingTags: %v", err)
		return search.ExpandOutput{}, nil
	}

	// Sibling names that merely repeat a term word add nothing.
	wordSet := make(map[string]struct{}, len(words))
	for _, w := range words {
		wordSet[w] = struct{}{}
	}

	var terms []string
	seen := make(map[string]struct{})
	for _, t := range siblings {
		name := strings.ToLower(t.Name)
		if _, ok := wordSet[name]; ok {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		terms = append(terms, t.Name)
		if len(terms) == search.MaxExpansionTerms {
			break
		}
	}

	return search.ExpandOutput{Terms: terms}, nil
}
