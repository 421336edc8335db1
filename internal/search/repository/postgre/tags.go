package postgre

import (
	"context"
	"strings"

	"github.com/lib/pq"

	"search-srv/internal/model"
	"search-srv/internal/search/repository"
)

// A word matches a tag when the tag name contains it, so "phone" reaches
// both "smartphones" and "Phones & Tablets".
const tagsMatchingWordsQuery = `
SELECT t.id, t.name
FROM tags t
WHERE lower(t.name) LIKE ANY($1)
ORDER BY t.id ASC
LIMIT $2`

const categoryIDsForTagsQuery = `
SELECT DISTINCT ct.category_id
FROM category_tags ct
WHERE ct.tag_id = ANY($1)
ORDER BY ct.category_id ASC`

// Sibling tags share a category with the matched tags but are not
// themselves matched.
const siblingTagsQuery = `
SELECT DISTINCT t.id, t.name
FROM tags t
JOIN category_tags ct ON ct.tag_id = t.id
WHERE ct.category_id = ANY($1)
  AND NOT (t.id = ANY($2))
ORDER BY t.id ASC
LIMIT $3`

// containsPatterns wraps each word into a case-folded LIKE contains pattern.
func containsPatterns(words []string) []string {
	patterns := make([]string, len(words))
	for i, w := range words {
		patterns[i] = "%" + strings.ToLower(w) + "%"
	}
	return patterns
}

func (r *implRepository) TagsMatchingWords(ctx context.Context, words []string, limit int) ([]model.Tag, error) {
	if len(words) == 0 {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, tagsMatchingWordsQuery, pq.Array(containsPatterns(words)), limit)
	if err != nil {
		r.l.Errorf(ctx, "search.postgre.TagsMatchingWords.Query: %v", err)
		return nil, repository.ErrFailedToGet
	}
	defer rows.Close()

	tags, err := scanTags(rows)
	if err != nil {
		r.l.Errorf(ctx, "search.postgre.TagsMatchingWords.Scan: %v", err)
		return nil, repository.ErrFailedToGet
	}
	return tags, nil
}

func (r *implRepository) CategoryIDsForTags(ctx context.Context, tagIDs []int64) ([]int64, error) {
	if len(tagIDs) == 0 {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, categoryIDsForTagsQuery, pq.Array(tagIDs))
	if err != nil {
		r.l.Errorf(ctx, "search.postgre.CategoryIDsForTags.Query: %v", err)
		return nil, repository.ErrFailedToGet
	}
	defer rows.Close()

	ids, err := scanIDs(rows)
	if err != nil {
		r.l.Errorf(ctx, "search.postgre.CategoryIDsForTags.Scan: %v", err)
		return nil, repository.ErrFailedToGet
	}
	return ids, nil
}

func (r *implRepository) SiblingTags(ctx context.Context, categoryIDs, excludeTagIDs []int64, limit int) ([]model.Tag, error) {
	if len(categoryIDs) == 0 {
		return nil, nil
	}
	if excludeTagIDs == nil {
		excludeTagIDs = []int64{}
	}

	rows, err := r.db.QueryContext(ctx, siblingTagsQuery, pq.Array(categoryIDs), pq.Array(excludeTagIDs), limit)
	if err != nil {
		r.l.Errorf(ctx, "search.postgre.SiblingTags.Query: %v", err)
		return nil, repository.ErrFailedToGet
	}
	defer rows.Close()

	tags, err := scanTags(rows)
	if err != nil {
		r.l.Errorf(ctx, "search.postgre.SiblingTags.Scan: %v", err)
		return nil, repository.ErrFailedToGet
	}
	return tags, nil
}
