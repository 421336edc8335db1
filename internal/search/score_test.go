package search

import (
	"math"
	"testing"
)

func TestScore(t *testing.T) {
	w := DefaultWeights()

	t.Run("zero signals score zero", func(t *testing.T) {
		if got := w.Score(Signals{}); got != 0 {
			t.Errorf("expected 0, got %f", got)
		}
	})

	t.Run("lexical match dominates name similarity", func(t *testing.T) {
		lexical := w.Score(Signals{LexicalRank: 0.5})
		fuzzy := w.Score(Signals{NameSimilarity: 0.5})
		if lexical <= fuzzy {
			t.Errorf("lexical %f should outrank name similarity %f", lexical, fuzzy)
		}
	})

	t.Run("phonetic adds fixed weight", func(t *testing.T) {
		base := w.Score(Signals{NameSimilarity: 0.4})
		phonetic := w.Score(Signals{NameSimilarity: 0.4, PhoneticMatch: true})
		if diff := phonetic - base; math.Abs(diff-w.Phonetic) > 1e-9 {
			t.Errorf("phonetic delta = %f, want %f", diff, w.Phonetic)
		}
	})

	t.Run("review count dampened logarithmically", func(t *testing.T) {
		one := w.Score(Signals{AvgRating: 5, ReviewCount: 1})
		many := w.Score(Signals{AvgRating: 4.5, ReviewCount: 200})
		if one >= many {
			t.Errorf("one five-star review (%f) should not outrank 200 reviews at 4.5 (%f)", one, many)
		}
	})

	t.Run("clicks outweigh views per unit", func(t *testing.T) {
		clicks := w.Score(Signals{Clicks30d: 100})
		views := w.Score(Signals{Views30d: 100})
		if clicks <= views {
			t.Errorf("clicks %f should outweigh views %f", clicks, views)
		}
	})

	t.Run("more of any signal never lowers the score", func(t *testing.T) {
		base := Signals{
			LexicalRank:      0.2,
			NameSimilarity:   0.3,
			PrefixSimilarity: 0.1,
			BrandSimilarity:  0.2,
			Clicks30d:        10,
			Views30d:         50,
			AvgRating:        3.5,
			ReviewCount:      12,
		}
		baseScore := w.Score(base)

		bumped := base
		bumped.LexicalRank += 0.1
		if w.Score(bumped) <= baseScore {
			t.Error("raising lexical rank lowered the score")
		}

		bumped = base
		bumped.Clicks30d += 100
		if w.Score(bumped) <= baseScore {
			t.Error("raising clicks lowered the score")
		}

		bumped = base
		bumped.ReviewCount += 50
		if w.Score(bumped) <= baseScore {
			t.Error("raising review count lowered the score")
		}
	})

	t.Run("score never negative", func(t *testing.T) {
		neg := Weights{Lexical: -10}
		if got := neg.Score(Signals{LexicalRank: 1}); got != 0 {
			t.Errorf("expected clamp to 0, got %f", got)
		}
	})
}

func TestParseSortMode(t *testing.T) {
	cases := []struct {
		in   string
		want SortMode
	}{
		{"", SortRelevance},
		{"relevance", SortRelevance},
		{"price_asc", SortPriceAsc},
		{"PRICE_DESC", SortPriceDesc},
		{" newest ", SortNewest},
		{"oldest", SortOldest},
		{"popularity", SortPopularity},
		{"rating", SortRating},
		{"bogus", SortRelevance},
	}
	for _, tc := range cases {
		if got := ParseSortMode(tc.in); got != tc.want {
			t.Errorf("ParseSortMode(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
