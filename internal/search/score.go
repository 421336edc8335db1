package search

import "math"

// Weights combines the per-signal ranking weights. The values are
// empirically chosen constants; the relative order they induce is the
// contract, so deployments may tune them through config without code
// changes.
type Weights struct {
	Lexical   float64
	NameSim   float64
	PrefixSim float64
	Phonetic  float64
	BrandSim  float64
	Click     float64
	View      float64
	Rating    float64
}

// DefaultWeights returns the stock ranking weights.
func DefaultWeights() Weights {
	return Weights{
		Lexical:   10,
		NameSim:   5,
		PrefixSim: 3,
		Phonetic:  2,
		BrandSim:  2,
		Click:     0.01,
		View:      0.005,
		Rating:    0.5,
	}
}

// Thresholds are the minimum similarities for the fuzzy match channels.
type Thresholds struct {
	NameSim float64
	Prefix  float64
	Brand   float64
}

// DefaultThresholds returns the stock match thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{NameSim: 0.15, Prefix: 0.5, Brand: 0.3}
}

// Signals are the pre-computed per-candidate match and popularity values.
// How they were obtained is the retrieval layer's concern; scoring only
// combines them.
type Signals struct {
	LexicalRank      float64
	NameSimilarity   float64
	PrefixSimilarity float64
	PhoneticMatch    bool
	BrandSimilarity  float64
	Clicks30d        int64
	Views30d         int64
	AvgRating        float64
	ReviewCount      int64
}

// Score combines the signals into a single non-negative relevance value.
// The log dampening on review count keeps a five-star product with one
// review below a slightly lower-rated product with many reviews.
func (w Weights) Score(s Signals) float64 {
	score := w.Lexical*s.LexicalRank +
		w.NameSim*s.NameSimilarity +
		w.PrefixSim*s.PrefixSimilarity +
		w.BrandSim*s.BrandSimilarity +
		w.Click*float64(s.Clicks30d) +
		w.View*float64(s.Views30d) +
		w.Rating*s.AvgRating*math.Log(float64(s.ReviewCount)+1)
	if s.PhoneticMatch {
		score += w.Phonetic
	}
	if score < 0 {
		return 0
	}
	return score
}
