package selector

import (
	"sort"

	"summify/internal/domain"
)

// Select returns the target highest-scoring sentences in document order.
// target is clamped to [1, len(scored)]; ties go to the earlier sentence.
func Select(scored []domain.ScoredSentence, target int) []domain.Sentence {
	if len(scored) == 0 {
		return nil
	}
	if target < 1 {
		target = 1
	}
	ranked := make([]domain.ScoredSentence, len(scored))
	copy(ranked, scored)
	if target < len(ranked) {
		sort.SliceStable(ranked, func(i, j int) bool {
			if ranked[i].Score != ranked[j].Score {
				return ranked[i].Score > ranked[j].Score
			}
			return ranked[i].Sentence.Index < ranked[j].Sentence.Index
		})
		ranked = ranked[:target]
	}
	// Keep original order among selected
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].Sentence.Index < ranked[j].Sentence.Index })
	out := make([]domain.Sentence, len(ranked))
	for i, r := range ranked {
		out[i] = r.Sentence
	}
	return out
}
