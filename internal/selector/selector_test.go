package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"summify/internal/domain"
)

func scored(scores ...float64) []domain.ScoredSentence {
	out := make([]domain.ScoredSentence, len(scores))
	for i, s := range scores {
		out[i] = domain.ScoredSentence{Sentence: domain.Sentence{Index: i * 2}, Score: s}
	}
	return out
}

func idx(ss []domain.Sentence) []int {
	out := make([]int, len(ss))
	for i, s := range ss {
		out[i] = s.Index
	}
	return out
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		target int
		want   []int
	}{
		{name: "top two in document order", scores: []float64{0.1, 0.9, 0.2, 0.8}, target: 2, want: []int{2, 6}},
		{name: "ties favour earlier sentence", scores: []float64{0.5, 0.5, 0.5}, target: 2, want: []int{0, 2}},
		{name: "tie at cut", scores: []float64{0.3, 0.9, 0.3}, target: 2, want: []int{0, 2}},
		{name: "target clamped up", scores: []float64{0.1, 0.9}, target: 0, want: []int{2}},
		{name: "negative target", scores: []float64{0.7, 0.9}, target: -4, want: []int{2}},
		{name: "target above total returns all", scores: []float64{0.1, 0.9, 0.5}, target: 100, want: []int{0, 2, 4}},
		{name: "target equals total", scores: []float64{0.1, 0.9, 0.5}, target: 3, want: []int{0, 2, 4}},
		{name: "single sentence", scores: []float64{0}, target: 5, want: []int{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, idx(Select(scored(tt.scores...), tt.target)))
		})
	}
}

func TestSelectEmpty(t *testing.T) {
	assert.Nil(t, Select(nil, 3))
}

func TestSelectDoesNotReorderInput(t *testing.T) {
	in := scored(0.1, 0.9, 0.5)
	_ = Select(in, 1)
	assert.Equal(t, []float64{0.1, 0.9, 0.5}, []float64{in[0].Score, in[1].Score, in[2].Score})
}

func TestSelectRespectsOriginalIndexNotSliceOrder(t *testing.T) {
	in := []domain.ScoredSentence{
		{Sentence: domain.Sentence{Index: 7}, Score: 0.9},
		{Sentence: domain.Sentence{Index: 3}, Score: 0.8},
		{Sentence: domain.Sentence{Index: 5}, Score: 0.1},
	}
	assert.Equal(t, []int{3, 7}, idx(Select(in, 2)))
	assert.Equal(t, []int{3, 5, 7}, idx(Select(in, 10)))
}
