package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"summify/internal/domain"
	"summify/internal/frequency"
	"summify/internal/stopwords"
)

func doc(tokens ...[]string) []domain.Sentence {
	out := make([]domain.Sentence, len(tokens))
	for i, t := range tokens {
		out[i] = domain.Sentence{Index: i, Tokens: t}
	}
	return out
}

func catsDoc() ([]domain.Sentence, Context) {
	stops := stopwords.Builtin()
	sentences := doc(
		[]string{"cats", "are", "animals"},
		[]string{"dogs", "are", "animals"},
		[]string{"cats", "chase", "mice"},
	)
	return sentences, NewContext(sentences, frequency.Build(sentences, stops), stops)
}

func TestFrequencyScore(t *testing.T) {
	sentences, c := catsDoc()
	scored := ScoreAll(Frequency{}, sentences, c)

	assert.InDelta(t, 1.0, scored[0].Score, 1e-9)
	assert.InDelta(t, 0.75, scored[1].Score, 1e-9)
	assert.InDelta(t, 2.0/3.0, scored[2].Score, 1e-9)
}

func TestFrequencyScoreWithoutContent(t *testing.T) {
	stops := stopwords.Builtin()
	sentences := doc([]string{"the", "and"}, []string{"engine", "runs"})
	c := NewContext(sentences, frequency.Build(sentences, stops), stops)

	assert.Equal(t, 0.0, Frequency{}.Score(sentences[0], c))

	empty := NewContext(sentences, frequency.Table{}, stops)
	assert.Equal(t, 0.0, Frequency{}.Score(sentences[1], empty))
}

func TestPositionScore(t *testing.T) {
	sentences := doc([]string{"a"}, []string{"b"}, []string{"c"}, []string{"d"}, []string{"e"})
	c := NewContext(sentences, frequency.Table{}, stopwords.Builtin())
	scored := ScoreAll(Position{}, sentences, c)

	assert.Equal(t, 1.0, scored[0].Score)
	assert.InDelta(t, 0.5, scored[1].Score, 1e-9)
	assert.InDelta(t, 1.0/3.0, scored[2].Score, 1e-9)
	assert.InDelta(t, 0.25, scored[3].Score, 1e-9)
	assert.InDelta(t, 0.7, scored[4].Score, 1e-9)

	// interior sentences decrease with position
	assert.Greater(t, scored[1].Score, scored[2].Score)
	assert.Greater(t, scored[2].Score, scored[3].Score)
	// the conclusion beats every interior sentence
	assert.Greater(t, scored[4].Score, scored[1].Score)
}

func TestPositionConclusionBeatsInteriorOnLongDocuments(t *testing.T) {
	tokens := make([][]string, 40)
	for i := range tokens {
		tokens[i] = []string{"word"}
	}
	sentences := doc(tokens...)
	c := NewContext(sentences, frequency.Table{}, stopwords.Builtin())
	last := Position{}.Score(sentences[39], c)
	for _, s := range sentences[1:39] {
		assert.Greater(t, last, Position{}.Score(s, c))
	}
	for _, s := range sentences {
		assert.LessOrEqual(t, Position{}.Score(s, c), 1.0)
	}
}

func TestPositionUsesSurvivingIndexes(t *testing.T) {
	sentences := []domain.Sentence{
		{Index: 1, Tokens: []string{"first"}},
		{Index: 2, Tokens: []string{"middle"}},
		{Index: 5, Tokens: []string{"last"}},
	}
	c := NewContext(sentences, frequency.Table{}, stopwords.Builtin())
	assert.Equal(t, 1, c.First)
	assert.Equal(t, 5, c.Last)
	assert.Equal(t, 3, c.Total)
	assert.Equal(t, 1.0, Position{}.Score(sentences[0], c))
	assert.InDelta(t, 1.0/6.0+LeadConclusionBonus, Position{}.Score(sentences[2], c), 1e-9)
}

func TestHybridScore(t *testing.T) {
	sentences, c := catsDoc()
	h := Hybrid{Weights: DefaultWeights()}

	for _, s := range sentences {
		want := 0.7*Frequency{}.Score(s, c) + 0.3*Position{}.Score(s, c)
		assert.InDelta(t, want, h.Score(s, c), 1e-9)
	}
}

func TestForMode(t *testing.T) {
	for _, m := range domain.Modes() {
		st, err := ForMode(m, DefaultWeights())
		require.NoError(t, err)
		assert.Equal(t, m, st.Mode())
	}

	_, err := ForMode(domain.Mode(9), DefaultWeights())
	assert.True(t, domain.IsKind(err, domain.KindInvalidMode))

	_, err = ForMode(domain.ModeHybrid, Weights{Frequency: 0.9, Position: 0.3})
	assert.Error(t, err)
}

func TestWeightsValidate(t *testing.T) {
	assert.NoError(t, DefaultWeights().Validate())
	assert.NoError(t, Weights{Frequency: 1}.Validate())
	assert.Error(t, Weights{Frequency: 0.5, Position: 0.4}.Validate())
	assert.Error(t, Weights{Frequency: 1.5, Position: -0.5}.Validate())
}

type brokenStrategy struct{ v float64 }

func (brokenStrategy) Mode() domain.Mode { return domain.ModeFrequency }
func (b brokenStrategy) Score(domain.Sentence, Context) float64 { return b.v }

func TestScoreAllSanitizes(t *testing.T) {
	sentences := doc([]string{"x"})
	c := NewContext(sentences, frequency.Table{}, stopwords.Builtin())
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -3} {
		scored := ScoreAll(brokenStrategy{v: v}, sentences, c)
		assert.Equal(t, 0.0, scored[0].Score)
	}
}

func TestScoresAreDeterministic(t *testing.T) {
	sentences, c := catsDoc()
	for _, m := range domain.Modes() {
		st, err := ForMode(m, DefaultWeights())
		require.NoError(t, err)
		first := ScoreAll(st, sentences, c)
		for i := 0; i < 20; i++ {
			assert.Equal(t, first, ScoreAll(st, sentences, c))
		}
	}
}
