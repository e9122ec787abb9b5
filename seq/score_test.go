package seq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreForResidueRoundtrip(t *testing.T) {
	scores := make([]float64, AlphaStandard.Len())
	for i := range scores {
		scores[i] = float64(i) / 100
	}
	for i := 0; i < AlphaStandard.Len(); i++ {
		got, err := ScoreForResidue(AlphaStandard.At(i), scores, AlphaStandard)
		require.NoError(t, err)
		assert.Equal(t, scores[i], got)
	}
}

func TestScoreForResidueFallback(t *testing.T) {
	alphabet := AlphabetFromString("AC")
	scores := []float64{0.9, 0.1}

	got, err := ScoreForResidue('C', scores, alphabet)
	require.NoError(t, err)
	assert.Equal(t, 0.1, got)

	got, err = ScoreForResidue('Z', scores, alphabet)
	require.NoError(t, err)
	assert.Equal(t, DefaultScore, got)
}

// The uniform table over the 20 standard residues scores 0.05 everywhere, so
// a hit on 'A' and a miss on 'X' are indistinguishable by value. That is
// expected: the fallback is a policy constant, not an error signal.
func TestScoreForResidueUniform(t *testing.T) {
	scores := make([]float64, AlphaStandard.Len())
	sum := 0.0
	for i := range scores {
		scores[i] = 0.05
		sum += scores[i]
	}
	assert.InDelta(t, 1.0, sum, 1e-12)

	got, err := ScoreForResidue('A', scores, AlphaStandard)
	require.NoError(t, err)
	assert.Equal(t, 0.05, got)

	got, err = ScoreForResidue('X', scores, AlphaStandard)
	require.NoError(t, err)
	assert.Equal(t, 0.05, got)
}

func TestScoreForResidueDuplicates(t *testing.T) {
	alphabet := AlphabetFromString("ACA")
	scores := []float64{0.7, 0.2, 0.1}

	got, err := ScoreForResidue('A', scores, alphabet)
	require.NoError(t, err)
	assert.Equal(t, 0.7, got, "first occurrence wins")
}

func TestScoreForResidueLengthMismatch(t *testing.T) {
	alphabet := AlphabetFromString("ACD")
	for _, scores := range [][]float64{
		nil,
		{0.5},
		{0.5, 0.5},
		{0.1, 0.2, 0.3, 0.4},
	} {
		_, err := ScoreForResidue('A', scores, alphabet)
		require.ErrorIs(t, err, ErrLengthMismatch, "%d scores", len(scores))
	}
}

func TestNewScoreTable(t *testing.T) {
	table, err := NewScoreTable(AlphabetFromString("AC"), []float64{0.9, 0.1})
	require.NoError(t, err)

	assert.Equal(t, 0.9, table.Score('A'))
	assert.Equal(t, 0.1, table.Score('C'))
	assert.Equal(t, DefaultScore, table.Score('Z'))

	_, err = NewScoreTable(AlphabetFromString("AC"), []float64{0.9})
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestScoreTableCopiesScores(t *testing.T) {
	scores := []float64{0.9, 0.1}
	table, err := NewScoreTable(AlphabetFromString("AC"), scores)
	require.NoError(t, err)

	scores[0] = 0.0
	assert.Equal(t, 0.9, table.Score('A'))
}

func TestScoreSequence(t *testing.T) {
	table, err := NewScoreTable(AlphabetFromString("AC"), []float64{0.9, 0.1})
	require.NoError(t, err)

	total, mean := table.ScoreSequence(NewSequence("s", "ACZ"))
	assert.InDelta(t, 0.9+0.1+DefaultScore, total, 1e-12)
	assert.InDelta(t, (0.9+0.1+DefaultScore)/3, mean, 1e-12)

	total, mean = table.ScoreSequence(NewSequence("empty", ""))
	assert.Equal(t, 0.0, total)
	assert.Equal(t, 0.0, mean)
}
