package seq

import (
	"errors"
	"fmt"
)

// DefaultScore is returned for residues that are not in the alphabet. It is
// the average score of a residue under a uniform distribution over the 20
// standard amino acids. It is a fixed policy value, not derived from the
// score table at hand, so callers must not assume a returned 0.05 means the
// residue was absent.
const DefaultScore = 0.05

// ErrLengthMismatch is returned when an alphabet and its score table do not
// have the same length. It is a contract violation by the caller; there is
// nothing to retry.
var ErrLengthMismatch = errors.New("seq: alphabet and score lengths differ")

// ScoreForResidue returns the score of the given residue: scores[i] for the
// first index i at which the alphabet holds query, or DefaultScore if the
// alphabet does not contain query at all. The scores are positional, so
// scores[i] belongs to alphabet.At(i) and the two must have equal lengths.
//
// The lookup is a pure read over caller-owned data. It does not allocate and
// is safe to call concurrently.
func ScoreForResidue(query Residue, scores []float64, alphabet Alphabet) (float64, error) {
	if len(scores) != alphabet.Len() {
		return 0, fmt.Errorf("%w: %d scores for %d residues",
			ErrLengthMismatch, len(scores), alphabet.Len())
	}
	if i := alphabet.Index(query); i >= 0 {
		return scores[i], nil
	}
	return DefaultScore, nil
}

// A ScoreTable pairs an alphabet with per-residue scores. The length
// invariant is checked once at construction, so Score never fails.
type ScoreTable struct {
	alphabet Alphabet
	scores   []float64
}

// NewScoreTable creates a score table over the given alphabet. scores[i] is
// the score of alphabet.At(i). The scores are copied, and an
// ErrLengthMismatch error is returned if the lengths differ.
func NewScoreTable(alphabet Alphabet, scores []float64) (*ScoreTable, error) {
	if len(scores) != alphabet.Len() {
		return nil, fmt.Errorf("%w: %d scores for %d residues",
			ErrLengthMismatch, len(scores), alphabet.Len())
	}
	copied := make([]float64, len(scores))
	copy(copied, scores)
	return &ScoreTable{alphabet: alphabet, scores: copied}, nil
}

// Alphabet returns the table's alphabet.
func (t *ScoreTable) Alphabet() Alphabet {
	return t.alphabet
}

// Scores returns a copy of the table's scores, in alphabet order.
func (t *ScoreTable) Scores() []float64 {
	scores := make([]float64, len(t.scores))
	copy(scores, t.scores)
	return scores
}

// Score returns the score of r, or DefaultScore if r is not in the table's
// alphabet.
func (t *ScoreTable) Score(r Residue) float64 {
	if i := t.alphabet.Index(r); i >= 0 {
		return t.scores[i]
	}
	return DefaultScore
}

// ScoreSequence returns the total and mean score over all residues of s.
// Residues absent from the alphabet contribute DefaultScore each. The mean
// of an empty sequence is 0.
func (t *ScoreTable) ScoreSequence(s Sequence) (total, mean float64) {
	for _, r := range s.Residues {
		total += t.Score(r)
	}
	if s.Len() > 0 {
		mean = total / float64(s.Len())
	}
	return total, mean
}
