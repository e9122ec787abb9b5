package tables

import "github.com/bcblab/resscore/seq"

// Background amino acid frequencies from Robinson and Robinson (1991), as
// used by PSI-BLAST, in the order of seq.AlphaStandard.
var robinsonScores = []float64{
	0.07805, // A
	0.01925, // C
	0.05364, // D
	0.06295, // E
	0.03856, // F
	0.07377, // G
	0.02199, // H
	0.05142, // I
	0.05744, // K
	0.09019, // L
	0.02243, // M
	0.04487, // N
	0.05203, // P
	0.04264, // Q
	0.05129, // R
	0.07120, // S
	0.05841, // T
	0.06441, // V
	0.01330, // W
	0.03216, // Y
}

var builtins = map[string]*seq.ScoreTable{
	"uniform":  uniformTable(),
	"robinson": mustTable(seq.AlphaStandard, robinsonScores),
}

// uniformTable scores every standard residue at 1/20 = 0.05, matching the
// fallback constant for absent residues.
func uniformTable() *seq.ScoreTable {
	scores := make([]float64, seq.AlphaStandard.Len())
	for i := range scores {
		scores[i] = 1.0 / float64(len(scores))
	}
	return mustTable(seq.AlphaStandard, scores)
}

func mustTable(alphabet seq.Alphabet, scores []float64) *seq.ScoreTable {
	table, err := seq.NewScoreTable(alphabet, scores)
	if err != nil {
		panic(err)
	}
	return table
}
