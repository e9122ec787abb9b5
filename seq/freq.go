package seq

// A FrequencyProfile counts residue observations over an alphabet. It is an
// intermediate representation: feed it sequences, then convert the raw
// counts to a background ScoreTable of emission probabilities.
type FrequencyProfile struct {
	// Raw observation counts, keyed by residue.
	Freqs map[Residue]int

	// The alphabet of the profile. Observed residues outside the alphabet
	// are not counted.
	Alphabet Alphabet
}

// NewFrequencyProfile initializes a frequency profile over the given
// alphabet. Pseudo-count correction using Laplace's Rule is automatically
// applied, so every residue starts with a count of 1.
func NewFrequencyProfile(alphabet Alphabet) *FrequencyProfile {
	freqs := make(map[Residue]int, alphabet.Len())
	for _, residue := range alphabet.Residues() {
		freqs[residue] = 1 // Laplace's rule
	}
	return &FrequencyProfile{freqs, alphabet}
}

// Add counts a single residue observation. Residues outside the profile's
// alphabet are ignored, and false is returned for them.
func (fp *FrequencyProfile) Add(r Residue) bool {
	if !fp.Alphabet.Contains(r) {
		return false
	}
	fp.Freqs[r]++
	return true
}

// AddSequence counts every residue of s and returns the number of residues
// that were in the profile's alphabet.
func (fp *FrequencyProfile) AddSequence(s Sequence) int {
	counted := 0
	for _, r := range s.Residues {
		if fp.Add(r) {
			counted++
		}
	}
	return counted
}

// ScoreTable converts the raw counts to a table of emission probabilities
// that sum to 1 over the alphabet. With no observations added, the Laplace
// pseudo-counts make the table uniform (1/20 = 0.05 for the standard
// alphabet).
func (fp *FrequencyProfile) ScoreTable() *ScoreTable {
	tot := 0
	for _, freq := range fp.Freqs {
		tot += freq
	}
	scores := make([]float64, fp.Alphabet.Len())
	for i, residue := range fp.Alphabet.Residues() {
		scores[i] = float64(fp.Freqs[residue]) / float64(tot)
	}
	t, err := NewScoreTable(fp.Alphabet, scores)
	if err != nil {
		// scores is built from the alphabet itself, so the lengths
		// cannot differ.
		panic(err)
	}
	return t
}
