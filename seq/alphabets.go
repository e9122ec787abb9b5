package seq

// An Alphabet is a fixed ordered set of residue codes. It is built once and
// never mutated afterwards, so it is safe to share across goroutines.
//
// The backing storage is padded with zero bytes up to a multiple of the
// block width used by Index, so that whole-block reads during lookup never
// touch memory outside the alphabet's own buffer.
type Alphabet struct {
	packed []byte
	n      int
}

// NewAlphabet creates an alphabet from the given residues, in order.
// Duplicates are permitted; lookups resolve to the first occurrence.
func NewAlphabet(residues ...Residue) Alphabet {
	packed := make([]byte, pad(len(residues), blockWidth))
	for i, r := range residues {
		packed[i] = byte(r)
	}
	return Alphabet{packed: packed, n: len(residues)}
}

// AlphabetFromString creates an alphabet from a string of residue codes.
func AlphabetFromString(s string) Alphabet {
	packed := make([]byte, pad(len(s), blockWidth))
	copy(packed, s)
	return Alphabet{packed: packed, n: len(s)}
}

// Len returns the number of residues in the alphabet.
func (a Alphabet) Len() int {
	return a.n
}

// At returns the residue at index i.
func (a Alphabet) At(i int) Residue {
	if i < 0 || i >= a.n {
		panic("seq: alphabet index out of range")
	}
	return Residue(a.packed[i])
}

// Residues returns a copy of the residues in the alphabet.
func (a Alphabet) Residues() []Residue {
	residues := make([]Residue, a.n)
	for i := 0; i < a.n; i++ {
		residues[i] = Residue(a.packed[i])
	}
	return residues
}

// Index returns the index of the first occurrence of r in the alphabet, or
// -1 if r is not a member. The scan compares one block of residues at a time
// against the query; see lookup.go.
func (a Alphabet) Index(r Residue) int {
	return index(a.packed, a.n, byte(r))
}

// Contains returns true if r is a member of the alphabet.
func (a Alphabet) Contains(r Residue) bool {
	return a.Index(r) >= 0
}

func (a Alphabet) String() string {
	return string(a.packed[:a.n])
}

// pad rounds n up to the next multiple of width. n itself is returned if it
// is already a multiple (zero included).
func pad(n, width int) int {
	return (n + width - 1) / width * width
}

// The 20 standard amino acids, alphabetically by single-letter code.
var AlphaStandard = AlphabetFromString("ACDEFGHIKLMNPQRSTVWY")
