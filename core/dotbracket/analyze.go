// core/dotbracket/analyze.go
package dotbracket

import "strings"

// Analysis is everything derived from one structure.
type Analysis struct {
	Helices           []Helix
	Lengths           []int
	PseudoknotLengths []int
	InteractionLength int
}

// Analyze builds the pair map of structure and extracts its helices.
// Helices not opened by the first bracket pair are pseudoknots.
func Analyze(structure string, brackets []BracketPair, bulge int) (Analysis, error) {
	if len(brackets) == 0 {
		brackets = DefaultBrackets
	}
	pairs, err := PairMap(structure, brackets)
	if err != nil {
		return Analysis{}, err
	}
	hs, err := findHelices(pairs, structure, bulge, brackets[0].Open)
	if err != nil {
		return Analysis{}, err
	}
	all, pk := lengths(hs)
	return Analysis{
		Helices:           hs,
		Lengths:           all,
		PseudoknotLengths: pk,
		InteractionLength: InteractionLength(structure),
	}, nil
}

// InteractionLength is the length of the longest '&'-separated strand.
func InteractionLength(structure string) int {
	longest := 0
	for _, part := range strings.Split(structure, "&") {
		if len(part) > longest {
			longest = len(part)
		}
	}
	return longest
}
