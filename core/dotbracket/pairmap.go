// core/dotbracket/pairmap.go
package dotbracket

// Unpaired marks a position without a partner in a pair map.
const Unpaired = -1

// PairMap returns, for every position of structure, the index of its partner
// or Unpaired. Each bracket pair is matched with its own stack pass; all
// passes write into the same map. A nil or empty brackets list means
// DefaultBrackets.
func PairMap(structure string, brackets []BracketPair) ([]int, error) {
	if len(brackets) == 0 {
		brackets = DefaultBrackets
	}
	pairs := make([]int, len(structure))
	for i := range pairs {
		pairs[i] = Unpaired
	}

	stack := make([]int, 0, 16)
	for _, bp := range brackets {
		stack = stack[:0]
		for i := 0; i < len(structure); i++ {
			switch structure[i] {
			case bp.Open:
				stack = append(stack, i)
			case bp.Close:
				if len(stack) == 0 {
					return nil, &UnmatchedClosingError{Pos: i, Symbol: bp.Close}
				}
				j := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				pairs[i], pairs[j] = j, i
			}
		}
		if len(stack) > 0 {
			return nil, &UnmatchedOpeningError{Pos: stack[len(stack)-1], Symbol: bp.Open}
		}
	}
	return pairs, nil
}

// checkPairMap rejects maps that cannot belong to structure.
func checkPairMap(pairs []int, n int) error {
	if len(pairs) != n {
		return ErrInvalidPairMap
	}
	for _, j := range pairs {
		if j < Unpaired || j >= n {
			return ErrInvalidPairMap
		}
	}
	return nil
}
