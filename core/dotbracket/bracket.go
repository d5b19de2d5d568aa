// core/dotbracket/bracket.go
package dotbracket

import "fmt"

// BracketPair is one opening/closing symbol pair of the notation.
type BracketPair struct {
	Open  byte
	Close byte
}

func (b BracketPair) String() string { return string([]byte{b.Open, b.Close}) }

// PrimaryOpen is the opening symbol of nested (non-pseudoknot) pairs.
const PrimaryOpen = '('

// DefaultBrackets recognizes only the nested "()" pairs.
var DefaultBrackets = []BracketPair{{Open: '(', Close: ')'}}

// ParseBracketPairs turns specs like "()", "[]", "<>" into bracket pairs.
func ParseBracketPairs(specs ...string) ([]BracketPair, error) {
	if len(specs) == 0 {
		return append([]BracketPair(nil), DefaultBrackets...), nil
	}
	seen := make(map[byte]string, 2*len(specs))
	out := make([]BracketPair, 0, len(specs))
	for _, s := range specs {
		if len(s) != 2 {
			return nil, fmt.Errorf("bracket pair %q: want exactly two symbols", s)
		}
		bp := BracketPair{Open: s[0], Close: s[1]}
		if bp.Open == bp.Close {
			return nil, fmt.Errorf("bracket pair %q: opening and closing symbol must differ", s)
		}
		for _, c := range []byte{bp.Open, bp.Close} {
			if c == '.' || c == '&' {
				return nil, fmt.Errorf("bracket pair %q: %q is reserved", s, c)
			}
			if prev, dup := seen[c]; dup {
				return nil, fmt.Errorf("bracket pair %q: symbol %q already used by %q", s, c, prev)
			}
			seen[c] = s
		}
		out = append(out, bp)
	}
	return out, nil
}
