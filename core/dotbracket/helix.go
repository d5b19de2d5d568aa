// core/dotbracket/helix.go
package dotbracket

import "sort"

// Helix is a run of stacked base pairs.
type Helix struct {
	Start      int   // first (leftmost) position of the run
	Length     int   // number of stacked pairs
	Positions  []int // every position consumed by the helix, ascending
	Pseudoknot bool  // Start is not the primary opening symbol
}

// FindHelices scans pairs left to right and groups stacked pairs into helices.
// Two pairs stack when the inner one starts within bulge+1 positions of the
// outer one and its partner lies within bulge+1 positions of the outer
// partner. Single, unstacked pairs are not returned. Helices that do not
// start with PrimaryOpen are marked as pseudoknots.
func FindHelices(pairs []int, structure string, bulge int) ([]Helix, error) {
	return findHelices(pairs, structure, bulge, PrimaryOpen)
}

func findHelices(pairs []int, structure string, bulge int, primary byte) ([]Helix, error) {
	if bulge < 0 {
		return nil, ErrNegativeBulge
	}
	if err := checkPairMap(pairs, len(structure)); err != nil {
		return nil, err
	}

	visited := make([]bool, len(pairs))
	var out []Helix
	for i, j := range pairs {
		if j == Unpaired || visited[i] || visited[j] {
			continue
		}
		h, err := traceHelix(pairs, bulge, i, visited)
		if err != nil {
			return nil, err
		}
		if h.Length < 2 {
			continue
		}
		h.Pseudoknot = structure[i] != primary
		out = append(out, h)
	}
	return out, nil
}

// traceHelix follows one stack inward from start. Every pair it touches is
// marked in visited, including the start pair of a run that never extends.
func traceHelix(pairs []int, bulge, start int, visited []bool) (Helix, error) {
	n := len(pairs)
	h := Helix{Start: start, Length: 1}
	take := func(p int) {
		q := pairs[p]
		visited[p] = true
		h.Positions = append(h.Positions, p)
		if q != Unpaired {
			visited[q] = true
			h.Positions = append(h.Positions, q)
		}
	}
	take(start)

	for start < n-1 {
		outer, inner := pairs[start], start
		next := -1
		for p := start + 1; p < n && p <= start+1+bulge; p++ {
			q := pairs[p]
			if q == Unpaired {
				continue
			}
			if outer > q && q > inner && outer > pairs[q] && pairs[q] > inner && outer-q <= bulge+1 {
				next = p
				break
			}
		}
		if next < 0 {
			sort.Ints(h.Positions)
			return h, nil
		}
		h.Length++
		start = next
		take(start)
	}
	return Helix{}, &IncompleteTraceError{Pos: start}
}

// Stackings returns the lengths of all helices and of the pseudoknot-only
// helices, both in scan order.
func Stackings(pairs []int, structure string, bulge int) (all, pseudoknot []int, err error) {
	hs, err := FindHelices(pairs, structure, bulge)
	if err != nil {
		return nil, nil, err
	}
	all, pseudoknot = lengths(hs)
	return all, pseudoknot, nil
}

func lengths(hs []Helix) (all, pseudoknot []int) {
	all = make([]int, 0, len(hs))
	for _, h := range hs {
		all = append(all, h.Length)
		if h.Pseudoknot {
			pseudoknot = append(pseudoknot, h.Length)
		}
	}
	return all, pseudoknot
}
