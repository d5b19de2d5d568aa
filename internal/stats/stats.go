// Package stats aggregates helix analyses into histogram tables.
package stats

import (
	"sort"

	"rnahelix-core/dotbracket"
)

const (
	DefaultMaxHelixLength = 40
	DefaultInteractionBin = 5
)

// Bin counts values v with Lo <= v < Hi.
type Bin struct {
	Lo    int
	Hi    int
	Count int
}

type Config struct {
	MaxHelixLength int // helix lengths >= this are left out of HelixLengths; 0 = keep all
	InteractionBin int // width of interaction-length bins (>=1)
}

// Summary is the aggregate over all analysed records.
type Summary struct {
	Records          int
	Failed           int
	Helices          int
	PseudoknotHelix  int
	HelicesPerRecord []Bin // unit bins
	HelixLengths     []Bin // unit bins, filtered by MaxHelixLength
	PseudoknotLength []Bin // unit bins
	InteractionLen   []Bin // InteractionBin-wide bins
}

// Accumulator collects analyses. It is not safe for concurrent use; feed it
// from the pipeline's visit callback.
type Accumulator struct {
	cfg         Config
	records     int
	failed      int
	perRecord   map[int]int
	lengths     map[int]int
	pkLengths   map[int]int
	interaction map[int]int
	helices     int
	pk          int
}

func New(cfg Config) *Accumulator {
	if cfg.InteractionBin < 1 {
		cfg.InteractionBin = DefaultInteractionBin
	}
	return &Accumulator{
		cfg:         cfg,
		perRecord:   map[int]int{},
		lengths:     map[int]int{},
		pkLengths:   map[int]int{},
		interaction: map[int]int{},
	}
}

// Add records one successful analysis.
func (a *Accumulator) Add(an dotbracket.Analysis) {
	a.records++
	a.perRecord[len(an.Lengths)]++
	a.helices += len(an.Lengths)
	a.pk += len(an.PseudoknotLengths)
	for _, l := range an.Lengths {
		if a.cfg.MaxHelixLength > 0 && l >= a.cfg.MaxHelixLength {
			continue
		}
		a.lengths[l]++
	}
	for _, l := range an.PseudoknotLengths {
		a.pkLengths[l]++
	}
	w := a.cfg.InteractionBin
	a.interaction[an.InteractionLength/w*w]++
}

// Fail counts a record whose structure could not be analysed.
func (a *Accumulator) Fail() { a.failed++ }

func (a *Accumulator) Summary() Summary {
	return Summary{
		Records:          a.records,
		Failed:           a.failed,
		Helices:          a.helices,
		PseudoknotHelix:  a.pk,
		HelicesPerRecord: bins(a.perRecord, 1),
		HelixLengths:     bins(a.lengths, 1),
		PseudoknotLength: bins(a.pkLengths, 1),
		InteractionLen:   bins(a.interaction, a.cfg.InteractionBin),
	}
}

// bins returns the non-empty bins of counts in ascending order.
func bins(counts map[int]int, width int) []Bin {
	out := make([]Bin, 0, len(counts))
	for lo, n := range counts {
		out = append(out, Bin{Lo: lo, Hi: lo + width, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Lo < out[j].Lo })
	return out
}
