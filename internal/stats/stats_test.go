package stats

import (
	"reflect"
	"testing"

	"rnahelix-core/dotbracket"
)

func analysis(t *testing.T, s string, bulge int) dotbracket.Analysis {
	t.Helper()
	bp, _ := dotbracket.ParseBracketPairs("()", "[]")
	a, err := dotbracket.Analyze(s, bp, bulge)
	if err != nil {
		t.Fatalf("Analyze(%q): %v", s, err)
	}
	return a
}

func TestSummary(t *testing.T) {
	acc := New(Config{MaxHelixLength: 4, InteractionBin: 5})
	acc.Add(analysis(t, "((((&))))", 0))      // one helix of 4 (filtered), interaction 4
	acc.Add(analysis(t, "((..))..((..))", 0)) // two helices of 2, interaction 14
	acc.Add(analysis(t, "((..[[..))..]]", 0)) // 2 + pk 2, interaction 14
	acc.Add(analysis(t, "(.....)", 0))        // none, interaction 7
	acc.Fail()

	s := acc.Summary()
	if s.Records != 4 || s.Failed != 1 || s.Helices != 5 || s.PseudoknotHelix != 1 {
		t.Fatalf("totals: %+v", s)
	}
	if want := []Bin{{0, 1, 1}, {1, 2, 1}, {2, 3, 2}}; !reflect.DeepEqual(s.HelicesPerRecord, want) {
		t.Errorf("per record: got %v, want %v", s.HelicesPerRecord, want)
	}
	if want := []Bin{{2, 3, 4}}; !reflect.DeepEqual(s.HelixLengths, want) {
		t.Errorf("lengths: got %v, want %v", s.HelixLengths, want)
	}
	if want := []Bin{{2, 3, 1}}; !reflect.DeepEqual(s.PseudoknotLength, want) {
		t.Errorf("pk lengths: got %v, want %v", s.PseudoknotLength, want)
	}
	if want := []Bin{{0, 5, 1}, {5, 10, 1}, {10, 15, 2}}; !reflect.DeepEqual(s.InteractionLen, want) {
		t.Errorf("interaction: got %v, want %v", s.InteractionLen, want)
	}
}

func TestSummaryEmpty(t *testing.T) {
	s := New(Config{}).Summary()
	if s.Records != 0 || len(s.HelixLengths) != 0 || len(s.InteractionLen) != 0 {
		t.Fatalf("unexpected %+v", s)
	}
}

func TestNoLengthFilter(t *testing.T) {
	acc := New(Config{})
	acc.Add(analysis(t, "((((((((((....))))))))))", 0))
	if got := acc.Summary().HelixLengths; len(got) != 1 || got[0].Lo != 10 {
		t.Fatalf("got %v", got)
	}
}
