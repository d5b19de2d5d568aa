// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"rnahelix-core/dotbracket"
	"rnahelix/internal/cliutil"
	"rnahelix/internal/output"
	"rnahelix/internal/stats"
	"rnahelix/internal/table"
)

// ErrPrintedAndExitOK is returned by ParseArgs when the caller requested examples.
// Apps should catch this and exit 0 after printing examples.
var ErrPrintedAndExitOK = errors.New("examples requested")

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Tables     []string
	Structures []string
	Column     string
	IDColumn   string
	Separator  rune
	Top        int

	// Analysis
	Bulge        int
	Brackets     []string
	BracketPairs []dotbracket.BracketPair // parsed from Brackets

	// Performance
	Threads int

	// Output
	Output            string
	Summary           bool
	MaxHelixLength    int
	InteractionBin    int
	Sort              bool
	Header            bool
	NoRecordsExitCode int

	// Failure handling
	Strict bool

	// Misc
	Quiet   bool
	NoColor bool
	Version bool
}

// TableOptions is the reader configuration implied by the flags.
func (o Options) TableOptions() table.Options {
	return table.Options{Separator: o.Separator, Column: o.Column, IDColumn: o.IDColumn, Top: o.Top}
}

// StatsConfig is the histogram configuration implied by the flags.
func (o Options) StatsConfig() stats.Config {
	return stats.Config{MaxHelixLength: o.MaxHelixLength, InteractionBin: o.InteractionBin}
}

// register wires all flags onto fs. It returns the raw separator and the
// "no-header" switch, which ParseArgs folds into Options after parsing.
func register(fs *flag.FlagSet, o *Options) (sep *string, noHeader *bool) {
	// Input
	structures := cliutil.NewStringList(&o.Structures)
	fs.Var(structures, "structure", "dot-bracket structure to analyse (repeatable)")
	fs.Var(structures, "S", "alias of --structure")
	fs.StringVar(&o.Column, "column", table.DefaultColumn, "structure column of the result tables")
	fs.StringVar(&o.IDColumn, "id-column", table.DefaultIDColumn, "id column reported with each record (optional)")
	sep = fs.String("separator", string(table.DefaultSeparator), "column separator: one character or 'tab'")
	fs.IntVar(&o.Top, "top", table.DefaultTop, "analyse the first N rows of each table (0=all)")

	// Analysis
	fs.IntVar(&o.Bulge, "bulge", 0, "max bulge size inside a helix [0]")
	fs.IntVar(&o.Bulge, "b", 0, "alias of --bulge")
	fs.Var(cliutil.NewStringList(&o.Brackets, "()"), "brackets", "bracket pair to recognise (repeatable; first is primary)")

	// Performance
	fs.IntVar(&o.Threads, "threads", 0, "worker threads (0=physical cores) [0]")
	fs.IntVar(&o.Threads, "t", 0, "alias of --threads")

	// Output
	fs.StringVar(&o.Output, "output", output.FormatText, "output: text | json | jsonl [text]")
	fs.StringVar(&o.Output, "o", output.FormatText, "alias of --output")
	fs.BoolVar(&o.Summary, "summary", false, "write histograms instead of per-record rows [false]")
	fs.IntVar(&o.MaxHelixLength, "max-helix-length", stats.DefaultMaxHelixLength, "leave helices this long or longer out of the length histogram (0=keep all)")
	fs.IntVar(&o.InteractionBin, "interaction-bin", stats.DefaultInteractionBin, "bin width of the interaction-length histogram")
	fs.BoolVar(&o.Sort, "sort", false, "sort records by source and row [false]")
	noHeader = fs.Bool("no-header", false, "suppress header lines [false]")
	fs.IntVar(&o.NoRecordsExitCode, "no-records-exit-code", 1, "exit code when no structure was analysed [1]")

	// Failure handling
	fs.BoolVar(&o.Strict, "strict", false, "stop at the first malformed structure [false]")

	// Misc
	fs.BoolVar(&o.Quiet, "quiet", false, "suppress per-record warnings [false]")
	fs.BoolVar(&o.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&o.NoColor, "no-color", false, "disable coloured warnings [false]")
	fs.BoolVar(&o.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&o.Version, "version", false, "print version and exit [false]")
	return sep, noHeader
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool

	sep, noHeader := register(fs, &o)
	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if showExamples {
		return o, ErrPrintedAndExitOK
	}
	if help {
		return o, flag.ErrHelp
	}
	if o.Version {
		return o, nil
	}

	o.Header = !*noHeader
	r, err := parseSeparator(*sep)
	if err != nil {
		return o, err
	}
	o.Separator = r

	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return o, err
		}
		o.Tables = append(o.Tables, exp...)
	}
	if err := Validate(&o); err != nil {
		return o, err
	}
	return o, nil
}

func parseSeparator(s string) (rune, error) {
	switch s {
	case "tab", `\t`:
		return '\t', nil
	}
	r := []rune(s)
	if len(r) != 1 {
		return 0, fmt.Errorf("--separator must be a single character, got %q", s)
	}
	switch r[0] {
	case '"', '\r', '\n':
		return 0, fmt.Errorf("invalid --separator %q", s)
	}
	return r[0], nil
}

// Validate applies CLI invariants and parses the bracket pairs.
func Validate(o *Options) error {
	if len(o.Tables) == 0 && len(o.Structures) == 0 {
		return errors.New("provide result tables or --structure")
	}
	if o.Bulge < 0 {
		return errors.New("--bulge must be ≥ 0")
	}
	if o.Top < 0 {
		return errors.New("--top must be ≥ 0")
	}
	if o.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if o.Column == "" {
		return errors.New("--column must not be empty")
	}
	if o.MaxHelixLength < 0 {
		return errors.New("--max-helix-length must be ≥ 0")
	}
	if o.InteractionBin < 1 {
		return errors.New("--interaction-bin must be ≥ 1")
	}
	switch o.Output {
	case output.FormatText, output.FormatJSON, output.FormatJSONL:
	default:
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	if o.NoRecordsExitCode < 0 || o.NoRecordsExitCode > 255 {
		return errors.New("--no-records-exit-code must be between 0 and 255")
	}
	bp, err := dotbracket.ParseBracketPairs(o.Brackets...)
	if err != nil {
		return fmt.Errorf("--brackets: %w", err)
	}
	o.BracketPairs = bp
	return nil
}
