// internal/cli/usage.go
package cli

import (
	"flag"
	"fmt"
	"io"

	"rnahelix/internal/version"
)

func installUsage(fs *flag.FlagSet, name string) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – helix statistics for RNA-RNA interaction predictions\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s [options] results.csv [more.csv | dir | glob ...]\n", name)
		fmt.Fprintf(out, "  %s [options] -S '((((..&..))))'\n", name)

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -S, --structure string      Dot-bracket structure to analyse (repeatable)")
		fmt.Fprintf(out, "      --column string         Structure column of the result tables [%s]\n", def("column"))
		fmt.Fprintf(out, "      --id-column string      Id column reported with each record [%s]\n", def("id-column"))
		fmt.Fprintf(out, "      --separator string      Column separator, one character or 'tab' [%s]\n", def("separator"))
		fmt.Fprintf(out, "      --top int               Rows analysed per table (0=all) [%s]\n", def("top"))

		fmt.Fprintln(out, "\nAnalysis:")
		fmt.Fprintf(out, "  -b, --bulge int             Max bulge size inside a helix [%s]\n", def("bulge"))
		fmt.Fprintf(out, "      --brackets string       Bracket pair, repeatable; first is primary [%s]\n", def("brackets"))

		fmt.Fprintln(out, "\nPerformance:")
		fmt.Fprintf(out, "  -t, --threads int           Worker threads (0=physical cores) [%s]\n", def("threads"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: text | json | jsonl [%s]\n", def("output"))
		fmt.Fprintf(out, "      --summary               Write histograms instead of records [%s]\n", def("summary"))
		fmt.Fprintf(out, "      --max-helix-length int  Helix length cut-off of the length histogram (0=none) [%s]\n", def("max-helix-length"))
		fmt.Fprintf(out, "      --interaction-bin int   Bin width of the interaction-length histogram [%s]\n", def("interaction-bin"))
		fmt.Fprintf(out, "      --sort                  Sort records by source and row [%s]\n", def("sort"))
		fmt.Fprintf(out, "      --no-header             Suppress header lines [%s]\n", def("no-header"))
		fmt.Fprintf(out, "      --no-records-exit-code int  Exit code when nothing was analysed [%s]\n", def("no-records-exit-code"))

		fmt.Fprintln(out, "\nFailures:")
		fmt.Fprintf(out, "      --strict                Stop at the first malformed structure [%s]\n", def("strict"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress per-record warnings [%s]\n", def("quiet"))
		fmt.Fprintf(out, "      --no-color              Disable coloured warnings [%s]\n", def("no-color"))
		fmt.Fprintln(out, "      --examples              Show quickstart examples and exit")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}

// PrintExamples prints a tiny, focused quickstart.
func PrintExamples(out io.Writer, name string) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s — quickstart\n\n", name)
	_, _ = fmt.Fprintln(out, "Helix lengths of the top 200 predictions of every table in a run directory:")
	_, _ = fmt.Fprintf(out, "  %s --bulge 1 output/run42/\n", name)
	_, _ = fmt.Fprintln(out, "\nHistograms as JSON, pseudoknots written with []:")
	_, _ = fmt.Fprintf(out, "  %s --summary -o json --brackets '()' --brackets '[]' output/run42/*.csv\n", name)
	_, _ = fmt.Fprintln(out, "\nA single structure:")
	_, _ = fmt.Fprintf(out, "  %s -S '((((..((&))..))))' -b 2\n", name)
	_, _ = fmt.Fprintln(out, "\nTip: run with --help for all flags.")
}
