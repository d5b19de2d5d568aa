// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"rnahelix/internal/cli"
	"rnahelix/internal/cmdutil"
	"rnahelix/internal/output"
	"rnahelix/internal/pipeline"
	"rnahelix/internal/stats"
	"rnahelix/internal/table"
	"rnahelix/internal/version"
	"rnahelix/internal/writers"
	"rnahelix/pkg/api"
)

const toolName = "rnahelix"

// Exit codes besides 0 and the configurable no-records code.
const (
	exitUsage     = 2
	exitWrite     = 3
	exitMalformed = 4
	exitCancelled = 130
)

// InlineSource is the Source of records given with --structure.
const InlineSource = "structure"

var errMalformed = errors.New("malformed structure")

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriterSize(stdout, 64<<10)
	flush := func(code int) int {
		if err := outw.Flush(); writers.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return exitWrite
		}
		return code
	}

	fs := cli.NewFlagSet(toolName)
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, cli.ErrPrintedAndExitOK):
			cli.PrintExamples(outw, toolName)
			return flush(0)
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
			return flush(0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flush(exitUsage)
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", toolName, version.Version)
		return flush(0)
	}
	if opts.NoColor {
		cmdutil.DisableColor()
	}
	errw := cmdutil.LockedWriter(stderr)

	tables, err := table.ExpandInputs(opts.Tables)
	if err != nil {
		cmdutil.Errorf(errw, "%v", err)
		return exitUsage
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	threads := cmdutil.Threads(opts.Threads)
	acc := stats.New(opts.StatsConfig())
	analysed := 0

	// Record sink: buffered for --sort and json, streamed otherwise.
	streaming := !opts.Summary && !opts.Sort && opts.Output != output.FormatJSON
	var (
		buffered []api.RecordV1
		recCh    chan<- api.RecordV1
		writeErr <-chan error
	)
	if streaming {
		recCh, writeErr = startStream(opts.Output, opts.Header, outw, threads*4, cancel)
	}

	visit := func(r pipeline.Result) error {
		if r.Err != nil {
			acc.Fail()
			if opts.Strict {
				cmdutil.Errorf(errw, "%s: %v", r.Key(), r.Err)
			} else {
				cmdutil.Warnf(errw, opts.Quiet, "%s: %v", r.Key(), r.Err)
			}
		} else {
			acc.Add(r.Analysis)
			analysed++
		}
		if !opts.Summary {
			v := output.ToAPIRecord(r.Record, r.Analysis, r.Err)
			if streaming {
				select {
				case recCh <- v:
				case <-ctx.Done():
					return ctx.Err()
				}
			} else {
				buffered = append(buffered, v)
			}
		}
		if r.Err != nil && opts.Strict {
			return fmt.Errorf("%w at %s", errMalformed, r.Key())
		}
		return nil
	}

	feed := func(emit func(table.Record) error) error {
		for i, s := range opts.Structures {
			if err := emit(table.Record{Source: InlineSource, Row: i + 1, Structure: s}); err != nil {
				return err
			}
		}
		for _, path := range tables {
			recs, err := table.ReadStructures(path, opts.TableOptions())
			if err != nil {
				cmdutil.Warnf(errw, opts.Quiet, "skipping table: %v", err)
				continue
			}
			for _, rec := range recs {
				if err := emit(rec); err != nil {
					return err
				}
			}
		}
		return nil
	}

	an := pipeline.DotBracket{Brackets: opts.BracketPairs, Bulge: opts.Bulge}
	runErr := pipeline.ForEachResult(ctx, pipeline.Config{Threads: threads}, feed, an, visit)

	if streaming {
		close(recCh)
		if werr := <-writeErr; writers.IsBrokenPipe(werr) {
			return 0
		} else if werr != nil {
			_, _ = fmt.Fprintln(stderr, werr)
			return exitWrite
		}
	}

	switch {
	case runErr == nil:
	case errors.Is(runErr, errMalformed):
		// Emit what was collected so far, then fail.
		if !streaming && !opts.Summary {
			_ = writeBuffered(outw, opts, buffered)
		}
		return flush(exitMalformed)
	case parent.Err() != nil:
		_ = outw.Flush()
		return exitCancelled
	default:
		_, _ = fmt.Fprintln(stderr, runErr)
		return flush(exitWrite)
	}

	var werr error
	if opts.Summary {
		werr = writers.WriteSummary(opts.Output, outw, output.ToAPISummary(acc.Summary()), opts.Header)
	} else if !streaming {
		werr = writeBuffered(outw, opts, buffered)
	}
	if writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return exitWrite
	}

	if analysed == 0 {
		return flush(opts.NoRecordsExitCode)
	}
	return flush(0)
}

func writeBuffered(w io.Writer, opts cli.Options, list []api.RecordV1) error {
	if opts.Sort {
		output.SortRecords(list)
	}
	return writers.WriteRecords(opts.Output, w, list, opts.Header)
}

// startStream starts the writer goroutine for text or JSONL streaming.
// A failed text writer cancels the run and drains the channel.
func startStream(format string, header bool, w io.Writer, bufSize int, cancel context.CancelFunc) (chan<- api.RecordV1, <-chan error) {
	if format == output.FormatJSONL {
		return writers.StartRecordJSONLWriter(w, bufSize)
	}
	in := make(chan api.RecordV1, bufSize)
	done := make(chan error, 1)
	go func() {
		werr := output.StreamText(w, in, header)
		if werr != nil {
			cancel()
			for range in {
			}
		}
		done <- werr
	}()
	return in, done
}
