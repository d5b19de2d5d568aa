// internal/writers/jsonl.go
package writers

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"

	"rnahelix/pkg/api"
)

// Reuse a 64 KiB buffered writer across JSONL writers to avoid per-writer mallocs.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// StartRecordJSONLWriter streams each record as one JSON line (v1). The
// returned error channel yields exactly one value once in is closed or an
// encode fails. Broken pipes on the final flush are not reported.
func StartRecordJSONLWriter(out io.Writer, bufSize int) (chan<- api.RecordV1, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan api.RecordV1, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bwPool.Get().(*bufio.Writer)
		bw.Reset(out)
		defer func() {
			bw.Reset(io.Discard)
			bwPool.Put(bw)
		}()

		enc := json.NewEncoder(bw)
		for v := range in {
			if err := enc.Encode(v); err != nil {
				// Drain so senders never block on a dead writer.
				for range in {
				}
				done <- err
				return
			}
		}
		if err := bw.Flush(); err != nil && !IsBrokenPipe(err) {
			done <- err
			return
		}
		done <- nil
	}()

	return in, done
}

// WriteJSONL writes list as JSON lines.
func WriteJSONL(w io.Writer, list []api.RecordV1) error {
	in, done := StartRecordJSONLWriter(w, len(list))
	for _, r := range list {
		in <- r
	}
	close(in)
	return <-done
}
