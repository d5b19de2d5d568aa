// internal/table/inputs.go
package table

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// skipMarkers are substrings of file names that never hold result tables
// (resource logs and benchmark summaries written next to them).
var skipMarkers = []string{"memoryUsage", "runTime", "benchmark", ".txt"}

// IsResultTable reports whether a file found in a result directory should be read.
func IsResultTable(name string) bool {
	base := filepath.Base(name)
	for _, m := range skipMarkers {
		if strings.Contains(base, m) {
			return false
		}
	}
	return true
}

// ExpandInputs replaces directories by the result tables they contain.
// Plain files and "-" are passed through untouched.
func ExpandInputs(paths []string) ([]string, error) {
	var out []string
	for _, p := range paths {
		if p == "-" {
			out = append(out, p)
			continue
		}
		st, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !st.IsDir() {
			out = append(out, p)
			continue
		}
		ents, err := os.ReadDir(p)
		if err != nil {
			return nil, err
		}
		var files []string
		for _, e := range ents {
			if e.IsDir() || !IsResultTable(e.Name()) {
				continue
			}
			files = append(files, filepath.Join(p, e.Name()))
		}
		sort.Strings(files)
		out = append(out, files...)
	}
	return out, nil
}
