package cli

import "flag"

// NewFlagSet returns a clean FlagSet with ContinueOnError and the shared
// usage text installed.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	installUsage(fs, name)
	return fs
}
