// Package pipeline fans table records out to an Analyzer on a worker pool
// and hands every result, failed or not, to a visit callback.
//
// The only contract to implement is Analyzer. Records are independent, so
// workers share nothing but the read-only Analyzer.
package pipeline
