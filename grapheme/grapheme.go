// Package grapheme implements default (non-extended-emoji-tailored)
// grapheme cluster segmentation per UAX #29 rules GB1-GB13.
//
// Grounded on original_source/src/segmentation.rs's GraphemeIter: the
// same lookahead-one-codepoint state machine and regional-indicator
// run-count handling for GB12/GB13, translated from a Rust Iterator into
// a Go iterator with an explicit Next method, and extended with the GB11
// emoji-ZWJ rule and GB9a/GB9b cases the original's rule table is missing
// compared to spec.md §4.6.
package grapheme

import "github.com/boxesandglue/unitext/ucd"

// Iterator yields successive grapheme clusters from a codepoint slice.
type Iterator struct {
	store *ucd.Store
	cps   []rune
	pos   int
}

// NewIterator returns an Iterator over cps using the given UCD store.
func NewIterator(store *ucd.Store, cps []rune) *Iterator {
	return &Iterator{store: store, cps: cps}
}

// Next returns the next grapheme cluster, or ok=false when the input is
// exhausted.
func (it *Iterator) Next() (cluster []rune, ok bool) {
	if it.pos >= len(it.cps) {
		return nil, false
	}
	if it.pos == len(it.cps)-1 {
		start := it.pos
		it.pos++
		return it.cps[start:], true
	}

	start := it.pos
	riCount := 0
	for it.pos < len(it.cps)-1 {
		cp := it.store.GCB(it.cps[it.pos])
		next := it.store.GCB(it.cps[it.pos+1])

		if cp == ucd.GCBRI {
			riCount++
		} else {
			riCount = 0
		}

		if boundaryAfter(cp, next, riCount) {
			break
		}
		it.pos++
	}
	it.pos++
	return it.cps[start:it.pos], true
}

// boundaryAfter decides whether a grapheme cluster boundary exists
// between a codepoint with break property cur and the following
// codepoint with break property next, given the count of consecutive
// Regional_Indicator codepoints (including cur, if cur is RI) seen so far
// in the current run.
func boundaryAfter(cur, next ucd.GraphemeClusterBreak, riCount int) bool {
	switch {
	case cur == ucd.GCBCR && next == ucd.GCBLF: // GB3
		return false
	case cur == ucd.GCBCN || cur == ucd.GCBCR || cur == ucd.GCBLF: // GB4
		return true
	case next == ucd.GCBCN || next == ucd.GCBCR || next == ucd.GCBLF: // GB5
		return true
	case cur == ucd.GCBL && (next == ucd.GCBL || next == ucd.GCBV || next == ucd.GCBLV || next == ucd.GCBLVT): // GB6
		return false
	case (cur == ucd.GCBLV || cur == ucd.GCBV) && (next == ucd.GCBV || next == ucd.GCBT): // GB7
		return false
	case (cur == ucd.GCBLVT || cur == ucd.GCBT) && next == ucd.GCBT: // GB8
		return false
	case next == ucd.GCBEX || next == ucd.GCBZWJ: // GB9
		return false
	case next == ucd.GCBSM: // GB9a
		return false
	case cur == ucd.GCBPP: // GB9b
		return false
	case cur == ucd.GCBZWJ && (next == ucd.GCBEB || next == ucd.GCBEBG): // GB11 (ZWJ x Extended_Pictographic)
		return false
	case cur == ucd.GCBRI && next == ucd.GCBRI: // GB12/GB13
		return riCount%2 == 0
	default: // GB999
		return true
	}
}

// Segments splits s into its default grapheme clusters and returns each
// as a substring.
func Segments(s string) ([]string, error) {
	store, err := ucd.Default()
	if err != nil {
		return nil, err
	}
	cps := []rune(s)
	it := NewIterator(store, cps)
	var out []string
	for {
		cluster, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, string(cluster))
	}
	return out, nil
}
