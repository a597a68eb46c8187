// Package norm implements canonical Unicode normalization: decomposition
// (NFD), composition (NFC), and the per-string quick-check fast path that
// lets callers skip the full algorithm on already-normalized input.
//
// The three-phase pipeline (decompose, canonically reorder, recompose) is
// adapted from the teacher's ot/normalize.go Hangul/combining-mark
// handling inside text shaping, generalized away from glyph/font
// awareness: shaping needs normalization only as a pre-pass before glyph
// lookup, this package implements it as the end in itself.
package norm

import (
	"sort"

	"github.com/boxesandglue/unitext/ucd"
)

// Form selects which normalization form QuickCheck evaluates against.
type Form int

const (
	NFD Form = iota
	NFC
)

// QuickCheck reports whether s is already guaranteed to be in the given
// form (Yes), guaranteed not to be (No), or requires the full algorithm to
// decide (Maybe) — the fast path from spec.md §4.4.
func QuickCheck(s string, form Form) (ucd.QuickCheckVal, error) {
	store, err := ucd.Default()
	if err != nil {
		return ucd.QCYes, err
	}
	result := ucd.QCYes
	lastCCC := uint8(0)
	for _, cp := range s {
		ccc := store.CCC(cp)
		if ccc != 0 && lastCCC > ccc {
			// Out of canonical order: neither form's quick-check can be
			// Yes, since reordering (which both forms require) would
			// change the string.
			return ucd.QCNo, nil
		}
		lastCCC = ccc

		var v ucd.QuickCheckVal
		if form == NFD {
			v = store.NFDQuickCheck(cp)
		} else {
			v = store.NFCQuickCheck(cp)
		}
		switch v {
		case ucd.QCNo:
			return ucd.QCNo, nil
		case ucd.QCMaybe:
			result = ucd.QCMaybe
		}
	}
	return result, nil
}

// ToNFD returns the canonical decomposition of s: every composed
// codepoint fully expanded, then canonically reordered by combining
// class (spec.md §4.4).
func ToNFD(s string) (string, error) {
	store, err := ucd.Default()
	if err != nil {
		return "", err
	}
	decomposed := decomposeAll(store, []rune(s))
	reorder(store, decomposed)
	return string(decomposed), nil
}

// ToNFC returns the canonical composition of s: NFD followed by greedy
// recomposition of starter+combining-mark and Hangul Jamo sequences,
// subject to the canonical-ordering blocking rule (spec.md §4.4).
func ToNFC(s string) (string, error) {
	store, err := ucd.Default()
	if err != nil {
		return "", err
	}
	decomposed := decomposeAll(store, []rune(s))
	reorder(store, decomposed)
	composed := recompose(store, decomposed)
	return string(composed), nil
}

// decomposeAll recursively expands every codepoint in input to its fully
// decomposed form, including the Unicode §3.12 Hangul Syllable arithmetic
// decomposition (not table-driven, since the mapping is derived, not
// enumerable).
func decomposeAll(store *ucd.Store, input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, cp := range input {
		out = append(out, decomposeOne(store, cp)...)
	}
	return out
}

func decomposeOne(store *ucd.Store, cp rune) []rune {
	if l, v, t, ok := decomposeHangul(cp); ok {
		if t == 0 {
			return []rune{l, v}
		}
		return []rune{l, v, t}
	}
	mapping, ok := store.Decomposition(cp)
	if !ok {
		return []rune{cp}
	}
	out := make([]rune, 0, len(mapping))
	for _, m := range mapping {
		out = append(out, decomposeOne(store, m)...)
	}
	return out
}

// reorder applies the canonical ordering algorithm in place: within each
// maximal run of non-starters (CCC != 0) following a starter, stable-sort
// by combining class ascending (spec.md §4.4). A stable sort is required
// because codepoints sharing a combining class must not be transposed.
func reorder(store *ucd.Store, buf []rune) {
	i := 0
	for i < len(buf) {
		if store.CCC(buf[i]) == 0 {
			i++
			continue
		}
		j := i
		for j < len(buf) && store.CCC(buf[j]) != 0 {
			j++
		}
		run := buf[i:j]
		sort.SliceStable(run, func(a, b int) bool {
			return store.CCC(run[a]) < store.CCC(run[b])
		})
		i = j
	}
}

// recompose implements the Unicode canonical composition algorithm
// (UAX #15): scan left to right, maintaining the index of the last
// starter written to the output and the combining class of the character
// most recently appended since that starter. A candidate character
// composes with the starter only if nothing of equal or higher combining
// class has intervened — that single condition realizes all three
// blocking-rule bullets in spec.md §4.4: a new starter resets the
// candidate pool, an intervening non-starter of CCC >= the candidate's
// blocks it, and a run of strictly increasing CCC can compose in sequence.
func recompose(store *ucd.Store, buf []rune) []rune {
	if len(buf) == 0 {
		return buf
	}
	out := make([]rune, 0, len(buf))
	out = append(out, buf[0])
	starterIdx := 0
	lastClass := int(store.CCC(buf[0]))
	if lastClass == 0 {
		lastClass = -1
	}

	for i := 1; i < len(buf); i++ {
		c := buf[i]
		cc := int(store.CCC(c))

		if lastClass < cc {
			if composed, ok := compose(store, out[starterIdx], c); ok {
				out[starterIdx] = composed
				continue
			}
		}

		out = append(out, c)
		if cc == 0 {
			starterIdx = len(out) - 1
			lastClass = -1
		} else {
			lastClass = cc
		}
	}
	return out
}

// compose returns the canonical composite of (a, b), trying the table of
// primary composites first and the Hangul Jamo arithmetic second.
func compose(store *ucd.Store, a, b rune) (rune, bool) {
	if c, ok := store.PrimaryComposite(a, b); ok {
		return c, true
	}
	if c, ok := composeHangulLV(a, b); ok {
		return c, true
	}
	if c, ok := composeHangulLVT(a, b); ok {
		return c, true
	}
	return 0, false
}
