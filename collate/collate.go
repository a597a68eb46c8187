// Package collate builds UCA (Unicode Collation Algorithm) sort keys:
// byte strings whose lexicographic ordering matches Unicode's default
// multi-level collation order.
//
// The collation-element-array builder's longest-match-with-fallback shape
// is grounded on
// 2fed83e5_caddyserver-caddy__..._colltab-table.go's contraction trie
// calling convention, and the lazy Store-backed initialization plus
// per-level iteration/serialization shape on
// 45e6b8fd_askdba-vitess__go-mysql-collations-uca.go.go's
// Collation_utf8mb4_uca_0900 (sync.Once-guarded uca.Collation900,
// WeightString's per-level byte emission with a separator between
// levels) — adapted from vitess's fixed 0900 weight table plus runtime
// tailoring to this module's hand-curated Store-backed table with no
// tailoring support.
package collate

import (
	"github.com/boxesandglue/unitext/ucd"
	"github.com/boxesandglue/unitext/ucerr"
)

// VariableWeighting selects how collation elements marked Variable
// (whitespace and punctuation) are weighted (spec.md §4.7, §9).
type VariableWeighting int

const (
	// NonIgnorable: variable CEs keep all their weights unchanged.
	NonIgnorable VariableWeighting = iota
	// Blanked: variable CEs (and any primary-ignorable CEs that directly
	// follow them) contribute nothing at any level.
	Blanked
	// Shifted and ShiftTrimmed move variable CEs' primary weight to a
	// quaternary level; unsupported, see the decision recorded in
	// DESIGN.md's Open Question section.
	Shifted
	ShiftTrimmed
)

// Derived-weight base constants for codepoints with no explicit collation
// element, assigned by block per UTS #10 §10.1.
const (
	baseCJKUnifiedAndCompat  = 0xFB40
	baseOtherUnifiedIdeo     = 0xFB80
	baseTangut               = 0xFB00
	baseNushu                = 0xFB01
	baseKhitan               = 0xFB02
	baseUnassignedOther      = 0xFBC0
)

func derivedBase(cp rune) uint16 {
	switch {
	case (cp >= 0x4E00 && cp <= 0x9FFF) || (cp >= 0xF900 && cp <= 0xFAFF):
		return baseCJKUnifiedAndCompat
	case cp >= 0x17000 && cp <= 0x187FF, cp >= 0x18800 && cp <= 0x18AFF, cp >= 0x18D00 && cp <= 0x18D7F:
		return baseTangut
	case cp >= 0x18B00 && cp <= 0x18CFF:
		return baseKhitan
	case cp >= 0x1B170 && cp <= 0x1B2FF:
		return baseNushu
	case cp >= 0x3400 && cp <= 0x4DBF, cp >= 0x20000 && cp <= 0x2A6DF, cp >= 0x2A700 && cp <= 0x2EBEF:
		return baseOtherUnifiedIdeo
	default:
		return baseUnassignedOther
	}
}

// deriveWeights synthesizes the two collation elements UTS #10 §10.1
// specifies for a codepoint with no entry in the collation table: an
// unassigned ideograph (or any other unassigned codepoint) collates
// immediately after all explicitly weighted codepoints in its block,
// ordered among themselves by codepoint value.
func deriveWeights(cp rune) []ucd.Element {
	base := derivedBase(cp)
	aaaa := base + uint16(cp>>15)
	bbbb := (uint16(cp) & 0x7FFF) | 0x8000
	return []ucd.Element{
		{Weights: [3]uint16{aaaa, 0x0020, 0x0002}},
		{Weights: [3]uint16{bbbb, 0x0000, 0x0000}},
	}
}

// buildCEA constructs the collation element array for cps, resolving
// contractions (contiguous, then the single-intervening-combining-mark
// discontiguous case per spec.md §4.7.b) before falling back to a lone
// codepoint's table entry or, failing that, its derived weights.
func buildCEA(store *ucd.Store, cps []rune) []ucd.Element {
	var ces []ucd.Element
	i := 0
	for i < len(cps) {
		if elems, consumed, ok := matchContraction(store, cps, i); ok {
			ces = append(ces, elems...)
			i += consumed
			continue
		}
		if elems, consumed, ok := matchDiscontiguous(store, cps, i); ok {
			ces = append(ces, elems...)
			i += consumed
			continue
		}
		if elems, ok := store.CollationSingle(cps[i]); ok {
			ces = append(ces, elems...)
			i++
			continue
		}
		ces = append(ces, deriveWeights(cps[i])...)
		i++
	}
	return ces
}

// matchContraction finds the longest contiguous contraction starting at
// i using the trie's three-valued result: it keeps extending the
// candidate key while the trie reports PartialMatch or Match, remembering
// the longest exact Match seen, and stops on NoMatch.
func matchContraction(store *ucd.Store, cps []rune, i int) ([]ucd.Element, int, bool) {
	trie := store.Contractions()
	var bestElems []ucd.Element
	bestLen := 0
	for end := i + 1; end <= len(cps); end++ {
		res := trie.Get(cps[i:end])
		switch res.Kind {
		case ucd.NoMatch:
			end = len(cps) + 1 // force exit
		case ucd.Match:
			bestElems = res.Value
			bestLen = end - i
		case ucd.PartialMatch:
			// keep extending
		}
		if res.Kind == ucd.NoMatch {
			break
		}
	}
	if bestLen == 0 {
		return nil, 0, false
	}
	return bestElems, bestLen, true
}

// matchDiscontiguous handles the case where a single non-starter
// (combining mark) sits between a base codepoint and the codepoint that
// would complete a contraction with it — the mark is pulled out of the
// stream, the contraction is matched around it, and the mark's own
// weight is appended immediately after (spec.md §4.7.b). The completing
// codepoint must be a non-starter with a higher CCC than the mark;
// otherwise the mark blocks it and no match is made. Sequences with
// more than one intervening mark are not attempted.
func matchDiscontiguous(store *ucd.Store, cps []rune, i int) ([]ucd.Element, int, bool) {
	if i+2 >= len(cps) {
		return nil, 0, false
	}
	mark := cps[i+1]
	markCCC := store.CCC(mark)
	if markCCC == 0 {
		return nil, 0, false
	}
	if c := store.CCC(cps[i+2]); c == 0 || c <= markCCC {
		return nil, 0, false
	}
	candidate := []rune{cps[i], cps[i+2]}
	res := store.Contractions().Get(candidate)
	if res.Kind != ucd.Match {
		return nil, 0, false
	}
	elems := append([]ucd.Element{}, res.Value...)
	if markElems, ok := store.CollationSingle(mark); ok {
		elems = append(elems, markElems...)
	} else {
		elems = append(elems, deriveWeights(mark)...)
	}
	return elems, 3, true
}

// applyVariableWeighting returns the CEA adjusted according to vw. Under
// Blanked, variable collation elements are dropped outright, as is every
// primary-ignorable element that follows one until the next element with
// a non-zero primary weight (spec.md §4.7). Dropping has the same effect
// on the key as zeroing, since SortKey skips zero weights.
func applyVariableWeighting(ces []ucd.Element, vw VariableWeighting) ([]ucd.Element, error) {
	switch vw {
	case NonIgnorable:
		return ces, nil
	case Blanked:
		out := make([]ucd.Element, 0, len(ces))
		blanking := false
		for _, ce := range ces {
			if ce.Variable {
				blanking = true
				continue
			}
			if blanking && ce.Weights[0] == 0 {
				continue
			}
			blanking = false
			out = append(out, ce)
		}
		return out, nil
	case Shifted, ShiftTrimmed:
		return nil, ucerr.NewUnsupported("shifted variable weighting")
	default:
		return nil, ucerr.NewUnsupported("unknown variable weighting")
	}
}

// SortKey returns the UCA sort key for s: primary weights, then
// secondary, then tertiary, each level terminated by a single zero byte
// separator — including after the last level, since tests depend on the
// trailing separator being present (spec.md §4.7 step 3) — with zero
// weights within a level omitted.
func SortKey(s string, vw VariableWeighting) ([]byte, error) {
	store, err := ucd.Default()
	if err != nil {
		return nil, err
	}
	ces, err := applyVariableWeighting(buildCEA(store, []rune(s)), vw)
	if err != nil {
		return nil, err
	}

	var out []byte
	for level := 0; level < 3; level++ {
		for _, ce := range ces {
			w := ce.Weights[level]
			if w == 0 {
				continue
			}
			out = append(out, byte(w>>8), byte(w))
		}
		out = append(out, 0x00)
	}
	return out, nil
}

// Compare returns -1, 0, or 1 according to the UCA sort-key ordering of
// a and b under the given variable weighting.
func Compare(a, b string, vw VariableWeighting) (int, error) {
	ka, err := SortKey(a, vw)
	if err != nil {
		return 0, err
	}
	kb, err := SortKey(b, vw)
	if err != nil {
		return 0, err
	}
	for i := 0; i < len(ka) && i < len(kb); i++ {
		if ka[i] != kb[i] {
			if ka[i] < kb[i] {
				return -1, nil
			}
			return 1, nil
		}
	}
	switch {
	case len(ka) < len(kb):
		return -1, nil
	case len(ka) > len(kb):
		return 1, nil
	default:
		return 0, nil
	}
}
