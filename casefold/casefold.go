// Package casefold implements the default (non-locale-specific) case
// operations: full lowercasing, full uppercasing, full case folding, and
// canonical caseless matching.
//
// Grounded on original_source/src/case.rs's to_lowercase/is_final_sigma,
// translated directly from its skip_while-over-case-ignorable scan to an
// explicit index walk, and extended to uppercase/fold/caseless-match per
// spec.md (the original only implements lowercasing).
package casefold

import (
	"github.com/boxesandglue/unitext/norm"
	"github.com/boxesandglue/unitext/ucd"
)

// ToLower returns the full default-case lowercase mapping of s, applying
// the U+0130 special expansion and the final-sigma context rule for
// U+03A3 (spec.md §4.5).
func ToLower(s string) (string, error) {
	store, err := ucd.Default()
	if err != nil {
		return "", err
	}
	cps := []rune(s)
	out := make([]rune, 0, len(cps))
	for i, cp := range cps {
		switch cp {
		case 0x0130:
			out = append(out, 0x0069, 0x0307)
		case 0x03A3:
			if isFinalSigma(store, cps, i) {
				out = append(out, 0x03C2)
			} else {
				out = append(out, 0x03C3)
			}
		default:
			if lower, ok := store.SimpleLowercase(cp); ok {
				out = append(out, lower)
			} else {
				out = append(out, cp)
			}
		}
	}
	return string(out), nil
}

// isFinalSigma implements Unicode Table 3-17's Final_Sigma condition: C is
// preceded by a cased letter then zero or more case-ignorable characters,
// and C is not followed by zero or more case-ignorable characters then a
// cased letter.
func isFinalSigma(store *ucd.Store, cps []rune, pos int) bool {
	prevCased := false
	for i := pos - 1; i >= 0; i-- {
		if store.CaseIgnorable(cps[i]) {
			continue
		}
		prevCased = store.Cased(cps[i])
		break
	}
	if !prevCased {
		return false
	}
	nextCased := false
	for i := pos + 1; i < len(cps); i++ {
		if store.CaseIgnorable(cps[i]) {
			continue
		}
		nextCased = store.Cased(cps[i])
		break
	}
	return !nextCased
}

// ToUpper returns the full default-case uppercase mapping of s (spec.md
// §4.5). Unlike ToLower, no context-sensitive special case is defined for
// default (non-Turkic) uppercasing.
func ToUpper(s string) (string, error) {
	store, err := ucd.Default()
	if err != nil {
		return "", err
	}
	out := make([]rune, 0, len(s))
	for _, cp := range s {
		if upper, ok := store.FullUppercase(cp); ok {
			out = append(out, upper...)
		} else {
			out = append(out, cp)
		}
	}
	return string(out), nil
}

// Fold returns the full (C+F) case-folded form of s used for
// case-insensitive comparison (spec.md §4.5). Precomposed Greek letters
// carrying an iota subscript (ypogegrammeni) are decomposed one level
// before folding, so e.g. U+1FBC folds the same as its expansion
// U+0391 U+0345 would.
func Fold(s string) (string, error) {
	store, err := ucd.Default()
	if err != nil {
		return "", err
	}
	out := make([]rune, 0, len(s))
	for _, cp := range s {
		out = append(out, foldOne(store, cp)...)
	}
	return string(out), nil
}

func foldOne(store *ucd.Store, cp rune) []rune {
	if mapping, ok := store.Decomposition(cp); ok && len(mapping) == 2 && mapping[1] == 0x0345 {
		result := make([]rune, 0, 2)
		result = append(result, foldOne(store, mapping[0])...)
		result = append(result, foldOne(store, 0x0345)...)
		return result
	}
	if fold, ok := store.FullCaseFold(cp); ok {
		return fold
	}
	return []rune{cp}
}

// Ordering is the result of a three-way lexicographic comparison
// (spec.md §4.5's Less/Equal/Greater).
type Ordering int

const (
	Less Ordering = iota - 1
	Equal
	Greater
)

// CanonicalCaselessMatch performs a lexicographic comparison of a and b
// under canonical caseless matching: NFD, case fold, NFD again (spec.md
// §4.5's composed definition — folding a multi-codepoint expansion can
// itself introduce a composable sequence, so the result is re-decomposed
// before comparing).
func CanonicalCaselessMatch(a, b string) (Ordering, error) {
	af, err := canonicalCaselessKey(a)
	if err != nil {
		return Equal, err
	}
	bf, err := canonicalCaselessKey(b)
	if err != nil {
		return Equal, err
	}
	switch {
	case af < bf:
		return Less, nil
	case af > bf:
		return Greater, nil
	default:
		return Equal, nil
	}
}

func canonicalCaselessKey(s string) (string, error) {
	d1, err := norm.ToNFD(s)
	if err != nil {
		return "", err
	}
	folded, err := Fold(d1)
	if err != nil {
		return "", err
	}
	return norm.ToNFD(folded)
}
