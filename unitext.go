// Package unitext is a byte-level façade over the core's engines:
// UTF-8 validation/repair, canonical normalization, default case
// operations, UCA sort keys, and default grapheme cluster segmentation.
//
// Every engine (ucd, utf8codec, norm, casefold, grapheme, collate) is a
// pure function of the shared read-only ucd.Store, so unlike the
// teacher's Shape(font, buf, features) — which caches a *Shaper per
// *Font because building one is expensive per font — this façade needs
// no per-call cache of its own; it composes the engines directly and
// lets ucd.Default's single-flight cache do the one expensive thing.
package unitext

import (
	"github.com/boxesandglue/unitext/casefold"
	"github.com/boxesandglue/unitext/collate"
	"github.com/boxesandglue/unitext/grapheme"
	"github.com/boxesandglue/unitext/norm"
	"github.com/boxesandglue/unitext/utf8codec"
)

// Validate reports whether b is well-formed UTF-8.
func Validate(b []byte) error {
	return utf8codec.Validate(b)
}

// Repair returns b with every malformed UTF-8 subsequence replaced by
// U+FFFD.
func Repair(b []byte) []byte {
	return utf8codec.Repair(b)
}

// Decode returns the codepoints encoded in b, stopping at the first
// malformed sequence.
func Decode(b []byte) ([]rune, error) {
	d := utf8codec.NewDecoder(b)
	var out []rune
	for {
		cp, _, ok, err := d.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		out = append(out, cp)
	}
	return out, nil
}

// Encode returns the UTF-8 encoding of cps.
func Encode(cps []rune) ([]byte, error) {
	var out []byte
	for _, cp := range cps {
		var err error
		out, err = utf8codec.Encode(out, cp)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Form re-exports norm.Form so callers need not import the norm package
// for QuickCheck alone.
type Form = norm.Form

const (
	NFD = norm.NFD
	NFC = norm.NFC
)

// QuickCheck reports whether s is already normalized to the given form.
func QuickCheck(s string, form Form) (string, error) {
	v, err := norm.QuickCheck(s, form)
	if err != nil {
		return "", err
	}
	switch v {
	case 0:
		return "yes", nil
	case 1:
		return "no", nil
	default:
		return "maybe", nil
	}
}

// ToNFD returns the canonical decomposition of s.
func ToNFD(s string) (string, error) {
	return norm.ToNFD(s)
}

// ToNFC returns the canonical composition of s.
func ToNFC(s string) (string, error) {
	return norm.ToNFC(s)
}

// ToNFCBytes runs the byte-in/byte-out normalization pipeline: decode b as
// UTF-8, canonically compose the result, and re-encode (spec.md §6,
// mirroring the teacher's Shape(font, buf) convenience wrapper over its
// lower-level engine calls).
func ToNFCBytes(b []byte) ([]byte, error) {
	cps, err := Decode(b)
	if err != nil {
		return nil, err
	}
	composed, err := norm.ToNFC(string(cps))
	if err != nil {
		return nil, err
	}
	return Encode([]rune(composed))
}

// ToLowercase returns the default-case lowercase mapping of s.
func ToLowercase(s string) (string, error) {
	return casefold.ToLower(s)
}

// ToUppercase returns the default-case uppercase mapping of s.
func ToUppercase(s string) (string, error) {
	return casefold.ToUpper(s)
}

// CaseFold returns the full default case-folded form of s.
func CaseFold(s string) (string, error) {
	return casefold.Fold(s)
}

// Ordering re-exports casefold.Ordering.
type Ordering = casefold.Ordering

const (
	Less    = casefold.Less
	Equal   = casefold.Equal
	Greater = casefold.Greater
)

// CanonicalCaselessMatch performs a lexicographic comparison of a and b
// under canonical caseless matching.
func CanonicalCaselessMatch(a, b string) (Ordering, error) {
	return casefold.CanonicalCaselessMatch(a, b)
}

// Graphemes splits s into its default grapheme clusters.
func Graphemes(s string) ([]string, error) {
	return grapheme.Segments(s)
}

// VariableWeighting re-exports collate.VariableWeighting.
type VariableWeighting = collate.VariableWeighting

const (
	NonIgnorable = collate.NonIgnorable
	Blanked      = collate.Blanked
	Shifted      = collate.Shifted
	ShiftTrimmed = collate.ShiftTrimmed
)

// SortKey returns the UCA sort key for s under the given variable
// weighting.
func SortKey(s string, vw VariableWeighting) ([]byte, error) {
	return collate.SortKey(s, vw)
}
