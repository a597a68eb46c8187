// Package utf8codec validates, decodes, encodes, and repairs UTF-8 byte
// streams independently of the standard library's unicode/utf8, which
// exposes neither the maximal-subpart resynchronization position nor the
// closed ucerr.Kind taxonomy this module threads through every engine.
//
// Grounded on original_source/src/validate.rs (leading-byte class
// predicates, per-sequence continuation-byte scan) and src/fix.rs (the
// validate-then-patch repair loop), reworked into a single decode state
// machine shared by Validate, Decoder, and Repair rather than the
// original's three separate passes, and corrected against spec.md where
// the original diverges: overlong detection (absent from validate.rs
// entirely) and maximal-subpart resync (fix.rs assumes every
// continuation run is either all-continuation or stops at the first
// non-continuation byte, which undercounts a truncated 4-byte sequence
// whose second byte is itself a valid leading byte).
package utf8codec

import (
	"github.com/boxesandglue/unitext/ucerr"
)

// Replacement is U+FFFD REPLACEMENT CHARACTER, encoded in UTF-8.
var Replacement = []byte{0xEF, 0xBF, 0xBD}

func isContinuation(b byte) bool {
	return b&0xC0 == 0x80
}

// seqLen returns the declared length of the sequence starting with lead,
// or 0 if lead can never start a sequence (either a stray continuation
// byte or one of the bytes 0xF5-0xFF that UTF-8 never uses). 0xC0 and
// 0xC1 are let through as ordinary 2-byte leads rather than rejected
// outright: every codepoint they could ever encode is below 0x80, so
// decodeAt's overlong check (cp < minForLen[n]) is what actually rejects
// them, the same path that catches any other overlong 2-byte sequence.
func seqLen(lead byte) int {
	switch {
	case lead <= 0x7F:
		return 1
	case lead>>5 == 0b110: // 110xxxxx
		return 2
	case lead>>4 == 0b1110:
		return 3
	case lead>>3 == 0b11110 && lead <= 0xF4: // excludes F5-F7, which can only overlong-encode > 10FFFF
		return 4
	default:
		return 0
	}
}

// decodeAt decodes the sequence starting at input[pos], returning the
// codepoint, its encoded length, and an error if the sequence is
// malformed. errOffset in the returned error is always pos.
func decodeAt(input []byte, pos int) (rune, int, *ucerr.Error) {
	lead := input[pos]
	if lead <= 0x7F {
		return rune(lead), 1, nil
	}
	if isContinuation(lead) {
		return 0, 0, ucerr.New(ucerr.UnexpectedContinuation, pos)
	}
	n := seqLen(lead)
	if n == 0 {
		return 0, 0, ucerr.New(ucerr.InvalidLeadingByte, pos)
	}

	if pos+n > len(input) {
		return 0, 0, ucerr.New(ucerr.IncompleteCharacter, pos)
	}
	for i := 1; i < n; i++ {
		if !isContinuation(input[pos+i]) {
			return 0, 0, ucerr.New(ucerr.IncompleteCharacter, pos)
		}
	}

	var cp rune
	switch n {
	case 2:
		cp = rune(lead&0x1F)<<6 | rune(input[pos+1]&0x3F)
	case 3:
		cp = rune(lead&0x0F)<<12 | rune(input[pos+1]&0x3F)<<6 | rune(input[pos+2]&0x3F)
	case 4:
		cp = rune(lead&0x07)<<18 | rune(input[pos+1]&0x3F)<<12 | rune(input[pos+2]&0x3F)<<6 | rune(input[pos+3]&0x3F)
	}

	minForLen := [5]rune{0, 0, 0x80, 0x800, 0x10000}
	if cp < minForLen[n] {
		return 0, 0, ucerr.New(ucerr.OverlongEncoding, pos)
	}
	if !ucerr.ValidCodepoint(cp) {
		return 0, 0, ucerr.New(ucerr.InvalidCodepoint, pos)
	}
	return cp, n, nil
}

// Validate reports whether input is well-formed UTF-8, returning the
// first error encountered (spec.md's validation entry point).
func Validate(input []byte) error {
	pos := 0
	for pos < len(input) {
		_, n, err := decodeAt(input, pos)
		if err != nil {
			return err
		}
		pos += n
	}
	return nil
}

// Decoder iterates over the codepoints of a byte slice, stopping at (and
// reporting) the first malformed sequence rather than silently
// substituting — callers that want substitution should use Repair first.
type Decoder struct {
	input []byte
	pos   int
}

// NewDecoder returns a Decoder over input, starting at offset 0.
func NewDecoder(input []byte) *Decoder {
	return &Decoder{input: input}
}

// Next returns the next codepoint and its byte width with ok=true. At the
// end of input it returns ok=false and a nil error (io.EOF-equivalent); on a
// malformed sequence it returns ok=false and a non-nil error.
func (d *Decoder) Next() (cp rune, width int, ok bool, err error) {
	if d.pos >= len(d.input) {
		return 0, 0, false, nil
	}
	cp, n, decErr := decodeAt(d.input, d.pos)
	if decErr != nil {
		return 0, 0, false, decErr
	}
	d.pos += n
	return cp, n, true, nil
}

// Offset returns the decoder's current byte offset into its input.
func (d *Decoder) Offset() int {
	return d.pos
}

// Encode appends the UTF-8 encoding of cp to dst and returns the result.
func Encode(dst []byte, cp rune) ([]byte, error) {
	if !ucerr.ValidCodepoint(cp) {
		return dst, ucerr.New(ucerr.InvalidCodepoint, -1)
	}
	switch {
	case cp <= 0x7F:
		return append(dst, byte(cp)), nil
	case cp <= 0x7FF:
		return append(dst, byte(0xC0|cp>>6), byte(0x80|cp&0x3F)), nil
	case cp <= 0xFFFF:
		return append(dst, byte(0xE0|cp>>12), byte(0x80|(cp>>6)&0x3F), byte(0x80|cp&0x3F)), nil
	default:
		return append(dst, byte(0xF0|cp>>18), byte(0x80|(cp>>12)&0x3F), byte(0x80|(cp>>6)&0x3F), byte(0x80|cp&0x3F)), nil
	}
}

// maximalSubpartLen finds how many of the bytes following a malformed
// lead byte still belong to its "maximal subpart" per the Unicode
// Standard's best-practice replacement algorithm (§3.9): continuation
// bytes are consumed only as long as they remain consistent with what the
// lead byte's declared length still expects, so a truncated 4-byte
// sequence whose second byte is itself a valid 2-byte lead stops
// resyncing after just the first byte, not after a whole continuation
// run (the bug left unfixed in fix.rs's resync loop).
func maximalSubpartLen(input []byte, pos int) int {
	lead := input[pos]
	n := seqLen(lead)
	if n == 0 {
		return 1 // stray continuation byte or unused lead byte: drop just it
	}
	i := 1
	for i < n && pos+i < len(input) && isContinuation(input[pos+i]) {
		i++
	}
	return i
}

// Repair returns input with every malformed subsequence replaced by a
// single U+FFFD, leaving well-formed stretches untouched (spec.md's
// repair entry point).
func Repair(input []byte) []byte {
	if Validate(input) == nil {
		return input
	}
	out := make([]byte, 0, len(input))
	pos := 0
	for pos < len(input) {
		_, n, err := decodeAt(input, pos)
		if err == nil {
			out = append(out, input[pos:pos+n]...)
			pos += n
			continue
		}
		out = append(out, Replacement...)
		pos += maximalSubpartLen(input, pos)
	}
	return out
}
