package utf8codec

import (
	"bytes"
	"testing"

	"github.com/boxesandglue/unitext/ucerr"
)

func TestValidateWellFormed(t *testing.T) {
	inputs := [][]byte{
		[]byte("hello"),
		[]byte("héllo"),
		[]byte("日本語"),
		{0xF0, 0x9F, 0x98, 0x80}, // U+1F600 GRINNING FACE
	}
	for _, in := range inputs {
		if err := Validate(in); err != nil {
			t.Errorf("Validate(%x) = %v, want nil", in, err)
		}
	}
}

func TestValidateOverlong(t *testing.T) {
	// 0xC0 0x80 is an overlong encoding of NUL.
	err := Validate([]byte{0xC0, 0x80})
	if err == nil {
		t.Fatal("expected overlong error")
	}
	ue, ok := err.(*ucerr.Error)
	if !ok || ue.Kind != ucerr.OverlongEncoding {
		t.Fatalf("got %v, want OverlongEncoding", err)
	}
}

func TestValidateSurrogate(t *testing.T) {
	// 0xED 0xA0 0x80 encodes U+D800, a surrogate half.
	err := Validate([]byte{0xED, 0xA0, 0x80})
	if err == nil {
		t.Fatal("expected invalid codepoint error")
	}
}

func TestValidateIncomplete(t *testing.T) {
	err := Validate([]byte{0xE2, 0x82}) // truncated 3-byte sequence
	if err == nil {
		t.Fatal("expected incomplete character error")
	}
	ue := err.(*ucerr.Error)
	if ue.Kind != ucerr.IncompleteCharacter {
		t.Fatalf("got %v, want IncompleteCharacter", ue.Kind)
	}
}

func TestValidateUnexpectedContinuation(t *testing.T) {
	err := Validate([]byte{0x80})
	if err == nil {
		t.Fatal("expected unexpected continuation error")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cps := []rune{'A', 0x00E9, 0x4E2D, 0x1F600}
	var buf []byte
	for _, cp := range cps {
		var err error
		buf, err = Encode(buf, cp)
		if err != nil {
			t.Fatalf("Encode(%#x): %v", cp, err)
		}
	}
	d := NewDecoder(buf)
	var got []rune
	for {
		cp, _, ok, err := d.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if !ok {
			break
		}
		got = append(got, cp)
	}
	if len(got) != len(cps) {
		t.Fatalf("got %d codepoints, want %d", len(got), len(cps))
	}
	for i := range cps {
		if got[i] != cps[i] {
			t.Errorf("codepoint %d: got %#x, want %#x", i, got[i], cps[i])
		}
	}
}

func TestRepairReplacesMalformedOnly(t *testing.T) {
	input := append([]byte("ok-"), 0xC0, 0x80)
	input = append(input, []byte("-ok")...)
	repaired := Repair(input)
	if err := Validate(repaired); err != nil {
		t.Fatalf("repaired input still invalid: %v", err)
	}
	if !bytes.Contains(repaired, Replacement) {
		t.Fatalf("expected replacement character in repaired output: %x", repaired)
	}
	if !bytes.HasPrefix(repaired, []byte("ok-")) || !bytes.HasSuffix(repaired, []byte("-ok")) {
		t.Fatalf("well-formed stretches were altered: %q", repaired)
	}
}

func TestRepairWellFormedIsUnchanged(t *testing.T) {
	input := []byte("already valid")
	if repaired := Repair(input); string(repaired) != string(input) {
		t.Fatalf("Repair altered well-formed input: %q", repaired)
	}
}

func TestRepairTruncatedFourByteSequence(t *testing.T) {
	// 0xF0 followed by a byte that is itself a valid 2-byte lead: the
	// maximal subpart is just the 0xF0, not the whole run.
	input := []byte{0xF0, 0xC2, 0x80}
	repaired := Repair(input)
	if err := Validate(repaired); err != nil {
		t.Fatalf("repaired input still invalid: %v", err)
	}
}
