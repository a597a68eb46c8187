package ucerr

import "testing"

func TestValidCodepoint(t *testing.T) {
	cases := []struct {
		cp   rune
		want bool
	}{
		{0x0041, true},
		{0x10FFFF, true},
		{0x110000, false},
		{0xD800, false},
		{0xDFFF, false},
		{-1, false},
	}
	for _, c := range cases {
		if got := ValidCodepoint(c.cp); got != c.want {
			t.Errorf("ValidCodepoint(%#x) = %v, want %v", c.cp, got, c.want)
		}
	}
}

func TestErrorStrings(t *testing.T) {
	e := New(OverlongEncoding, 3)
	if e.Error() == "" {
		t.Fatal("expected non-empty error string")
	}
	u := NewUnsupported("shifted weighting")
	if u.Kind != Unsupported {
		t.Fatalf("NewUnsupported: got Kind %v, want Unsupported", u.Kind)
	}
}
