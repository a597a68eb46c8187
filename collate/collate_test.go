package collate

import "testing"

func TestSortKeyOrdersDigitsBeforeLetters(t *testing.T) {
	cmp, err := Compare("1", "a", NonIgnorable)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if cmp >= 0 {
		t.Fatalf("Compare(1, a) = %d, want < 0 (digits sort before letters)", cmp)
	}
}

func TestSortKeyCaseIsTertiary(t *testing.T) {
	ka, err := SortKey("a", NonIgnorable)
	if err != nil {
		t.Fatalf("SortKey: %v", err)
	}
	kA, err := SortKey("A", NonIgnorable)
	if err != nil {
		t.Fatalf("SortKey: %v", err)
	}
	if string(ka) == string(kA) {
		t.Fatal("a and A must not produce identical sort keys (case differs at tertiary level)")
	}
	// The primary level (everything before the first 0x00 separator)
	// must match: case is a tertiary-only distinction.
	sepA := primaryEnd(ka)
	sepB := primaryEnd(kA)
	if string(ka[:sepA]) != string(kA[:sepB]) {
		t.Fatalf("primary levels differ: %x vs %x", ka[:sepA], kA[:sepB])
	}
}

// primaryEnd returns the index of the separator that ends the primary
// level. Weights are two bytes wide and their low byte may be 0x00 (as in
// 0x1A00), so only a 0x00 at a weight boundary counts; every primary
// weight has a non-zero high byte.
func primaryEnd(b []byte) int {
	for i := 0; i < len(b); i += 2 {
		if b[i] == 0x00 {
			return i
		}
	}
	return len(b)
}

func TestSortKeyContraction(t *testing.T) {
	// "ch" collates as a unit strictly between "c" and "d".
	kc, err := SortKey("c", NonIgnorable)
	if err != nil {
		t.Fatalf("SortKey: %v", err)
	}
	kch, err := SortKey("ch", NonIgnorable)
	if err != nil {
		t.Fatalf("SortKey: %v", err)
	}
	kd, err := SortKey("d", NonIgnorable)
	if err != nil {
		t.Fatalf("SortKey: %v", err)
	}
	if !less(kc, kch) || !less(kch, kd) {
		t.Fatalf("expected c < ch < d, got %x, %x, %x", kc, kch, kd)
	}
}

func less(a, b []byte) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

func TestBlankedIgnoresVariableWeights(t *testing.T) {
	kSpace, err := SortKey(" ", Blanked)
	if err != nil {
		t.Fatalf("SortKey: %v", err)
	}
	// No weighted collation element survives Blanked filtering, but each
	// of the three levels still emits its trailing 0x00 separator.
	want := []byte{0x00, 0x00, 0x00}
	if string(kSpace) != string(want) {
		t.Fatalf("Blanked sort key for a lone space should be just the level separators, got %x want %x", kSpace, want)
	}
}

func TestShiftedIsUnsupported(t *testing.T) {
	_, err := SortKey("a", Shifted)
	if err == nil {
		t.Fatal("expected Shifted variable weighting to report Unsupported")
	}
}

func TestDerivedWeightsOrderByCodepoint(t *testing.T) {
	// Two unassigned-in-our-table CJK ideographs must still sort by
	// codepoint value relative to each other.
	k1, err := SortKey(string(rune(0x4E2D)), NonIgnorable)
	if err != nil {
		t.Fatalf("SortKey: %v", err)
	}
	k2, err := SortKey(string(rune(0x4E2E)), NonIgnorable)
	if err != nil {
		t.Fatalf("SortKey: %v", err)
	}
	if !less(k1, k2) {
		t.Fatalf("expected U+4E2D < U+4E2E, got %x, %x", k1, k2)
	}
}
