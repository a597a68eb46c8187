package norm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/boxesandglue/unitext/ucd"
)

func runes(cps ...rune) string { return string(cps) }

func TestToNFD(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"precomposed a-ring", runes(0x00E5), runes(0x0061, 0x030A)},
		{"already decomposed is unchanged", runes(0x0061, 0x030A), runes(0x0061, 0x030A)},
		{"two-level Latin macron-grave", runes(0x1E14), runes(0x0045, 0x0304, 0x0300)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ToNFD(c.input)
			require.NoError(t, err)
			require.Equal(t, c.want, got)
		})
	}
}

func TestToNFC(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"a+ring recomposes", runes(0x0061, 0x030A), runes(0x00E5)},
		{"Hangul L+V+T composes to one syllable", runes(0x1100, 0x1161, 0x11A8), runes(0xAC01)},
		{
			// [L, LV-syllable, T]: the LV syllable composes with the
			// trailing jamo into an LVT syllable even though it arrived
			// pre-composed, exercising the Hangul special case inside
			// compose().
			"Hangul LV-syllable+T composes with an already-composed LV",
			runes(0x1100, 0xAC00, 0x11A8),
			runes(0x1100, 0xAC01),
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ToNFC(c.input)
			require.NoError(t, err)
			require.Equal(t, c.want, got)
		})
	}
}

func TestToNFCBlockedByInterveningMark(t *testing.T) {
	// D + COMBINING DOT ABOVE (ccc 230) + COMBINING DOT BELOW (ccc 220):
	// after canonical reordering the dot-below (lower ccc) sorts before
	// the dot-above, so D is never adjacent to the dot-above and the
	// composition to U+1E0A (D with dot above) must not happen
	// (spec.md §4.4's blocking-rule worked example). Reordered to D,
	// dot-below, dot-above; D+dot-below is itself a valid composite
	// (1E0C), leaving the dot-above uncomposed.
	got, err := ToNFC(runes(0x0044, 0x0307, 0x0323))
	require.NoError(t, err)
	require.NotEqual(t, runes(0x1E0A, 0x0323), got, "composed across a reordering-introduced blocker")
	require.Equal(t, runes(0x1E0C, 0x0307), got)
}

func TestQuickCheck(t *testing.T) {
	cases := []struct {
		name  string
		input string
		form  Form
		want  ucd.QuickCheckVal
	}{
		{"ascii is Yes under NFC", "hello world", NFC, ucd.QCYes},
		{"composable a+grave is Maybe under NFC", runes(0x0061, 0x0300), NFC, ucd.QCMaybe},
		{"out-of-order combining marks are No under NFD", runes(0x0061, 0x0307, 0x0323), NFD, ucd.QCNo},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := QuickCheck(c.input, c.form)
			require.NoError(t, err)
			require.Equal(t, c.want, got)
		})
	}
}
