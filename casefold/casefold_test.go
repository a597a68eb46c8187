package casefold

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func runes(cps ...rune) string { return string(cps) }

func TestToLowerSimple(t *testing.T) {
	got, err := ToLower("HELLO")
	require.NoError(t, err)
	require.Equal(t, "hello", got)
}

func TestToLowerU0130Expands(t *testing.T) {
	got, err := ToLower(runes(0x0130))
	require.NoError(t, err)
	require.Equal(t, runes(0x0069, 0x0307), got)
}

func TestToLowerFinalSigma(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"isolated sigma", runes(0x03A3), runes(0x03C3)},
		{"ignorable sigma not-cased", runes(0x0345, 0x03A3, 0x0020), runes(0x0345, 0x03C3, 0x0020)},
		{"cased ignorable sigma ignorable cased", runes(0x0391, 0x0345, 0x03A3, 0x002E, 0x0392), runes(0x03B1, 0x0345, 0x03C3, 0x002E, 0x03B2)},
		{"cased ignorable sigma not-cased", runes(0x0391, 0x0345, 0x03A3, 0x0020), runes(0x03B1, 0x0345, 0x03C2, 0x0020)},
		{"cased ignorable sigma at end", runes(0x0391, 0x0345, 0x03A3), runes(0x03B1, 0x0345, 0x03C2)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ToLower(c.input)
			require.NoError(t, err)
			require.Equal(t, c.want, got)
		})
	}
}

func TestToUpperSharpS(t *testing.T) {
	got, err := ToUpper(runes(0x00DF))
	require.NoError(t, err)
	require.Equal(t, "SS", got)
}

func TestFoldSharpS(t *testing.T) {
	got, err := Fold(runes(0x00DF))
	require.NoError(t, err)
	require.Equal(t, "ss", got)
}

func TestFoldYpogegrammeniPreDecomposition(t *testing.T) {
	// U+1FBC (ALPHA WITH PROSGEGRAMMENI) must fold the same as its
	// decomposition ALPHA + YPOGEGRAMMENI would.
	viaPrecomposed, err := Fold(runes(0x1FBC))
	require.NoError(t, err)
	viaDecomposed, err := Fold(runes(0x0391, 0x0345))
	require.NoError(t, err)
	require.Equal(t, viaDecomposed, viaPrecomposed)
}

func TestCanonicalCaselessMatch(t *testing.T) {
	match, err := CanonicalCaselessMatch(runes(0x00E5), runes(0x0061, 0x030A))
	require.NoError(t, err)
	require.Equal(t, Equal, match, "expected å and decomposed a+ring to canonically caseless match")

	cmp, err := CanonicalCaselessMatch("abc", "abd")
	require.NoError(t, err)
	require.Equal(t, Less, cmp, "expected abc < abd")

	rev, err := CanonicalCaselessMatch("ABD", "abc")
	require.NoError(t, err)
	require.Equal(t, Greater, rev, "expected ABD > abc")
}
