package norm

// Hangul Syllable algorithmic decomposition/composition (Unicode §3.12).
// Adapted from the teacher's ot/hangul.go Jamo arithmetic: the font/glyph
// aware composition and decomposition logic (cmap/hmtx lookups, zero-width
// glyph detection, feature masking) is removed since norm has no font —
// only the constants and the pure arithmetic survive.
const (
	lBase = 0x1100
	vBase = 0x1161
	tBase = 0x11A7
	sBase = 0xAC00
	lCount = 19
	vCount = 21
	tCount = 28
	nCount = vCount * tCount // 588
	sCount = lCount * nCount // 11172
)

// isHangulL reports whether cp is a composable Leading Jamo.
func isHangulL(cp rune) bool {
	return cp >= lBase && cp < lBase+lCount
}

// isHangulV reports whether cp is a composable Vowel Jamo.
func isHangulV(cp rune) bool {
	return cp >= vBase && cp < vBase+vCount
}

// isHangulT reports whether cp is a composable Trailing Jamo (excludes
// tBase itself, which represents "no trailing consonant").
func isHangulT(cp rune) bool {
	return cp > tBase && cp < tBase+tCount
}

// isHangulSyllable reports whether cp is a precomposed Hangul syllable
// (LV or LVT).
func isHangulSyllable(cp rune) bool {
	return cp >= sBase && cp < sBase+sCount
}

// decomposeHangul fully decomposes a precomposed syllable into its L, V,
// and (if present) T Jamo. It is a no-op (returns ok=false) for anything
// outside the syllable block.
func decomposeHangul(cp rune) (l, v, t rune, ok bool) {
	if !isHangulSyllable(cp) {
		return 0, 0, 0, false
	}
	sIndex := cp - sBase
	l = lBase + sIndex/nCount
	v = vBase + (sIndex%nCount)/tCount
	tIndex := sIndex % tCount
	if tIndex == 0 {
		return l, v, 0, true
	}
	t = tBase + tIndex
	return l, v, t, true
}

// composeHangulLV composes a Leading Jamo and Vowel Jamo into an LV
// syllable (no trailing consonant).
func composeHangulLV(l, v rune) (rune, bool) {
	if !isHangulL(l) || !isHangulV(v) {
		return 0, false
	}
	lIndex := l - lBase
	vIndex := v - vBase
	return sBase + (lIndex*vCount+vIndex)*tCount, true
}

// composeHangulLVT composes an LV syllable and a Trailing Jamo into an
// LVT syllable.
func composeHangulLVT(lv, t rune) (rune, bool) {
	if !isHangulSyllable(lv) || !isHangulT(t) {
		return 0, false
	}
	if (lv-sBase)%tCount != 0 {
		return 0, false // lv already carries a trailing consonant
	}
	tIndex := t - tBase
	return lv + tIndex, true
}
