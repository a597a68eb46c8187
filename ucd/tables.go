package ucd

// Hand-curated slice of the Unicode Character Database covering the
// codepoints this module's engines and tests exercise (see the package
// doc comment in store.go). Not the full database.

// combiningClass holds the Canonical_Combining_Class of every non-starter
// this module knows about. Absence means CCC 0.
var combiningClass = map[rune]uint8{
	0x0300: 230, // COMBINING GRAVE ACCENT
	0x0301: 230, // COMBINING ACUTE ACCENT
	0x0302: 230, // COMBINING CIRCUMFLEX ACCENT
	0x0303: 230, // COMBINING TILDE
	0x0304: 230, // COMBINING MACRON
	0x0306: 230, // COMBINING BREVE
	0x0307: 230, // COMBINING DOT ABOVE
	0x0308: 230, // COMBINING DIAERESIS
	0x030A: 230, // COMBINING RING ABOVE
	0x030B: 230, // COMBINING DOUBLE ACUTE ACCENT
	0x030C: 230, // COMBINING CARON
	0x0323: 220, // COMBINING DOT BELOW
	0x0327: 202, // COMBINING CEDILLA
	0x0328: 202, // COMBINING OGONEK
	0x0345: 240, // COMBINING GREEK YPOGEGRAMMENI
}

// decompositionMappings holds canonical (non-compatibility) decompositions,
// one level deep — callers recursively re-expand via ucd.Store lookups
// rather than reading pre-flattened entries; canonical reordering then runs
// once over the fully expanded result.
var decompositionMappings = map[rune][]rune{
	0x00C0: {0x0041, 0x0300}, // LATIN CAPITAL LETTER A WITH GRAVE
	0x00C1: {0x0041, 0x0301}, // ... WITH ACUTE
	0x00C3: {0x0041, 0x0303}, // ... WITH TILDE
	0x00C8: {0x0045, 0x0300}, // LATIN CAPITAL LETTER E WITH GRAVE
	0x00C9: {0x0045, 0x0301}, // ... WITH ACUTE
	0x00E0: {0x0061, 0x0300}, // LATIN SMALL LETTER A WITH GRAVE
	0x00E1: {0x0061, 0x0301}, // ... WITH ACUTE
	0x00E5: {0x0061, 0x030A}, // LATIN SMALL LETTER A WITH RING ABOVE
	0x00E7: {0x0063, 0x0327}, // LATIN SMALL LETTER C WITH CEDILLA
	0x00E8: {0x0065, 0x0300}, // LATIN SMALL LETTER E WITH GRAVE
	0x00E9: {0x0065, 0x0301}, // LATIN SMALL LETTER E WITH ACUTE
	0x00F1: {0x006E, 0x0303}, // LATIN SMALL LETTER N WITH TILDE
	0x0112: {0x0045, 0x0304}, // LATIN CAPITAL LETTER E WITH MACRON
	0x1E0A: {0x0044, 0x0307}, // LATIN CAPITAL LETTER D WITH DOT ABOVE
	0x1E0C: {0x0044, 0x0323}, // LATIN CAPITAL LETTER D WITH DOT BELOW
	0x1E14: {0x0112, 0x0300}, // LATIN CAPITAL LETTER E WITH MACRON AND GRAVE (two-level)
	0x2126: {0x03A9},         // OHM SIGN -> GREEK CAPITAL LETTER OMEGA (singleton)
	0x1E9B: {0x017F, 0x0307}, // LATIN SMALL LETTER LONG S WITH DOT ABOVE

	// Precomposed Greek letters carrying an iota subscript (ypogegrammeni),
	// used by casefold's full-fold pre-decomposition step (spec.md §4.5).
	0x1FBC: {0x0391, 0x0345}, // GREEK CAPITAL LETTER ALPHA WITH PROSGEGRAMMENI
	0x1FCC: {0x0397, 0x0345}, // GREEK CAPITAL LETTER ETA WITH PROSGEGRAMMENI
	0x1FFC: {0x03A9, 0x0345}, // GREEK CAPITAL LETTER OMEGA WITH PROSGEGRAMMENI
}

// primaryComposites is the inverse of decompositionMappings minus the
// entries treated as composition exclusions (spec.md §4.4): 2126 (a
// singleton) and 1E9B are intentionally absent so NFC never recomposes them.
var primaryComposites = map[[2]rune]rune{
	{0x0041, 0x0300}: 0x00C0,
	{0x0041, 0x0301}: 0x00C1,
	{0x0041, 0x0303}: 0x00C3,
	{0x0045, 0x0300}: 0x00C8,
	{0x0045, 0x0301}: 0x00C9,
	{0x0061, 0x0300}: 0x00E0,
	{0x0061, 0x0301}: 0x00E1,
	{0x0061, 0x030A}: 0x00E5,
	{0x0063, 0x0327}: 0x00E7,
	{0x0065, 0x0300}: 0x00E8,
	{0x0065, 0x0301}: 0x00E9,
	{0x006E, 0x0303}: 0x00F1,
	{0x0045, 0x0304}: 0x0112,
	{0x0044, 0x0307}: 0x1E0A,
	{0x0044, 0x0323}: 0x1E0C,
	{0x0112, 0x0300}: 0x1E14,
	{0x0391, 0x0345}: 0x1FBC,
	{0x0397, 0x0345}: 0x1FCC,
	{0x03A9, 0x0345}: 0x1FFC,
}

// nfcQuickCheckNo: codepoints that can never appear in NFC output
// (singletons and compatibility-only decompositions collapse to No).
var nfcQuickCheckNo = map[rune]bool{
	0x2126: true,
	0x1E9B: true,
}

// nfcQuickCheckMaybe: non-starters whose presence after a starter requires
// the full NFC composition check rather than a quick Yes.
var nfcQuickCheckMaybe = map[rune]bool{
	0x0300: true,
	0x0301: true,
	0x0302: true,
	0x0303: true,
	0x0304: true,
	0x0306: true,
	0x0307: true,
	0x0308: true,
	0x030A: true,
	0x030B: true,
	0x030C: true,
	0x0323: true,
	0x0327: true,
	0x0328: true,
	0x0345: true,
}

// nfdQuickCheckNo: every codepoint with a canonical decomposition fails
// NFD quick-check (it must be decomposed).
var nfdQuickCheckNo = map[rune]bool{
	0x00C0: true, 0x00C1: true, 0x00C3: true, 0x00C8: true, 0x00C9: true,
	0x00E0: true, 0x00E1: true, 0x00E5: true, 0x00E7: true, 0x00E8: true,
	0x00E9: true, 0x00F1: true, 0x0112: true, 0x1E0A: true, 0x1E0C: true,
	0x1E14: true, 0x2126: true, 0x1E9B: true,
	0x1FBC: true, 0x1FCC: true, 0x1FFC: true,
}

// lowercaseMappings: simple (single-codepoint) Lowercase_Mapping.
var lowercaseMappings = map[rune]rune{}

// uppercaseMappings: full Uppercase_Mapping, possibly multi-codepoint
// (e.g. U+00DF -> "SS").
var uppercaseMappings = map[rune][]rune{}

// caseFoldings: full (C+F) Case_Folding, possibly multi-codepoint.
var caseFoldings = map[rune][]rune{}

// casedSet / caseIgnorableSet back the final-sigma context rule (§4.5).
var casedSet = map[rune]bool{}
var caseIgnorableSet = map[rune]bool{}

func init() {
	// ASCII letters.
	for cp := rune('A'); cp <= 'Z'; cp++ {
		lower := cp + 0x20
		lowercaseMappings[cp] = lower
		uppercaseMappings[lower] = []rune{cp}
		caseFoldings[cp] = []rune{lower}
		casedSet[cp] = true
		casedSet[lower] = true
	}

	// Latin-1 Supplement uppercase block, excluding U+00D7 (MULTIPLICATION
	// SIGN, not a letter) — maps to the corresponding lowercase 0x20 below,
	// except the well-known irregulars handled separately.
	for cp := rune(0x00C0); cp <= 0x00DE; cp++ {
		if cp == 0x00D7 {
			continue
		}
		lower := cp + 0x20
		lowercaseMappings[cp] = lower
		uppercaseMappings[lower] = []rune{cp}
		caseFoldings[cp] = []rune{lower}
		casedSet[cp] = true
		casedSet[lower] = true
	}

	// U+00DF LATIN SMALL LETTER SHARP S: full uppercase expands to "SS";
	// full case folding maps it to "ss" (simple folding would leave sharp s
	// unchanged; this module implements full folding per spec.md §4.5).
	uppercaseMappings[0x00DF] = []rune{'S', 'S'}
	caseFoldings[0x00DF] = []rune{'s', 's'}
	casedSet[0x00DF] = true

	// U+0130 LATIN CAPITAL LETTER I WITH DOT ABOVE: the spec.md §4.5
	// special case — full lowercase/fold expands to LATIN SMALL LETTER I
	// + COMBINING DOT ABOVE, not plain 'i'.
	caseFoldings[0x0130] = []rune{0x0069, 0x0307}
	casedSet[0x0130] = true
	casedSet[0x0069] = true

	// Greek uppercase/lowercase, including final/non-final sigma.
	for cp := rune(0x0391); cp <= 0x03A9; cp++ {
		if cp == 0x03A2 { // unassigned
			continue
		}
		lower := cp + 0x20
		lowercaseMappings[cp] = lower
		uppercaseMappings[lower] = []rune{cp}
		casedSet[cp] = true
		casedSet[lower] = true
	}
	// U+03A3 GREEK CAPITAL LETTER SIGMA folds to the non-final form by
	// default; the final-sigma context rule (spec.md §4.5) is applied by
	// casefold, not by this static table, since it depends on surrounding
	// context rather than the codepoint alone.
	for cp, lower := range lowercaseMappings {
		if cp >= 0x0391 && cp <= 0x03A9 {
			caseFoldings[cp] = []rune{lower}
		}
	}
	caseFoldings[0x03A3] = []rune{0x03C3}
	casedSet[0x03C2] = true // GREEK SMALL LETTER FINAL SIGMA is cased too

	// Cyrillic uppercase/lowercase.
	for cp := rune(0x0410); cp <= 0x042F; cp++ {
		lower := cp + 0x20
		lowercaseMappings[cp] = lower
		uppercaseMappings[lower] = []rune{cp}
		caseFoldings[cp] = []rune{lower}
		casedSet[cp] = true
		casedSet[lower] = true
	}

	// Combining marks and a representative set of format/control
	// codepoints are Case_Ignorable (spec.md §4.5 final-sigma scan must
	// skip over these without breaking the cased-letter context).
	for cp := range combiningClass {
		caseIgnorableSet[cp] = true
	}
	caseIgnorableSet[0x0027] = true // APOSTROPHE (Word_Break=Single_Quote)
	caseIgnorableSet[0x00AD] = true // SOFT HYPHEN
	caseIgnorableSet[0x002E] = true // FULL STOP (Word_Break=MidNumLet)
	caseIgnorableSet[0x003A] = true // COLON (Word_Break=MidLetter)
	caseIgnorableSet[0x00B7] = true // MIDDLE DOT (Word_Break=MidLetter)
	caseIgnorableSet[0x2018] = true // LEFT SINGLE QUOTATION MARK
	caseIgnorableSet[0x2019] = true // RIGHT SINGLE QUOTATION MARK (Word_Break=MidNumLet)
	caseIgnorableSet[0x2024] = true // ONE DOT LEADER (Word_Break=MidNumLet)
}

// graphemeClusterBreak holds the Grapheme_Cluster_Break property for every
// codepoint outside the algorithmically-derived Hangul Jamo and Syllable
// blocks (those are classified by Store.GCB's hangulGCB range arithmetic
// per Unicode §3.12, not enumerated here).
var graphemeClusterBreak = map[rune]GraphemeClusterBreak{
	0x000D: GCBCR,
	0x000A: GCBLF,

	// Control: a representative set, not the full General_Category Cc/Cf
	// sweep (spec.md's Non-goals exclude full UCD extraction).
	0x0000: GCBCN, 0x0001: GCBCN, 0x0009: GCBCN, 0x000B: GCBCN, 0x000C: GCBCN,
	0x001C: GCBCN, 0x001D: GCBCN, 0x001E: GCBCN, 0x001F: GCBCN,
	0x200B: GCBCN, // ZERO WIDTH SPACE is Cf but treated as Control for GCB
	0x2028: GCBCN, 0x2029: GCBCN,

	0x200D: GCBZWJ,

	// Extend: combining marks plus variation selectors.
	0x0300: GCBEX, 0x0301: GCBEX, 0x0302: GCBEX, 0x0303: GCBEX, 0x0304: GCBEX,
	0x0306: GCBEX, 0x0307: GCBEX, 0x0308: GCBEX, 0x030A: GCBEX, 0x030B: GCBEX,
	0x030C: GCBEX, 0x0323: GCBEX, 0x0327: GCBEX, 0x0328: GCBEX, 0x0345: GCBEX,
	0xFE0F: GCBEX, // VARIATION SELECTOR-16

	// SpacingMark: representative Indic spacing combining marks.
	0x0903: GCBSM, 0x093B: GCBSM, 0x093E: GCBSM,

	// Prepend: representative Indic "prepended concatenation mark" codepoints.
	0x0600: GCBPP, 0x0601: GCBPP, 0x0602: GCBPP, 0x0603: GCBPP,

	// Regional_Indicator: U+1F1E6..U+1F1FF (all 26), used by GB12/GB13.
	0x1F1E6: GCBRI, 0x1F1E7: GCBRI, 0x1F1E8: GCBRI, 0x1F1E9: GCBRI,
	0x1F1EA: GCBRI, 0x1F1EB: GCBRI, 0x1F1EC: GCBRI, 0x1F1ED: GCBRI,
	0x1F1EE: GCBRI, 0x1F1EF: GCBRI, 0x1F1F0: GCBRI, 0x1F1F1: GCBRI,
	0x1F1F2: GCBRI, 0x1F1F3: GCBRI, 0x1F1F4: GCBRI, 0x1F1F5: GCBRI,
	0x1F1F6: GCBRI, 0x1F1F7: GCBRI, 0x1F1F8: GCBRI, 0x1F1F9: GCBRI,
	0x1F1FA: GCBRI, 0x1F1FB: GCBRI, 0x1F1FC: GCBRI, 0x1F1FD: GCBRI,
	0x1F1FE: GCBRI, 0x1F1FF: GCBRI,

	// Extended_Pictographic base + Emoji_Modifier, a small representative
	// set used by the GB11 (emoji ZWJ sequence) rule.
	0x1F600: GCBEB,  // GRINNING FACE
	0x1F466: GCBEB,  // BOY (emoji base usable with skin-tone modifiers)
	0x1F3FB: GCBEM,  // EMOJI MODIFIER FITZPATRICK TYPE-1-2
	0x1F3FC: GCBEM,
	0x2764:  GCBEBG, // HEAVY BLACK HEART (Extended_Pictographic, Emoji_Modifier_Base=No — GCB=Any-other; treated as base-eligible glue per GB11 context via EBG)
}

// collationSingles holds collation elements for codepoints not part of any
// multi-codepoint contraction (spec.md §4.7). Primary weights follow the
// conventional DUCET-style ordering: space/punctuation below digits below
// letters; case is carried at the tertiary level.
var collationSingles = map[rune][]Element{
	0x0020: {{Weights: [3]uint16{0x0209, 0x0020, 0x0002}, Variable: true}}, // SPACE
	0x002D: {{Weights: [3]uint16{0x0241, 0x0020, 0x0002}, Variable: true}}, // HYPHEN-MINUS

	0x0030: {{Weights: [3]uint16{0x0401, 0x0020, 0x0002}}}, // 0
	0x0031: {{Weights: [3]uint16{0x0402, 0x0020, 0x0002}}}, // 1
	0x0032: {{Weights: [3]uint16{0x0403, 0x0020, 0x0002}}}, // 2
	0x0033: {{Weights: [3]uint16{0x0404, 0x0020, 0x0002}}}, // 3
	0x0034: {{Weights: [3]uint16{0x0405, 0x0020, 0x0002}}}, // 4
	0x0035: {{Weights: [3]uint16{0x0406, 0x0020, 0x0002}}}, // 5
	0x0036: {{Weights: [3]uint16{0x0407, 0x0020, 0x0002}}}, // 6
	0x0037: {{Weights: [3]uint16{0x0408, 0x0020, 0x0002}}}, // 7
	0x0038: {{Weights: [3]uint16{0x0409, 0x0020, 0x0002}}}, // 8
	0x0039: {{Weights: [3]uint16{0x040A, 0x0020, 0x0002}}}, // 9

	0x0061: {{Weights: [3]uint16{0x1A00, 0x0020, 0x0002}}}, // a (lowercase: tertiary 0x0002)
	0x0041: {{Weights: [3]uint16{0x1A00, 0x0020, 0x0008}}}, // A (uppercase: tertiary 0x0008)
	0x0062: {{Weights: [3]uint16{0x1A38, 0x0020, 0x0002}}}, // b
	0x0042: {{Weights: [3]uint16{0x1A38, 0x0020, 0x0008}}}, // B
	0x0063: {{Weights: [3]uint16{0x1A5B, 0x0020, 0x0002}}}, // c
	0x0043: {{Weights: [3]uint16{0x1A5B, 0x0020, 0x0008}}}, // C
	0x0064: {{Weights: [3]uint16{0x1A72, 0x0020, 0x0002}}}, // d
	0x0044: {{Weights: [3]uint16{0x1A72, 0x0020, 0x0008}}}, // D
	0x0065: {{Weights: [3]uint16{0x1AA1, 0x0020, 0x0002}}}, // e
	0x0045: {{Weights: [3]uint16{0x1AA1, 0x0020, 0x0008}}}, // E
	0x0068: {{Weights: [3]uint16{0x1B4A, 0x0020, 0x0002}}}, // h
	0x0048: {{Weights: [3]uint16{0x1B4A, 0x0020, 0x0008}}}, // H
	0x0069: {{Weights: [3]uint16{0x1B64, 0x0020, 0x0002}}}, // i
	0x0049: {{Weights: [3]uint16{0x1B64, 0x0020, 0x0008}}}, // I
	0x006C: {{Weights: [3]uint16{0x1BA9, 0x0020, 0x0002}}}, // l
	0x004C: {{Weights: [3]uint16{0x1BA9, 0x0020, 0x0008}}}, // L
}

// collationContractions holds the (rare) multi-codepoint contractions this
// module exercises, e.g. traditional Spanish/Czech digraph collation. "ch"
// sorts as a single unit strictly after "c" and before "d" — used by
// collate's tests to exercise the trie's PartialMatch/Match distinction.
var collationContractions = []Pair[[]Element]{
	{
		Key:   []rune{0x0063, 0x0068}, // "ch"
		Value: []Element{{Weights: [3]uint16{0x1A5D, 0x0020, 0x0002}}},
	},
	{
		Key:   []rune{0x0043, 0x0068}, // "Ch"
		Value: []Element{{Weights: [3]uint16{0x1A5D, 0x0020, 0x0008}}},
	},
}
