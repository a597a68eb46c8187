package ucd

import "testing"

func TestTrieMatchKinds(t *testing.T) {
	trie := FromPairs([]Pair[int]{
		{Key: []rune{'c', 'h'}, Value: 1},
		{Key: []rune{'c', 'h', 'z'}, Value: 2},
	})

	cases := []struct {
		key  []rune
		kind MatchKind
		val  int
	}{
		{[]rune{'c'}, PartialMatch, 0},
		{[]rune{'c', 'h'}, Match, 1},
		{[]rune{'c', 'h', 'z'}, Match, 2},
		{[]rune{'x'}, NoMatch, 0},
		{[]rune{'c', 'x'}, NoMatch, 0},
	}
	for _, c := range cases {
		res := trie.Get(c.key)
		if res.Kind != c.kind {
			t.Errorf("Get(%q): Kind = %v, want %v", string(c.key), res.Kind, c.kind)
			continue
		}
		if res.Kind == Match && res.Value != c.val {
			t.Errorf("Get(%q): Value = %v, want %v", string(c.key), res.Value, c.val)
		}
	}
}
