package ids

import "testing"

func TestNormalizeUniqueIDs(t *testing.T) {
	got := NormalizeUniqueIDs([]string{"ABC", "abc", "", "def"})
	if len(got) != 2 || got[0] != "abc" || got[1] != "def" {
		t.Errorf("unexpected result: %v", got)
	}
}

func TestMatchPrefixNormalized(t *testing.T) {
	ids := []string{"abc123", "abd456", "xyz789"}

	match, found, ambiguous := MatchPrefixNormalized(ids, "x")
	if !found || ambiguous || match != "xyz789" {
		t.Errorf("unexpected: match=%q found=%v ambiguous=%v", match, found, ambiguous)
	}

	_, found, ambiguous = MatchPrefixNormalized(ids, "ab")
	if !found || !ambiguous {
		t.Errorf("expected ambiguous match, found=%v ambiguous=%v", found, ambiguous)
	}

	_, found, _ = MatchPrefixNormalized(ids, "zzz")
	if found {
		t.Error("expected no match")
	}

	// Exact match wins even when it prefixes another ID.
	exact := []string{"abc", "abcdef"}
	match, found, ambiguous = MatchPrefixNormalized(exact, "abc")
	if !found || ambiguous || match != "abc" {
		t.Errorf("expected exact match, got match=%q found=%v ambiguous=%v", match, found, ambiguous)
	}
}

func TestUniquePrefixLengthsNormalized(t *testing.T) {
	lengths := UniquePrefixLengthsNormalized([]string{"abc123", "abd456", "xyz789"})
	if lengths["abc123"] != 3 {
		t.Errorf("expected prefix length 3 for abc123, got %d", lengths["abc123"])
	}
	if lengths["xyz789"] != 1 {
		t.Errorf("expected prefix length 1 for xyz789, got %d", lengths["xyz789"])
	}
}
