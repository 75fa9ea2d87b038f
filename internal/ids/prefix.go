package ids

import "strings"

// NormalizeUniqueIDs lowercases IDs and drops empties and duplicates,
// preserving first-seen order.
func NormalizeUniqueIDs(ids []string) []string {
	unique := make([]string, 0, len(ids))
	seen := make(map[string]bool)
	for _, id := range ids {
		idLower := strings.ToLower(id)
		if idLower == "" || seen[idLower] {
			continue
		}
		seen[idLower] = true
		unique = append(unique, idLower)
	}
	return unique
}

// MatchPrefixNormalized finds the ID matching a prefix among normalized IDs.
// Returns the match, whether any ID matched, and whether the prefix was
// ambiguous. An exact match always wins over a longer candidate.
func MatchPrefixNormalized(normalizedIDs []string, prefix string) (match string, found, ambiguous bool) {
	prefix = strings.ToLower(prefix)
	if prefix == "" {
		return "", false, false
	}

	for _, id := range normalizedIDs {
		if id == prefix {
			return id, true, false
		}
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		if found {
			return "", true, true
		}
		match = id
		found = true
	}

	return match, found, false
}

// UniquePrefixLengthsNormalized returns the shortest unique prefix length for
// each normalized ID.
func UniquePrefixLengthsNormalized(normalizedIDs []string) map[string]int {
	lengths := make(map[string]int, len(normalizedIDs))
	for _, id := range normalizedIDs {
		lengths[id] = uniquePrefixLength(id, normalizedIDs)
	}
	return lengths
}

func uniquePrefixLength(id string, ids []string) int {
	for length := 1; length <= len(id); length++ {
		prefix := id[:length]
		unique := true
		for _, other := range ids {
			if other == id {
				continue
			}
			if strings.HasPrefix(other, prefix) {
				unique = false
				break
			}
		}
		if unique {
			return length
		}
	}

	return len(id)
}
