package board

import (
	"fmt"

	internalstrings "github.com/taskdown/taskdown/internal/strings"
)

func normalizeStatusInput(status Status) (Status, error) {
	normalized := Status(internalstrings.NormalizeLowerTrimSpace(string(status)))
	if !normalized.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return normalized, nil
}

func normalizePriorityInput(priority Priority) (Priority, error) {
	normalized := Priority(internalstrings.NormalizeLowerTrimSpace(string(priority)))
	if !normalized.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPriority, priority)
	}
	return normalized, nil
}

// normalizeTitle produces the form titles are compared in during merge:
// lowercased with whitespace runs collapsed.
func normalizeTitle(title string) string {
	return internalstrings.NormalizeLower(internalstrings.CollapseWhitespace(title))
}
