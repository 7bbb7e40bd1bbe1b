package textdiff

import (
	"errors"
	"strings"
)

// ErrPatternNotFound reports a pattern absent from the text searched by
// UniqueMatch.
var ErrPatternNotFound = errors.New("textdiff: pattern not found")

// UniqueMatch reports whether pattern occurs in text exactly once. A
// pattern absent from text is an error distinct from the found-once and
// found-multiple outcomes. Occurrences are counted byte-wise and may
// overlap.
func UniqueMatch(pattern, text string) (bool, error) {
	if pattern == "" {
		// The empty pattern matches at every boundary.
		return text == "", nil
	}

	count := 0
	for i := 0; ; {
		idx := strings.Index(text[i:], pattern)
		if idx == -1 {
			break
		}
		count++
		if count > 1 {
			return false, nil
		}
		i += idx + 1
	}
	if count == 0 {
		return false, ErrPatternNotFound
	}
	return true, nil
}
