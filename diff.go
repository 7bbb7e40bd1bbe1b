package textdiff

import (
	"strings"

	"github.com/codalotl/textdiff/internal/uni"
)

// Diff computes an edit script that transforms a into b. The script is
// canonicalized with CleanupMerge; callers wanting fewer, coarser edits can
// further apply CleanupEfficiency.
//
// The result is not guaranteed minimal: a half-match heuristic and a
// line-granularity mode trade optimality for speed on realistic inputs.
func Diff(a, b string) []Edit {
	return diffMain(a, b, true)
}

// diffMain strips the shared prefix and suffix, diffs the middles, and
// canonicalizes. checkLines is true only at the public entry point.
func diffMain(text1, text2 string, checkLines bool) []Edit {
	if text1 == text2 {
		if text1 == "" {
			return nil
		}
		return []Edit{{OpEqual, text1}}
	}

	prefix, middle1, middle2, suffix := SplitPreAndSuffix(text1, text2)
	diffs := compute(middle1, middle2, checkLines)
	if prefix != "" {
		diffs = append([]Edit{{OpEqual, prefix}}, diffs...)
	}
	if suffix != "" {
		diffs = append(diffs, Edit{OpEqual, suffix})
	}
	return CleanupMerge(diffs)
}

// compute diffs two middles that share no prefix or suffix, selecting a
// strategy: trivial insert/delete, substring containment, half-match
// divide-and-conquer, line mode, or bisect.
func compute(text1, text2 string, checkLines bool) []Edit {
	if text1 == "" {
		return []Edit{{OpInsert, text2}}
	}
	if text2 == "" {
		return []Edit{{OpDelete, text1}}
	}

	long, short := text1, text2
	op := OpDelete
	if len(text1) <= len(text2) {
		long, short = text2, text1
		op = OpInsert
	}
	if i := strings.Index(long, short); i != -1 {
		// The shorter text sits inside the longer one.
		return []Edit{{op, long[:i]}, {OpEqual, short}, {op, long[i+len(short):]}}
	}
	if uni.SmallerThan(short, 2) {
		// A single codepoint cannot take part in a half-match, and after
		// prefix/suffix stripping it cannot match anything either.
		return []Edit{{OpDelete, text1}, {OpInsert, text2}}
	}

	if hm, ok := halfMatch(text1, text2); ok {
		diffsA := diffMain(hm.pre1, hm.pre2, false)
		diffsB := diffMain(hm.post1, hm.post2, false)
		return append(append(diffsA, Edit{OpEqual, hm.mid}), diffsB...)
	}

	if checkLines || len(text1) > 100 || len(text2) > 100 {
		return diffTokenMode(text1, text2, splitLines)
	}
	return bisect(text1, text2)
}
