package textdiff

import (
	"unicode/utf8"

	"github.com/codalotl/textdiff/internal/uni"
)

// TextSize returns the number of codepoints in s. It panics if s is not
// valid UTF-8: sizing corrupt input is a programming error, unlike the slice
// repair utilities, which are permissive.
func TextSize(s string) int {
	if !utf8.ValidString(s) {
		panic("textdiff: TextSize called on invalid UTF-8")
	}
	return utf8.RuneCountInString(s)
}

// TextSmallerThan reports whether s has fewer than n codepoints without
// counting past n.
func TextSmallerThan(s string, n int) bool {
	return uni.SmallerThan(s, n)
}

// CommonPrefix returns the longest byte prefix shared by a and b, trimmed so
// it ends on a codepoint boundary.
func CommonPrefix(a, b string) string {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	p, _ := uni.RepairTail(a[:i])
	return p
}

// CommonSuffix returns the longest byte suffix shared by a and b, trimmed so
// it begins on a codepoint boundary.
func CommonSuffix(a, b string) string {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[len(a)-1-i] == b[len(b)-1-i] {
		i++
	}
	_, s := uni.RepairHead(a[len(a)-i:])
	return s
}

// SplitPreAndSuffix splits t1 and t2 into a shared prefix, differing
// middles, and a shared suffix: t1 == prefix+middle1+suffix and
// t2 == prefix+middle2+suffix. All four parts end on codepoint boundaries.
func SplitPreAndSuffix(t1, t2 string) (prefix, middle1, middle2, suffix string) {
	prefix = CommonPrefix(t1, t2)
	t1, t2 = t1[len(prefix):], t2[len(prefix):]
	suffix = CommonSuffix(t1, t2)
	middle1 = t1[:len(t1)-len(suffix)]
	middle2 = t2[:len(t2)-len(suffix)]
	return prefix, middle1, middle2, suffix
}
