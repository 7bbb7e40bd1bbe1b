package textdiff

import (
	"strings"

	"github.com/codalotl/textdiff/internal/uni"
)

// halfMatchResult splits two inputs around a shared middle:
// text1 == pre1+mid+post1 and text2 == pre2+mid+post2, with
// 2*len(mid) >= len(longer input).
type halfMatchResult struct {
	pre1, post1 string
	pre2, post2 string
	mid         string
}

// halfMatch looks for a substring shared by text1 and text2 that is at
// least half as long as the longer of the two. Finding one lets the diff
// divide and conquer around it instead of running the quadratic bisect.
func halfMatch(text1, text2 string) (halfMatchResult, bool) {
	long, short := text1, text2
	if len(long) < len(short) {
		long, short = short, long
	}
	if len(long) < 4 || len(short)*2 < len(long) {
		return halfMatchResult{}, false
	}

	// Seed from the second quarter of the longer input, then from the third.
	hm1, ok1 := halfMatchSeed(long, short, (len(long)+3)/4)
	hm2, ok2 := halfMatchSeed(long, short, (len(long)+1)/2)

	var hm halfMatchResult
	switch {
	case !ok1 && !ok2:
		return halfMatchResult{}, false
	case !ok2:
		hm = hm1
	case !ok1:
		hm = hm2
	default:
		// Both qualified; ties go to the second.
		if len(hm1.mid) > len(hm2.mid) {
			hm = hm1
		} else {
			hm = hm2
		}
	}

	if len(text1) < len(text2) {
		hm = halfMatchResult{pre1: hm.pre2, post1: hm.post2, pre2: hm.pre1, post2: hm.post1, mid: hm.mid}
	}
	return hm, true
}

// halfMatchSeed scans short for occurrences of a quarter-length seed taken
// from long at byte position i and keeps the occurrence whose flanks extend
// the furthest. The candidate qualifies only if the full shared middle is at
// least half of long.
func halfMatchSeed(long, short string, i int) (halfMatchResult, bool) {
	seed := long[i : i+len(long)/4]

	// Repair both seed ends to codepoint boundaries; the head repair shifts
	// the seed's effective start.
	head, rest := uni.RepairHead(seed)
	i += len(head)
	seed, _ = uni.RepairTail(rest)
	if seed == "" {
		return halfMatchResult{}, false
	}

	var best halfMatchResult
	bestLen := -1
	for j := strings.Index(short, seed); j != -1; {
		preLen := len(CommonPrefix(long[i+len(seed):], short[j+len(seed):]))
		sufLen := len(CommonSuffix(long[:i], short[:j]))
		if bestLen < preLen+sufLen {
			bestLen = preLen + sufLen
			best = halfMatchResult{
				pre1:  long[:i-sufLen],
				post1: long[i+len(seed)+preLen:],
				pre2:  short[:j-sufLen],
				post2: short[j+len(seed)+preLen:],
				mid:   short[j-sufLen : j+len(seed)+preLen],
			}
		}

		// Advance to the next occurrence, never re-aligning mid-codepoint.
		next := uni.NextBoundary(short, j+1)
		if next >= len(short) {
			break
		}
		idx := strings.Index(short[next:], seed)
		if idx == -1 {
			break
		}
		j = next + idx
	}

	if len(best.mid)*2 >= len(long) {
		return best, true
	}
	return halfMatchResult{}, false
}
