package textdiff

import "github.com/codalotl/textdiff/internal/uni"

// DiffBisect diffs a and b by running the Myers O(ND) middle-snake search
// on them directly: no prefix/suffix stripping, half-match heuristic or line
// mode at the top level. It finds the point where the forward and reverse
// shortest-edit paths overlap, splits both inputs there, and diffs each half
// with the regular engine (which may use half-match, and line mode for
// halves over 100 bytes). The two halves' scripts are concatenated without
// further cleanup.
//
// Most callers want Diff; DiffBisect is the raw engine underneath it.
func DiffBisect(a, b string) []Edit {
	return bisect(a, b)
}

func bisect(text1, text2 string) []Edit {
	runes1, offs1 := uni.Codepoints(text1)
	runes2, offs2 := uni.Codepoints(text2)
	m, n := len(runes1), len(runes2)

	if m == 0 {
		if n == 0 {
			return nil
		}
		return []Edit{{OpInsert, text2}}
	}
	if n == 0 {
		return []Edit{{OpDelete, text1}}
	}

	maxD := (m + n + 1) / 2
	vOffset := maxD
	vLength := 2 * maxD
	if vLength < vOffset+2 {
		// Tiny inputs still need the k=+1 seed slot.
		vLength = vOffset + 2
	}
	v1 := make([]int, vLength)
	v2 := make([]int, vLength)
	for i := range v1 {
		v1[i] = -1
		v2[i] = -1
	}
	v1[vOffset+1] = 0
	v2[vOffset+1] = 0

	delta := m - n
	// If the total number of codepoints is odd, the front path collides
	// with the reverse path; otherwise the reverse path detects the overlap.
	front := delta%2 != 0

	// Trimming offsets for the k loops, pruning diagonals that have run off
	// the grid.
	k1start, k1end := 0, 0
	k2start, k2end := 0, 0

	for d := 0; d < maxD; d++ {
		// Walk the front path one step.
		for k1 := -d + k1start; k1 <= d-k1end; k1 += 2 {
			k1Offset := vOffset + k1
			var x1 int
			if k1 == -d || (k1 != d && v1[k1Offset-1] < v1[k1Offset+1]) {
				x1 = v1[k1Offset+1]
			} else {
				x1 = v1[k1Offset-1] + 1
			}
			y1 := x1 - k1
			for x1 < m && y1 < n && runes1[x1] == runes2[y1] {
				x1++
				y1++
			}
			v1[k1Offset] = x1
			if x1 > m {
				// Ran off the right of the graph.
				k1end += 2
			} else if y1 > n {
				// Ran off the bottom of the graph.
				k1start += 2
			} else if front {
				k2Offset := vOffset + delta - k1
				if k2Offset >= 0 && k2Offset < vLength && v2[k2Offset] != -1 {
					// Mirror x2 onto the top-left coordinate system.
					x2 := m - v2[k2Offset]
					if x1 >= x2 {
						return bisectSplit(text1, text2, offs1, offs2, x1, y1)
					}
				}
			}
		}

		// Walk the reverse path one step.
		for k2 := -d + k2start; k2 <= d-k2end; k2 += 2 {
			k2Offset := vOffset + k2
			var x2 int
			if k2 == -d || (k2 != d && v2[k2Offset-1] < v2[k2Offset+1]) {
				x2 = v2[k2Offset+1]
			} else {
				x2 = v2[k2Offset-1] + 1
			}
			y2 := x2 - k2
			for x2 < m && y2 < n && runes1[m-x2-1] == runes2[n-y2-1] {
				x2++
				y2++
			}
			v2[k2Offset] = x2
			if x2 > m {
				// Ran off the left of the graph.
				k2end += 2
			} else if y2 > n {
				// Ran off the top of the graph.
				k2start += 2
			} else if !front {
				k1Offset := vOffset + delta - k2
				if k1Offset >= 0 && k1Offset < vLength && v1[k1Offset] != -1 {
					x1 := v1[k1Offset]
					y1 := vOffset + x1 - k1Offset
					// Mirror x2 onto the top-left coordinate system.
					if x1 >= m-x2 {
						return bisectSplit(text1, text2, offs1, offs2, x1, y1)
					}
				}
			}
		}
	}

	// No commonality at all.
	return []Edit{{OpDelete, text1}, {OpInsert, text2}}
}

// bisectSplit cuts both inputs at the overlap point (codepoint coordinates)
// and diffs the halves. The boundary tables turn codepoint indices back into
// byte offsets, so no re-encoding happens.
func bisectSplit(text1, text2 string, offs1, offs2 []int, x, y int) []Edit {
	bx, by := offs1[x], offs2[y]
	diffs := diffMain(text1[:bx], text2[:by], false)
	return append(diffs, diffMain(text1[bx:], text2[by:], false)...)
}
