package textdiff

import (
	"errors"
	"strconv"
	"strings"

	"github.com/codalotl/textdiff/internal/uni"
)

// Patch groups a contiguous run of edits with up to PatchMargin codepoints
// of equal context on either side. Positions and lengths count codepoints.
type Patch struct {
	SourceStart  int
	DestStart    int
	SourceLength int
	DestLength   int
	Diffs        []Edit
}

// ErrPatchSplitUnimplemented reports a script whose interior contains an
// equality of at least 2*PatchMargin codepoints after an edit. Such a
// script needs one patch closed and another opened; that split is not
// implemented.
var ErrPatchSplitUnimplemented = errors.New("textdiff: patch split after a long equality is not implemented")

// ErrSourceMismatch reports that a script does not reconstruct the source
// text it was handed.
var ErrSourceMismatch = errors.New("textdiff: script does not reproduce the source text")

// MakePatch groups the edits of a script over source into patch records.
// The leading equality is trimmed to its final PatchMargin codepoints of
// context, and a trailing equality to its first PatchMargin codepoints.
//
// Scripts that would need more than one patch return
// ErrPatchSplitUnimplemented.
func MakePatch(source string, diffs []Edit) ([]Patch, error) {
	if len(diffs) == 0 {
		return nil, nil
	}
	if SourceText(diffs) != source {
		return nil, ErrSourceMismatch
	}

	lastEdit := -1
	for i, d := range diffs {
		if d.Op != OpEqual {
			lastEdit = i
		}
	}
	if lastEdit == -1 {
		return nil, nil // nothing but context
	}

	var cur Patch
	hasEdit := false
	srcPos, dstPos := 0, 0 // codepoints into source / post-patch destination

	for i, d := range diffs {
		n := uni.Count(d.Text)
		switch {
		case d.Op == OpInsert:
			cur.Diffs = append(cur.Diffs, d)
			cur.DestLength += n
			hasEdit = true
			dstPos += n
		case d.Op == OpDelete:
			cur.Diffs = append(cur.Diffs, d)
			cur.SourceLength += n
			hasEdit = true
			srcPos += n
		case !hasEdit:
			// Leading context: keep the trailing PatchMargin codepoints and
			// start the patch there. A later equality supersedes an earlier
			// one while no edit has arrived.
			cur = Patch{}
			ctx, kept := tailCodepoints(d.Text, PatchMargin)
			srcPos += n
			dstPos += n
			if ctx != "" {
				cur.Diffs = append(cur.Diffs, Edit{OpEqual, ctx})
				cur.SourceLength += kept
				cur.DestLength += kept
			}
			cur.SourceStart = srcPos - kept
			cur.DestStart = dstPos - kept
		case i > lastEdit:
			// Trailing context: keep the leading PatchMargin codepoints.
			ctx, kept := headCodepoints(d.Text, PatchMargin)
			if ctx != "" {
				cur.Diffs = append(cur.Diffs, Edit{OpEqual, ctx})
				cur.SourceLength += kept
				cur.DestLength += kept
			}
		case n >= 2*PatchMargin:
			return nil, ErrPatchSplitUnimplemented
		default:
			// Small equality inside the patch.
			cur.Diffs = append(cur.Diffs, d)
			cur.SourceLength += n
			cur.DestLength += n
			srcPos += n
			dstPos += n
		}
	}

	return []Patch{cur}, nil
}

// String formats the patch with a unidiff-style header and one op per line,
// prefixed '+', '-', or ' '. Bodies are emitted verbatim.
func (p Patch) String() string {
	var b strings.Builder
	b.WriteString("@@ -")
	b.WriteString(patchCoords(p.SourceStart, p.SourceLength))
	b.WriteString(" +")
	b.WriteString(patchCoords(p.DestStart, p.DestLength))
	b.WriteString(" @@\n")
	for _, d := range p.Diffs {
		switch d.Op {
		case OpInsert:
			b.WriteByte('+')
		case OpDelete:
			b.WriteByte('-')
		case OpEqual:
			b.WriteByte(' ')
		}
		b.WriteString(d.Text)
		b.WriteByte('\n')
	}
	return b.String()
}

func patchCoords(start, length int) string {
	switch length {
	case 0:
		return strconv.Itoa(start) + ",0"
	case 1:
		return strconv.Itoa(start + 1)
	default:
		return strconv.Itoa(start+1) + "," + strconv.Itoa(length)
	}
}

// tailCodepoints returns the suffix of s holding at most n codepoints,
// along with its codepoint count.
func tailCodepoints(s string, n int) (string, int) {
	runes, offs := uni.Codepoints(s)
	if len(runes) <= n {
		return s, len(runes)
	}
	return s[offs[len(runes)-n]:], n
}

// headCodepoints returns the prefix of s holding at most n codepoints,
// along with its codepoint count.
func headCodepoints(s string, n int) (string, int) {
	runes, offs := uni.Codepoints(s)
	if len(runes) <= n {
		return s, len(runes)
	}
	return s[:offs[n]], n
}
