package textdiff_test

import (
	"strings"
	"testing"

	"github.com/codalotl/textdiff"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffLineMode(t *testing.T) {
	got := textdiff.DiffLineMode("hello\nworld\n", "hello\nmaas\n")
	want := []textdiff.Edit{eq("hello\n"), del("world\n"), ins("maas\n")}
	require.Empty(t, cmp.Diff(want, got))
}

func TestDiffLineModeTrailingRun(t *testing.T) {
	// A final line without '\n' is still one token.
	got := textdiff.DiffLineMode("a\nb", "a\nc")
	want := []textdiff.Edit{eq("a\n"), del("b"), ins("c")}
	require.Empty(t, cmp.Diff(want, got))
}

func TestDiffLineModeResidual(t *testing.T) {
	// Changed lines between equal anchors are re-diffed at full resolution,
	// so the shared "line " prefix of the changed lines joins the leading
	// equality.
	a := "keep\nline one\nkeep\n"
	b := "keep\nline two\nkeep\n"

	got := textdiff.DiffLineMode(a, b)

	assert.Equal(t, a, textdiff.SourceText(got))
	assert.Equal(t, b, textdiff.DestinationText(got))
	require.NotEmpty(t, got)
	assert.Equal(t, eq("keep\nline "), got[0])

	joined := ""
	for _, d := range got {
		if d.Op == textdiff.OpEqual {
			joined += d.Text
		}
	}
	assert.Contains(t, joined, "line ")
}

func TestDiffLineModeManyLines(t *testing.T) {
	var a, b strings.Builder
	for i := 0; i < 200; i++ {
		line := strings.Repeat("x", i%7) + "\n"
		a.WriteString(line)
		b.WriteString(line)
		if i%31 == 0 {
			b.WriteString("extra\n")
		}
	}

	got := textdiff.DiffLineMode(a.String(), b.String())
	assert.Equal(t, a.String(), textdiff.SourceText(got))
	assert.Equal(t, b.String(), textdiff.DestinationText(got))
}

func TestDiffWordMode(t *testing.T) {
	got := textdiff.DiffWordMode("the quick brown fox", "the quick red fox")

	assert.Equal(t, "the quick brown fox", textdiff.SourceText(got))
	assert.Equal(t, "the quick red fox", textdiff.DestinationText(got))
	require.NotEmpty(t, got)
	assert.Equal(t, eq("the quick "), got[0])
	assert.Equal(t, eq(" fox"), got[len(got)-1])
}

func TestDiffWordModeUnicode(t *testing.T) {
	a := "héllo wörld again"
	b := "héllo wörld once more"

	got := textdiff.DiffWordMode(a, b)
	assert.Equal(t, a, textdiff.SourceText(got))
	assert.Equal(t, b, textdiff.DestinationText(got))
	require.NotEmpty(t, got)
	assert.Equal(t, eq("héllo wörld "), got[0])
}
