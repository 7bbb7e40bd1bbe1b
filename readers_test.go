package textdiff_test

import (
	"testing"

	"github.com/codalotl/textdiff"

	"github.com/stretchr/testify/assert"
)

func TestSourceAndDestinationText(t *testing.T) {
	script := []textdiff.Edit{
		eq("jump"),
		del("s"),
		ins("ed"),
		eq(" over "),
		del("the"),
		ins("a"),
		eq(" lazy"),
	}

	assert.Equal(t, "jumps over the lazy", textdiff.SourceText(script))
	assert.Equal(t, "jumped over a lazy", textdiff.DestinationText(script))
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		name   string
		script []textdiff.Edit
		want   int
	}{
		{
			name:   "trailing equality",
			script: []textdiff.Edit{del("abc"), ins("1234"), eq("xyz")},
			want:   4,
		},
		{
			name:   "leading equality",
			script: []textdiff.Edit{eq("xyz"), del("abc"), ins("1234")},
			want:   4,
		},
		{
			name:   "middle equality",
			script: []textdiff.Edit{del("abc"), eq("xyz"), ins("1234")},
			want:   7,
		},
		{
			name:   "codepoints not bytes",
			script: []textdiff.Edit{del("\U0001f7e2\U0001f7e1"), ins("ab")},
			want:   2,
		},
		{
			name:   "empty",
			script: nil,
			want:   0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, textdiff.Levenshtein(tc.script))
		})
	}
}

func TestPrettyHTML(t *testing.T) {
	script := []textdiff.Edit{eq("a\n"), del("<B>b</B>"), ins("c&d")}

	got := textdiff.PrettyHTML(script)
	want := "<span>a\n</span>" +
		"<del style='background:#ffe6e6;'>&lt;B&gt;b&lt;/B&gt;</del>" +
		"<ins style='background:#e6ffe6;'>c&amp;d</ins>"
	assert.Equal(t, want, got)
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "equal", textdiff.OpEqual.String())
	assert.Equal(t, "insert", textdiff.OpInsert.String())
	assert.Equal(t, "delete", textdiff.OpDelete.String())
}
