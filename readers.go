package textdiff

import (
	"html"
	"strings"

	"github.com/codalotl/textdiff/internal/uni"
)

// SourceText reconstructs the source of a script: the concatenation of all
// equal and delete texts.
func SourceText(diffs []Edit) string {
	var b strings.Builder
	for _, d := range diffs {
		if d.Op != OpInsert {
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

// DestinationText reconstructs the destination of a script: the
// concatenation of all equal and insert texts.
func DestinationText(diffs []Edit) string {
	var b strings.Builder
	for _, d := range diffs {
		if d.Op != OpDelete {
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

// Levenshtein returns the number of codepoints changed by a script: each
// run of edits between equalities contributes the larger of its inserted
// and deleted codepoint counts.
func Levenshtein(diffs []Edit) int {
	lev, inserts, deletes := 0, 0, 0
	for _, d := range diffs {
		switch d.Op {
		case OpInsert:
			inserts += uni.Count(d.Text)
		case OpDelete:
			deletes += uni.Count(d.Text)
		case OpEqual:
			lev += max(inserts, deletes)
			inserts, deletes = 0, 0
		}
	}
	return lev + max(inserts, deletes)
}

// PrettyHTML renders a script as an HTML fragment: inserts on a green
// background, deletes on red, equalities in a plain span. Texts are
// HTML-escaped.
func PrettyHTML(diffs []Edit) string {
	var b strings.Builder
	for _, d := range diffs {
		text := html.EscapeString(d.Text)
		switch d.Op {
		case OpInsert:
			b.WriteString("<ins style='background:#e6ffe6;'>")
			b.WriteString(text)
			b.WriteString("</ins>")
		case OpDelete:
			b.WriteString("<del style='background:#ffe6e6;'>")
			b.WriteString(text)
			b.WriteString("</del>")
		case OpEqual:
			b.WriteString("<span>")
			b.WriteString(text)
			b.WriteString("</span>")
		}
	}
	return b.String()
}
