package textdiff

import "strings"

// DiffLineMode diffs a and b at line granularity: each distinct line is
// collapsed to a single synthetic codepoint, the synthetic strings are
// diffed, and the result is re-expanded. Runs of deleted and inserted lines
// that are followed by an equal anchor are then re-diffed at full
// resolution; a run at the end of the script is left at line granularity.
//
// Line mode trades optimality for speed; Diff selects it for the top-level
// comparison when no half-match is found, and for sub-problems whose inputs
// exceed 100 bytes.
func DiffLineMode(a, b string) []Edit {
	return diffTokenMode(a, b, splitLines)
}

// splitFunc feeds each token of text to emit, in order. Concatenating the
// tokens must reproduce text exactly.
type splitFunc func(text string, emit func(token string))

// splitLines tokenizes into maximal runs ending in '\n', plus a trailing
// run with no newline.
func splitLines(text string, emit func(string)) {
	for len(text) > 0 {
		i := strings.IndexByte(text, '\n')
		if i == -1 {
			emit(text)
			return
		}
		emit(text[:i+1])
		text = text[i+1:]
	}
}

// diffTokenMode is the engine shared by line mode and word mode: compress
// tokens to synthetic codepoints, diff, expand, canonicalize, and re-diff
// the residual edit runs.
func diffTokenMode(text1, text2 string, split splitFunc) []Edit {
	c1, c2, vocab := tokensToRunes(text1, text2, split)
	diffs := diffMain(c1, c2, false)
	diffs = expandTokens(diffs, vocab)
	diffs = CleanupMerge(diffs)
	return rediffResiduals(diffs)
}

// tokensToRunes maps each distinct token of text1 and text2 to a synthetic
// codepoint (shared vocabulary, ids from 0 upward) and returns the two
// synthetic strings plus the vocabulary.
func tokensToRunes(text1, text2 string, split splitFunc) (string, string, []string) {
	var vocab []string
	ids := make(map[string]rune)
	encode := func(text string) string {
		var b strings.Builder
		split(text, func(token string) {
			id, ok := ids[token]
			if !ok {
				id = tokenID(len(vocab))
				ids[token] = id
				vocab = append(vocab, token)
			}
			b.WriteRune(id)
		})
		return b.String()
	}
	return encode(text1), encode(text2), vocab
}

// tokenID maps a dense vocabulary index to a codepoint. The surrogate range
// is skipped: Go re-encodes surrogate runes as U+FFFD, which would alias
// distinct tokens.
func tokenID(i int) rune {
	if i >= 0xd800 {
		return rune(i + 0x800)
	}
	return rune(i)
}

// tokenIndex is the inverse of tokenID.
func tokenIndex(r rune) int {
	if r >= 0xe000 {
		return int(r) - 0x800
	}
	return int(r)
}

// expandTokens replaces each synthetic codepoint with its original token.
func expandTokens(diffs []Edit, vocab []string) []Edit {
	out := make([]Edit, 0, len(diffs))
	for _, d := range diffs {
		var b strings.Builder
		for _, r := range d.Text {
			b.WriteString(vocab[tokenIndex(r)])
		}
		out = append(out, Edit{d.Op, b.String()})
	}
	return out
}

// rediffResiduals re-diffs runs of deleted and inserted text that are
// followed by an equal anchor at full resolution. Pending runs at the end of the script pass
// through untouched: re-diffing there has no smaller subproblem and would
// not converge.
func rediffResiduals(diffs []Edit) []Edit {
	var out []Edit
	var del, ins strings.Builder
	flush := func(rediff bool) {
		switch {
		case rediff && del.Len() > 0 && ins.Len() > 0:
			out = append(out, diffMain(del.String(), ins.String(), false)...)
		default:
			if del.Len() > 0 {
				out = append(out, Edit{OpDelete, del.String()})
			}
			if ins.Len() > 0 {
				out = append(out, Edit{OpInsert, ins.String()})
			}
		}
		del.Reset()
		ins.Reset()
	}
	for _, d := range diffs {
		switch d.Op {
		case OpDelete:
			del.WriteString(d.Text)
		case OpInsert:
			ins.WriteString(d.Text)
		case OpEqual:
			flush(true)
			out = append(out, d)
		}
	}
	flush(false)
	return out
}
