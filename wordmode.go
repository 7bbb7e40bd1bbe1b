package textdiff

import "github.com/clipperhouse/uax29/v2/words"

// DiffWordMode diffs a and b at word granularity. Tokens are UAX #29 word
// segments (words, whitespace runs, and punctuation each form their own
// segment), so edits land on word boundaries rather than in the middle of
// words. Residual runs followed by an equal anchor are re-diffed at full
// resolution, exactly as in DiffLineMode.
func DiffWordMode(a, b string) []Edit {
	return diffTokenMode(a, b, splitWords)
}

func splitWords(text string, emit func(string)) {
	iter := words.FromString(text)
	for iter.Next() {
		emit(iter.Value())
	}
}
