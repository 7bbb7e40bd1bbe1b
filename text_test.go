package textdiff_test

import (
	"testing"

	"github.com/codalotl/textdiff"

	"github.com/stretchr/testify/assert"
)

func TestTextSize(t *testing.T) {
	assert.Equal(t, 0, textdiff.TextSize(""))
	assert.Equal(t, 3, textdiff.TextSize("abc"))
	assert.Equal(t, 4, textdiff.TextSize("aé世\U0001f7e2"))

	assert.Panics(t, func() { textdiff.TextSize("a\xffb") })
}

func TestTextSmallerThan(t *testing.T) {
	assert.True(t, textdiff.TextSmallerThan("abc", 4))
	assert.False(t, textdiff.TextSmallerThan("abc", 3))
	assert.True(t, textdiff.TextSmallerThan("", 1))
	assert.False(t, textdiff.TextSmallerThan("\U0001f7e2", 1))
}

func TestCommonPrefix(t *testing.T) {
	assert.Equal(t, "", textdiff.CommonPrefix("abc", "xyz"))
	assert.Equal(t, "ab", textdiff.CommonPrefix("abc", "abd"))
	assert.Equal(t, "abc", textdiff.CommonPrefix("abc", "abcdef"))

	// The emojis share their first three bytes; the partial codepoint is
	// trimmed back to the boundary.
	assert.Equal(t, "test", textdiff.CommonPrefix("test\U0001f7e2123", "test\U0001f7e1123"))
}

func TestCommonSuffix(t *testing.T) {
	assert.Equal(t, "", textdiff.CommonSuffix("abc", "xyz"))
	assert.Equal(t, "bc", textdiff.CommonSuffix("abc", "xbc"))
	assert.Equal(t, "abc", textdiff.CommonSuffix("abc", "xyzabc"))

	assert.Equal(t, "123", textdiff.CommonSuffix("x\U0001f7e2123", "y\U0001f7e1123"))
	assert.Equal(t, "é123", textdiff.CommonSuffix("aé123", "bé123"))
}

func TestSplitPreAndSuffix(t *testing.T) {
	prefix, middle1, middle2, suffix := textdiff.SplitPreAndSuffix("the cat sat", "the dog sat")
	assert.Equal(t, "the ", prefix)
	assert.Equal(t, "cat", middle1)
	assert.Equal(t, "dog", middle2)
	assert.Equal(t, " sat", suffix)

	prefix, middle1, middle2, suffix = textdiff.SplitPreAndSuffix("same", "same")
	assert.Equal(t, "same", prefix)
	assert.Empty(t, middle1)
	assert.Empty(t, middle2)
	assert.Empty(t, suffix)

	prefix, middle1, middle2, suffix = textdiff.SplitPreAndSuffix("", "abc")
	assert.Empty(t, prefix)
	assert.Empty(t, middle1)
	assert.Equal(t, "abc", middle2)
	assert.Empty(t, suffix)
}
