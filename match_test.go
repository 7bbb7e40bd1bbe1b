package textdiff_test

import (
	"testing"

	"github.com/codalotl/textdiff"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniqueMatch(t *testing.T) {
	unique, err := textdiff.UniqueMatch("a", "abc")
	require.NoError(t, err)
	assert.True(t, unique)

	unique, err = textdiff.UniqueMatch("ab", "abab")
	require.NoError(t, err)
	assert.False(t, unique)

	// Overlapping occurrences count.
	unique, err = textdiff.UniqueMatch("aa", "aaa")
	require.NoError(t, err)
	assert.False(t, unique)

	_, err = textdiff.UniqueMatch("zz", "abc")
	assert.ErrorIs(t, err, textdiff.ErrPatternNotFound)
}

func TestUniqueMatchEmptyPattern(t *testing.T) {
	unique, err := textdiff.UniqueMatch("", "")
	require.NoError(t, err)
	assert.True(t, unique)

	unique, err = textdiff.UniqueMatch("", "abc")
	require.NoError(t, err)
	assert.False(t, unique)
}
