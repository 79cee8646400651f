package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGraphemes(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, Graphemes("abcdef"))
	assert.Equal(t, []string{"c", "a", "f", "é"}, Graphemes("café"))
	assert.Nil(t, Graphemes(""))
}

func TestWidth(t *testing.T) {
	assert.Equal(t, 3, Width("abc"))
	assert.Equal(t, 4, Width("日本"))
	assert.Equal(t, 0, Width(""))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", PadRight("ab", 5))
	assert.Equal(t, "abcdef", PadRight("abcdef", 3))
	assert.Equal(t, "日本 ", PadRight("日本", 5))
}

func TestMaxWidth(t *testing.T) {
	assert.Equal(t, 5, MaxWidth([]string{"a", "hello", "abc"}))
	assert.Equal(t, 0, MaxWidth(nil))
}

func TestPadRightEmojiColumns(t *testing.T) {
	items := []string{"🇩🇪", "⚠️", "🏳️‍🌈", "a"}
	width := MaxWidth(items)
	assert.Equal(t, 2, width)

	for _, item := range items {
		assert.Equal(t, width, Width(PadRight(item, width)), item)
	}
	assert.Equal(t, "🇩🇪 ", PadRight("🇩🇪", 3))
	assert.Equal(t, "a ", PadRight("a", 2))
}
