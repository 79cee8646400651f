// Package joiner concatenates word lists.
package joiner

import "strings"

// Join concatenates words with sep between each adjacent pair.
// sep never appears before the first or after the last word.
// A nil words is treated as empty and yields "".
func Join(words []string, sep string) string {
	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0]
	}

	size := len(sep) * (len(words) - 1)
	for _, w := range words {
		size += len(w)
	}

	var sb strings.Builder
	sb.Grow(size)
	for i, w := range words {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(w)
	}
	return sb.String()
}

// Concat joins words with no separator.
func Concat(words []string) string {
	return Join(words, "")
}
