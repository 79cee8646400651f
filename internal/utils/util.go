package utils

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// East Asian locales render ambiguous-width characters in two cells.
// runewidth reads the locale from the environment; uniseg does the measuring.
func init() {
	if runewidth.DefaultCondition.EastAsianWidth {
		uniseg.EastAsianAmbiguousWidth = 2
	}
}

// Graphemes splits s into user-perceived characters (grapheme clusters).
// "é" counts as one letter, as does a flag emoji.
func Graphemes(s string) []string {
	if s == "" {
		return nil
	}
	out := make([]string, 0, len(s))
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}

// Width returns the number of terminal cells s occupies.
func Width(s string) int {
	return uniseg.StringWidth(s)
}

// PadRight pads s with spaces up to width terminal cells, measured by Width.
// Strings already at least that wide are returned unchanged.
func PadRight(s string, width int) string {
	if pad := width - Width(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

// MaxWidth returns the widest cell width among items.
func MaxWidth(items []string) int {
	max := 0
	for _, item := range items {
		if w := Width(item); w > max {
			max = w
		}
	}
	return max
}
