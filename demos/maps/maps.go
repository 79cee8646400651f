// demos/maps/maps.go
package maps

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/bethropolis/primer/internal/demo"
	"github.com/bethropolis/primer/internal/utils"
)

// Ensure Maps implements demo.Demo
var _ demo.Demo = (*Maps)(nil)

const defaultWord = "abcdef"

// Maps fills a string-to-int map, counts letters into it, and removes and looks up keys.
type Maps struct{}

// New creates a new instance of the maps demo.
func New() *Maps {
	return &Maps{}
}

// Name returns the unique name of the demo.
func (m *Maps) Name() string {
	return "maps"
}

// Description summarizes the demo.
func (m *Maps) Description() string {
	return "insert, iterate, delete and look up map entries"
}

// sortedKeys returns map keys in ascending order. Go randomizes map
// iteration, so output is always printed in key order.
func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func pp(w io.Writer, m map[string]int) {
	var sb strings.Builder
	for _, k := range sortedKeys(m) {
		fmt.Fprintf(&sb, "%s %d ", k, m[k])
	}
	fmt.Fprintln(w, sb.String())
}

// Run splits args[0] (default "abcdef") into letters, numbering each.
func (m *Maps) Run(env *demo.Env, args []string) error {
	word := defaultWord
	if len(args) > 0 {
		word = args[0]
	}

	counts := map[string]int{"a": 1}
	pp(env.Out, counts)
	counts["b"] = 2
	pp(env.Out, counts)

	counter := 0
	for _, letter := range utils.Graphemes(word) {
		counter++
		counts[letter] = counter
	}
	fmt.Fprintf(env.Out, "Size of Map: %d\n", len(counts))

	keys := sortedKeys(counts)
	width := utils.MaxWidth(keys)
	for _, k := range keys {
		fmt.Fprintf(env.Out, "k: %s, v: %d\n", utils.PadRight(k, width), counts[k])
	}

	delete(counts, "a")
	_, ok := counts["j"]
	_, err := fmt.Fprintln(env.Out, ok)
	return err
}
