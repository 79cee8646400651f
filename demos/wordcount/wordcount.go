// demos/wordcount/wordcount.go
package wordcount

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/bethropolis/primer/internal/demo"
	"github.com/bethropolis/primer/internal/utils"
)

// Ensure WordCount implements demo.Demo
var _ demo.Demo = (*WordCount)(nil)

// WordCount counts lines, words, characters and bytes.
type WordCount struct{}

// New creates a new instance of the WordCount demo.
func New() *WordCount {
	return &WordCount{}
}

// Name returns the unique name of the demo.
func (p *WordCount) Name() string {
	return "wc"
}

// Description summarizes the demo.
func (p *WordCount) Description() string {
	return "count lines, words, characters and bytes of the arguments or stdin"
}

// Stats holds the counts for one text.
type Stats struct {
	Lines      int
	Words      int
	Characters int // Grapheme clusters
	Bytes      int
}

// Count computes Stats for data. A final line without a newline still counts.
func Count(data []byte) Stats {
	lines := bytes.Count(data, []byte("\n"))
	if len(data) > 0 && data[len(data)-1] != '\n' {
		lines++
	}
	return Stats{
		Lines:      lines,
		Words:      countWords(data),
		Characters: len(utils.Graphemes(string(data))),
		Bytes:      len(data),
	}
}

// Run counts the arguments joined by spaces, or all of stdin without arguments.
func (p *WordCount) Run(env *demo.Env, args []string) error {
	var data []byte
	if len(args) > 0 {
		data = []byte(strings.Join(args, " "))
	} else {
		var err error
		if data, err = io.ReadAll(env.In); err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}

	s := Count(data)
	_, err := fmt.Fprintf(env.Out, "Lines: %d, Words: %d, Characters: %d, Bytes: %d\n",
		s.Lines, s.Words, s.Characters, s.Bytes)
	return err
}

// countWords counts sequences of non-space characters.
func countWords(data []byte) int {
	count := 0
	inWord := false
	for _, r := range string(data) {
		if !unicode.IsSpace(r) {
			if !inWord {
				count++
				inWord = true
			}
		} else {
			inWord = false
		}
	}
	return count
}
