package joining

import (
	"fmt"
	"slices"

	"github.com/bethropolis/primer/internal/demo"
	"github.com/bethropolis/primer/internal/joiner"
	"github.com/bethropolis/primer/internal/logger"
)

// Ensure Joining implements demo.Demo
var _ demo.Demo = (*Joining)(nil)

// Joining concatenates a word list, checks membership and joins it with a separator.
type Joining struct{}

// New creates a new instance of the join demo.
func New() *Joining {
	return &Joining{}
}

// Name returns the unique name of the demo.
func (j *Joining) Name() string {
	return "join"
}

// Description summarizes the demo.
func (j *Joining) Description() string {
	return "concatenate words, test membership, join with a separator"
}

// Run uses args as the word list when given, otherwise the configured words.
func (j *Joining) Run(env *demo.Env, args []string) error {
	words := env.Config.Words
	if len(args) > 0 {
		words = args
	}

	if _, err := fmt.Fprintln(env.Out, joiner.Concat(words)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(env.Out, slices.Contains(words, "a")); err != nil {
		return err
	}

	joined := joiner.Join(words, env.Config.Separator)
	if _, err := fmt.Fprintln(env.Out, joined); err != nil {
		return err
	}

	if env.Config.CopyResult && env.Clipboard != nil {
		if err := env.Clipboard.Copy(joined); err != nil {
			// Not fatal, the internal clipboard still holds the text
			fmt.Fprintf(env.Err, "Warning: %v\n", err)
			return nil
		}
		logger.DebugTagf("clipboard", "join: copied %q", joined)
	}
	return nil
}
