package args

import (
	"fmt"

	"github.com/bethropolis/primer/internal/demo"
	"github.com/bethropolis/primer/internal/input"
)

// Ensure Args implements demo.Demo
var _ demo.Demo = (*Args)(nil)

// Args parses its first argument as an integer.
type Args struct{}

// New creates a new instance of the args demo.
func New() *Args {
	return &Args{}
}

// Name returns the unique name of the demo.
func (a *Args) Name() string {
	return "args"
}

// Description summarizes the demo.
func (a *Args) Description() string {
	return "parse the first command-line argument as an integer"
}

// Run fails with *input.InvalidIntegerError when the first argument is not an integer.
// Without arguments it does nothing.
func (a *Args) Run(env *demo.Env, args []string) error {
	if len(args) == 0 {
		return nil
	}
	first, err := input.ParseIntArg(args[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(env.Out, "First argument: %d\n", first)
	return err
}
