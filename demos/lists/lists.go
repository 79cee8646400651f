package lists

import (
	"fmt"
	"io"
	"slices"

	"github.com/bethropolis/primer/internal/demo"
)

// Ensure Lists implements demo.Demo
var _ demo.Demo = (*Lists)(nil)

// Lists iterates a growable list, sorts it, and builds a second list by appending.
type Lists struct{}

// New creates a new instance of the lists demo.
func New() *Lists {
	return &Lists{}
}

// Name returns the unique name of the demo.
func (l *Lists) Name() string {
	return "lists"
}

// Description summarizes the demo.
func (l *Lists) Description() string {
	return "iterate, sort and append to string lists"
}

// pp prints every element with no separator, then a newline.
func pp(w io.Writer, items []string) {
	for _, s := range items {
		fmt.Fprint(w, s)
	}
	fmt.Fprintln(w)
}

// Run uses args as the first list when given.
func (l *Lists) Run(env *demo.Env, args []string) error {
	c := []string{"z", "y", "x"}
	if len(args) > 0 {
		c = slices.Clone(args)
	}
	pp(env.Out, c)
	slices.Sort(c)
	pp(env.Out, c)

	var d []string
	for _, s := range []string{"j", "k", "l"} {
		d = append(d, s)
	}
	pp(env.Out, d)
	return nil
}
