// demos/arrays/arrays.go
package arrays

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bethropolis/primer/internal/demo"
	"github.com/bethropolis/primer/internal/input"
	"github.com/bethropolis/primer/internal/joiner"
)

// Ensure Arrays implements demo.Demo
var _ demo.Demo = (*Arrays)(nil)

var defaultValues = [...]int{1, 2, 3, 4, 5}

// Arrays prints an integer array three ways: range loop, bracket form and indexed.
type Arrays struct{}

// New creates a new instance of the arrays demo.
func New() *Arrays {
	return &Arrays{}
}

// Name returns the unique name of the demo.
func (a *Arrays) Name() string {
	return "arrays"
}

// Description summarizes the demo.
func (a *Arrays) Description() string {
	return "iterate an integer array by value and by index"
}

// Run uses integer args when given, otherwise 1 through 5.
func (a *Arrays) Run(env *demo.Env, args []string) error {
	values := defaultValues[:]
	if len(args) > 0 {
		values = make([]int, 0, len(args))
		for _, arg := range args {
			n, err := input.ParseIntArg(arg)
			if err != nil {
				return err
			}
			values = append(values, n)
		}
	}

	// for-each
	var sb strings.Builder
	for _, v := range values {
		fmt.Fprintf(&sb, "%d ", v)
	}
	fmt.Fprintln(env.Out, sb.String())

	// bracket form
	text := make([]string, len(values))
	for i, v := range values {
		text[i] = strconv.Itoa(v)
	}
	fmt.Fprintf(env.Out, "[%s]\n", joiner.Join(text, ", "))

	// using an index
	sb.Reset()
	sb.WriteString("A:  ")
	for i := 0; i < len(values); i++ {
		if i < len(values)-1 {
			fmt.Fprintf(&sb, "%d: %d, ", i, values[i])
		} else {
			fmt.Fprintf(&sb, "%d: %d.", i, values[i])
		}
	}
	_, err := fmt.Fprintln(env.Out, sb.String())
	return err
}
