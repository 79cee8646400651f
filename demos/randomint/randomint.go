package randomint

import (
	"fmt"

	"github.com/bethropolis/primer/internal/demo"
	"github.com/bethropolis/primer/internal/input"
	"github.com/bethropolis/primer/internal/random"
)

// Ensure RandomInt implements demo.Demo
var _ demo.Demo = (*RandomInt)(nil)

// RandomInt prints one random integer between two inclusive bounds.
type RandomInt struct {
	gen *random.Generator
}

// New creates the demo on the default random source.
func New() *RandomInt {
	return &RandomInt{gen: random.NewGenerator(nil)}
}

// NewWithGenerator creates the demo on an explicit generator.
func NewWithGenerator(gen *random.Generator) *RandomInt {
	return &RandomInt{gen: gen}
}

// Name returns the unique name of the demo.
func (r *RandomInt) Name() string {
	return "random"
}

// Description summarizes the demo.
func (r *RandomInt) Description() string {
	return "print a random integer in [min, max]"
}

// Run takes <min> <max> from args, or the configured bounds when no args are given.
func (r *RandomInt) Run(env *demo.Env, args []string) error {
	min, max := env.Config.RandomMin, env.Config.RandomMax
	switch len(args) {
	case 0:
	case 2:
		var err error
		if min, err = input.ParseIntArg(args[0]); err != nil {
			return err
		}
		if max, err = input.ParseIntArg(args[1]); err != nil {
			return err
		}
	default:
		return fmt.Errorf("usage: random <min> <max>, got %d argument(s)", len(args))
	}

	n, err := r.gen.Int(min, max)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(env.Out, "Your random integer is: %d\n", n)
	return err
}
