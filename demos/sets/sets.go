package sets

import (
	"fmt"
	"strconv"

	"github.com/bethropolis/primer/internal/demo"
	"github.com/bethropolis/primer/internal/joiner"
	"github.com/bethropolis/primer/internal/random"
)

// Ensure Sets implements demo.Demo
var _ demo.Demo = (*Sets)(nil)

// Sets draws random integers and prints the distinct values.
type Sets struct {
	gen *random.Generator
}

// New creates the demo on the default random source.
func New() *Sets {
	return &Sets{gen: random.NewGenerator(nil)}
}

// NewWithGenerator creates the demo on an explicit generator.
func NewWithGenerator(gen *random.Generator) *Sets {
	return &Sets{gen: gen}
}

// Name returns the unique name of the demo.
func (s *Sets) Name() string {
	return "sets"
}

// Description summarizes the demo.
func (s *Sets) Description() string {
	return "collect random integers into a set"
}

// Run draws set_samples values from [random_min, random_max].
func (s *Sets) Run(env *demo.Env, args []string) error {
	cfg := env.Config
	values, err := s.gen.Ints(cfg.SetSamples, cfg.RandomMin, cfg.RandomMax)
	if err != nil {
		return err
	}

	distinct := random.Distinct(values)
	text := make([]string, len(distinct))
	for i, v := range distinct {
		text[i] = strconv.Itoa(v)
	}
	_, err = fmt.Fprintf(env.Out, "[%s]\n", joiner.Join(text, ", "))
	return err
}
