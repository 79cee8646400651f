// Package random draws bounded pseudo-random integers.
package random

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Pallinder/go-randomdata"
)

// ErrInvalidRange is returned when the bounds cannot describe a non-empty range.
var ErrInvalidRange = errors.New("invalid random range")

// Source yields integers in [0, n). n is always positive.
type Source interface {
	Intn(n int) int
}

// randomdataSource draws from go-randomdata's shared generator.
type randomdataSource struct{}

func (randomdataSource) Intn(n int) int {
	return randomdata.Number(n)
}

// Generator draws integers from a Source.
type Generator struct {
	src Source
}

// NewGenerator wraps src. A nil src uses go-randomdata.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = randomdataSource{}
	}
	return &Generator{src: src}
}

var defaultGenerator = NewGenerator(nil)

// Int returns an integer in [min, max], both bounds inclusive.
func (g *Generator) Int(min, max int) (int, error) {
	if max < min {
		return 0, fmt.Errorf("%w: max %d is below min %d", ErrInvalidRange, max, min)
	}
	span := max - min + 1
	if span <= 0 {
		return 0, fmt.Errorf("%w: [%d, %d] overflows int", ErrInvalidRange, min, max)
	}
	return min + g.src.Intn(span), nil
}

// Ints returns n integers drawn from [min, max].
func (g *Generator) Ints(n, min, max int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative sample count %d", n)
	}
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		v, err := g.Int(min, max)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Int draws from the default generator.
func Int(min, max int) (int, error) {
	return defaultGenerator.Int(min, max)
}

// Ints draws from the default generator.
func Ints(n, min, max int) ([]int, error) {
	return defaultGenerator.Ints(n, min, max)
}

// Distinct returns the set of values in ascending order.
func Distinct(values []int) []int {
	set := make(map[int]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}
