// internal/input/args.go
package input

import (
	"fmt"
	"strconv"
)

// InvalidIntegerError reports a command-line argument that is not an integer.
type InvalidIntegerError struct {
	Arg string
	Err error // Underlying strconv error
}

func (e *InvalidIntegerError) Error() string {
	return fmt.Sprintf("Argument: %s must be an integer.", e.Arg)
}

func (e *InvalidIntegerError) Unwrap() error {
	return e.Err
}

// ParseIntArg parses a base-10 integer argument.
func ParseIntArg(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, &InvalidIntegerError{Arg: arg, Err: err}
	}
	return n, nil
}
