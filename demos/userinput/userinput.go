package userinput

import (
	"fmt"

	"github.com/bethropolis/primer/internal/demo"
	"github.com/bethropolis/primer/internal/input"
)

// Ensure UserInput implements demo.Demo
var _ demo.Demo = (*UserInput)(nil)

// UserInput prompts for a name, an integer and a floating point number.
type UserInput struct{}

// New creates a new instance of the input demo.
func New() *UserInput {
	return &UserInput{}
}

// Name returns the unique name of the demo.
func (u *UserInput) Name() string {
	return "input"
}

// Description summarizes the demo.
func (u *UserInput) Description() string {
	return "read a line, an integer and a float from standard input"
}

// Run reads from env.In and echoes each value.
func (u *UserInput) Run(env *demo.Env, args []string) error {
	rd := input.NewReader(env.In)

	fmt.Fprintln(env.Out, "Please enter your name: ")
	name, err := rd.ReadLine()
	if err != nil {
		return fmt.Errorf("reading name: %w", err)
	}
	fmt.Fprintln(env.Out, "Hi "+name)

	fmt.Fprintln(env.Out, "Please enter a number: ")
	number, err := rd.ReadInt()
	if err != nil {
		return fmt.Errorf("reading number: %w", err)
	}
	fmt.Fprintf(env.Out, "You have entered : %d\n", number)

	fmt.Fprintln(env.Out, "Please enter a floating point number: ")
	decimal, err := rd.ReadFloat()
	if err != nil {
		return fmt.Errorf("reading floating point number: %w", err)
	}
	_, err = fmt.Fprintf(env.Out, "You have entered : %v\n", decimal)
	return err
}
