// internal/demo/demo.go
package demo

import (
	"io"

	"github.com/bethropolis/primer/internal/clipboard"
	"github.com/bethropolis/primer/internal/config"
	"github.com/bethropolis/primer/internal/event"
)

// Env is what a demo may touch while it runs.
type Env struct {
	In        io.Reader
	Out       io.Writer // Demo output
	Err       io.Writer // Diagnostics meant for the user
	Config    config.DemosConfig
	Clipboard *clipboard.Manager
	Events    *event.Manager
}

// Demo defines the interface that every demonstration must implement.
type Demo interface {
	// Name returns the unique name used to run the demo.
	Name() string

	// Description is a one-line summary for listings.
	Description() string

	// Run executes the demo. args are the command-line arguments that
	// followed the demo name.
	Run(env *Env, args []string) error
}
