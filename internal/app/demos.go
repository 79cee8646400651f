package app

import (
	"fmt"

	"github.com/bethropolis/primer/demos/args"
	"github.com/bethropolis/primer/demos/arrays"
	"github.com/bethropolis/primer/demos/joining"
	"github.com/bethropolis/primer/demos/lists"
	"github.com/bethropolis/primer/demos/maps"
	"github.com/bethropolis/primer/demos/randomint"
	"github.com/bethropolis/primer/demos/sets"
	"github.com/bethropolis/primer/demos/sorting"
	"github.com/bethropolis/primer/demos/userinput"
	"github.com/bethropolis/primer/demos/wordcount"
	"github.com/bethropolis/primer/internal/demo"
	"github.com/bethropolis/primer/internal/logger"
)

// builtinDemos lists the demo constructors. Adding a demo means adding its constructor here.
func builtinDemos() []demo.Demo {
	return []demo.Demo{
		sorting.New(),
		joining.New(),
		arrays.New(),
		lists.New(),
		maps.New(),
		sets.New(),
		randomint.New(),
		userinput.New(),
		args.New(),
		wordcount.New(),
	}
}

// registerDemos registers every demo with the manager, continuing past failures.
func registerDemos(dm *demo.Manager, demos []demo.Demo) error {
	if dm == nil {
		return fmt.Errorf("demo manager is nil")
	}

	var finalErr error
	for _, d := range demos {
		logger.DebugTagf("demo", "Registering demo: %s", d.Name())
		if err := dm.Register(d); err != nil {
			wrappedErr := fmt.Errorf("failed to register demo '%s': %w", d.Name(), err)
			logger.Errorf("%v", wrappedErr)
			if finalErr == nil {
				finalErr = wrappedErr // Keep the first error encountered
			}
		}
	}
	return finalErr
}
