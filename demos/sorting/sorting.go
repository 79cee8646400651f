// demos/sorting/sorting.go
package sorting

import (
	"fmt"

	"github.com/Pallinder/go-randomdata"
	"github.com/bethropolis/primer/internal/demo"
	"github.com/bethropolis/primer/internal/event"
	"github.com/bethropolis/primer/internal/logger"
	"github.com/bethropolis/primer/internal/record"
)

// Ensure Sorting implements demo.Demo
var _ demo.Demo = (*Sorting)(nil)

// Sorting builds records, prints them, sorts them by name and prints them again.
type Sorting struct {
	counter *record.Counter
}

// New creates the demo on the process-wide record counter.
func New() *Sorting {
	return &Sorting{counter: record.DefaultCounter}
}

// NewWithCounter creates the demo on an explicit counter.
func NewWithCounter(c *record.Counter) *Sorting {
	return &Sorting{counter: c}
}

// Name returns the unique name of the demo.
func (s *Sorting) Name() string {
	return "sort"
}

// Description summarizes the demo.
func (s *Sorting) Description() string {
	return "build named records, then sort them by name"
}

// names picks record names: arguments first, then generated names, then config.
func (s *Sorting) names(env *demo.Env, args []string) []string {
	if len(args) > 0 {
		return args
	}
	if env.Config.RandomNames {
		names := make([]string, len(env.Config.Names))
		for i := range names {
			names[i] = randomdata.FirstName(randomdata.RandomGender)
		}
		return names
	}
	return env.Config.Names
}

// Run prints the first record after each construction but the last, so the
// live counter is visible, then the unsorted and sorted sequences.
func (s *Sorting) Run(env *demo.Env, args []string) error {
	names := s.names(env, args)
	if len(names) == 0 {
		return fmt.Errorf("no record names to sort")
	}

	records := make([]*record.Record, 0, len(names))
	for i, name := range names {
		records = append(records, record.NewWithCounter(s.counter, name))
		if i < len(names)-1 {
			if _, err := fmt.Fprintln(env.Out, records[0]); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintln(env.Out, "unsorted:"); err != nil {
		return err
	}
	if err := record.Print(env.Out, records); err != nil {
		return err
	}

	record.Sort(records)
	logger.DebugTagf("record", "sorting: sorted %d records", len(records))
	env.Events.Dispatch(event.TypeRecordsSorted, event.RecordsSortedData{Count: len(records)})

	if _, err := fmt.Fprintln(env.Out, "sorted:  "); err != nil {
		return err
	}
	return record.Print(env.Out, records)
}
