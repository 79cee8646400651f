// internal/record/record.go
package record

import (
	"cmp"
	"fmt"
	"io"
	"slices"
)

// Record is a named entity that reports how many records exist.
type Record struct {
	name    string
	serial  int64    // Counter value right after this record was built
	counter *Counter // Shared counter, read live by String
}

// New builds a record on the process-wide DefaultCounter.
func New(name string) *Record {
	return NewWithCounter(DefaultCounter, name)
}

// NewWithCounter builds a record on an explicit counter.
// A nil counter falls back to DefaultCounter.
func NewWithCounter(c *Counter, name string) *Record {
	if c == nil {
		c = DefaultCounter
	}
	return &Record{
		name:    name,
		serial:  c.Next(),
		counter: c,
	}
}

// Name returns the record's name.
func (r *Record) Name() string {
	return r.name
}

// Serial returns the counter value captured when the record was built.
func (r *Record) Serial() int64 {
	return r.serial
}

// String formats the record as "<count>: <name>".
// The count is the counter's value now, not at construction, so the
// text of an older record changes once newer records are built.
func (r *Record) String() string {
	return fmt.Sprintf("%d: %s", r.counter.Value(), r.name)
}

// Snapshot formats the record using its construction-time serial.
func (r *Record) Snapshot() string {
	return fmt.Sprintf("%d: %s", r.serial, r.name)
}

// Compare orders records by name, byte-wise, which for UTF-8 text is code point order.
func Compare(a, b *Record) int {
	return cmp.Compare(a.name, b.name)
}

// Sort orders records in place by Compare. Equal names keep their relative order.
func Sort(records []*Record) {
	slices.SortStableFunc(records, Compare)
}

// IsSorted reports whether every adjacent pair is in Compare order.
func IsSorted(records []*Record) bool {
	return slices.IsSortedFunc(records, Compare)
}

// Names returns the names of records in sequence order.
func Names(records []*Record) []string {
	names := make([]string, 0, len(records))
	for _, r := range records {
		names = append(names, r.name)
	}
	return names
}

// Print writes each record's String form on its own line.
func Print(w io.Writer, records []*Record) error {
	for _, r := range records {
		if _, err := fmt.Fprintln(w, r); err != nil {
			return fmt.Errorf("print record %q: %w", r.name, err)
		}
	}
	return nil
}
