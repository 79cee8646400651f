// internal/record/counter.go
package record

import "sync/atomic"

// Counter counts constructed records. The zero value is ready to use.
type Counter struct {
	n atomic.Int64
}

// DefaultCounter is shared by every record built with New.
// It starts at zero with the process and library code never resets it.
var DefaultCounter = &Counter{}

// Next increments the counter and returns the new value.
func (c *Counter) Next() int64 {
	return c.n.Add(1)
}

// Value returns the current count.
func (c *Counter) Value() int64 {
	return c.n.Load()
}
