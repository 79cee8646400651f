// internal/event/event.go
package event

// Type identifies the kind of event.
type Type int

// Define specific event types.
const (
	TypeUnknown Type = iota

	// Demo lifecycle
	TypeDemoStarted  // Fired before a demo runs
	TypeDemoFinished // Fired after a demo returned without error
	TypeDemoFailed   // Fired after a demo returned an error

	// Domain events
	TypeRecordsSorted // Fired after a record sequence was sorted in place
)

func (t Type) String() string {
	switch t {
	case TypeDemoStarted:
		return "demo-started"
	case TypeDemoFinished:
		return "demo-finished"
	case TypeDemoFailed:
		return "demo-failed"
	case TypeRecordsSorted:
		return "records-sorted"
	default:
		return "unknown"
	}
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type        // The kind of event
	Data interface{} // Payload carrying event-specific data
}

// DemoData identifies a demo run.
type DemoData struct {
	Name string
	Args []string
}

// DemoFailedData carries the error a demo returned.
type DemoFailedData struct {
	Name string
	Err  error
}

// RecordsSortedData describes a completed sort.
type RecordsSortedData struct {
	Count int
}
