package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchInSubscriptionOrder(t *testing.T) {
	m := NewManager()
	var got []string
	m.Subscribe(TypeDemoStarted, func(e Event) bool {
		got = append(got, "first:"+e.Data.(DemoData).Name)
		return false
	})
	m.Subscribe(TypeDemoStarted, func(e Event) bool {
		got = append(got, "second:"+e.Data.(DemoData).Name)
		return false
	})

	m.Dispatch(TypeDemoStarted, DemoData{Name: "sort"})

	assert.Equal(t, []string{"first:sort", "second:sort"}, got)
}

func TestDispatchStopsWhenConsumed(t *testing.T) {
	m := NewManager()
	calls := 0
	m.Subscribe(TypeRecordsSorted, func(Event) bool { calls++; return true })
	m.Subscribe(TypeRecordsSorted, func(Event) bool { calls++; return false })

	m.Dispatch(TypeRecordsSorted, RecordsSortedData{Count: 3})

	assert.Equal(t, 1, calls)
}

func TestDispatchOnlyMatchingType(t *testing.T) {
	m := NewManager()
	called := false
	m.Subscribe(TypeDemoFailed, func(Event) bool { called = true; return false })

	m.Dispatch(TypeDemoFinished, DemoData{Name: "join"})

	assert.False(t, called)
}

func TestSubscribeDuringDispatch(t *testing.T) {
	m := NewManager()
	late := 0
	m.Subscribe(TypeDemoStarted, func(Event) bool {
		m.Subscribe(TypeDemoStarted, func(Event) bool { late++; return false })
		return false
	})

	m.Dispatch(TypeDemoStarted, DemoData{})
	assert.Equal(t, 0, late)

	m.Dispatch(TypeDemoStarted, DemoData{})
	assert.Equal(t, 1, late)
}

func TestNilManagerDispatch(t *testing.T) {
	var m *Manager
	assert.NotPanics(t, func() { m.Dispatch(TypeDemoStarted, nil) })
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "demo-started", TypeDemoStarted.String())
	assert.Equal(t, "records-sorted", TypeRecordsSorted.String())
	assert.Equal(t, "unknown", TypeUnknown.String())
}
