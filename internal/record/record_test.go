package record

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/Pallinder/go-randomdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterCountsConstructions(t *testing.T) {
	c := &Counter{}
	k := randomdata.Number(1, 50)
	for i := 0; i < k; i++ {
		NewWithCounter(c, randomdata.SillyName())
	}
	assert.Equal(t, int64(k), c.Value())

	NewWithCounter(c, "one more")
	assert.Equal(t, int64(k+1), c.Value())
}

func TestCounterIgnoresDiscardedRecords(t *testing.T) {
	c := &Counter{}
	for i := 0; i < 3; i++ {
		_ = NewWithCounter(c, "discarded")
	}
	r := NewWithCounter(c, "kept")
	assert.Equal(t, int64(4), r.Serial())
	assert.Equal(t, int64(4), c.Value())
}

func TestCounterConcurrentNext(t *testing.T) {
	c := &Counter{}
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				NewWithCounter(c, "x")
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(1000), c.Value())
}

func TestNewUsesDefaultCounter(t *testing.T) {
	before := DefaultCounter.Value()
	r := New("Tom")
	assert.Equal(t, before+1, DefaultCounter.Value())
	assert.Equal(t, before+1, r.Serial())
}

func TestNewWithNilCounterFallsBackToDefault(t *testing.T) {
	before := DefaultCounter.Value()
	NewWithCounter(nil, "Tom")
	assert.Equal(t, before+1, DefaultCounter.Value())
}

// String reads the counter when formatting; Snapshot keeps the construction value.
func TestStringReadsCounterLive(t *testing.T) {
	c := &Counter{}
	tom := NewWithCounter(c, "Tom")
	assert.Equal(t, "1: Tom", tom.String())

	NewWithCounter(c, "Joan")
	assert.Equal(t, "2: Tom", tom.String())
	assert.Equal(t, "1: Tom", tom.Snapshot())
}

func TestCompare(t *testing.T) {
	c := &Counter{}
	a := NewWithCounter(c, "Joan")
	b := NewWithCounter(c, "Sean")
	upper := NewWithCounter(c, "Zed")
	lower := NewWithCounter(c, "adam")

	assert.Negative(t, Compare(a, b))
	assert.Positive(t, Compare(b, a))
	assert.Zero(t, Compare(a, NewWithCounter(c, "Joan")))
	assert.Negative(t, Compare(upper, lower), "upper case sorts before lower case")
}

func TestSortOrdersByName(t *testing.T) {
	c := &Counter{}
	n1, n2, n3 := NewWithCounter(c, "Joan"), NewWithCounter(c, "Sean"), NewWithCounter(c, "Tom")
	records := []*Record{n3, n1, n2}

	Sort(records)

	assert.Equal(t, []*Record{n1, n2, n3}, records)
	assert.True(t, IsSorted(records))
}

func TestSortRandomNames(t *testing.T) {
	c := &Counter{}
	records := make([]*Record, 0, 40)
	for i := 0; i < 40; i++ {
		records = append(records, NewWithCounter(c, randomdata.SillyName()))
	}

	Sort(records)

	for i := 0; i+1 < len(records); i++ {
		assert.LessOrEqual(t, Compare(records[i], records[i+1]), 0)
	}
}

func TestSortIsIdempotent(t *testing.T) {
	c := &Counter{}
	records := []*Record{
		NewWithCounter(c, "c"),
		NewWithCounter(c, "a"),
		NewWithCounter(c, "b"),
	}
	Sort(records)
	once := append([]*Record(nil), records...)

	Sort(records)

	assert.Equal(t, once, records)
}

func TestSortIsStable(t *testing.T) {
	c := &Counter{}
	first := NewWithCounter(c, "same")
	other := NewWithCounter(c, "a")
	second := NewWithCounter(c, "same")
	records := []*Record{first, other, second}

	Sort(records)

	assert.Same(t, other, records[0])
	assert.Same(t, first, records[1])
	assert.Same(t, second, records[2])
}

func TestSortEmpty(t *testing.T) {
	var records []*Record
	Sort(records)
	assert.True(t, IsSorted(records))
	assert.Empty(t, Names(records))
}

func TestNames(t *testing.T) {
	c := &Counter{}
	records := []*Record{NewWithCounter(c, "Tom"), NewWithCounter(c, "Joan")}
	assert.Equal(t, []string{"Tom", "Joan"}, Names(records))
}

func TestPrint(t *testing.T) {
	c := &Counter{}
	records := []*Record{NewWithCounter(c, "Tom"), NewWithCounter(c, "Joan")}
	var buf bytes.Buffer

	require.NoError(t, Print(&buf, records))

	assert.Equal(t, "2: Tom\n2: Joan\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, fmt.Errorf("closed") }

func TestPrintReturnsWriteError(t *testing.T) {
	c := &Counter{}
	err := Print(failingWriter{}, []*Record{NewWithCounter(c, "Tom")})
	assert.ErrorContains(t, err, "Tom")
}
