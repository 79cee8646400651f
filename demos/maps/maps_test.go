package maps

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bethropolis/primer/internal/demo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDefaultWord(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, New().Run(&demo.Env{Out: &out}, nil))

	want := strings.Join([]string{
		"a 1 ",
		"a 1 b 2 ",
		"Size of Map: 6",
		"k: a, v: 1",
		"k: b, v: 2",
		"k: c, v: 3",
		"k: d, v: 4",
		"k: e, v: 5",
		"k: f, v: 6",
		"false",
		"",
	}, "\n")
	assert.Equal(t, want, out.String())
}

func TestRunCountsGraphemes(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, New().Run(&demo.Env{Out: &out}, []string{"jé"}))

	text := out.String()
	assert.Contains(t, text, "Size of Map: 4") // a, b, j, é
	assert.Contains(t, text, "k: j, v: 1")
	assert.Contains(t, text, "k: é, v: 2")
	assert.True(t, strings.HasSuffix(text, "true\n"), "j is still present after removing a")
}

func TestRunAlignsWideKeys(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, New().Run(&demo.Env{Out: &out}, []string{"日"}))

	assert.Contains(t, out.String(), "k: a , v: 1")
	assert.Contains(t, out.String(), "k: 日, v: 1")
}
