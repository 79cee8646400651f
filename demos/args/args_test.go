package args

import (
	"bytes"
	"errors"
	"testing"

	"github.com/bethropolis/primer/internal/demo"
	"github.com/bethropolis/primer/internal/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunParsesFirstArgument(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, New().Run(&demo.Env{Out: &out}, []string{"12", "ignored"}))

	assert.Equal(t, "First argument: 12\n", out.String())
}

func TestRunWithoutArguments(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, New().Run(&demo.Env{Out: &out}, nil))

	assert.Empty(t, out.String())
}

func TestRunInvalidInteger(t *testing.T) {
	var out bytes.Buffer

	err := New().Run(&demo.Env{Out: &out}, []string{"x1"})

	var invalid *input.InvalidIntegerError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "Argument: x1 must be an integer.", err.Error())
	assert.Empty(t, out.String())
}
