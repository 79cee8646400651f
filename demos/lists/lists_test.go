package lists

import (
	"bytes"
	"testing"

	"github.com/bethropolis/primer/internal/demo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDefaults(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, New().Run(&demo.Env{Out: &out}, nil))

	assert.Equal(t, "zyx\nxyz\njkl\n", out.String())
}

func TestRunDoesNotReorderArguments(t *testing.T) {
	var out bytes.Buffer
	args := []string{"q", "b", "m"}

	require.NoError(t, New().Run(&demo.Env{Out: &out}, args))

	assert.Equal(t, "qbm\nbmq\njkl\n", out.String())
	assert.Equal(t, []string{"q", "b", "m"}, args)
}
