package deferlog

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_BuffersUntilFlush(t *testing.T) {
	var w Writer

	_, err := w.Write([]byte("first\n"))
	require.NoError(t, err)
	_, err = w.Write([]byte("second\n"))
	require.NoError(t, err)

	var dst bytes.Buffer
	require.NoError(t, w.Flush(&dst))

	assert.Equal(t, "first\nsecond\n", dst.String())
}

func TestWriter_FlushResets(t *testing.T) {
	var w Writer
	_, _ = w.Write([]byte("once"))

	var first, second bytes.Buffer
	require.NoError(t, w.Flush(&first))
	require.NoError(t, w.Flush(&second))

	assert.Equal(t, "once", first.String())
	assert.Empty(t, second.String())
}

func TestWriter_FlushEmpty(t *testing.T) {
	var w Writer

	var dst bytes.Buffer
	assert.NoError(t, w.Flush(&dst))
	assert.Empty(t, dst.String())
}
