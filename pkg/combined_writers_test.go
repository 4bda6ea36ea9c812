package pkg

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("boom")
}

func TestCombinedWriter(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	cw := NewCombinedWriter(&buf1, &buf2)

	n, err := cw.Write([]byte("rep one"))
	require.NoError(t, err)
	assert.Equal(t, 14, n)
	assert.Equal(t, "rep one", buf1.String())
	assert.Equal(t, "rep one", buf2.String())
}

func TestCombinedWriter_PartialFailure(t *testing.T) {
	var buf bytes.Buffer
	cw := NewCombinedWriter(&buf, failingWriter{})

	n, err := cw.Write([]byte("rep two"))
	require.Error(t, err)
	assert.Equal(t, 7, n)
	assert.Equal(t, "rep two", buf.String())
}
