package translate

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	Use()

	assert.Equal("unknown command: foo", From("unknown command: %v", "foo"))
	assert.Equal("width 5 out of range", From("width %d out of range", 5))
}

func TestFprintln(t *testing.T) {
	assert := assert.New(t)

	Use("en-US")

	buff := &bytes.Buffer{}
	n, err := Fprintln(buff, "line %d", 7)
	assert.NoError(err)
	assert.Equal("line 7\n", buff.String())
	assert.Equal(buff.Len(), n)
}
