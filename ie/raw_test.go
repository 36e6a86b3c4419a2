package ie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRawPassesThroughUnknownIeUnchanged(t *testing.T) {
	unknown := New(IeType(9999), []byte{0xAA, 0xBB})
	r := NewRaw(unknown)
	assert.Equal(t, unknown, r.Marshal())
}
