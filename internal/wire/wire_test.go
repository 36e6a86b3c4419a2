package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUint24RoundTrip(t *testing.T) {
	buf := make([]byte, 3)
	PutUint24(buf, 0x123456)
	assert.Equal(t, uint32(0x123456), Uint24(buf))
}

func TestUint24TruncatesHighByte(t *testing.T) {
	buf := make([]byte, 3)
	PutUint24(buf, 0xFF123456)
	assert.Equal(t, uint32(0x123456), Uint24(buf))
}

func TestNTPRoundTrip(t *testing.T) {
	for _, unixSecs := range []uint32{0, 1, 1_700_000_000} {
		b := EncodeNTP(unixSecs)
		got, err := DecodeNTP(b[:])
		require.NoError(t, err)
		assert.Equal(t, unixSecs, got)
	}
}

func TestEncodeNTPEpoch(t *testing.T) {
	b := EncodeNTP(0)
	assert.Equal(t, []byte{0x83, 0xAA, 0x7E, 0x80}, b[:])
}

func TestDecodeNTPTooShort(t *testing.T) {
	_, err := DecodeNTP([]byte{0, 0, 0})
	assert.Error(t, err)
}

func TestDecodeNTPBeforeEpoch(t *testing.T) {
	_, err := DecodeNTP([]byte{0, 0, 0, 1})
	assert.Error(t, err)
}
