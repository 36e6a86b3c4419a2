package ie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	i := New(TypeCause, []byte{0x01})
	b := i.Marshal()
	assert.Equal(t, []byte{0x00, 0x13, 0x00, 0x01, 0x01}, b)

	got, n, err := Unmarshal(b)
	require.NoError(t, err)
	assert.Equal(t, len(b), n)
	assert.Equal(t, i, got)
}

func TestUnmarshalShortHeader(t *testing.T) {
	_, _, err := Unmarshal([]byte{0x00, 0x13, 0x00})
	assert.ErrorIs(t, err, ErrShortBuffer)
}

func TestUnmarshalShortPayload(t *testing.T) {
	_, _, err := Unmarshal([]byte{0x00, 0x13, 0x00, 0x02, 0x01})
	assert.ErrorIs(t, err, ErrShortBuffer)
}

func TestUnmarshalRejectsForbiddenZeroLength(t *testing.T) {
	_, _, err := Unmarshal([]byte{0x00, 0x13, 0x00, 0x00})
	var lenErr *InvalidLengthError
	require.ErrorAs(t, err, &lenErr)
	assert.Equal(t, TypeCause, lenErr.Type)
}

func TestUnmarshalAllowsZeroLengthNetworkInstance(t *testing.T) {
	i, n, err := Unmarshal([]byte{0x00, 0x16, 0x00, 0x00})
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Empty(t, i.Payload)
}

func TestIteratorWalksConcatenatedIEs(t *testing.T) {
	buf := append(New(TypeCause, []byte{0x01}).Marshal(), New(TypeNodeID, []byte{0x02, 0x01, 0x02, 0x03, 0x04}).Marshal()...)
	ies, err := All(buf)
	require.NoError(t, err)
	require.Len(t, ies, 2)
	assert.Equal(t, TypeCause, ies[0].Type)
	assert.Equal(t, TypeNodeID, ies[1].Type)
}

func TestIteratorStopsAtMalformedTrailer(t *testing.T) {
	buf := append(New(TypeCause, []byte{0x01}).Marshal(), 0x00, 0x15, 0xFF, 0xFF)
	it := NewIterator(buf)

	i, ok, err := it.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, TypeCause, i.Type)

	_, ok, err = it.Next()
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrShortBuffer)
}

func TestFindAndFindAll(t *testing.T) {
	buf := append(New(TypeURRID, []byte{0x00, 0x00, 0x00, 0x01}).Marshal(), New(TypeURRID, []byte{0x00, 0x00, 0x00, 0x02}).Marshal()...)

	first, ok, err := Find(buf, TypeURRID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x01}, first.Payload)

	all, err := FindAll(buf, TypeURRID)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, ok, err = Find(buf, TypeFARID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMissingMandatoryIeError(t *testing.T) {
	err := &MissingMandatoryIeError{Container: "CreatePDR", Missing: TypePDI}
	assert.Contains(t, err.Error(), "CreatePDR")
	assert.Contains(t, err.Error(), "PDI")
}
