package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/pfcp/ie"
)

func TestTableCreateGetDelete(t *testing.T) {
	tbl := NewTable()
	local := tbl.AllocateSEID()
	s := tbl.Create(local, 42, "10.0.0.1:8805")
	require.NotNil(t, s)

	got, ok := tbl.Get(local)
	require.True(t, ok)
	assert.Equal(t, uint64(42), got.RemoteSEID)
	assert.Equal(t, 1, tbl.Count())

	tbl.Delete(local)
	_, ok = tbl.Get(local)
	assert.False(t, ok)
	assert.Equal(t, 0, tbl.Count())
}

func TestTableAllocateSEIDIsUnique(t *testing.T) {
	tbl := NewTable()
	a := tbl.AllocateSEID()
	b := tbl.AllocateSEID()
	assert.NotEqual(t, a, b)
}

func TestSessionInstallAndRemovePDR(t *testing.T) {
	tbl := NewTable()
	local := tbl.AllocateSEID()
	s := tbl.Create(local, 1, "10.0.0.1:8805")

	pdr := ie.CreatePDR{PDRID: ie.PDRID{Value: 1}, Precedence: ie.Precedence{Value: 100}}
	s.InstallPDR(pdr)
	assert.Len(t, s.PDRs, 1)

	delete(s.PDRs, 1)
	assert.Empty(t, s.PDRs)
}

func TestTEIDPoolSkipsZeroAndAvoidsReuse(t *testing.T) {
	tbl := NewTable()
	a := tbl.AllocateTEID()
	b := tbl.AllocateTEID()
	assert.NotZero(t, a)
	assert.NotZero(t, b)
	assert.NotEqual(t, a, b)
}

func TestDeleteReleasesHeldTEIDs(t *testing.T) {
	tbl := NewTable()
	local := tbl.AllocateSEID()
	s := tbl.Create(local, 1, "10.0.0.1:8805")

	teid := tbl.AllocateTEID()
	s.InstallPDR(ie.CreatePDR{
		PDRID: ie.PDRID{Value: 1},
		PDI:   ie.PDI{LocalFTEID: &ie.FTEID{TEID: teid}},
	})

	tbl.Delete(local)
	// releasing should allow the pool to hand the TEID out again without
	// ever having to skip past it as "still in use"
	assert.Equal(t, 0, tbl.Count())
	assert.False(t, tbl.teids.used[teid])
}
