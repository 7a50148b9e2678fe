package pcicfg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/bootcheck/internal/selftest"
)

func newTestAccessor(t *testing.T) (*Accessor, Address) {
	t.Helper()
	addr := Address{Bus: 2, Slot: 0x1f, Func: 3}
	mem := NewMemBackend()
	mem.AddDevice(addr, 0x10ec, 0x8168)
	return New(mem), addr
}

func TestEncode_PacksBusSlotFuncOffset(t *testing.T) {
	addr := Address{Bus: 0x02, Slot: 0x1f, Func: 0x3}

	assert.Equal(t, uint64(0x021f0300), addr.Encode(0x00))
	assert.Equal(t, uint64(0x021f0344), addr.Encode(0x44))
	// Extended register offsets land in the upper half.
	assert.Equal(t, uint64(0x1)<<40|0x021f0310, addr.Encode(0x110))
}

func TestRead_ReturnsIDs_ForEachWidth(t *testing.T) {
	acc, addr := newTestAccessor(t)

	vendor, err := acc.Read16(addr, 0x00)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x10ec), vendor)

	device, err := acc.Read16(addr, 0x02)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x8168), device)

	id, err := acc.Read32(addr, 0x00)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x8168_10ec), id)

	lo, err := acc.Read8(addr, 0x00)
	require.NoError(t, err)
	assert.Equal(t, uint8(0xec), lo)
}

func TestWrite_RoundTrips_ForEachWidth(t *testing.T) {
	acc, addr := newTestAccessor(t)

	require.NoError(t, acc.Write32(addr, 0x10, 0xfebc0000))
	got, err := acc.Read32(addr, 0x10)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xfebc0000), got)

	require.NoError(t, acc.Write8(addr, 0x3c, 0x0b))
	b, err := acc.Read8(addr, 0x3c)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x0b), b)
}

func TestRead_WrapsBackendFailure_AsErrIO(t *testing.T) {
	acc, _ := newTestAccessor(t)

	_, err := acc.Read16(Address{Bus: 7}, 0x00)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIO))
}

func TestAccess_RejectsInvalidWidth(t *testing.T) {
	acc, addr := newTestAccessor(t)

	_, err := acc.Read(addr, 0x00, Width(3))
	assert.True(t, errors.Is(err, ErrIO))

	err = acc.Write(addr, 0x00, Width(0), 1)
	assert.True(t, errors.Is(err, ErrIO))
}

func TestMemBackend_RejectsOutOfRangeOffset(t *testing.T) {
	acc, addr := newTestAccessor(t)

	_, err := acc.Read32(addr, 0xfe)
	assert.True(t, errors.Is(err, ErrIO))
}

func TestPcicfgUnit_Passes(t *testing.T) {
	sum := selftest.RunMatching("pcicfg")

	require.Len(t, sum.Units, 1)
	assert.True(t, sum.OK(), "failures: %+v", sum.Failures)
}
