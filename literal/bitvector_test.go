package literal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitVectorForceValueRoundTrip(t *testing.T) {
	reg := NewRegistry()
	bv := NewBitVector(reg, "level", 3)

	for v := 0; v <= bv.Max(); v++ {
		cube := bv.ForceValue(v, false)
		require.Equal(t, v, bv.ExtractValue(cube), "round trip for value %d", v)
	}
}

func TestBitVectorExtractValueMissingBitsDefaultZero(t *testing.T) {
	reg := NewRegistry()
	bv := NewBitVector(reg, "pc", 3)

	// A witness cube that only asserts the high bit negative-less and omits
	// the low two bits entirely must read back as 0 for the missing bits.
	partial := NewCube(Not(Cur(bv.Bit(2))))
	require.Equal(t, 0, bv.ExtractValue(partial))
}

func TestBitVectorMaxAndWidth(t *testing.T) {
	reg := NewRegistry()
	bv := NewBitVector(reg, "x", 4)
	require.Equal(t, 4, bv.Width())
	require.Equal(t, 15, bv.Max())
}

func TestBitVectorLessThanBoundaryValues(t *testing.T) {
	reg := NewRegistry()
	bv := NewBitVector(reg, "n", 3)

	require.Nil(t, bv.LessThan(reg, bv.Max()+1, false), "n beyond range is tautologically true: no clauses")
	clauses := bv.LessThan(reg, 0, false)
	require.Len(t, clauses, 1)
	require.Empty(t, clauses[0].Literals(), "bv < 0 is unsatisfiable: empty clause")
}

func TestBitVectorForceValuePanicsOutOfRange(t *testing.T) {
	reg := NewRegistry()
	bv := NewBitVector(reg, "x", 2)
	require.Panics(t, func() { bv.ForceValue(99, false) })
}
