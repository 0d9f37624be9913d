package pack

import (
	"fmt"
	"math/bits"

	"github.com/tilezen/hilbert/pkg/coord"
)

// ToU32Var will pack the coordinate into a u32 as a marker bit at 2*z
// followed by the Hilbert index. The max coordinate zoom that can be handled
// is 15. An error is returned for coordinates with higher zooms.
//
// Because a tile's parent index is its own index shifted right by two,
// ToU32Var(parent) == ToU32Var(child) >> 2.
func ToU32Var(c coord.Coord) (uint32, error) {
	if c.Z > 15 {
		return 0, fmt.Errorf("cannot pack coordinate into u32, z=%d > 15", c.Z)
	}
	h, err := c.Hilbert()
	if err != nil {
		return 0, err
	}
	return uint32(1<<(2*c.Z)) | uint32(h), nil
}

// FromU32Var unpacks the u32 back into a coordinate. It's expected that the
// coordinate was originally packed with the ToU32Var function.
func FromU32Var(val uint32) (coord.Coord, error) {
	zeros := bits.LeadingZeros32(val)
	if zeros&1 == 0 {
		return coord.Coord{}, fmt.Errorf("tile value %d has %d leading zeros, which isn't valid", val, zeros)
	}
	z := uint((31 - zeros) >> 1)
	return coord.FromHilbert(z, uint64(val&((1<<(2*z))-1)))
}
