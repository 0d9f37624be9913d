package pack

import (
	"fmt"

	"github.com/tilezen/hilbert/pkg/coord"
)

// ToU32 will pack a coordinate into a u32 as its zoom followed by its
// Hilbert index. The maximum zoom handled is 14.
// Coordinates with a higher zoom will result in an error.
func ToU32(c coord.Coord) (uint32, error) {
	if c.Z > 14 {
		return 0, fmt.Errorf("cannot pack coordinate into u32, z=%d > 14", c.Z)
	}
	h, err := c.Hilbert()
	if err != nil {
		return 0, err
	}
	return uint32(c.Z<<28) | uint32(h), nil
}

// FromU32 will take a u32 and return a coordinate from that representation.
// It's expected that the u32 was created from a call to ToU32.
func FromU32(val uint32) (coord.Coord, error) {
	z := uint(val >> 28)
	return coord.FromHilbert(z, uint64(val&((1<<28)-1)))
}
